package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaveConfiguracaoRequest entrada da ação de configurações (upsert do
// registro singleton).
type SaveConfiguracaoRequest struct {
	ValorDiaVA        decimal.Decimal `json:"valor_dia_va" validate:"required"`
	ValorCesta        decimal.Decimal `json:"valor_cesta" validate:"required"`
	TetoSalarialCesta decimal.Decimal `json:"teto_salarial_cesta" validate:"required"`
	DiaCorte          int             `json:"dia_corte" validate:"required,min=1,max=31"`
	DiasUteisPadrao   int             `json:"dias_uteis_padrao" validate:"required,min=1,max=31"`
}

// ConfiguracaoResponse representação de saída da configuração global.
type ConfiguracaoResponse struct {
	ValorDiaVA        decimal.Decimal `json:"valor_dia_va"`
	ValorCesta        decimal.Decimal `json:"valor_cesta"`
	TetoSalarialCesta decimal.Decimal `json:"teto_salarial_cesta"`
	DiaCorte          int             `json:"dia_corte"`
	DiasUteisPadrao   int             `json:"dias_uteis_padrao"`
	AtualizadoEm      time.Time       `json:"atualizado_em"`
}
