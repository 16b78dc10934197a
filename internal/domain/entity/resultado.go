package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ResultadoPeriodo é uma linha de resultado por funcionário por período.
// O conjunto inteiro é substituído (delete + insert) a cada reprocessamento de
// um período ABERTO e congelado quando o período é bloqueado.
type ResultadoPeriodo struct {
	ID             string
	PeriodoID      string
	Matricula      string
	Nome           string
	Departamento   string
	DiasCreditados int
	ValorVA        decimal.Decimal
	ValorCesta     decimal.Decimal
	ValorTotal     decimal.Decimal // VA + cesta + ajustes
	Detalhe        DetalheCalculo  // insumos do cálculo, para auditoria/exportação
	CriadoEm       time.Time
}

// DetalheCalculo captura os insumos que produziram o resultado. Persistido
// como JSONB para que a auditoria reproduza o número sem reprocessar.
type DetalheCalculo struct {
	FaltasInjustificadas int             `json:"faltas_injustificadas"`
	FaltasJustificadas   int             `json:"faltas_justificadas"`
	DiasFerias           int             `json:"dias_ferias"`
	TotalAjustes         decimal.Decimal `json:"total_ajustes"`
	PenalidadeCesta      string          `json:"penalidade_cesta"` // "0%", "25%", "50%", "100%"
}
