package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateAjusteRequest entrada para lançar um ajuste manual em um período.
type CreateAjusteRequest struct {
	Matricula string          `json:"matricula" validate:"required"`
	Periodo   string          `json:"periodo" validate:"required"` // YYYY-MM
	Tipo      string          `json:"tipo" validate:"required,oneof=CREDITO DEBITO"`
	Valor     decimal.Decimal `json:"valor" validate:"required"`
	Motivo    string          `json:"motivo" validate:"required"`
}

// AjusteResponse representação de saída de um ajuste.
type AjusteResponse struct {
	ID        string          `json:"id"`
	Matricula string          `json:"matricula"`
	Periodo   string          `json:"periodo"`
	Tipo      string          `json:"tipo"`
	Valor     decimal.Decimal `json:"valor"`
	Motivo    string          `json:"motivo"`
	CriadoEm  time.Time       `json:"criado_em"`
}
