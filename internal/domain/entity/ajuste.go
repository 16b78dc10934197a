package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de ajuste manual.
const (
	AjusteCredito = "CREDITO"
	AjusteDebito  = "DEBITO"
)

// Ajuste é um crédito ou débito manual aplicado ao total de um funcionário em
// exatamente um período, fora do cálculo padrão. Valor é sempre positivo; o
// sinal vem do Tipo.
type Ajuste struct {
	ID        string
	Matricula string
	Periodo   string // nome do período (YYYY-MM)
	Tipo      string // CREDITO | DEBITO
	Valor     decimal.Decimal
	Motivo    string
	CriadoEm  time.Time
}

// ValorAssinado devolve o valor com o sinal do tipo (crédito positivo,
// débito negativo).
func (a *Ajuste) ValorAssinado() decimal.Decimal {
	if a.Tipo == AjusteDebito {
		return a.Valor.Neg()
	}
	return a.Valor
}
