package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Configuracao é o registro singleton com os parâmetros globais do cálculo.
// Mutado apenas pela ação explícita de configurações; lido a cada
// processamento e passado por valor ao motor de cálculo; o motor nunca lê
// estado global.
type Configuracao struct {
	ID                int // sempre 1
	ValorDiaVA        decimal.Decimal
	ValorCesta        decimal.Decimal
	TetoSalarialCesta decimal.Decimal
	DiaCorte          int // dia do mês que fecha a janela de apuração de ausências
	DiasUteisPadrao   int // dias úteis de um período cheio
	AtualizadoEm      time.Time
}

// Valida verifica os limites mínimos para um processamento seguro.
func (c *Configuracao) Valida() bool {
	return c.DiaCorte >= 1 && c.DiaCorte <= 31 &&
		c.DiasUteisPadrao > 0 &&
		!c.ValorDiaVA.IsNegative() &&
		!c.ValorCesta.IsNegative()
}
