// Package beneficio implementa o motor de cálculo do vale-alimentação e da
// cesta básica, além do selo de integridade do período.
//
// Regras do VA: cada dia útil presente vale ValorDiaVA; qualquer ausência
// (justificada, injustificada ou férias) desconta um dia; só presença física
// gera o benefício. Regras da cesta: valor fixo mensal, restrito ao teto
// salarial, com penalidade escalonada apenas por faltas INJUSTIFICADAS:
// 0 faltas → 0%, 1 → 25%, 2 → 50%, 3 ou mais → 100%.
package beneficio

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/domain/entity"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/pkg/datas"
)

// Parametros são os valores globais de cálculo, passados por valor a cada
// chamada; o motor nunca lê configuração ambiente.
type Parametros struct {
	ValorDiaVA        decimal.Decimal
	ValorCesta        decimal.Decimal
	TetoSalarialCesta decimal.Decimal
	DiasUteisPadrao   int
}

// Entrada é o snapshot de um funcionário para o cálculo de um período.
// Struct totalmente tipado: campo ausente não existe, só campo zero.
type Entrada struct {
	Matricula            string
	Salario              decimal.Decimal
	DataAdmissao         time.Time
	Periodo              string // YYYY-MM
	FaltasInjustificadas int
	FaltasJustificadas   int
	DiasFerias           int
	TotalAjustes         decimal.Decimal // registrado no detalhe; somado pelo chamador
}

// Resultado é a decomposição do benefício de um funcionário em um período.
// ValorTotal = VA + cesta; os ajustes entram no total final pelo processador,
// não aqui.
type Resultado struct {
	DiasCreditados int
	ValorVA        decimal.Decimal
	ValorCesta     decimal.Decimal
	ValorTotal     decimal.Decimal
	Detalhe        entity.DetalheCalculo
}

// Calcular executa o cálculo de benefícios de um funcionário. Função pura e
// determinística: segura para avaliação independente por funcionário.
func Calcular(in Entrada, p Parametros) (Resultado, error) {
	if in.FaltasInjustificadas < 0 || in.FaltasJustificadas < 0 || in.DiasFerias < 0 {
		return Resultado{}, fmt.Errorf("beneficio: contagens de ausência negativas (matrícula %s)", in.Matricula)
	}
	mes, err := datas.MesDoPeriodo(in.Periodo)
	if err != nil {
		return Resultado{}, err
	}

	// 1. Proração por admissão dentro do mês do período: credita apenas os
	// dias úteis da admissão até o fim do mês, limitado ao padrão.
	diasCreditados := p.DiasUteisPadrao
	admitidoNoMes := in.DataAdmissao.Year() == mes.Year() && in.DataAdmissao.Month() == mes.Month()
	if admitidoNoMes {
		restantes := datas.DiasUteis(in.DataAdmissao, datas.UltimoDiaDoMes(mes))
		if restantes < diasCreditados {
			diasCreditados = restantes
		}
	}

	// 2. VA: potencial menos um dia por ausência de qualquer natureza.
	totalAusencias := in.FaltasInjustificadas + in.FaltasJustificadas + in.DiasFerias
	potencial := p.ValorDiaVA.Mul(decimal.NewFromInt(int64(diasCreditados)))
	desconto := p.ValorDiaVA.Mul(decimal.NewFromInt(int64(totalAusencias)))
	valorVA := potencial.Sub(desconto)
	if valorVA.IsNegative() {
		valorVA = decimal.Zero
	}
	valorVA = valorVA.Round(2)

	// 3. Cesta: só abaixo do teto; prorateada para admitidos no mês; penalidade
	// por faltas injustificadas. Justificadas e férias nunca afetam a cesta.
	valorCesta := decimal.Zero
	penalidade := penalidadeCesta(in.FaltasInjustificadas)
	if in.Salario.LessThanOrEqual(p.TetoSalarialCesta) {
		base := p.ValorCesta
		if admitidoNoMes && diasCreditados < p.DiasUteisPadrao {
			if p.DiasUteisPadrao == 0 {
				base = decimal.Zero
			} else {
				base = p.ValorCesta.
					Div(decimal.NewFromInt(int64(p.DiasUteisPadrao))).
					Mul(decimal.NewFromInt(int64(diasCreditados)))
			}
		}
		valorCesta = base.Mul(decimal.NewFromInt(1).Sub(penalidade))
		if valorCesta.IsNegative() {
			valorCesta = decimal.Zero
		}
		valorCesta = valorCesta.Round(2)
	}

	return Resultado{
		DiasCreditados: diasCreditados,
		ValorVA:        valorVA,
		ValorCesta:     valorCesta,
		ValorTotal:     valorVA.Add(valorCesta),
		Detalhe: entity.DetalheCalculo{
			FaltasInjustificadas: in.FaltasInjustificadas,
			FaltasJustificadas:   in.FaltasJustificadas,
			DiasFerias:           in.DiasFerias,
			TotalAjustes:         in.TotalAjustes,
			PenalidadeCesta:      penalidade.Mul(decimal.NewFromInt(100)).StringFixed(0) + "%",
		},
	}, nil
}

// penalidadeCesta devolve a fração de corte da cesta pela contagem de faltas
// injustificadas: 0 → 0%, 1 → 25%, 2 → 50%, ≥3 → 100%.
func penalidadeCesta(faltasInjustificadas int) decimal.Decimal {
	switch {
	case faltasInjustificadas <= 0:
		return decimal.Zero
	case faltasInjustificadas == 1:
		return decimal.NewFromFloat(0.25)
	case faltasInjustificadas == 2:
		return decimal.NewFromFloat(0.50)
	default:
		return decimal.NewFromInt(1)
	}
}
