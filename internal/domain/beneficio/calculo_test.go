package beneficio_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/domain/beneficio"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// paramsPadrao replica os valores de referência da planilha de homologação:
// VA 15,00/dia, cesta 142,05, teto 3.500,00, 22 dias úteis.
func paramsPadrao() beneficio.Parametros {
	return beneficio.Parametros{
		ValorDiaVA:        dec("15.00"),
		ValorCesta:        dec("142.05"),
		TetoSalarialCesta: dec("3500.00"),
		DiasUteisPadrao:   22,
	}
}

func entradaBase() beneficio.Entrada {
	return beneficio.Entrada{
		Matricula:    "F001",
		Salario:      dec("2500.00"),
		DataAdmissao: time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC),
		Periodo:      "2025-08",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Cenário de homologação completo
// ──────────────────────────────────────────────────────────────────────────────

// Funcionário com 1 falta injustificada e 1 justificada: VA perde 2 dias
// (qualquer ausência desconta) e a cesta sofre 25% (só a injustificada conta).
func TestCalcular_CenarioHomologacao(t *testing.T) {
	in := entradaBase()
	in.FaltasInjustificadas = 1
	in.FaltasJustificadas = 1

	res, err := beneficio.Calcular(in, paramsPadrao())
	require.NoError(t, err)

	assert.Equal(t, 22, res.DiasCreditados)
	assert.True(t, dec("300.00").Equal(res.ValorVA), "VA: esperado 300.00, veio %s", res.ValorVA)
	assert.True(t, dec("106.54").Equal(res.ValorCesta), "cesta: esperado 106.54, veio %s", res.ValorCesta)
	assert.True(t, dec("406.54").Equal(res.ValorTotal), "total: esperado 406.54, veio %s", res.ValorTotal)
	assert.Equal(t, "25%", res.Detalhe.PenalidadeCesta)
}

func TestCalcular_SemAusencias(t *testing.T) {
	res, err := beneficio.Calcular(entradaBase(), paramsPadrao())
	require.NoError(t, err)

	assert.True(t, dec("330.00").Equal(res.ValorVA))
	assert.True(t, dec("142.05").Equal(res.ValorCesta))
	assert.True(t, dec("472.05").Equal(res.ValorTotal))
	assert.Equal(t, "0%", res.Detalhe.PenalidadeCesta)
}

// ──────────────────────────────────────────────────────────────────────────────
// Vale-alimentação
// ──────────────────────────────────────────────────────────────────────────────

// Férias e justificadas descontam o VA tanto quanto injustificadas.
func TestCalcular_FeriasDescontamVA(t *testing.T) {
	in := entradaBase()
	in.DiasFerias = 10

	res, err := beneficio.Calcular(in, paramsPadrao())
	require.NoError(t, err)

	// 22 − 10 = 12 dias × 15,00.
	assert.True(t, dec("180.00").Equal(res.ValorVA))
	// Férias não penalizam a cesta.
	assert.True(t, dec("142.05").Equal(res.ValorCesta))
}

func TestCalcular_VANaoFicaNegativo(t *testing.T) {
	in := entradaBase()
	in.FaltasJustificadas = 15
	in.DiasFerias = 15

	res, err := beneficio.Calcular(in, paramsPadrao())
	require.NoError(t, err)

	assert.True(t, res.ValorVA.IsZero(), "VA deve travar em zero, veio %s", res.ValorVA)
}

func TestCalcular_ContagemNegativaRejeitada(t *testing.T) {
	in := entradaBase()
	in.FaltasInjustificadas = -1
	_, err := beneficio.Calcular(in, paramsPadrao())
	assert.Error(t, err)
}

func TestCalcular_PeriodoInvalidoRejeitado(t *testing.T) {
	in := entradaBase()
	in.Periodo = "agosto-2025"
	_, err := beneficio.Calcular(in, paramsPadrao())
	assert.Error(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cesta básica
// ──────────────────────────────────────────────────────────────────────────────

func TestCalcular_SalarioAcimaDoTetoSemCesta(t *testing.T) {
	in := entradaBase()
	in.Salario = dec("3500.01")

	res, err := beneficio.Calcular(in, paramsPadrao())
	require.NoError(t, err)

	assert.True(t, res.ValorCesta.IsZero())
	assert.True(t, dec("330.00").Equal(res.ValorTotal), "VA permanece intacto acima do teto")
}

func TestCalcular_SalarioExatoNoTetoRecebeCesta(t *testing.T) {
	in := entradaBase()
	in.Salario = dec("3500.00")

	res, err := beneficio.Calcular(in, paramsPadrao())
	require.NoError(t, err)
	assert.True(t, dec("142.05").Equal(res.ValorCesta), "teto é inclusivo")
}

func TestCalcular_PenalidadeEscalonada(t *testing.T) {
	casos := []struct {
		faltas     int
		cesta      string
		penalidade string
	}{
		{0, "142.05", "0%"},
		{1, "106.54", "25%"},
		{2, "71.03", "50%"},
		{3, "0", "100%"},
		{7, "0", "100%"},
	}
	for _, c := range casos {
		in := entradaBase()
		in.FaltasInjustificadas = c.faltas

		res, err := beneficio.Calcular(in, paramsPadrao())
		require.NoError(t, err)
		assert.True(t, dec(c.cesta).Equal(res.ValorCesta),
			"%d faltas: cesta esperada %s, veio %s", c.faltas, c.cesta, res.ValorCesta)
		assert.Equal(t, c.penalidade, res.Detalhe.PenalidadeCesta)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Proração por admissão no mês
// ──────────────────────────────────────────────────────────────────────────────

// Admitido em 18/08/2025 (segunda): restam 10 dias úteis até o fim do mês.
func TestCalcular_AdmissaoNoMesProrata(t *testing.T) {
	in := entradaBase()
	in.DataAdmissao = time.Date(2025, time.August, 18, 0, 0, 0, 0, time.UTC)

	res, err := beneficio.Calcular(in, paramsPadrao())
	require.NoError(t, err)

	assert.Equal(t, 10, res.DiasCreditados)
	assert.True(t, dec("150.00").Equal(res.ValorVA))
	// 142,05 / 22 × 10 = 64,5681... → 64,57.
	assert.True(t, dec("64.57").Equal(res.ValorCesta), "cesta prorateada: veio %s", res.ValorCesta)
}

func TestCalcular_AdmissaoEmOutroMesSemProrata(t *testing.T) {
	in := entradaBase()
	in.DataAdmissao = time.Date(2025, time.July, 18, 0, 0, 0, 0, time.UTC)

	res, err := beneficio.Calcular(in, paramsPadrao())
	require.NoError(t, err)
	assert.Equal(t, 22, res.DiasCreditados)
}

// Admitido no primeiro dia útil do mês: os dias restantes (21 em agosto/2025)
// não podem exceder o padrão, mas aqui ficam abaixo e valem.
func TestCalcular_AdmissaoNoInicioDoMesLimitadaAoPadrao(t *testing.T) {
	in := entradaBase()
	in.DataAdmissao = time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)

	res, err := beneficio.Calcular(in, paramsPadrao())
	require.NoError(t, err)
	assert.Equal(t, 21, res.DiasCreditados)
}
