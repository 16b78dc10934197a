// Package datas concentra a aritmética de calendário do domínio de benefícios:
// contagem de dias úteis (seg–sex), janela de apuração de ausências por dia de
// corte e interseção de afastamentos com o mês-calendário.
//
// Todas as funções são puras e trabalham em UTC; feriados não entram na conta
// (o desconto por feriado é tratado como ajuste manual).
package datas

import (
	"fmt"
	"time"
)

// MesDoPeriodo interpreta o nome de um período ("YYYY-MM") e devolve o primeiro
// dia do mês correspondente.
func MesDoPeriodo(nome string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01", nome, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("datas: período %q inválido (esperado YYYY-MM): %w", nome, err)
	}
	return t, nil
}

// UltimoDiaDoMes devolve o último dia do mês da data de referência.
func UltimoDiaDoMes(ref time.Time) time.Time {
	primeiro := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	return primeiro.AddDate(0, 1, -1)
}

// DiasUteis conta os dias úteis (segunda a sexta) no intervalo [inicio, fim],
// inclusivo nas duas pontas. Devolve 0 se fim for anterior a inicio.
func DiasUteis(inicio, fim time.Time) int {
	inicio = truncar(inicio)
	fim = truncar(fim)
	total := 0
	for d := inicio; !d.After(fim); d = d.AddDate(0, 0, 1) {
		wd := d.Weekday()
		if wd != time.Saturday && wd != time.Sunday {
			total++
		}
	}
	return total
}

// JanelaApuracao calcula a janela de observação de ausências de um período:
// fim = dia de corte do mês alvo; início = dia de corte do mês anterior
// (dezembro do ano anterior quando o período é janeiro). A janela é meio-aberta
// (inicio, fim]: o próprio dia de corte pertence ao período que fecha nele,
// nunca a dois períodos consecutivos.
func JanelaApuracao(periodo string, diaCorte int) (inicio, fim time.Time, err error) {
	if diaCorte < 1 || diaCorte > 31 {
		return time.Time{}, time.Time{}, fmt.Errorf("datas: dia de corte %d fora do intervalo 1..31", diaCorte)
	}
	mes, err := MesDoPeriodo(periodo)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	fim = diaDoMes(mes, diaCorte)
	inicio = diaDoMes(mes.AddDate(0, -1, 0), diaCorte)
	return inicio, fim, nil
}

// IntersecaoDiasUteisNoMes conta os dias úteis da interseção entre o intervalo
// de afastamento [inicio, fim] e o mês-calendário de mesRef. Devolve 0 se
// qualquer ponta for nula ou se os intervalos não se cruzarem.
//
// A interseção usa o mês-calendário, não a janela de corte; comportamento
// herdado do sistema de origem (ver DESIGN.md).
func IntersecaoDiasUteisNoMes(inicio, fim *time.Time, mesRef time.Time) int {
	if inicio == nil || fim == nil {
		return 0
	}
	mesIni := time.Date(mesRef.Year(), mesRef.Month(), 1, 0, 0, 0, 0, time.UTC)
	mesFim := UltimoDiaDoMes(mesRef)

	ini := truncar(*inicio)
	fi := truncar(*fim)
	if ini.Before(mesIni) {
		ini = mesIni
	}
	if fi.After(mesFim) {
		fi = mesFim
	}
	if fi.Before(ini) {
		return 0
	}
	return DiasUteis(ini, fi)
}

// diaDoMes devolve o dia pedido dentro do mês de ref, saturando no último dia
// quando o mês é mais curto (corte 31 em abril → 30; em fevereiro → 28/29).
func diaDoMes(ref time.Time, dia int) time.Time {
	ultimo := UltimoDiaDoMes(ref)
	if dia > ultimo.Day() {
		dia = ultimo.Day()
	}
	return time.Date(ref.Year(), ref.Month(), dia, 0, 0, 0, 0, time.UTC)
}

func truncar(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
