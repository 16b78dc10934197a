package processamento_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/application/dto"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/application/processamento"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/domain"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/domain/entity"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/domain/repository"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/pkg/logger"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func dia(ano int, mes time.Month, d int) time.Time {
	return time.Date(ano, mes, d, 0, 0, 0, 0, time.UTC)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

type fakePeriodoRepo struct {
	porID map[string]*entity.Periodo
}

func newFakePeriodoRepo() *fakePeriodoRepo {
	return &fakePeriodoRepo{porID: make(map[string]*entity.Periodo)}
}

func (r *fakePeriodoRepo) Create(p *entity.Periodo) error {
	cp := *p
	r.porID[p.ID] = &cp
	return nil
}

func (r *fakePeriodoRepo) GetByID(id string) (*entity.Periodo, error) {
	if p, ok := r.porID[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *fakePeriodoRepo) GetByNome(nome string) (*entity.Periodo, error) {
	for _, p := range r.porID {
		if p.Nome == nome {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakePeriodoRepo) Update(p *entity.Periodo) error {
	if _, ok := r.porID[p.ID]; !ok {
		return domain.ErrNaoEncontrado
	}
	cp := *p
	r.porID[p.ID] = &cp
	return nil
}

func (r *fakePeriodoRepo) List(limit, offset int) ([]*entity.Periodo, error) {
	var out []*entity.Periodo
	for _, p := range r.porID {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakePeriodoRepo) ListDesbloqueados() ([]*entity.Periodo, error) {
	var out []*entity.Periodo
	for _, p := range r.porID {
		if !p.Bloqueado() {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeConfigRepo struct {
	cfg *entity.Configuracao
}

func (r *fakeConfigRepo) Get() (*entity.Configuracao, error) { return r.cfg, nil }
func (r *fakeConfigRepo) Save(c *entity.Configuracao) error  { r.cfg = c; return nil }

type fakeFuncionarioRepo struct {
	funcionarios []*entity.Funcionario
}

func (r *fakeFuncionarioRepo) Create(f *entity.Funcionario) error { return nil }
func (r *fakeFuncionarioRepo) GetByMatricula(m string) (*entity.Funcionario, error) {
	for _, f := range r.funcionarios {
		if f.Matricula == m {
			return f, nil
		}
	}
	return nil, nil
}
func (r *fakeFuncionarioRepo) Update(f *entity.Funcionario) error { return nil }
func (r *fakeFuncionarioRepo) Delete(m string) error              { return nil }
func (r *fakeFuncionarioRepo) List(limit, offset int) ([]*entity.Funcionario, error) {
	return r.funcionarios, nil
}
func (r *fakeFuncionarioRepo) ListByStatus(status []string) ([]*entity.Funcionario, error) {
	var out []*entity.Funcionario
	for _, f := range r.funcionarios {
		for _, s := range status {
			if f.Status == s {
				out = append(out, f)
				break
			}
		}
	}
	return out, nil
}
func (r *fakeFuncionarioRepo) Count() (int, error) { return len(r.funcionarios), nil }
func (r *fakeFuncionarioRepo) DeleteAllExcept(protegidas []string) (int64, error) {
	return 0, nil
}

type fakeAusenciaRepo struct {
	ausencias []*entity.Ausencia
}

func (r *fakeAusenciaRepo) Create(a *entity.Ausencia) error { return nil }

// ListByJanela replica a semântica meio-aberta (inicio, fim] do adaptador real.
func (r *fakeAusenciaRepo) ListByJanela(inicio, fim time.Time) ([]*entity.Ausencia, error) {
	var out []*entity.Ausencia
	for _, a := range r.ausencias {
		if a.Data.After(inicio) && !a.Data.After(fim) {
			out = append(out, a)
		}
	}
	return out, nil
}
func (r *fakeAusenciaRepo) ListByMatricula(m string, limit, offset int) ([]*entity.Ausencia, error) {
	return nil, nil
}
func (r *fakeAusenciaRepo) Delete(id string) error { return nil }
func (r *fakeAusenciaRepo) Count() (int, error)    { return len(r.ausencias), nil }
func (r *fakeAusenciaRepo) DeleteAllExcept(protegidas []string) (int64, error) {
	return 0, nil
}

type fakeAjusteRepo struct {
	ajustes []*entity.Ajuste
}

func (r *fakeAjusteRepo) Create(a *entity.Ajuste) error { return nil }
func (r *fakeAjusteRepo) ListByPeriodo(periodo string) ([]*entity.Ajuste, error) {
	var out []*entity.Ajuste
	for _, a := range r.ajustes {
		if a.Periodo == periodo {
			out = append(out, a)
		}
	}
	return out, nil
}
func (r *fakeAjusteRepo) Delete(id string) error { return nil }
func (r *fakeAjusteRepo) DeleteByPeriodo(periodo string) (int64, error) {
	return 0, nil
}

type fakeResultadoRepo struct {
	porPeriodo map[string][]*entity.ResultadoPeriodo
	deletes    int
}

func newFakeResultadoRepo() *fakeResultadoRepo {
	return &fakeResultadoRepo{porPeriodo: make(map[string][]*entity.ResultadoPeriodo)}
}

func (r *fakeResultadoRepo) DeleteByPeriodo(periodoID string) error {
	r.deletes++
	delete(r.porPeriodo, periodoID)
	return nil
}

func (r *fakeResultadoRepo) BulkInsert(resultados []*entity.ResultadoPeriodo) error {
	for _, res := range resultados {
		r.porPeriodo[res.PeriodoID] = append(r.porPeriodo[res.PeriodoID], res)
	}
	return nil
}

func (r *fakeResultadoRepo) ListByPeriodo(periodoID string) ([]*entity.ResultadoPeriodo, error) {
	return r.porPeriodo[periodoID], nil
}

func (r *fakeResultadoRepo) MatriculasDePeriodosBloqueados() ([]string, error) { return nil, nil }
func (r *fakeResultadoRepo) DeleteDePeriodosDesbloqueados() (int64, error)     { return 0, nil }
func (r *fakeResultadoRepo) Count() (int, error)                               { return 0, nil }

// fakeTxRunner executa o callback direto sobre os fakes, sem transação real.
type fakeTxRunner struct {
	resultadoRepo *fakeResultadoRepo
	periodoRepo   *fakePeriodoRepo
}

func (tx *fakeTxRunner) Run(_ context.Context, fn func(repository.ResultadoRepository, repository.PeriodoRepository) error) error {
	return fn(tx.resultadoRepo, tx.periodoRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cenário base
// ──────────────────────────────────────────────────────────────────────────────

type ambiente struct {
	uc          *processamento.ProcessarPeriodoUseCase
	periodos    *fakePeriodoRepo
	config      *fakeConfigRepo
	funcionario *fakeFuncionarioRepo
	ausencia    *fakeAusenciaRepo
	ajuste      *fakeAjusteRepo
	resultado   *fakeResultadoRepo
}

// novoAmbiente monta o caso de uso com um funcionário ativo (F001, salário
// 2.500,00) e a configuração de homologação: VA 15,00, cesta 142,05, teto
// 3.500,00, corte dia 25, 22 dias úteis.
func novoAmbiente() *ambiente {
	periodos := newFakePeriodoRepo()
	resultado := newFakeResultadoRepo()
	config := &fakeConfigRepo{cfg: &entity.Configuracao{
		ID:                1,
		ValorDiaVA:        dec("15.00"),
		ValorCesta:        dec("142.05"),
		TetoSalarialCesta: dec("3500.00"),
		DiaCorte:          25,
		DiasUteisPadrao:   22,
	}}
	funcionario := &fakeFuncionarioRepo{funcionarios: []*entity.Funcionario{
		{
			Matricula:    "F001",
			Nome:         "Ana Souza",
			Salario:      dec("2500.00"),
			Departamento: "Operações",
			Status:       entity.StatusAtivo,
			DataAdmissao: dia(2023, time.March, 1),
		},
	}}
	ausencia := &fakeAusenciaRepo{}
	ajuste := &fakeAjusteRepo{}
	log := logger.New(logger.Config{Env: "production", Level: "error"})

	uc := processamento.NewProcessarPeriodoUseCase(
		periodos, config, funcionario, ausencia, ajuste,
		&fakeTxRunner{resultadoRepo: resultado, periodoRepo: periodos},
		log,
	)
	return &ambiente{
		uc:          uc,
		periodos:    periodos,
		config:      config,
		funcionario: funcionario,
		ausencia:    ausencia,
		ajuste:      ajuste,
		resultado:   resultado,
	}
}

func processar(t *testing.T, amb *ambiente, req dto.ProcessarPeriodoRequest) *dto.ProcessarPeriodoResponse {
	t.Helper()
	out, err := amb.uc.Processar(context.Background(), "admin-01", req)
	require.NoError(t, err)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Processamento
// ──────────────────────────────────────────────────────────────────────────────

// Cenário de homologação: 1 falta injustificada + 1 justificada na janela →
// VA 300,00 + cesta 106,54 = 406,54.
func TestProcessar_CenarioHomologacao(t *testing.T) {
	amb := novoAmbiente()
	amb.ausencia.ausencias = []*entity.Ausencia{
		// No próprio dia de corte do mês anterior: fora da janela meio-aberta.
		{ID: "a0", Matricula: "F001", Data: dia(2025, time.July, 25), Tipo: entity.AusenciaInjustificada},
		{ID: "a1", Matricula: "F001", Data: dia(2025, time.August, 5), Tipo: entity.AusenciaInjustificada},
		// No dia de corte do mês alvo: dentro da janela.
		{ID: "a2", Matricula: "F001", Data: dia(2025, time.August, 25), Tipo: entity.AusenciaJustificada},
	}

	out := processar(t, amb, dto.ProcessarPeriodoRequest{Periodo: "2025-08"})

	assert.Equal(t, "2025-08", out.Periodo)
	assert.Equal(t, entity.PeriodoProcessado, out.Status)
	assert.Equal(t, 1, out.TotalFuncionarios)
	assert.True(t, dec("406.54").Equal(out.ValorTotal), "total: veio %s", out.ValorTotal)
	assert.Zero(t, out.AusenciasIgnoradas)

	resultados, _ := amb.resultado.ListByPeriodo(out.PeriodoID)
	require.Len(t, resultados, 1)
	res := resultados[0]
	assert.Equal(t, 1, res.Detalhe.FaltasInjustificadas)
	assert.Equal(t, 1, res.Detalhe.FaltasJustificadas)
	assert.True(t, dec("300.00").Equal(res.ValorVA))
	assert.True(t, dec("106.54").Equal(res.ValorCesta))

	periodo, _ := amb.periodos.GetByID(out.PeriodoID)
	require.NotNil(t, periodo)
	assert.Equal(t, "admin-01", periodo.ProcessadoPor)
	assert.NotNil(t, periodo.ProcessadoEm)
}

func TestProcessar_CriaPeriodoImplicitamente(t *testing.T) {
	amb := novoAmbiente()
	out := processar(t, amb, dto.ProcessarPeriodoRequest{Periodo: "2025-08"})

	periodo, _ := amb.periodos.GetByNome("2025-08")
	require.NotNil(t, periodo, "período deve ser criado na primeira apuração")
	assert.Equal(t, out.PeriodoID, periodo.ID)
}

func TestProcessar_NomeInvalidoSemPeriodoExistente(t *testing.T) {
	amb := novoAmbiente()
	_, err := amb.uc.Processar(context.Background(), "admin-01", dto.ProcessarPeriodoRequest{Periodo: "agosto"})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestProcessar_ReprocessamentoSubstituiResultados(t *testing.T) {
	amb := novoAmbiente()
	primeira := processar(t, amb, dto.ProcessarPeriodoRequest{Periodo: "2025-08"})
	segunda := processar(t, amb, dto.ProcessarPeriodoRequest{Periodo: "2025-08"})

	assert.Equal(t, primeira.PeriodoID, segunda.PeriodoID)
	assert.True(t, primeira.ValorTotal.Equal(segunda.ValorTotal), "reprocessamento sem mudança de insumos é idempotente")

	resultados, _ := amb.resultado.ListByPeriodo(segunda.PeriodoID)
	assert.Len(t, resultados, 1, "o conjunto é substituído, nunca acumulado")
	assert.Equal(t, 2, amb.resultado.deletes)
}

func TestProcessar_AjustesEntramNoTotal(t *testing.T) {
	amb := novoAmbiente()
	amb.ajuste.ajustes = []*entity.Ajuste{
		{ID: "j1", Matricula: "F001", Periodo: "2025-08", Tipo: entity.AjusteCredito, Valor: dec("50.00")},
		{ID: "j2", Matricula: "F001", Periodo: "2025-08", Tipo: entity.AjusteDebito, Valor: dec("20.00")},
	}

	out := processar(t, amb, dto.ProcessarPeriodoRequest{Periodo: "2025-08"})

	// Sem ausências: 330,00 + 142,05 + (50 − 20) = 502,05.
	assert.True(t, dec("502.05").Equal(out.ValorTotal), "total com ajustes: veio %s", out.ValorTotal)

	resultados, _ := amb.resultado.ListByPeriodo(out.PeriodoID)
	require.Len(t, resultados, 1)
	assert.True(t, dec("30.00").Equal(resultados[0].Detalhe.TotalAjustes))
}

func TestProcessar_FeriasDescontamPelaVigencia(t *testing.T) {
	amb := novoAmbiente()
	inicio := dia(2025, time.August, 11) // segunda
	fim := dia(2025, time.August, 15)    // sexta
	amb.funcionario.funcionarios[0].Status = entity.StatusFerias
	amb.funcionario.funcionarios[0].StatusInicio = &inicio
	amb.funcionario.funcionarios[0].StatusFim = &fim

	out := processar(t, amb, dto.ProcessarPeriodoRequest{Periodo: "2025-08"})

	// 5 dias de férias: VA (22−5)×15 = 255,00; cesta intacta 142,05.
	assert.True(t, dec("397.05").Equal(out.ValorTotal), "total com férias: veio %s", out.ValorTotal)
}

func TestProcessar_DesligadoForaDaFolha(t *testing.T) {
	amb := novoAmbiente()
	amb.funcionario.funcionarios = append(amb.funcionario.funcionarios, &entity.Funcionario{
		Matricula:    "F099",
		Nome:         "Ex-colaborador",
		Salario:      dec("2000.00"),
		Status:       entity.StatusDesligado,
		DataAdmissao: dia(2020, time.January, 2),
	})

	out := processar(t, amb, dto.ProcessarPeriodoRequest{Periodo: "2025-08"})
	assert.Equal(t, 1, out.TotalFuncionarios)
}

func TestProcessar_AusenciaMalformadaIgnoradaEContada(t *testing.T) {
	amb := novoAmbiente()
	amb.ausencia.ausencias = []*entity.Ausencia{
		{ID: "a1", Matricula: "F001", Data: dia(2025, time.August, 5), Tipo: "MEIO_PERIODO"},
	}

	out := processar(t, amb, dto.ProcessarPeriodoRequest{Periodo: "2025-08"})

	assert.Equal(t, 1, out.AusenciasIgnoradas)
	// A linha malformada não desconta nada.
	assert.True(t, dec("472.05").Equal(out.ValorTotal))
}

// ──────────────────────────────────────────────────────────────────────────────
// Guardas de configuração e status
// ──────────────────────────────────────────────────────────────────────────────

func TestProcessar_ConfiguracaoAusenteAbortaSemEscrever(t *testing.T) {
	amb := novoAmbiente()
	amb.config.cfg = nil

	_, err := amb.uc.Processar(context.Background(), "admin-01", dto.ProcessarPeriodoRequest{Periodo: "2025-08"})
	assert.ErrorIs(t, err, domain.ErrConfiguracaoAusente)
	assert.Zero(t, amb.resultado.deletes, "nenhum resultado deve ser tocado")
}

func TestProcessar_PeriodoSeladoNuncaReprocessa(t *testing.T) {
	amb := novoAmbiente()
	for _, status := range []string{entity.PeriodoExportado, "CLOSED", "SELADO"} {
		amb.periodos.porID = map[string]*entity.Periodo{
			"p1": {ID: "p1", Nome: "2025-08", Status: status},
		}
		_, err := amb.uc.Processar(context.Background(), "admin-01",
			dto.ProcessarPeriodoRequest{Periodo: "2025-08", ConfirmarReprocessamento: true})
		assert.ErrorIs(t, err, domain.ErrPeriodoSelado, "status %q", status)
	}
}

func TestProcessar_AprovadoExigeConfirmacao(t *testing.T) {
	amb := novoAmbiente()
	aprovadoEm := dia(2025, time.September, 1)
	amb.periodos.porID["p1"] = &entity.Periodo{
		ID: "p1", Nome: "2025-08", Status: entity.PeriodoAprovado,
		AprovadoPor: "gestor-07", AprovadoEm: &aprovadoEm,
	}

	_, err := amb.uc.Processar(context.Background(), "admin-01", dto.ProcessarPeriodoRequest{Periodo: "2025-08"})
	assert.ErrorIs(t, err, domain.ErrReprocessoNaoConfirmado)

	out := processar(t, amb, dto.ProcessarPeriodoRequest{Periodo: "2025-08", ConfirmarReprocessamento: true})
	assert.Equal(t, entity.PeriodoProcessado, out.Status)

	periodo, _ := amb.periodos.GetByID("p1")
	assert.Empty(t, periodo.AprovadoPor, "reprocessar descarta a aprovação vigente")
	assert.Nil(t, periodo.AprovadoEm)
}

func TestProcessar_ProcessadoReprocessaSemConfirmacao(t *testing.T) {
	amb := novoAmbiente()
	processar(t, amb, dto.ProcessarPeriodoRequest{Periodo: "2025-08"})

	out, err := amb.uc.Processar(context.Background(), "admin-01", dto.ProcessarPeriodoRequest{Periodo: "2025-08"})
	require.NoError(t, err)
	assert.Equal(t, entity.PeriodoProcessado, out.Status)
}
