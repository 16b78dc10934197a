package manutencao_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/application/manutencao"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/domain"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/domain/entity"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes: só os métodos que o reset exercita têm comportamento; o resto é no-op.
// ──────────────────────────────────────────────────────────────────────────────

type fakeFuncionarioRepo struct {
	matriculas []string
}

func (r *fakeFuncionarioRepo) Create(f *entity.Funcionario) error                    { return nil }
func (r *fakeFuncionarioRepo) GetByMatricula(m string) (*entity.Funcionario, error)  { return nil, nil }
func (r *fakeFuncionarioRepo) Update(f *entity.Funcionario) error                    { return nil }
func (r *fakeFuncionarioRepo) Delete(m string) error                                 { return nil }
func (r *fakeFuncionarioRepo) List(limit, offset int) ([]*entity.Funcionario, error) { return nil, nil }
func (r *fakeFuncionarioRepo) ListByStatus(status []string) ([]*entity.Funcionario, error) {
	return nil, nil
}
func (r *fakeFuncionarioRepo) Count() (int, error) { return len(r.matriculas), nil }
func (r *fakeFuncionarioRepo) DeleteAllExcept(protegidas []string) (int64, error) {
	var restantes []string
	removidos := int64(0)
	for _, m := range r.matriculas {
		if contem(protegidas, m) {
			restantes = append(restantes, m)
		} else {
			removidos++
		}
	}
	r.matriculas = restantes
	return removidos, nil
}

type fakeAusenciaRepo struct {
	porMatricula []string // uma entrada por linha de ausência
}

func (r *fakeAusenciaRepo) Create(a *entity.Ausencia) error { return nil }
func (r *fakeAusenciaRepo) ListByJanela(inicio, fim time.Time) ([]*entity.Ausencia, error) {
	return nil, nil
}
func (r *fakeAusenciaRepo) ListByMatricula(m string, limit, offset int) ([]*entity.Ausencia, error) {
	return nil, nil
}
func (r *fakeAusenciaRepo) Delete(id string) error { return nil }
func (r *fakeAusenciaRepo) Count() (int, error)    { return len(r.porMatricula), nil }
func (r *fakeAusenciaRepo) DeleteAllExcept(protegidas []string) (int64, error) {
	var restantes []string
	removidos := int64(0)
	for _, m := range r.porMatricula {
		if contem(protegidas, m) {
			restantes = append(restantes, m)
		} else {
			removidos++
		}
	}
	r.porMatricula = restantes
	return removidos, nil
}

type fakeAjusteRepo struct {
	porPeriodo map[string]int
}

func (r *fakeAjusteRepo) Create(a *entity.Ajuste) error { return nil }
func (r *fakeAjusteRepo) ListByPeriodo(periodo string) ([]*entity.Ajuste, error) {
	return nil, nil
}
func (r *fakeAjusteRepo) Delete(id string) error { return nil }
func (r *fakeAjusteRepo) DeleteByPeriodo(periodo string) (int64, error) {
	n := int64(r.porPeriodo[periodo])
	delete(r.porPeriodo, periodo)
	return n, nil
}

type fakePeriodoRepo struct {
	porNome map[string]*entity.Periodo
}

func (r *fakePeriodoRepo) Create(p *entity.Periodo) error             { return nil }
func (r *fakePeriodoRepo) GetByID(id string) (*entity.Periodo, error) { return nil, nil }
func (r *fakePeriodoRepo) GetByNome(nome string) (*entity.Periodo, error) {
	return r.porNome[nome], nil
}
func (r *fakePeriodoRepo) Update(p *entity.Periodo) error                    { r.porNome[p.Nome] = p; return nil }
func (r *fakePeriodoRepo) List(limit, offset int) ([]*entity.Periodo, error) { return nil, nil }
func (r *fakePeriodoRepo) ListDesbloqueados() ([]*entity.Periodo, error) {
	var out []*entity.Periodo
	for _, p := range r.porNome {
		if !p.Bloqueado() {
			out = append(out, p)
		}
	}
	return out, nil
}

// fakeResultadoRepo simula resultados com (matricula, status do período dono).
type fakeResultadoRepo struct {
	linhas []linhaResultado
}

type linhaResultado struct {
	matricula string
	status    string
}

func (r *fakeResultadoRepo) DeleteByPeriodo(periodoID string) error               { return nil }
func (r *fakeResultadoRepo) BulkInsert(rs []*entity.ResultadoPeriodo) error       { return nil }
func (r *fakeResultadoRepo) ListByPeriodo(id string) ([]*entity.ResultadoPeriodo, error) {
	return nil, nil
}
func (r *fakeResultadoRepo) MatriculasDePeriodosBloqueados() ([]string, error) {
	var out []string
	for _, l := range r.linhas {
		p := entity.Periodo{Status: l.status}
		if p.Bloqueado() && !contem(out, l.matricula) {
			out = append(out, l.matricula)
		}
	}
	return out, nil
}
func (r *fakeResultadoRepo) DeleteDePeriodosDesbloqueados() (int64, error) {
	var restantes []linhaResultado
	removidos := int64(0)
	for _, l := range r.linhas {
		p := entity.Periodo{Status: l.status}
		if p.Bloqueado() {
			restantes = append(restantes, l)
		} else {
			removidos++
		}
	}
	r.linhas = restantes
	return removidos, nil
}
func (r *fakeResultadoRepo) Count() (int, error) { return len(r.linhas), nil }

func contem(lista []string, s string) bool {
	for _, v := range lista {
		if v == s {
			return true
		}
	}
	return false
}

type ambiente struct {
	uc          *manutencao.ResetUseCase
	funcionario *fakeFuncionarioRepo
	ausencia    *fakeAusenciaRepo
	ajuste      *fakeAjusteRepo
	periodo     *fakePeriodoRepo
	resultado   *fakeResultadoRepo
}

func novoAmbiente() *ambiente {
	funcionario := &fakeFuncionarioRepo{}
	ausencia := &fakeAusenciaRepo{}
	ajuste := &fakeAjusteRepo{porPeriodo: make(map[string]int)}
	periodo := &fakePeriodoRepo{porNome: make(map[string]*entity.Periodo)}
	resultado := &fakeResultadoRepo{}
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	return &ambiente{
		uc:          manutencao.NewResetUseCase(funcionario, ausencia, ajuste, periodo, resultado, log),
		funcionario: funcionario,
		ausencia:    ausencia,
		ajuste:      ajuste,
		periodo:     periodo,
		resultado:   resultado,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// LimparFuncionarios / LimparAusencias
// ──────────────────────────────────────────────────────────────────────────────

func TestLimparFuncionarios_PreservaReferenciadosPorPeriodoBloqueado(t *testing.T) {
	amb := novoAmbiente()
	amb.funcionario.matriculas = []string{"F001", "F002", "F003"}
	amb.resultado.linhas = []linhaResultado{
		{matricula: "F001", status: entity.PeriodoAprovado},
		{matricula: "F002", status: entity.PeriodoAberto},
	}

	out, err := amb.uc.LimparFuncionarios(context.Background(), "admin-01")
	require.NoError(t, err)

	assert.Equal(t, int64(2), out.Removidos)
	assert.Equal(t, int64(1), out.Preservados)
	assert.True(t, out.Parcial)
	assert.Equal(t, []string{"F001"}, amb.funcionario.matriculas)
}

func TestLimparFuncionarios_SemBloqueadosRemoveTudo(t *testing.T) {
	amb := novoAmbiente()
	amb.funcionario.matriculas = []string{"F001", "F002"}
	amb.resultado.linhas = []linhaResultado{
		{matricula: "F001", status: entity.PeriodoProcessado},
	}

	out, err := amb.uc.LimparFuncionarios(context.Background(), "admin-01")
	require.NoError(t, err)

	assert.Equal(t, int64(2), out.Removidos)
	assert.Zero(t, out.Preservados)
	assert.False(t, out.Parcial)
	assert.Empty(t, amb.funcionario.matriculas)
}

// A grafia legada de status bloqueado protege igual à canônica.
func TestLimparAusencias_GrafiaLegadaProtege(t *testing.T) {
	amb := novoAmbiente()
	amb.ausencia.porMatricula = []string{"F001", "F001", "F002"}
	amb.resultado.linhas = []linhaResultado{
		{matricula: "F001", status: "CLOSED"},
	}

	out, err := amb.uc.LimparAusencias(context.Background(), "admin-01")
	require.NoError(t, err)

	assert.Equal(t, int64(1), out.Removidos)
	assert.Equal(t, int64(2), out.Preservados)
	assert.True(t, out.Parcial)
}

// ──────────────────────────────────────────────────────────────────────────────
// LimparCalculos
// ──────────────────────────────────────────────────────────────────────────────

func TestLimparCalculos_MantemResultadosDeBloqueados(t *testing.T) {
	amb := novoAmbiente()
	amb.resultado.linhas = []linhaResultado{
		{matricula: "F001", status: entity.PeriodoAprovado},
		{matricula: "F001", status: entity.PeriodoExportado},
		{matricula: "F001", status: entity.PeriodoProcessado},
		{matricula: "F002", status: entity.PeriodoAberto},
	}

	out, err := amb.uc.LimparCalculos(context.Background(), "admin-01")
	require.NoError(t, err)

	assert.Equal(t, int64(2), out.Removidos)
	assert.Equal(t, int64(2), out.Preservados)
	assert.True(t, out.Parcial)
	assert.Len(t, amb.resultado.linhas, 2)
}

// Apagar os resultados de um período processado deve devolvê-lo a ABERTO com
// os agregados zerados; um PROCESSADO vazio poderia ser aprovado e selado
// sobre um total que não tem mais linhas por trás.
func TestLimparCalculos_ReverteProcessadoParaAberto(t *testing.T) {
	amb := novoAmbiente()
	processadoEm := time.Date(2025, time.September, 1, 12, 0, 0, 0, time.UTC)
	amb.periodo.porNome["2025-08"] = &entity.Periodo{
		ID: "p1", Nome: "2025-08", Status: entity.PeriodoProcessado,
		ValorTotal: decimal.RequireFromString("406.54"), TotalFuncionarios: 1,
		ProcessadoPor: "rh-01", ProcessadoEm: &processadoEm,
	}
	amb.periodo.porNome["2025-07"] = &entity.Periodo{
		ID: "p0", Nome: "2025-07", Status: entity.PeriodoAprovado,
		ValorTotal: decimal.RequireFromString("812.00"), TotalFuncionarios: 2,
	}
	amb.resultado.linhas = []linhaResultado{
		{matricula: "F001", status: entity.PeriodoProcessado},
		{matricula: "F001", status: entity.PeriodoAprovado},
	}

	out, err := amb.uc.LimparCalculos(context.Background(), "admin-01")
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.Removidos)

	revertido := amb.periodo.porNome["2025-08"]
	assert.Equal(t, entity.PeriodoAberto, revertido.Status)
	assert.True(t, revertido.ValorTotal.IsZero())
	assert.Zero(t, revertido.TotalFuncionarios)
	assert.Empty(t, revertido.ProcessadoPor)
	assert.Nil(t, revertido.ProcessadoEm)

	aprovado := amb.periodo.porNome["2025-07"]
	assert.Equal(t, entity.PeriodoAprovado, aprovado.Status)
	assert.Equal(t, "812.00", aprovado.ValorTotal.StringFixed(2))
	assert.Equal(t, 2, aprovado.TotalFuncionarios)
}

// ──────────────────────────────────────────────────────────────────────────────
// LimparAjustesPeriodo
// ──────────────────────────────────────────────────────────────────────────────

func TestLimparAjustesPeriodo_PeriodoAberto(t *testing.T) {
	amb := novoAmbiente()
	amb.ajuste.porPeriodo["2025-08"] = 4
	amb.periodo.porNome["2025-08"] = &entity.Periodo{ID: "p1", Nome: "2025-08", Status: entity.PeriodoAberto}

	out, err := amb.uc.LimparAjustesPeriodo(context.Background(), "admin-01", "2025-08")
	require.NoError(t, err)
	assert.Equal(t, int64(4), out.Removidos)
}

// Período sem linha ainda não foi processado: conta como aberto.
func TestLimparAjustesPeriodo_PeriodoInexistente(t *testing.T) {
	amb := novoAmbiente()
	amb.ajuste.porPeriodo["2025-09"] = 2

	out, err := amb.uc.LimparAjustesPeriodo(context.Background(), "admin-01", "2025-09")
	require.NoError(t, err)
	assert.Equal(t, int64(2), out.Removidos)
}

func TestLimparAjustesPeriodo_ProcessadoRejeitado(t *testing.T) {
	amb := novoAmbiente()
	amb.ajuste.porPeriodo["2025-08"] = 4
	amb.periodo.porNome["2025-08"] = &entity.Periodo{ID: "p1", Nome: "2025-08", Status: entity.PeriodoProcessado}

	_, err := amb.uc.LimparAjustesPeriodo(context.Background(), "admin-01", "2025-08")
	assert.ErrorIs(t, err, domain.ErrTransicaoInvalida)
	assert.Equal(t, 4, amb.ajuste.porPeriodo["2025-08"], "nada deve ser removido")
}

func TestLimparAjustesPeriodo_BloqueadoRejeitado(t *testing.T) {
	for _, status := range []string{entity.PeriodoAprovado, entity.PeriodoExportado, "SELADO"} {
		amb := novoAmbiente()
		amb.ajuste.porPeriodo["2025-08"] = 1
		amb.periodo.porNome["2025-08"] = &entity.Periodo{ID: "p1", Nome: "2025-08", Status: status}

		_, err := amb.uc.LimparAjustesPeriodo(context.Background(), "admin-01", "2025-08")
		assert.ErrorIs(t, err, domain.ErrPeriodoBloqueado, "status %q", status)
	}
}
