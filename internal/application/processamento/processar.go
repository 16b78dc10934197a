// Package processamento orquestra a apuração completa de um período:
// resolve/cria o registro do período, carrega funcionários, ausências e
// ajustes, invoca o motor de cálculo por funcionário e substitui o conjunto
// de resultados em uma transação.
//
// Invocações concorrentes de Processar para o MESMO período não são
// coordenadas aqui; o chamador deve serializar (um reprocessamento em voo por
// período).
package processamento

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/application/dto"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/domain"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/domain/beneficio"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/domain/entity"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/domain/repository"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/pkg/datas"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/pkg/logger"
)

// ProcessarPeriodoUseCase executa a apuração de benefícios de um período.
type ProcessarPeriodoUseCase struct {
	periodoRepo     repository.PeriodoRepository
	configRepo      repository.ConfiguracaoRepository
	funcionarioRepo repository.FuncionarioRepository
	ausenciaRepo    repository.AusenciaRepository
	ajusteRepo      repository.AjusteRepository
	txRunner        TxRunner
	log             *logger.Logger
}

// NewProcessarPeriodoUseCase constrói o caso de uso.
func NewProcessarPeriodoUseCase(
	periodoRepo repository.PeriodoRepository,
	configRepo repository.ConfiguracaoRepository,
	funcionarioRepo repository.FuncionarioRepository,
	ausenciaRepo repository.AusenciaRepository,
	ajusteRepo repository.AjusteRepository,
	txRunner TxRunner,
	log *logger.Logger,
) *ProcessarPeriodoUseCase {
	return &ProcessarPeriodoUseCase{
		periodoRepo:     periodoRepo,
		configRepo:      configRepo,
		funcionarioRepo: funcionarioRepo,
		ausenciaRepo:    ausenciaRepo,
		ajusteRepo:      ajusteRepo,
		txRunner:        txRunner,
		log:             log,
	}
}

// Processar executa a apuração completa. Toda falha de leitura/configuração
// aborta antes de qualquer escrita; o replace dos resultados roda em
// transação, então o reprocessamento é idempotente e seguro de repetir.
func (uc *ProcessarPeriodoUseCase) Processar(ctx context.Context, ator string, in dto.ProcessarPeriodoRequest) (*dto.ProcessarPeriodoResponse, error) {
	// 1. Resolve o período por nome ou ID; cria ABERTO se o nome ainda não tem linha.
	periodo, err := uc.resolverPeriodo(in.Periodo)
	if err != nil {
		return nil, err
	}

	// Guardas de status. Selado nunca reprocessa; aprovado só com confirmação
	// explícita (reabre e descarta a aprovação vigente); processado reprocessa
	// livre, mas fica registrado como correção.
	switch periodo.StatusCanonico() {
	case entity.PeriodoExportado:
		return nil, fmt.Errorf("%w: período %s", domain.ErrPeriodoSelado, periodo.Nome)
	case entity.PeriodoAprovado:
		if !in.ConfirmarReprocessamento {
			return nil, fmt.Errorf("%w: período %s", domain.ErrReprocessoNaoConfirmado, periodo.Nome)
		}
		uc.log.Warn().
			Str("evento", "correcao_reprocessamento").
			Str("periodo", periodo.Nome).
			Str("ator", ator).
			Str("aprovado_por", periodo.AprovadoPor).
			Msg("reprocessando período aprovado; aprovação descartada")
		periodo.AprovadoPor = ""
		periodo.AprovadoEm = nil
	case entity.PeriodoProcessado:
		uc.log.Info().
			Str("evento", "correcao_reprocessamento").
			Str("periodo", periodo.Nome).
			Str("ator", ator).
			Msg("reprocessando período já processado")
	}

	// 2. Configuração global: ausência é fatal, nada foi escrito ainda.
	cfg, err := uc.configRepo.Get()
	if err != nil {
		return nil, fmt.Errorf("carregar configuração: %w", err)
	}
	if cfg == nil {
		return nil, domain.ErrConfiguracaoAusente
	}
	if !cfg.Valida() {
		return nil, fmt.Errorf("%w: configuração global com valores fora dos limites", domain.ErrEntradaInvalida)
	}

	// 3. Janela de apuração de ausências pelo dia de corte.
	inicio, fim, err := datas.JanelaApuracao(periodo.Nome, cfg.DiaCorte)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrEntradaInvalida, err)
	}
	mes, _ := datas.MesDoPeriodo(periodo.Nome)

	// 4–5. Cargas: funcionários em folha, ausências da janela, ajustes do período.
	funcionarios, err := uc.funcionarioRepo.ListByStatus(entity.StatusEmFolha)
	if err != nil {
		return nil, fmt.Errorf("carregar funcionários: %w", err)
	}
	ausencias, err := uc.ausenciaRepo.ListByJanela(inicio, fim)
	if err != nil {
		return nil, fmt.Errorf("carregar ausências: %w", err)
	}
	ajustes, err := uc.ajusteRepo.ListByPeriodo(periodo.Nome)
	if err != nil {
		return nil, fmt.Errorf("carregar ajustes: %w", err)
	}

	faltas, ignoradas := agruparAusencias(ausencias)
	ajustesPorMatricula := agruparAjustes(ajustes)

	params := beneficio.Parametros{
		ValorDiaVA:        cfg.ValorDiaVA,
		ValorCesta:        cfg.ValorCesta,
		TetoSalarialCesta: cfg.TetoSalarialCesta,
		DiasUteisPadrao:   cfg.DiasUteisPadrao,
	}

	// 6. Cálculo por funcionário. Puro e independente entre funcionários;
	// executa sequencial porque o custo da rodada é dominado pelo I/O de banco.
	agora := time.Now()
	resultados := make([]*entity.ResultadoPeriodo, 0, len(funcionarios))
	valorTotal := decimal.Zero
	for _, f := range funcionarios {
		contagem := faltas[f.Matricula]
		totalAjustes := ajustesPorMatricula[f.Matricula]
		diasFerias := datas.IntersecaoDiasUteisNoMes(f.StatusInicio, f.StatusFim, mes)

		calc, err := beneficio.Calcular(beneficio.Entrada{
			Matricula:            f.Matricula,
			Salario:              f.Salario,
			DataAdmissao:         f.DataAdmissao,
			Periodo:              periodo.Nome,
			FaltasInjustificadas: contagem.injustificadas,
			FaltasJustificadas:   contagem.justificadas,
			DiasFerias:           diasFerias,
			TotalAjustes:         totalAjustes,
		}, params)
		if err != nil {
			return nil, fmt.Errorf("calcular benefícios (período %s, matrícula %s): %w", periodo.Nome, f.Matricula, err)
		}

		totalFuncionario := calc.ValorTotal.Add(totalAjustes)
		resultados = append(resultados, &entity.ResultadoPeriodo{
			ID:             uuid.New().String(),
			PeriodoID:      periodo.ID,
			Matricula:      f.Matricula,
			Nome:           f.Nome,
			Departamento:   f.Departamento,
			DiasCreditados: calc.DiasCreditados,
			ValorVA:        calc.ValorVA,
			ValorCesta:     calc.ValorCesta,
			ValorTotal:     totalFuncionario,
			Detalhe:        calc.Detalhe,
			CriadoEm:       agora,
		})
		valorTotal = valorTotal.Add(totalFuncionario)
	}

	// 7–8. Replace dos resultados + agregado do período, em uma transação.
	periodo.Status = entity.PeriodoProcessado
	periodo.ValorTotal = valorTotal
	periodo.TotalFuncionarios = len(resultados)
	periodo.ProcessadoPor = ator
	processadoEm := agora
	periodo.ProcessadoEm = &processadoEm
	periodo.AtualizadoEm = agora

	err = uc.txRunner.Run(ctx, func(resultadoRepo repository.ResultadoRepository, periodoRepo repository.PeriodoRepository) error {
		if err := resultadoRepo.DeleteByPeriodo(periodo.ID); err != nil {
			return err
		}
		if err := resultadoRepo.BulkInsert(resultados); err != nil {
			return err
		}
		return periodoRepo.Update(periodo)
	})
	if err != nil {
		return nil, fmt.Errorf("gravar resultados do período %s: %w", periodo.Nome, err)
	}

	uc.log.Info().
		Str("periodo", periodo.Nome).
		Str("ator", ator).
		Int("funcionarios", len(resultados)).
		Str("valor_total", valorTotal.StringFixed(2)).
		Int("ausencias_ignoradas", ignoradas).
		Msg("período processado")

	return &dto.ProcessarPeriodoResponse{
		PeriodoID:          periodo.ID,
		Periodo:            periodo.Nome,
		Status:             periodo.Status,
		TotalFuncionarios:  len(resultados),
		ValorTotal:         valorTotal,
		AusenciasIgnoradas: ignoradas,
	}, nil
}

// resolverPeriodo localiza o período por nome ou ID; nome sem linha cria o
// período em ABERTO com agregados zerados.
func (uc *ProcessarPeriodoUseCase) resolverPeriodo(nomeOuID string) (*entity.Periodo, error) {
	p, err := uc.periodoRepo.GetByNome(nomeOuID)
	if err != nil {
		return nil, fmt.Errorf("resolver período: %w", err)
	}
	if p != nil {
		return p, nil
	}
	p, err = uc.periodoRepo.GetByID(nomeOuID)
	if err != nil {
		return nil, fmt.Errorf("resolver período: %w", err)
	}
	if p != nil {
		return p, nil
	}

	// Criação implícita: o nome precisa ser um YYYY-MM válido.
	if _, err := datas.MesDoPeriodo(nomeOuID); err != nil {
		return nil, fmt.Errorf("%w: período %q não existe e não é um nome YYYY-MM", domain.ErrEntradaInvalida, nomeOuID)
	}
	agora := time.Now()
	p = &entity.Periodo{
		ID:         uuid.New().String(),
		Nome:       nomeOuID,
		Status:     entity.PeriodoAberto,
		ValorTotal: decimal.Zero,
		CriadoEm:   agora,
	}
	if err := uc.periodoRepo.Create(p); err != nil {
		return nil, fmt.Errorf("criar período %s: %w", nomeOuID, err)
	}
	return p, nil
}

type contagemFaltas struct {
	injustificadas int
	justificadas   int
}

// agruparAusencias separa as contagens por matrícula. Linhas com tipo
// desconhecido são ignoradas e contadas; a rodada não aborta por uma ausência
// malformada.
func agruparAusencias(ausencias []*entity.Ausencia) (map[string]contagemFaltas, int) {
	porMatricula := make(map[string]contagemFaltas)
	ignoradas := 0
	for _, a := range ausencias {
		if !a.TipoValido() {
			ignoradas++
			continue
		}
		c := porMatricula[a.Matricula]
		if a.Tipo == entity.AusenciaInjustificada {
			c.injustificadas++
		} else {
			c.justificadas++
		}
		porMatricula[a.Matricula] = c
	}
	return porMatricula, ignoradas
}

// agruparAjustes soma Σ(créditos) − Σ(débitos) por matrícula.
func agruparAjustes(ajustes []*entity.Ajuste) map[string]decimal.Decimal {
	porMatricula := make(map[string]decimal.Decimal)
	for _, a := range ajustes {
		atual, ok := porMatricula[a.Matricula]
		if !ok {
			atual = decimal.Zero
		}
		porMatricula[a.Matricula] = atual.Add(a.ValorAssinado())
	}
	return porMatricula
}
