// Package manutencao implementa as operações destrutivas de manutenção da
// base. Toda exclusão em massa é guardada pelo mesmo predicado: nada que
// pertença (via resultados) a um período aprovado/selado é removido.
package manutencao

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/application/dto"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/domain"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/domain/entity"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/domain/repository"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/pkg/logger"
)

// ResetUseCase executa os resets guardados.
type ResetUseCase struct {
	funcionarioRepo repository.FuncionarioRepository
	ausenciaRepo    repository.AusenciaRepository
	ajusteRepo      repository.AjusteRepository
	periodoRepo     repository.PeriodoRepository
	resultadoRepo   repository.ResultadoRepository
	log             *logger.Logger
}

// NewResetUseCase constrói o caso de uso.
func NewResetUseCase(
	funcionarioRepo repository.FuncionarioRepository,
	ausenciaRepo repository.AusenciaRepository,
	ajusteRepo repository.AjusteRepository,
	periodoRepo repository.PeriodoRepository,
	resultadoRepo repository.ResultadoRepository,
	log *logger.Logger,
) *ResetUseCase {
	return &ResetUseCase{
		funcionarioRepo: funcionarioRepo,
		ausenciaRepo:    ausenciaRepo,
		ajusteRepo:      ajusteRepo,
		periodoRepo:     periodoRepo,
		resultadoRepo:   resultadoRepo,
		log:             log,
	}
}

// LimparFuncionarios apaga todos os funcionários, exceto os referenciados por
// resultados de períodos bloqueados. Resposta indica reset total ou parcial.
func (uc *ResetUseCase) LimparFuncionarios(ctx context.Context, ator string) (*dto.ResetResponse, error) {
	protegidas, err := uc.resultadoRepo.MatriculasDePeriodosBloqueados()
	if err != nil {
		return nil, fmt.Errorf("matrículas protegidas: %w", err)
	}
	antes, err := uc.funcionarioRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("contar funcionários: %w", err)
	}
	removidos, err := uc.funcionarioRepo.DeleteAllExcept(protegidas)
	if err != nil {
		return nil, fmt.Errorf("limpar funcionários: %w", err)
	}
	return uc.responder(ator, "funcionarios", int64(antes), removidos), nil
}

// LimparAusencias apaga todas as ausências, exceto as das matrículas
// referenciadas por resultados de períodos bloqueados.
func (uc *ResetUseCase) LimparAusencias(ctx context.Context, ator string) (*dto.ResetResponse, error) {
	protegidas, err := uc.resultadoRepo.MatriculasDePeriodosBloqueados()
	if err != nil {
		return nil, fmt.Errorf("matrículas protegidas: %w", err)
	}
	antes, err := uc.ausenciaRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("contar ausências: %w", err)
	}
	removidos, err := uc.ausenciaRepo.DeleteAllExcept(protegidas)
	if err != nil {
		return nil, fmt.Errorf("limpar ausências: %w", err)
	}
	return uc.responder(ator, "ausencias", int64(antes), removidos), nil
}

// LimparCalculos apaga os resultados de todos os períodos NÃO bloqueados.
// Resultados de períodos aprovados/selados ficam intactos. Os períodos cujos
// resultados foram apagados voltam a ABERTO com agregados zerados; um período
// PROCESSADO sem linhas de resultado poderia ser aprovado e selado sobre um
// total que nada mais sustenta.
func (uc *ResetUseCase) LimparCalculos(ctx context.Context, ator string) (*dto.ResetResponse, error) {
	antes, err := uc.resultadoRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("contar resultados: %w", err)
	}
	removidos, err := uc.resultadoRepo.DeleteDePeriodosDesbloqueados()
	if err != nil {
		return nil, fmt.Errorf("limpar cálculos: %w", err)
	}
	if err := uc.reverterPeriodosDesbloqueados(); err != nil {
		return nil, err
	}
	return uc.responder(ator, "calculos", int64(antes), removidos), nil
}

func (uc *ResetUseCase) reverterPeriodosDesbloqueados() error {
	periodos, err := uc.periodoRepo.ListDesbloqueados()
	if err != nil {
		return fmt.Errorf("listar períodos desbloqueados: %w", err)
	}
	for _, p := range periodos {
		if p.StatusCanonico() == entity.PeriodoAberto && p.TotalFuncionarios == 0 && p.ValorTotal.IsZero() {
			continue
		}
		p.Status = entity.PeriodoAberto
		p.ValorTotal = decimal.Zero
		p.TotalFuncionarios = 0
		p.ProcessadoPor = ""
		p.ProcessadoEm = nil
		p.AtualizadoEm = time.Now().UTC()
		if err := uc.periodoRepo.Update(p); err != nil {
			return fmt.Errorf("reverter período %s: %w", p.Nome, err)
		}
	}
	return nil
}

// LimparAjustesPeriodo apaga os ajustes de UM período, exigindo que o próprio
// período alvo ainda esteja ABERTO; ajuste de período processado/fechado não
// é apagável, mesmo com os demais períodos intactos. Período sem linha ainda
// não foi processado e conta como aberto.
func (uc *ResetUseCase) LimparAjustesPeriodo(ctx context.Context, ator, periodoNome string) (*dto.ResetResponse, error) {
	periodo, err := uc.periodoRepo.GetByNome(periodoNome)
	if err != nil {
		return nil, fmt.Errorf("buscar período: %w", err)
	}
	if periodo != nil && periodo.StatusCanonico() != entity.PeriodoAberto {
		if periodo.Bloqueado() {
			return nil, fmt.Errorf("%w: período %s", domain.ErrPeriodoBloqueado, periodoNome)
		}
		return nil, fmt.Errorf("%w: ajustes só podem ser limpos com o período ABERTO, %s está %s",
			domain.ErrTransicaoInvalida, periodoNome, periodo.StatusCanonico())
	}

	removidos, err := uc.ajusteRepo.DeleteByPeriodo(periodoNome)
	if err != nil {
		return nil, fmt.Errorf("limpar ajustes do período %s: %w", periodoNome, err)
	}
	uc.log.Warn().
		Str("operacao", "reset_ajustes").
		Str("periodo", periodoNome).
		Str("ator", ator).
		Int64("removidos", removidos).
		Msg("reset executado")
	return &dto.ResetResponse{Removidos: removidos, Preservados: 0, Parcial: false}, nil
}

func (uc *ResetUseCase) responder(ator, operacao string, antes, removidos int64) *dto.ResetResponse {
	preservados := antes - removidos
	if preservados < 0 {
		preservados = 0
	}
	uc.log.Warn().
		Str("operacao", "reset_"+operacao).
		Str("ator", ator).
		Int64("removidos", removidos).
		Int64("preservados", preservados).
		Msg("reset executado")
	return &dto.ResetResponse{
		Removidos:   removidos,
		Preservados: preservados,
		Parcial:     preservados > 0,
	}
}
