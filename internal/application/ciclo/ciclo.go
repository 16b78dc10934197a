// Package ciclo implementa a máquina de estados do período:
// ABERTO → PROCESSADO → APROVADO → EXPORTADO (terminal, selado), com
// reabertura explícita permitida até a aprovação, nunca depois do selamento.
// Transições ilegais são rejeitadas com erro, nunca viram no-op silencioso.
package ciclo

import (
	"context"
	"fmt"
	"time"

	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/application/dto"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/domain"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/domain/beneficio"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/domain/entity"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/domain/repository"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/pkg/logger"
)

// CicloPeriodoUseCase governa as transições de status de um período.
type CicloPeriodoUseCase struct {
	periodoRepo repository.PeriodoRepository
	log         *logger.Logger
}

// NewCicloPeriodoUseCase constrói o caso de uso.
func NewCicloPeriodoUseCase(periodoRepo repository.PeriodoRepository, log *logger.Logger) *CicloPeriodoUseCase {
	return &CicloPeriodoUseCase{periodoRepo: periodoRepo, log: log}
}

// Aprovar move PROCESSADO → APROVADO, registrando aprovador e horário.
func (uc *CicloPeriodoUseCase) Aprovar(ctx context.Context, periodoID, ator string) (*dto.PeriodoResponse, error) {
	if ator == "" {
		return nil, fmt.Errorf("%w: identidade do aprovador é obrigatória", domain.ErrEntradaInvalida)
	}
	periodo, err := uc.buscar(periodoID)
	if err != nil {
		return nil, err
	}
	if periodo.StatusCanonico() != entity.PeriodoProcessado {
		return nil, fmt.Errorf("%w: aprovar exige período PROCESSADO, período %s está %s",
			domain.ErrTransicaoInvalida, periodo.Nome, periodo.StatusCanonico())
	}

	agora := time.Now()
	periodo.Status = entity.PeriodoAprovado
	periodo.AprovadoPor = ator
	periodo.AprovadoEm = &agora
	periodo.AtualizadoEm = agora
	if err := uc.periodoRepo.Update(periodo); err != nil {
		return nil, fmt.Errorf("aprovar período %s: %w", periodo.Nome, err)
	}

	uc.log.Info().Str("periodo", periodo.Nome).Str("ator", ator).Msg("período aprovado")
	return dto.ToPeriodoResponse(periodo), nil
}

// Selar move APROVADO → EXPORTADO e emite o hash de integridade sobre
// id, valor total e contagem de funcionários. Selar período não aprovado ou
// já selado é rejeitado; o hash de um período selado nunca é recalculado.
func (uc *CicloPeriodoUseCase) Selar(ctx context.Context, periodoID, ator string) (*dto.PeriodoResponse, error) {
	if ator == "" {
		return nil, fmt.Errorf("%w: identidade do exportador é obrigatória", domain.ErrEntradaInvalida)
	}
	periodo, err := uc.buscar(periodoID)
	if err != nil {
		return nil, err
	}
	switch periodo.StatusCanonico() {
	case entity.PeriodoExportado:
		return nil, fmt.Errorf("%w: período %s já selado (hash %s)",
			domain.ErrPeriodoSelado, periodo.Nome, periodo.HashIntegridade)
	case entity.PeriodoAprovado:
		// transição válida
	default:
		return nil, fmt.Errorf("%w: selar exige período APROVADO, período %s está %s",
			domain.ErrTransicaoInvalida, periodo.Nome, periodo.StatusCanonico())
	}

	hash, err := beneficio.SeloIntegridade(periodo.ID, periodo.ValorTotal, periodo.TotalFuncionarios)
	if err != nil {
		return nil, fmt.Errorf("selo do período %s: %w", periodo.Nome, err)
	}

	agora := time.Now()
	periodo.Status = entity.PeriodoExportado
	periodo.HashIntegridade = hash
	periodo.ExportadoPor = ator
	periodo.ExportadoEm = &agora
	periodo.AtualizadoEm = agora
	if err := uc.periodoRepo.Update(periodo); err != nil {
		return nil, fmt.Errorf("selar período %s: %w", periodo.Nome, err)
	}

	uc.log.Info().
		Str("periodo", periodo.Nome).
		Str("ator", ator).
		Str("hash", hash).
		Msg("período selado")
	return dto.ToPeriodoResponse(periodo), nil
}

// Reabrir reverte PROCESSADO/APROVADO → ABERTO, limpando os metadados de
// aprovação. Período selado não reabre.
func (uc *CicloPeriodoUseCase) Reabrir(ctx context.Context, periodoID, ator string) (*dto.PeriodoResponse, error) {
	periodo, err := uc.buscar(periodoID)
	if err != nil {
		return nil, err
	}
	switch periodo.StatusCanonico() {
	case entity.PeriodoProcessado, entity.PeriodoAprovado:
		// transição válida
	case entity.PeriodoExportado:
		return nil, fmt.Errorf("%w: período %s", domain.ErrPeriodoSelado, periodo.Nome)
	default:
		return nil, fmt.Errorf("%w: período %s já está %s",
			domain.ErrTransicaoInvalida, periodo.Nome, periodo.StatusCanonico())
	}

	agora := time.Now()
	periodo.Status = entity.PeriodoAberto
	periodo.AprovadoPor = ""
	periodo.AprovadoEm = nil
	periodo.AtualizadoEm = agora
	if err := uc.periodoRepo.Update(periodo); err != nil {
		return nil, fmt.Errorf("reabrir período %s: %w", periodo.Nome, err)
	}

	uc.log.Warn().Str("periodo", periodo.Nome).Str("ator", ator).Msg("período reaberto")
	return dto.ToPeriodoResponse(periodo), nil
}

func (uc *CicloPeriodoUseCase) buscar(periodoID string) (*entity.Periodo, error) {
	periodo, err := uc.periodoRepo.GetByID(periodoID)
	if err != nil {
		return nil, fmt.Errorf("buscar período: %w", err)
	}
	if periodo == nil {
		return nil, fmt.Errorf("%w: período %s", domain.ErrNaoEncontrado, periodoID)
	}
	return periodo, nil
}
