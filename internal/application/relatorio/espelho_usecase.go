// Package relatorio gera o espelho do período: a evidência de auditoria em
// PDF com o agregado, as linhas por funcionário e, quando selado, o hash de
// integridade.
package relatorio

import (
	"context"
	"fmt"

	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/domain"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/domain/entity"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/domain/repository"
)

// EspelhoPDFGenerator é o port do gerador de PDF (implementado em
// infrastructure/pdf com Maroto).
type EspelhoPDFGenerator interface {
	GenerateEspelhoPDF(ctx context.Context, periodo *entity.Periodo, resultados []*entity.ResultadoPeriodo) ([]byte, error)
}

// EspelhoUseCase monta os dados e delega a renderização ao generator.
type EspelhoUseCase struct {
	periodoRepo   repository.PeriodoRepository
	resultadoRepo repository.ResultadoRepository
	generator     EspelhoPDFGenerator
}

// NewEspelhoUseCase constrói o caso de uso.
func NewEspelhoUseCase(
	periodoRepo repository.PeriodoRepository,
	resultadoRepo repository.ResultadoRepository,
	generator EspelhoPDFGenerator,
) *EspelhoUseCase {
	return &EspelhoUseCase{periodoRepo: periodoRepo, resultadoRepo: resultadoRepo, generator: generator}
}

// Gerar devolve os bytes do PDF do espelho de um período já processado.
func (uc *EspelhoUseCase) Gerar(ctx context.Context, periodoID string) ([]byte, error) {
	periodo, err := uc.periodoRepo.GetByID(periodoID)
	if err != nil {
		return nil, err
	}
	if periodo == nil {
		return nil, fmt.Errorf("%w: período %s", domain.ErrNaoEncontrado, periodoID)
	}
	if periodo.StatusCanonico() == entity.PeriodoAberto {
		return nil, fmt.Errorf("%w: período %s ainda não foi processado", domain.ErrEntradaInvalida, periodo.Nome)
	}
	resultados, err := uc.resultadoRepo.ListByPeriodo(periodo.ID)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateEspelhoPDF(ctx, periodo, resultados)
}
