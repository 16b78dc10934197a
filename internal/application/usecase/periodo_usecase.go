package usecase

import (
	"fmt"

	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/application/dto"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/domain"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/domain/repository"
)

// PeriodoUseCase consultas de períodos e resultados (telas de aprovação e
// auditoria). As mutações ficam em processamento e ciclo.
type PeriodoUseCase struct {
	periodoRepo   repository.PeriodoRepository
	resultadoRepo repository.ResultadoRepository
}

// NewPeriodoUseCase constrói o caso de uso.
func NewPeriodoUseCase(periodoRepo repository.PeriodoRepository, resultadoRepo repository.ResultadoRepository) *PeriodoUseCase {
	return &PeriodoUseCase{periodoRepo: periodoRepo, resultadoRepo: resultadoRepo}
}

// GetByID busca um período por ID.
func (uc *PeriodoUseCase) GetByID(id string) (*dto.PeriodoResponse, error) {
	p, err := uc.periodoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return dto.ToPeriodoResponse(p), nil
}

// List lista períodos com paginação.
func (uc *PeriodoUseCase) List(limit, offset int) (*dto.PeriodoListResponse, error) {
	list, err := uc.periodoRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PeriodoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *dto.ToPeriodoResponse(p))
	}
	return &dto.PeriodoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Resultados devolve as linhas de resultado de um período (consumidas pela
// exportação e pela auditoria).
func (uc *PeriodoUseCase) Resultados(periodoID string) ([]dto.ResultadoResponse, error) {
	p, err := uc.periodoRepo.GetByID(periodoID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: período %s", domain.ErrNaoEncontrado, periodoID)
	}
	list, err := uc.resultadoRepo.ListByPeriodo(p.ID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ResultadoResponse, 0, len(list))
	for _, r := range list {
		items = append(items, dto.ResultadoResponse{
			Matricula:      r.Matricula,
			Nome:           r.Nome,
			Departamento:   r.Departamento,
			DiasCreditados: r.DiasCreditados,
			ValorVA:        r.ValorVA,
			ValorCesta:     r.ValorCesta,
			ValorTotal:     r.ValorTotal,
			Detalhe:        r.Detalhe,
		})
	}
	return items, nil
}
