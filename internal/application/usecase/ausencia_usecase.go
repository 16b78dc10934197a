package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/application/dto"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/domain"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/domain/entity"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/domain/repository"
)

// AusenciaUseCase casos de uso para registro manual de ausências.
type AusenciaUseCase struct {
	repo            repository.AusenciaRepository
	funcionarioRepo repository.FuncionarioRepository
}

// NewAusenciaUseCase constrói o caso de uso.
func NewAusenciaUseCase(repo repository.AusenciaRepository, funcionarioRepo repository.FuncionarioRepository) *AusenciaUseCase {
	return &AusenciaUseCase{repo: repo, funcionarioRepo: funcionarioRepo}
}

// Create registra uma ausência para uma matrícula existente.
func (uc *AusenciaUseCase) Create(in dto.CreateAusenciaRequest) (*dto.AusenciaResponse, error) {
	f, err := uc.funcionarioRepo.GetByMatricula(in.Matricula)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, fmt.Errorf("%w: matrícula %s", domain.ErrNaoEncontrado, in.Matricula)
	}
	data, err := time.ParseInLocation("2006-01-02", in.Data, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%w: data: %v", domain.ErrEntradaInvalida, err)
	}
	a := &entity.Ausencia{
		ID:        uuid.New().String(),
		Matricula: in.Matricula,
		Data:      data,
		Tipo:      in.Tipo,
		Motivo:    in.Motivo,
		CriadoEm:  time.Now(),
	}
	if !a.TipoValido() {
		return nil, fmt.Errorf("%w: tipo %q", domain.ErrEntradaInvalida, in.Tipo)
	}
	if err := uc.repo.Create(a); err != nil {
		return nil, err
	}
	return toAusenciaResponse(a), nil
}

// ListByMatricula lista as ausências de um funcionário com paginação.
func (uc *AusenciaUseCase) ListByMatricula(matricula string, limit, offset int) (*dto.AusenciaListResponse, error) {
	list, err := uc.repo.ListByMatricula(matricula, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AusenciaResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAusenciaResponse(a))
	}
	return &dto.AusenciaListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete remove uma ausência por ID.
func (uc *AusenciaUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toAusenciaResponse(a *entity.Ausencia) *dto.AusenciaResponse {
	if a == nil {
		return nil
	}
	return &dto.AusenciaResponse{
		ID:        a.ID,
		Matricula: a.Matricula,
		Data:      a.Data,
		Tipo:      a.Tipo,
		Motivo:    a.Motivo,
		CriadoEm:  a.CriadoEm,
	}
}
