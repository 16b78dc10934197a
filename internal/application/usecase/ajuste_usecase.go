package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/application/dto"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/domain"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/domain/entity"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/domain/repository"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/pkg/datas"
)

// AjusteUseCase casos de uso para ajustes manuais (crédito/débito por período).
type AjusteUseCase struct {
	repo            repository.AjusteRepository
	funcionarioRepo repository.FuncionarioRepository
	periodoRepo     repository.PeriodoRepository
}

// NewAjusteUseCase constrói o caso de uso.
func NewAjusteUseCase(
	repo repository.AjusteRepository,
	funcionarioRepo repository.FuncionarioRepository,
	periodoRepo repository.PeriodoRepository,
) *AjusteUseCase {
	return &AjusteUseCase{repo: repo, funcionarioRepo: funcionarioRepo, periodoRepo: periodoRepo}
}

// Create lança um ajuste. Valor deve ser positivo (o sinal vem do tipo) e o
// período alvo não pode estar bloqueado; lançar ajuste em apuração aprovada
// mudaria um número já congelado.
func (uc *AjusteUseCase) Create(in dto.CreateAjusteRequest) (*dto.AjusteResponse, error) {
	if in.Tipo != entity.AjusteCredito && in.Tipo != entity.AjusteDebito {
		return nil, fmt.Errorf("%w: tipo %q", domain.ErrEntradaInvalida, in.Tipo)
	}
	if !in.Valor.IsPositive() {
		return nil, fmt.Errorf("%w: valor do ajuste deve ser positivo", domain.ErrEntradaInvalida)
	}
	if _, err := datas.MesDoPeriodo(in.Periodo); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrEntradaInvalida, err)
	}
	f, err := uc.funcionarioRepo.GetByMatricula(in.Matricula)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, fmt.Errorf("%w: matrícula %s", domain.ErrNaoEncontrado, in.Matricula)
	}
	periodo, err := uc.periodoRepo.GetByNome(in.Periodo)
	if err != nil {
		return nil, err
	}
	if periodo != nil && periodo.Bloqueado() {
		return nil, fmt.Errorf("%w: período %s", domain.ErrPeriodoBloqueado, in.Periodo)
	}

	a := &entity.Ajuste{
		ID:        uuid.New().String(),
		Matricula: in.Matricula,
		Periodo:   in.Periodo,
		Tipo:      in.Tipo,
		Valor:     in.Valor,
		Motivo:    in.Motivo,
		CriadoEm:  time.Now(),
	}
	if err := uc.repo.Create(a); err != nil {
		return nil, err
	}
	return toAjusteResponse(a), nil
}

// ListByPeriodo lista os ajustes de um período.
func (uc *AjusteUseCase) ListByPeriodo(periodo string) ([]dto.AjusteResponse, error) {
	list, err := uc.repo.ListByPeriodo(periodo)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AjusteResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAjusteResponse(a))
	}
	return items, nil
}

// Delete remove um ajuste por ID.
func (uc *AjusteUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toAjusteResponse(a *entity.Ajuste) *dto.AjusteResponse {
	if a == nil {
		return nil
	}
	return &dto.AjusteResponse{
		ID:        a.ID,
		Matricula: a.Matricula,
		Periodo:   a.Periodo,
		Tipo:      a.Tipo,
		Valor:     a.Valor,
		Motivo:    a.Motivo,
		CriadoEm:  a.CriadoEm,
	}
}
