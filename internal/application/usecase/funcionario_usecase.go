package usecase

import (
	"fmt"
	"time"

	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/application/dto"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/domain"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/domain/entity"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/domain/repository"
)

// FuncionarioUseCase casos de uso CRUD para funcionários. O núcleo de cálculo
// só lê esses dados; quem os muta é a digitação do RH por aqui.
type FuncionarioUseCase struct {
	repo repository.FuncionarioRepository
}

// NewFuncionarioUseCase constrói o caso de uso.
func NewFuncionarioUseCase(repo repository.FuncionarioRepository) *FuncionarioUseCase {
	return &FuncionarioUseCase{repo: repo}
}

// Create cadastra um funcionário. A matrícula é atribuída pelo RH, não gerada.
func (uc *FuncionarioUseCase) Create(in dto.CreateFuncionarioRequest) (*dto.FuncionarioResponse, error) {
	existente, _ := uc.repo.GetByMatricula(in.Matricula)
	if existente != nil {
		return nil, domain.ErrDuplicado
	}
	admissao, err := parseData(in.DataAdmissao)
	if err != nil {
		return nil, fmt.Errorf("%w: data_admissao: %v", domain.ErrEntradaInvalida, err)
	}
	inicio, fim, err := parseVigencia(in.StatusInicio, in.StatusFim)
	if err != nil {
		return nil, err
	}
	status := in.Status
	if status == "" {
		status = entity.StatusAtivo
	}

	agora := time.Now()
	f := &entity.Funcionario{
		Matricula:    in.Matricula,
		Nome:         in.Nome,
		Cargo:        in.Cargo,
		Salario:      in.Salario,
		Departamento: in.Departamento,
		Localizacao:  in.Localizacao,
		Status:       status,
		DataAdmissao: admissao,
		StatusInicio: inicio,
		StatusFim:    fim,
		CriadoEm:     agora,
		AtualizadoEm: agora,
	}
	if !f.VigenciaValida() {
		return nil, fmt.Errorf("%w: status_inicio e status_fim devem vir juntos e em ordem", domain.ErrEntradaInvalida)
	}
	if err := uc.repo.Create(f); err != nil {
		return nil, err
	}
	return toFuncionarioResponse(f), nil
}

// GetByMatricula busca um funcionário pela matrícula.
func (uc *FuncionarioUseCase) GetByMatricula(matricula string) (*dto.FuncionarioResponse, error) {
	f, err := uc.repo.GetByMatricula(matricula)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, nil
	}
	return toFuncionarioResponse(f), nil
}

// Update atualiza campos de um funcionário. Matrícula e data de admissão são
// imutáveis.
func (uc *FuncionarioUseCase) Update(matricula string, in dto.UpdateFuncionarioRequest) (*dto.FuncionarioResponse, error) {
	f, err := uc.repo.GetByMatricula(matricula)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, nil
	}
	if in.Nome != nil {
		f.Nome = *in.Nome
	}
	if in.Cargo != nil {
		f.Cargo = *in.Cargo
	}
	if in.Salario != nil {
		f.Salario = *in.Salario
	}
	if in.Departamento != nil {
		f.Departamento = *in.Departamento
	}
	if in.Localizacao != nil {
		f.Localizacao = *in.Localizacao
	}
	if in.Status != nil {
		f.Status = *in.Status
	}
	if in.StatusInicio != nil || in.StatusFim != nil {
		inicioStr, fimStr := "", ""
		if in.StatusInicio != nil {
			inicioStr = *in.StatusInicio
		}
		if in.StatusFim != nil {
			fimStr = *in.StatusFim
		}
		inicio, fim, err := parseVigencia(inicioStr, fimStr)
		if err != nil {
			return nil, err
		}
		f.StatusInicio = inicio
		f.StatusFim = fim
	}
	if !f.VigenciaValida() {
		return nil, fmt.Errorf("%w: status_inicio e status_fim devem vir juntos e em ordem", domain.ErrEntradaInvalida)
	}
	f.AtualizadoEm = time.Now()
	if err := uc.repo.Update(f); err != nil {
		return nil, err
	}
	return toFuncionarioResponse(f), nil
}

// List lista funcionários com paginação.
func (uc *FuncionarioUseCase) List(limit, offset int) (*dto.FuncionarioListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.FuncionarioResponse, 0, len(list))
	for _, f := range list {
		items = append(items, *toFuncionarioResponse(f))
	}
	return &dto.FuncionarioListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete remove um funcionário pela matrícula.
func (uc *FuncionarioUseCase) Delete(matricula string) error {
	return uc.repo.Delete(matricula)
}

func toFuncionarioResponse(f *entity.Funcionario) *dto.FuncionarioResponse {
	if f == nil {
		return nil
	}
	return &dto.FuncionarioResponse{
		Matricula:    f.Matricula,
		Nome:         f.Nome,
		Cargo:        f.Cargo,
		Salario:      f.Salario,
		Departamento: f.Departamento,
		Localizacao:  f.Localizacao,
		Status:       f.Status,
		DataAdmissao: f.DataAdmissao,
		StatusInicio: f.StatusInicio,
		StatusFim:    f.StatusFim,
		CriadoEm:     f.CriadoEm,
		AtualizadoEm: f.AtualizadoEm,
	}
}

// parseData interpreta YYYY-MM-DD em UTC.
func parseData(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.UTC)
}

// parseVigencia interpreta o par início/fim do status temporário; vazio/vazio
// devolve nil/nil, e meio preenchido é erro de entrada.
func parseVigencia(inicioStr, fimStr string) (*time.Time, *time.Time, error) {
	if inicioStr == "" && fimStr == "" {
		return nil, nil, nil
	}
	if inicioStr == "" || fimStr == "" {
		return nil, nil, fmt.Errorf("%w: status_inicio e status_fim devem vir juntos", domain.ErrEntradaInvalida)
	}
	inicio, err := parseData(inicioStr)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: status_inicio: %v", domain.ErrEntradaInvalida, err)
	}
	fim, err := parseData(fimStr)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: status_fim: %v", domain.ErrEntradaInvalida, err)
	}
	return &inicio, &fim, nil
}
