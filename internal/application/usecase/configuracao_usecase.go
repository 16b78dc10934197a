package usecase

import (
	"fmt"
	"time"

	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/application/dto"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/domain"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/domain/entity"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/domain/repository"
)

// ConfiguracaoUseCase casos de uso do registro singleton de configuração.
type ConfiguracaoUseCase struct {
	repo repository.ConfiguracaoRepository
}

// NewConfiguracaoUseCase constrói o caso de uso.
func NewConfiguracaoUseCase(repo repository.ConfiguracaoRepository) *ConfiguracaoUseCase {
	return &ConfiguracaoUseCase{repo: repo}
}

// Get devolve a configuração global; nil quando ainda não foi definida.
func (uc *ConfiguracaoUseCase) Get() (*dto.ConfiguracaoResponse, error) {
	c, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	return toConfiguracaoResponse(c), nil
}

// Save grava (upsert) o registro singleton.
func (uc *ConfiguracaoUseCase) Save(in dto.SaveConfiguracaoRequest) (*dto.ConfiguracaoResponse, error) {
	c := &entity.Configuracao{
		ID:                1,
		ValorDiaVA:        in.ValorDiaVA,
		ValorCesta:        in.ValorCesta,
		TetoSalarialCesta: in.TetoSalarialCesta,
		DiaCorte:          in.DiaCorte,
		DiasUteisPadrao:   in.DiasUteisPadrao,
		AtualizadoEm:      time.Now(),
	}
	if !c.Valida() {
		return nil, fmt.Errorf("%w: parâmetros de configuração fora dos limites", domain.ErrEntradaInvalida)
	}
	if err := uc.repo.Save(c); err != nil {
		return nil, err
	}
	return toConfiguracaoResponse(c), nil
}

func toConfiguracaoResponse(c *entity.Configuracao) *dto.ConfiguracaoResponse {
	return &dto.ConfiguracaoResponse{
		ValorDiaVA:        c.ValorDiaVA,
		ValorCesta:        c.ValorCesta,
		TetoSalarialCesta: c.TetoSalarialCesta,
		DiaCorte:          c.DiaCorte,
		DiasUteisPadrao:   c.DiasUteisPadrao,
		AtualizadoEm:      c.AtualizadoEm,
	}
}
