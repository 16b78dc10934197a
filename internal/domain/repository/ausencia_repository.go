package repository

import (
	"time"

	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/domain/entity"
)

// AusenciaRepository define o port de persistência para Ausencia.
type AusenciaRepository interface {
	Create(a *entity.Ausencia) error
	// ListByJanela devolve as ausências com data na janela meio-aberta
	// (inicio, fim], a janela de apuração do período.
	ListByJanela(inicio, fim time.Time) ([]*entity.Ausencia, error)
	ListByMatricula(matricula string, limit, offset int) ([]*entity.Ausencia, error)
	Delete(id string) error
	Count() (int, error)
	// DeleteAllExcept apaga todas as ausências exceto as das matrículas
	// protegidas; devolve quantas foram removidas.
	DeleteAllExcept(matriculasProtegidas []string) (int64, error)
}
