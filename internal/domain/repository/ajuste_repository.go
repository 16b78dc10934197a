package repository

import "github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/domain/entity"

// AjusteRepository define o port de persistência para Ajuste.
type AjusteRepository interface {
	Create(a *entity.Ajuste) error
	// ListByPeriodo devolve os ajustes escopados ao período (nome YYYY-MM).
	ListByPeriodo(periodo string) ([]*entity.Ajuste, error)
	Delete(id string) error
	// DeleteByPeriodo apaga todos os ajustes de um período; devolve quantos
	// foram removidos. A guarda de período aberto fica no caso de uso.
	DeleteByPeriodo(periodo string) (int64, error)
}
