package repository

import "github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/domain/entity"

// PeriodoRepository define o port de persistência para Periodo.
// Períodos nunca são excluídos; não há Delete.
type PeriodoRepository interface {
	Create(p *entity.Periodo) error
	GetByID(id string) (*entity.Periodo, error)
	GetByNome(nome string) (*entity.Periodo, error)
	// Update grava status, agregados, metadados de processamento/aprovação/
	// exportação e o hash de integridade.
	Update(p *entity.Periodo) error
	List(limit, offset int) ([]*entity.Periodo, error)
	// ListDesbloqueados devolve os períodos não bloqueados (nem aprovados nem
	// selados, em qualquer grafia), alvo das operações destrutivas.
	ListDesbloqueados() ([]*entity.Periodo, error)
}
