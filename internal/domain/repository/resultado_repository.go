package repository

import "github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/domain/entity"

// ResultadoRepository define o port de persistência para ResultadoPeriodo.
type ResultadoRepository interface {
	// DeleteByPeriodo + BulkInsert compõem o replace do conjunto de
	// resultados; o processador os executa dentro de uma transação.
	DeleteByPeriodo(periodoID string) error
	BulkInsert(resultados []*entity.ResultadoPeriodo) error
	ListByPeriodo(periodoID string) ([]*entity.ResultadoPeriodo, error)
	// MatriculasDePeriodosBloqueados devolve as matrículas referenciadas por
	// resultados de períodos aprovados/selados (qualquer grafia): o conjunto
	// protegido do reset guardado.
	MatriculasDePeriodosBloqueados() ([]string, error)
	// DeleteDePeriodosDesbloqueados apaga os resultados de períodos não
	// bloqueados; devolve quantos foram removidos.
	DeleteDePeriodosDesbloqueados() (int64, error)
	Count() (int, error)
}
