package postgres

import (
	"context"
	"fmt"

	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/domain/entity"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/domain/repository"
)

var _ repository.AjusteRepository = (*AjusteRepo)(nil)

const ajusteCols = `id, matricula, periodo, tipo, valor, motivo, criado_em`

// AjusteRepo implementação do port AjusteRepository sobre PostgreSQL.
type AjusteRepo struct {
	q Querier
}

// NewAjusteRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewAjusteRepository(q Querier) *AjusteRepo {
	return &AjusteRepo{q: q}
}

// Create persiste um novo ajuste.
func (r *AjusteRepo) Create(a *entity.Ajuste) error {
	query := `INSERT INTO ajustes (` + ajusteCols + `) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.Matricula, a.Periodo, a.Tipo, a.Valor, a.Motivo, a.CriadoEm,
	)
	if err != nil {
		return fmt.Errorf("insert ajuste: %w", err)
	}
	return nil
}

// ListByPeriodo devolve os ajustes de um período (nome YYYY-MM).
func (r *AjusteRepo) ListByPeriodo(periodo string) ([]*entity.Ajuste, error) {
	query := `SELECT ` + ajusteCols + ` FROM ajustes WHERE periodo = $1 ORDER BY matricula, criado_em`
	rows, err := r.q.Query(context.Background(), query, periodo)
	if err != nil {
		return nil, fmt.Errorf("list ajustes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Ajuste
	for rows.Next() {
		var a entity.Ajuste
		if err := rows.Scan(&a.ID, &a.Matricula, &a.Periodo, &a.Tipo, &a.Valor, &a.Motivo, &a.CriadoEm); err != nil {
			return nil, fmt.Errorf("scan ajuste: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Delete remove um ajuste por ID.
func (r *AjusteRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM ajustes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete ajuste: %w", err)
	}
	return nil
}

// DeleteByPeriodo apaga todos os ajustes de um período.
func (r *AjusteRepo) DeleteByPeriodo(periodo string) (int64, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM ajustes WHERE periodo = $1`, periodo)
	if err != nil {
		return 0, fmt.Errorf("delete ajustes do periodo: %w", err)
	}
	return cmd.RowsAffected(), nil
}
