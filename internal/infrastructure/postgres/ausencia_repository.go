package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/domain/entity"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/domain/repository"
)

var _ repository.AusenciaRepository = (*AusenciaRepo)(nil)

const ausenciaCols = `id, matricula, data, tipo, motivo, criado_em`

// AusenciaRepo implementação do port AusenciaRepository sobre PostgreSQL.
type AusenciaRepo struct {
	q Querier
}

// NewAusenciaRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewAusenciaRepository(q Querier) *AusenciaRepo {
	return &AusenciaRepo{q: q}
}

// Create persiste uma nova ausência.
func (r *AusenciaRepo) Create(a *entity.Ausencia) error {
	query := `INSERT INTO ausencias (` + ausenciaCols + `) VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.Matricula, a.Data, a.Tipo, a.Motivo, a.CriadoEm,
	)
	if err != nil {
		return fmt.Errorf("insert ausencia: %w", err)
	}
	return nil
}

// ListByJanela devolve as ausências na janela meio-aberta (inicio, fim].
func (r *AusenciaRepo) ListByJanela(inicio, fim time.Time) ([]*entity.Ausencia, error) {
	query := `SELECT ` + ausenciaCols + ` FROM ausencias WHERE data > $1 AND data <= $2 ORDER BY matricula, data`
	rows, err := r.q.Query(context.Background(), query, inicio, fim)
	if err != nil {
		return nil, fmt.Errorf("list ausencias por janela: %w", err)
	}
	defer rows.Close()
	return scanAusencias(rows)
}

// ListByMatricula lista as ausências de um funcionário com paginação.
func (r *AusenciaRepo) ListByMatricula(matricula string, limit, offset int) ([]*entity.Ausencia, error) {
	query := `SELECT ` + ausenciaCols + ` FROM ausencias WHERE matricula = $1 ORDER BY data DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, matricula, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list ausencias: %w", err)
	}
	defer rows.Close()
	return scanAusencias(rows)
}

// Delete remove uma ausência por ID.
func (r *AusenciaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM ausencias WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete ausencia: %w", err)
	}
	return nil
}

// Count devolve o total de ausências.
func (r *AusenciaRepo) Count() (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM ausencias`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count ausencias: %w", err)
	}
	return n, nil
}

// DeleteAllExcept apaga todas as ausências exceto as das matrículas protegidas.
func (r *AusenciaRepo) DeleteAllExcept(matriculasProtegidas []string) (int64, error) {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM ausencias WHERE NOT (matricula = ANY($1))`,
		matriculasProtegidas,
	)
	if err != nil {
		return 0, fmt.Errorf("delete ausencias: %w", err)
	}
	return cmd.RowsAffected(), nil
}

func scanAusencias(rows pgx.Rows) ([]*entity.Ausencia, error) {
	var list []*entity.Ausencia
	for rows.Next() {
		var a entity.Ausencia
		if err := rows.Scan(&a.ID, &a.Matricula, &a.Data, &a.Tipo, &a.Motivo, &a.CriadoEm); err != nil {
			return nil, fmt.Errorf("scan ausencia: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
