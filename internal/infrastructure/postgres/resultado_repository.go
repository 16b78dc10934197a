package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/domain/entity"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/domain/repository"
)

var _ repository.ResultadoRepository = (*ResultadoRepo)(nil)

// ResultadoRepo implementação do port ResultadoRepository sobre PostgreSQL.
// O detalhe do cálculo vai em JSONB para a auditoria reproduzir o número sem
// reprocessar.
type ResultadoRepo struct {
	q Querier
}

// NewResultadoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewResultadoRepository(q Querier) *ResultadoRepo {
	return &ResultadoRepo{q: q}
}

// DeleteByPeriodo apaga todos os resultados de um período (metade delete do
// replace; rodar dentro do TxRunner).
func (r *ResultadoRepo) DeleteByPeriodo(periodoID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM resultados_periodo WHERE periodo_id = $1`, periodoID)
	if err != nil {
		return fmt.Errorf("delete resultados: %w", err)
	}
	return nil
}

// BulkInsert insere o conjunto recém-calculado (metade insert do replace).
func (r *ResultadoRepo) BulkInsert(resultados []*entity.ResultadoPeriodo) error {
	query := `
		INSERT INTO resultados_periodo (id, periodo_id, matricula, nome, departamento, dias_creditados, valor_va, valor_cesta, valor_total, detalhe, criado_em)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	ctx := context.Background()
	for _, res := range resultados {
		detalhe, err := json.Marshal(res.Detalhe)
		if err != nil {
			return fmt.Errorf("marshal detalhe: %w", err)
		}
		if _, err := r.q.Exec(ctx, query,
			res.ID, res.PeriodoID, res.Matricula, res.Nome, res.Departamento,
			res.DiasCreditados, res.ValorVA, res.ValorCesta, res.ValorTotal,
			detalhe, res.CriadoEm,
		); err != nil {
			return fmt.Errorf("insert resultado (matrícula %s): %w", res.Matricula, err)
		}
	}
	return nil
}

// ListByPeriodo devolve os resultados de um período ordenados por matrícula.
func (r *ResultadoRepo) ListByPeriodo(periodoID string) ([]*entity.ResultadoPeriodo, error) {
	query := `
		SELECT id, periodo_id, matricula, nome, departamento, dias_creditados, valor_va, valor_cesta, valor_total, detalhe, criado_em
		FROM resultados_periodo WHERE periodo_id = $1 ORDER BY matricula`
	rows, err := r.q.Query(context.Background(), query, periodoID)
	if err != nil {
		return nil, fmt.Errorf("list resultados: %w", err)
	}
	defer rows.Close()
	var list []*entity.ResultadoPeriodo
	for rows.Next() {
		var res entity.ResultadoPeriodo
		var detalhe []byte
		if err := rows.Scan(
			&res.ID, &res.PeriodoID, &res.Matricula, &res.Nome, &res.Departamento,
			&res.DiasCreditados, &res.ValorVA, &res.ValorCesta, &res.ValorTotal,
			&detalhe, &res.CriadoEm,
		); err != nil {
			return nil, fmt.Errorf("scan resultado: %w", err)
		}
		if len(detalhe) > 0 {
			if err := json.Unmarshal(detalhe, &res.Detalhe); err != nil {
				return nil, fmt.Errorf("unmarshal detalhe: %w", err)
			}
		}
		list = append(list, &res)
	}
	return list, rows.Err()
}

// MatriculasDePeriodosBloqueados devolve as matrículas referenciadas por
// resultados de períodos aprovados/selados, em qualquer grafia de status.
func (r *ResultadoRepo) MatriculasDePeriodosBloqueados() ([]string, error) {
	query := `
		SELECT DISTINCT res.matricula
		FROM resultados_periodo res
		JOIN periodos p ON p.id = res.periodo_id
		WHERE UPPER(p.status) = ANY($1)`
	rows, err := r.q.Query(context.Background(), query, entity.StatusBloqueadosTodos)
	if err != nil {
		return nil, fmt.Errorf("matriculas bloqueadas: %w", err)
	}
	defer rows.Close()
	// Slice não-nulo: nil viraria NULL no ANY() dos deletes guardados e o
	// reset total deixaria de remover qualquer linha.
	matriculas := make([]string, 0)
	for rows.Next() {
		var m string
		if err := rows.Scan(&m); err != nil {
			return nil, fmt.Errorf("scan matricula: %w", err)
		}
		matriculas = append(matriculas, m)
	}
	return matriculas, rows.Err()
}

// DeleteDePeriodosDesbloqueados apaga os resultados de períodos não
// bloqueados.
func (r *ResultadoRepo) DeleteDePeriodosDesbloqueados() (int64, error) {
	query := `
		DELETE FROM resultados_periodo res
		USING periodos p
		WHERE p.id = res.periodo_id AND NOT (UPPER(p.status) = ANY($1))`
	cmd, err := r.q.Exec(context.Background(), query, entity.StatusBloqueadosTodos)
	if err != nil {
		return 0, fmt.Errorf("delete resultados desbloqueados: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// Count devolve o total de resultados persistidos.
func (r *ResultadoRepo) Count() (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM resultados_periodo`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count resultados: %w", err)
	}
	return n, nil
}
