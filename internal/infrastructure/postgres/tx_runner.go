package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/application/processamento"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/domain/repository"
)

var _ processamento.TxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL. O replace do
// conjunto de resultados do período (delete + bulk insert + agregado) depende
// desta atomicidade.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia uma transação, executa fn com repos atados à tx e faz Commit ou
// Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	resultadoRepo repository.ResultadoRepository,
	periodoRepo repository.PeriodoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	resultadoRepo := NewResultadoRepository(tx)
	periodoRepo := NewPeriodoRepository(tx)

	if err := fn(resultadoRepo, periodoRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
