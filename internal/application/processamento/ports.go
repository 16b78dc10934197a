package processamento

import (
	"context"

	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de banco, passando
// repositórios atados a essa tx. Garante que o replace do conjunto de
// resultados e a atualização do agregado do período sejam uma unidade
// atômica: falha de insert depois do delete faz rollback e o período mantém
// o conjunto anterior.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		resultadoRepo repository.ResultadoRepository,
		periodoRepo repository.PeriodoRepository,
	) error) error
}
