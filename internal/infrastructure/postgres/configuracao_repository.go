package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/domain/entity"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/domain/repository"
)

var _ repository.ConfiguracaoRepository = (*ConfiguracaoRepo)(nil)

// ConfiguracaoRepo implementação do port do singleton de configuração global.
type ConfiguracaoRepo struct {
	q Querier
}

// NewConfiguracaoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewConfiguracaoRepository(q Querier) *ConfiguracaoRepo {
	return &ConfiguracaoRepo{q: q}
}

// Get devolve o registro singleton; (nil, nil) quando ainda não existe.
func (r *ConfiguracaoRepo) Get() (*entity.Configuracao, error) {
	query := `
		SELECT id, valor_dia_va, valor_cesta, teto_salarial_cesta, dia_corte, dias_uteis_padrao, atualizado_em
		FROM configuracao WHERE id = 1`
	var c entity.Configuracao
	err := r.q.QueryRow(context.Background(), query).Scan(
		&c.ID, &c.ValorDiaVA, &c.ValorCesta, &c.TetoSalarialCesta,
		&c.DiaCorte, &c.DiasUteisPadrao, &c.AtualizadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get configuracao: %w", err)
	}
	return &c, nil
}

// Save faz upsert do registro singleton (id fixo = 1).
func (r *ConfiguracaoRepo) Save(c *entity.Configuracao) error {
	query := `
		INSERT INTO configuracao (id, valor_dia_va, valor_cesta, teto_salarial_cesta, dia_corte, dias_uteis_padrao, atualizado_em)
		VALUES (1, $1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			valor_dia_va = EXCLUDED.valor_dia_va,
			valor_cesta = EXCLUDED.valor_cesta,
			teto_salarial_cesta = EXCLUDED.teto_salarial_cesta,
			dia_corte = EXCLUDED.dia_corte,
			dias_uteis_padrao = EXCLUDED.dias_uteis_padrao,
			atualizado_em = EXCLUDED.atualizado_em`
	_, err := r.q.Exec(context.Background(), query,
		c.ValorDiaVA, c.ValorCesta, c.TetoSalarialCesta, c.DiaCorte, c.DiasUteisPadrao, c.AtualizadoEm,
	)
	if err != nil {
		return fmt.Errorf("save configuracao: %w", err)
	}
	return nil
}
