package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/domain"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/domain/entity"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/domain/repository"
)

var _ repository.PeriodoRepository = (*PeriodoRepo)(nil)

const periodoCols = `id, nome, status, valor_total, total_funcionarios,
	processado_por, processado_em, aprovado_por, aprovado_em,
	exportado_por, exportado_em, hash_integridade, criado_em, atualizado_em`

// PeriodoRepo implementação do port PeriodoRepository sobre PostgreSQL.
// O status é gravado como veio (grafias legadas inclusive); a canonicalização
// acontece na entidade.
type PeriodoRepo struct {
	q Querier
}

// NewPeriodoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewPeriodoRepository(q Querier) *PeriodoRepo {
	return &PeriodoRepo{q: q}
}

// Create persiste um novo período (nome único).
func (r *PeriodoRepo) Create(p *entity.Periodo) error {
	query := `
		INSERT INTO periodos (` + periodoCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nome, p.Status, p.ValorTotal, p.TotalFuncionarios,
		nullable(p.ProcessadoPor), p.ProcessadoEm, nullable(p.AprovadoPor), p.AprovadoEm,
		nullable(p.ExportadoPor), p.ExportadoEm, nullable(p.HashIntegridade), p.CriadoEm, p.AtualizadoEm,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert periodo: %w", err)
	}
	return nil
}

// GetByID busca um período por ID.
func (r *PeriodoRepo) GetByID(id string) (*entity.Periodo, error) {
	return r.getBy(`id = $1`, id)
}

// GetByNome busca um período pelo nome (YYYY-MM).
func (r *PeriodoRepo) GetByNome(nome string) (*entity.Periodo, error) {
	return r.getBy(`nome = $1`, nome)
}

// Update grava status, agregados, metadados e hash do período.
func (r *PeriodoRepo) Update(p *entity.Periodo) error {
	query := `
		UPDATE periodos SET
			status = $2, valor_total = $3, total_funcionarios = $4,
			processado_por = $5, processado_em = $6,
			aprovado_por = $7, aprovado_em = $8,
			exportado_por = $9, exportado_em = $10,
			hash_integridade = $11, atualizado_em = $12
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		p.ID, p.Status, p.ValorTotal, p.TotalFuncionarios,
		nullable(p.ProcessadoPor), p.ProcessadoEm,
		nullable(p.AprovadoPor), p.AprovadoEm,
		nullable(p.ExportadoPor), p.ExportadoEm,
		nullable(p.HashIntegridade), p.AtualizadoEm,
	)
	if err != nil {
		return fmt.Errorf("update periodo: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update periodo %s: %w", p.ID, domain.ErrNaoEncontrado)
	}
	return nil
}

// List lista períodos do mais recente para o mais antigo.
func (r *PeriodoRepo) List(limit, offset int) ([]*entity.Periodo, error) {
	query := `SELECT ` + periodoCols + ` FROM periodos ORDER BY nome DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list periodos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Periodo
	for rows.Next() {
		p, err := scanPeriodo(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// ListDesbloqueados lista os períodos não aprovados/selados, em qualquer
// grafia de status.
func (r *PeriodoRepo) ListDesbloqueados() ([]*entity.Periodo, error) {
	query := `SELECT ` + periodoCols + ` FROM periodos WHERE NOT (UPPER(status) = ANY($1)) ORDER BY nome`
	rows, err := r.q.Query(context.Background(), query, entity.StatusBloqueadosTodos)
	if err != nil {
		return nil, fmt.Errorf("list periodos desbloqueados: %w", err)
	}
	defer rows.Close()
	var list []*entity.Periodo
	for rows.Next() {
		p, err := scanPeriodo(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *PeriodoRepo) getBy(cond string, arg any) (*entity.Periodo, error) {
	query := `SELECT ` + periodoCols + ` FROM periodos WHERE ` + cond
	rows, err := r.q.Query(context.Background(), query, arg)
	if err != nil {
		return nil, fmt.Errorf("get periodo: %w", err)
	}
	defer rows.Close()
	if !rows.Next() {
		if err := rows.Err(); err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("get periodo: %w", err)
		}
		return nil, nil
	}
	return scanPeriodo(rows)
}

func scanPeriodo(row pgx.Row) (*entity.Periodo, error) {
	var p entity.Periodo
	var processadoPor, aprovadoPor, exportadoPor, hash *string
	if err := row.Scan(
		&p.ID, &p.Nome, &p.Status, &p.ValorTotal, &p.TotalFuncionarios,
		&processadoPor, &p.ProcessadoEm, &aprovadoPor, &p.AprovadoEm,
		&exportadoPor, &p.ExportadoEm, &hash, &p.CriadoEm, &p.AtualizadoEm,
	); err != nil {
		return nil, fmt.Errorf("scan periodo: %w", err)
	}
	p.ProcessadoPor = deref(processadoPor)
	p.AprovadoPor = deref(aprovadoPor)
	p.ExportadoPor = deref(exportadoPor)
	p.HashIntegridade = deref(hash)
	return &p, nil
}

// nullable converte string vazia em NULL (colunas de metadado opcionais).
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
