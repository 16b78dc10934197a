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

var _ repository.FuncionarioRepository = (*FuncionarioRepo)(nil)

const funcionarioCols = `matricula, nome, cargo, salario, departamento, localizacao, status, data_admissao, status_inicio, status_fim, criado_em, atualizado_em`

// FuncionarioRepo implementação do port FuncionarioRepository sobre PostgreSQL
// (usável com pool ou tx).
type FuncionarioRepo struct {
	q Querier
}

// NewFuncionarioRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewFuncionarioRepository(q Querier) *FuncionarioRepo {
	return &FuncionarioRepo{q: q}
}

// Create persiste um novo funcionário.
func (r *FuncionarioRepo) Create(f *entity.Funcionario) error {
	query := `
		INSERT INTO funcionarios (` + funcionarioCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		f.Matricula, f.Nome, f.Cargo, f.Salario, f.Departamento, f.Localizacao,
		f.Status, f.DataAdmissao, f.StatusInicio, f.StatusFim, f.CriadoEm, f.AtualizadoEm,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert funcionario: %w", err)
	}
	return nil
}

// GetByMatricula busca um funcionário pela matrícula.
func (r *FuncionarioRepo) GetByMatricula(matricula string) (*entity.Funcionario, error) {
	query := `SELECT ` + funcionarioCols + ` FROM funcionarios WHERE matricula = $1`
	var f entity.Funcionario
	err := r.q.QueryRow(context.Background(), query, matricula).Scan(
		&f.Matricula, &f.Nome, &f.Cargo, &f.Salario, &f.Departamento, &f.Localizacao,
		&f.Status, &f.DataAdmissao, &f.StatusInicio, &f.StatusFim, &f.CriadoEm, &f.AtualizadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get funcionario: %w", err)
	}
	return &f, nil
}

// Update atualiza um funcionário existente (matrícula e admissão imutáveis).
func (r *FuncionarioRepo) Update(f *entity.Funcionario) error {
	query := `
		UPDATE funcionarios
		SET nome = $2, cargo = $3, salario = $4, departamento = $5, localizacao = $6,
		    status = $7, status_inicio = $8, status_fim = $9, atualizado_em = $10
		WHERE matricula = $1`
	_, err := r.q.Exec(context.Background(), query,
		f.Matricula, f.Nome, f.Cargo, f.Salario, f.Departamento, f.Localizacao,
		f.Status, f.StatusInicio, f.StatusFim, f.AtualizadoEm,
	)
	if err != nil {
		return fmt.Errorf("update funcionario: %w", err)
	}
	return nil
}

// Delete remove um funcionário pela matrícula.
func (r *FuncionarioRepo) Delete(matricula string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM funcionarios WHERE matricula = $1`, matricula)
	if err != nil {
		return fmt.Errorf("delete funcionario: %w", err)
	}
	return nil
}

// List lista funcionários com paginação, ordenados por matrícula.
func (r *FuncionarioRepo) List(limit, offset int) ([]*entity.Funcionario, error) {
	query := `SELECT ` + funcionarioCols + ` FROM funcionarios ORDER BY matricula LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list funcionarios: %w", err)
	}
	defer rows.Close()
	return scanFuncionarios(rows)
}

// ListByStatus devolve os funcionários com status no conjunto dado.
func (r *FuncionarioRepo) ListByStatus(status []string) ([]*entity.Funcionario, error) {
	query := `SELECT ` + funcionarioCols + ` FROM funcionarios WHERE status = ANY($1) ORDER BY matricula`
	rows, err := r.q.Query(context.Background(), query, status)
	if err != nil {
		return nil, fmt.Errorf("list funcionarios por status: %w", err)
	}
	defer rows.Close()
	return scanFuncionarios(rows)
}

// Count devolve o total de funcionários.
func (r *FuncionarioRepo) Count() (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM funcionarios`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count funcionarios: %w", err)
	}
	return n, nil
}

// DeleteAllExcept apaga todos os funcionários exceto as matrículas protegidas.
func (r *FuncionarioRepo) DeleteAllExcept(matriculasProtegidas []string) (int64, error) {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM funcionarios WHERE NOT (matricula = ANY($1))`,
		matriculasProtegidas,
	)
	if err != nil {
		return 0, fmt.Errorf("delete funcionarios: %w", err)
	}
	return cmd.RowsAffected(), nil
}

func scanFuncionarios(rows pgx.Rows) ([]*entity.Funcionario, error) {
	var list []*entity.Funcionario
	for rows.Next() {
		var f entity.Funcionario
		if err := rows.Scan(
			&f.Matricula, &f.Nome, &f.Cargo, &f.Salario, &f.Departamento, &f.Localizacao,
			&f.Status, &f.DataAdmissao, &f.StatusInicio, &f.StatusFim, &f.CriadoEm, &f.AtualizadoEm,
		); err != nil {
			return nil, fmt.Errorf("scan funcionario: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}
