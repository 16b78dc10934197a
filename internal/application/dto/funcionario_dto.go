package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateFuncionarioRequest entrada para cadastrar um funcionário.
// DataAdmissao e vigências no formato YYYY-MM-DD.
type CreateFuncionarioRequest struct {
	Matricula    string          `json:"matricula" validate:"required,min=1,max=20"`
	Nome         string          `json:"nome" validate:"required,min=1,max=200"`
	Cargo        string          `json:"cargo"`
	Salario      decimal.Decimal `json:"salario" validate:"required"`
	Departamento string          `json:"departamento"`
	Localizacao  string          `json:"localizacao"`
	Status       string          `json:"status"`
	DataAdmissao string          `json:"data_admissao" validate:"required"`
	StatusInicio string          `json:"status_inicio,omitempty"`
	StatusFim    string          `json:"status_fim,omitempty"`
}

// UpdateFuncionarioRequest entrada parcial para atualizar um funcionário.
type UpdateFuncionarioRequest struct {
	Nome         *string          `json:"nome,omitempty"`
	Cargo        *string          `json:"cargo,omitempty"`
	Salario      *decimal.Decimal `json:"salario,omitempty"`
	Departamento *string          `json:"departamento,omitempty"`
	Localizacao  *string          `json:"localizacao,omitempty"`
	Status       *string          `json:"status,omitempty"`
	StatusInicio *string          `json:"status_inicio,omitempty"`
	StatusFim    *string          `json:"status_fim,omitempty"`
}

// FuncionarioResponse representação de saída de um funcionário.
type FuncionarioResponse struct {
	Matricula    string          `json:"matricula"`
	Nome         string          `json:"nome"`
	Cargo        string          `json:"cargo"`
	Salario      decimal.Decimal `json:"salario"`
	Departamento string          `json:"departamento"`
	Localizacao  string          `json:"localizacao"`
	Status       string          `json:"status"`
	DataAdmissao time.Time       `json:"data_admissao"`
	StatusInicio *time.Time      `json:"status_inicio,omitempty"`
	StatusFim    *time.Time      `json:"status_fim,omitempty"`
	CriadoEm     time.Time       `json:"criado_em"`
	AtualizadoEm time.Time       `json:"atualizado_em"`
}

// FuncionarioListResponse listagem paginada de funcionários.
type FuncionarioListResponse struct {
	Items []FuncionarioResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
