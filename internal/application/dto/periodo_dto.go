package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/domain/entity"
)

// ProcessarPeriodoRequest entrada do processamento de um período.
// Aceita o nome (YYYY-MM) ou o ID de um período existente.
// ConfirmarReprocessamento é exigido quando o período já está APROVADO;
// reprocessar reabre a apuração e descarta a aprovação vigente.
type ProcessarPeriodoRequest struct {
	Periodo                  string `json:"periodo" validate:"required"`
	ConfirmarReprocessamento bool   `json:"confirmar_reprocessamento"`
}

// ProcessarPeriodoResponse resumo do processamento concluído.
type ProcessarPeriodoResponse struct {
	PeriodoID          string          `json:"periodo_id"`
	Periodo            string          `json:"periodo"`
	Status             string          `json:"status"`
	TotalFuncionarios  int             `json:"total_funcionarios"`
	ValorTotal         decimal.Decimal `json:"valor_total"`
	AusenciasIgnoradas int             `json:"ausencias_ignoradas"`
}

// PeriodoResponse representação de saída do agregado de um período.
type PeriodoResponse struct {
	ID                string          `json:"id"`
	Nome              string          `json:"nome"`
	Status            string          `json:"status"`
	ValorTotal        decimal.Decimal `json:"valor_total"`
	TotalFuncionarios int             `json:"total_funcionarios"`
	ProcessadoPor     string          `json:"processado_por,omitempty"`
	ProcessadoEm      *time.Time      `json:"processado_em,omitempty"`
	AprovadoPor       string          `json:"aprovado_por,omitempty"`
	AprovadoEm        *time.Time      `json:"aprovado_em,omitempty"`
	ExportadoPor      string          `json:"exportado_por,omitempty"`
	ExportadoEm       *time.Time      `json:"exportado_em,omitempty"`
	HashIntegridade   string          `json:"hash_integridade,omitempty"`
}

// PeriodoListResponse listagem paginada de períodos.
type PeriodoListResponse struct {
	Items []PeriodoResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// ResultadoResponse uma linha de resultado por funcionário.
type ResultadoResponse struct {
	Matricula      string                `json:"matricula"`
	Nome           string                `json:"nome"`
	Departamento   string                `json:"departamento"`
	DiasCreditados int                   `json:"dias_creditados"`
	ValorVA        decimal.Decimal       `json:"valor_va"`
	ValorCesta     decimal.Decimal       `json:"valor_cesta"`
	ValorTotal     decimal.Decimal       `json:"valor_total"`
	Detalhe        entity.DetalheCalculo `json:"detalhe"`
}

// ToPeriodoResponse converte a entidade para o DTO de saída.
func ToPeriodoResponse(p *entity.Periodo) *PeriodoResponse {
	if p == nil {
		return nil
	}
	return &PeriodoResponse{
		ID:                p.ID,
		Nome:              p.Nome,
		Status:            p.StatusCanonico(),
		ValorTotal:        p.ValorTotal,
		TotalFuncionarios: p.TotalFuncionarios,
		ProcessadoPor:     p.ProcessadoPor,
		ProcessadoEm:      p.ProcessadoEm,
		AprovadoPor:       p.AprovadoPor,
		AprovadoEm:        p.AprovadoEm,
		ExportadoPor:      p.ExportadoPor,
		ExportadoEm:       p.ExportadoEm,
		HashIntegridade:   p.HashIntegridade,
	}
}
