package dto

import "time"

// CreateAusenciaRequest entrada para registrar uma ausência.
type CreateAusenciaRequest struct {
	Matricula string `json:"matricula" validate:"required"`
	Data      string `json:"data" validate:"required"` // YYYY-MM-DD
	Tipo      string `json:"tipo" validate:"required,oneof=INJUSTIFICADA JUSTIFICADA"`
	Motivo    string `json:"motivo"`
}

// AusenciaResponse representação de saída de uma ausência.
type AusenciaResponse struct {
	ID        string    `json:"id"`
	Matricula string    `json:"matricula"`
	Data      time.Time `json:"data"`
	Tipo      string    `json:"tipo"`
	Motivo    string    `json:"motivo"`
	CriadoEm  time.Time `json:"criado_em"`
}

// AusenciaListResponse listagem paginada de ausências.
type AusenciaListResponse struct {
	Items []AusenciaResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
