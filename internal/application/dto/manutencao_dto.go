package dto

// ResetResponse resultado de uma operação de reset guardado.
// Parcial indica que parte das linhas foi preservada por pertencer a um
// período aprovado/selado.
type ResetResponse struct {
	Removidos   int64 `json:"removidos"`
	Preservados int64 `json:"preservados"`
	Parcial     bool  `json:"parcial"`
}
