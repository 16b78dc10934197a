package dto

// TokenRequest entrada da emissão de token (integração com o SSO corporativo
// fica fora; aqui só a emissão direta para ambientes de desenvolvimento).
type TokenRequest struct {
	Matricula string `json:"matricula" validate:"required"`
	Role      string `json:"role" validate:"required,oneof=admin rh gestor"`
}

// TokenResponse token emitido e validade em segundos.
type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"`
}
