package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/application/dto"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/pkg/config"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/pkg/jwt"
)

// AuthHandler emite tokens para desenvolvimento. Em produção a rota é
// desabilitada; a identidade vem do SSO corporativo que assina com o mesmo
// secret.
type AuthHandler struct {
	cfg *config.Config
}

// NewAuthHandler constrói o handler.
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

// Token godoc
// @Summary      Emitir token de desenvolvimento
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TokenRequest  true  "Matrícula e role"
// @Success      200   {object}  dto.TokenResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/token [post]
func (h *AuthHandler) Token(c *fiber.Ctx) error {
	if h.cfg.App.Env == "production" {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "emissão direta de token desabilitada em produção"})
	}
	var in dto.TokenRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Matricula == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "matricula é obrigatória"})
	}
	switch in.Role {
	case RoleAdmin, RoleRH, RoleGestor:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "role deve ser admin, rh ou gestor"})
	}
	token, err := jwt.Generate(h.cfg.JWT.Secret, in.Matricula, in.Role, h.cfg.JWT.Issuer, h.cfg.JWT.Expiration)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.TokenResponse{Token: token, ExpiresIn: h.cfg.JWT.Expiration * 60})
}
