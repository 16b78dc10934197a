package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/application/dto"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/application/usecase"
)

// ConfiguracaoHandler trata as requisições HTTP da configuração global
// (protegido; escrita restrita a admin).
type ConfiguracaoHandler struct {
	uc *usecase.ConfiguracaoUseCase
}

// NewConfiguracaoHandler constrói o handler.
func NewConfiguracaoHandler(uc *usecase.ConfiguracaoUseCase) *ConfiguracaoHandler {
	return &ConfiguracaoHandler{uc: uc}
}

// Get godoc
// @Summary      Obter configuração global
// @Tags         configuracao
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ConfiguracaoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/configuracao [get]
func (h *ConfiguracaoHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get()
	if err != nil {
		return responderErro(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "configuração ainda não definida"})
	}
	return c.JSON(out)
}

// Save godoc
// @Summary      Gravar configuração global
// @Tags         configuracao
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveConfiguracaoRequest  true  "Parâmetros de cálculo"
// @Success      200   {object}  dto.ConfiguracaoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/configuracao [put]
func (h *ConfiguracaoHandler) Save(c *fiber.Ctx) error {
	var in dto.SaveConfiguracaoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Save(in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}
