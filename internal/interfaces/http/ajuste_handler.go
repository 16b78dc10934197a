package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/application/dto"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/application/usecase"
)

// AjusteHandler trata as requisições HTTP de ajustes manuais (protegido).
type AjusteHandler struct {
	uc *usecase.AjusteUseCase
}

// NewAjusteHandler constrói o handler.
func NewAjusteHandler(uc *usecase.AjusteUseCase) *AjusteHandler {
	return &AjusteHandler{uc: uc}
}

// Create godoc
// @Summary      Lançar ajuste manual
// @Tags         ajustes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAjusteRequest  true  "Dados do ajuste"
// @Success      201   {object}  dto.AjusteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ajustes [post]
func (h *AjusteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAjusteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Matricula == "" || in.Periodo == "" || in.Tipo == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "matricula, periodo e tipo são obrigatórios"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByPeriodo godoc
// @Summary      Listar ajustes de um período
// @Tags         ajustes
// @Security     Bearer
// @Produce      json
// @Param        periodo  query  string  true  "Período (YYYY-MM)"
// @Success      200  {array}  dto.AjusteResponse
// @Router       /api/ajustes [get]
func (h *AjusteHandler) ListByPeriodo(c *fiber.Ctx) error {
	periodo := c.Query("periodo")
	if periodo == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query param periodo é obrigatório"})
	}
	out, err := h.uc.ListByPeriodo(periodo)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Remover ajuste
// @Tags         ajustes
// @Security     Bearer
// @Param        id  path  string  true  "ID do ajuste"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/ajustes/{id} [delete]
func (h *AjusteHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id é obrigatório"})
	}
	if err := h.uc.Delete(id); err != nil {
		return responderErro(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
