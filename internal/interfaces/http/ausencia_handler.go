package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/application/dto"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/application/usecase"
)

// AusenciaHandler trata as requisições HTTP de ausências (protegido).
type AusenciaHandler struct {
	uc *usecase.AusenciaUseCase
}

// NewAusenciaHandler constrói o handler.
func NewAusenciaHandler(uc *usecase.AusenciaUseCase) *AusenciaHandler {
	return &AusenciaHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar ausência
// @Tags         ausencias
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAusenciaRequest  true  "Dados da ausência"
// @Success      201   {object}  dto.AusenciaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/ausencias [post]
func (h *AusenciaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAusenciaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Matricula == "" || in.Data == "" || in.Tipo == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "matricula, data e tipo são obrigatórios"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByMatricula godoc
// @Summary      Listar ausências de um funcionário
// @Tags         ausencias
// @Security     Bearer
// @Produce      json
// @Param        matricula  path   string  true   "Matrícula"
// @Param        limit      query  int     false  "Limite"  default(20)
// @Param        offset     query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.AusenciaListResponse
// @Router       /api/funcionarios/{matricula}/ausencias [get]
func (h *AusenciaHandler) ListByMatricula(c *fiber.Ctx) error {
	matricula := c.Params("matricula")
	if matricula == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "matricula é obrigatória"})
	}
	limit, offset := paginacao(c)
	out, err := h.uc.ListByMatricula(matricula, limit, offset)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Remover ausência
// @Tags         ausencias
// @Security     Bearer
// @Param        id  path  string  true  "ID da ausência"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/ausencias/{id} [delete]
func (h *AusenciaHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id é obrigatório"})
	}
	if err := h.uc.Delete(id); err != nil {
		return responderErro(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
