package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/application/dto"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/application/usecase"
)

// FuncionarioHandler trata as requisições HTTP de funcionários (protegido).
type FuncionarioHandler struct {
	uc *usecase.FuncionarioUseCase
}

// NewFuncionarioHandler constrói o handler.
func NewFuncionarioHandler(uc *usecase.FuncionarioUseCase) *FuncionarioHandler {
	return &FuncionarioHandler{uc: uc}
}

// Create godoc
// @Summary      Cadastrar funcionário
// @Tags         funcionarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFuncionarioRequest  true  "Dados do funcionário"
// @Success      201   {object}  dto.FuncionarioResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/funcionarios [post]
func (h *FuncionarioHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFuncionarioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Matricula == "" || in.Nome == "" || in.DataAdmissao == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "matricula, nome e data_admissao são obrigatórios"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByMatricula godoc
// @Summary      Obter funcionário por matrícula
// @Tags         funcionarios
// @Security     Bearer
// @Produce      json
// @Param        matricula  path  string  true  "Matrícula"
// @Success      200  {object}  dto.FuncionarioResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/funcionarios/{matricula} [get]
func (h *FuncionarioHandler) GetByMatricula(c *fiber.Ctx) error {
	matricula := c.Params("matricula")
	if matricula == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "matricula é obrigatória"})
	}
	out, err := h.uc.GetByMatricula(matricula)
	if err != nil {
		return responderErro(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "funcionário não encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar funcionários
// @Tags         funcionarios
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.FuncionarioListResponse
// @Router       /api/funcionarios [get]
func (h *FuncionarioHandler) List(c *fiber.Ctx) error {
	limit, offset := paginacao(c)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar funcionário
// @Tags         funcionarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        matricula  path  string  true  "Matrícula"
// @Param        body       body  dto.UpdateFuncionarioRequest  true  "Campos a atualizar"
// @Success      200  {object}  dto.FuncionarioResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/funcionarios/{matricula} [put]
func (h *FuncionarioHandler) Update(c *fiber.Ctx) error {
	matricula := c.Params("matricula")
	if matricula == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "matricula é obrigatória"})
	}
	var in dto.UpdateFuncionarioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Update(matricula, in)
	if err != nil {
		return responderErro(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "funcionário não encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Remover funcionário
// @Tags         funcionarios
// @Security     Bearer
// @Param        matricula  path  string  true  "Matrícula"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/funcionarios/{matricula} [delete]
func (h *FuncionarioHandler) Delete(c *fiber.Ctx) error {
	matricula := c.Params("matricula")
	if matricula == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "matricula é obrigatória"})
	}
	if err := h.uc.Delete(matricula); err != nil {
		return responderErro(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// paginacao extrai limit/offset da query string com os limites padrão.
func paginacao(c *fiber.Ctx) (int, int) {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
