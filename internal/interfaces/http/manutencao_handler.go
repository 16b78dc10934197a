package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/application/dto"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/application/manutencao"
)

// ManutencaoHandler trata os resets destrutivos (restrito a admin via
// RequireRole no router).
type ManutencaoHandler struct {
	uc *manutencao.ResetUseCase
}

// NewManutencaoHandler constrói o handler.
func NewManutencaoHandler(uc *manutencao.ResetUseCase) *ManutencaoHandler {
	return &ManutencaoHandler{uc: uc}
}

// LimparFuncionarios godoc
// @Summary      Apagar funcionários não referenciados por períodos bloqueados
// @Tags         manutencao
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ResetResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/manutencao/funcionarios [delete]
func (h *ManutencaoHandler) LimparFuncionarios(c *fiber.Ctx) error {
	out, err := h.uc.LimparFuncionarios(c.Context(), GetMatricula(c))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// LimparAusencias godoc
// @Summary      Apagar ausências não referenciadas por períodos bloqueados
// @Tags         manutencao
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ResetResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/manutencao/ausencias [delete]
func (h *ManutencaoHandler) LimparAusencias(c *fiber.Ctx) error {
	out, err := h.uc.LimparAusencias(c.Context(), GetMatricula(c))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// LimparCalculos godoc
// @Summary      Apagar resultados de períodos não bloqueados
// @Tags         manutencao
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ResetResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/manutencao/calculos [delete]
func (h *ManutencaoHandler) LimparCalculos(c *fiber.Ctx) error {
	out, err := h.uc.LimparCalculos(c.Context(), GetMatricula(c))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// LimparAjustesPeriodo godoc
// @Summary      Apagar os ajustes de um período ainda aberto
// @Tags         manutencao
// @Security     Bearer
// @Produce      json
// @Param        periodo  path  string  true  "Período (YYYY-MM)"
// @Success      200  {object}  dto.ResetResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/manutencao/ajustes/{periodo} [delete]
func (h *ManutencaoHandler) LimparAjustesPeriodo(c *fiber.Ctx) error {
	periodo := c.Params("periodo")
	if periodo == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "periodo é obrigatório"})
	}
	out, err := h.uc.LimparAjustesPeriodo(c.Context(), GetMatricula(c), periodo)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}
