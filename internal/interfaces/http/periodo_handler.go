package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/application/ciclo"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/application/dto"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/application/processamento"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/application/relatorio"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/application/usecase"
)

// PeriodoHandler trata as requisições HTTP do ciclo do período: processar,
// aprovar, selar, reabrir, consultas e espelho em PDF (protegido).
type PeriodoHandler struct {
	processarUC *processamento.ProcessarPeriodoUseCase
	cicloUC     *ciclo.CicloPeriodoUseCase
	periodoUC   *usecase.PeriodoUseCase
	espelhoUC   *relatorio.EspelhoUseCase
}

// NewPeriodoHandler constrói o handler.
func NewPeriodoHandler(
	processarUC *processamento.ProcessarPeriodoUseCase,
	cicloUC *ciclo.CicloPeriodoUseCase,
	periodoUC *usecase.PeriodoUseCase,
	espelhoUC *relatorio.EspelhoUseCase,
) *PeriodoHandler {
	return &PeriodoHandler{
		processarUC: processarUC,
		cicloUC:     cicloUC,
		periodoUC:   periodoUC,
		espelhoUC:   espelhoUC,
	}
}

// Processar godoc
// @Summary      Processar (apurar) um período
// @Tags         periodos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProcessarPeriodoRequest  true  "Período (YYYY-MM ou ID) e confirmação"
// @Success      200   {object}  dto.ProcessarPeriodoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/periodos/processar [post]
func (h *PeriodoHandler) Processar(c *fiber.Ctx) error {
	var in dto.ProcessarPeriodoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Periodo == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "periodo é obrigatório"})
	}
	out, err := h.processarUC.Processar(c.Context(), GetMatricula(c), in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// Aprovar godoc
// @Summary      Aprovar um período processado
// @Tags         periodos
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do período"
// @Success      200  {object}  dto.PeriodoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/periodos/{id}/aprovar [post]
func (h *PeriodoHandler) Aprovar(c *fiber.Ctx) error {
	out, err := h.cicloUC.Aprovar(c.Context(), c.Params("id"), GetMatricula(c))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// Selar godoc
// @Summary      Selar (exportar) um período aprovado
// @Tags         periodos
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do período"
// @Success      200  {object}  dto.PeriodoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/periodos/{id}/selar [post]
func (h *PeriodoHandler) Selar(c *fiber.Ctx) error {
	out, err := h.cicloUC.Selar(c.Context(), c.Params("id"), GetMatricula(c))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// Reabrir godoc
// @Summary      Reabrir um período não selado
// @Tags         periodos
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do período"
// @Success      200  {object}  dto.PeriodoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/periodos/{id}/reabrir [post]
func (h *PeriodoHandler) Reabrir(c *fiber.Ctx) error {
	out, err := h.cicloUC.Reabrir(c.Context(), c.Params("id"), GetMatricula(c))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar períodos
// @Tags         periodos
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.PeriodoListResponse
// @Router       /api/periodos [get]
func (h *PeriodoHandler) List(c *fiber.Ctx) error {
	limit, offset := paginacao(c)
	out, err := h.periodoUC.List(limit, offset)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obter período por ID
// @Tags         periodos
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do período"
// @Success      200  {object}  dto.PeriodoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/periodos/{id} [get]
func (h *PeriodoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.periodoUC.GetByID(c.Params("id"))
	if err != nil {
		return responderErro(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "período não encontrado"})
	}
	return c.JSON(out)
}

// Resultados godoc
// @Summary      Listar resultados por funcionário de um período
// @Tags         periodos
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do período"
// @Success      200  {array}  dto.ResultadoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/periodos/{id}/resultados [get]
func (h *PeriodoHandler) Resultados(c *fiber.Ctx) error {
	out, err := h.periodoUC.Resultados(c.Params("id"))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// Espelho godoc
// @Summary      Baixar o espelho do período em PDF
// @Tags         periodos
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID do período"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/periodos/{id}/espelho [get]
func (h *PeriodoHandler) Espelho(c *fiber.Ctx) error {
	pdfBytes, err := h.espelhoUC.Gerar(c.Context(), c.Params("id"))
	if err != nil {
		return responderErro(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="espelho.pdf"`)
	return c.Send(pdfBytes)
}
