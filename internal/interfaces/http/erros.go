package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/application/dto"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/domain"
)

// responderErro traduz os erros de domínio para status HTTP. Os erros da
// máquina de estados do período viram 409: o recurso existe, mas o estado
// atual não admite a operação.
func responderErro(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNaoEncontrado):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrEntradaInvalida):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicado):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	case errors.Is(err, domain.ErrNaoAutorizado):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: err.Error()})
	case errors.Is(err, domain.ErrAcessoNegado):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()})
	case errors.Is(err, domain.ErrConfiguracaoAusente):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "CONFIGURACAO_AUSENTE", Message: err.Error()})
	case errors.Is(err, domain.ErrPeriodoSelado):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "PERIODO_SELADO", Message: err.Error()})
	case errors.Is(err, domain.ErrPeriodoBloqueado):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "PERIODO_BLOQUEADO", Message: err.Error()})
	case errors.Is(err, domain.ErrReprocessoNaoConfirmado):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "REPROCESSO_NAO_CONFIRMADO", Message: err.Error()})
	case errors.Is(err, domain.ErrTransicaoInvalida):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "TRANSICAO_INVALIDA", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
