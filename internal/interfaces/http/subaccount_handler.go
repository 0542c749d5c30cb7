package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/agencyhub-api/internal/application/dto"
	"github.com/jhoicas/agencyhub-api/internal/application/usecase"
	"github.com/jhoicas/agencyhub-api/internal/domain"
)

// SubAccountHandler lecturas de sub-cuentas.
type SubAccountHandler struct {
	uc *usecase.SubAccountUseCase
}

// NewSubAccountHandler construye el handler de sub-cuentas.
func NewSubAccountHandler(uc *usecase.SubAccountUseCase) *SubAccountHandler {
	return &SubAccountHandler{uc: uc}
}

// GetByID godoc
// @Summary      Detalle de una sub-cuenta
// @Tags         subaccounts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "ID de la sub-cuenta"
// @Success      200  {object}  dto.SubAccountResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/subaccounts/{id} [get]
func (h *SubAccountHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetPrincipal(c), c.Params("id"))
	if err != nil {
		return subAccountError(c, err)
	}
	return c.JSON(out)
}

// ListByAgency godoc
// @Summary      Sub-cuentas de una agencia
// @Tags         subaccounts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "ID de la agencia"
// @Success      200  {array}   dto.SubAccountResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/agencies/{id}/subaccounts [get]
func (h *SubAccountHandler) ListByAgency(c *fiber.Ctx) error {
	out, err := h.uc.ListByAgency(GetPrincipal(c), c.Params("id"))
	if err != nil {
		return subAccountError(c, err)
	}
	return c.JSON(out)
}

func subAccountError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHENTICATED", Message: "sesión requerida"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "NOT_AUTHORIZED", Message: "sin acceso a esta sub-cuenta"})
	case errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "usuario sin registro en el workspace"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sub-cuenta no encontrada"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
