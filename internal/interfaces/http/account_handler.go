package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/agencyhub-api/internal/application/dto"
	"github.com/jhoicas/agencyhub-api/internal/application/usecase"
	"github.com/jhoicas/agencyhub-api/internal/domain"
)

// AccountHandler expone los detalles de la cuenta del usuario autenticado.
type AccountHandler struct {
	uc *usecase.AccountUseCase
}

// NewAccountHandler construye el handler de cuenta.
func NewAccountHandler(uc *usecase.AccountUseCase) *AccountHandler {
	return &AccountHandler{uc: uc}
}

// Me godoc
// @Summary      Detalles del usuario autenticado con su agencia, sidebar y permisos
// @Tags         account
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.AccountDetailsResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/me [get]
func (h *AccountHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.AuthUserDetails(GetPrincipal(c))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthenticated):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHENTICATED", Message: "sesión requerida"})
		case errors.Is(err, domain.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "usuario sin registro en el workspace"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(out)
}
