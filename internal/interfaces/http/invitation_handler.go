package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/agencyhub-api/internal/application/dto"
	"github.com/jhoicas/agencyhub-api/internal/application/usecase"
	"github.com/jhoicas/agencyhub-api/internal/domain"
)

// InvitationHandler maneja la aceptación de invitaciones.
type InvitationHandler struct {
	uc *usecase.InvitationUseCase
}

// NewInvitationHandler construye el handler de invitaciones.
func NewInvitationHandler(uc *usecase.InvitationUseCase) *InvitationHandler {
	return &InvitationHandler{uc: uc}
}

// Accept godoc
// @Summary      Acepta la invitación pendiente del usuario autenticado (si existe)
// @Description  Si hay invitación pendiente para el email del usuario, lo da de alta en
// @Description  la agencia y registra la actividad. Si no hay invitación devuelve la
// @Description  membresía existente. Idempotente frente a dobles envíos.
// @Tags         invitations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.AcceptInvitationResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/invitations/accept [post]
func (h *InvitationHandler) Accept(c *fiber.Ctx) error {
	out, err := h.uc.VerifyAndAccept(c.Context(), GetPrincipal(c))
	if err != nil {
		if errors.Is(err, domain.ErrUnauthenticated) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHENTICATED", Message: "sesión requerida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
