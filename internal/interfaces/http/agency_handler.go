package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/agencyhub-api/internal/application/dto"
	"github.com/jhoicas/agencyhub-api/internal/application/usecase"
	"github.com/jhoicas/agencyhub-api/internal/domain"
)

// AgencyHandler maneja lecturas y ediciones de agencias.
type AgencyHandler struct {
	uc *usecase.AgencyUseCase
}

// NewAgencyHandler construye el handler de agencias.
func NewAgencyHandler(uc *usecase.AgencyUseCase) *AgencyHandler {
	return &AgencyHandler{uc: uc}
}

// GetByID godoc
// @Summary      Detalle de una agencia
// @Tags         agencies
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "ID de la agencia"
// @Success      200  {object}  dto.AgencyResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/agencies/{id} [get]
func (h *AgencyHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetPrincipal(c), c.Params("id"))
	if err != nil {
		return agencyError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Edición parcial de una agencia
// @Description  Solo AGENCY_ADMIN de la propia agencia. Los campos omitidos no cambian.
// @Tags         agencies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                   true  "ID de la agencia"
// @Param        body  body      dto.UpdateAgencyRequest  true  "campos a cambiar"
// @Success      200   {object}  dto.AgencyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/agencies/{id} [put]
func (h *AgencyHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAgencyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateDetails(GetPrincipal(c), c.Params("id"), in)
	if err != nil {
		return agencyError(c, err)
	}
	return c.JSON(out)
}

// agencyError mapea los errores de dominio de agencias a respuestas HTTP.
func agencyError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHENTICATED", Message: "sesión requerida"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "NOT_AUTHORIZED", Message: "sin acceso a esta agencia"})
	case errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "usuario sin registro en el workspace"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "agencia no encontrada"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
