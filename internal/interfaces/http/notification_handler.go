package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/agencyhub-api/internal/application/dto"
	"github.com/jhoicas/agencyhub-api/internal/application/reports"
	"github.com/jhoicas/agencyhub-api/internal/application/usecase"
	"github.com/jhoicas/agencyhub-api/internal/domain"
)

// NotificationHandler maneja el log de actividad y el feed de notificaciones.
type NotificationHandler struct {
	uc       *usecase.NotificationUseCase
	reportUC *reports.ActivityReportUseCase
}

// NewNotificationHandler construye el handler de notificaciones.
func NewNotificationHandler(uc *usecase.NotificationUseCase, reportUC *reports.ActivityReportUseCase) *NotificationHandler {
	return &NotificationHandler{uc: uc, reportUC: reportUC}
}

// Log godoc
// @Summary      Registra una entrada en el log de actividad de la agencia
// @Description  Acepta peticiones anónimas (formularios públicos de sub-cuentas): el
// @Description  actor se resuelve por la sub-cuenta. Requiere agency_id o subaccount_id.
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LogActivityRequest  true  "agency_id y/o subaccount_id, description"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/notifications [post]
func (h *NotificationHandler) Log(c *fiber.Ctx) error {
	var in dto.LogActivityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.LogActivity(GetPrincipal(c), in); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "se requiere agency_id o subaccount_id"})
		case errors.Is(err, domain.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "no se pudo resolver el actor del log"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListByAgency godoc
// @Summary      Feed de notificaciones de una agencia, más reciente primero
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        id      path      string  true   "ID de la agencia"
// @Param        limit   query     int     false  "máximo de filas (default 50)"
// @Param        offset  query     int     false  "desplazamiento"
// @Success      200     {object}  dto.NotificationListResponse
// @Failure      401     {object}  dto.ErrorResponse
// @Failure      403     {object}  dto.ErrorResponse
// @Router       /api/agencies/{id}/notifications [get]
func (h *NotificationHandler) ListByAgency(c *fiber.Ctx) error {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit"),
		Offset: c.QueryInt("offset"),
	}
	out, err := h.uc.ListByAgency(GetPrincipal(c), c.Params("id"), page)
	if err != nil {
		return notificationError(c, err)
	}
	return c.JSON(out)
}

// Report godoc
// @Summary      Reporte PDF de actividad reciente de la agencia
// @Description  Solo administradores de la agencia. Descarga un PDF.
// @Tags         notifications
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id     path   string  true   "ID de la agencia"
// @Param        limit  query  int     false  "máximo de filas (default 200)"
// @Success      200  {file}    file
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/agencies/{id}/notifications/report [get]
func (h *NotificationHandler) Report(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.reportUC.Generate(GetPrincipal(c), c.Params("id"), c.QueryInt("limit"))
	if err != nil {
		return notificationError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

func notificationError(c *fiber.Ctx, err error) error {
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
