package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/agencyhub-api/internal/application/auth"
	"github.com/jhoicas/agencyhub-api/internal/application/reports"
	"github.com/jhoicas/agencyhub-api/internal/application/usecase"
	"github.com/jhoicas/agencyhub-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	AccountUC      *usecase.AccountUseCase
	InvitationUC   *usecase.InvitationUseCase
	AgencyUC       *usecase.AgencyUseCase
	SubAccountUC   *usecase.SubAccountUseCase
	NotificationUC *usecase.NotificationUseCase
	ActivityReport *reports.ActivityReportUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Log de actividad (auth opcional: formularios públicos de sub-cuentas)
	notificationHandler := NewNotificationHandler(deps.NotificationUC, deps.ActivityReport)
	api.Post("/notifications", OptionalAuthMiddleware(deps.JWTSecret), notificationHandler.Log)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Cuenta del usuario autenticado
	accountHandler := NewAccountHandler(deps.AccountUC)
	protected.Get("/me", accountHandler.Me)

	// Invitaciones
	invitationHandler := NewInvitationHandler(deps.InvitationUC)
	protected.Post("/invitations/accept", invitationHandler.Accept)

	// Agencias
	agencies := protected.Group("/agencies")
	agencyHandler := NewAgencyHandler(deps.AgencyUC)
	subAccountHandler := NewSubAccountHandler(deps.SubAccountUC)
	agencies.Get("/:id", agencyHandler.GetByID)
	agencies.Put("/:id", agencyHandler.Update)
	agencies.Get("/:id/subaccounts", subAccountHandler.ListByAgency)
	agencies.Get("/:id/notifications", notificationHandler.ListByAgency)
	// El reporte es administrativo: RBAC en el borde, el caso de uso revalida contra DB
	agencies.Get("/:id/notifications/report",
		RequireRole(entity.RoleAgencyAdmin, entity.RoleAgencyOwner),
		notificationHandler.Report)

	// Sub-cuentas
	subAccounts := protected.Group("/subaccounts")
	subAccounts.Get("/:id", subAccountHandler.GetByID)
}
