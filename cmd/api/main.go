package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/agencyhub-api/internal/application/auth"
	"github.com/jhoicas/agencyhub-api/internal/application/reports"
	"github.com/jhoicas/agencyhub-api/internal/application/usecase"
	infraidentity "github.com/jhoicas/agencyhub-api/internal/infrastructure/identity"
	infrapdf "github.com/jhoicas/agencyhub-api/internal/infrastructure/pdf"
	"github.com/jhoicas/agencyhub-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/agencyhub-api/internal/interfaces/http"
	"github.com/jhoicas/agencyhub-api/pkg/config"
	"github.com/jhoicas/agencyhub-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	agencyRepo := postgres.NewAgencyRepository(pool)
	subAccountRepo := postgres.NewSubAccountRepository(pool)
	invitationRepo := postgres.NewInvitationRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	permissionRepo := postgres.NewPermissionRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	identityClient := infraidentity.NewProviderClient(cfg.Identity.BaseURL, cfg.Identity.APIKey)

	authUC := auth.NewAuthUseCase(txRunner, userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	accountUC := usecase.NewAccountUseCase(userRepo, agencyRepo, subAccountRepo, permissionRepo)
	invitationUC := usecase.NewInvitationUseCase(txRunner, invitationRepo, userRepo, identityClient, log)
	agencyUC := usecase.NewAgencyUseCase(agencyRepo, userRepo)
	subAccountUC := usecase.NewSubAccountUseCase(subAccountRepo, userRepo)
	notificationUC := usecase.NewNotificationUseCase(userRepo, subAccountRepo, notificationRepo, log)

	// PDF: reporte de actividad reciente de la agencia
	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	activityReportUC := reports.NewActivityReportUseCase(agencyRepo, notificationRepo, userRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "AgencyHub API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		AccountUC:      accountUC,
		InvitationUC:   invitationUC,
		AgencyUC:       agencyUC,
		SubAccountUC:   subAccountUC,
		NotificationUC: notificationUC,
		ActivityReport: activityReportUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
