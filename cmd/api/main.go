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

	"github.com/jhoicas/gasops-api/internal/application/analytics"
	"github.com/jhoicas/gasops-api/internal/application/usecase"
	"github.com/jhoicas/gasops-api/internal/domain/order"
	infraai "github.com/jhoicas/gasops-api/internal/infrastructure/ai"
	"github.com/jhoicas/gasops-api/internal/infrastructure/memory"
	httpRouter "github.com/jhoicas/gasops-api/internal/interfaces/http"
	"github.com/jhoicas/gasops-api/pkg/config"
	"github.com/jhoicas/gasops-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Snapshot en memoria con los datos de demostración; no hay persistencia.
	store := memory.NewSeededStore()
	orderRepo := memory.NewOrderRepository(store)
	cylinderRepo := memory.NewCylinderRepository(store)
	inspectionRepo := memory.NewInspectionRepository(store)
	userRepo := memory.NewUserRepository(store)
	announcementRepo := memory.NewAnnouncementRepository(store)

	defaultAgent := order.Agent{ID: cfg.Station.AgentID, Name: cfg.Station.AgentName}
	orderUC := usecase.NewOrderUseCase(orderRepo, userRepo, defaultAgent)
	cylinderUC := usecase.NewCylinderUseCase(cylinderRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	announcementUC := usecase.NewAnnouncementUseCase(announcementRepo)
	dashboardUC := analytics.NewDashboardUseCase(orderRepo, cylinderRepo, inspectionRepo)

	geminiSvc := infraai.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
	safetyUC := usecase.NewSafetyUseCase(inspectionRepo, geminiSvc)
	if cfg.AI.GeminiAPIKey == "" {
		log.Warn().Msg("GEMINI_API_KEY no configurado; el informe de seguridad usará el mensaje fijo")
	}

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
		Title:    "GasOps API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		OrderUC:        orderUC,
		CylinderUC:     cylinderUC,
		SafetyUC:       safetyUC,
		UserUC:         userUC,
		AnnouncementUC: announcementUC,
		DashboardUC:    dashboardUC,
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
