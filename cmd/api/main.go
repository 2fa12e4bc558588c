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

	"github.com/eventika/eventos-api/internal/application/auth"
	appfinance "github.com/eventika/eventos-api/internal/application/finance"
	"github.com/eventika/eventos-api/internal/application/usecase"
	appworkflow "github.com/eventika/eventos-api/internal/application/workflow"
	infrapdf "github.com/eventika/eventos-api/internal/infrastructure/pdf"
	"github.com/eventika/eventos-api/internal/infrastructure/postgres"
	httpRouter "github.com/eventika/eventos-api/internal/interfaces/http"
	"github.com/eventika/eventos-api/pkg/config"
	"github.com/eventika/eventos-api/pkg/logger"
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

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	eventRepo := postgres.NewEventRepository(pool)
	ledgerRepo := postgres.NewLedgerEntryRepository(pool)
	stateRepo := postgres.NewWorkflowStateRepository(pool)
	transitionRepo := postgres.NewTransitionRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	clientUC := usecase.NewClientUseCase(clientRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	eventUC := usecase.NewEventUseCase(eventRepo, clientRepo, stateRepo, txRunner)
	ledgerUC := usecase.NewLedgerUseCase(ledgerRepo, eventRepo, categoryRepo)
	summaryUC := appfinance.NewSummaryUseCase(eventRepo, ledgerRepo, log)

	// PDF: estado de cuenta del evento
	statementGenerator := infrapdf.NewMarotoStatementGenerator()
	pdfUC := appfinance.NewPDFUseCase(summaryUC, clientRepo, categoryRepo, statementGenerator)

	workflowUC := appworkflow.NewTransitionUseCase(eventRepo, stateRepo, ledgerRepo, transitionRepo, log)

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
		Title:    "Eventos ERP API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		ClientUC:   clientUC,
		CategoryUC: categoryUC,
		EventUC:    eventUC,
		LedgerUC:   ledgerUC,
		SummaryUC:  summaryUC,
		PDFUC:      pdfUC,
		WorkflowUC: workflowUC,
		JWTSecret:  cfg.JWT.Secret,
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
