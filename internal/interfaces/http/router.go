package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/eventika/eventos-api/internal/application/auth"
	appfinance "github.com/eventika/eventos-api/internal/application/finance"
	"github.com/eventika/eventos-api/internal/application/usecase"
	appworkflow "github.com/eventika/eventos-api/internal/application/workflow"
	"github.com/eventika/eventos-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	ClientUC   *usecase.ClientUseCase
	CategoryUC *usecase.CategoryUseCase
	EventUC    *usecase.EventUseCase
	LedgerUC   *usecase.LedgerUseCase
	SummaryUC  *appfinance.SummaryUseCase
	PDFUC      *appfinance.PDFUseCase
	WorkflowUC *appworkflow.TransitionUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Clientes
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)

	// Catálogo de categorías
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Put("/:id", categoryHandler.Rename)

	// Eventos
	events := protected.Group("/events")
	eventHandler := NewEventHandler(deps.EventUC)
	events.Post("/", eventHandler.Create)
	events.Get("/", eventHandler.List)
	events.Get("/:id", eventHandler.GetByID)
	// Borrado lógico solo para admin: cascadea a los movimientos del evento.
	events.Delete("/:id", RequireRole(entity.RoleAdmin), eventHandler.Deactivate)

	// Movimientos financieros
	ledgerHandler := NewLedgerHandler(deps.LedgerUC)
	events.Post("/:id/entries", ledgerHandler.Create)
	events.Get("/:id/entries", ledgerHandler.ListByEvent)
	entries := protected.Group("/entries")
	entries.Patch("/:id/settle", ledgerHandler.Settle)
	entries.Delete("/:id", ledgerHandler.SoftDelete)

	// Resumen financiero y estado de cuenta
	financeHandler := NewFinanceHandler(deps.SummaryUC, deps.PDFUC)
	events.Get("/:id/summary", financeHandler.Summary)
	events.Get("/:id/summary/pdf", financeHandler.SummaryPDF)

	// Workflow: transiciones e historial
	workflowHandler := NewWorkflowHandler(deps.WorkflowUC)
	events.Post("/:id/transitions", workflowHandler.Attempt)
	events.Get("/:id/transitions", workflowHandler.History)
	protected.Get("/workflow-states", workflowHandler.States)
}
