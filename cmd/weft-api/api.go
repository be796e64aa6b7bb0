// Package main provides the Weft API server implementation.
package main

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"go.opentelemetry.io/otel/trace"

	"github.com/weftlabs/weft/pkg/catalog"
	"github.com/weftlabs/weft/pkg/conversation"
	"github.com/weftlabs/weft/pkg/generation"
	"github.com/weftlabs/weft/pkg/persistence"
	"github.com/weftlabs/weft/pkg/providers"
	"github.com/weftlabs/weft/pkg/recipes"
	"github.com/weftlabs/weft/pkg/services"
	"github.com/weftlabs/weft/pkg/web"
)

type API struct {
	logger      *slog.Logger
	persistence persistence.Persistence
	registry    *providers.Registry
	catalog     *catalog.Catalog
	tracer      trace.Tracer
	validate    *validator.Validate
}

func NewAPI(
	logger *slog.Logger,
	persistence persistence.Persistence,
	registry *providers.Registry,
	cat *catalog.Catalog,
	tracer trace.Tracer,
) *API {
	return &API{
		logger:      logger,
		persistence: persistence,
		registry:    registry,
		catalog:     cat,
		tracer:      tracer,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (a *API) App(ctx context.Context) *fiber.App {
	snapshot := a.catalog.Snapshot(ctx)

	displays := make([]string, 0, snapshot.Len())
	for _, entry := range snapshot.Entries() {
		displays = append(displays, entry.DisplayName)
	}

	ranker := recipes.NewRanker(recipes.BuiltIn(), displays)
	orchestrator := generation.NewOrchestrator(a.logger, a.registry, a.catalog, ranker, a.tracer)

	pipelineService := services.NewPipeline(
		a.logger, orchestrator, a.catalog, conversation.NewClassifier(), a.tracer)
	workflowService := services.NewWorkflow(a.persistence)

	handlers := web.NewAPIHandlers(pipelineService, workflowService, a.catalog, ranker, a.validate)

	app := fiber.New()
	app.Use(cors.New())
	app.Use(logger.New(logger.Config{
		DisableColors: true,
	}))

	app.Get(healthcheck.DefaultLivenessEndpoint, healthcheck.NewHealthChecker())
	app.Get(healthcheck.DefaultReadinessEndpoint, healthcheck.NewHealthChecker())

	app.Get("/", func(c fiber.Ctx) error {
		return c.SendString("Weft API")
	})

	app.Post("/chat", handlers.Chat)

	w := app.Group("/workflows")
	w.Get("/", handlers.GetWorkflows)
	w.Post("/", handlers.CreateWorkflow)
	w.Post("/generate", handlers.GenerateWorkflow)
	w.Get("/:id", handlers.GetWorkflow)
	w.Delete("/:id", handlers.DeleteWorkflow)
	w.Get("/:id/deployment", handlers.GetWorkflowDeployment)

	app.Get("/node-types", handlers.GetNodeTypes)
	app.Get("/recipes/rank", handlers.RankRecipes)

	app.Get("/health", handlers.HealthCheck)

	return app
}

func (a *API) Start(ctx context.Context, port int) error {
	app := a.App(ctx)

	return app.Listen(":" + strconv.Itoa(port))
}
