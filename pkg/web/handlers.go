package web

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"

	"github.com/weftlabs/weft/pkg/catalog"
	"github.com/weftlabs/weft/pkg/persistence"
	"github.com/weftlabs/weft/pkg/recipes"
	"github.com/weftlabs/weft/pkg/services"
	"github.com/weftlabs/weft/pkg/validation"
)

const defaultRankTopN = 3

type APIHandlers struct {
	pipeline        *services.Pipeline
	workflowService *services.Workflow
	catalog         *catalog.Catalog
	ranker          *recipes.Ranker
	validator       *validator.Validate
}

func NewAPIHandlers(
	pipeline *services.Pipeline,
	workflowService *services.Workflow,
	cat *catalog.Catalog,
	ranker *recipes.Ranker,
	validator *validator.Validate,
) *APIHandlers {
	return &APIHandlers{
		pipeline:        pipeline,
		workflowService: workflowService,
		catalog:         cat,
		ranker:          ranker,
		validator:       validator,
	}
}

func (h *APIHandlers) Chat(c fiber.Ctx) error {
	var req ChatRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	result, err := h.pipeline.Converse(c.Context(), services.ConverseRequest{
		Messages:          req.Messages,
		PreferredProvider: req.Provider,
	})
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(result)
}

func (h *APIHandlers) GenerateWorkflow(c fiber.Ctx) error {
	var req GenerateWorkflowRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	result, err := h.pipeline.GenerateWorkflow(c.Context(), services.GenerateWorkflowRequest{
		Messages:          req.Messages,
		PreferredProvider: req.Provider,
	})
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(result)
}

func (h *APIHandlers) GetWorkflows(c fiber.Ctx) error {
	workflows, err := h.workflowService.List(c.Context())
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"workflows": workflows,
		"count":     len(workflows),
	})
}

func (h *APIHandlers) GetWorkflow(c fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "Workflow ID is required")
	}

	workflow, err := h.workflowService.FetchByID(c.Context(), id)
	if err != nil {
		if persistence.IsWorkflowNotFound(err) {
			return notFound(c, "Workflow not found")
		}

		return internalError(c, err)
	}

	return c.JSON(workflow)
}

// CreateWorkflow stores a workflow graph. The body goes through the same
// validation as generated output, so hand-edited graphs cannot bypass the
// structural rules.
func (h *APIHandlers) CreateWorkflow(c fiber.Ctx) error {
	var candidate any
	if err := c.Bind().JSON(&candidate); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	graphValidator := validation.New(h.catalog.Snapshot(c.Context()))

	workflow, repairs, err := graphValidator.Validate(candidate)
	if err != nil {
		if validationErr, ok := validation.AsValidationError(err); ok {
			return unprocessableGraph(c, validationErr)
		}

		return internalError(c, err)
	}

	created, err := h.workflowService.Create(c.Context(), workflow)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"workflow": created,
		"repairs":  repairs,
	})
}

func (h *APIHandlers) DeleteWorkflow(c fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "Workflow ID is required")
	}

	err := h.workflowService.Delete(c.Context(), id)
	if err != nil {
		if persistence.IsWorkflowNotFound(err) {
			return notFound(c, "Workflow not found")
		}

		return internalError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// GetWorkflowDeployment returns the push-time shape of a stored workflow.
func (h *APIHandlers) GetWorkflowDeployment(c fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "Workflow ID is required")
	}

	deployment, err := h.workflowService.Deployment(c.Context(), id)
	if err != nil {
		if persistence.IsWorkflowNotFound(err) {
			return notFound(c, "Workflow not found")
		}

		return internalError(c, err)
	}

	return c.JSON(deployment)
}

func (h *APIHandlers) GetNodeTypes(c fiber.Ctx) error {
	snapshot := h.catalog.Snapshot(c.Context())

	entries := snapshot.Entries()
	if categoryStr := c.Query("category"); categoryStr != "" {
		entries = snapshot.EntriesByCategory(catalog.Category(categoryStr))
	}

	nodeTypes := make([]NodeTypeResponse, 0, len(entries))
	for _, entry := range entries {
		nodeTypes = append(nodeTypes, TransformNodeTypeResponse(entry))
	}

	return c.JSON(fiber.Map{
		"nodeTypes": nodeTypes,
		"count":     len(nodeTypes),
	})
}

func (h *APIHandlers) RankRecipes(c fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return badRequest(c, "Query parameter 'q' is required")
	}

	topN := defaultRankTopN

	if topNStr := c.Query("top_n"); topNStr != "" {
		parsed, err := strconv.Atoi(topNStr)
		if err != nil || parsed < 1 {
			return badRequest(c, "Query parameter 'top_n' must be a positive integer")
		}

		topN = parsed
	}

	ranked := h.ranker.Rank(query, topN)

	return c.JSON(fiber.Map{
		"recipes": ranked,
		"count":   len(ranked),
	})
}

func (h *APIHandlers) HealthCheck(c fiber.Ctx) error {
	repositoryCheck, repOk := h.workflowService.HealthCheck(c.Context())

	status := "unhealthy"
	message := "Weft API is unhealthy"
	httpStatus := http.StatusInternalServerError

	if repOk {
		status = "healthy"
		message = "Weft API is healthy"
		httpStatus = http.StatusOK
	}

	return c.Status(httpStatus).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"checkers": fiber.Map{
			"repository": repositoryCheck,
		},
		"timestamp": time.Now().UTC(),
	})
}
