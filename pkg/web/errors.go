package web

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/moogar0880/problems"

	"github.com/weftlabs/weft/pkg/persistence"
	"github.com/weftlabs/weft/pkg/providers"
	"github.com/weftlabs/weft/pkg/services"
	"github.com/weftlabs/weft/pkg/validation"
)

func badRequest(c fiber.Ctx, detail string) error {
	problem := problems.NewStatusProblem(400).
		WithInstance(c.Path()).
		WithType("validation_error").
		WithDetail(detail)

	return c.Status(fiber.StatusBadRequest).JSON(problem)
}

func notFound(c fiber.Ctx, detail string) error {
	problem := problems.NewStatusProblem(404).
		WithInstance(c.Path()).
		WithType("not_found").
		WithDetail(detail)

	return c.Status(fiber.StatusNotFound).JSON(problem)
}

func internalError(c fiber.Ctx, err error) error {
	problem := problems.NewStatusProblem(500).
		WithInstance(c.Path()).
		WithType("internal_error").
		WithError(err)

	return c.Status(fiber.StatusInternalServerError).JSON(problem)
}

// graphProblem is an RFC 7807 problem extended with the full list of fatal
// graph issues, so clients can show every defect at once.
type graphProblem struct {
	*problems.Problem

	Issues []validation.Issue `json:"issues"`
}

func unprocessableGraph(c fiber.Ctx, validationErr *validation.Error) error {
	problem := problems.NewStatusProblem(422).
		WithInstance(c.Path()).
		WithType("workflow_validation_failed").
		WithDetail("generated workflow has fatal issues")

	return c.Status(fiber.StatusUnprocessableEntity).JSON(graphProblem{
		Problem: problem,
		Issues:  validationErr.Issues,
	})
}

// providerProblem maps a backend failure to a response that names the failure
// category without leaking credentials or raw upstream bodies.
func providerProblem(c fiber.Ctx, providerErr *providers.Error) error {
	status := fiber.StatusBadGateway
	detail := "generation backend failed"

	switch providerErr.Category {
	case providers.CategoryMissingCredential:
		status = fiber.StatusServiceUnavailable
		detail = "generation backend is not configured"
	case providers.CategoryInvalidCredential:
		detail = "generation backend rejected its credentials"
	case providers.CategoryQuotaExceeded:
		status = fiber.StatusTooManyRequests
		detail = "generation backend quota exhausted"
	case providers.CategoryRateLimited:
		status = fiber.StatusTooManyRequests
		detail = "generation backend is rate limiting requests"
	case providers.CategoryMalformedResponse:
		detail = "generation backend returned an unusable response"
	}

	problem := problems.NewStatusProblem(status).
		WithInstance(c.Path()).
		WithType("provider_error").
		WithDetail(detail)

	return c.Status(status).JSON(problem)
}

// handleServiceError provides typed error handling for service layer errors.
func handleServiceError(c fiber.Ctx, err error) error {
	switch {
	case services.IsValidationError(err):
		return badRequest(c, err.Error())

	case persistence.IsWorkflowNotFound(err):
		return notFound(c, "Workflow not found")

	default:
		if validationErr, ok := services.IsGraphValidationError(err); ok {
			return unprocessableGraph(c, validationErr)
		}

		if services.IsExtractionError(err) {
			problem := problems.NewStatusProblem(422).
				WithInstance(c.Path()).
				WithType("extraction_failed").
				WithDetail(err.Error())

			return c.Status(fiber.StatusUnprocessableEntity).JSON(problem)
		}

		if errors.Is(err, providers.ErrNoProviders) {
			problem := problems.NewStatusProblem(503).
				WithInstance(c.Path()).
				WithType("no_providers").
				WithDetail("no generation providers configured")

			return c.Status(fiber.StatusServiceUnavailable).JSON(problem)
		}

		if providerErr, ok := services.IsProviderError(err); ok {
			return providerProblem(c, providerErr)
		}

		return internalError(c, err)
	}
}
