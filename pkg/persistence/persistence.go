// Package persistence provides the storage abstraction for generated
// workflows. Saves are whole-object replacement: each regeneration replaces
// the entire graph.
package persistence

import (
	"context"
	"errors"

	"github.com/weftlabs/weft/pkg/models"
)

// ErrWorkflowNotFound is returned when a workflow id has no stored graph.
var ErrWorkflowNotFound = errors.New("workflow not found")

// IsWorkflowNotFound checks if an error means the workflow does not exist.
func IsWorkflowNotFound(err error) bool {
	return errors.Is(err, ErrWorkflowNotFound)
}

type Persistence interface {
	Workflows(ctx context.Context) ([]*models.Workflow, error)
	SaveWorkflow(ctx context.Context, workflow *models.Workflow) error
	WorkflowByID(ctx context.Context, id string) (*models.Workflow, error)
	DeleteWorkflow(ctx context.Context, id string) error
	HealthCheck(ctx context.Context) error

	Close(ctx context.Context) error
}
