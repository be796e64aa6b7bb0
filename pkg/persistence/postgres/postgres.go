// Package postgres provides PostgreSQL-backed persistence for generated
// workflows. The full graph is stored as a JSONB document; saves replace the
// whole object.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq" // postgres driver

	"github.com/weftlabs/weft/pkg/models"
	"github.com/weftlabs/weft/pkg/persistence"
)

const schema = `
CREATE TABLE IF NOT EXISTS workflows (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	graph      JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Persistence implements persistence.Persistence on PostgreSQL.
type Persistence struct {
	db *sql.DB
}

// NewPersistence opens a connection pool and ensures the schema exists.
func NewPersistence(ctx context.Context, databaseURL string) (*Persistence, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("failed to ensure workflows schema: %w", err)
	}

	return &Persistence{db: db}, nil
}

func (p *Persistence) Close(_ context.Context) error {
	return p.db.Close()
}

func (p *Persistence) HealthCheck(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

func (p *Persistence) Workflows(ctx context.Context) ([]*models.Workflow, error) {
	rows, err := p.db.QueryContext(ctx, `SELECT graph FROM workflows ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list workflows: %w", err)
	}
	defer func() { _ = rows.Close() }()

	workflows := make([]*models.Workflow, 0)

	for rows.Next() {
		var graph []byte

		if err := rows.Scan(&graph); err != nil {
			return nil, fmt.Errorf("failed to scan workflow row: %w", err)
		}

		var workflow models.Workflow
		if err := json.Unmarshal(graph, &workflow); err != nil {
			return nil, fmt.Errorf("failed to unmarshal workflow graph: %w", err)
		}

		workflows = append(workflows, &workflow)
	}

	return workflows, rows.Err()
}

func (p *Persistence) SaveWorkflow(ctx context.Context, workflow *models.Workflow) error {
	if workflow.ID == "" {
		return fmt.Errorf("workflow has no id")
	}

	graph, err := json.Marshal(workflow)
	if err != nil {
		return fmt.Errorf("failed to marshal workflow %s: %w", workflow.ID, err)
	}

	_, err = p.db.ExecContext(ctx, `
		INSERT INTO workflows (id, name, graph, created_at, updated_at)
		VALUES ($1, $2, $3, now(), now())
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			graph = EXCLUDED.graph,
			updated_at = now()`,
		workflow.ID, workflow.Name, graph)
	if err != nil {
		return fmt.Errorf("failed to save workflow %s: %w", workflow.ID, err)
	}

	return nil
}

func (p *Persistence) WorkflowByID(ctx context.Context, id string) (*models.Workflow, error) {
	var graph []byte

	err := p.db.QueryRowContext(ctx, `SELECT graph FROM workflows WHERE id = $1`, id).Scan(&graph)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, persistence.ErrWorkflowNotFound
		}

		return nil, fmt.Errorf("failed to load workflow %s: %w", id, err)
	}

	var workflow models.Workflow
	if err := json.Unmarshal(graph, &workflow); err != nil {
		return nil, fmt.Errorf("failed to unmarshal workflow %s: %w", id, err)
	}

	return &workflow, nil
}

func (p *Persistence) DeleteWorkflow(ctx context.Context, id string) error {
	result, err := p.db.ExecContext(ctx, `DELETE FROM workflows WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete workflow %s: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}

	if affected == 0 {
		return persistence.ErrWorkflowNotFound
	}

	return nil
}
