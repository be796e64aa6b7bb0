// Package providers abstracts text-generation backends behind one uniform
// contract so the orchestrator can fall back between them.
package providers

import (
	"context"
	"time"

	"github.com/weftlabs/weft/pkg/models"
)

// DefaultTimeout bounds each outbound provider call. Timeouts are classified
// as provider failures eligible for fallback.
const DefaultTimeout = 60 * time.Second

// GenerateRequest carries role-tagged messages, a system instruction, and the
// mode-dependent generation parameters.
type GenerateRequest struct {
	System      string
	Messages    []models.Message
	Temperature float64
	MaxTokens   int
	JSONMode    bool
}

// GenerateResult is the provider's text output.
type GenerateResult struct {
	Text string
}

// Provider is a single text-generation backend.
type Provider interface {
	ID() string
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error)
}
