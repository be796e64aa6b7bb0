package generation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/weftlabs/weft/pkg/catalog"
	"github.com/weftlabs/weft/pkg/models"
	"github.com/weftlabs/weft/pkg/otelhelper"
	"github.com/weftlabs/weft/pkg/providers"
	"github.com/weftlabs/weft/pkg/recipes"
)

// Request is one generation invocation.
type Request struct {
	Messages          []models.Message
	Mode              Mode
	PreferredProvider string
}

// Result carries the raw provider text plus which backend produced it.
type Result struct {
	Content      string `json:"content"`
	Provider     string `json:"provider"`
	UsedFallback bool   `json:"usedFallback"`
}

// Orchestrator assembles context, invokes one provider at a time, and falls
// back exactly once to a different configured backend. Providers are never
// raced concurrently: sequential fallback avoids duplicate billing at the
// cost of latency.
type Orchestrator struct {
	logger   *slog.Logger
	registry *providers.Registry
	catalog  *catalog.Catalog
	ranker   *recipes.Ranker
	tracer   trace.Tracer
}

// NewOrchestrator creates an orchestrator. ranker and tracer may be nil.
func NewOrchestrator(
	logger *slog.Logger,
	registry *providers.Registry,
	cat *catalog.Catalog,
	ranker *recipes.Ranker,
	tracer trace.Tracer,
) *Orchestrator {
	return &Orchestrator{
		logger:   logger,
		registry: registry,
		catalog:  cat,
		ranker:   ranker,
		tracer:   tracer,
	}
}

// Generate runs one generation request against the preferred provider (or the
// registry's priority order) with at most one fallback hop.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (*Result, error) {
	if o.tracer != nil {
		var span trace.Span

		ctx, span = otelhelper.StartSpan(ctx, o.tracer, "generation.generate",
			attribute.String(otelhelper.ModeKey, string(req.Mode)),
		)
		defer span.End()
	}

	candidates, err := o.candidateProviders(req.PreferredProvider)
	if err != nil {
		return nil, err
	}

	system := buildSystemPrompt(req.Mode, o.catalog.Snapshot(ctx), o.rankForContext(req))
	params := req.Mode.params()

	genReq := providers.GenerateRequest{
		System:      system,
		Messages:    req.Messages,
		Temperature: params.temperature,
		MaxTokens:   params.maxTokens,
		JSONMode:    params.jsonMode,
	}

	var primaryErr error

	for attempt, id := range candidates {
		provider, ok := o.registry.Get(id)
		if !ok {
			continue
		}

		result, err := provider.Generate(ctx, genReq)
		if err == nil {
			span := trace.SpanFromContext(ctx)
			span.SetAttributes(
				attribute.String(otelhelper.ProviderKey, id),
				attribute.Bool(otelhelper.FallbackKey, attempt > 0),
			)

			return &Result{
				Content:      result.Text,
				Provider:     id,
				UsedFallback: attempt > 0,
			}, nil
		}

		o.logger.Warn("generation provider failed",
			"provider", id, "attempt", attempt+1, "error", err)

		if primaryErr == nil {
			primaryErr = err
		}
	}

	if primaryErr == nil {
		primaryErr = providers.ErrNoProviders
	}

	otelhelper.SetError(trace.SpanFromContext(ctx), primaryErr)

	return nil, fmt.Errorf("all generation providers failed: %w", primaryErr)
}

// candidateProviders resolves the attempt order: the preferred provider plus
// one fallback, or the first two backends in priority order.
func (o *Orchestrator) candidateProviders(preferred string) ([]string, error) {
	available := o.registry.Available()
	if len(available) == 0 {
		return nil, providers.ErrNoProviders
	}

	if preferred == "" {
		if len(available) > 2 {
			available = available[:2]
		}

		return available, nil
	}

	if _, ok := o.registry.Get(preferred); !ok {
		return nil, fmt.Errorf("unknown provider %q", preferred)
	}

	candidates := []string{preferred}

	for _, id := range available {
		if id != preferred {
			candidates = append(candidates, id)

			break
		}
	}

	return candidates, nil
}

// rankForContext scores recipes against the latest user message for few-shot
// context in workflow mode.
func (o *Orchestrator) rankForContext(req Request) []recipes.ScoredRecipe {
	if o.ranker == nil || req.Mode != ModeWorkflow {
		return nil
	}

	query := latestUserContent(req.Messages)
	if query == "" {
		return nil
	}

	return o.ranker.Rank(query, maxContextRecipes)
}

func latestUserContent(messages []models.Message) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == models.RoleUser {
			return strings.TrimSpace(messages[i].Content)
		}
	}

	return ""
}
