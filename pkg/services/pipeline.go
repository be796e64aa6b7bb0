package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/weftlabs/weft/pkg/catalog"
	"github.com/weftlabs/weft/pkg/conversation"
	"github.com/weftlabs/weft/pkg/extraction"
	"github.com/weftlabs/weft/pkg/generation"
	"github.com/weftlabs/weft/pkg/models"
	"github.com/weftlabs/weft/pkg/otelhelper"
	"github.com/weftlabs/weft/pkg/validation"
)

// Pipeline runs the full generation flow: provider call, JSON extraction, and
// graph validation. Conversation turns reuse the same orchestrator in
// conversational mode.
type Pipeline struct {
	logger       *slog.Logger
	orchestrator *generation.Orchestrator
	catalog      *catalog.Catalog
	classifier   *conversation.Classifier
	tracer       trace.Tracer
}

// NewPipeline creates the generation pipeline service. tracer may be nil.
func NewPipeline(
	logger *slog.Logger,
	orchestrator *generation.Orchestrator,
	cat *catalog.Catalog,
	classifier *conversation.Classifier,
	tracer trace.Tracer,
) *Pipeline {
	return &Pipeline{
		logger:       logger.With("module", "pipeline"),
		orchestrator: orchestrator,
		catalog:      cat,
		classifier:   classifier,
		tracer:       tracer,
	}
}

// GenerateWorkflowRequest asks for a complete workflow graph from the
// conversation so far.
type GenerateWorkflowRequest struct {
	Messages          []models.Message
	PreferredProvider string
}

// GenerateWorkflowResponse carries the validated workflow together with the
// silent corrections applied and which backend produced the raw output.
type GenerateWorkflowResponse struct {
	Workflow     *models.Workflow    `json:"workflow"`
	Repairs      []validation.Repair `json:"repairs"`
	Provider     string              `json:"provider"`
	UsedFallback bool                `json:"usedFallback"`
}

// GenerateWorkflow produces a validated workflow graph from the conversation.
// Fatal graph issues come back as a *validation.Error carrying every issue
// found, not just the first.
func (p *Pipeline) GenerateWorkflow(
	ctx context.Context,
	req GenerateWorkflowRequest,
) (*GenerateWorkflowResponse, error) {
	if err := checkMessages(req.Messages); err != nil {
		return nil, err
	}

	if p.tracer != nil {
		var span trace.Span

		ctx, span = otelhelper.StartSpan(ctx, p.tracer, "pipeline.generate_workflow")
		defer span.End()
	}

	result, err := p.orchestrator.Generate(ctx, generation.Request{
		Messages:          req.Messages,
		Mode:              generation.ModeWorkflow,
		PreferredProvider: req.PreferredProvider,
	})
	if err != nil {
		return nil, fmt.Errorf("generation failed: %w", err)
	}

	payload, err := extraction.Extract(result.Content)
	if err != nil {
		p.logger.WarnContext(ctx, "no workflow JSON in model output",
			"provider", result.Provider, "error", err)

		return nil, err
	}

	var candidate any
	if err := json.Unmarshal([]byte(payload), &candidate); err != nil {
		return nil, &extraction.Error{Err: extraction.ErrNoJSONObject}
	}

	validator := validation.New(p.catalog.Snapshot(ctx))

	workflow, repairs, err := validator.Validate(candidate)
	if err != nil {
		return nil, err
	}

	if span := trace.SpanFromContext(ctx); span.IsRecording() {
		span.SetAttributes(
			attribute.String(otelhelper.ProviderKey, result.Provider),
			attribute.Bool(otelhelper.FallbackKey, result.UsedFallback),
			attribute.Int(otelhelper.NodeCountKey, len(workflow.Nodes)),
			attribute.Int(otelhelper.RepairCountKey, len(repairs)),
		)
	}

	p.logger.InfoContext(ctx, "workflow generated",
		"provider", result.Provider,
		"used_fallback", result.UsedFallback,
		"nodes", len(workflow.Nodes),
		"repairs", len(repairs))

	return &GenerateWorkflowResponse{
		Workflow:     workflow,
		Repairs:      repairs,
		Provider:     result.Provider,
		UsedFallback: result.UsedFallback,
	}, nil
}

// ConverseRequest is one chat turn in the requirements conversation.
type ConverseRequest struct {
	Messages          []models.Message
	PreferredProvider string
}

// ConverseResponse is the assistant reply plus the advisory conversation
// state recomputed from the whole transcript.
type ConverseResponse struct {
	Reply        string                   `json:"reply"`
	State        models.ConversationState `json:"state"`
	Provider     string                   `json:"provider"`
	UsedFallback bool                     `json:"usedFallback"`
}

// Converse runs one conversational turn and classifies how close the dialogue
// is to being ready for generation.
func (p *Pipeline) Converse(ctx context.Context, req ConverseRequest) (*ConverseResponse, error) {
	if err := checkMessages(req.Messages); err != nil {
		return nil, err
	}

	result, err := p.orchestrator.Generate(ctx, generation.Request{
		Messages:          req.Messages,
		Mode:              generation.ModeConversation,
		PreferredProvider: req.PreferredProvider,
	})
	if err != nil {
		return nil, fmt.Errorf("generation failed: %w", err)
	}

	state := p.classifier.Classify(req.Messages, result.Content)

	return &ConverseResponse{
		Reply:        result.Content,
		State:        state,
		Provider:     result.Provider,
		UsedFallback: result.UsedFallback,
	}, nil
}

func checkMessages(messages []models.Message) error {
	if len(messages) == 0 {
		return ErrEmptyMessages
	}

	for _, message := range messages {
		if message.Role == models.RoleUser {
			return nil
		}
	}

	return ErrNoUserMessage
}
