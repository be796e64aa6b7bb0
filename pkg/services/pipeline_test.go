package services

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftlabs/weft/pkg/catalog"
	"github.com/weftlabs/weft/pkg/conversation"
	"github.com/weftlabs/weft/pkg/generation"
	"github.com/weftlabs/weft/pkg/models"
	"github.com/weftlabs/weft/pkg/providers"
)

type scriptedProvider struct {
	id   string
	text string
	err  error
}

func (s *scriptedProvider) ID() string { return s.id }

func (s *scriptedProvider) Generate(_ context.Context, _ providers.GenerateRequest) (*providers.GenerateResult, error) {
	if s.err != nil {
		return nil, s.err
	}

	return &providers.GenerateResult{Text: s.text}, nil
}

func newTestPipeline(t *testing.T, provider *scriptedProvider) *Pipeline {
	t.Helper()

	registry := providers.NewRegistry(slog.Default())
	registry.Register(provider)

	cat := catalog.New(slog.Default(), nil, time.Minute)
	orchestrator := generation.NewOrchestrator(slog.Default(), registry, cat, nil, nil)

	return NewPipeline(slog.Default(), orchestrator, cat, conversation.NewClassifier(), nil)
}

func conversationAsking(content string) []models.Message {
	return []models.Message{{Role: models.RoleUser, Content: content}}
}

const fencedWorkflowOutput = "Here is the workflow:\n```json\n" + `{
  "name": "Lead intake",
  "nodes": [
    {"name": "Webhook", "type": "n8n-nodes-base.webhook", "typeVersion": 1,
     "position": [250, 300], "parameters": {"path": "/leads"}},
    {"name": "Notify", "type": "n8n-nodes-base.slack", "typeVersion": 1,
     "position": [450, 300], "parameters": {"channel": "#sales"}}
  ],
  "connections": {
    "Webhook": {"main": [[{"node": "Notify", "type": "main", "index": 0}]]}
  }
}` + "\n```"

func TestGenerateWorkflow_EndToEnd(t *testing.T) {
	pipeline := newTestPipeline(t, &scriptedProvider{id: "stub", text: fencedWorkflowOutput})

	result, err := pipeline.GenerateWorkflow(t.Context(), GenerateWorkflowRequest{
		Messages: conversationAsking("post new leads to slack"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Lead intake", result.Workflow.Name)
	assert.Len(t, result.Workflow.Nodes, 2)
	assert.Equal(t, "stub", result.Provider)
	assert.False(t, result.UsedFallback)

	// Missing node ids are repaired, not fatal.
	for _, node := range result.Workflow.Nodes {
		assert.NotEmpty(t, node.ID)
	}

	assert.NotEmpty(t, result.Repairs)
}

func TestGenerateWorkflow_DeclinedOutput(t *testing.T) {
	pipeline := newTestPipeline(t, &scriptedProvider{
		id:   "stub",
		text: "I'm sorry, but I cannot build this workflow without knowing which spreadsheet to target.",
	})

	_, err := pipeline.GenerateWorkflow(t.Context(), GenerateWorkflowRequest{
		Messages: conversationAsking("do the thing"),
	})
	require.Error(t, err)
	assert.True(t, IsExtractionError(err))
}

func TestGenerateWorkflow_MalformedJSON(t *testing.T) {
	pipeline := newTestPipeline(t, &scriptedProvider{
		id:   "stub",
		text: `{"name": "Broken", "nodes": [{"name": "Webhook", "type": "n8n-nodes-base.webhook"`,
	})

	_, err := pipeline.GenerateWorkflow(t.Context(), GenerateWorkflowRequest{
		Messages: conversationAsking("build it"),
	})
	require.Error(t, err)
	assert.True(t, IsExtractionError(err))
}

func TestGenerateWorkflow_FatalGraphIssues(t *testing.T) {
	pipeline := newTestPipeline(t, &scriptedProvider{
		id: "stub",
		text: `{"name": "Bad graph", "nodes": [{"name": "Transform", "type": "n8n-nodes-base.set",
			"typeVersion": 1, "position": [250, 300], "parameters": {}}], "connections": {}}`,
	})

	_, err := pipeline.GenerateWorkflow(t.Context(), GenerateWorkflowRequest{
		Messages: conversationAsking("build it"),
	})
	require.Error(t, err)

	validationErr, ok := IsGraphValidationError(err)
	require.True(t, ok)
	assert.NotEmpty(t, validationErr.Issues)
}

func TestGenerateWorkflow_ProviderFailure(t *testing.T) {
	pipeline := newTestPipeline(t, &scriptedProvider{
		id:  "stub",
		err: providers.NewError(providers.CategoryQuotaExceeded, "stub", "quota", nil),
	})

	_, err := pipeline.GenerateWorkflow(t.Context(), GenerateWorkflowRequest{
		Messages: conversationAsking("build it"),
	})
	require.Error(t, err)

	providerErr, ok := IsProviderError(err)
	require.True(t, ok)
	assert.Equal(t, providers.CategoryQuotaExceeded, providerErr.Category)
}

func TestGenerateWorkflow_RequestShape(t *testing.T) {
	pipeline := newTestPipeline(t, &scriptedProvider{id: "stub", text: "unused"})

	t.Run("no messages", func(t *testing.T) {
		_, err := pipeline.GenerateWorkflow(t.Context(), GenerateWorkflowRequest{})
		assert.ErrorIs(t, err, ErrEmptyMessages)
	})

	t.Run("no user message", func(t *testing.T) {
		_, err := pipeline.GenerateWorkflow(t.Context(), GenerateWorkflowRequest{
			Messages: []models.Message{{Role: models.RoleAssistant, Content: "hi"}},
		})
		assert.ErrorIs(t, err, ErrNoUserMessage)
	})
}

func TestConverse(t *testing.T) {
	pipeline := newTestPipeline(t, &scriptedProvider{
		id:   "stub",
		text: "Here's a summary of the planned workflow: webhook to Slack.",
	})

	result, err := pipeline.Converse(t.Context(), ConverseRequest{
		Messages: conversationAsking("I want slack alerts"),
	})
	require.NoError(t, err)

	assert.Contains(t, result.Reply, "summary")
	assert.Equal(t, "stub", result.Provider)
	assert.Equal(t, models.PhaseWorkflowDesign, result.State.Phase)
	assert.Equal(t, 70, result.State.Completeness)
}
