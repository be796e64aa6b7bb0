package extraction

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const workflowJSON = `{"name": "Lead intake", "nodes": [{"name": "Webhook", "type": "n8n-nodes-base.webhook"}], "connections": {}}`

func TestExtract_BareJSON(t *testing.T) {
	got, err := Extract(workflowJSON)
	require.NoError(t, err)
	assert.Equal(t, workflowJSON, got)
}

func TestExtract_FencedWithProse(t *testing.T) {
	raw := "Here is the workflow you asked for:\n```json\n" + workflowJSON + "\n```\nLet me know if you need changes."

	got, err := Extract(raw)
	require.NoError(t, err)
	assert.Equal(t, workflowJSON, got)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal([]byte(got), &parsed))
	assert.Equal(t, "Lead intake", parsed["name"])
}

func TestExtract_FenceWithoutLanguageTag(t *testing.T) {
	got, err := Extract("```\n" + workflowJSON + "\n```")
	require.NoError(t, err)
	assert.Equal(t, workflowJSON, got)
}

func TestExtract_SurroundingQuotes(t *testing.T) {
	got, err := Extract(`"` + workflowJSON + `"`)
	require.NoError(t, err)
	assert.Equal(t, workflowJSON, got)
}

// The word "error" inside a legitimate workflow payload must not trip the
// decline detector.
func TestExtract_JSONContainingErrorWord(t *testing.T) {
	raw := `{"name": "Error handler flow", "nodes": [{"name": "On error", "type": "n8n-nodes-base.errorTrigger"}], "connections": {}}`

	got, err := Extract(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, got)
}

func TestExtract_Declined(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"apology", "I'm sorry, but I cannot create a workflow that scrapes personal data from private profiles."},
		{"refusal", "I am unable to generate this workflow because the request is missing the target spreadsheet."},
		{"upstream error", "Error: no response received from the upstream model after three attempts."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Extract(tt.raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrModelDeclined)
		})
	}
}

func TestExtract_TooShort(t *testing.T) {
	_, err := Extract("  {} ")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrContentTooShort)
}

func TestExtract_NoObject(t *testing.T) {
	_, err := Extract("The workflow consists of a webhook node followed by a transform node and a final notification step.")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoJSONObject)

	var extractionErr *Error

	require.True(t, errors.As(err, &extractionErr))
	assert.NotEmpty(t, extractionErr.Snippet)
}

// Unbalanced braces are passed through: extraction only slices, the JSON
// parser downstream reports the syntax error.
func TestExtract_UnbalancedBraces(t *testing.T) {
	raw := `{"name": "Truncated flow", "nodes": [{"name": "Webhook"}`

	got, err := Extract(raw)
	require.NoError(t, err)
	assert.Equal(t, `{"name": "Truncated flow", "nodes": [{"name": "Webhook"}`, got)

	var parsed any
	assert.Error(t, json.Unmarshal([]byte(got), &parsed))
}
