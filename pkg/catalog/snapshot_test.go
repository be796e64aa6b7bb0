package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSnapshot_LaterListsWin(t *testing.T) {
	base := []Entry{
		{Type: "n8n-nodes-base.slack", Category: CategoryAction, DisplayName: "Slack (old)"},
		{Type: WebhookTriggerType, Category: CategoryTrigger, DisplayName: "Webhook"},
	}
	overlay := []Entry{
		{Type: "n8n-nodes-base.slack", Category: CategoryAction, DisplayName: "Slack"},
		{Type: "", Category: CategoryAction, DisplayName: "dropped"},
	}

	snapshot := NewSnapshot(base, overlay)

	assert.Equal(t, 2, snapshot.Len())
	assert.Equal(t, "Slack", snapshot.DisplayNameOf("n8n-nodes-base.slack"))
}

func TestSnapshot_EntriesStableOrder(t *testing.T) {
	snapshot := NewSnapshot([]Entry{
		{Type: "b.two", Category: CategoryAction, DisplayName: "Two"},
		{Type: "a.one", Category: CategoryAction, DisplayName: "One"},
		{Type: "c.three", Category: CategoryTrigger, DisplayName: "Three"},
	})

	entries := snapshot.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "a.one", entries[0].Type)
	assert.Equal(t, "b.two", entries[1].Type)
	assert.Equal(t, "c.three", entries[2].Type)

	triggers := snapshot.EntriesByCategory(CategoryTrigger)
	require.Len(t, triggers, 1)
	assert.Equal(t, "c.three", triggers[0].Type)
}

func TestSnapshot_CategoryOf(t *testing.T) {
	snapshot := NewSnapshot(minimalEntries)

	assert.Equal(t, CategoryTrigger, snapshot.CategoryOf(WebhookTriggerType))
	assert.Equal(t, CategoryBranching, snapshot.CategoryOf(IfType))
	assert.Equal(t, CategoryUnknown, snapshot.CategoryOf("n8n-nodes-base.doesNotExist"))
}

func TestSuggestAlternative(t *testing.T) {
	snapshot := NewSnapshot(minimalEntries, comprehensiveEntries)

	tests := []struct {
		name        string
		invalidType string
		want        string
	}{
		{"alias shorthand", "webhook", WebhookTriggerType},
		{"alias with namespace", "n8n-nodes-base.gsheets", "n8n-nodes-base.googleSheets"},
		{"wrong casing resolves by display name", "n8n-nodes-base.whatsappTrigger", "n8n-nodes-base.whatsAppTrigger"},
		{"trigger-ish unknown falls back to webhook", "n8n-nodes-base.zammadTrigger", WebhookTriggerType},
		{"anything else falls back to http request", "n8n-nodes-base.quantumFlux", HTTPRequestType},
		{"empty input", "", HTTPRequestType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, snapshot.SuggestAlternative(tt.invalidType))
		})
	}
}

func TestIsDecorative(t *testing.T) {
	assert.True(t, IsDecorative(StickyNoteType))
	assert.False(t, IsDecorative(WebhookTriggerType))
}
