// Package catalog provides the authoritative vocabulary of node types the
// generation pipeline may emit, with remote enrichment and static fallbacks.
package catalog

// Category classifies a node type for validation purposes.
type Category string

const (
	CategoryTrigger   Category = "trigger"
	CategoryAction    Category = "action"
	CategoryBranching Category = "branching"
	CategoryLangChain Category = "langchain"
	CategoryUnknown   Category = "unknown"
)

// Well-known node types referenced across the pipeline.
const (
	WebhookTriggerType  = "n8n-nodes-base.webhook"
	ScheduleTriggerType = "n8n-nodes-base.scheduleTrigger"
	ManualTriggerType   = "n8n-nodes-base.manualTrigger"
	HTTPRequestType     = "n8n-nodes-base.httpRequest"
	IfType              = "n8n-nodes-base.if"
	SwitchType          = "n8n-nodes-base.switch"
	StickyNoteType      = "n8n-nodes-base.stickyNote"
)

// Entry is one vocabulary record: a dotted type identifier, its category, and
// the human-facing display name used for recipe matching and suggestions.
type Entry struct {
	Type        string   `json:"type"        validate:"required"`
	Category    Category `json:"category"    validate:"required,oneof=trigger action branching langchain"`
	DisplayName string   `json:"displayName" validate:"required"`
}

// IsDecorative reports whether the type is a purely visual node that carries
// no execution semantics (skipped by first-node and trigger checks).
func IsDecorative(nodeType string) bool {
	return nodeType == StickyNoteType
}
