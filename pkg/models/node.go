package models

// OnErrorPolicy declares how the engine treats a node failure.
type OnErrorPolicy string

const (
	OnErrorStopWorkflow    OnErrorPolicy = "stopWorkflow"
	OnErrorContinueRegular OnErrorPolicy = "continueRegularOutput"
	OnErrorContinueError   OnErrorPolicy = "continueErrorOutput"
)

// Node is one step in a workflow graph. Name is the join key for connections
// within a single graph; it is not a stable identifier across edits.
type Node struct {
	ID          string         `json:"id,omitempty"`
	Name        string         `json:"name"                  validate:"required"`
	Type        string         `json:"type"                  validate:"required"`
	TypeVersion int            `json:"typeVersion"           validate:"min=1"`
	Position    [2]float64     `json:"position"`
	Parameters  map[string]any `json:"parameters"`
	Credentials map[string]any `json:"credentials,omitempty"`
	Disabled    bool           `json:"disabled,omitempty"`
	Notes       string         `json:"notes,omitempty"`
	Color       string         `json:"color,omitempty"`
	WebhookID   string         `json:"webhookId,omitempty"`
	ExecuteOnce bool           `json:"executeOnce,omitempty"`
	OnError     OnErrorPolicy  `json:"onError,omitempty"     validate:"omitempty,oneof=stopWorkflow continueRegularOutput continueErrorOutput"`
}

// ContinuesOnErrorOutput reports whether the node routes failures to a
// dedicated error output, which permits a second edge-list on main.
func (n *Node) ContinuesOnErrorOutput() bool {
	return n.OnError == OnErrorContinueError
}
