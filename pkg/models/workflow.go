// Package models defines the workflow graph artifact exchanged with the
// downstream automation engine.
package models

import "time"

// ExecutionOrder selects how the downstream engine schedules node execution.
type ExecutionOrder string

const (
	ExecutionOrderLegacy ExecutionOrder = "v0"
	ExecutionOrderV1     ExecutionOrder = "v1" // Current default
)

// SavePolicy controls whether execution data is persisted by the engine.
type SavePolicy string

const (
	SavePolicyAll  SavePolicy = "all"
	SavePolicyNone SavePolicy = "none"
)

// Settings is the whitelisted workflow-level configuration accepted by the
// engine. Unknown keys are stripped during validation, never forwarded: the
// engine rejects unrecognized settings with an opaque error.
type Settings struct {
	ExecutionOrder           ExecutionOrder `json:"executionOrder"                     validate:"required,oneof=v0 v1"`
	SaveDataErrorExecution   SavePolicy     `json:"saveDataErrorExecution,omitempty"   validate:"omitempty,oneof=all none"`
	SaveDataSuccessExecution SavePolicy     `json:"saveDataSuccessExecution,omitempty" validate:"omitempty,oneof=all none"`
	CallerIDs                []string       `json:"callerIds,omitempty"`
	ExecutionTimeout         float64        `json:"executionTimeout,omitempty"         validate:"omitempty,gt=0"`
	ErrorWorkflow            string         `json:"errorWorkflow,omitempty"`
	Timezone                 string         `json:"timezone,omitempty"`
}

// Tag is a workflow tag reference passed through when well-shaped.
type Tag struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name" validate:"required"`
}

// Workflow is the normalized workflow graph: named, typed nodes plus the
// channel-indexed connection map. Node order carries layout meaning only.
type Workflow struct {
	ID          string         `json:"id,omitempty"`
	Name        string         `json:"name"        validate:"required"`
	Nodes       []*Node        `json:"nodes"       validate:"required,min=1"`
	Connections Connections    `json:"connections"`
	Settings    *Settings      `json:"settings,omitempty"`
	StaticData  map[string]any `json:"staticData,omitempty"`
	Active      *bool          `json:"active,omitempty"`
	VersionID   string         `json:"versionId,omitempty"`
	Meta        map[string]any `json:"meta,omitempty"`
	Tags        []Tag          `json:"tags,omitempty"`
	PinData     map[string]any `json:"pinData,omitempty"`
	CreatedAt   time.Time      `json:"createdAt,omitempty"`
	UpdatedAt   time.Time      `json:"updatedAt,omitempty"`
}

// NodeByName returns the node with the given name, or nil.
func (w *Workflow) NodeByName(name string) *Node {
	for _, node := range w.Nodes {
		if node.Name == name {
			return node
		}
	}

	return nil
}

// DeploymentSettings is the reduced settings object accepted by the engine's
// update API.
type DeploymentSettings struct {
	ExecutionOrder ExecutionOrder `json:"executionOrder"`
}

// DeploymentWorkflow is the lossy projection of a validated workflow used for
// engine update calls: only the fields the update endpoint accepts.
type DeploymentWorkflow struct {
	Name        string             `json:"name"`
	Nodes       []*Node            `json:"nodes"`
	Connections Connections        `json:"connections"`
	Settings    DeploymentSettings `json:"settings"`
}
