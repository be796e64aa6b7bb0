package models

// ChannelMain is the only output channel the pipeline emits. The engine
// supports additional channels but generation never produces them.
const ChannelMain = "main"

// Edge is a directed link from a source node's output channel to the target
// node's input at the given index.
type Edge struct {
	Node  string `json:"node"  validate:"required"`
	Type  string `json:"type"  validate:"required,eq=main"`
	Index int    `json:"index" validate:"min=0"`
}

// NodeOutputs groups the edge-lists a source node declares per output channel.
// Each element of Main is one output branch; only branching-category nodes may
// declare more than one.
type NodeOutputs struct {
	Main [][]Edge `json:"main"`
}

// Connections maps source-node name to its declared outputs.
type Connections map[string]*NodeOutputs

// Targets returns every distinct target node name referenced by any edge.
func (c Connections) Targets() []string {
	seen := make(map[string]struct{})
	targets := make([]string, 0)

	for _, outputs := range c {
		if outputs == nil {
			continue
		}

		for _, branch := range outputs.Main {
			for _, edge := range branch {
				if _, ok := seen[edge.Node]; !ok {
					seen[edge.Node] = struct{}{}

					targets = append(targets, edge.Node)
				}
			}
		}
	}

	return targets
}
