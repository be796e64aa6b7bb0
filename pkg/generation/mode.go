// Package generation orchestrates provider selection, context assembly, and
// one-hop fallback for conversation and workflow-generation turns.
package generation

// Mode selects generation parameters: workflow generation runs cooler and with
// a larger token budget than conversational turns.
type Mode string

const (
	ModeConversation Mode = "conversation"
	ModeWorkflow     Mode = "workflow_generation"
)

type modeParams struct {
	temperature float64
	maxTokens   int
	jsonMode    bool
}

var paramsByMode = map[Mode]modeParams{
	ModeConversation: {temperature: 0.7, maxTokens: 2048, jsonMode: false},
	ModeWorkflow:     {temperature: 0.2, maxTokens: 8192, jsonMode: true},
}

func (m Mode) params() modeParams {
	if params, ok := paramsByMode[m]; ok {
		return params
	}

	return paramsByMode[ModeConversation]
}
