package models

// MessageRole tags a conversation message with its author.
type MessageRole string

const (
	RoleSystem    MessageRole = "system"
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// Message is one turn of the conversation driving generation.
type Message struct {
	Role    MessageRole `json:"role"    validate:"required,oneof=system user assistant"`
	Content string      `json:"content" validate:"required"`
}

// ConversationPhase is the estimated dialogue stage, derived and disposable.
type ConversationPhase string

const (
	PhaseInformationGathering      ConversationPhase = "information_gathering"
	PhaseRequirementsClarification ConversationPhase = "requirements_clarification"
	PhaseWorkflowDesign            ConversationPhase = "workflow_design"
	PhaseReadyForGeneration        ConversationPhase = "ready_for_generation"
)

// ConversationState is advisory UI state recomputed on every assistant turn;
// it never gates validation.
type ConversationState struct {
	Phase        ConversationPhase `json:"phase"`
	Completeness int               `json:"completeness" validate:"min=0,max=100"`
}
