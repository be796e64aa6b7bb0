// Package conversation estimates dialogue completeness and phase from message
// content. The heuristic drives a UI affordance only; it is explicitly
// tolerant of false positives and never gates validation.
package conversation

import (
	"strings"

	"github.com/weftlabs/weft/pkg/models"
)

// Completeness tuning. Floors only ever raise the estimate, so a transcript
// that already reached confirmation cannot regress below "nearly done".
const (
	perUserMessage     = 15
	messageCountCap    = 60
	confirmationFloor  = 80
	summaryFloor       = 70
	readyFloor         = 90
	confirmationMinMsg = 5

	clarificationThreshold = 40
	designThreshold        = 70
	readyThreshold         = 90
)

// Phrase tables are data so the heuristic can be tested exhaustively and
// swapped for a model-based classifier without touching callers.
var (
	confirmationPhrases = []string{
		"shall i generate",
		"should i create the workflow",
		"are we ready to build",
		"is there anything else",
		"does this cover everything",
		"anything you'd like to change",
	}

	summaryPhrases = []string{
		"here's a summary",
		"here is a summary",
		"to summarize",
		"the workflow will",
		"this workflow consists of",
		"the planned workflow",
	}

	readyPhrases = []string{
		"ready to generate",
		"ready for generation",
		"i can generate the workflow now",
		"let's generate",
		"click generate",
	}
)

// Classifier computes advisory conversation state. Zero value is usable.
type Classifier struct{}

// NewClassifier creates a classifier.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify recomputes the conversation state from scratch for the given
// transcript and the assistant's latest reply.
func (c *Classifier) Classify(history []models.Message, latestAssistantReply string) models.ConversationState {
	userMessages := 0

	for _, msg := range history {
		if msg.Role == models.RoleUser {
			userMessages++
		}
	}

	completeness := min(userMessages*perUserMessage, messageCountCap)

	if userMessages > confirmationMinMsg && transcriptContains(history, confirmationPhrases) {
		completeness = max(completeness, confirmationFloor)
	}

	reply := strings.ToLower(latestAssistantReply)

	if containsAny(reply, summaryPhrases) {
		completeness = max(completeness, summaryFloor)
	}

	if containsAny(reply, readyPhrases) {
		completeness = max(completeness, readyFloor)
	}

	completeness = max(0, min(completeness, 100))

	return models.ConversationState{
		Phase:        phaseFor(completeness),
		Completeness: completeness,
	}
}

func phaseFor(completeness int) models.ConversationPhase {
	switch {
	case completeness >= readyThreshold:
		return models.PhaseReadyForGeneration
	case completeness >= designThreshold:
		return models.PhaseWorkflowDesign
	case completeness >= clarificationThreshold:
		return models.PhaseRequirementsClarification
	default:
		return models.PhaseInformationGathering
	}
}

func transcriptContains(history []models.Message, phrases []string) bool {
	for _, msg := range history {
		if containsAny(strings.ToLower(msg.Content), phrases) {
			return true
		}
	}

	return false
}

func containsAny(s string, phrases []string) bool {
	for _, phrase := range phrases {
		if strings.Contains(s, phrase) {
			return true
		}
	}

	return false
}
