// Package web provides HTTP handlers and REST API endpoints for workflow
// generation and management.
package web

import (
	"github.com/weftlabs/weft/pkg/catalog"
	"github.com/weftlabs/weft/pkg/models"
)

// ChatRequest represents one conversational turn against the assistant.
type ChatRequest struct {
	Messages []models.Message `json:"messages" validate:"required,min=1,dive"`
	Provider string           `json:"provider,omitempty"`
}

// GenerateWorkflowRequest asks for a complete workflow graph from the
// conversation so far.
type GenerateWorkflowRequest struct {
	Messages []models.Message `json:"messages" validate:"required,min=1,dive"`
	Provider string           `json:"provider,omitempty"`
}

// NodeTypeResponse is one vocabulary entry.
type NodeTypeResponse struct {
	Type        string `json:"type"`
	DisplayName string `json:"displayName"`
	Category    string `json:"category"`
}

// TransformNodeTypeResponse converts a catalog entry into its API shape.
func TransformNodeTypeResponse(entry catalog.Entry) NodeTypeResponse {
	return NodeTypeResponse{
		Type:        entry.Type,
		DisplayName: entry.DisplayName,
		Category:    string(entry.Category),
	}
}
