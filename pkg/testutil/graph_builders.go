// Package testutil provides test data builders and utilities for testing.
package testutil

import (
	"github.com/google/uuid"

	"github.com/weftlabs/weft/pkg/models"
)

// CreateCandidateNode builds a raw node map the way a model emits one, with
// default values that can be overridden.
func CreateCandidateNode(overrides ...func(map[string]any)) map[string]any {
	node := map[string]any{
		"id":          uuid.New().String(),
		"name":        "Test Node",
		"type":        "n8n-nodes-base.set",
		"typeVersion": float64(1),
		"position":    []any{float64(250), float64(300)},
		"parameters":  map[string]any{},
	}

	for _, override := range overrides {
		override(node)
	}

	return node
}

// WithNodeName sets the node name.
func WithNodeName(name string) func(map[string]any) {
	return func(n map[string]any) {
		n["name"] = name
	}
}

// WithNodeType sets the node type.
func WithNodeType(nodeType string) func(map[string]any) {
	return func(n map[string]any) {
		n["type"] = nodeType
	}
}

// WithWebhookTrigger configures the node as a webhook trigger.
func WithWebhookTrigger() func(map[string]any) {
	return func(n map[string]any) {
		n["name"] = "Webhook"
		n["type"] = "n8n-nodes-base.webhook"
		n["parameters"] = map[string]any{
			"path":       "/hooks/test",
			"httpMethod": "POST",
		}
	}
}

// WithParameters sets the node parameters.
func WithParameters(parameters map[string]any) func(map[string]any) {
	return func(n map[string]any) {
		n["parameters"] = parameters
	}
}

// WithoutField deletes a key from the raw node, simulating model omissions.
func WithoutField(field string) func(map[string]any) {
	return func(n map[string]any) {
		delete(n, field)
	}
}

// CreateCandidateWorkflow builds a raw workflow envelope around the given
// nodes, wired as a straight line from first to last.
func CreateCandidateWorkflow(name string, nodes ...map[string]any) map[string]any {
	rawNodes := make([]any, 0, len(nodes))
	for _, node := range nodes {
		rawNodes = append(rawNodes, node)
	}

	return map[string]any{
		"name":        name,
		"nodes":       rawNodes,
		"connections": LinearConnections(nodes...),
	}
}

// LinearConnections wires the given nodes into a single chain on the main
// channel.
func LinearConnections(nodes ...map[string]any) map[string]any {
	connections := map[string]any{}

	for i := 0; i+1 < len(nodes); i++ {
		source, _ := nodes[i]["name"].(string)
		target, _ := nodes[i+1]["name"].(string)

		connections[source] = map[string]any{
			"main": []any{
				[]any{
					map[string]any{"node": target, "type": "main", "index": float64(0)},
				},
			},
		}
	}

	return connections
}

// CreateTestWorkflow creates a validated workflow model for persistence and
// service tests.
func CreateTestWorkflow(overrides ...func(*models.Workflow)) *models.Workflow {
	trigger := &models.Node{
		ID:          uuid.New().String(),
		Name:        "Webhook",
		Type:        "n8n-nodes-base.webhook",
		TypeVersion: 1,
		Position:    [2]float64{250, 300},
		Parameters:  map[string]any{"path": "/hooks/test"},
	}
	action := &models.Node{
		ID:          uuid.New().String(),
		Name:        "Set",
		Type:        "n8n-nodes-base.set",
		TypeVersion: 1,
		Position:    [2]float64{450, 300},
		Parameters:  map[string]any{},
	}

	workflow := &models.Workflow{
		ID:    uuid.New().String(),
		Name:  "Test Workflow",
		Nodes: []*models.Node{trigger, action},
		Connections: models.Connections{
			"Webhook": {
				Main: [][]models.Edge{
					{{Node: "Set", Type: models.ChannelMain, Index: 0}},
				},
			},
		},
		Settings: &models.Settings{ExecutionOrder: models.ExecutionOrderV1},
	}

	for _, override := range overrides {
		override(workflow)
	}

	return workflow
}

// WithWorkflowName sets the workflow name.
func WithWorkflowName(name string) func(*models.Workflow) {
	return func(w *models.Workflow) {
		w.Name = name
	}
}

// WithWorkflowID sets the workflow ID.
func WithWorkflowID(id string) func(*models.Workflow) {
	return func(w *models.Workflow) {
		w.ID = id
	}
}
