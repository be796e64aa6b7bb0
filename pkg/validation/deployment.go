package validation

import "github.com/weftlabs/weft/pkg/models"

// ForDeployment reduces a validated workflow to the fields the engine's
// update API accepts: name, nodes, connections, and a settings object holding
// only the execution-order key. Editor-only fields are dropped.
func ForDeployment(workflow *models.Workflow) *models.DeploymentWorkflow {
	order := models.ExecutionOrderV1
	if workflow.Settings != nil && workflow.Settings.ExecutionOrder != "" {
		order = workflow.Settings.ExecutionOrder
	}

	connections := workflow.Connections
	if connections == nil {
		connections = make(models.Connections)
	}

	return &models.DeploymentWorkflow{
		Name:        workflow.Name,
		Nodes:       workflow.Nodes,
		Connections: connections,
		Settings:    models.DeploymentSettings{ExecutionOrder: order},
	}
}
