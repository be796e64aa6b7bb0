package validation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftlabs/weft/pkg/catalog"
	"github.com/weftlabs/weft/pkg/models"
	"github.com/weftlabs/weft/pkg/testutil"
)

func newTestValidator(t *testing.T) *Validator {
	t.Helper()

	cat := catalog.New(nil, nil, 0)

	return New(cat.Snapshot(t.Context()))
}

// roundTrip re-encodes a validated workflow the way a client would submit it
// back.
func roundTrip(t *testing.T, workflow *models.Workflow) any {
	t.Helper()

	data, err := json.Marshal(workflow)
	require.NoError(t, err)

	var candidate any
	require.NoError(t, json.Unmarshal(data, &candidate))

	return candidate
}

func TestValidate_MinimalLinearWorkflow(t *testing.T) {
	validator := newTestValidator(t)

	candidate := testutil.CreateCandidateWorkflow("Lead intake",
		testutil.CreateCandidateNode(testutil.WithWebhookTrigger()),
		testutil.CreateCandidateNode(testutil.WithNodeName("Transform")),
		testutil.CreateCandidateNode(
			testutil.WithNodeName("Notify"),
			testutil.WithNodeType("n8n-nodes-base.slack"),
		),
	)

	workflow, repairs, err := validator.Validate(candidate)
	require.NoError(t, err)
	require.NotNil(t, workflow)

	assert.Empty(t, repairs)
	assert.Equal(t, "Lead intake", workflow.Name)
	assert.Len(t, workflow.Nodes, 3)
	assert.Equal(t, models.ExecutionOrderV1, workflow.Settings.ExecutionOrder)

	require.Contains(t, workflow.Connections, "Webhook")
	require.Contains(t, workflow.Connections, "Transform")
	assert.Equal(t, "Transform", workflow.Connections["Webhook"].Main[0][0].Node)
	assert.Equal(t, "Notify", workflow.Connections["Transform"].Main[0][0].Node)
}

func TestValidate_Idempotent(t *testing.T) {
	validator := newTestValidator(t)

	// Sloppy model output: no ids, no positions, no typeVersion.
	candidate := map[string]any{
		"name": "Sync sheet",
		"nodes": []any{
			map[string]any{"name": "Schedule", "type": "n8n-nodes-base.scheduleTrigger"},
			map[string]any{"name": "Read rows", "type": "n8n-nodes-base.googleSheets"},
		},
		"connections": map[string]any{
			"Schedule": map[string]any{
				"main": []any{[]any{map[string]any{"node": "Read rows"}}},
			},
		},
	}

	first, firstRepairs, err := validator.Validate(candidate)
	require.NoError(t, err)
	assert.NotEmpty(t, firstRepairs)

	second, secondRepairs, err := validator.Validate(roundTrip(t, first))
	require.NoError(t, err)

	assert.Empty(t, secondRepairs)
	assert.Equal(t, first.Nodes, second.Nodes)
	assert.Equal(t, first.Connections, second.Connections)
	assert.Equal(t, first.Settings, second.Settings)
}

func TestValidate_EnvelopeIssues(t *testing.T) {
	validator := newTestValidator(t)

	tests := []struct {
		name      string
		candidate any
	}{
		{"missing name", map[string]any{"nodes": []any{map[string]any{}}}},
		{"empty name", map[string]any{"name": "", "nodes": []any{map[string]any{}}}},
		{"no nodes", map[string]any{"name": "wf"}},
		{"empty nodes", map[string]any{"name": "wf", "nodes": []any{}}},
		{"not an object", []any{"nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			workflow, _, err := validator.Validate(tt.candidate)
			require.Error(t, err)
			assert.Nil(t, workflow)

			validationErr, ok := AsValidationError(err)
			require.True(t, ok)
			assert.NotEmpty(t, validationErr.Issues)
		})
	}
}

func TestValidate_UnknownTypesBatchedWithSuggestions(t *testing.T) {
	validator := newTestValidator(t)

	candidate := testutil.CreateCandidateWorkflow("Broken types",
		testutil.CreateCandidateNode(
			testutil.WithNodeName("Incoming message"),
			testutil.WithNodeType("n8n-nodes-base.whatsappTrigger"),
		),
		testutil.CreateCandidateNode(
			testutil.WithNodeName("Call API"),
			testutil.WithNodeType("n8n-nodes-base.restRequest"),
		),
	)

	_, _, err := validator.Validate(candidate)
	require.Error(t, err)

	validationErr, ok := AsValidationError(err)
	require.True(t, ok)
	require.Len(t, validationErr.Issues, 2)

	// Wrong casing must resolve to the real trigger type, not a generic
	// action.
	assert.Equal(t, "Incoming message", validationErr.Issues[0].Location)
	assert.Equal(t, "n8n-nodes-base.whatsAppTrigger", validationErr.Issues[0].Suggestion)
	assert.NotEmpty(t, validationErr.Issues[1].Suggestion)
}

func TestValidate_FirstNodeMustBeTrigger(t *testing.T) {
	validator := newTestValidator(t)

	candidate := testutil.CreateCandidateWorkflow("Starts with action",
		testutil.CreateCandidateNode(testutil.WithNodeName("Transform")),
		testutil.CreateCandidateNode(testutil.WithWebhookTrigger()),
	)

	_, _, err := validator.Validate(candidate)
	require.Error(t, err)

	validationErr, ok := AsValidationError(err)
	require.True(t, ok)
	require.Len(t, validationErr.Issues, 1)
	assert.Equal(t, "Transform", validationErr.Issues[0].Location)
	assert.Equal(t, catalog.WebhookTriggerType, validationErr.Issues[0].Suggestion)
}

func TestValidate_StickyNotesAreSkipped(t *testing.T) {
	validator := newTestValidator(t)

	sticky := testutil.CreateCandidateNode(
		testutil.WithNodeName("Note"),
		testutil.WithNodeType(catalog.StickyNoteType),
	)

	t.Run("sticky before trigger", func(t *testing.T) {
		candidate := map[string]any{
			"name": "Documented flow",
			"nodes": []any{
				sticky,
				testutil.CreateCandidateNode(testutil.WithWebhookTrigger()),
			},
		}

		workflow, _, err := validator.Validate(candidate)
		require.NoError(t, err)
		assert.Len(t, workflow.Nodes, 2)
	})

	t.Run("decorative-only workflow", func(t *testing.T) {
		candidate := map[string]any{
			"name":  "Only notes",
			"nodes": []any{sticky},
		}

		_, _, err := validator.Validate(candidate)
		require.NoError(t, err)
	})
}

func TestValidate_SingleOutputRule(t *testing.T) {
	validator := newTestValidator(t)

	fanOut := func(sourceName, sourceType string, onError string) map[string]any {
		source := testutil.CreateCandidateNode(
			testutil.WithNodeName(sourceName),
			testutil.WithNodeType(sourceType),
		)
		if onError != "" {
			source["onError"] = onError
		}

		return map[string]any{
			"name": "Fan out",
			"nodes": []any{
				testutil.CreateCandidateNode(testutil.WithWebhookTrigger()),
				source,
				testutil.CreateCandidateNode(testutil.WithNodeName("Left")),
				testutil.CreateCandidateNode(testutil.WithNodeName("Right")),
			},
			"connections": map[string]any{
				"Webhook": map[string]any{
					"main": []any{[]any{map[string]any{"node": sourceName}}},
				},
				sourceName: map[string]any{
					"main": []any{
						[]any{map[string]any{"node": "Left"}},
						[]any{map[string]any{"node": "Right"}},
					},
				},
			},
		}
	}

	t.Run("plain action may not fan out", func(t *testing.T) {
		_, _, err := validator.Validate(fanOut("Splitter", "n8n-nodes-base.set", ""))
		require.Error(t, err)

		validationErr, ok := AsValidationError(err)
		require.True(t, ok)
		require.Len(t, validationErr.Issues, 1)
		assert.Equal(t, "connections.Splitter", validationErr.Issues[0].Location)
		assert.Equal(t, catalog.IfType, validationErr.Issues[0].Suggestion)
	})

	t.Run("branching node may fan out", func(t *testing.T) {
		workflow, _, err := validator.Validate(fanOut("Splitter", catalog.IfType, ""))
		require.NoError(t, err)
		assert.Len(t, workflow.Connections["Splitter"].Main, 2)
	})

	t.Run("error-output node may fan out", func(t *testing.T) {
		workflow, _, err := validator.Validate(
			fanOut("Splitter", "n8n-nodes-base.httpRequest", "continueErrorOutput"))
		require.NoError(t, err)
		assert.Len(t, workflow.Connections["Splitter"].Main, 2)
	})
}

func TestValidate_EmptyBranchesDropped(t *testing.T) {
	validator := newTestValidator(t)

	candidate := map[string]any{
		"name": "Dangling branches",
		"nodes": []any{
			testutil.CreateCandidateNode(testutil.WithWebhookTrigger()),
			testutil.CreateCandidateNode(testutil.WithNodeName("Transform")),
		},
		"connections": map[string]any{
			"Webhook": map[string]any{
				"main": []any{
					[]any{map[string]any{"node": "Transform"}},
					[]any{}, // model emitted a dangling second branch
				},
			},
			"Transform": map[string]any{
				"main": []any{[]any{}},
			},
		},
	}

	workflow, repairs, err := validator.Validate(candidate)
	require.NoError(t, err)

	// Dropping the empty branch leaves a single output, so the webhook does
	// not violate the single-output rule.
	require.Contains(t, workflow.Connections, "Webhook")
	assert.Len(t, workflow.Connections["Webhook"].Main, 1)
	assert.NotContains(t, workflow.Connections, "Transform")
	assert.NotEmpty(t, repairs)
}

func TestValidate_ConnectionEndpointsMustExist(t *testing.T) {
	validator := newTestValidator(t)

	t.Run("unknown source", func(t *testing.T) {
		candidate := testutil.CreateCandidateWorkflow("Ghost source",
			testutil.CreateCandidateNode(testutil.WithWebhookTrigger()))
		candidate["connections"] = map[string]any{
			"Ghost": map[string]any{
				"main": []any{[]any{map[string]any{"node": "Webhook"}}},
			},
		}

		_, _, err := validator.Validate(candidate)
		require.Error(t, err)

		validationErr, ok := AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, "connections.Ghost", validationErr.Issues[0].Location)
	})

	t.Run("unknown target", func(t *testing.T) {
		candidate := testutil.CreateCandidateWorkflow("Ghost target",
			testutil.CreateCandidateNode(testutil.WithWebhookTrigger()))
		candidate["connections"] = map[string]any{
			"Webhook": map[string]any{
				"main": []any{[]any{map[string]any{"node": "Ghost"}}},
			},
		}

		_, _, err := validator.Validate(candidate)
		require.Error(t, err)

		validationErr, ok := AsValidationError(err)
		require.True(t, ok)
		assert.Contains(t, validationErr.Issues[0].Problem, "Ghost")
	})
}

func TestValidate_IssueOrderIsStable(t *testing.T) {
	validator := newTestValidator(t)

	build := func() map[string]any {
		candidate := testutil.CreateCandidateWorkflow("Wobbly map",
			testutil.CreateCandidateNode(testutil.WithWebhookTrigger()),
			testutil.CreateCandidateNode(testutil.WithNodeName("Transform")),
			testutil.CreateCandidateNode(
				testutil.WithNodeName("Notify"),
				testutil.WithNodeType("n8n-nodes-base.slack"),
			),
		)
		candidate["connections"] = map[string]any{
			"Transform": map[string]any{
				"main": []any{
					[]any{map[string]any{"node": "Notify"}},
					[]any{map[string]any{"node": "Webhook"}},
				},
			},
			"Zeta":  map[string]any{"main": []any{[]any{map[string]any{"node": "Notify"}}}},
			"Alpha": map[string]any{"main": []any{[]any{map[string]any{"node": "Notify"}}}},
		}

		return candidate
	}

	_, _, err := validator.Validate(build())
	require.Error(t, err)

	first, ok := AsValidationError(err)
	require.True(t, ok)
	require.Len(t, first.Issues, 3)

	// Known sources come in node order, unknown sources sorted after them.
	assert.Equal(t, "connections.Transform", first.Issues[0].Location)
	assert.Equal(t, "connections.Alpha", first.Issues[1].Location)
	assert.Equal(t, "connections.Zeta", first.Issues[2].Location)

	for range 20 {
		_, _, err := validator.Validate(build())
		require.Error(t, err)

		repeat, ok := AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, first.Issues, repeat.Issues)
	}
}

func TestValidate_NonMainChannelsDropped(t *testing.T) {
	validator := newTestValidator(t)

	candidate := testutil.CreateCandidateWorkflow("Oddball channel",
		testutil.CreateCandidateNode(testutil.WithWebhookTrigger()),
		testutil.CreateCandidateNode(testutil.WithNodeName("Transform")),
	)
	candidate["connections"].(map[string]any)["Webhook"].(map[string]any)["ai_tool"] = []any{}

	workflow, repairs, err := validator.Validate(candidate)
	require.NoError(t, err)

	assert.Len(t, workflow.Connections["Webhook"].Main, 1)

	var channelRepair bool

	for _, repair := range repairs {
		if repair.Field == "channel" {
			channelRepair = true
		}
	}

	assert.True(t, channelRepair)
}

func TestValidate_SettingsWhitelist(t *testing.T) {
	validator := newTestValidator(t)

	candidate := testutil.CreateCandidateWorkflow("Settings heavy",
		testutil.CreateCandidateNode(testutil.WithWebhookTrigger()))
	candidate["settings"] = map[string]any{
		"executionOrder":         "v0",
		"saveDataErrorExecution": "all",
		"executionTimeout":       float64(120),
		"timezone":               "America/Sao_Paulo",
		"callerIds":              []any{"caller-1"},
		"saveManualExecutions":   true,       // not whitelisted
		"errorPolicy":            "hallucinated", // not whitelisted
	}

	workflow, repairs, err := validator.Validate(candidate)
	require.NoError(t, err)

	settings := workflow.Settings
	assert.Equal(t, models.ExecutionOrderLegacy, settings.ExecutionOrder)
	assert.Equal(t, models.SavePolicyAll, settings.SaveDataErrorExecution)
	assert.InEpsilon(t, 120.0, settings.ExecutionTimeout, 0.001)
	assert.Equal(t, "America/Sao_Paulo", settings.Timezone)
	assert.Equal(t, []string{"caller-1"}, settings.CallerIDs)

	// Unknown keys never survive into the output, only into the repair log.
	data, err := json.Marshal(settings)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "saveManualExecutions")
	assert.NotContains(t, string(data), "errorPolicy")

	stripped := 0

	for _, repair := range repairs {
		if repair.Location == "workflow.settings" {
			stripped++
		}
	}

	assert.Equal(t, 2, stripped)
}

func TestValidate_CronExpressionRepaired(t *testing.T) {
	validator := newTestValidator(t)

	build := func(expr string) map[string]any {
		return map[string]any{
			"name": "Scheduled",
			"nodes": []any{
				testutil.CreateCandidateNode(
					testutil.WithNodeName("Schedule"),
					testutil.WithNodeType(catalog.ScheduleTriggerType),
					testutil.WithParameters(map[string]any{"cronExpression": expr}),
				),
			},
		}
	}

	t.Run("valid expression kept", func(t *testing.T) {
		workflow, repairs, err := validator.Validate(build("30 9 * * 1-5"))
		require.NoError(t, err)
		assert.Equal(t, "30 9 * * 1-5", workflow.Nodes[0].Parameters["cronExpression"])
		assert.Empty(t, repairs)
	})

	t.Run("garbage replaced with hourly default", func(t *testing.T) {
		workflow, repairs, err := validator.Validate(build("every monday at nine"))
		require.NoError(t, err)
		assert.Equal(t, "0 * * * *", workflow.Nodes[0].Parameters["cronExpression"])
		require.Len(t, repairs, 1)
		assert.Equal(t, "parameters.cronExpression", repairs[0].Field)
	})
}

func TestValidate_MissingCosmeticFieldsRepaired(t *testing.T) {
	validator := newTestValidator(t)

	candidate := map[string]any{
		"name": "Bare nodes",
		"nodes": []any{
			map[string]any{"name": "Webhook", "type": catalog.WebhookTriggerType},
		},
	}

	workflow, repairs, err := validator.Validate(candidate)
	require.NoError(t, err)

	node := workflow.Nodes[0]
	assert.NotEmpty(t, node.ID)
	assert.Equal(t, 1, node.TypeVersion)
	assert.Equal(t, [2]float64{250, 300}, node.Position)
	assert.NotNil(t, node.Parameters)

	fields := make(map[string]bool)
	for _, repair := range repairs {
		fields[repair.Field] = true
	}

	assert.True(t, fields["id"])
	assert.True(t, fields["typeVersion"])
	assert.True(t, fields["position"])
	assert.True(t, fields["parameters"])
}

func TestForDeployment(t *testing.T) {
	workflow := testutil.CreateTestWorkflow()
	workflow.Tags = []models.Tag{{ID: "t1", Name: "ops"}}
	workflow.PinData = map[string]any{"Webhook": []any{}}
	workflow.Settings.Timezone = "UTC"
	workflow.Settings.ErrorWorkflow = "wf-errors"

	deployment := ForDeployment(workflow)

	assert.Equal(t, workflow.Name, deployment.Name)
	assert.Equal(t, workflow.Nodes, deployment.Nodes)
	assert.Equal(t, workflow.Connections, deployment.Connections)
	assert.Equal(t, models.ExecutionOrderV1, deployment.Settings.ExecutionOrder)

	data, err := json.Marshal(deployment)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "tags")
	assert.NotContains(t, string(data), "pinData")
	assert.NotContains(t, string(data), "timezone")
	assert.NotContains(t, string(data), "errorWorkflow")
}
