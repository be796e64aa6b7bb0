package validation

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/weftlabs/weft/pkg/catalog"
	"github.com/weftlabs/weft/pkg/models"
)

// Deterministic fallback layout for nodes without a usable position.
const (
	positionBaseX = 250
	positionStepX = 200
	positionY     = 300
)

// Validator normalizes candidate graphs against one vocabulary snapshot. It is
// pure: no I/O, deterministic for a given input and snapshot (generated node
// ids aside).
type Validator struct {
	snapshot *catalog.Snapshot
}

// New creates a validator over the given vocabulary snapshot.
func New(snapshot *catalog.Snapshot) *Validator {
	return &Validator{snapshot: snapshot}
}

// Validate checks and normalizes a candidate graph. On success it returns the
// normalized workflow plus the list of cosmetic repairs performed. On failure
// it returns a batched *Error listing every fatal issue found in the current
// pass.
func (v *Validator) Validate(candidate any) (*models.Workflow, []Repair, error) {
	if issues := checkEnvelope(candidate); len(issues) > 0 {
		return nil, nil, &Error{Issues: issues}
	}

	raw, ok := asMap(candidate)
	if !ok {
		return nil, nil, &Error{Issues: []Issue{{
			Location: "workflow",
			Problem:  "candidate is not a JSON object",
		}}}
	}

	name, _ := asString(raw["name"])

	var repairs []Repair

	nodes, issues := v.normalizeNodes(raw["nodes"], &repairs)
	if len(issues) > 0 {
		return nil, nil, &Error{Issues: issues}
	}

	if err := v.checkTriggers(name, nodes); err != nil {
		return nil, nil, err
	}

	connections, issues := v.normalizeConnections(raw["connections"], nodes, &repairs)
	if len(issues) > 0 {
		return nil, nil, &Error{Issues: issues}
	}

	workflow := &models.Workflow{
		Name:        name,
		Nodes:       nodes,
		Connections: connections,
		Settings:    normalizeSettings(raw["settings"], &repairs),
	}

	v.passThroughOptional(raw, workflow, &repairs)

	return workflow, repairs, nil
}

// normalizeNodes walks the raw node list, collecting every shape and
// node-type problem into one batch instead of halting node-by-node.
func (v *Validator) normalizeNodes(rawNodes any, repairs *[]Repair) ([]*models.Node, []Issue) {
	list, ok := asSlice(rawNodes)
	if !ok {
		return nil, []Issue{{Location: "workflow", Problem: "nodes is not an array"}}
	}

	var issues []Issue

	nodes := make([]*models.Node, 0, len(list))
	seen := make(map[string]struct{}, len(list))

	for i, rawNode := range list {
		location := fmt.Sprintf("nodes[%d]", i)

		nm, ok := asMap(rawNode)
		if !ok {
			issues = append(issues, Issue{Location: location, Problem: "node is not an object"})

			continue
		}

		nodeName, _ := asString(nm["name"])
		nodeName = strings.TrimSpace(nodeName)

		if nodeName == "" {
			issues = append(issues, Issue{Location: location, Problem: "node has no name"})
		} else {
			location = nodeName

			if _, dup := seen[nodeName]; dup {
				issues = append(issues, Issue{
					Location: location,
					Problem:  "duplicate node name; names are the connection join key and must be unique",
				})
			}

			seen[nodeName] = struct{}{}
		}

		nodeType, _ := asString(nm["type"])
		nodeType = strings.TrimSpace(nodeType)

		switch {
		case nodeType == "":
			issues = append(issues, Issue{Location: location, Problem: "node has no type"})
		case !v.snapshot.IsValidType(nodeType) && !catalog.IsDecorative(nodeType):
			issues = append(issues, Issue{
				Location:   location,
				Problem:    fmt.Sprintf("unknown node type %q", nodeType),
				Suggestion: v.snapshot.SuggestAlternative(nodeType),
			})
		}

		nodes = append(nodes, v.buildNode(nm, nodeName, nodeType, i, repairs))
	}

	if len(issues) > 0 {
		return nil, issues
	}

	return nodes, nil
}

// buildNode normalizes one node's cosmetic fields, recording a repair for each
// silent correction. Position and typeVersion are never hard failures.
func (v *Validator) buildNode(nm map[string]any, name, nodeType string, index int, repairs *[]Repair) *models.Node {
	node := &models.Node{
		Name: name,
		Type: nodeType,
	}

	if id, ok := asString(nm["id"]); ok && id != "" {
		node.ID = id
	} else {
		node.ID = uuid.New().String()

		*repairs = append(*repairs, Repair{
			Location: name, Field: "id", To: node.ID,
		})
	}

	node.TypeVersion = normalizeTypeVersion(nm["typeVersion"], name, repairs)
	node.Position = normalizePosition(nm["position"], name, index, repairs)

	if params, ok := asMap(nm["parameters"]); ok {
		node.Parameters = params
	} else {
		node.Parameters = map[string]any{}

		*repairs = append(*repairs, Repair{
			Location: name, Field: "parameters", From: nm["parameters"], To: map[string]any{},
		})
	}

	v.normalizeCron(node, repairs)

	if creds, ok := asMap(nm["credentials"]); ok {
		node.Credentials = creds
	}

	if disabled, ok := asBool(nm["disabled"]); ok {
		node.Disabled = disabled
	}

	if notes, ok := asString(nm["notes"]); ok {
		node.Notes = notes
	}

	if color, ok := asString(nm["color"]); ok {
		node.Color = color
	}

	if webhookID, ok := asString(nm["webhookId"]); ok {
		node.WebhookID = webhookID
	}

	if once, ok := asBool(nm["executeOnce"]); ok {
		node.ExecuteOnce = once
	}

	if onError, ok := asString(nm["onError"]); ok && onError != "" {
		switch policy := models.OnErrorPolicy(onError); policy {
		case models.OnErrorStopWorkflow, models.OnErrorContinueRegular, models.OnErrorContinueError:
			node.OnError = policy
		default:
			*repairs = append(*repairs, Repair{
				Location: name, Field: "onError", From: onError,
			})
		}
	}

	return node
}

func normalizeTypeVersion(raw any, name string, repairs *[]Repair) int {
	if n, ok := asNumber(raw); ok && n >= 1 {
		return int(n)
	}

	if raw != nil {
		*repairs = append(*repairs, Repair{
			Location: name, Field: "typeVersion", From: raw, To: 1,
		})
	} else {
		*repairs = append(*repairs, Repair{
			Location: name, Field: "typeVersion", To: 1,
		})
	}

	return 1
}

// normalizePosition defaults missing or malformed coordinates to a
// deterministic, non-overlapping layout. Position is cosmetic, never fatal.
func normalizePosition(raw any, name string, index int, repairs *[]Repair) [2]float64 {
	if list, ok := asSlice(raw); ok && len(list) == 2 {
		x, xok := asNumber(list[0])
		y, yok := asNumber(list[1])

		if xok && yok {
			return [2]float64{x, y}
		}
	}

	fallback := [2]float64{float64(positionBaseX + positionStepX*index), positionY}

	*repairs = append(*repairs, Repair{
		Location: name, Field: "position", From: raw, To: fallback,
	})

	return fallback
}

// normalizeCron guards schedule triggers against unparseable cron expressions.
// Parameters are otherwise out of scope for deep validation.
func (v *Validator) normalizeCron(node *models.Node, repairs *[]Repair) {
	if node.Type != catalog.ScheduleTriggerType && node.Type != "n8n-nodes-base.cron" {
		return
	}

	expr, ok := asString(node.Parameters["cronExpression"])
	if !ok || expr == "" {
		return
	}

	if err := parseCron(expr); err != nil {
		node.Parameters["cronExpression"] = defaultCronExpression

		*repairs = append(*repairs, Repair{
			Location: node.Name, Field: "parameters.cronExpression",
			From: expr, To: defaultCronExpression,
		})
	}
}

// checkTriggers enforces the first-node and trigger-presence invariants.
// Decorative sticky notes are skipped.
func (v *Validator) checkTriggers(workflowName string, nodes []*models.Node) error {
	var first *models.Node

	hasTrigger := false
	hasExecutable := false

	for _, node := range nodes {
		if catalog.IsDecorative(node.Type) {
			continue
		}

		hasExecutable = true

		if first == nil {
			first = node
		}

		if v.snapshot.CategoryOf(node.Type) == catalog.CategoryTrigger {
			hasTrigger = true
		}
	}

	if first != nil && v.snapshot.CategoryOf(first.Type) != catalog.CategoryTrigger {
		return &Error{Issues: []Issue{{
			Location: first.Name,
			Problem: fmt.Sprintf("first node %q is %s-category and cannot start a workflow",
				first.Type, v.snapshot.CategoryOf(first.Type)),
			Suggestion: catalog.WebhookTriggerType,
		}}}
	}

	if hasExecutable && !hasTrigger {
		return &Error{Issues: []Issue{{
			Location:   workflowName,
			Problem:    "workflow has no trigger node",
			Suggestion: catalog.ManualTriggerType,
		}}}
	}

	return nil
}

// passThroughOptional copies well-typed optional workflow-level fields and
// drops malformed ones without failing the whole validation.
func (v *Validator) passThroughOptional(raw map[string]any, workflow *models.Workflow, repairs *[]Repair) {
	if staticData, ok := asMap(raw["staticData"]); ok {
		workflow.StaticData = staticData
	} else if raw["staticData"] != nil {
		*repairs = append(*repairs, Repair{Location: "workflow", Field: "staticData", From: raw["staticData"]})
	}

	if active, ok := asBool(raw["active"]); ok {
		workflow.Active = &active
	}

	if versionID, ok := asString(raw["versionId"]); ok {
		workflow.VersionID = versionID
	}

	if meta, ok := asMap(raw["meta"]); ok {
		workflow.Meta = meta
	}

	if pinData, ok := asMap(raw["pinData"]); ok {
		workflow.PinData = pinData
	}

	if rawTags, present := raw["tags"]; present {
		workflow.Tags = normalizeTags(rawTags, repairs)
	}
}

// normalizeTags keeps well-shaped tag entries and drops the rest.
func normalizeTags(raw any, repairs *[]Repair) []models.Tag {
	list, ok := asSlice(raw)
	if !ok {
		*repairs = append(*repairs, Repair{Location: "workflow", Field: "tags", From: raw})

		return nil
	}

	tags := make([]models.Tag, 0, len(list))

	for _, item := range list {
		tm, ok := asMap(item)
		if !ok {
			*repairs = append(*repairs, Repair{Location: "workflow", Field: "tags", From: item})

			continue
		}

		tagName, _ := asString(tm["name"])
		if tagName == "" {
			*repairs = append(*repairs, Repair{Location: "workflow", Field: "tags", From: item})

			continue
		}

		tagID, _ := asString(tm["id"])

		tags = append(tags, models.Tag{ID: tagID, Name: tagName})
	}

	if len(tags) == 0 {
		return nil
	}

	return tags
}
