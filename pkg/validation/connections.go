package validation

import (
	"fmt"
	"sort"

	"github.com/weftlabs/weft/pkg/catalog"
	"github.com/weftlabs/weft/pkg/models"
)

// normalizeConnections rebuilds the connection map: malformed edges are
// filtered with a repair record, empty edge-lists are dropped as equivalent to
// no connection, and topology violations (unknown endpoints, non-branching
// fan-out) are fatal.
func (v *Validator) normalizeConnections(raw any, nodes []*models.Node, repairs *[]Repair) (models.Connections, []Issue) {
	connections := make(models.Connections)

	rawMap, ok := asMap(raw)
	if !ok {
		if raw != nil {
			*repairs = append(*repairs, Repair{Location: "workflow", Field: "connections", From: raw})
		}

		return connections, nil
	}

	nodeByName := make(map[string]*models.Node, len(nodes))
	for _, node := range nodes {
		nodeByName[node.Name] = node
	}

	var issues []Issue

	// Sources are visited in node order, unknown sources last, so issue and
	// repair lists are stable across runs.
	for _, source := range orderedSources(rawMap, nodes) {
		rawOutputs := rawMap[source]

		sourceNode, known := nodeByName[source]
		if !known {
			issues = append(issues, Issue{
				Location: fmt.Sprintf("connections.%s", source),
				Problem:  "connection source does not match any node",
			})

			continue
		}

		outputsMap, ok := asMap(rawOutputs)
		if !ok {
			*repairs = append(*repairs, Repair{
				Location: fmt.Sprintf("connections.%s", source), Field: "outputs", From: rawOutputs,
			})

			continue
		}

		branches, branchIssues := v.normalizeBranches(source, outputsMap, nodeByName, repairs)
		issues = append(issues, branchIssues...)

		if len(branches) == 0 {
			continue
		}

		// Single-output rule: fan-out on main is reserved for branching nodes
		// and nodes that route failures to a dedicated error output. Anything
		// else produces undefined behavior in the execution engine.
		if len(branches) > 1 && !v.mayFanOut(sourceNode) {
			issues = append(issues, Issue{
				Location: fmt.Sprintf("connections.%s", source),
				Problem: fmt.Sprintf("node type %q declares %d main output branches but is not a branching node",
					sourceNode.Type, len(branches)),
				Suggestion: catalog.IfType,
			})

			continue
		}

		connections[source] = &models.NodeOutputs{Main: branches}
	}

	if len(issues) > 0 {
		return nil, issues
	}

	return connections, nil
}

// orderedSources lists the connection map's keys in node-declaration order,
// with sources naming no node sorted at the end.
func orderedSources(rawMap map[string]any, nodes []*models.Node) []string {
	sources := make([]string, 0, len(rawMap))

	for _, node := range nodes {
		if _, present := rawMap[node.Name]; present {
			sources = append(sources, node.Name)
		}
	}

	unknown := make([]string, 0)

	for source := range rawMap {
		found := false

		for _, node := range nodes {
			if node.Name == source {
				found = true

				break
			}
		}

		if !found {
			unknown = append(unknown, source)
		}
	}

	sort.Strings(unknown)

	return append(sources, unknown...)
}

// normalizeBranches filters one source's main edge-lists. Channels other than
// main are dropped with a repair record; generation never emits them.
func (v *Validator) normalizeBranches(
	source string,
	outputsMap map[string]any,
	nodeByName map[string]*models.Node,
	repairs *[]Repair,
) ([][]models.Edge, []Issue) {
	location := fmt.Sprintf("connections.%s", source)

	channels := make([]string, 0, len(outputsMap))
	for channel := range outputsMap {
		channels = append(channels, channel)
	}

	sort.Strings(channels)

	for _, channel := range channels {
		if channel != models.ChannelMain {
			*repairs = append(*repairs, Repair{
				Location: location, Field: "channel", From: channel,
			})
		}
	}

	rawMain, present := outputsMap[models.ChannelMain]
	if !present {
		return nil, nil
	}

	mainList, ok := asSlice(rawMain)
	if !ok {
		*repairs = append(*repairs, Repair{Location: location, Field: "main", From: rawMain})

		return nil, nil
	}

	var issues []Issue

	branches := make([][]models.Edge, 0, len(mainList))

	for branchIndex, rawBranch := range mainList {
		branchLocation := fmt.Sprintf("%s.main[%d]", location, branchIndex)

		branchList, ok := asSlice(rawBranch)
		if !ok {
			*repairs = append(*repairs, Repair{Location: branchLocation, Field: "branch", From: rawBranch})

			continue
		}

		edges := make([]models.Edge, 0, len(branchList))

		for _, rawEdge := range branchList {
			edge, edgeIssue, ok := v.normalizeEdge(branchLocation, rawEdge, nodeByName, repairs)
			if !ok {
				continue
			}

			if edgeIssue != nil {
				issues = append(issues, *edgeIssue)

				continue
			}

			edges = append(edges, edge)
		}

		// An explicitly empty edge-list is treated as no connection at all:
		// the execution engine crashes on dangling branch entries.
		if len(edges) == 0 {
			*repairs = append(*repairs, Repair{Location: branchLocation, Field: "branch", From: rawBranch})

			continue
		}

		branches = append(branches, edges)
	}

	return branches, issues
}

// normalizeEdge coerces one edge's shape. Edges without a target are dropped
// (repair); edges pointing at unknown nodes are fatal.
func (v *Validator) normalizeEdge(
	location string,
	rawEdge any,
	nodeByName map[string]*models.Node,
	repairs *[]Repair,
) (models.Edge, *Issue, bool) {
	edgeMap, ok := asMap(rawEdge)
	if !ok {
		*repairs = append(*repairs, Repair{Location: location, Field: "edge", From: rawEdge})

		return models.Edge{}, nil, false
	}

	target, _ := asString(edgeMap["node"])
	if target == "" {
		*repairs = append(*repairs, Repair{Location: location, Field: "edge", From: rawEdge})

		return models.Edge{}, nil, false
	}

	if _, known := nodeByName[target]; !known {
		return models.Edge{}, &Issue{
			Location: location,
			Problem:  fmt.Sprintf("edge targets unknown node %q", target),
		}, true
	}

	edge := models.Edge{Node: target, Type: models.ChannelMain, Index: 0}

	if edgeType, ok := asString(edgeMap["type"]); !ok || edgeType != models.ChannelMain {
		*repairs = append(*repairs, Repair{
			Location: location, Field: "edge.type", From: edgeMap["type"], To: models.ChannelMain,
		})
	}

	if index, ok := asNumber(edgeMap["index"]); ok && index >= 0 {
		edge.Index = int(index)
	} else if edgeMap["index"] != nil {
		*repairs = append(*repairs, Repair{
			Location: location, Field: "edge.index", From: edgeMap["index"], To: 0,
		})
	}

	return edge, nil, true
}

// mayFanOut reports whether a node may declare multiple main edge-lists.
func (v *Validator) mayFanOut(node *models.Node) bool {
	return v.snapshot.CategoryOf(node.Type) == catalog.CategoryBranching || node.ContinuesOnErrorOutput()
}
