// Package recipes scores a static library of workflow templates against a
// free-text query to furnish few-shot context for generation.
package recipes

// Recipe is one indexed workflow template record, consumed read-only.
type Recipe struct {
	ID                string   `json:"id"           validate:"required"`
	Name              string   `json:"name"         validate:"required"`
	Description       string   `json:"description,omitempty"`
	NodeDisplays      []string `json:"nodeDisplays"`
	NodeTypes         []string `json:"nodeTypes"`
	Credentials       []string `json:"credentials"`
	HasCronTrigger    bool     `json:"hasCronTrigger"`
	HasWebhookTrigger bool     `json:"hasWebhookTrigger"`
	NodesCount        int      `json:"nodesCount"`
}

// ScoredRecipe pairs a recipe with its relevance score for one query.
type ScoredRecipe struct {
	Recipe Recipe  `json:"recipe"`
	Score  float64 `json:"score"`
}
