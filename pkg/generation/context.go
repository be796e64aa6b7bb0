package generation

import (
	"fmt"
	"strings"

	"github.com/weftlabs/weft/pkg/catalog"
	"github.com/weftlabs/weft/pkg/recipes"
)

const conversationSystemPrompt = `You are an automation consultant. Help the user describe the workflow they
need: which event starts it, which services it touches, and what each step
should do. Ask focused questions until the requirements are clear, then
summarize the planned workflow and ask for confirmation.`

const workflowSystemPrompt = `You are a workflow generator. Output a single JSON object describing the
workflow: {"name": string, "nodes": [...], "connections": {...}, "settings": {...}}.
Each node needs name, type, typeVersion, position and parameters. Connections
map a source node name to {"main": [[{"node": target, "type": "main", "index": 0}]]}.
Use only node types from the vocabulary below. The first node must be a
trigger. Only If and Switch nodes may declare more than one main output branch.
Never emit an empty edge-list. Respond with JSON only, no prose.`

const maxContextRecipes = 3

// buildSystemPrompt assembles the mode's base instruction with vocabulary
// knowledge and, for workflow mode, ranked recipe exemplars.
func buildSystemPrompt(mode Mode, snapshot *catalog.Snapshot, ranked []recipes.ScoredRecipe) string {
	var b strings.Builder

	if mode == ModeWorkflow {
		b.WriteString(workflowSystemPrompt)
	} else {
		b.WriteString(conversationSystemPrompt)
	}

	b.WriteString("\n\n")
	writeVocabularySection(&b, snapshot)

	if mode == ModeWorkflow && len(ranked) > 0 {
		writeRecipeSection(&b, ranked)
	}

	return b.String()
}

func writeVocabularySection(b *strings.Builder, snapshot *catalog.Snapshot) {
	b.WriteString("AVAILABLE NODE TYPES\n")

	for _, category := range []catalog.Category{
		catalog.CategoryTrigger,
		catalog.CategoryBranching,
		catalog.CategoryAction,
		catalog.CategoryLangChain,
	} {
		entries := snapshot.EntriesByCategory(category)
		if len(entries) == 0 {
			continue
		}

		fmt.Fprintf(b, "\n%s:\n", strings.ToUpper(string(category)))

		for _, entry := range entries {
			fmt.Fprintf(b, "- %s (%s)\n", entry.Type, entry.DisplayName)
		}
	}
}

func writeRecipeSection(b *strings.Builder, ranked []recipes.ScoredRecipe) {
	b.WriteString("\nSIMILAR EXISTING WORKFLOWS\n")

	limit := min(len(ranked), maxContextRecipes)

	for _, scored := range ranked[:limit] {
		recipe := scored.Recipe

		fmt.Fprintf(b, "- %s: %s (nodes: %s)\n",
			recipe.Name,
			recipe.Description,
			strings.Join(recipe.NodeTypes, ", "))
	}
}
