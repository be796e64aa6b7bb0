package recipes

import (
	"sort"
	"strings"
)

// Scoring weights. The node-count term mildly favors richer templates without
// letting size dominate keyword relevance.
const (
	displayMatchScore    = 5.0
	typeMatchScore       = 4.0
	credentialMatchScore = 3.0
	cronBonus            = 4.0
	webhookBonus         = 4.0
	verbScore            = 1.0
	nodeCountWeight      = 0.2
	nodeCountCap         = 10
)

// querySynonyms expands colloquial service names into the canonical display
// names used by the recipe index.
var querySynonyms = map[string][]string{
	"gsheets":      {"google sheets"},
	"gsheet":       {"google sheets"},
	"spreadsheet":  {"google sheets"},
	"sheet":        {"google sheets"},
	"mail":         {"send email", "gmail"},
	"e-mail":       {"send email"},
	"text message": {"twilio"},
	"sms":          {"twilio"},
	"db":           {"postgres"},
	"database":     {"postgres"},
	"issue":        {"github", "jira software"},
	"ticket":       {"jira software"},
	"card":         {"trello"},
	"crm":          {"hubspot"},
	"newsletter":   {"mailchimp"},
	"payment":      {"stripe"},
	"store":        {"shopify"},
	"chat":         {"slack"},
	"llm":          {"openai"},
	"gpt":          {"openai"},
	"ai":           {"openai"},
}

var scheduleHints = []string{
	"every day", "daily", "hourly", "every hour", "weekly", "every week",
	"each morning", "schedule", "cron", "periodically", "every monday",
}

var webhookHints = []string{
	"webhook", "api endpoint", "http endpoint", "incoming request",
	"when called", "on demand",
}

var verbPatterns = []string{"create", "update", "delete", "notify"}

// Ranker scores recipes against queries. It is a pure function of its
// constructor-injected indices; no side effects, no randomness.
type Ranker struct {
	recipes      []Recipe
	nodeDisplays []string
}

// NewRanker creates a ranker over a recipe index and the display names of the
// known node vocabulary.
func NewRanker(recipes []Recipe, nodeDisplays []string) *Ranker {
	return &Ranker{
		recipes:      recipes,
		nodeDisplays: nodeDisplays,
	}
}

// Rank scores every recipe against the query, filters out zero scores, and
// returns the topN best. Ties keep the stable input order.
func (r *Ranker) Rank(query string, topN int) []ScoredRecipe {
	if topN <= 0 {
		return nil
	}

	q := strings.ToLower(query)
	targets := r.targetKeywords(q)

	wantsCron := containsAny(q, scheduleHints)
	wantsWebhook := containsAny(q, webhookHints)

	verbHits := 0

	for _, verb := range verbPatterns {
		if strings.Contains(q, verb) {
			verbHits++
		}
	}

	scored := make([]ScoredRecipe, 0, len(r.recipes))

	for _, recipe := range r.recipes {
		score := r.score(recipe, targets, wantsCron, wantsWebhook, verbHits)
		if score > 0 {
			scored = append(scored, ScoredRecipe{Recipe: recipe, Score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > topN {
		scored = scored[:topN]
	}

	return scored
}

// targetKeywords builds the match set from the synonym table and from every
// node display name mentioned in the query.
func (r *Ranker) targetKeywords(query string) map[string]struct{} {
	targets := make(map[string]struct{})

	for hint, expansions := range querySynonyms {
		if strings.Contains(query, hint) {
			for _, expansion := range expansions {
				targets[expansion] = struct{}{}
			}
		}
	}

	for _, display := range r.nodeDisplays {
		lower := strings.ToLower(display)
		if lower != "" && strings.Contains(query, lower) {
			targets[lower] = struct{}{}
		}
	}

	return targets
}

func (r *Ranker) score(recipe Recipe, targets map[string]struct{}, wantsCron, wantsWebhook bool, verbHits int) float64 {
	var score float64

	if intersects(recipe.NodeDisplays, targets) {
		score += displayMatchScore
	}

	if intersects(recipe.NodeTypes, targets) {
		score += typeMatchScore
	}

	if intersects(recipe.Credentials, targets) {
		score += credentialMatchScore
	}

	if wantsCron && recipe.HasCronTrigger {
		score += cronBonus
	}

	if wantsWebhook && recipe.HasWebhookTrigger {
		score += webhookBonus
	}

	if score > 0 {
		score += float64(verbHits) * verbScore
		score += float64(min(recipe.NodesCount, nodeCountCap)) * nodeCountWeight
	}

	return score
}

// intersects reports whether any candidate value matches a target keyword,
// by equality or substring containment in either direction.
func intersects(values []string, targets map[string]struct{}) bool {
	for _, value := range values {
		lower := strings.ToLower(value)
		if lower == "" {
			continue
		}

		for target := range targets {
			if lower == target || strings.Contains(lower, target) || strings.Contains(target, lower) {
				return true
			}
		}
	}

	return false
}

func containsAny(s string, hints []string) bool {
	for _, hint := range hints {
		if strings.Contains(s, hint) {
			return true
		}
	}

	return false
}
