// Package validation normalizes candidate workflow graphs into a form safe to
// submit to the downstream execution engine, repairing cosmetic defects and
// rejecting identity-affecting ones.
package validation

import (
	"errors"
	"fmt"
	"strings"
)

// Issue is one fatal validation finding with enough detail to be actionable.
type Issue struct {
	Location   string `json:"location"`
	Problem    string `json:"problem"`
	Suggestion string `json:"suggestion,omitempty"`
}

func (i Issue) String() string {
	if i.Suggestion != "" {
		return fmt.Sprintf("%s: %s (did you mean %q?)", i.Location, i.Problem, i.Suggestion)
	}

	return fmt.Sprintf("%s: %s", i.Location, i.Problem)
}

// Error is a batched validation failure: every node-type problem is collected
// before reporting so a caller can present them in a single pass.
type Error struct {
	Issues []Issue `json:"issues"`
}

func (e *Error) Error() string {
	if len(e.Issues) == 0 {
		return "workflow validation failed"
	}

	parts := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		parts[i] = issue.String()
	}

	return "workflow validation failed: " + strings.Join(parts, "; ")
}

// AsValidationError extracts the typed validation error, if any.
func AsValidationError(err error) (*Error, bool) {
	var target *Error

	ok := errors.As(err, &target)

	return target, ok
}

// Repair records one cosmetic field the validator silently corrected, so
// callers and tests can assert on what changed. Identity-affecting fields
// (node type, trigger presence, topology) are never repaired.
type Repair struct {
	Location string `json:"location"`
	Field    string `json:"field"`
	From     any    `json:"from,omitempty"`
	To       any    `json:"to,omitempty"`
}
