// Package extraction isolates the workflow JSON object inside raw generator
// output, tolerating markdown fencing and surrounding prose.
package extraction

import (
	"errors"
	"fmt"
	"strings"
)

// minContentLength rejects output too short to plausibly hold a workflow.
const minContentLength = 50

// Typed extraction failures; never retried here, retry policy belongs to the
// caller.
var (
	ErrNoJSONObject    = errors.New("no JSON object found in model output")
	ErrModelDeclined   = errors.New("model declined to produce a workflow")
	ErrContentTooShort = errors.New("model output too short to contain a workflow")
)

// Error wraps an extraction failure with a snippet of the offending output.
type Error struct {
	Err     error
	Snippet string
}

func (e *Error) Error() string {
	return fmt.Sprintf("extraction failed: %v", e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// declinePhrases flag output that is an apology or error report rather than a
// workflow; surfacing these directly beats a JSON syntax error downstream.
var declinePhrases = []string{
	"i'm sorry",
	"i am sorry",
	"i apologize",
	"i cannot",
	"i can't",
	"unable to",
	"no response received",
	"no response generated",
	"error",
}

// Extract returns the best-effort single JSON object substring of raw model
// output. It is a pure string transformation: it guarantees a brace-delimited
// slice, not parseable JSON.
func Extract(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)

	if len(trimmed) < minContentLength {
		return "", &Error{Err: ErrContentTooShort, Snippet: snippet(trimmed)}
	}

	if declined(trimmed) {
		return "", &Error{Err: ErrModelDeclined, Snippet: snippet(trimmed)}
	}

	trimmed = stripFences(trimmed)
	trimmed = strings.Trim(trimmed, "`'\" \n\t\r")

	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")

	if start < 0 || end < 0 || end < start {
		return "", &Error{Err: ErrNoJSONObject, Snippet: snippet(trimmed)}
	}

	return trimmed[start : end+1], nil
}

// declined reports whether the output looks like a refusal or error message
// instead of a workflow. Only triggered when no JSON structure leads.
func declined(s string) bool {
	lower := strings.ToLower(s)

	if strings.HasPrefix(lower, "{") || strings.HasPrefix(lower, "```") {
		return false
	}

	for _, phrase := range declinePhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}

	return false
}

// stripFences removes leading/trailing markdown code fences, with or without
// a language tag.
func stripFences(s string) string {
	if strings.HasPrefix(s, "```") {
		if newline := strings.Index(s, "\n"); newline >= 0 {
			s = s[newline+1:]
		} else {
			s = strings.TrimPrefix(s, "```")
		}
	}

	s = strings.TrimSpace(s)

	if strings.HasSuffix(s, "```") {
		s = strings.TrimSuffix(s, "```")
		s = strings.TrimSpace(s)
	}

	return s
}

func snippet(s string) string {
	const max = 120

	if len(s) <= max {
		return s
	}

	return s[:max] + "..."
}
