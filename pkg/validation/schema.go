package validation

import (
	"github.com/xeipuuv/gojsonschema"
)

// envelopeSchema is a shallow shape gate run before the structural walk: the
// candidate must at least be an object with a non-empty name and a non-empty
// nodes array. Everything deeper is the validator's job.
const envelopeSchema = `{
	"type": "object",
	"required": ["name", "nodes"],
	"properties": {
		"name": {"type": "string", "minLength": 1},
		"nodes": {"type": "array", "minItems": 1}
	}
}`

var envelopeLoader = gojsonschema.NewStringLoader(envelopeSchema)

// checkEnvelope validates the candidate against the envelope schema and
// translates schema findings into validation issues.
func checkEnvelope(candidate any) []Issue {
	result, err := gojsonschema.Validate(envelopeLoader, gojsonschema.NewGoLoader(candidate))
	if err != nil {
		return []Issue{{
			Location: "workflow",
			Problem:  "candidate is not a JSON object: " + err.Error(),
		}}
	}

	if result.Valid() {
		return nil
	}

	issues := make([]Issue, 0, len(result.Errors()))

	for _, desc := range result.Errors() {
		location := desc.Field()
		if location == "(root)" {
			location = "workflow"
		}

		issues = append(issues, Issue{
			Location: location,
			Problem:  desc.Description(),
		})
	}

	return issues
}
