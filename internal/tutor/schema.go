package tutor

import "github.com/abhisek/vidya/internal/llm"

// ExplanationSchema defines the JSON schema for tutor explanations.
var ExplanationSchema = &llm.Schema{
	Name:        "tutor-explanation",
	Description: "A short explanation of why an answer is right or wrong",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"explanation": map[string]any{
				"type":        "string",
				"description": "One or two simple sentences with a helpful analogy",
			},
		},
		"required":             []any{"explanation"},
		"additionalProperties": false,
	},
}
