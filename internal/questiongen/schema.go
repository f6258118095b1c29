package questiongen

import "github.com/abhisek/probace/internal/llm"

// QuestionSchema defines the JSON schema for LLM question generation responses.
var QuestionSchema = &llm.Schema{
	Name:        "probability-question",
	Description: "A single multiple-choice probability question with explanation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"scenario": map[string]any{
				"type":        "string",
				"description": "A short, clear description of a probability problem.",
			},
			"question": map[string]any{
				"type":        "string",
				"description": "The specific question the user needs to answer based on the scenario.",
			},
			"options": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"text": map[string]any{
							"type":        "string",
							"description": "The answer option text.",
						},
						"isCorrect": map[string]any{
							"type":        "boolean",
							"description": "Indicates if this is the correct answer.",
						},
					},
					"required":             []any{"text", "isCorrect"},
					"additionalProperties": false,
				},
				"description": "An array of exactly four answer options.",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "A detailed but easy-to-understand explanation of why the correct answer is right.",
			},
		},
		"required":             []any{"scenario", "question", "options", "explanation"},
		"additionalProperties": false,
	},
}
