package generate

import "github.com/abhisek/quizdeck/internal/llm"

// QuestionsSchema defines the JSON schema for LLM question generation
// responses: an array of multiple-choice questions.
var QuestionsSchema = &llm.Schema{
	Name:        "quiz-questions",
	Description: "A batch of multiple-choice questions derived from study material",
	Definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id": map[string]any{
					"type":        "string",
					"description": "Question identifier, q1 through qN",
				},
				"question": map[string]any{
					"type":        "string",
					"description": "The question text shown to the learner",
				},
				"options": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"a": map[string]any{"type": "string"},
						"b": map[string]any{"type": "string"},
						"c": map[string]any{"type": "string"},
						"d": map[string]any{"type": "string"},
					},
					"required":             []any{"a", "b", "c", "d"},
					"additionalProperties": false,
					"description":          "Exactly four answer options keyed a through d",
				},
				"correctAnswer": map[string]any{
					"type":        "string",
					"enum":        []any{"a", "b", "c", "d"},
					"description": "The key of the correct option",
				},
				"explanation": map[string]any{
					"type":        "string",
					"description": "Brief explanation of why the correct answer is correct",
				},
				"topic": map[string]any{
					"type":        "string",
					"description": "The main topic of the material this question covers",
				},
				"difficulty": map[string]any{
					"type":        "string",
					"enum":        []any{"easy", "medium", "hard"},
					"description": "Difficulty of this individual question",
				},
			},
			"required":             []any{"question", "options", "correctAnswer", "explanation", "topic", "difficulty"},
			"additionalProperties": false,
		},
	},
}
