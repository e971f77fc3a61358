package coach

import (
	"fmt"

	"github.com/abhisek/prepcoach/internal/llm"
)

// noteSchema builds the structured output schema. The tip limit is part of
// the name because compiled schemas are cached by name.
func noteSchema(maxTips int) *llm.Schema {
	return &llm.Schema{
		Name:        fmt.Sprintf("coach-note-%d", maxTips),
		Description: "Study advice for a candidate preparing for an admission test",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"summary": map[string]any{
					"type":        "string",
					"description": "2-4 sentences on where the candidate stands and what the plan prioritises",
				},
				"focus_tips": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"maxItems":    maxTips,
					"description": "Concrete, actionable tips (8-20 words each)",
				},
				"warning": map[string]any{
					"type":        "string",
					"description": "One sentence if the time budget is too tight, otherwise empty",
				},
			},
			"required":             []any{"summary", "focus_tips", "warning"},
			"additionalProperties": false,
		},
	}
}
