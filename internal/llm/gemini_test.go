package llm

import (
	"testing"

	"google.golang.org/genai"
)

func TestGeminiModelAliases(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"gemini-flash", "gemini-2.5-flash"},
		{"gemini-lite", "gemini-2.5-flash-lite"},
		{"gemini-2.0-flash", "gemini-2.0-flash"},
	}
	for _, tt := range tests {
		if got := resolveModel(tt.input, geminiModels); got != tt.want {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestGeminiSchema_CoachNote(t *testing.T) {
	s := geminiSchema(noteSchemaForTest())

	if s.Type != genai.TypeObject {
		t.Fatalf("type = %s, want OBJECT", s.Type)
	}
	if len(s.Properties) != 3 {
		t.Fatalf("got %d properties, want 3", len(s.Properties))
	}
	tips := s.Properties["focus_tips"]
	if tips.Type != genai.TypeArray || tips.Items.Type != genai.TypeString {
		t.Fatalf("focus_tips = %s of %s, want ARRAY of STRING", tips.Type, tips.Items.Type)
	}
	if tips.MaxItems == nil || *tips.MaxItems != 4 {
		t.Fatalf("focus_tips maxItems = %v, want 4", tips.MaxItems)
	}
	if len(s.Required) != 2 {
		t.Fatalf("required = %v, want 2 entries", s.Required)
	}
}

func TestGeminiSchema_DecodedJSON(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"level": map[string]any{"type": "string", "enum": []any{"weak", "moderate", "strong"}},
			"score": map[string]any{"type": "integer"},
		},
		"required": []any{"level"},
	}
	s := geminiSchema(def)
	if got := len(s.Properties["level"].Enum); got != 3 {
		t.Fatalf("enum has %d values, want 3", got)
	}
	if s.Properties["score"].Type != genai.TypeInteger {
		t.Fatalf("score type = %s, want INTEGER", s.Properties["score"].Type)
	}
	if len(s.Required) != 1 {
		t.Fatalf("required = %v", s.Required)
	}
}

func noteSchemaForTest() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary":    map[string]any{"type": "string"},
			"focus_tips": map[string]any{"type": "array", "items": map[string]any{"type": "string"}, "maxItems": 4},
			"warning":    map[string]any{"type": "string"},
		},
		"required":             []string{"summary", "focus_tips"},
		"additionalProperties": false,
	}
}
