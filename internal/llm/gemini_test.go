package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-3-flash-preview"},
		{"gemini-pro", "gemini-3-pro-preview"},
		{"gemini-2.5-flash", "gemini-2.5-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id":       map[string]any{"type": "string"},
				"question": map[string]any{"type": "string"},
				"options": map[string]any{
					"type":     "array",
					"items":    map[string]any{"type": "string"},
					"minItems": 4,
					"maxItems": 4,
				},
				"correctAnswer": map[string]any{"type": "integer"},
			},
			"required": []any{"id", "question", "options", "correctAnswer"},
		},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "ARRAY" {
		t.Fatalf("expected ARRAY type, got %s", schema.Type)
	}
	item := schema.Items
	if item == nil || item.Type != "OBJECT" {
		t.Fatalf("expected OBJECT items, got %+v", item)
	}
	if len(item.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(item.Properties))
	}
	if item.Properties["correctAnswer"].Type != "INTEGER" {
		t.Fatalf("expected INTEGER for correctAnswer, got %s", item.Properties["correctAnswer"].Type)
	}
	opts := item.Properties["options"]
	if opts.MinItems == nil || *opts.MinItems != 4 || opts.MaxItems == nil || *opts.MaxItems != 4 {
		t.Fatalf("expected options bounded to 4 items, got min=%v max=%v", opts.MinItems, opts.MaxItems)
	}
	if len(item.Required) != 4 {
		t.Fatalf("expected 4 required fields, got %d", len(item.Required))
	}
	if item.PropertyOrdering[0] != "id" {
		t.Fatalf("expected property ordering to follow required, got %v", item.PropertyOrdering)
	}
}

func TestIntKeyword(t *testing.T) {
	def := map[string]any{"a": 3, "b": float64(7), "c": "x"}
	if n, ok := intKeyword(def, "a"); !ok || n != 3 {
		t.Errorf("int: got %d, %v", n, ok)
	}
	if n, ok := intKeyword(def, "b"); !ok || n != 7 {
		t.Errorf("float64: got %d, %v", n, ok)
	}
	if _, ok := intKeyword(def, "c"); ok {
		t.Error("string keyword should not parse")
	}
	if _, ok := intKeyword(def, "missing"); ok {
		t.Error("missing keyword should not parse")
	}
}
