package llm

// envelopeKey is the property a non-object schema is nested under for
// providers whose structured output requires an object at the root.
const envelopeKey = "result"

// wrapSchema returns a schema whose root is an object. Object schemas are
// returned unchanged with wrapped=false. Anything else (the question list is
// an array) is nested under envelopeKey.
func wrapSchema(s *Schema) (out *Schema, wrapped bool) {
	if s == nil {
		return nil, false
	}
	if t, _ := s.Definition["type"].(string); t == "object" {
		return s, false
	}
	return &Schema{
		Name:        s.Name + "-envelope",
		Description: s.Description,
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				envelopeKey: s.Definition,
			},
			"required":             []any{envelopeKey},
			"additionalProperties": false,
		},
	}, true
}
