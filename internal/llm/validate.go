package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// stopMaxTokens is the normalized stop reason every provider reports when
// the model ran out of output budget.
const stopMaxTokens = "max_tokens"

// compiledSchemas holds compiled response schemas keyed by Schema.Name.
// Names are fixed per process, so entries never go stale.
var compiledSchemas sync.Map // map[string]*jsonschema.Schema

// finishStructured is the single exit point for structured output. It
// strips the envelope when the request went out wrapped, checks the
// remaining document against req.Schema and returns it in the shape the
// caller asked for. Any failure after a max_tokens stop is reported as
// *ErrMaxTokensExceeded, since a cut-off body is the cause and not the
// schema.
func finishStructured(req Request, wrapped bool, content json.RawMessage, stopReason string) (json.RawMessage, error) {
	if req.Schema == nil {
		return content, nil
	}
	out, err := checkStructured(req.Schema, wrapped, content)
	if err != nil && stopReason == stopMaxTokens {
		return nil, &ErrMaxTokensExceeded{Content: content}
	}
	return out, err
}

// validateResponse checks an unwrapped document against schema. A nil
// schema accepts anything.
func validateResponse(schema *Schema, raw json.RawMessage) error {
	if schema == nil {
		return nil
	}
	_, err := checkStructured(schema, false, raw)
	return err
}

// checkStructured decodes content once and validates it. Every failure is
// an *ErrInvalidResponse carrying the raw body for logging.
func checkStructured(schema *Schema, wrapped bool, content json.RawMessage) (json.RawMessage, error) {
	invalid := func(format string, args ...any) error {
		return &ErrInvalidResponse{Content: content, Err: fmt.Errorf(format, args...)}
	}

	body := content
	if wrapped {
		var env map[string]json.RawMessage
		if err := json.Unmarshal(content, &env); err != nil {
			return nil, invalid("invalid JSON envelope: %w", err)
		}
		inner, ok := env[envelopeKey]
		if !ok {
			return nil, invalid("envelope missing %q", envelopeKey)
		}
		body = inner
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(body))
	if err != nil {
		return nil, invalid("invalid JSON: %w", err)
	}

	compiled, err := compileSchema(schema)
	if err != nil {
		return nil, invalid("compile schema %q: %w", schema.Name, err)
	}
	if err := compiled.Validate(doc); err != nil {
		return nil, invalid("schema %q: %w", schema.Name, err)
	}
	return body, nil
}

// compileSchema returns the cached compiled form of schema, compiling it on
// first use. The definition is round-tripped through JSON because the
// compiler only accepts decoded JSON values, not Go slices like []string.
func compileSchema(schema *Schema) (*jsonschema.Schema, error) {
	if cached, ok := compiledSchemas.Load(schema.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	def, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal definition: %w", err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(def))
	if err != nil {
		return nil, fmt.Errorf("decode definition: %w", err)
	}

	url := "schema://" + schema.Name + ".json"
	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, err
	}

	compiledSchemas.Store(schema.Name, compiled)
	return compiled, nil
}
