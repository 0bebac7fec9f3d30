package dataset

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://tide-dataset.json"

var resultSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"title":       map[string]any{"type": "string", "minLength": 1},
		"symbol":      map[string]any{"type": "string"},
		"description": map[string]any{"type": "string"},
		"guidance":    map[string]any{"type": "string"},
		"direction":   map[string]any{"type": "string"},
	},
	"required":             []any{"title", "symbol", "description", "guidance", "direction"},
	"additionalProperties": false,
}

var tagList = map[string]any{
	"type":     "array",
	"minItems": 1,
	"items":    map[string]any{"type": "string", "minLength": 1},
}

// documentSchema describes the shape of the quiz dataset. Cross-field rules
// (unique IDs, known traits) are checked separately in validate.go.
var documentSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"questions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":       map[string]any{"type": "integer", "minimum": 1},
					"prompt":   map[string]any{"type": "string", "minLength": 1},
					"subtitle": map[string]any{"type": "string"},
					"options": map[string]any{
						"type":     "array",
						"minItems": 1,
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"label":     map[string]any{"type": "string", "minLength": 1},
								"value":     map[string]any{"type": "string", "minLength": 1},
								"direction": map[string]any{"type": "integer", "minimum": 0, "exclusiveMaximum": 360},
							},
							"required":             []any{"label", "value", "direction"},
							"additionalProperties": false,
						},
					},
				},
				"required":             []any{"id", "prompt", "subtitle", "options"},
				"additionalProperties": false,
			},
		},
		"archetypes": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name":   map[string]any{"type": "string", "minLength": 1},
					"all":    tagList,
					"any":    tagList,
					"result": resultSchema,
				},
				"required": []any{"name", "result"},
				"oneOf": []any{
					map[string]any{"required": []any{"all"}},
					map[string]any{"required": []any{"any"}},
				},
				"additionalProperties": false,
			},
		},
		"fallback": resultSchema,
	},
	"required":             []any{"questions", "archetypes", "fallback"},
	"additionalProperties": false,
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// compiledSchema compiles documentSchema once.
func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants a decoded JSON value, so round-trip the Go literal.
		raw, err := json.Marshal(documentSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(raw, &def); err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// validateShape checks a decoded document against documentSchema.
func validateShape(doc any) error {
	sch, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	// Normalise YAML scalars into JSON types before validating.
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("decode document: %w", err)
	}

	if err := sch.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
