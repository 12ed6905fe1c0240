package extract

import (
	"bytes"
	"encoding/json"

	"github.com/rotisserie/eris"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// NamesJSONSchema returns the structured-output contract declared to the
// model: an object with a "names" array of name-part objects. All four parts
// are declared so strict backends emit every key; middle_name and suffix are
// nullable to keep the does-not-apply state distinct from empty string.
func NamesJSONSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"names": map[string]any{
				"type":  "array",
				"items": nameItemSchema(true),
			},
		},
		"required": []string{"names"},
	}
}

// namesRecoverySchema is the lenient shape used to validate recovered JSON.
// It checks only the envelope: an object with a "names" array of typed
// objects. Required-field enforcement happens per record in ParseNames so one
// bad record cannot fail the batch.
func namesRecoverySchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"names": map[string]any{
				"type":  "array",
				"items": nameItemSchema(false),
			},
		},
		"required": []string{"names"},
	}
}

func nameItemSchema(strict bool) map[string]any {
	item := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"first_name":  map[string]any{"type": "string"},
			"last_name":   map[string]any{"type": "string"},
			"middle_name": map[string]any{"type": []string{"string", "null"}},
			"suffix":      map[string]any{"type": []string{"string", "null"}},
		},
	}
	if strict {
		item["additionalProperties"] = false
		item["required"] = []string{"first_name", "last_name", "middle_name", "suffix"}
	}
	return item
}

// validateAgainstSchema validates data against schemaMap.
func validateAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return eris.Wrap(err, "extract: marshal schema")
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("names.json", bytes.NewReader(b)); err != nil {
		return eris.Wrap(err, "extract: add schema resource")
	}
	schema, err := compiler.Compile("names.json")
	if err != nil {
		return eris.Wrap(err, "extract: compile schema")
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return eris.Wrap(err, "extract: unmarshal for validation")
	}
	if err := schema.Validate(v); err != nil {
		return eris.Wrap(err, "extract: response does not match names schema")
	}
	return nil
}
