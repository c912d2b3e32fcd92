package badge

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildContactJSONSchema returns a JSON-Schema (draft 2020-12 subset) for the
// extracted-contact shape. The pipeline validates contacts against it before
// persisting; only name is required.
func BuildContactJSONSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"name":    map[string]any{"type": "string", "minLength": 1, "maxLength": maxNameLen},
			"company": map[string]any{"type": "string", "maxLength": maxCompanyLen},
			"title":   map[string]any{"type": "string", "maxLength": maxTitleLen},
			"email": map[string]any{
				"type":    "string",
				"pattern": `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`,
			},
			"phone": map[string]any{"type": "string", "maxLength": maxPhoneLen},
		},
		"required": []string{"name"},
	}
}

// ValidateContactJSON validates "data" against the contact schema.
func ValidateContactJSON(data []byte) error {
	b, err := json.Marshal(BuildContactJSONSchema())
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("contact.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("contact.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("contact does not match schema: %w", err)
	}
	return nil
}
