package runtimeconfig

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// ruleSchema constrains the rule settings map: only known option keys are
// accepted per rule and option values must be in range. The document validated
// here is the JSON projection of LintConfig.Rules.
const ruleSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "propertyNames": {"pattern": "^MD[0-9]{3}$"},
  "additionalProperties": {"$ref": "#/$defs/rule"},
  "properties": {
    "MD010": {"$ref": "#/$defs/rule", "properties": {"options": {"type": "object", "additionalProperties": false, "properties": {"spaces_per_tab": {"type": "integer", "minimum": 1, "maximum": 8}}}}},
    "MD012": {"$ref": "#/$defs/rule", "properties": {"options": {"type": "object", "additionalProperties": false, "properties": {"maximum": {"type": "integer", "minimum": 1}}}}},
    "MD013": {"$ref": "#/$defs/rule", "properties": {"options": {"type": "object", "additionalProperties": false, "properties": {"line_length": {"type": "integer", "minimum": 1}}}}},
    "MD041": {"$ref": "#/$defs/rule", "properties": {"options": {"type": "object", "additionalProperties": false, "properties": {"level": {"type": "integer", "minimum": 1, "maximum": 6}}}}}
  },
  "$defs": {
    "rule": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "enabled": {"type": "boolean"},
        "options": {"type": "object"}
      }
    }
  }
}`

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func compiledRuleSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource("rules.json", bytes.NewReader([]byte(ruleSchema))); err != nil {
			compileErr = err
			return
		}
		compiledSchema, compileErr = compiler.Compile("rules.json")
	})
	return compiledSchema, compileErr
}

func validateRuleSettings(rules map[string]RuleSettings) error {
	if len(rules) == 0 {
		return nil
	}

	schema, err := compiledRuleSchema()
	if err != nil {
		return fmt.Errorf("compile rule schema: %w", err)
	}

	// Round-trip through JSON so the instance uses the types the validator
	// expects (float64 numbers, map[string]any objects).
	projection := make(map[string]any, len(rules))
	for id, settings := range rules {
		entry := map[string]any{"enabled": settings.Enabled}
		if settings.Options != nil {
			entry["options"] = settings.Options
		}
		projection[id] = entry
	}
	encoded, err := json.Marshal(projection)
	if err != nil {
		return err
	}
	var instance any
	if err := json.Unmarshal(encoded, &instance); err != nil {
		return err
	}

	return schema.Validate(instance)
}
