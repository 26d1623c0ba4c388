package store

import (
	"encoding/json"
	"fmt"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// documentSchemaJSON describes the persisted task document. Load
// validates files against it before trusting their contents, so a
// structurally broken file fails up front instead of producing a
// half-populated list.
const documentSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["next_id", "tasks"],
  "properties": {
    "version": {"type": "string"},
    "last_modified": {"type": "string"},
    "next_id": {"type": "integer", "minimum": 1},
    "tasks": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "title", "status", "priority"],
        "properties": {
          "id": {"type": "integer", "minimum": 1},
          "title": {"type": "string", "minLength": 1},
          "status": {"enum": ["pending", "completed"]},
          "priority": {"enum": ["low", "medium", "high"]},
          "tags": {"type": ["array", "null"], "items": {"type": "string"}},
          "project": {"type": ["string", "null"]},
          "created_at": {"type": "string"},
          "due_date": {"type": ["string", "null"]}
        }
      }
    }
  }
}`

var documentSchema = jsonschema.MustCompileString("tasks.schema.json", documentSchemaJSON)

// validateDocument parses raw file contents and checks them against the
// document schema.
func validateDocument(data []byte) error {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse document: %w", err)
	}
	if err := documentSchema.Validate(doc); err != nil {
		return fmt.Errorf("validate document: %w", err)
	}
	return nil
}
