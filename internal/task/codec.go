package task

import (
	"encoding/json"
	"fmt"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// TasksKey is the persistence key for the serialized task collection.
const TasksKey = "modern_todos"

// tasksSchema validates the persisted task array. Anything that fails
// the schema is treated the same as a missing blob.
const tasksSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "text", "completed", "priority", "createdAt"],
    "properties": {
      "id": {"type": "integer"},
      "text": {"type": "string", "minLength": 1},
      "completed": {"type": "boolean"},
      "priority": {"enum": ["low", "medium", "high"]},
      "createdAt": {"type": "string"}
    }
  }
}`

var compiledSchema = jsonschema.MustCompileString("tasks.schema.json", tasksSchema)

// EncodeTasks serializes the collection for storage. A nil collection
// encodes as an empty array so the stored blob always round-trips.
func EncodeTasks(tasks []Task) ([]byte, error) {
	if tasks == nil {
		tasks = []Task{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return nil, fmt.Errorf("marshal tasks: %w", err)
	}
	return data, nil
}

// DecodeTasks parses and validates a stored task array. An error means
// the blob is corrupt; callers fall back to an empty collection.
func DecodeTasks(data []byte) ([]Task, error) {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse tasks: %w", err)
	}
	if err := compiledSchema.Validate(raw); err != nil {
		return nil, fmt.Errorf("validate tasks: %w", err)
	}

	var tasks []Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("parse tasks: %w", err)
	}
	return tasks, nil
}
