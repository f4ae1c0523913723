// Package validation checks request bodies against the todo JSON schemas.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/ytakahashi/todo-api/internal/models"
)

const createSchema = `{
	"type": "object",
	"properties": {
		"title": {"type": "string"},
		"description": {"type": ["string", "null"]},
		"priority": {"type": "integer"}
	},
	"required": ["title"],
	"additionalProperties": false
}`

const updateSchema = `{
	"type": "object",
	"properties": {
		"title": {"type": "string"},
		"description": {"type": ["string", "null"]},
		"priority": {"type": "integer"}
	},
	"additionalProperties": false
}`

var (
	compiledCreate = jsonschema.MustCompileString("todo_create.json", createSchema)
	compiledUpdate = jsonschema.MustCompileString("todo_update.json", updateSchema)
)

// FieldError describes a single invalid field in a request body.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error carries field-level detail for an invalid request body.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = fmt.Sprintf("%s: %s", f.Field, f.Message)
	}
	return "invalid request body: " + strings.Join(msgs, "; ")
}

// DecodeCreate parses and validates a create-todo body.
func DecodeCreate(r io.Reader) (*models.TodoCreate, error) {
	var req models.TodoCreate
	if _, err := decode(r, compiledCreate, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

// DecodeUpdate parses and validates a partial-update body. An explicit
// "description": null and an absent description key both leave the pointer
// nil, so presence is taken from the decoded body's keys.
func DecodeUpdate(r io.Reader) (*models.TodoUpdate, error) {
	var req models.TodoUpdate
	body, err := decode(r, compiledUpdate, &req)
	if err != nil {
		return nil, err
	}
	_, req.DescriptionSet = body["description"]
	return &req, nil
}

func decode(r io.Reader, schema *jsonschema.Schema, dst interface{}) (map[string]interface{}, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read request body: %w", err)
	}

	var body interface{}
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, &Error{Fields: []FieldError{{Field: "body", Message: "invalid JSON: " + err.Error()}}}
	}

	if err := schema.Validate(body); err != nil {
		if ve, ok := err.(*jsonschema.ValidationError); ok {
			return nil, &Error{Fields: collectFieldErrors(ve)}
		}
		return nil, err
	}

	// The schema can pass values encoding/json rejects for the Go types,
	// e.g. 2.0 or 1e99 for an int field. Still a client error.
	if err := json.Unmarshal(data, dst); err != nil {
		field := "body"
		var ute *json.UnmarshalTypeError
		if errors.As(err, &ute) && ute.Field != "" {
			field = ute.Field
		}
		return nil, &Error{Fields: []FieldError{{Field: field, Message: "invalid value: " + err.Error()}}}
	}

	obj, _ := body.(map[string]interface{})
	return obj, nil
}

// collectFieldErrors walks a validation error tree and gathers its leaves.
func collectFieldErrors(ve *jsonschema.ValidationError) []FieldError {
	if len(ve.Causes) == 0 {
		return []FieldError{{
			Field:   pointerToField(ve.InstanceLocation),
			Message: ve.Message,
		}}
	}
	var fields []FieldError
	for _, cause := range ve.Causes {
		fields = append(fields, collectFieldErrors(cause)...)
	}
	return fields
}

// pointerToField turns a JSON pointer like "/priority" into a field name.
// Errors at the body root (missing required, unknown property) map to "body".
func pointerToField(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return "body"
	}
	part := strings.SplitN(ptr, "/", 2)[0]
	part = strings.ReplaceAll(part, "~1", "/")
	part = strings.ReplaceAll(part, "~0", "~")
	return part
}
