// Package schema provides JSON Schema compilation and validation for tools
// that accept structured JSON input.
//
// # Quick Start
//
//	type lookupTool struct{ ... }
//
//	func (t *lookupTool) InputSchema() map[string]any {
//	    return schema.Object(map[string]*schema.Property{
//	        "order_id": schema.String("Order ID to look up"),
//	        "limit":    schema.Integer("Max results"),
//	    }, "order_id") // "order_id" is required
//	}
//
// The tool registry compiles the schema at registration time and the loop
// validates JSON action inputs against it before dispatch.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema is a compiled JSON Schema. It keeps both the raw map representation
// (for serialization and prompts) and the compiled validator.
type Schema struct {
	raw      map[string]any
	compiled *jsonschema.Schema
}

// Raw returns the underlying map[string]any representation.
func (s *Schema) Raw() map[string]any {
	if s == nil {
		return nil
	}
	return s.raw
}

// Validate validates the given data against the schema.
// Returns nil if valid, or a [ValidationError] describing the failure.
func (s *Schema) Validate(data map[string]any) error {
	if s == nil || s.compiled == nil {
		return nil
	}
	// The validator expects values as decoded from JSON, so round-trip the
	// map to normalize numeric types.
	normalized, err := normalize(data)
	if err != nil {
		return fmt.Errorf("normalize input: %w", err)
	}
	if err := s.compiled.Validate(normalized); err != nil {
		return &ValidationError{Err: err}
	}
	return nil
}

// ValidationError wraps a JSON Schema validation failure.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("schema validation failed: %v", e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Compile compiles a raw schema map into a Schema with a compiled validator.
// Returns (nil, nil) for a nil map, so optional schemas pass through.
func Compile(raw map[string]any) (*Schema, error) {
	if raw == nil {
		return nil, nil
	}

	schemaJSON, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema.json", doc); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	compiled, err := c.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}

	return &Schema{raw: raw, compiled: compiled}, nil
}

// MustCompile is like Compile but panics on error.
// Use for schemas defined at init time.
func MustCompile(raw map[string]any) *Schema {
	s, err := Compile(raw)
	if err != nil {
		panic(err)
	}
	return s
}

// normalize round-trips a value through JSON so the validator sees the same
// types json.Unmarshal produces (float64 numbers, map[string]any objects).
func normalize(data map[string]any) (any, error) {
	encoded, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(encoded, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// -----------------------------------------------------------------------------
// Schema Builders
// -----------------------------------------------------------------------------

// Object creates an object schema with the given properties.
// Pass property names as variadic arguments to mark them as required.
func Object(properties map[string]*Property, required ...string) map[string]any {
	props := make(map[string]any, len(properties))
	for name, prop := range properties {
		props[name] = prop.build()
	}

	out := map[string]any{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		out["required"] = required
	}
	return out
}

// Property is one property in an object schema.
type Property struct {
	typ         string
	description string
}

// String creates a string property with the given description.
func String(description string) *Property {
	return &Property{typ: "string", description: description}
}

// Integer creates an integer property with the given description.
func Integer(description string) *Property {
	return &Property{typ: "integer", description: description}
}

// Number creates a number property with the given description.
func Number(description string) *Property {
	return &Property{typ: "number", description: description}
}

// Boolean creates a boolean property with the given description.
func Boolean(description string) *Property {
	return &Property{typ: "boolean", description: description}
}

func (p *Property) build() map[string]any {
	out := map[string]any{"type": p.typ}
	if p.description != "" {
		out["description"] = p.description
	}
	return out
}
