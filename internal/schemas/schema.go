package schemas

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Kind is the node type of a Schema
type Kind string

// Supported schema kinds
const (
	KindObject  Kind = "object"
	KindArray   Kind = "array"
	KindString  Kind = "string"
	KindNumber  Kind = "number"
	KindBoolean Kind = "boolean"
)

// Schema describes the expected shape of a structured response as a tree of typed nodes.
type Schema struct {
	Kind        Kind
	Description string
	Properties  map[string]*Schema
	Required    []string
	Items       *Schema
}

// Object returns an object node with the given properties and required field names.
func Object(properties map[string]*Schema, required ...string) *Schema {
	return &Schema{Kind: KindObject, Properties: properties, Required: required}
}

// Array returns an array node whose elements must match items. A nil items accepts any element.
func Array(items *Schema) *Schema {
	return &Schema{Kind: KindArray, Items: items}
}

// String returns a string node.
func String() *Schema { return &Schema{Kind: KindString} }

// Number returns a number node.
func Number() *Schema { return &Schema{Kind: KindNumber} }

// Boolean returns a boolean node.
func Boolean() *Schema { return &Schema{Kind: KindBoolean} }

// Describe sets the description and returns the same node.
func (s *Schema) Describe(description string) *Schema {
	s.Description = description
	return s
}

// IsStructuredObject reports whether s is an object node declaring at least one property
// or required field. Only such schemas can be used as a response format.
func (s *Schema) IsStructuredObject() bool {
	return s != nil && s.Kind == KindObject && (len(s.Properties) > 0 || len(s.Required) > 0)
}

// Validate checks value against the schema and returns every mismatch found.
// Required fields must be present, declared properties must agree in type and
// array elements must agree with the declared item type. Nested nodes are checked the same way.
func (s *Schema) Validate(value any) error {
	var errs []FieldError
	s.check(value, "", &errs)
	if len(errs) == 0 {
		return nil
	}
	return &ValidationError{Errors: errs}
}

func (s *Schema) check(value any, path string, errs *[]FieldError) {
	if s == nil {
		return
	}
	if !kindAgrees(s.Kind, value) {
		*errs = append(*errs, FieldError{
			Field:   fieldName(path),
			Message: fmt.Sprintf("expected %s, got %s", s.Kind, describe(value)),
		})
		return
	}

	switch s.Kind {
	case KindObject:
		obj := value.(map[string]any)
		for _, name := range s.Required {
			if _, ok := obj[name]; !ok {
				*errs = append(*errs, FieldError{
					Field:   fieldName(join(path, name)),
					Message: "required field is missing",
				})
			}
		}
		for _, name := range sortedKeys(s.Properties) {
			if v, ok := obj[name]; ok {
				s.Properties[name].check(v, join(path, name), errs)
			}
		}
	case KindArray:
		if s.Items == nil {
			return
		}
		for i, elem := range value.([]any) {
			s.Items.check(elem, fmt.Sprintf("%s[%d]", path, i), errs)
		}
	}
}

func kindAgrees(kind Kind, value any) bool {
	switch kind {
	case KindObject:
		_, ok := value.(map[string]any)
		return ok
	case KindArray:
		_, ok := value.([]any)
		return ok
	case KindString:
		_, ok := value.(string)
		return ok
	case KindBoolean:
		_, ok := value.(bool)
		return ok
	case KindNumber:
		switch value.(type) {
		case float64, float32, int, int32, int64, json.Number:
			return true
		}
		return false
	default:
		return true
	}
}

func describe(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, float32, int, int32, int64, json.Number:
		return "number"
	default:
		return fmt.Sprintf("%T", value)
	}
}

func join(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func fieldName(path string) string {
	if path == "" {
		return "(root)"
	}
	return path
}

func sortedKeys(m map[string]*Schema) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// JSONSchema renders the node as a JSON Schema document.
func (s *Schema) JSONSchema() map[string]any {
	out := map[string]any{"type": string(s.Kind)}
	if s.Description != "" {
		out["description"] = s.Description
	}
	if len(s.Properties) > 0 {
		props := make(map[string]any, len(s.Properties))
		for name, p := range s.Properties {
			props[name] = p.JSONSchema()
		}
		out["properties"] = props
	}
	if len(s.Required) > 0 {
		out["required"] = append([]string(nil), s.Required...)
	}
	if s.Items != nil {
		out["items"] = s.Items.JSONSchema()
	}
	return out
}

// MarshalJSON encodes the node in JSON Schema form.
func (s *Schema) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.JSONSchema())
}
