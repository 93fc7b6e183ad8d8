package swagger

import "reflect"

// Schema is a validation schema value, typically a pointer to a tagged struct.
type Schema any

// JSONSchema is a JSON-Schema-shaped object.
type JSONSchema = map[string]any

// ComponentMap maps component names to their schema.
type ComponentMap map[string]JSONSchema

// BodyCarrier is implemented by request schemas that wrap a body schema
// next to query and path parameters.
type BodyCarrier interface {
	HasBodyField() bool
	BodyField() Schema
}

// Request is a request schema made of a body, query and path parameters.
type Request[B, Q, P any] struct {
	Body   B `json:"body"`
	Query  Q `json:"query,omitempty"`
	Params P `json:"params,omitempty"`
}

// HasBodyField implements BodyCarrier.
func (Request[B, Q, P]) HasBodyField() bool { return true }

// BodyField implements BodyCarrier.
func (Request[B, Q, P]) BodyField() Schema { return new(B) }

// isFalsy reports whether s carries no schema at all.
func isFalsy(s Schema) bool {
	if s == nil {
		return true
	}
	v := reflect.ValueOf(s)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
