package swagger

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/charcoles/charcole/logging/logger"
	"github.com/sirupsen/logrus"
)

// ErrEmptyBody is returned when a BodyCarrier reports a body field but yields no schema.
var ErrEmptyBody = errors.New("body field has no schema")

// ErrConversionPanic wraps a panic raised while extracting or converting a schema.
var ErrConversionPanic = errors.New("schema conversion panicked")

// Registry converts named schemas into OpenAPI component schemas.
type Registry struct {
	converter Converter
	log       logrus.FieldLogger
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithConverter replaces the default reflection converter.
func WithConverter(c Converter) RegistryOption {
	return func(r *Registry) { r.converter = c }
}

// WithLogger sets the logger used for skipped schemas.
func WithLogger(l logrus.FieldLogger) RegistryOption {
	return func(r *Registry) { r.log = l }
}

// NewRegistry creates a registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{}
	for _, opt := range opts {
		opt(r)
	}
	if r.log == nil {
		r.log = logger.StdLogger()
	}
	if r.converter == nil {
		c := NewReflectConverter()
		log := r.log
		c.OnCycle = func(name string) {
			log.WithField("definition", name).Debug("recursive schema replaced with an unconstrained schema")
		}
		r.converter = c
	}
	return r
}

// Convert turns a single schema into a component schema. Request wrappers
// contribute their body schema only. The result never carries $schema or a
// top-level definitions map.
func (r *Registry) Convert(s Schema, name string) (js JSONSchema, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			js, err = nil, fmt.Errorf("schema %q: %w: %v", name, ErrConversionPanic, rec)
		}
	}()
	target := s
	if bc, ok := s.(BodyCarrier); ok && bc.HasBodyField() {
		target = bc.BodyField()
		if isFalsy(target) {
			return nil, fmt.Errorf("schema %q: %w", name, ErrEmptyBody)
		}
	}
	js, err = r.converter.Convert(target)
	if err != nil {
		return nil, fmt.Errorf("schema %q: %w", name, err)
	}
	if js == nil {
		return nil, fmt.Errorf("schema %q: converter returned no schema", name)
	}
	return normalize(js), nil
}

// RegisterSchemas converts every schema in the map. Nil schemas are skipped
// silently and conversion failures are logged and skipped, so the result never
// has more entries than the input.
func (r *Registry) RegisterSchemas(schemas map[string]Schema) ComponentMap {
	out := make(ComponentMap, len(schemas))
	for _, name := range slices.Sorted(maps.Keys(schemas)) {
		s := schemas[name]
		if isFalsy(s) {
			continue
		}
		js, err := r.Convert(s, name)
		if err != nil {
			r.log.WithField("schema", name).WithError(err).Warn("failed to convert schema")
			continue
		}
		out[name] = js
	}
	return out
}

// normalize strips $schema, follows a bare root $ref one level into the
// definitions map and drops top-level definitions.
func normalize(js JSONSchema) JSONSchema {
	delete(js, "$schema")
	if ref, ok := js["$ref"].(string); ok {
		if name, ok := definitionName(ref); ok {
			if def, ok := rootDefinitions(js)[name].(map[string]any); ok {
				out := maps.Clone(def)
				delete(out, "$schema")
				delete(out, "$defs")
				delete(out, "definitions")
				return out
			}
		}
	}
	delete(js, "$defs")
	delete(js, "definitions")
	return js
}

var defaultRegistry = sync.OnceValue(func() *Registry { return NewRegistry() })

// Convert converts a schema with the default registry.
func Convert(s Schema, name string) (JSONSchema, error) {
	return defaultRegistry().Convert(s, name)
}

// RegisterSchemas converts schemas with the default registry.
func RegisterSchemas(schemas map[string]Schema) ComponentMap {
	return defaultRegistry().RegisterSchemas(schemas)
}
