package swagger

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"
)

// Converter turns a schema value into a JSON Schema object.
type Converter interface {
	Convert(s Schema) (JSONSchema, error)
}

// RefStrategy controls how nested definitions are emitted.
type RefStrategy int

const (
	// RefStrategyNone inlines every definition at its point of use.
	RefStrategyNone RefStrategy = iota
	// RefStrategyRoot keeps $ref pointers into the root definitions map.
	RefStrategyRoot
)

// Target selects the dialect of the converted schema.
type Target int

const (
	// TargetOpenAPI3 produces OpenAPI 3.0 schema objects.
	TargetOpenAPI3 Target = iota
	// TargetJSONSchema leaves the reflector's draft output untouched.
	TargetJSONSchema
)

// ReflectConverter converts Go types through invopop/jsonschema reflection.
type ReflectConverter struct {
	RefStrategy RefStrategy
	Target      Target
	// Reflector overrides the default reflector settings when set.
	Reflector *jsonschema.Reflector
	// OnCycle is called with the definition name when inlining meets a cycle.
	OnCycle func(name string)
}

// NewReflectConverter returns a converter that inlines definitions and targets OpenAPI 3.
func NewReflectConverter() *ReflectConverter {
	return &ReflectConverter{RefStrategy: RefStrategyNone, Target: TargetOpenAPI3}
}

// Convert implements Converter.
func (c *ReflectConverter) Convert(s Schema) (out JSONSchema, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, fmt.Errorf("reflect schema %T: %v", s, r)
		}
	}()

	r := c.Reflector
	if r == nil {
		r = &jsonschema.Reflector{Anonymous: true}
	}
	raw, err := json.Marshal(r.Reflect(s))
	if err != nil {
		return nil, fmt.Errorf("marshal schema %T: %w", s, err)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode schema %T: %w", s, err)
	}

	if c.RefStrategy == RefStrategyNone {
		in := &inliner{defs: rootDefinitions(out), active: map[string]bool{}, onCycle: c.OnCycle}
		if m, ok := in.inline(out).(map[string]any); ok {
			out = m
		}
	}
	if c.Target == TargetOpenAPI3 {
		out = toOpenAPI3(out)
	}
	return out, nil
}

// Keywords whose values are schemas, maps of schemas or lists of schemas.
var (
	schemaValueKeys = map[string]bool{
		"items": true, "additionalProperties": true, "not": true, "if": true, "then": true,
		"else": true, "contains": true, "propertyNames": true, "additionalItems": true,
		"unevaluatedProperties": true, "unevaluatedItems": true,
	}
	schemaMapKeys = map[string]bool{
		"properties": true, "patternProperties": true, "dependentSchemas": true,
		"$defs": true, "definitions": true,
	}
	schemaListKeys = map[string]bool{
		"allOf": true, "anyOf": true, "oneOf": true, "prefixItems": true,
	}
)

// mapSubschemas returns a copy of m with f applied to every direct subschema.
func mapSubschemas(m map[string]any, f func(any) any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		switch {
		case schemaValueKeys[k]:
			if list, ok := v.([]any); ok {
				out[k] = mapList(list, f)
			} else {
				out[k] = f(v)
			}
		case schemaMapKeys[k]:
			if mm, ok := v.(map[string]any); ok {
				nm := make(map[string]any, len(mm))
				for name, sub := range mm {
					nm[name] = f(sub)
				}
				out[k] = nm
			} else {
				out[k] = v
			}
		case schemaListKeys[k]:
			if list, ok := v.([]any); ok {
				out[k] = mapList(list, f)
			} else {
				out[k] = v
			}
		default:
			out[k] = v
		}
	}
	return out
}

func mapList(list []any, f func(any) any) []any {
	out := make([]any, len(list))
	for i, v := range list {
		out[i] = f(v)
	}
	return out
}

// rootDefinitions collects both $defs and the older definitions map.
func rootDefinitions(root map[string]any) map[string]any {
	defs := map[string]any{}
	for _, key := range []string{"definitions", "$defs"} {
		if m, ok := root[key].(map[string]any); ok {
			for name, def := range m {
				defs[name] = def
			}
		}
	}
	return defs
}

// definitionName extracts X from "#/$defs/X" or "#/definitions/X".
func definitionName(ref string) (string, bool) {
	for _, prefix := range []string{"#/$defs/", "#/definitions/"} {
		if name, ok := strings.CutPrefix(ref, prefix); ok && name != "" {
			return name, true
		}
	}
	return "", false
}

type inliner struct {
	defs    map[string]any
	active  map[string]bool
	onCycle func(string)
}

func (in *inliner) inline(node any) any {
	m, ok := node.(map[string]any)
	if !ok {
		return node
	}
	if ref, ok := m["$ref"].(string); ok {
		if name, ok := definitionName(ref); ok {
			if def, ok := in.defs[name]; ok {
				return in.resolve(name, def, m)
			}
		}
	}
	out := mapSubschemas(m, in.inline)
	delete(out, "$defs")
	delete(out, "definitions")
	return out
}

// resolve replaces a $ref node with its definition. Sibling keywords of the
// $ref take precedence over the definition's own.
func (in *inliner) resolve(name string, def any, ref map[string]any) any {
	if in.active[name] {
		if in.onCycle != nil {
			in.onCycle(name)
		}
		return map[string]any{}
	}
	in.active[name] = true
	resolved := in.inline(def)
	delete(in.active, name)

	rm, ok := resolved.(map[string]any)
	if !ok {
		return resolved
	}
	for k, v := range ref {
		if k == "$ref" || k == "$defs" || k == "definitions" {
			continue
		}
		rm[k] = in.inline(v)
	}
	return rm
}

// toOpenAPI3 rewrites draft 2020-12 constructs that OpenAPI 3.0 does not accept.
func toOpenAPI3(node map[string]any) map[string]any {
	out := mapSubschemas(node, func(v any) any {
		if m, ok := v.(map[string]any); ok {
			return toOpenAPI3(m)
		}
		return v
	})
	delete(out, "$id")
	delete(out, "$anchor")

	if types, ok := out["type"].([]any); ok {
		var rest []any
		nullable := false
		for _, t := range types {
			if t == "null" {
				nullable = true
				continue
			}
			rest = append(rest, t)
		}
		switch len(rest) {
		case 0:
			delete(out, "type")
		case 1:
			out["type"] = rest[0]
		default:
			delete(out, "type")
			alts := make([]any, len(rest))
			for i, t := range rest {
				alts[i] = map[string]any{"type": t}
			}
			out["anyOf"] = alts
		}
		if nullable {
			out["nullable"] = true
		}
	}
	if c, ok := out["const"]; ok {
		out["enum"] = []any{c}
		delete(out, "const")
	}
	if examples, ok := out["examples"].([]any); ok {
		if len(examples) > 0 {
			if _, has := out["example"]; !has {
				out["example"] = examples[0]
			}
		}
		delete(out, "examples")
	}
	return out
}
