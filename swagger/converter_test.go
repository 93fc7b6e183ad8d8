package swagger

import (
	"reflect"
	"testing"

	"github.com/invopop/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type address struct {
	Street string `json:"street"`
	City   string `json:"city"`
}

type signup struct {
	Email    string  `json:"email" jsonschema:"format=email"`
	Password string  `json:"password" jsonschema:"minLength=8"`
	Address  address `json:"address"`
}

type treeNode struct {
	Name     string      `json:"name"`
	Children []*treeNode `json:"children,omitempty"`
}

func TestReflectConverter_InlinesDefinitions(t *testing.T) {
	js, err := NewReflectConverter().Convert(&signup{})
	require.NoError(t, err)

	assert.Equal(t, "object", js["type"])
	assert.NotContains(t, js, "$ref")
	assert.NotContains(t, js, "$defs")

	props := js["properties"].(map[string]any)
	addr := props["address"].(map[string]any)
	assert.Equal(t, "object", addr["type"])
	assert.Contains(t, addr["properties"], "street")
	assert.Equal(t, "email", props["email"].(map[string]any)["format"])
	assert.ElementsMatch(t, []any{"email", "password", "address"}, js["required"])
}

func TestReflectConverter_RootStrategyKeepsRefs(t *testing.T) {
	c := &ReflectConverter{RefStrategy: RefStrategyRoot, Target: TargetOpenAPI3}
	js, err := c.Convert(&signup{})
	require.NoError(t, err)

	assert.Contains(t, js, "$ref")
	assert.Contains(t, js, "$defs")
}

func TestReflectConverter_CycleBecomesEmptySchema(t *testing.T) {
	var cycles []string
	c := NewReflectConverter()
	c.OnCycle = func(name string) { cycles = append(cycles, name) }

	js, err := c.Convert(&treeNode{})
	require.NoError(t, err)

	children := js["properties"].(map[string]any)["children"].(map[string]any)
	assert.Equal(t, "array", children["type"])
	assert.Equal(t, map[string]any{}, children["items"])
	assert.NotEmpty(t, cycles)
}

func TestReflectConverter_RecoversPanics(t *testing.T) {
	c := NewReflectConverter()
	c.Reflector = &jsonschema.Reflector{
		Mapper: func(reflect.Type) *jsonschema.Schema { panic("boom") },
	}

	_, err := c.Convert(&signup{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestToOpenAPI3(t *testing.T) {
	in := map[string]any{
		"$id":  "https://example.com/x",
		"type": "object",
		"properties": map[string]any{
			"nick":  map[string]any{"type": []any{"string", "null"}},
			"kind":  map[string]any{"const": "user"},
			"age":   map[string]any{"type": "integer", "examples": []any{42}},
			"const": map[string]any{"type": "string"},
		},
		"anyOf": []any{map[string]any{"type": []any{"integer", "string"}}},
	}

	out := toOpenAPI3(in)

	assert.NotContains(t, out, "$id")
	props := out["properties"].(map[string]any)
	assert.Equal(t, map[string]any{"type": "string", "nullable": true}, props["nick"])
	assert.Equal(t, map[string]any{"enum": []any{"user"}}, props["kind"])
	assert.Equal(t, map[string]any{"type": "integer", "example": 42}, props["age"])
	assert.Equal(t, map[string]any{"type": "string"}, props["const"], "property names are not keywords")

	alt := out["anyOf"].([]any)[0].(map[string]any)
	assert.Equal(t, []any{map[string]any{"type": "integer"}, map[string]any{"type": "string"}}, alt["anyOf"])
}

func TestDefinitionName(t *testing.T) {
	for ref, want := range map[string]string{
		"#/$defs/User":       "User",
		"#/definitions/User": "User",
	} {
		got, ok := definitionName(ref)
		assert.True(t, ok, ref)
		assert.Equal(t, want, got)
	}
	_, ok := definitionName("https://example.com/schema.json")
	assert.False(t, ok)
}
