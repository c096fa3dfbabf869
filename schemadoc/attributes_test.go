package schemadoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partnerdocs/oasdocs/internal/jsonutil"
	"github.com/partnerdocs/oasdocs/parser"
)

func names(attrs []Attribute) []string {
	out := make([]string, len(attrs))
	for i, a := range attrs {
		out[i] = a.Name
	}
	return out
}

func TestAttributes_Object(t *testing.T) {
	r := newTestResolver(t)
	attrs := r.Attributes(ref("Person"))
	require.Equal(t, []string{"id", "nickname", "address", "tags", "meta"}, names(attrs))

	id := attrs[0]
	assert.Equal(t, "string", id.Type)
	assert.Equal(t, "Identifier", id.Description)
	assert.True(t, id.Required)
	assert.False(t, id.Nullable)
	require.NotNil(t, id.Example)
	assert.Equal(t, "p-1", *id.Example)

	nickname := attrs[1]
	assert.True(t, nickname.Nullable)
	assert.False(t, nickname.Required)
	assert.Nil(t, nickname.Example)
	assert.Empty(t, nickname.Description)

	address := attrs[2]
	assert.Equal(t, "Address", address.Type)
	assert.True(t, address.Required)
	assert.Equal(t, []string{"street", "id"}, names(address.Children))

	tags := attrs[3]
	assert.Equal(t, "array<string>", tags.Type)
	assert.Nil(t, tags.Children)

	meta := attrs[4]
	assert.Equal(t, "object", meta.Type)
	assert.Equal(t, []string{"source", "id"}, names(meta.Children))
}

func TestAttributes_RequiredIsLocal(t *testing.T) {
	r := newTestResolver(t)
	attrs := r.Attributes(ref("Person"))

	// Person requires "id"; the nested objects' own lists decide for their children.
	address := attrs[2].Children
	assert.True(t, address[0].Required, "street is required by Address")
	assert.False(t, address[1].Required, "Address.id is not required by Address")

	meta := attrs[4].Children
	assert.True(t, meta[0].Required, "source is required by meta")
	assert.False(t, meta[1].Required, "meta.id is not required by meta")
}

func TestAttributes_DirectCycle(t *testing.T) {
	r := newTestResolver(t)

	attrs := r.Attributes(ref("NodeSchema"))
	require.Equal(t, []string{"id", "parent", "children"}, names(attrs))
	assert.Equal(t, "Node", attrs[1].Type)
	assert.Nil(t, attrs[1].Children, "the reference is already on the path")
	assert.Equal(t, "array<Node>", attrs[2].Type)
	assert.Nil(t, attrs[2].Children)

	// Starting from the resolved schema, the first self reference is expanded once.
	attrs = r.Attributes(r.Resolve("#/components/schemas/NodeSchema"))
	require.Len(t, attrs[1].Children, 3)
	assert.Nil(t, attrs[1].Children[1].Children)
}

func TestAttributes_CycleThroughAllOf(t *testing.T) {
	r := newTestResolver(t)
	attrs := r.Attributes(ref("Loop"))
	require.Len(t, attrs, 1)
	assert.Equal(t, "name", attrs[0].Name)
}

func TestAttributes_SiblingReferencesBothExpand(t *testing.T) {
	r := newTestResolver(t)
	attrs := r.Attributes(ref("Order"))
	require.Len(t, attrs, 2)
	assert.Len(t, attrs[0].Children, 2)
	assert.Len(t, attrs[1].Children, 2)
}

func TestAttributes_AllOfConcatenates(t *testing.T) {
	r := newTestResolver(t)
	attrs := r.Attributes(ref("Extended"))
	assert.Equal(t, []string{"a", "b", "b", "c"}, names(attrs))
	assert.Equal(t, "object", attrs[2].Type, "untyped property")
	require.NotNil(t, attrs[2].Example)
	assert.Equal(t, "5", *attrs[2].Example)
}

func TestAttributes_Empty(t *testing.T) {
	r := newTestResolver(t)
	tests := []struct {
		name   string
		schema *parser.Schema
	}{
		{name: "nil", schema: nil},
		{name: "broken reference", schema: ref("Missing")},
		{name: "primitive", schema: &parser.Schema{Type: "string"}},
		{name: "array", schema: &parser.Schema{Type: "array", Items: ref("Person")}},
		{name: "object without properties", schema: &parser.Schema{Type: "object"}},
		{name: "properties without type", schema: &parser.Schema{HasProperties: true, Properties: []parser.Property{{Name: "a"}}}},
		{name: "empty allOf", schema: ref("EmptyAllOf")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, r.Attributes(tt.schema))
		})
	}
}

func TestAttributes_BrokenPropertyReference(t *testing.T) {
	r := newTestResolver(t)
	attrs := r.Attributes(ref("Defaults"))
	broken := attrs[len(attrs)-1]
	assert.Equal(t, "broken", broken.Name)
	assert.Equal(t, "Missing", broken.Type)
	assert.Nil(t, broken.Children)
}

func TestAttribute_JSON(t *testing.T) {
	example := "p-1"
	attr := Attribute{
		Name:     "id",
		Type:     "string",
		Required: true,
		Example:  &example,
		Children: []Attribute{{Name: "x", Type: "integer"}},
	}
	b, err := jsonutil.Marshal(attr)
	require.NoError(t, err)
	assert.Equal(t,
		`{"name":"id","type":"string","description":"","required":true,"nullable":false,"example":"p-1","children":[{"name":"x","type":"integer","description":"","required":false,"nullable":false}]}`,
		string(b))
}
