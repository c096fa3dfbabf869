package schemadoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partnerdocs/oasdocs/internal/jsonutil"
	"github.com/partnerdocs/oasdocs/parser"
)

func exampleJSON(t *testing.T, r *Resolver, s *parser.Schema) string {
	t.Helper()
	b, err := jsonutil.Marshal(r.Example(s))
	require.NoError(t, err)
	return string(b)
}

func TestExample(t *testing.T) {
	r := newTestResolver(t)
	tests := []struct {
		name   string
		schema *parser.Schema
		want   string
	}{
		{
			name:   "object with nested reference",
			schema: ref("Person"),
			want:   `{"id":"p-1","nickname":"string","address":{"street":"string","id":"string"},"tags":[],"meta":{"source":"string","id":0}}`,
		},
		{
			name:   "type defaults",
			schema: ref("Defaults"),
			want:   `{"s":"string","d":"2023-01-01","i":0,"n":0,"b":false,"x":null,"arr":[],"zero":0}`,
		},
		{
			name:   "allOf merges objects",
			schema: ref("Extended"),
			want:   `{"a":"string","b":5,"c":false}`,
		},
		{
			name:   "direct cycle",
			schema: ref("NodeSchema"),
			want:   `{"id":7,"children":[]}`,
		},
		{
			name:   "cycle through allOf",
			schema: ref("Loop"),
			want:   `{"name":"string"}`,
		},
		{
			name:   "array of objects",
			schema: &parser.Schema{Type: "array", Items: ref("AddressSchema")},
			want:   `[{"street":"string","id":"string"}]`,
		},
		{
			name:   "array of primitives",
			schema: &parser.Schema{Type: "array", Items: &parser.Schema{Type: "string"}},
			want:   `[]`,
		},
		{
			name:   "primitive with example",
			schema: &parser.Schema{Type: "string", Example: "hi", HasExample: true},
			want:   `"hi"`,
		},
		{name: "primitive without example", schema: &parser.Schema{Type: "string"}, want: `null`},
		{name: "broken reference", schema: ref("Missing"), want: `null`},
		{name: "empty allOf", schema: ref("EmptyAllOf"), want: `null`},
		{name: "nil", schema: nil, want: `null`},
		{name: "object without properties", schema: &parser.Schema{Type: "object"}, want: `null`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exampleJSON(t, r, tt.schema))
		})
	}
}

func TestExample_ExplicitObjectExampleKeepsOrder(t *testing.T) {
	result, err := parser.New().ParseBytes([]byte(`openapi: 3.0.3
info: {title: T, version: "1"}
paths: {}
components:
  schemas:
    Pet:
      type: object
      properties:
        owner:
          type: object
          example:
            zeta: 1
            alpha: <b>
`))
	require.NoError(t, err)
	r := NewResolver(result.Document)
	assert.Equal(t, `{"owner":{"zeta":1,"alpha":"<b>"}}`, exampleJSON(t, r, ref("Pet")))
}

func TestExample_Deterministic(t *testing.T) {
	r := newTestResolver(t)
	first := exampleJSON(t, r, ref("Person"))
	for range 3 {
		assert.Equal(t, first, exampleJSON(t, r, ref("Person")))
	}
}
