package mcpserver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleResolveSchema(t *testing.T) {
	for _, name := range []string{"ProspectSchema", "#/components/schemas/ProspectSchema"} {
		t.Run(name, func(t *testing.T) {
			result, output, err := handleResolveSchema(context.Background(), nil, resolveSchemaInput{
				Spec:   specInput{Content: testSpec},
				Schema: name,
			})
			require.NoError(t, err)
			require.Nil(t, result)

			assert.Equal(t, "#/components/schemas/ProspectSchema", output.Ref)
			assert.Equal(t, "Prospect", output.Label)
			assert.Equal(t, []attributeRow{
				{Path: "name", Type: "string", Description: "Full name", Required: true, Example: "Jane"},
				{Path: "address", Type: "object"},
				{Path: "address.city", Type: "string", Example: "Austin"},
			}, output.Attributes)
			assert.Equal(t, "{\n  \"name\": \"Jane\",\n  \"address\": {\n    \"city\": \"Austin\"\n  }\n}", output.Example)
		})
	}
}

func TestHandleResolveSchema_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input resolveSchemaInput
		want  string
	}{
		{"missing schema", resolveSchemaInput{Spec: specInput{Content: testSpec}}, "schema is required"},
		{"unknown schema", resolveSchemaInput{Spec: specInput{Content: testSpec}, Schema: "TaskSchema"}, `"#/components/schemas/TaskSchema" not found`},
		{"missing spec", resolveSchemaInput{Schema: "ProspectSchema"}, "exactly one of file or content"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, _, err := handleResolveSchema(context.Background(), nil, tt.input)
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.True(t, result.IsError)
			assert.Contains(t, resultText(t, result), tt.want)
		})
	}
}

func TestSchemaRef(t *testing.T) {
	assert.Equal(t, "", schemaRef("  "))
	assert.Equal(t, "#/components/schemas/Pet", schemaRef(" Pet "))
	assert.Equal(t, "#/components/responses/Created", schemaRef("#/components/responses/Created"))
}
