package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/partnerdocs/oasdocs/internal/jsonutil"
	"github.com/partnerdocs/oasdocs/internal/pathutil"
	"github.com/partnerdocs/oasdocs/parser"
	"github.com/partnerdocs/oasdocs/schemadoc"
)

type resolveSchemaInput struct {
	Spec   specInput `json:"spec"   jsonschema:"The OAS document containing the schema"`
	Schema string    `json:"schema" jsonschema:"Component schema name (ProspectSchema) or $ref (#/components/schemas/ProspectSchema)"`
}

// attributeRow is one attribute of the flattened table. Children follow
// their parent with a dotted path.
type attributeRow struct {
	Path        string `json:"path"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	Required    bool   `json:"required"`
	Nullable    bool   `json:"nullable"`
	Example     string `json:"example,omitempty"`
}

type resolveSchemaOutput struct {
	Ref        string         `json:"ref"`
	Label      string         `json:"label"`
	Attributes []attributeRow `json:"attributes,omitempty"`
	Example    string         `json:"example"`
}

func handleResolveSchema(_ context.Context, _ *mcp.CallToolRequest, input resolveSchemaInput) (*mcp.CallToolResult, resolveSchemaOutput, error) {
	ref := schemaRef(input.Schema)
	if ref == "" {
		return errResult(fmt.Errorf("schema is required")), resolveSchemaOutput{}, nil
	}

	parseResult, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), resolveSchemaOutput{}, nil
	}

	r := schemadoc.NewResolver(parseResult.Document)
	if r.Resolve(ref) == nil {
		return errResult(fmt.Errorf("schema %q not found", ref)), resolveSchemaOutput{}, nil
	}

	root := &parser.Schema{Ref: ref}
	example, err := jsonutil.MarshalIndent(r.Example(root))
	if err != nil {
		return errResult(fmt.Errorf("encoding example: %w", err)), resolveSchemaOutput{}, nil
	}

	attrs := r.Attributes(root)
	return nil, resolveSchemaOutput{
		Ref:        ref,
		Label:      schemadoc.TypeLabel(root),
		Attributes: flattenAttributes(attrs, ""),
		Example:    string(example),
	}, nil
}

// schemaRef turns a bare component name into a schema reference.
func schemaRef(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "#/") {
		return s
	}
	return pathutil.SchemaRef(s)
}

func flattenAttributes(attrs []schemadoc.Attribute, prefix string) []attributeRow {
	rows := makeSlice[attributeRow](len(attrs))
	for _, a := range attrs {
		row := attributeRow{
			Path:        prefix + a.Name,
			Type:        a.Type,
			Description: a.Description,
			Required:    a.Required,
			Nullable:    a.Nullable,
		}
		if a.Example != nil {
			row.Example = *a.Example
		}
		rows = append(rows, row)
		rows = append(rows, flattenAttributes(a.Children, row.Path+".")...)
	}
	return rows
}
