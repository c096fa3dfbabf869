package parser

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partnerdocs/oasdocs/oaserrors"
)

const leasingSpec = `openapi: 3.0.3
info:
  title: Partner API
  version: "2.1"
paths:
  /prospects/:
    parameters:
      - name: community_id
        in: query
    post:
      summary: Create a prospect
      tags: [Prospects, Tasks]
      requestBody:
        content:
          application/json:
            schema:
              $ref: '#/components/schemas/ProspectSchema'
      responses:
        201:
          description: Created
          content:
            application/json:
              schema:
                $ref: '#/components/schemas/ProspectSchema'
    get:
      summary: List prospects
      tags: [Prospects]
      parameters:
        - $ref: '#/components/parameters/PageParam'
        - name: status
          in: query
          required: true
          schema:
            type: string
            enum: [new, toured]
      responses:
        "200":
          description: OK
  /health:
    get:
      summary: Health check
      responses:
        "200":
          description: OK
components:
  parameters:
    PageParam:
      name: page
      in: query
      schema:
        type: integer
  schemas:
    ProspectSchema:
      type: object
      required: [first_name]
      properties:
        first_name:
          type: string
          example: Ada
        move_in_date:
          type: string
          format: date
        pets:
          type: array
          items:
            type: object
            properties:
              kind:
                type: string
`

func TestParseBytes_Document(t *testing.T) {
	res, err := New().ParseBytes([]byte(leasingSpec))
	require.NoError(t, err)

	assert.Equal(t, "3.0.3", res.Version)
	assert.Equal(t, SourceFormatYAML, res.SourceFormat)
	assert.Equal(t, "ParseBytes.yaml", res.SourcePath)
	assert.Equal(t, "Partner API", res.Document.Info.Title)
	assert.Equal(t, "2.1", res.Document.Info.Version)

	doc := res.Document
	require.Len(t, doc.Paths, 2)
	assert.Equal(t, "/prospects/", doc.Paths[0].Path)
	assert.Equal(t, "/health", doc.Paths[1].Path)

	// Non-method keys such as parameters are not operations; methods keep source order.
	ops := doc.Paths[0].Operations
	require.Len(t, ops, 2)
	assert.Equal(t, "post", ops[0].Method)
	assert.Equal(t, "get", ops[1].Method)
	assert.Equal(t, []string{"Prospects", "Tasks"}, ops[0].Tags)
	assert.Equal(t, "/prospects/", ops[0].Path)
	assert.Positive(t, ops[0].Line)

	assert.Equal(t, DocumentStats{PathCount: 2, OperationCount: 3, TaggedOperationCount: 2, SchemaCount: 1}, res.Stats)
}

func TestParseBytes_Responses(t *testing.T) {
	res, err := New().ParseBytes([]byte(leasingSpec))
	require.NoError(t, err)
	post := res.Document.Paths[0].Operations[0]

	// Unquoted integer status codes are read as their string form.
	created := post.Response("201")
	require.NotNil(t, created)
	assert.Equal(t, "Created", created.Description)
	require.NotNil(t, created.JSONSchema())
	assert.Equal(t, "#/components/schemas/ProspectSchema", created.JSONSchema().Ref)
	assert.Nil(t, post.Response("200"))

	require.NotNil(t, post.RequestBody)
	assert.Equal(t, "#/components/schemas/ProspectSchema", post.RequestBody.JSONSchema().Ref)

	get := res.Document.Paths[0].Operations[1]
	assert.Nil(t, get.Response("200").JSONSchema())
}

func TestParseBytes_Parameters(t *testing.T) {
	res, err := New().ParseBytes([]byte(leasingSpec))
	require.NoError(t, err)
	get := res.Document.Paths[0].Operations[1]

	require.Len(t, get.Parameters, 2)
	assert.Equal(t, "#/components/parameters/PageParam", get.Parameters[0].Ref)
	assert.Empty(t, get.Parameters[0].In)

	status := get.Parameters[1]
	assert.Equal(t, "status", status.Name)
	assert.True(t, status.Required)
	require.NotNil(t, status.Schema)
	assert.Equal(t, []any{"new", "toured"}, status.Schema.Enum)

	// Only the inline query parameter is in the query until refs are resolved.
	assert.Len(t, get.QueryParameters(), 1)

	page := res.Document.LookupParameter(get.Parameters[0].Ref)
	require.NotNil(t, page)
	assert.Equal(t, "page", page.Name)
	assert.Equal(t, "query", page.In)
	assert.Equal(t, "integer", page.Schema.Type)
}

func TestDocument_Lookup(t *testing.T) {
	res, err := New().ParseBytes([]byte(leasingSpec))
	require.NoError(t, err)
	doc := res.Document

	tests := []struct {
		name  string
		ref   string
		found bool
	}{
		{name: "component schema", ref: "#/components/schemas/ProspectSchema", found: true},
		{name: "nested property", ref: "#/components/schemas/ProspectSchema/properties/pets", found: true},
		{name: "sequence index", ref: "#/components/schemas/ProspectSchema/required/0", found: true},
		{name: "index out of range", ref: "#/components/schemas/ProspectSchema/required/5", found: false},
		{name: "missing schema", ref: "#/components/schemas/Missing", found: false},
		{name: "non-components ref", ref: "#/definitions/ProspectSchema", found: false},
		{name: "empty", ref: "", found: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.found, doc.Lookup(tt.ref) != nil)
		})
	}

	assert.Equal(t, []string{"ProspectSchema"}, doc.ComponentNames("schemas"))
	assert.Nil(t, (&Document{}).Lookup("#/components/schemas/ProspectSchema"))
}

func TestParseBytes_JSON(t *testing.T) {
	res, err := New().ParseBytes([]byte(`{"openapi":"3.0.0","paths":{"/chat":{"get":{"tags":["Chat"]}}}}`))
	require.NoError(t, err)
	assert.Equal(t, SourceFormatJSON, res.SourceFormat)
	require.Len(t, res.Document.Operations(), 1)
	assert.Equal(t, []string{"Chat"}, res.Document.Operations()[0].Tags)
}

func TestParse_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := New().Parse(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.ErrorIs(t, err, oaserrors.ErrParse)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed yaml reports a line", func(t *testing.T) {
		_, err := New().ParseBytes([]byte("openapi: 3.0.0\npaths:\n  /x: [\n"))
		require.Error(t, err)
		var parseErr *oaserrors.ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, "ParseBytes.yaml", parseErr.Path)
		assert.Positive(t, parseErr.Line)
	})

	t.Run("root is not a mapping", func(t *testing.T) {
		_, err := New().ParseBytes([]byte("- a\n- b\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be a mapping")
	})

	t.Run("empty document", func(t *testing.T) {
		_, err := New().ParseBytes([]byte(""))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "empty")
	})

	t.Run("file too large", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "big.yaml")
		require.NoError(t, os.WriteFile(path, []byte(leasingSpec), 0o600))
		p := &Parser{MaxFileSize: 16}
		_, err := p.Parse(path)
		require.Error(t, err)
		assert.ErrorIs(t, err, oaserrors.ErrParse)
		assert.Contains(t, err.Error(), "limit")
	})
}

func TestParseWithOptions(t *testing.T) {
	t.Run("file path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "partner-api.yaml")
		require.NoError(t, os.WriteFile(path, []byte(leasingSpec), 0o600))
		res, err := ParseWithOptions(WithFilePath(path))
		require.NoError(t, err)
		assert.Equal(t, path, res.SourcePath)
		assert.Equal(t, int64(len(leasingSpec)), res.SourceSize)
	})

	t.Run("reader with source name", func(t *testing.T) {
		res, err := ParseWithOptions(WithReader(strings.NewReader(leasingSpec)), WithSourceName("inline.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "inline.yaml", res.SourcePath)
	})

	t.Run("logger receives debug messages", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewSlogAdapter(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
		_, err := ParseWithOptions(WithBytes([]byte(leasingSpec)), WithLogger(logger))
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "parsed document")
		assert.Contains(t, buf.String(), "operations=3")
	})

	t.Run("no source", func(t *testing.T) {
		_, err := ParseWithOptions()
		assert.EqualError(t, err, "exactly one of WithFilePath, WithReader or WithBytes must be provided (got 0)")
	})

	t.Run("two sources", func(t *testing.T) {
		_, err := ParseWithOptions(WithBytes([]byte("a: b")), WithFilePath("x.yaml"))
		assert.ErrorContains(t, err, "(got 2)")
	})

	t.Run("negative size", func(t *testing.T) {
		_, err := ParseWithOptions(WithBytes([]byte("a: b")), WithMaxFileSize(-1))
		assert.Error(t, err)
	})
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "512 B", FormatBytes(512))
	assert.Equal(t, "1.5 KiB", FormatBytes(1536))
	assert.Equal(t, "10.0 MiB", FormatBytes(DefaultMaxFileSize))
}
