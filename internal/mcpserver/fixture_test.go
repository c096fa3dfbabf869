package mcpserver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
)

// testSpec has two tags, three pages and one nested component schema.
const testSpec = `openapi: 3.0.3
info:
  title: Test API
  version: "1.0"
paths:
  /prospects/:
    post:
      summary: Create a prospect
      tags: [Prospects]
      requestBody:
        content:
          application/json:
            schema:
              $ref: '#/components/schemas/ProspectSchema'
      responses:
        "201":
          description: Created
          content:
            application/json:
              schema:
                $ref: '#/components/schemas/ProspectSchema'
    get:
      summary: List prospects
      tags: [Prospects]
      responses:
        "200":
          description: OK
  /tasks/:
    get:
      summary: List tasks
      tags: [Tasks]
      responses:
        "200":
          description: OK
components:
  schemas:
    ProspectSchema:
      type: object
      required: [name]
      properties:
        name:
          type: string
          description: Full name
          example: Jane
        address:
          type: object
          properties:
            city:
              type: string
              example: Austin
`

// writeSpec writes testSpec to a temporary file and returns its path.
func writeSpec(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "partner-api.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testSpec), 0o600))
	return path
}

// withConfig applies fn to a copy of the active configuration and restores
// the original when the test ends.
func withConfig(t *testing.T, fn func(c *serverConfig)) {
	t.Helper()
	saved := cfg
	c := *cfg
	fn(&c)
	cfg = &c
	t.Cleanup(func() { cfg = saved })
}

// resultText returns the text of the first content item of result.
func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content, "expected at least one content item")
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok, "expected TextContent, got %T", result.Content[0])
	return text.Text
}

func boolPtr(b bool) *bool { return &b }
