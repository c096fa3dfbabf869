package mcpserver

import (
	"context"
	"encoding/json"
	"path/filepath"
	"slices"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startTestSession connects a client to a server with every tool registered,
// over in-memory transports. Both ends are closed when the test ends.
func startTestSession(t *testing.T) *mcp.ClientSession {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())

	server := mcp.NewServer(&mcp.Implementation{Name: "oasdocs", Version: "test"}, nil)
	registerAllTools(server)
	serverSide, clientSide := mcp.NewInMemoryTransports()
	served := make(chan error, 1)
	go func() { served <- server.Run(ctx, serverSide) }()

	client := mcp.NewClient(&mcp.Implementation{Name: "oasdocs-test-client", Version: "test"}, nil)
	session, err := client.Connect(ctx, clientSide, nil)
	if err != nil {
		cancel()
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() {
		_ = session.Close()
		cancel()
		<-served
	})
	return session
}

func callTool(t *testing.T, session *mcp.ClientSession, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{Name: name, Arguments: args})
	require.NoError(t, err)
	return result
}

func TestIntegration_ListTools(t *testing.T) {
	session := startTestSession(t)

	result, err := session.ListTools(context.Background(), &mcp.ListToolsParams{})
	require.NoError(t, err)

	var names []string
	for _, tool := range result.Tools {
		names = append(names, tool.Name)
		assert.NotEmpty(t, tool.Description, tool.Name)
		assert.NotNil(t, tool.InputSchema, tool.Name)
	}
	slices.Sort(names)
	assert.Equal(t, []string{"generate_docs", "list_endpoints", "resolve_schema"}, names)
}

func TestIntegration_ListEndpoints(t *testing.T) {
	session := startTestSession(t)

	result := callTool(t, session, "list_endpoints", map[string]any{
		"spec": map[string]any{"content": testSpec},
		"tag":  "Prospects",
	})
	require.False(t, result.IsError, "unexpected error: %v", result.Content)

	out := unmarshalStructured(t, result)
	assert.Equal(t, float64(2), out["total"])
	endpoints, ok := out["endpoints"].([]any)
	require.True(t, ok)
	require.Len(t, endpoints, 2)
	first := endpoints[0].(map[string]any)
	assert.Equal(t, "10-create-a-prospect.mdx", first["file"])
	assert.Equal(t, float64(40), first["sidebar_position"])
}

func TestIntegration_GenerateDocs(t *testing.T) {
	session := startTestSession(t)
	dir := filepath.Join(t.TempDir(), "docs")

	result := callTool(t, session, "generate_docs", map[string]any{
		"spec":       map[string]any{"file": writeSpec(t)},
		"output_dir": dir,
	})
	require.False(t, result.IsError, "unexpected error: %v", result.Content)

	out := unmarshalStructured(t, result)
	assert.Equal(t, float64(3), out["page_count"])
	assert.Equal(t, float64(6), out["file_count"])
	assert.FileExists(t, filepath.Join(dir, "tasks", "10-list-tasks.mdx"))
}

func TestIntegration_ResolveSchema(t *testing.T) {
	session := startTestSession(t)

	result := callTool(t, session, "resolve_schema", map[string]any{
		"spec":   map[string]any{"content": testSpec},
		"schema": "ProspectSchema",
	})
	require.False(t, result.IsError, "unexpected error: %v", result.Content)

	out := unmarshalStructured(t, result)
	assert.Equal(t, "Prospect", out["label"])
	attrs, ok := out["attributes"].([]any)
	require.True(t, ok)
	assert.Len(t, attrs, 3)
}

func TestIntegration_ToolErrorIsReported(t *testing.T) {
	session := startTestSession(t)

	result := callTool(t, session, "resolve_schema", map[string]any{
		"spec":   map[string]any{"content": testSpec},
		"schema": "Missing",
	})
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "not found")
}

// unmarshalStructured decodes the structured output of a tool call, or its
// text content when there is none.
func unmarshalStructured(t *testing.T, result *mcp.CallToolResult) map[string]any {
	t.Helper()
	var data []byte
	if result.StructuredContent != nil {
		var err error
		data, err = json.Marshal(result.StructuredContent)
		require.NoError(t, err)
	} else {
		data = []byte(resultText(t, result))
	}
	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}
