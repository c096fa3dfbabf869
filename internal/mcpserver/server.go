// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes oasdocs capabilities as MCP tools over stdio.
package mcpserver

import (
	"cmp"
	"context"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/partnerdocs/oasdocs"
)

const serverInstructions = `oasdocs MCP server: generates MDX documentation pages from an OpenAPI 3 document and inspects how its schemas are documented.

Tools:
- list_endpoints: plan the pages without writing anything (tag, folder, file, sidebar position, method, path)
- resolve_schema: show the attribute table and example payload of one schema
- generate_docs: render the pages and write them to output_dir

Configuration: defaults are read from OASDOCS_* environment variables set in your MCP client config.

Key settings:
- OASDOCS_OUTPUT_ROOT (default: unset). When set, output_dir and mappings must be relative and are written below it
- OASDOCS_URL_PREFIX (default: /apis/partner-api). Site route prefix used in the lookup table
- OASDOCS_GENERATE_CLEAN (default: false). Remove output_dir before writing
- OASDOCS_LIST_LIMIT (default: 100). Default result limit for list_endpoints
- OASDOCS_MAX_INLINE_SIZE (default: 10 MiB). Largest inline content accepted

Documents are parsed again on every call; nothing is cached between calls.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "oasdocs", Version: oasdocs.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_docs",
		Description: "Generate the documentation site for an OpenAPI document: one MDX page per (tag, operation), a _category_.json per tag folder, an index.mdx, and the URL to HTTP method lookup table. Writes to output_dir (default docs/apis/partner-api). Set mappings to also write the lookup table; mappings_format selects js (default) or go. Use clean=true to remove output_dir first; this requires OASDOCS_OUTPUT_ROOT. Returns a manifest of written files.",
	}, handleGenerateDocs)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_endpoints",
		Description: "List every page generate_docs would write, without writing anything. Each entry has tag, folder, file, sidebar position, method, path and title. Filter by tag or method. Use group_by (tag or method) to get counts instead of individual entries. Use offset/limit to paginate; the default limit is configurable via OASDOCS_LIST_LIMIT.",
	}, handleListEndpoints)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "resolve_schema",
		Description: "Resolve one schema the way documentation pages show it. Accepts a component name (ProspectSchema) or a $ref (#/components/schemas/ProspectSchema). Returns the flattened attribute table (dotted paths for nested children) and the synthesized example payload as JSON text.",
	}, handleResolveSchema)
}

// paginate returns items[offset:offset+limit], clamped to the slice. A
// non-positive limit selects cfg.ListLimit; cfg.MaxLimit caps it.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.ListLimit
	}
	limit = min(limit, cfg.MaxLimit)
	if offset < 0 || offset >= len(items) {
		return nil
	}
	return items[offset:min(offset+limit, len(items))]
}

// makeSlice returns nil for n == 0 so empty lists are omitted from JSON.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// pathPattern matches absolute paths under common system roots.
var pathPattern = regexp.MustCompile(`/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run)(?:/[\w.-]+)*/?`)

// sanitizeError replaces absolute paths in err with "<path>" so tool
// results do not reveal the server's directory layout.
func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}

// groupCount is one entry of a group_by result.
type groupCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// groupAndSort counts items per key, largest group first, ties by key.
func groupAndSort[T any](items []T, keyFn func(T) []string) []groupCount {
	counts := make(map[string]int)
	for _, item := range items {
		for _, key := range keyFn(item) {
			counts[key]++
		}
	}
	groups := make([]groupCount, 0, len(counts))
	for key, n := range counts {
		groups = append(groups, groupCount{Key: key, Count: n})
	}
	slices.SortFunc(groups, func(a, b groupCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return strings.Compare(a.Key, b.Key)
	})
	return groups
}

func validateGroupBy(groupBy string, allowed []string) error {
	if groupBy == "" || slices.ContainsFunc(allowed, func(a string) bool { return strings.EqualFold(a, groupBy) }) {
		return nil
	}
	return fmt.Errorf("invalid group_by value %q; valid values: %s", groupBy, strings.Join(allowed, ", "))
}
