package commands

import (
	"github.com/spf13/cobra"

	"github.com/partnerdocs/oasdocs/internal/mcpserver"
)

func newMCPCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve generation tools to MCP clients over stdio",
		Long: `Start a Model Context Protocol server on stdin/stdout.

Tools: generate_docs, list_endpoints, resolve_schema. Defaults come from
OASDOCS_* environment variables (OASDOCS_OUTPUT_ROOT, OASDOCS_URL_PREFIX, ...).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return mcpserver.Run(cmd.Context())
		},
	}
}
