package commands

import (
	"github.com/spf13/cobra"

	"github.com/partnerdocs/oasdocs"
	"github.com/partnerdocs/oasdocs/internal/cliutil"
)

func newVersionCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if root.verbose {
				cliutil.Writef(cmd.OutOrStdout(), "oasdocs\n%s\n", oasdocs.BuildInfo())
				return nil
			}
			cliutil.Writef(cmd.OutOrStdout(), "oasdocs %s\n", oasdocs.Version())
			return nil
		},
	}
}
