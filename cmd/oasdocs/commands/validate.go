package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/partnerdocs/oasdocs/docgen"
	"github.com/partnerdocs/oasdocs/internal/cliutil"
	"github.com/partnerdocs/oasdocs/parser"
	"github.com/partnerdocs/oasdocs/validator"
)

// ValidateFlags contains flags for the validate command
type ValidateFlags struct {
	StrictRefs   bool
	NoStructural bool
	Format       string
}

func newValidateCommand(root *rootOptions) *cobra.Command {
	flags := &ValidateFlags{}

	cmd := &cobra.Command{
		Use:   "validate [spec]",
		Short: "Validate an OpenAPI document",
		Long: `Validate an OpenAPI document before generating documentation from it.

Checks the document structure against the OpenAPI 3 rules and reports every
$ref the generator cannot follow. Generation skips those references silently,
so the attributes and example fields behind them would be missing from the
pages. Unresolved references are warnings unless --strict-refs is set.
Response keys that are not status codes and media types that do not parse
are warnings. Recursive schemas and unregistered status codes are info.

The spec defaults to the configured document.`,
		Example: `  oasdocs validate
  oasdocs validate --strict-refs schemas/partner-api.yaml
  oasdocs validate --format json api.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ValidateOutputFormat(flags.Format); err != nil {
				return err
			}
			specPath := root.config.Spec
			if len(args) == 1 {
				specPath = args[0]
			}
			if specPath == "" {
				specPath = docgen.DefaultSpecPath
			}

			v := validator.New()
			v.StrictRefs = flags.StrictRefs
			v.Structural = !flags.NoStructural
			v.Logger = parser.NewSlogAdapter(root.logger)

			result, err := v.Validate(cmd.Context(), specPath)
			if err != nil {
				return err
			}

			if flags.Format != FormatText {
				if err := OutputStructured(cmd.OutOrStdout(), result, flags.Format); err != nil {
					return err
				}
			} else {
				printValidation(cmd, result)
			}

			if !result.Valid {
				return fmt.Errorf("validation failed with %d errors", result.ErrorCount)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&flags.StrictRefs, "strict-refs", false, "report unresolved references as errors")
	cmd.Flags().BoolVar(&flags.NoStructural, "no-structural", false, "skip OpenAPI structure validation, check references only")
	cmd.Flags().StringVarP(&flags.Format, "format", "f", FormatText, "output format: text, json, or yaml")
	return cmd
}

func printValidation(cmd *cobra.Command, result *validator.ValidationResult) {
	out := cmd.OutOrStdout()
	cliutil.Writef(out, "Specification: %s\n", result.SourcePath)
	for _, issue := range result.Issues {
		cliutil.Writef(out, "  %s\n", issue.String())
	}
	if result.Valid {
		cliutil.Writef(out, "✓ Valid (%d warnings)\n", result.WarningCount)
		return
	}
	cliutil.Writef(out, "✗ Invalid: %d errors, %d warnings\n", result.ErrorCount, result.WarningCount)
}
