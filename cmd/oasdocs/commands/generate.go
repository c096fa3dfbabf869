package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/partnerdocs/oasdocs/docgen"
	"github.com/partnerdocs/oasdocs/internal/cliutil"
	"github.com/partnerdocs/oasdocs/parser"
	"github.com/partnerdocs/oasdocs/validator"
)

// GenerateFlags contains flags for the generate command
type GenerateFlags struct {
	Spec           string
	Output         string
	Mappings       string
	MappingsFormat string
	URLPrefix      string
	NoMappings     bool
	Clean          bool
	Validate       bool
}

func newGenerateCommand(root *rootOptions) *cobra.Command {
	flags := &GenerateFlags{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the documentation pages and lookup table",
		Long: `Generate the documentation site sources from an OpenAPI document.

Writes one MDX page per (tag, operation) to <output>/<folder>/, a
_category_.json per folder, <output>/index.mdx, and the route to method
lookup table to --mappings. Unknown tags get a slugified folder name and
sidebar position 1000.

--clean only removes an output directory inside the working directory.

Unresolvable $ref targets are skipped silently; run "oasdocs validate" or
pass --validate to find them.`,
		Example: `  oasdocs generate
  oasdocs generate --spec api.yaml --output site/docs/api --clean
  oasdocs generate --mappings internal/partnerapi/mappings.go --mappings-format go
  oasdocs generate --validate --log-format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, root, flags)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.Spec, "spec", "s", docgen.DefaultSpecPath, "OpenAPI document to read")
	f.StringVarP(&flags.Output, "output", "o", docgen.DefaultOutputDir, "directory to write pages to")
	f.StringVar(&flags.Mappings, "mappings", docgen.DefaultMappingsPath, "file to write the route to method lookup table to")
	f.StringVar(&flags.MappingsFormat, "mappings-format", string(docgen.MappingsJS), "lookup table language: js or go")
	f.StringVar(&flags.URLPrefix, "url-prefix", docgen.DefaultURLPrefix, "site route prefix used in the lookup table")
	f.BoolVar(&flags.NoMappings, "no-mappings", false, "do not write the lookup table")
	f.BoolVar(&flags.Clean, "clean", false, "remove the output directory before writing; it must be inside the working directory")
	f.BoolVar(&flags.Validate, "validate", false, "validate the document first and stop on errors")
	return cmd
}

func runGenerate(cmd *cobra.Command, root *rootOptions, flags *GenerateFlags) error {
	conf := root.config
	specPath := stringFlag(cmd, "spec", flags.Spec, conf.Spec)
	outputDir := stringFlag(cmd, "output", flags.Output, conf.Output)
	mappingsPath := stringFlag(cmd, "mappings", flags.Mappings, conf.Mappings)
	if flags.NoMappings {
		mappingsPath = ""
	}
	log := root.logger.With("spec", specPath)

	site, err := conf.SiteConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("url-prefix") {
		site.URLPrefix = flags.URLPrefix
	}

	if flags.Validate {
		if err := validateBeforeGenerate(cmd, root, specPath); err != nil {
			return err
		}
	}

	opts := []docgen.Option{
		docgen.WithFilePath(specPath),
		docgen.WithSiteConfig(site),
		docgen.WithLogger(parser.NewSlogAdapter(log)),
		docgen.WithClean(flags.Clean || conf.Clean),
	}
	if cmd.Flags().Changed("mappings-format") {
		opts = append(opts, docgen.WithMappingsFormat(flags.MappingsFormat))
	}

	start := time.Now()
	result, err := docgen.GenerateWithOptions(opts...)
	if err != nil {
		return fmt.Errorf("generating docs: %w", err)
	}
	if err := result.WriteFiles(outputDir, mappingsPath); err != nil {
		return fmt.Errorf("writing docs: %w", err)
	}

	if result.Stats.UntaggedOperations > 0 {
		log.Warn("operations without tags were skipped", "count", result.Stats.UntaggedOperations)
	}

	out := cmd.OutOrStdout()
	cliutil.Writef(out, "Generated %d pages in %d folders\n", result.Stats.PageCount, result.Stats.TagCount)
	cliutil.Writef(out, "Output: %s\n", outputDir)
	if mappingsPath != "" {
		cliutil.Writef(out, "Mappings: %s\n", mappingsPath)
	}
	cliutil.Writef(out, "Total Time: %v\n", time.Since(start).Round(time.Millisecond))
	return nil
}

// validateBeforeGenerate stops generation when the document has errors.
// Warnings are logged.
func validateBeforeGenerate(cmd *cobra.Command, root *rootOptions, specPath string) error {
	v := validator.New()
	v.Logger = parser.NewSlogAdapter(root.logger)
	result, err := v.Validate(cmd.Context(), specPath)
	if err != nil {
		return fmt.Errorf("validating document: %w", err)
	}
	for _, issue := range result.Issues {
		if issue.Severity == validator.SeverityWarning {
			root.logger.Warn("validation warning", "path", issue.Path, "message", issue.Message)
		}
	}
	if !result.Valid {
		return fmt.Errorf("document has %d validation errors: %w", result.ErrorCount, result.Err())
	}
	return nil
}
