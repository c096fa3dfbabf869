package commands

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/partnerdocs/oasdocs/docgen"
	"github.com/partnerdocs/oasdocs/internal/cliutil"
	"github.com/partnerdocs/oasdocs/parser"
)

// EndpointsFlags contains flags for the endpoints command
type EndpointsFlags struct {
	Spec   string
	Format string
}

// EndpointRow is one planned page as printed by the endpoints command.
type EndpointRow struct {
	Tag             string `json:"tag" yaml:"tag"`
	Folder          string `json:"folder" yaml:"folder"`
	File            string `json:"file" yaml:"file"`
	SidebarPosition int    `json:"sidebarPosition" yaml:"sidebarPosition"`
	Method          string `json:"method" yaml:"method"`
	Path            string `json:"path" yaml:"path"`
	Title           string `json:"title" yaml:"title"`
}

func newEndpointsCommand(root *rootOptions) *cobra.Command {
	flags := &EndpointsFlags{}

	cmd := &cobra.Command{
		Use:   "endpoints",
		Short: "List the pages generate would write",
		Long: `List every (tag, operation) page generate would write, in generation
order, without writing anything.`,
		Example: `  oasdocs endpoints
  oasdocs endpoints --spec api.yaml --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := ValidateOutputFormat(flags.Format); err != nil {
				return err
			}
			rows, err := planEndpoints(root, stringFlag(cmd, "spec", flags.Spec, root.config.Spec))
			if err != nil {
				return err
			}
			if flags.Format != FormatText {
				return OutputStructured(cmd.OutOrStdout(), rows, flags.Format)
			}
			table := make([][]string, 0, len(rows))
			for _, r := range rows {
				table = append(table, []string{r.Folder, r.File, strconv.Itoa(r.SidebarPosition), r.Method, r.Path, r.Title})
			}
			return cliutil.WriteTable(cmd.OutOrStdout(), []string{"folder", "file", "position", "method", "path", "title"}, table)
		},
	}

	cmd.Flags().StringVarP(&flags.Spec, "spec", "s", docgen.DefaultSpecPath, "OpenAPI document to read")
	cmd.Flags().StringVarP(&flags.Format, "format", "f", FormatText, "output format: text, json, or yaml")
	return cmd
}

// planEndpoints renders the site in memory and returns one row per page.
func planEndpoints(root *rootOptions, specPath string) ([]EndpointRow, error) {
	site, err := root.config.SiteConfig()
	if err != nil {
		return nil, err
	}
	result, err := docgen.GenerateWithOptions(
		docgen.WithFilePath(specPath),
		docgen.WithSiteConfig(site),
		docgen.WithLogger(parser.NewSlogAdapter(root.logger.With("spec", specPath))),
	)
	if err != nil {
		return nil, err
	}

	rows := make([]EndpointRow, 0, len(result.Pages))
	for _, page := range result.Pages {
		rows = append(rows, EndpointRow{
			Tag:             page.Tag,
			Folder:          page.Folder,
			File:            page.FileName,
			SidebarPosition: page.SidebarPosition,
			Method:          strings.ToUpper(page.Method),
			Path:            page.Path,
			Title:           page.Title,
		})
	}
	return rows, nil
}
