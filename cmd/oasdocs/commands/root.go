// Package commands provides the cobra commands of the oasdocs CLI.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/partnerdocs/oasdocs"
	"github.com/partnerdocs/oasdocs/internal/siteconfig"
)

// Log format constants
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// rootOptions holds the persistent flags and the state PersistentPreRunE
// derives from them.
type rootOptions struct {
	verbose    bool
	logFormat  string
	configPath string

	logger *slog.Logger
	// config is the defaults with the config file applied.
	config *siteconfig.File
}

// NewRootCommand builds the oasdocs command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "oasdocs",
		Short: "Generate documentation site pages from an OpenAPI document",
		Long: `oasdocs converts an OpenAPI 3.0 document into documentation site sources.

For every (tag, operation) pair it writes one MDX page with the request and
response attribute tables and example payloads. Every tag folder gets a
_category_.json sidebar descriptor, the output root gets an index.mdx, and a
lookup table maps each page route to its HTTP method.

Settings are read from oasdocs.yaml in the working directory when present
(or the file named by --config). Command line flags override file values.`,
		Version:       oasdocs.Version(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd.ErrOrStderr())
		},
	}
	root.SetVersionTemplate("oasdocs {{.Version}}\n")

	flags := root.PersistentFlags()
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output")
	flags.StringVar(&opts.logFormat, "log-format", LogFormatText, "log format: text or json")
	flags.StringVar(&opts.configPath, "config", "", "site configuration file (default: ./"+siteconfig.DefaultFileName+" when present)")

	root.AddCommand(
		newGenerateCommand(opts),
		newEndpointsCommand(opts),
		newValidateCommand(opts),
		newMCPCommand(),
		newVersionCommand(opts),
	)
	return root
}

// setup builds the logger and loads the configuration file.
func (o *rootOptions) setup(stderr io.Writer) error {
	logger, err := newLogger(stderr, o.logFormat, o.verbose)
	if err != nil {
		return err
	}
	o.logger = logger

	var file *siteconfig.File
	if o.configPath != "" {
		file, err = siteconfig.Load(o.configPath)
	} else {
		file, err = siteconfig.LoadOptional(siteconfig.DefaultFileName)
	}
	if err != nil {
		return err
	}
	if file != nil {
		logger.Debug("loaded config", "tags", len(file.Tags))
	}
	o.config = siteconfig.Defaults().Merge(file)
	return nil
}

func newLogger(w io.Writer, format string, verbose bool) (*slog.Logger, error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handlerOpts := &slog.HandlerOptions{Level: level}
	switch format {
	case LogFormatText, "":
		return slog.New(slog.NewTextHandler(w, handlerOpts)), nil
	case LogFormatJSON:
		return slog.New(slog.NewJSONHandler(w, handlerOpts)), nil
	}
	return nil, fmt.Errorf("invalid log format '%s'. Valid formats: %s, %s", format, LogFormatText, LogFormatJSON)
}

// Execute runs the CLI with args and returns the process exit code. Errors
// are logged to stderr.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	cmd, err := root.ExecuteContextC(ctx)
	if err == nil {
		return 0
	}

	logger := slog.New(slog.NewTextHandler(stderr, nil))
	if l, lerr := newLogger(stderr, logFormatFlag(cmd), false); lerr == nil {
		logger = l
	}
	name := root.Name()
	if cmd != nil {
		name = cmd.Name()
	}
	logger.Error("oasdocs failed", "command", name, "error", err)
	return 1
}

// logFormatFlag returns the --log-format value cmd was run with, falling
// back to text when flag parsing never got that far.
func logFormatFlag(cmd *cobra.Command) string {
	if cmd == nil {
		return LogFormatText
	}
	if f := cmd.Flags().Lookup("log-format"); f != nil {
		return f.Value.String()
	}
	return LogFormatText
}
