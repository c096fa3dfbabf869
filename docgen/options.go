package docgen

import (
	"fmt"

	"github.com/partnerdocs/oasdocs/internal/options"
	"github.com/partnerdocs/oasdocs/oaserrors"
	"github.com/partnerdocs/oasdocs/parser"
)

// Option is a function that configures a generate operation
type Option func(*generateConfig) error

// generateConfig holds configuration for a generate operation
type generateConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	parsed   *parser.ParseResult

	site           *SiteConfig
	logger         parser.Logger
	mappingsFormat MappingsFormat
	clean          bool
}

// GenerateWithOptions renders a documentation site using functional options.
//
// Example:
//
//	result, err := docgen.GenerateWithOptions(
//	    docgen.WithFilePath("schemas/partner-api.yaml"),
//	    docgen.WithMappingsFormat("js"),
//	)
//	if err != nil {
//	    return err
//	}
//	err = result.WriteFiles("docs/apis/partner-api", "src/client/partner-api-badge-mappings.js")
func GenerateWithOptions(opts ...Option) (*GenerateResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("docgen: invalid options: %w", err)
	}

	site := cfg.site.Clone()
	if cfg.mappingsFormat != "" {
		site.MappingsFormat = cfg.mappingsFormat
	}
	g := &Generator{
		Site:   site,
		Logger: cfg.logger,
		Clean:  cfg.clean,
	}

	if cfg.filePath != nil {
		return g.Generate(*cfg.filePath)
	}
	return g.GenerateParsed(*cfg.parsed)
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*generateConfig, error) {
	cfg := &generateConfig{
		site:   DefaultSiteConfig(),
		logger: parser.NopLogger{},
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ExactlyOne(
		options.Source{Name: "WithFilePath", Set: cfg.filePath != nil},
		options.Source{Name: "WithParsed", Set: cfg.parsed != nil},
	); err != nil {
		return nil, &oaserrors.ConfigError{Option: "input", Message: err.Error()}
	}

	return cfg, nil
}

// WithFilePath specifies the OpenAPI document to read
func WithFilePath(path string) Option {
	return func(cfg *generateConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithParsed specifies an already parsed document as the input source
func WithParsed(result parser.ParseResult) Option {
	return func(cfg *generateConfig) error {
		cfg.parsed = &result
		return nil
	}
}

// WithSiteConfig replaces the default site layout
func WithSiteConfig(site *SiteConfig) Option {
	return func(cfg *generateConfig) error {
		if site == nil {
			return &oaserrors.ConfigError{Option: "site", Message: "site config must not be nil"}
		}
		cfg.site = site
		return nil
	}
}

// WithLogger sets the logger for generation progress
// Default: parser.NopLogger
func WithLogger(l parser.Logger) Option {
	return func(cfg *generateConfig) error {
		cfg.logger = parser.OrNop(l)
		return nil
	}
}

// WithMappingsFormat selects the lookup table language, "js" or "go"
// Default: the site config's format ("js")
func WithMappingsFormat(format string) Option {
	return func(cfg *generateConfig) error {
		f, err := ParseMappingsFormat(format)
		if err != nil {
			return &oaserrors.ConfigError{Option: "mappings-format", Value: format, Cause: err}
		}
		cfg.mappingsFormat = f
		return nil
	}
}

// WithClean removes the output directory before files are written
// Default: false
func WithClean(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.clean = enabled
		return nil
	}
}
