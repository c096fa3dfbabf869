package mcpserver

import (
	"fmt"
	"strings"

	"github.com/partnerdocs/oasdocs/internal/options"
	"github.com/partnerdocs/oasdocs/internal/pathutil"
	"github.com/partnerdocs/oasdocs/parser"
)

// specInput represents the two ways an OAS document can be provided to a tool.
// Exactly one of File or Content must be set.
type specInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to an OAS file on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline OAS document content (YAML or JSON)"`
}

// resolve parses the document from whichever input was provided. Every call
// reads the source again; nothing is kept between tool calls.
func (s specInput) resolve() (*parser.ParseResult, error) {
	if err := options.ExactlyOne(
		options.Source{Name: "file", Set: s.File != ""},
		options.Source{Name: "content", Set: s.Content != ""},
	); err != nil {
		return nil, err
	}

	// Enforce inline content size limit.
	if s.Content != "" && int64(len(s.Content)) > cfg.MaxInlineSize {
		return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set OASDOCS_MAX_INLINE_SIZE to increase",
			len(s.Content), cfg.MaxInlineSize)
	}

	var opts []parser.Option
	switch {
	case s.File != "":
		opts = append(opts, parser.WithFilePath(s.File))
	case s.Content != "":
		opts = append(opts,
			parser.WithReader(strings.NewReader(s.Content)),
			parser.WithSourceName("content.yaml"),
		)
	}
	return parser.ParseWithOptions(opts...)
}

// outputPath maps a requested output location onto the filesystem. With
// OASDOCS_OUTPUT_ROOT set, p must be a local path and is placed below the
// root. An empty p selects fallback.
func outputPath(p, fallback string) (string, error) {
	if p == "" {
		p = fallback
	}
	if cfg.OutputRoot == "" {
		return p, nil
	}
	return pathutil.JoinBelow(cfg.OutputRoot, p)
}
