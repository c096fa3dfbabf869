package parser

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"time"

	"go.yaml.in/yaml/v4"

	"github.com/partnerdocs/oasdocs/oaserrors"
)

// DefaultMaxFileSize is the largest document Parse will read (10 MiB).
const DefaultMaxFileSize int64 = 10 << 20

// Parser handles OpenAPI document parsing.
type Parser struct {
	// Logger is the structured logger for debug output.
	// If nil, logging is disabled (default)
	Logger Logger

	// MaxFileSize is the maximum document size in bytes.
	// Default: 10MB
	MaxFileSize int64
}

// New creates a new Parser instance with default settings.
func New() *Parser {
	return &Parser{MaxFileSize: DefaultMaxFileSize}
}

func (p *Parser) log() Logger {
	return OrNop(p.Logger)
}

func (p *Parser) maxFileSize() int64 {
	if p.MaxFileSize > 0 {
		return p.MaxFileSize
	}
	return DefaultMaxFileSize
}

// SourceFormat represents the format of the source document.
type SourceFormat string

const (
	// SourceFormatYAML indicates the source was in YAML format
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatJSON indicates the source was in JSON format
	SourceFormatJSON SourceFormat = "json"
)

// ParseResult contains the parsed document and load metadata.
//
// Callers should treat ParseResult as read-only; the MCP server shares
// results between tool calls.
type ParseResult struct {
	// SourcePath is the path the document was read from. For in-memory
	// input it is "ParseBytes.yaml" or "ParseReader.yaml" unless overridden.
	SourcePath string
	// SourceFormat is the detected format of the source
	SourceFormat SourceFormat
	// Version is the declared OpenAPI version string
	Version string
	// Document is the parsed document
	Document *Document
	// LoadTime is the time taken to read the source data
	LoadTime time.Duration
	// SourceSize is the size of the source data in bytes
	SourceSize int64
	// Stats contains statistical information about the document
	Stats DocumentStats
}

// Parse reads and parses the document at specPath.
func (p *Parser) Parse(specPath string) (*ParseResult, error) {
	loadStart := time.Now()
	info, err := os.Stat(specPath)
	if err != nil {
		return nil, &oaserrors.ParseError{Path: specPath, Message: "failed to read file", Cause: err}
	}
	if info.Size() > p.maxFileSize() {
		return nil, &oaserrors.ParseError{
			Path:    specPath,
			Message: fmt.Sprintf("file is %s, larger than the %s limit", FormatBytes(info.Size()), FormatBytes(p.maxFileSize())),
		}
	}
	data, err := os.ReadFile(specPath)
	if err != nil {
		return nil, &oaserrors.ParseError{Path: specPath, Message: "failed to read file", Cause: err}
	}
	loadTime := time.Since(loadStart)

	res, err := p.parse(data, specPath)
	if err != nil {
		return nil, err
	}
	res.LoadTime = loadTime
	return res, nil
}

// ParseReader parses a document from an io.Reader.
func (p *Parser) ParseReader(r io.Reader) (*ParseResult, error) {
	loadStart := time.Now()
	data, err := io.ReadAll(io.LimitReader(r, p.maxFileSize()+1))
	if err != nil {
		return nil, &oaserrors.ParseError{Path: "ParseReader.yaml", Message: "failed to read data", Cause: err}
	}
	if int64(len(data)) > p.maxFileSize() {
		return nil, &oaserrors.ParseError{
			Path:    "ParseReader.yaml",
			Message: fmt.Sprintf("input is larger than the %s limit", FormatBytes(p.maxFileSize())),
		}
	}
	loadTime := time.Since(loadStart)

	res, err := p.parse(data, "ParseReader.yaml")
	if err != nil {
		return nil, err
	}
	res.LoadTime = loadTime
	return res, nil
}

// ParseBytes parses a document held in memory.
func (p *Parser) ParseBytes(data []byte) (*ParseResult, error) {
	return p.parse(data, "ParseBytes.yaml")
}

func (p *Parser) parse(data []byte, sourcePath string) (*ParseResult, error) {
	log := p.log().With("source", sourcePath)
	log.Debug("parsing document", "bytes", len(data))

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		line, col := yamlErrorPosition(err)
		return nil, &oaserrors.ParseError{
			Path:    sourcePath,
			Line:    line,
			Column:  col,
			Message: "invalid YAML",
			Cause:   err,
		}
	}

	doc, err := decodeDocument(&root)
	if err != nil {
		return nil, &oaserrors.ParseError{Path: sourcePath, Message: err.Error()}
	}

	res := &ParseResult{
		SourcePath:   sourcePath,
		SourceFormat: detectFormat(data),
		Version:      doc.OpenAPI,
		Document:     doc,
		SourceSize:   int64(len(data)),
		Stats:        GetDocumentStats(doc),
	}
	log.Debug("parsed document",
		"version", res.Version,
		"paths", res.Stats.PathCount,
		"operations", res.Stats.OperationCount,
		"schemas", res.Stats.SchemaCount)
	return res, nil
}

// detectFormat reports JSON when the first non-blank byte opens an object.
func detectFormat(data []byte) SourceFormat {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return SourceFormatJSON
	}
	return SourceFormatYAML
}

var (
	yamlLinePattern   = regexp.MustCompile(`line (\d+)`)
	yamlColumnPattern = regexp.MustCompile(`column (\d+)`)
)

// yamlErrorPosition extracts the line and column the YAML decoder reports
// in its message, or zeros.
func yamlErrorPosition(err error) (int, int) {
	msg := err.Error()
	var line, col int
	if m := yamlLinePattern.FindStringSubmatch(msg); m != nil {
		line, _ = strconv.Atoi(m[1])
	}
	if m := yamlColumnPattern.FindStringSubmatch(msg); m != nil {
		col, _ = strconv.Atoi(m[1])
	}
	return line, col
}
