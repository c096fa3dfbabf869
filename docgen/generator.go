package docgen

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/partnerdocs/oasdocs/internal/jsonutil"
	"github.com/partnerdocs/oasdocs/internal/naming"
	"github.com/partnerdocs/oasdocs/parser"
)

const (
	// CategoryFileName is the per-folder sidebar descriptor.
	CategoryFileName = "_category_.json"
	// IndexFileName is the introduction page at the root of the output.
	IndexFileName = "index.mdx"
)

// GeneratedFile is a single generated file.
type GeneratedFile struct {
	// Name is the slash-separated path relative to the output directory,
	// e.g. "prospects/10-create-a-prospect.mdx"
	Name string
	// Content is the file body
	Content []byte
}

// TagSummary describes one generated folder.
type TagSummary struct {
	Tag      string
	Folder   string
	Position int
	Pages    int
}

// GenerateStats counts what a run produced.
type GenerateStats struct {
	parser.DocumentStats
	// TagCount is the number of folders generated
	TagCount int
	// PageCount is the number of endpoint pages generated
	PageCount int
	// UntaggedOperations is the number of operations skipped for lack of tags
	UntaggedOperations int
}

// GenerateResult contains everything one run produces. Nothing is written
// until WriteFiles is called.
type GenerateResult struct {
	// Files are the pages, category descriptors and index page, in
	// generation order.
	Files []GeneratedFile
	// Mappings is the lookup table from page route to HTTP method.
	Mappings GeneratedFile
	// Pages are the endpoint pages in generation order.
	Pages []*EndpointPage
	// Tags are the generated folders in first-seen order.
	Tags []TagSummary
	// SourcePath is the OpenAPI document the result was generated from
	SourcePath string
	// Clean removes the output directory before WriteFiles writes to it.
	Clean bool
	// CleanRoot is the directory a cleaned output directory must lie below.
	// Empty means the working directory.
	CleanRoot string
	// LoadTime is the time taken to load the source document
	LoadTime time.Duration
	// GenerateTime is the time taken to render all files
	GenerateTime time.Duration
	// Stats contains statistical information about the run
	Stats GenerateStats
}

// GetFile returns the generated file with the given relative name, or nil if not found
func (r *GenerateResult) GetFile(name string) *GeneratedFile {
	for i := range r.Files {
		if r.Files[i].Name == name {
			return &r.Files[i]
		}
	}
	return nil
}

// Generator renders documentation sites from OpenAPI documents.
type Generator struct {
	// Site is the folder, position and lookup table layout.
	// If nil, DefaultSiteConfig is used.
	Site *SiteConfig

	// Logger receives progress messages. If nil, nothing is logged.
	Logger parser.Logger

	// Clean is copied to GenerateResult.Clean.
	Clean bool
}

// New creates a new Generator instance with default settings
func New() *Generator {
	return &Generator{
		Site:   DefaultSiteConfig(),
		Logger: parser.NopLogger{},
	}
}

func (g *Generator) site() *SiteConfig {
	if g.Site == nil {
		return DefaultSiteConfig()
	}
	return g.Site.withDefaults()
}

// Generate parses the document at specPath and renders the site.
func (g *Generator) Generate(specPath string) (*GenerateResult, error) {
	result, err := parser.ParseWithOptions(
		parser.WithFilePath(specPath),
		parser.WithLogger(parser.OrNop(g.Logger)),
	)
	if err != nil {
		return nil, err
	}
	return g.GenerateParsed(*result)
}

// GenerateParsed renders the site for an already parsed document.
func (g *Generator) GenerateParsed(result parser.ParseResult) (*GenerateResult, error) {
	if result.Document == nil {
		return nil, fmt.Errorf("docgen: parse result has no document")
	}
	start := time.Now()
	log := parser.OrNop(g.Logger)
	site := g.site()
	doc := result.Document

	groups, untagged := groupByTag(doc)
	out := &GenerateResult{
		SourcePath: result.SourcePath,
		Clean:      g.Clean,
		LoadTime:   result.LoadTime,
		Stats: GenerateStats{
			DocumentStats:      result.Stats,
			UntaggedOperations: untagged,
		},
	}
	routes := parser.NewObject()

	for _, group := range groups {
		folder := site.Folder(group.tag)
		base := site.BasePosition(folder)

		category, err := categoryJSON(group.tag, base)
		if err != nil {
			return nil, fmt.Errorf("docgen: category %q: %w", group.tag, err)
		}
		out.Files = append(out.Files, GeneratedFile{Name: path.Join(folder, CategoryFileName), Content: category})

		for _, ep := range group.endpoints {
			page, err := EmitEndpoint(ep, doc, site)
			if err != nil {
				return nil, err
			}
			out.Files = append(out.Files, GeneratedFile{Name: page.RelPath(), Content: page.Content})
			out.Pages = append(out.Pages, page)
			routes.Set(page.URL(site.URLPrefix), strings.ToUpper(ep.Method))
			log.Info("generated page", "folder", folder, "file", page.FileName)
		}

		out.Tags = append(out.Tags, TagSummary{
			Tag:      group.tag,
			Folder:   folder,
			Position: base,
			Pages:    len(group.endpoints),
		})
	}

	index, err := executeTemplate("index.mdx.tmpl", nil)
	if err != nil {
		return nil, fmt.Errorf("docgen: %w", err)
	}
	out.Files = append(out.Files, GeneratedFile{Name: IndexFileName, Content: index})

	out.Mappings, err = renderMappings(routes, site)
	if err != nil {
		return nil, fmt.Errorf("docgen: lookup table: %w", err)
	}

	out.Stats.TagCount = len(out.Tags)
	out.Stats.PageCount = len(out.Pages)
	out.GenerateTime = time.Since(start)
	log.Info("generated docs", "tags", out.Stats.TagCount, "pages", out.Stats.PageCount)
	return out, nil
}

// tagGroup is the endpoints of one tag in source order.
type tagGroup struct {
	tag       string
	endpoints []Endpoint
}

// groupByTag schedules one endpoint per (tag, operation) pair. Tags keep
// first-seen order. It also returns the number of untagged operations.
func groupByTag(doc *parser.Document) ([]*tagGroup, int) {
	var groups []*tagGroup
	byTag := make(map[string]*tagGroup)
	untagged := 0

	for _, op := range doc.Operations() {
		if len(op.Tags) == 0 {
			untagged++
			continue
		}
		for _, tag := range op.Tags {
			g, ok := byTag[tag]
			if !ok {
				g = &tagGroup{tag: tag}
				byTag[tag] = g
				groups = append(groups, g)
			}
			g.endpoints = append(g.endpoints, Endpoint{
				Method:    op.Method,
				Path:      op.Path,
				Operation: op,
				Tag:       tag,
				Index:     len(g.endpoints),
			})
		}
	}
	return groups, untagged
}

// Endpoints returns every endpoint that would get a page, grouped by tag in
// first-seen order.
func Endpoints(doc *parser.Document) []Endpoint {
	groups, _ := groupByTag(doc)
	var out []Endpoint
	for _, g := range groups {
		out = append(out, g.endpoints...)
	}
	return out
}

func categoryJSON(tag string, position int) ([]byte, error) {
	b, err := jsonutil.MarshalIndent(struct {
		Label    string `json:"label"`
		Position int    `json:"position"`
	}{Label: tag, Position: position})
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

type mappingEntry struct {
	URL    string
	Method string
}

// renderMappings renders the route to method table in the configured format.
func renderMappings(routes *parser.Object, site *SiteConfig) (GeneratedFile, error) {
	switch site.MappingsFormat {
	case MappingsGo:
		entries := make([]mappingEntry, 0, routes.Len())
		for _, url := range routes.Keys() {
			method, _ := routes.Get(url)
			entries = append(entries, mappingEntry{URL: url, Method: method.(string)})
		}
		content, err := executeGoTemplate("mappings.go.tmpl", "mappings.go", struct {
			Package string
			Var     string
			Entries []mappingEntry
		}{
			Package: site.MappingsPackage,
			Var:     naming.ToPascalCase(site.MappingsVar),
			Entries: entries,
		})
		if err != nil {
			return GeneratedFile{}, err
		}
		return GeneratedFile{Name: "mappings.go", Content: content}, nil
	default:
		table, err := jsonutil.MarshalIndent(routes)
		if err != nil {
			return GeneratedFile{}, err
		}
		content, err := executeTemplate("mappings.js.tmpl", struct {
			Var  string
			JSON string
		}{Var: site.MappingsVar, JSON: string(table)})
		if err != nil {
			return GeneratedFile{}, err
		}
		return GeneratedFile{Name: "mappings.js", Content: content}, nil
	}
}
