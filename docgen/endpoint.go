package docgen

import (
	"fmt"
	"math"
	"path"
	"strings"

	"github.com/partnerdocs/oasdocs/internal/jsonutil"
	"github.com/partnerdocs/oasdocs/internal/naming"
	"github.com/partnerdocs/oasdocs/parser"
	"github.com/partnerdocs/oasdocs/schemadoc"
)

// successCodes are the responses documented on a page, in preference order.
var successCodes = []string{"200", "201"}

// Endpoint is one (tag, operation) pair scheduled for a page.
type Endpoint struct {
	// Method is the path item key as written, e.g. "post"
	Method    string
	Path      string
	Operation *parser.Operation
	Tag       string
	// Index is the zero-based position of the endpoint within its tag.
	Index int
}

// EndpointPage is the rendered documentation page of one endpoint.
type EndpointPage struct {
	Endpoint

	Title       string
	Description string
	// Slug is the slugified title; FileName adds the ordering prefix.
	Slug            string
	Folder          string
	FileName        string
	SidebarPosition int

	RequestAttributes  []schemadoc.Attribute
	RequestExample     any
	ResponseAttributes []schemadoc.Attribute
	ResponseExample    any

	// Content is the MDX page.
	Content []byte
}

// RelPath is the slash-separated path of the page below the output directory.
func (p *EndpointPage) RelPath() string {
	return path.Join(p.Folder, p.FileName)
}

// URL is the site route of the page below prefix.
func (p *EndpointPage) URL(prefix string) string {
	return strings.TrimSuffix(prefix, "/") + "/" + p.Folder + "/" + strings.TrimSuffix(p.FileName, ".mdx")
}

// pageData feeds templates/page.mdx.tmpl. JSON fields are already encoded.
type pageData struct {
	Title               string
	SidebarPosition     int
	RequestAttributes   string
	ResponseAttributes  string
	RequestExampleCode  string
	ResponseExampleCode string
	Description         string
	Method              string
	Path                string
}

// EmitEndpoint renders the page for ep. It performs no I/O.
func EmitEndpoint(ep Endpoint, doc *parser.Document, cfg *SiteConfig) (*EndpointPage, error) {
	if ep.Operation == nil {
		return nil, fmt.Errorf("docgen: endpoint %s %s has no operation", ep.Method, ep.Path)
	}
	if cfg == nil {
		cfg = DefaultSiteConfig()
	}
	op := ep.Operation
	r := schemadoc.NewResolver(doc)

	page := &EndpointPage{
		Endpoint:    ep,
		Title:       pageTitle(ep.Method, ep.Path, op),
		Description: firstNonEmpty(op.Description, op.Summary),
		Folder:      cfg.Folder(ep.Tag),
	}
	page.Slug = naming.Slugify(page.Title)
	page.FileName = naming.PageFileName(ep.Index, page.Slug)
	page.SidebarPosition = cfg.BasePosition(page.Folder) + ep.Index

	if s := requestBody(op, doc).JSONSchema(); s != nil {
		page.RequestAttributes = r.Attributes(s)
		page.RequestExample = r.Example(s)
	}
	if len(page.RequestAttributes) == 0 {
		if query := queryAttributes(op, doc); len(query) > 0 {
			page.RequestAttributes = query
		}
	}
	for _, code := range successCodes {
		if s := response(op, doc, code).JSONSchema(); s != nil {
			page.ResponseAttributes = r.Attributes(s)
			page.ResponseExample = r.Example(s)
			break
		}
	}

	data, err := page.templateData()
	if err != nil {
		return nil, fmt.Errorf("docgen: %s %s: %w", strings.ToUpper(ep.Method), ep.Path, err)
	}
	page.Content, err = executeTemplate("page.mdx.tmpl", data)
	if err != nil {
		return nil, fmt.Errorf("docgen: %s %s: %w", strings.ToUpper(ep.Method), ep.Path, err)
	}
	return page, nil
}

func (p *EndpointPage) templateData() (*pageData, error) {
	reqAttrs, err := attributesJSON(p.RequestAttributes)
	if err != nil {
		return nil, err
	}
	respAttrs, err := attributesJSON(p.ResponseAttributes)
	if err != nil {
		return nil, err
	}
	reqCode, err := exampleCode(p.RequestExample)
	if err != nil {
		return nil, err
	}
	respCode, err := exampleCode(p.ResponseExample)
	if err != nil {
		return nil, err
	}
	method := strings.ToUpper(p.Method)
	route := naming.FormatPath(p.Path)
	return &pageData{
		Title:               p.Title,
		SidebarPosition:     p.SidebarPosition,
		RequestAttributes:   reqAttrs,
		ResponseAttributes:  respAttrs,
		RequestExampleCode:  reqCode,
		ResponseExampleCode: respCode,
		Description:         escapeAttribute(p.Description),
		Method:              method,
		Path:                route,
	}, nil
}

// requestBody returns the operation's request body with a $ref followed.
func requestBody(op *parser.Operation, doc *parser.Document) *parser.RequestBody {
	rb := op.RequestBody
	if rb != nil && rb.Ref != "" {
		return doc.LookupRequestBody(rb.Ref)
	}
	return rb
}

// response returns the response for code with a $ref followed.
func response(op *parser.Operation, doc *parser.Document, code string) *parser.Response {
	resp := op.Response(code)
	if resp != nil && resp.Ref != "" {
		return doc.LookupResponse(resp.Ref)
	}
	return resp
}

// queryAttributes documents the query parameters of op. Parameter
// references are followed before the location is checked, so a referenced
// query parameter is documented. The legacy generator checked the location
// first and dropped those; this departs from it on purpose.
func queryAttributes(op *parser.Operation, doc *parser.Document) []schemadoc.Attribute {
	var attrs []schemadoc.Attribute
	for _, p := range op.Parameters {
		if p.Ref != "" {
			if p = doc.LookupParameter(p.Ref); p == nil {
				continue
			}
		}
		if p.In != "query" {
			continue
		}
		schema := p.Schema
		if schema == nil {
			schema = &parser.Schema{}
		}
		attrs = append(attrs, schemadoc.Attribute{
			Name:        p.Name,
			Type:        schemadoc.TypeLabel(schema),
			Description: p.Description,
			Required:    p.Required,
			Nullable:    schema.Nullable,
		})
	}
	return attrs
}

func attributesJSON(attrs []schemadoc.Attribute) (string, error) {
	if attrs == nil {
		attrs = []schemadoc.Attribute{}
	}
	b, err := jsonutil.MarshalIndent(attrs)
	if err != nil {
		return "", fmt.Errorf("encoding attributes: %w", err)
	}
	return string(b), nil
}

// exampleCode returns the example pretty-printed and then quoted as a string
// literal. Falsy values render as "{}"; NaN and infinities nested in the
// example render as null.
func exampleCode(v any) (string, error) {
	code := "{}"
	if !isFalsy(v) {
		b, err := jsonutil.MarshalIndent(parser.JSONValue(v))
		if err != nil {
			return "", fmt.Errorf("encoding example: %w", err)
		}
		code = string(b)
	}
	return jsonutil.Quote(code)
}

func isFalsy(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case bool:
		return !x
	case string:
		return x == ""
	case int:
		return x == 0
	case int64:
		return x == 0
	case uint64:
		return x == 0
	case float64:
		return x == 0 || math.IsNaN(x)
	}
	return false
}

// escapeAttribute makes s safe inside a double-quoted JSX attribute.
func escapeAttribute(s string) string {
	s = strings.ReplaceAll(s, `"`, `\"`)
	return strings.ReplaceAll(s, "\n", " ")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
