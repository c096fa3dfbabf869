package parser

import (
	"strconv"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/partnerdocs/oasdocs/internal/httputil"
)

// HTTPMethods lists the path item keys that are operations, in the order
// OpenAPI declares them.
var HTTPMethods = httputil.Methods

// componentsPrefix is stripped from a $ref before it is split into segments.
const componentsPrefix = "#/components/"

// Document is a parsed OpenAPI 3.x document.
type Document struct {
	// OpenAPI is the declared version string (e.g. "3.0.3")
	OpenAPI string
	Info    Info
	// Paths are in source order.
	Paths []*PathItem
	// Components is the raw components mapping, the root for $ref lookups.
	Components *yaml.Node
}

// Info is the document's info object.
type Info struct {
	Title       string
	Version     string
	Description string
}

// PathItem holds the operations declared under one path template.
type PathItem struct {
	Path string
	// Operations are in source order.
	Operations []*Operation
}

// Operation is one HTTP method on one path.
type Operation struct {
	// Method is the path item key as written, e.g. "post"
	Method      string
	Path        string
	Summary     string
	Description string
	OperationID string
	Tags        []string
	Deprecated  bool
	Parameters  []*Parameter
	RequestBody *RequestBody
	// Responses are in source order.
	Responses []*Response
	// Line is the source line of the operation (0 if unknown)
	Line int
}

// Parameter is an operation parameter, or a reference to one.
type Parameter struct {
	Ref         string
	Name        string
	In          string
	Description string
	Required    bool
	Schema      *Schema
}

// RequestBody is an operation's request body, or a reference to one.
type RequestBody struct {
	Ref         string
	Description string
	Required    bool
	Content     []*MediaType
}

// Response is one entry of an operation's responses map.
type Response struct {
	// Code is the status code key, e.g. "200" or "default"
	Code        string
	Ref         string
	Description string
	Content     []*MediaType
}

// MediaType is one entry of a content map.
type MediaType struct {
	// Name is the media type key, e.g. "application/json"
	Name   string
	Schema *Schema
}

// ContentTypeJSON is the media type whose schemas are documented.
const ContentTypeJSON = "application/json"

// Operations returns every operation of the document in source order.
func (d *Document) Operations() []*Operation {
	if d == nil {
		return nil
	}
	var ops []*Operation
	for _, item := range d.Paths {
		ops = append(ops, item.Operations...)
	}
	return ops
}

// Lookup follows ref inside the components tree. The "#/components/" prefix
// is removed and the remainder is indexed one "/"-separated segment at a
// time; numeric segments index sequences. It returns nil when any segment
// is missing.
func (d *Document) Lookup(ref string) *yaml.Node {
	if d == nil || d.Components == nil || ref == "" {
		return nil
	}
	node := d.Components
	for _, part := range strings.Split(strings.Replace(ref, componentsPrefix, "", 1), "/") {
		node = deref(node)
		if node == nil {
			return nil
		}
		switch node.Kind {
		case yaml.MappingNode:
			node = mappingValue(node, part)
		case yaml.SequenceNode:
			idx, err := strconv.Atoi(part)
			if err != nil || idx < 0 || idx >= len(node.Content) {
				return nil
			}
			node = node.Content[idx]
		default:
			return nil
		}
	}
	return deref(node)
}

// LookupSchema resolves ref to a schema, or nil.
func (d *Document) LookupSchema(ref string) *Schema {
	return DecodeSchema(d.Lookup(ref))
}

// LookupParameter resolves ref to a parameter, or nil.
func (d *Document) LookupParameter(ref string) *Parameter {
	return decodeParameter(d.Lookup(ref))
}

// LookupRequestBody resolves ref to a request body, or nil.
func (d *Document) LookupRequestBody(ref string) *RequestBody {
	return decodeRequestBody(d.Lookup(ref))
}

// LookupResponse resolves ref to a response, or nil.
func (d *Document) LookupResponse(ref string) *Response {
	return decodeResponse("", d.Lookup(ref))
}

// ComponentNames returns the names declared under components/<section>, in
// source order.
func (d *Document) ComponentNames(section string) []string {
	if d == nil {
		return nil
	}
	var names []string
	forEachPair(mappingValue(d.Components, section), func(name string, _ *yaml.Node) {
		names = append(names, name)
	})
	return names
}

// Response returns the response declared for code, or nil.
func (op *Operation) Response(code string) *Response {
	if op == nil {
		return nil
	}
	for _, r := range op.Responses {
		if r.Code == code {
			return r
		}
	}
	return nil
}

// QueryParameters returns the parameters declared in the query.
func (op *Operation) QueryParameters() []*Parameter {
	if op == nil {
		return nil
	}
	var out []*Parameter
	for _, p := range op.Parameters {
		if p.In == "query" {
			out = append(out, p)
		}
	}
	return out
}

// JSONSchema returns the application/json schema of the request body, or nil.
func (rb *RequestBody) JSONSchema() *Schema {
	if rb == nil {
		return nil
	}
	return jsonSchema(rb.Content)
}

// JSONSchema returns the application/json schema of the response, or nil.
func (r *Response) JSONSchema() *Schema {
	if r == nil {
		return nil
	}
	return jsonSchema(r.Content)
}

func jsonSchema(content []*MediaType) *Schema {
	for _, mt := range content {
		if mt.Name == ContentTypeJSON {
			return mt.Schema
		}
	}
	return nil
}
