package parser

import (
	"fmt"
	"slices"

	"go.yaml.in/yaml/v4"
)

// decodeDocument builds a Document from the root node of a YAML stream.
func decodeDocument(root *yaml.Node) (*Document, error) {
	node := deref(root)
	if node == nil || node.Kind == 0 {
		return nil, fmt.Errorf("document is empty")
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("document root must be a mapping, got %s", kindName(node.Kind))
	}

	doc := &Document{
		OpenAPI:    scalarString(mappingValue(node, "openapi")),
		Components: mappingValue(node, "components"),
	}

	info := mappingValue(node, "info")
	doc.Info = Info{
		Title:       scalarString(mappingValue(info, "title")),
		Version:     scalarString(mappingValue(info, "version")),
		Description: scalarString(mappingValue(info, "description")),
	}

	forEachPair(mappingValue(node, "paths"), func(path string, itemNode *yaml.Node) {
		item := &PathItem{Path: path}
		forEachPair(itemNode, func(method string, opNode *yaml.Node) {
			if !slices.Contains(HTTPMethods, method) {
				return
			}
			if op := decodeOperation(method, path, opNode); op != nil {
				item.Operations = append(item.Operations, op)
			}
		})
		doc.Paths = append(doc.Paths, item)
	})

	return doc, nil
}

func decodeOperation(method, path string, node *yaml.Node) *Operation {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	op := &Operation{
		Method:      method,
		Path:        path,
		Summary:     scalarString(mappingValue(node, "summary")),
		Description: scalarString(mappingValue(node, "description")),
		OperationID: scalarString(mappingValue(node, "operationId")),
		Tags:        stringList(mappingValue(node, "tags")),
		Deprecated:  scalarTrue(mappingValue(node, "deprecated")),
		Line:        node.Line,
	}

	if params := mappingValue(node, "parameters"); params != nil && params.Kind == yaml.SequenceNode {
		for _, pn := range params.Content {
			if p := decodeParameter(pn); p != nil {
				op.Parameters = append(op.Parameters, p)
			}
		}
	}

	op.RequestBody = decodeRequestBody(mappingValue(node, "requestBody"))

	forEachPair(mappingValue(node, "responses"), func(code string, rn *yaml.Node) {
		if r := decodeResponse(code, rn); r != nil {
			op.Responses = append(op.Responses, r)
		}
	})

	return op
}

func decodeParameter(node *yaml.Node) *Parameter {
	node = deref(node)
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	return &Parameter{
		Ref:         scalarString(mappingValue(node, "$ref")),
		Name:        scalarString(mappingValue(node, "name")),
		In:          scalarString(mappingValue(node, "in")),
		Description: scalarString(mappingValue(node, "description")),
		Required:    scalarTrue(mappingValue(node, "required")),
		Schema:      DecodeSchema(mappingValue(node, "schema")),
	}
}

func decodeRequestBody(node *yaml.Node) *RequestBody {
	node = deref(node)
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	return &RequestBody{
		Ref:         scalarString(mappingValue(node, "$ref")),
		Description: scalarString(mappingValue(node, "description")),
		Required:    scalarTrue(mappingValue(node, "required")),
		Content:     decodeContent(mappingValue(node, "content")),
	}
}

func decodeResponse(code string, node *yaml.Node) *Response {
	node = deref(node)
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	return &Response{
		Code:        code,
		Ref:         scalarString(mappingValue(node, "$ref")),
		Description: scalarString(mappingValue(node, "description")),
		Content:     decodeContent(mappingValue(node, "content")),
	}
}

func decodeContent(node *yaml.Node) []*MediaType {
	var out []*MediaType
	forEachPair(node, func(name string, mt *yaml.Node) {
		out = append(out, &MediaType{
			Name:   name,
			Schema: DecodeSchema(mappingValue(mt, "schema")),
		})
	})
	return out
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	}
	return "unknown"
}
