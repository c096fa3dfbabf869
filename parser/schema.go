package parser

import (
	"go.yaml.in/yaml/v4"
)

// Schema is the subset of a JSON Schema fragment that documentation pages
// show. Presence matters as much as value for several keywords, so those
// carry an explicit flag or keep a non-nil empty slice.
type Schema struct {
	// Ref is the $ref target, e.g. "#/components/schemas/ProspectSchema"
	Ref string
	// Type is the declared type. For a type list (OAS 3.1) it is the first
	// non-null entry.
	Type        string
	Format      string
	Description string
	Enum        []any
	// Example is the explicit example value; HasExample distinguishes an
	// explicit `example: null` from no example at all.
	Example    any
	HasExample bool
	Nullable   bool
	// Properties are listed in declaration order.
	Properties []Property
	// HasProperties is true when a properties mapping is present, even empty.
	HasProperties bool
	Required      []string
	Items         *Schema
	// AllOf is non-nil whenever the allOf keyword is present.
	AllOf []*Schema
	// Line is the source line of the schema (0 if unknown)
	Line int
}

// Property is a named property of an object schema.
type Property struct {
	Name   string
	Schema *Schema
}

// IsObjectWithProperties reports whether s is declared `type: object` and
// carries a properties mapping.
func (s *Schema) IsObjectWithProperties() bool {
	return s != nil && s.Type == "object" && s.HasProperties
}

// IsRequired reports whether name appears in this schema's required list.
func (s *Schema) IsRequired(name string) bool {
	if s == nil {
		return false
	}
	for _, r := range s.Required {
		if r == name {
			return true
		}
	}
	return false
}

// Property returns the schema of the named property, or nil.
func (s *Schema) Property(name string) *Schema {
	if s == nil {
		return nil
	}
	for _, p := range s.Properties {
		if p.Name == name {
			return p.Schema
		}
	}
	return nil
}

// DecodeSchema converts a YAML node into a Schema. It returns nil for
// anything that is not a mapping.
func DecodeSchema(node *yaml.Node) *Schema {
	node = deref(node)
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}

	s := &Schema{Line: node.Line}
	forEachPair(node, func(key string, val *yaml.Node) {
		switch key {
		case "$ref":
			s.Ref = scalarString(val)
		case "type":
			decodeType(s, val)
		case "format":
			s.Format = scalarString(val)
		case "description":
			s.Description = scalarString(val)
		case "enum":
			if val != nil && val.Kind == yaml.SequenceNode {
				s.Enum = make([]any, 0, len(val.Content))
				for _, item := range val.Content {
					s.Enum = append(s.Enum, NodeValue(item))
				}
			}
		case "example":
			s.Example = NodeValue(val)
			s.HasExample = true
		case "nullable":
			s.Nullable = s.Nullable || scalarTrue(val)
		case "properties":
			if val == nil || val.Kind != yaml.MappingNode {
				return
			}
			s.HasProperties = true
			forEachPair(val, func(name string, propNode *yaml.Node) {
				prop := DecodeSchema(propNode)
				if prop == nil {
					prop = &Schema{}
				}
				s.Properties = append(s.Properties, Property{Name: name, Schema: prop})
			})
		case "required":
			s.Required = stringList(val)
		case "items":
			s.Items = DecodeSchema(val)
		case "allOf":
			if val == nil || val.Kind != yaml.SequenceNode {
				return
			}
			s.AllOf = make([]*Schema, 0, len(val.Content))
			for _, member := range val.Content {
				s.AllOf = append(s.AllOf, DecodeSchema(member))
			}
		}
	})
	return s
}

func decodeType(s *Schema, val *yaml.Node) {
	if val == nil {
		return
	}
	switch val.Kind {
	case yaml.ScalarNode:
		s.Type = scalarString(val)
	case yaml.SequenceNode:
		for _, t := range stringList(val) {
			if t == "null" {
				s.Nullable = true
				continue
			}
			if s.Type == "" {
				s.Type = t
			}
		}
	}
}
