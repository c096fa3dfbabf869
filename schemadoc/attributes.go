package schemadoc

import (
	"github.com/partnerdocs/oasdocs/parser"
)

// Attribute is one documented field. The JSON field order is the order the
// site's ApiPage component expects.
type Attribute struct {
	Name        string      `json:"name"`
	Type        string      `json:"type"`
	Description string      `json:"description"`
	Required    bool        `json:"required"`
	Nullable    bool        `json:"nullable"`
	Example     *string     `json:"example,omitempty"`
	Children    []Attribute `json:"children,omitempty"`
}

// Attributes returns the attribute tree of s.
//
// References are followed, allOf members are concatenated in order without
// de-duplication, and an object with properties yields one attribute per
// property. Any other schema yields no attributes.
func (r *Resolver) Attributes(s *parser.Schema) []Attribute {
	return r.attributes(s, nil)
}

func (r *Resolver) attributes(s *parser.Schema, seen *visited) []Attribute {
	if s == nil {
		return nil
	}

	if s.Ref != "" {
		target, next, ok := r.enter(s.Ref, seen)
		if !ok {
			return nil
		}
		return r.attributes(target, next)
	}

	if s.AllOf != nil {
		var attrs []Attribute
		for _, member := range s.AllOf {
			attrs = append(attrs, r.attributes(member, seen)...)
		}
		return attrs
	}

	if !s.IsObjectWithProperties() {
		return nil
	}

	attrs := make([]Attribute, 0, len(s.Properties))
	for _, prop := range s.Properties {
		attrs = append(attrs, r.property(s, prop, seen))
	}
	return attrs
}

// property documents one property of parent. Required is decided by the
// parent alone.
func (r *Resolver) property(parent *parser.Schema, prop parser.Property, seen *visited) Attribute {
	ps := prop.Schema
	if ps == nil {
		ps = &parser.Schema{}
	}

	attr := Attribute{
		Name:        prop.Name,
		Type:        TypeLabel(ps),
		Description: ps.Description,
		Required:    parent.IsRequired(prop.Name),
		Nullable:    ps.Nullable,
	}
	if ps.HasExample {
		example := ExampleString(ps.Example)
		attr.Example = &example
	}

	switch {
	case ps.IsObjectWithProperties():
		attr.Children = r.attributes(ps, seen)
	case ps.Type == "array" && ps.Items != nil:
		if ps.Items.IsObjectWithProperties() {
			attr.Children = r.attributes(ps.Items, seen)
		}
	case ps.Ref != "":
		if target, next, ok := r.enter(ps.Ref, seen); ok && target.HasProperties {
			attr.Children = r.attributes(target, next)
		}
	}
	return attr
}
