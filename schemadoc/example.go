package schemadoc

import (
	"github.com/partnerdocs/oasdocs/parser"
)

// exampleDate is the placeholder for `format: date` strings.
const exampleDate = "2023-01-01"

// Example synthesizes an example payload for s. The result is built from
// *parser.Object, []any and scalar values, or is nil when nothing could be
// produced.
func (r *Resolver) Example(s *parser.Schema) any {
	return r.example(s, nil)
}

func (r *Resolver) example(s *parser.Schema, seen *visited) any {
	if s == nil {
		return nil
	}

	if s.Ref != "" {
		target, next, ok := r.enter(s.Ref, seen)
		if !ok {
			return nil
		}
		return r.example(target, next)
	}

	if s.AllOf != nil {
		merged := parser.NewObject()
		for _, member := range s.AllOf {
			// Only object results merge; arrays and scalars are dropped.
			if obj, ok := r.example(member, seen).(*parser.Object); ok {
				for _, key := range obj.Keys() {
					v, _ := obj.Get(key)
					merged.Set(key, v)
				}
			}
		}
		if merged.Len() == 0 {
			return nil
		}
		return merged
	}

	if s.Type == "array" {
		return r.arrayExample(s.Items, seen)
	}

	if s.Type == "object" || s.HasProperties {
		obj := parser.NewObject()
		for _, prop := range s.Properties {
			if v, ok := r.propertyExample(prop.Schema, seen); ok {
				obj.Set(prop.Name, v)
			}
		}
		if obj.Len() == 0 {
			return nil
		}
		return obj
	}

	if s.HasExample {
		return s.Example
	}
	return nil
}

// propertyExample returns the value of one property and whether the
// property appears in the example at all.
func (r *Resolver) propertyExample(ps *parser.Schema, seen *visited) (any, bool) {
	if ps == nil {
		ps = &parser.Schema{}
	}
	switch {
	case ps.HasExample:
		return ps.Example, true
	case ps.Type == "object" || ps.Ref != "":
		nested := r.example(ps, seen)
		return nested, nested != nil
	case ps.Type == "array":
		return r.arrayExample(ps.Items, seen), true
	}
	return defaultExample(ps), true
}

func (r *Resolver) arrayExample(items *parser.Schema, seen *visited) []any {
	if item := r.example(items, seen); item != nil {
		return []any{item}
	}
	return []any{}
}

func defaultExample(s *parser.Schema) any {
	switch s.Type {
	case "string":
		if s.Format == "date" {
			return exampleDate
		}
		return "string"
	case "integer", "number":
		return 0
	case "boolean":
		return false
	}
	return nil
}
