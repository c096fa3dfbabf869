package schemadoc

import (
	"github.com/partnerdocs/oasdocs/parser"
)

// Resolver expands schemas of a single document.
// It holds no per-call state and may be shared between goroutines.
type Resolver struct {
	doc *parser.Document
}

// NewResolver returns a Resolver for doc. A nil doc resolves no references.
func NewResolver(doc *parser.Document) *Resolver {
	return &Resolver{doc: doc}
}

// Resolve returns the schema ref points at, or nil when any segment of the
// reference is missing.
func (r *Resolver) Resolve(ref string) *parser.Schema {
	if r == nil || r.doc == nil {
		return nil
	}
	return r.doc.LookupSchema(ref)
}

// visited is the chain of references entered on the current resolution
// path. Extending it never changes the receiver.
type visited struct {
	ref    string
	parent *visited
}

func (v *visited) has(ref string) bool {
	for ; v != nil; v = v.parent {
		if v.ref == ref {
			return true
		}
	}
	return false
}

func (v *visited) with(ref string) *visited {
	return &visited{ref: ref, parent: v}
}

// enter resolves ref unless it is already on the path. The returned chain
// includes ref.
func (r *Resolver) enter(ref string, seen *visited) (*parser.Schema, *visited, bool) {
	if seen.has(ref) {
		return nil, seen, false
	}
	target := r.Resolve(ref)
	if target == nil {
		return nil, seen, false
	}
	return target, seen.with(ref), true
}
