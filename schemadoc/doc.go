// Package schemadoc turns OpenAPI schemas into the attribute trees and
// example payloads shown on documentation pages.
//
// A [Resolver] is bound to one parsed document and follows
// "#/components/..." references inside it:
//
//	r := schemadoc.NewResolver(result.Document)
//	attrs := r.Attributes(op.RequestBody.JSONSchema())
//	example := r.Example(op.RequestBody.JSONSchema())
//
// # Reference handling
//
// A reference that cannot be resolved contributes nothing: no attributes, no
// example value, and no error. A reference that is already being expanded on
// the current resolution path is treated the same way, which keeps
// self-referential schemas finite. The set of references in progress belongs
// to one path from the root; sibling properties that point at the same
// schema each get a full expansion.
//
// # Examples
//
// Example values are built from explicit `example` keywords where present
// and type defaults otherwise ("string", "2023-01-01" for dates, 0, false,
// null). Objects are returned as [*parser.Object] so their keys keep
// declaration order when encoded.
package schemadoc
