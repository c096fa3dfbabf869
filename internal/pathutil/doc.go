// Package pathutil names places in a parsed document and on disk.
//
// A [Location] is the position the validator reports an issue at. Walks
// push and pop segments as they descend, and the string form is built only
// when something is reported:
//
//	loc := pathutil.NewLocation()
//	loc.StartOperation("/prospects", "post")
//	loc.Push("parameters")
//	loc.PushIndex(0)
//	loc.String() // "paths./prospects.post.parameters[0]"
//
// The reference helpers build "#/components/..." pointers:
//
//	pathutil.SchemaRef("ProspectSchema") // "#/components/schemas/ProspectSchema"
//
// [JoinBelow] and [StrictlyBelow] keep generated output inside a root
// directory.
package pathutil
