// Package oaserrors provides structured error types for oasdocs.
//
// Import path: github.com/partnerdocs/oasdocs/oaserrors
//
// The types let callers tell a broken input document apart from a bad option
// or a failed write, via [errors.Is] and [errors.As]:
//
//   - [ParseError]: the OpenAPI document could not be read or decoded
//   - [ReferenceError]: a $ref does not point at anything in components
//   - [ConfigError]: an invalid option or configuration file value
//   - [WriteError]: an output file or directory could not be written
//
// Each type matches a sentinel ([ErrParse], [ErrReference],
// [ErrCircularReference], [ErrConfig], [ErrWrite]):
//
//	result, err := docgen.GenerateWithOptions(docgen.WithFilePath("api.yaml"))
//	if errors.Is(err, oaserrors.ErrParse) {
//	    // the document itself is broken
//	}
//
// Generation never returns a ReferenceError: unresolvable references degrade
// to empty attribute lists. The validator reports them instead.
package oaserrors
