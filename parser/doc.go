// Package parser loads OpenAPI 3.0 documents for documentation generation.
//
// Unlike a general-purpose OpenAPI model, the parsed [Document] keeps the
// source order of everything a documentation page shows: paths, methods,
// schema properties and the keys of example objects. The components section
// is kept as a raw YAML tree so that any "#/components/..." reference can be
// followed by plain segment indexing, the same way the generated site has
// always resolved them.
//
// # Quick Start
//
//	result, err := parser.ParseWithOptions(parser.WithFilePath("schemas/partner-api.yaml"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, op := range result.Document.Operations() {
//		fmt.Println(strings.ToUpper(op.Method), op.Path, op.Tags)
//	}
//
// # Logging
//
// Parsing accepts any [Logger]; use [NewSlogAdapter] to route messages to
// log/slog. The default is [NopLogger].
package parser
