// Package oasdocs turns an OpenAPI 3.0 document into the source files of a
// documentation site: one MDX page per (tag, operation), a sidebar category
// descriptor per tag folder, an introduction page, and a lookup table from
// page route to HTTP method that the site uses to draw method badges.
//
// # Overview
//
// The work is split over a few packages:
//
//   - parser: load YAML into an order-preserving Document
//   - schemadoc: expand schemas into attribute trees and example payloads
//   - docgen: render pages, category descriptors, the index page and the lookup table
//   - validator: structural validation and a report of references generation would drop
//
// The oasdocs command (cmd/oasdocs) wires these together, and
// internal/mcpserver exposes generation to MCP clients.
//
// # Quick Start
//
// Generate the site with the default layout:
//
//	result, err := docgen.GenerateWithOptions(
//	    docgen.WithFilePath("schemas/partner-api.yaml"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = result.WriteFiles("docs/apis/partner-api", "src/client/partner-api-badge-mappings.js")
//
// Inspect how one schema is documented:
//
//	parsed, err := parser.ParseWithOptions(parser.WithFilePath("schemas/partner-api.yaml"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	r := schemadoc.NewResolver(parsed.Document)
//	s := &parser.Schema{Ref: "#/components/schemas/ProspectSchema"}
//	attrs := r.Attributes(s)
//	example := r.Example(s)
//
// # Determinism
//
// Output depends only on the document and the site layout. Running the
// generator twice on the same input produces byte-identical files.
//
// # Errors
//
// Typed errors live in the oaserrors package and match their sentinels
// with errors.Is. Unresolvable references never fail generation; the
// affected attributes and examples are left out, and the validator reports
// them.
package oasdocs
