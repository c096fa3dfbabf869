// Package docgen renders an OpenAPI document into the partner API section
// of the documentation site.
//
// For every tag of every operation, in source order, docgen emits one MDX
// page driving the site's ApiPage component. Each tag folder gets a
// _category_.json sidebar descriptor, the section gets a static index.mdx,
// and a lookup table maps every page route to the HTTP method it documents.
//
// # Quick Start
//
//	result, err := docgen.GenerateWithOptions(
//	    docgen.WithFilePath(docgen.DefaultSpecPath),
//	    docgen.WithLogger(parser.NewSlogAdapter(slog.Default())),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := result.WriteFiles(docgen.DefaultOutputDir, docgen.DefaultMappingsPath); err != nil {
//	    log.Fatal(err)
//	}
//
// Generation is pure: [Generator.GenerateParsed] returns every file in memory
// and [GenerateResult.WriteFiles] is the only step that touches the disk.
//
// # Layout
//
// Folder names and base sidebar positions come from a [SiteConfig]. Tags
// missing from it are placed in a folder named after the slug of the tag at
// position [DefaultPosition]. Page files are numbered 10, 20, 30... within a
// folder and their sidebar position is the folder's base position plus the
// endpoint's index.
package docgen
