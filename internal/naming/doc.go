// Package naming turns titles, tags and path templates into the names the
// documentation site uses for files, folders and routes.
//
// Slugify is the single slug rule: lower-case, runs of characters outside
// [a-z0-9] collapsed into one hyphen, leading and trailing hyphens removed.
// FolderName, PageFileName and FormatPath build on it. ToPascalCase is used
// for exported Go identifiers in generated source.
//
// As an internal package, these functions are not part of the public API
// and may change without notice.
package naming
