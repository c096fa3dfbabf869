package naming

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	nonSlugRun    = regexp.MustCompile(`[^a-z0-9]+`)
	pathParameter = regexp.MustCompile(`\{([^}]+)\}`)
)

// Slugify converts s into a file-system and URL safe slug.
// Example: "Book an appointment (for existing renter)!" -> "book-an-appointment-for-existing-renter"
func Slugify(s string) string {
	lower := cases.Lower(language.Und).String(s)
	return strings.Trim(nonSlugRun.ReplaceAllString(lower, "-"), "-")
}

// FolderName returns the folder for tag: the entry of folders when present,
// otherwise the slug of the tag.
func FolderName(tag string, folders map[string]string) string {
	if folder, ok := folders[tag]; ok && folder != "" {
		return folder
	}
	return Slugify(tag)
}

// PageFileName returns the page file name for the idx-th (zero-based)
// endpoint of a tag. Prefixes step by ten so pages can be inserted by hand.
// Example: (0, "create-a-prospect") -> "10-create-a-prospect.mdx"
func PageFileName(idx int, slug string) string {
	return fmt.Sprintf("%02d-%s.mdx", idx*10+10, slug)
}

// FormatPath rewrites OpenAPI path parameters into route parameters.
// Example: "/prospects/{prospectId}/notes" -> "/prospects/:prospectId/notes"
func FormatPath(path string) string {
	return pathParameter.ReplaceAllString(path, ":$1")
}

// ToPascalCase converts a string to PascalCase.
// Separators (underscore, hyphen, dot, slash) trigger capitalization of the next letter.
// Example: "partnerApiEndpointMethodMap" -> "PartnerApiEndpointMethodMap"
// Example: "api-client" -> "ApiClient"
func ToPascalCase(s string) string {
	if s == "" {
		return ""
	}

	var result strings.Builder
	capitalizeNext := true

	for _, r := range s {
		if r == '_' || r == '-' || r == '.' || r == '/' {
			capitalizeNext = true
			continue
		}
		if capitalizeNext {
			result.WriteRune(unicode.ToUpper(r))
			capitalizeNext = false
		} else {
			result.WriteRune(r)
		}
	}

	return result.String()
}
