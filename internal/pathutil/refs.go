package pathutil

import "strings"

// Component reference prefixes.
const (
	RefPrefixComponents    = "#/components/"
	RefPrefixSchemas       = RefPrefixComponents + "schemas/"
	RefPrefixParameters    = RefPrefixComponents + "parameters/"
	RefPrefixResponses     = RefPrefixComponents + "responses/"
	RefPrefixRequestBodies = RefPrefixComponents + "requestBodies/"
)

// SchemaRef builds "#/components/schemas/{name}".
func SchemaRef(name string) string {
	return RefPrefixSchemas + name
}

// ParameterRef builds "#/components/parameters/{name}".
func ParameterRef(name string) string {
	return RefPrefixParameters + name
}

// ResponseRef builds "#/components/responses/{name}".
func ResponseRef(name string) string {
	return RefPrefixResponses + name
}

// RequestBodyRef builds "#/components/requestBodies/{name}".
func RequestBodyRef(name string) string {
	return RefPrefixRequestBodies + name
}

// IsComponentRef reports whether ref points into the components tree.
func IsComponentRef(ref string) bool {
	return strings.HasPrefix(ref, RefPrefixComponents)
}
