package schemadoc

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/partnerdocs/oasdocs/parser"
)

// TypeLabel returns the type shown next to an attribute.
//
//   - a reference: the last segment with a trailing "Schema" removed
//   - an array: "array<item label>", or "array<object>" without items
//   - the declared type
//   - "enum" for an untyped enum
//   - "object" otherwise
func TypeLabel(s *parser.Schema) string {
	if s == nil {
		return "object"
	}
	if s.Ref != "" {
		segments := strings.Split(s.Ref, "/")
		return strings.TrimSuffix(segments[len(segments)-1], "Schema")
	}
	if s.Type == "array" {
		if s.Items == nil {
			return "array<object>"
		}
		return "array<" + TypeLabel(s.Items) + ">"
	}
	if s.Type != "" {
		return s.Type
	}
	if s.Enum != nil {
		return "enum"
	}
	return "object"
}

// ExampleString renders an explicit example value as attribute text.
// Mappings render as "[object Object]", which is how the site has always
// displayed them.
func ExampleString(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case []any:
		parts := make([]string, len(x))
		for i, item := range x {
			if item != nil {
				parts[i] = ExampleString(item)
			}
		}
		return strings.Join(parts, ",")
	}
	return scalarString(v)
}

func scalarString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float64:
		return formatFloat(x)
	case *parser.Object, map[string]any:
		return "[object Object]"
	}
	return fmt.Sprint(v)
}

// formatFloat prints the shortest decimal that round-trips, switching to
// exponent form outside [1e-6, 1e21).
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	abs := math.Abs(f)
	if abs == 0 || (abs >= 1e-6 && abs < 1e21) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	// Exponents are written without zero padding: 1e+21, 1e-7.
	s = strings.Replace(s, "e+0", "e+", 1)
	s = strings.Replace(s, "e-0", "e-", 1)
	return s
}
