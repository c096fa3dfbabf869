// Package issues provides the problem report type shared by the validator
// and the command line output.
package issues

import "fmt"

// Severity orders issues from least to most severe: Info < Warning < Error.
type Severity int

const (
	// SeverityInfo is a notice that needs no action, e.g. a recursive schema.
	SeverityInfo Severity = iota
	// SeverityWarning is content the generator degrades silently.
	SeverityWarning
	// SeverityError makes the document invalid.
	SeverityError
)

var severityNames = [...]struct{ name, symbol string }{
	SeverityInfo:    {"info", "ℹ"},
	SeverityWarning: {"warning", "⚠"},
	SeverityError:   {"error", "✗"},
}

func (s Severity) known() bool {
	return s >= 0 && int(s) < len(severityNames)
}

// String returns "info", "warning", "error" or "unknown".
func (s Severity) String() string {
	if !s.known() {
		return "unknown"
	}
	return severityNames[s].name
}

// Symbol returns the marker printed in front of an issue.
func (s Severity) Symbol() string {
	if !s.known() {
		return "?"
	}
	return severityNames[s].symbol
}

// MarshalText encodes the level by name for JSON and YAML reports.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Issue is one problem found in a document.
type Issue struct {
	// Path locates the problem, e.g. "paths./prospects/.post.requestBody"
	Path     string   `json:"path" yaml:"path"`
	Message  string   `json:"message" yaml:"message"`
	Severity Severity `json:"severity" yaml:"severity"`
	// Ref is the $ref involved, if any
	Ref string `json:"ref,omitempty" yaml:"ref,omitempty"`
	// Line is the 1-based source line (0 if unknown)
	Line int `json:"line,omitempty" yaml:"line,omitempty"`
}

// String formats the issue as "<symbol> <path> (line N): <message>". The
// path and line parts are left out when unknown.
func (i Issue) String() string {
	location := i.Path
	if i.Line > 0 {
		location = fmt.Sprintf("%s (line %d)", i.Path, i.Line)
	}
	if location == "" {
		return i.Severity.Symbol() + " " + i.Message
	}
	return i.Severity.Symbol() + " " + location + ": " + i.Message
}

// Count returns how many issues have severity s.
func Count(list []Issue, s Severity) int {
	n := 0
	for _, i := range list {
		if i.Severity == s {
			n++
		}
	}
	return n
}
