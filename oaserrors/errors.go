package oaserrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinels matched with errors.Is.
var (
	ErrParse             = errors.New("parse error")
	ErrReference         = errors.New("reference error")
	ErrCircularReference = errors.New("circular reference")
	ErrConfig            = errors.New("configuration error")
	ErrWrite             = errors.New("write error")
)

// message builds "<head>: <detail>: <cause>", skipping empty parts.
func message(head, detail string, cause error) string {
	var b strings.Builder
	b.WriteString(head)
	if detail != "" {
		b.WriteString(": ")
		b.WriteString(detail)
	}
	if cause != nil {
		b.WriteString(": ")
		b.WriteString(cause.Error())
	}
	return b.String()
}

// ParseError is a failure to read or decode a document.
type ParseError struct {
	// Path is the file path or source name
	Path string
	// Line and Column locate the failure; 0 when unknown
	Line   int
	Column int
	// Message describes the failure
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	head := "parse error"
	if e.Path != "" {
		head += " in " + e.Path
	}
	switch {
	case e.Line > 0 && e.Column > 0:
		head += fmt.Sprintf(" at line %d, column %d", e.Line, e.Column)
	case e.Line > 0:
		head += fmt.Sprintf(" at line %d", e.Line)
	}
	return message(head, e.Message, e.Cause)
}

func (e *ParseError) Unwrap() error { return e.Cause }

// Is matches ErrParse.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// ReferenceError is a $ref that does not resolve, or one that leads back to
// a schema already being expanded.
type ReferenceError struct {
	// Ref is the reference as written
	Ref string
	// Location is where the reference appears, e.g.
	// "paths./prospects/.post.requestBody"
	Location string
	// IsCircular marks a reference that re-enters itself on one path
	IsCircular bool
	Message    string
	Cause      error
}

func (e *ReferenceError) Error() string {
	head := "reference error"
	if e.IsCircular {
		head = "circular reference"
	}
	if e.Ref != "" {
		head += ": " + e.Ref
	}
	if e.Location != "" {
		head += " at " + e.Location
	}
	return message(head, e.Message, e.Cause)
}

func (e *ReferenceError) Unwrap() error { return e.Cause }

// Is matches ErrReference, and ErrCircularReference when IsCircular is set.
func (e *ReferenceError) Is(target error) bool {
	return target == ErrReference || (e.IsCircular && target == ErrCircularReference)
}

// ConfigError is an invalid option or configuration value.
type ConfigError struct {
	// Option names the setting, e.g. "mappings-format"
	Option string
	// Value is the rejected value; nil when there is none to show
	Value   any
	Message string
	Cause   error
}

func (e *ConfigError) Error() string {
	head := "configuration error"
	if e.Option != "" {
		head += " for " + e.Option
	}
	if e.Value != nil {
		head += fmt.Sprintf(" (value: %v)", e.Value)
	}
	return message(head, e.Message, e.Cause)
}

func (e *ConfigError) Unwrap() error { return e.Cause }

// Is matches ErrConfig.
func (e *ConfigError) Is(target error) bool { return target == ErrConfig }

// WriteError is a failure to write generated output.
type WriteError struct {
	Path string
	// Op is the failed step: "mkdir", "write" or "clean"
	Op    string
	Cause error
}

func (e *WriteError) Error() string {
	head := "write error"
	if e.Op != "" {
		head += " (" + e.Op + ")"
	}
	if e.Path != "" {
		head += " " + e.Path
	}
	return message(head, "", e.Cause)
}

func (e *WriteError) Unwrap() error { return e.Cause }

// Is matches ErrWrite.
func (e *WriteError) Is(target error) bool { return target == ErrWrite }
