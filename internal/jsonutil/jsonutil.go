// Package jsonutil encodes JSON the way the documentation site expects it:
// no HTML escaping, and two-space indentation for embedded blocks.
package jsonutil

import (
	"bytes"
	"encoding/json"
)

// Marshal encodes v as compact JSON without escaping <, > and &.
func Marshal(v any) ([]byte, error) {
	return encode(v, "")
}

// MarshalIndent encodes v with two-space indentation without escaping <, > and &.
func MarshalIndent(v any) ([]byte, error) {
	return encode(v, "  ")
}

// Quote encodes s as a JSON string literal.
func Quote(s string) (string, error) {
	b, err := Marshal(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func encode(v any, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	// Encode always terminates the value with a newline.
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
