// Package options holds checks shared by the functional options of the
// public packages and the MCP tool inputs.
package options

import (
	"fmt"
	"strings"
)

// Source is one way of supplying the document to read, named the way the
// caller exposes it: an option function or a tool input field.
type Source struct {
	Name string
	Set  bool
}

// ExactlyOne returns an error unless exactly one of sources is set. The
// error names every source and says how many were given.
func ExactlyOne(sources ...Source) error {
	names := make([]string, len(sources))
	n := 0
	for i, s := range sources {
		names[i] = s.Name
		if s.Set {
			n++
		}
	}
	if n == 1 {
		return nil
	}
	return fmt.Errorf("exactly one of %s must be provided (got %d)", alternatives(names), n)
}

// alternatives joins names as "a", "a or b", "a, b or c".
func alternatives(names []string) string {
	switch len(names) {
	case 0:
		return "the input sources"
	case 1:
		return names[0]
	}
	last := len(names) - 1
	return strings.Join(names[:last], ", ") + " or " + names[last]
}
