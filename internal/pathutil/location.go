package pathutil

import (
	"strconv"
	"strings"
)

// Location is the position of a node in a parsed document, kept as a stack
// of rendered segments. Names are joined with dots. Indexes, and names that
// contain a dot or a bracket, are written in brackets so the string form
// stays unambiguous:
//
//	paths./prospects.get.responses.200.content["application/vnd.api+json"].schema
type Location struct {
	segments []string
}

// NewLocation returns an empty Location.
func NewLocation() *Location {
	return &Location{segments: make([]string, 0, 12)}
}

// StartOperation resets l to paths.<path>.<method>.
func (l *Location) StartOperation(path, method string) {
	l.Reset()
	l.Push("paths")
	l.Push(path)
	l.Push(method)
}

// StartComponent resets l to components.<kind>.<name>.
func (l *Location) StartComponent(kind, name string) {
	l.Reset()
	l.Push("components")
	l.Push(kind)
	l.Push(name)
}

// Push appends a map key or field name.
func (l *Location) Push(name string) {
	if name == "" || strings.ContainsAny(name, ".[]") {
		name = "[" + strconv.Quote(name) + "]"
	}
	l.segments = append(l.segments, name)
}

// PushIndex appends a sequence index.
func (l *Location) PushIndex(i int) {
	l.segments = append(l.segments, "["+strconv.Itoa(i)+"]")
}

// Pop removes the last segment. Popping an empty Location is a no-op.
func (l *Location) Pop() {
	if n := len(l.segments); n > 0 {
		l.segments = l.segments[:n-1]
	}
}

// Depth reports the number of segments.
func (l *Location) Depth() int {
	return len(l.segments)
}

// Reset empties l, keeping its storage.
func (l *Location) Reset() {
	l.segments = l.segments[:0]
}

func (l *Location) String() string {
	var b strings.Builder
	for i, seg := range l.segments {
		if i > 0 && seg[0] != '[' {
			b.WriteByte('.')
		}
		b.WriteString(seg)
	}
	return b.String()
}
