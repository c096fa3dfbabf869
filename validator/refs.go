package validator

import (
	"slices"
	"strconv"
	"strings"

	"github.com/partnerdocs/oasdocs/internal/httputil"
	"github.com/partnerdocs/oasdocs/internal/pathutil"
	"github.com/partnerdocs/oasdocs/oaserrors"
	"github.com/partnerdocs/oasdocs/parser"
)

// refWalker visits every schema reachable from the document's operations and
// component schemas. Each reference target is expanded once. Response codes
// and media types met on the way are checked too.
type refWalker struct {
	doc        *parser.Document
	loc        *pathutil.Location
	expanded   map[string]bool
	unresolved []*oaserrors.ReferenceError
	circular   []*oaserrors.ReferenceError
	content    []ValidationError
	reported   map[string]bool
}

func newRefWalker(doc *parser.Document) *refWalker {
	return &refWalker{
		doc:      doc,
		expanded: make(map[string]bool),
		reported: make(map[string]bool),
	}
}

// UnresolvedRefs returns every $ref in doc whose target does not exist,
// once per reference, in document order.
func UnresolvedRefs(doc *parser.Document) []*oaserrors.ReferenceError {
	w := newRefWalker(doc)
	w.walkDocument()
	return w.unresolved
}

// CircularRefs returns every schema reference that leads back to itself,
// once per reference, in document order.
func CircularRefs(doc *parser.Document) []*oaserrors.ReferenceError {
	w := newRefWalker(doc)
	w.walkDocument()
	return w.circular
}

func (w *refWalker) walkDocument() {
	if w.doc == nil {
		return
	}
	w.loc = pathutil.NewLocation()

	for _, op := range w.doc.Operations() {
		w.loc.StartOperation(op.Path, op.Method)
		w.walkOperation(op)
	}

	for _, name := range w.doc.ComponentNames("schemas") {
		ref := pathutil.SchemaRef(name)
		if w.expanded[ref] {
			continue
		}
		w.expanded[ref] = true
		w.loc.StartComponent("schemas", name)
		w.walkSchema(w.doc.LookupSchema(ref), []string{ref})
	}
}

func (w *refWalker) walkOperation(op *parser.Operation) {
	w.loc.Push("parameters")
	for i, p := range op.Parameters {
		w.loc.PushIndex(i)
		if p.Ref != "" {
			p = w.doc.LookupParameter(p.Ref)
		}
		if p == nil {
			w.unresolvedRef(op.Parameters[i].Ref)
		} else {
			w.loc.Push("schema")
			w.walkSchema(p.Schema, nil)
			w.loc.Pop()
		}
		w.loc.Pop()
	}
	w.loc.Pop()

	if rb := op.RequestBody; rb != nil {
		w.loc.Push("requestBody")
		if rb.Ref != "" {
			rb = w.doc.LookupRequestBody(rb.Ref)
		}
		if rb == nil {
			w.unresolvedRef(op.RequestBody.Ref)
		} else {
			w.walkContent(rb.Content)
		}
		w.loc.Pop()
	}

	w.loc.Push("responses")
	for _, resp := range op.Responses {
		w.loc.Push(resp.Code)
		w.checkStatusCode(resp.Code)
		target := resp
		if resp.Ref != "" {
			target = w.doc.LookupResponse(resp.Ref)
		}
		if target == nil {
			w.unresolvedRef(resp.Ref)
		} else {
			w.walkContent(target.Content)
		}
		w.loc.Pop()
	}
	w.loc.Pop()
}

func (w *refWalker) walkContent(content []*parser.MediaType) {
	w.loc.Push("content")
	for _, mt := range content {
		w.loc.Push(mt.Name)
		if !httputil.IsValidMediaType(mt.Name) {
			w.contentIssue(SeverityWarning, "invalid media type "+strconv.Quote(mt.Name))
		}
		w.loc.Push("schema")
		w.walkSchema(mt.Schema, nil)
		w.loc.Pop()
		w.loc.Pop()
	}
	w.loc.Pop()
}

// walkSchema visits s at the current location. stack holds the references
// being expanded on the current path.
func (w *refWalker) walkSchema(s *parser.Schema, stack []string) {
	if s == nil {
		return
	}
	if s.Ref != "" {
		target := w.doc.LookupSchema(s.Ref)
		switch {
		case target == nil:
			w.unresolvedRef(s.Ref)
		case slices.Contains(stack, s.Ref):
			w.circularRef(s.Ref)
		case !w.expanded[s.Ref]:
			w.expanded[s.Ref] = true
			w.walkSchema(target, append(stack, s.Ref))
		}
		return
	}

	w.loc.Push("properties")
	for _, p := range s.Properties {
		w.loc.Push(p.Name)
		w.walkSchema(p.Schema, stack)
		w.loc.Pop()
	}
	w.loc.Pop()

	if s.Items != nil {
		w.loc.Push("items")
		w.walkSchema(s.Items, stack)
		w.loc.Pop()
	}

	w.loc.Push("allOf")
	for i, member := range s.AllOf {
		w.loc.PushIndex(i)
		w.walkSchema(member, stack)
		w.loc.Pop()
	}
	w.loc.Pop()
}

func (w *refWalker) unresolvedRef(ref string) {
	if w.reported["u"+ref] {
		return
	}
	w.reported["u"+ref] = true
	msg := "reference target not found"
	if !pathutil.IsComponentRef(ref) {
		msg = "only #/components/ references are resolved"
	}
	w.unresolved = append(w.unresolved, &oaserrors.ReferenceError{Ref: ref, Location: w.loc.String(), Message: msg})
}

func (w *refWalker) circularRef(ref string) {
	if w.reported["c"+ref] {
		return
	}
	w.reported["c"+ref] = true
	w.circular = append(w.circular, &oaserrors.ReferenceError{
		Ref:        ref,
		Location:   w.loc.String(),
		IsCircular: true,
		Message:    "recursive schema is expanded once per path",
	})
}

func (w *refWalker) checkStatusCode(code string) {
	switch {
	case !httputil.ValidateStatusCode(code):
		w.contentIssue(SeverityWarning, "invalid response status code "+strconv.Quote(code))
	case code == "default", strings.HasPrefix(code, "x-"), strings.HasSuffix(code, "XX"):
	case !httputil.IsStandardStatusCode(code):
		w.contentIssue(SeverityInfo, "non-standard HTTP status code "+code)
	}
}

func (w *refWalker) contentIssue(s Severity, msg string) {
	w.content = append(w.content, ValidationError{Path: w.loc.String(), Message: msg, Severity: s})
}
