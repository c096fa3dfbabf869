package docgen

import (
	"strings"

	"github.com/partnerdocs/oasdocs/parser"
)

// titleRule renames pages whose summary is shared by several endpoints.
// The first matching case wins; a summary with no matching case is kept.
type titleRule struct {
	summary string
	cases   []titleCase
}

type titleCase struct {
	match func(path string) bool
	title string
}

func pathContains(parts ...string) func(string) bool {
	return func(path string) bool {
		for _, p := range parts {
			if !strings.Contains(path, p) {
				return false
			}
		}
		return true
	}
}

var titleRules = []titleRule{
	{
		summary: "Book an appointment",
		cases: []titleCase{
			{match: pathContains("/renters/", "/appointment/"), title: "Book an appointment (for existing renter)"},
			{match: pathContains("/appointments/"), title: "Book an appointment (with prospect)"},
		},
	},
}

// pageTitle is the operation summary, "<METHOD> <path>" without one, after
// applying titleRules.
func pageTitle(method, path string, op *parser.Operation) string {
	title := op.Summary
	if title == "" {
		title = strings.ToUpper(method) + " " + path
	}
	for _, rule := range titleRules {
		if rule.summary != title {
			continue
		}
		for _, c := range rule.cases {
			if c.match(path) {
				return c.title
			}
		}
	}
	return title
}
