package mcpserver

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/partnerdocs/oasdocs/docgen"
)

type listEndpointsInput struct {
	Spec    specInput `json:"spec"               jsonschema:"The OAS document to plan pages for"`
	Tag     string    `json:"tag,omitempty"      jsonschema:"Only list pages of this tag"`
	Method  string    `json:"method,omitempty"   jsonschema:"Only list pages of this HTTP method (case-insensitive)"`
	GroupBy string    `json:"group_by,omitempty" jsonschema:"Group results and return counts instead of entries. Values: tag, method"`
	Offset  int       `json:"offset,omitempty"   jsonschema:"Skip the first N results (for pagination)"`
	Limit   int       `json:"limit,omitempty"    jsonschema:"Maximum number of results to return (default 100)"`
}

type endpointSummary struct {
	Tag      string `json:"tag"`
	Folder   string `json:"folder"`
	File     string `json:"file"`
	Position int    `json:"sidebar_position"`
	Method   string `json:"method"`
	Path     string `json:"path"`
	Title    string `json:"title"`
	URL      string `json:"url"`
}

type listEndpointsOutput struct {
	Total     int               `json:"total"`
	Returned  int               `json:"returned"`
	Endpoints []endpointSummary `json:"endpoints,omitempty"`
	Groups    []groupCount      `json:"groups,omitempty"`
}

func handleListEndpoints(_ context.Context, _ *mcp.CallToolRequest, input listEndpointsInput) (*mcp.CallToolResult, listEndpointsOutput, error) {
	if err := validateGroupBy(input.GroupBy, []string{"tag", "method"}); err != nil {
		return errResult(err), listEndpointsOutput{}, nil
	}

	parseResult, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), listEndpointsOutput{}, nil
	}

	site := siteConfig()
	result, err := docgen.GenerateWithOptions(
		docgen.WithParsed(*parseResult),
		docgen.WithSiteConfig(site),
	)
	if err != nil {
		return errResult(err), listEndpointsOutput{}, nil
	}

	var matched []endpointSummary
	for _, page := range result.Pages {
		if input.Tag != "" && page.Tag != input.Tag {
			continue
		}
		if input.Method != "" && !strings.EqualFold(page.Method, input.Method) {
			continue
		}
		matched = append(matched, endpointSummary{
			Tag:      page.Tag,
			Folder:   page.Folder,
			File:     page.FileName,
			Position: page.SidebarPosition,
			Method:   strings.ToUpper(page.Method),
			Path:     page.Path,
			Title:    page.Title,
			URL:      page.URL(site.URLPrefix),
		})
	}

	if input.GroupBy != "" {
		groups := groupAndSort(matched, func(e endpointSummary) []string {
			if strings.EqualFold(input.GroupBy, "method") {
				return []string{e.Method}
			}
			return []string{e.Tag}
		})
		return nil, listEndpointsOutput{
			Total:    len(groups),
			Returned: len(groups),
			Groups:   groups,
		}, nil
	}

	page := paginate(matched, input.Offset, input.Limit)
	return nil, listEndpointsOutput{
		Total:     len(matched),
		Returned:  len(page),
		Endpoints: page,
	}, nil
}
