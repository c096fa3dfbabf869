package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/partnerdocs/oasdocs/docgen"
)

type generateDocsInput struct {
	Spec           specInput `json:"spec"                      jsonschema:"The OAS document to generate documentation from"`
	OutputDir      string    `json:"output_dir,omitempty"      jsonschema:"Directory to write pages to (default: docs/apis/partner-api)"`
	Mappings       string    `json:"mappings,omitempty"        jsonschema:"File to write the URL to HTTP method lookup table to (omit to skip)"`
	MappingsFormat string    `json:"mappings_format,omitempty" jsonschema:"Lookup table language: js (default) or go"`
	Clean          *bool     `json:"clean,omitempty"           jsonschema:"Remove output_dir before writing (default from OASDOCS_GENERATE_CLEAN; requires OASDOCS_OUTPUT_ROOT)"`
}

type generatedFileInfo struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

type generateDocsOutput struct {
	OutputDir          string              `json:"output_dir"`
	Mappings           string              `json:"mappings,omitempty"`
	FileCount          int                 `json:"file_count"`
	Files              []generatedFileInfo `json:"files"`
	TagCount           int                 `json:"tag_count"`
	PageCount          int                 `json:"page_count"`
	UntaggedOperations int                 `json:"untagged_operations,omitempty"`
}

func handleGenerateDocs(_ context.Context, _ *mcp.CallToolRequest, input generateDocsInput) (*mcp.CallToolResult, generateDocsOutput, error) {
	outputDir, err := outputPath(input.OutputDir, docgen.DefaultOutputDir)
	if err != nil {
		return errResult(fmt.Errorf("output_dir: %w", err)), generateDocsOutput{}, nil
	}
	var mappingsPath string
	if input.Mappings != "" {
		mappingsPath, err = outputPath(input.Mappings, "")
		if err != nil {
			return errResult(fmt.Errorf("mappings: %w", err)), generateDocsOutput{}, nil
		}
	}

	clean := cfg.GenerateClean
	if input.Clean != nil {
		clean = *input.Clean
	}
	if clean && cfg.OutputRoot == "" {
		return errResult(fmt.Errorf("clean: OASDOCS_OUTPUT_ROOT must be set to remove output directories")), generateDocsOutput{}, nil
	}

	parseResult, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), generateDocsOutput{}, nil
	}

	opts := []docgen.Option{
		docgen.WithParsed(*parseResult),
		docgen.WithSiteConfig(siteConfig()),
		docgen.WithClean(clean),
	}
	if input.MappingsFormat != "" {
		opts = append(opts, docgen.WithMappingsFormat(input.MappingsFormat))
	}

	result, err := docgen.GenerateWithOptions(opts...)
	if err != nil {
		return errResult(err), generateDocsOutput{}, nil
	}

	result.CleanRoot = cfg.OutputRoot
	if err := result.WriteFiles(outputDir, mappingsPath); err != nil {
		return errResult(fmt.Errorf("failed to write generated files: %w", err)), generateDocsOutput{}, nil
	}

	output := generateDocsOutput{
		OutputDir:          outputDir,
		Mappings:           mappingsPath,
		FileCount:          len(result.Files),
		TagCount:           result.Stats.TagCount,
		PageCount:          result.Stats.PageCount,
		UntaggedOperations: result.Stats.UntaggedOperations,
	}
	output.Files = makeSlice[generatedFileInfo](len(result.Files))
	for _, f := range result.Files {
		output.Files = append(output.Files, generatedFileInfo{
			Name: f.Name,
			Size: len(f.Content),
		})
	}

	return nil, output, nil
}

// siteConfig is the default site layout with server overrides applied.
func siteConfig() *docgen.SiteConfig {
	site := docgen.DefaultSiteConfig()
	if cfg.URLPrefix != "" {
		site.URLPrefix = cfg.URLPrefix
	}
	return site
}
