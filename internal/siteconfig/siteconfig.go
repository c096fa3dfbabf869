// Package siteconfig loads the optional oasdocs.yaml file that overrides the
// default documentation layout.
//
// Example file:
//
//	spec: schemas/partner-api.yaml
//	output: docs/apis/partner-api
//	mappings: src/client/partner-api-badge-mappings.js
//	urlPrefix: /apis/partner-api
//	mappingsFormat: js
//	clean: true
//	tags:
//	  - tag: Beta Features
//	    folder: beta
//	    position: 130
package siteconfig

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v4"

	"github.com/partnerdocs/oasdocs/docgen"
	"github.com/partnerdocs/oasdocs/oaserrors"
)

// DefaultFileName is looked up in the working directory when no file is named.
const DefaultFileName = "oasdocs.yaml"

// File mirrors the YAML configuration. Empty fields keep their defaults.
type File struct {
	Spec            string `yaml:"spec,omitempty"`
	Output          string `yaml:"output,omitempty"`
	Mappings        string `yaml:"mappings,omitempty"`
	URLPrefix       string `yaml:"urlPrefix,omitempty"`
	MappingsVar     string `yaml:"mappingsVar,omitempty"`
	MappingsPackage string `yaml:"mappingsPackage,omitempty"`
	MappingsFormat  string `yaml:"mappingsFormat,omitempty"`
	Clean           bool   `yaml:"clean,omitempty"`
	Tags            []Tag  `yaml:"tags,omitempty"`
}

// Tag places one OpenAPI tag in the sidebar.
type Tag struct {
	Tag      string `yaml:"tag"`
	Folder   string `yaml:"folder,omitempty"`
	Position int    `yaml:"position,omitempty"`
}

// Defaults returns a File holding the built-in layout paths.
func Defaults() *File {
	return &File{
		Spec:     docgen.DefaultSpecPath,
		Output:   docgen.DefaultOutputDir,
		Mappings: docgen.DefaultMappingsPath,
	}
}

// Load reads and validates the file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &oaserrors.ConfigError{Option: "config", Value: path, Cause: err}
	}
	f, err := Parse(data)
	if err != nil {
		return nil, &oaserrors.ConfigError{Option: "config", Value: path, Cause: err}
	}
	return f, nil
}

// LoadOptional loads path when it exists. A missing file yields (nil, nil).
func LoadOptional(path string) (*File, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}
	return Load(path)
}

// Parse decodes and validates a configuration document.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks tag entries and the mappings format.
func (f *File) Validate() error {
	if _, err := docgen.ParseMappingsFormat(f.MappingsFormat); err != nil {
		return err
	}
	seen := make(map[string]bool, len(f.Tags))
	for i, t := range f.Tags {
		if t.Tag == "" {
			return fmt.Errorf("tags[%d]: tag is required", i)
		}
		if seen[t.Tag] {
			return fmt.Errorf("tags[%d]: duplicate tag %q", i, t.Tag)
		}
		seen[t.Tag] = true
		if t.Position < 0 {
			return fmt.Errorf("tags[%d]: position must not be negative", i)
		}
	}
	return nil
}

// Merge returns f with the non-empty fields of override applied on top.
// Tags are appended so later entries win.
func (f *File) Merge(override *File) *File {
	out := *f
	out.Tags = append([]Tag(nil), f.Tags...)
	if override == nil {
		return &out
	}
	if override.Spec != "" {
		out.Spec = override.Spec
	}
	if override.Output != "" {
		out.Output = override.Output
	}
	if override.Mappings != "" {
		out.Mappings = override.Mappings
	}
	if override.URLPrefix != "" {
		out.URLPrefix = override.URLPrefix
	}
	if override.MappingsVar != "" {
		out.MappingsVar = override.MappingsVar
	}
	if override.MappingsPackage != "" {
		out.MappingsPackage = override.MappingsPackage
	}
	if override.MappingsFormat != "" {
		out.MappingsFormat = override.MappingsFormat
	}
	out.Clean = out.Clean || override.Clean
	out.Tags = append(out.Tags, override.Tags...)
	return &out
}

// SiteConfig returns the default site layout with the file's settings applied.
func (f *File) SiteConfig() (*docgen.SiteConfig, error) {
	site := docgen.DefaultSiteConfig()
	if f == nil {
		return site, nil
	}
	format, err := docgen.ParseMappingsFormat(f.MappingsFormat)
	if err != nil {
		return nil, &oaserrors.ConfigError{Option: "mappingsFormat", Value: f.MappingsFormat, Cause: err}
	}
	site.MappingsFormat = format
	if f.URLPrefix != "" {
		site.URLPrefix = f.URLPrefix
	}
	if f.MappingsVar != "" {
		site.MappingsVar = f.MappingsVar
	}
	if f.MappingsPackage != "" {
		site.MappingsPackage = f.MappingsPackage
	}
	for _, t := range f.Tags {
		site.SetTag(t.Tag, t.Folder, t.Position)
	}
	return site, nil
}
