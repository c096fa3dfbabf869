package docgen

import (
	"fmt"
	"maps"

	"github.com/partnerdocs/oasdocs/internal/naming"
)

const (
	// DefaultSpecPath is the OpenAPI document read when no path is given.
	DefaultSpecPath = "schemas/partner-api.yaml"
	// DefaultOutputDir is the directory pages are written to.
	DefaultOutputDir = "docs/apis/partner-api"
	// DefaultMappingsPath is where the URL to method lookup table is written.
	DefaultMappingsPath = "src/client/partner-api-badge-mappings.js"
	// DefaultURLPrefix is the site route under which the pages are served.
	DefaultURLPrefix = "/apis/partner-api"
	// DefaultMappingsVar is the exported name of the lookup table.
	DefaultMappingsVar = "partnerApiEndpointMethodMap"
	// DefaultMappingsPackage is the package clause of the Go lookup table.
	DefaultMappingsPackage = "partnerapi"
	// DefaultPosition is the sidebar position of folders without an entry.
	DefaultPosition = 1000
)

// MappingsFormat selects the language of the lookup table file.
type MappingsFormat string

const (
	// MappingsJS is a CommonJS module, read by the site's client code.
	MappingsJS MappingsFormat = "js"
	// MappingsGo is a Go source file declaring a map variable.
	MappingsGo MappingsFormat = "go"
)

// ParseMappingsFormat validates a format name. The empty string selects MappingsJS.
func ParseMappingsFormat(s string) (MappingsFormat, error) {
	switch MappingsFormat(s) {
	case "", MappingsJS:
		return MappingsJS, nil
	case MappingsGo:
		return MappingsGo, nil
	}
	return "", fmt.Errorf("unknown mappings format %q (want js or go)", s)
}

// SiteConfig is the static layout of the documentation site.
type SiteConfig struct {
	// Folders maps a tag to its folder name. Tags without an entry use the
	// slug of the tag.
	Folders map[string]string
	// Positions maps a folder name to its base sidebar position. Folders
	// without an entry use DefaultPosition.
	Positions map[string]int
	// URLPrefix is prepended to "<folder>/<page>" in the lookup table.
	URLPrefix string
	// MappingsVar is the name of the exported lookup table.
	MappingsVar string
	// MappingsPackage is the package clause used for MappingsGo.
	MappingsPackage string
	// MappingsFormat selects the lookup table language.
	MappingsFormat MappingsFormat
}

// defaultTags lists the known tags in sidebar order.
var defaultTags = []struct {
	tag      string
	folder   string
	position int
}{
	{"Appointment Booking", "appointment-booking", 20},
	{"Community Details", "community-details", 30},
	{"Prospects", "prospects", 40},
	{"Third Party VLA Handling", "third-party-vla-handling", 50},
	{"Communications", "communications", 60},
	{"Chat", "chat", 70},
	{"Tasks", "tasks", 80},
	{"Team", "team", 90},
	{"Custom Scoring", "customer-scoring", 100},
	{"Renewal Status", "renewal-status", 110},
	{"ResidentApp", "resident-app", 120},
}

// DefaultSiteConfig returns the layout of the partner API section.
func DefaultSiteConfig() *SiteConfig {
	cfg := &SiteConfig{
		Folders:         make(map[string]string, len(defaultTags)),
		Positions:       make(map[string]int, len(defaultTags)),
		URLPrefix:       DefaultURLPrefix,
		MappingsVar:     DefaultMappingsVar,
		MappingsPackage: DefaultMappingsPackage,
		MappingsFormat:  MappingsJS,
	}
	for _, t := range defaultTags {
		cfg.SetTag(t.tag, t.folder, t.position)
	}
	return cfg
}

// SetTag adds or replaces the folder and base position of tag. An empty
// folder keeps the slug of the tag; a zero position leaves the folder's
// position unchanged.
func (c *SiteConfig) SetTag(tag, folder string, position int) {
	if c.Folders == nil {
		c.Folders = make(map[string]string)
	}
	if c.Positions == nil {
		c.Positions = make(map[string]int)
	}
	if folder != "" {
		c.Folders[tag] = folder
	}
	if position != 0 {
		c.Positions[c.Folder(tag)] = position
	}
}

// Folder returns the folder name of tag.
func (c *SiteConfig) Folder(tag string) string {
	return naming.FolderName(tag, c.Folders)
}

// BasePosition returns the base sidebar position of folder.
func (c *SiteConfig) BasePosition(folder string) int {
	if pos, ok := c.Positions[folder]; ok && pos != 0 {
		return pos
	}
	return DefaultPosition
}

// Clone returns a deep copy of c.
func (c *SiteConfig) Clone() *SiteConfig {
	out := *c
	out.Folders = maps.Clone(c.Folders)
	out.Positions = maps.Clone(c.Positions)
	return &out
}

// withDefaults fills empty scalar fields from DefaultSiteConfig.
func (c *SiteConfig) withDefaults() *SiteConfig {
	out := c.Clone()
	if out.URLPrefix == "" {
		out.URLPrefix = DefaultURLPrefix
	}
	if out.MappingsVar == "" {
		out.MappingsVar = DefaultMappingsVar
	}
	if out.MappingsPackage == "" {
		out.MappingsPackage = DefaultMappingsPackage
	}
	if out.MappingsFormat == "" {
		out.MappingsFormat = MappingsJS
	}
	return out
}
