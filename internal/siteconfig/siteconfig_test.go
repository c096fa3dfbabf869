package siteconfig

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partnerdocs/oasdocs/docgen"
	"github.com/partnerdocs/oasdocs/oaserrors"
)

const sample = `spec: api/partner.yaml
output: site/docs/partner
urlPrefix: /docs/partner
mappingsFormat: go
mappingsPackage: routes
clean: true
tags:
  - tag: Beta Features
    folder: beta
    position: 130
  - tag: Chat
    position: 65
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(sample))
	require.NoError(t, err)
	assert.Equal(t, "api/partner.yaml", f.Spec)
	assert.Equal(t, "site/docs/partner", f.Output)
	assert.Empty(t, f.Mappings)
	assert.True(t, f.Clean)
	assert.Equal(t, []Tag{
		{Tag: "Beta Features", Folder: "beta", Position: 130},
		{Tag: "Chat", Position: 65},
	}, f.Tags)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "malformed yaml", src: "tags: [\n"},
		{name: "missing tag", src: "tags:\n  - folder: x\n"},
		{name: "duplicate tag", src: "tags:\n  - tag: A\n  - tag: A\n"},
		{name: "negative position", src: "tags:\n  - tag: A\n    position: -1\n"},
		{name: "unknown format", src: "mappingsFormat: ts\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src))
			assert.Error(t, err)
		})
	}
}

func TestFile_SiteConfig(t *testing.T) {
	f, err := Parse([]byte(sample))
	require.NoError(t, err)
	site, err := f.SiteConfig()
	require.NoError(t, err)

	assert.Equal(t, "/docs/partner", site.URLPrefix)
	assert.Equal(t, docgen.MappingsGo, site.MappingsFormat)
	assert.Equal(t, "routes", site.MappingsPackage)
	assert.Equal(t, docgen.DefaultMappingsVar, site.MappingsVar)
	assert.Equal(t, "beta", site.Folder("Beta Features"))
	assert.Equal(t, 130, site.BasePosition("beta"))
	assert.Equal(t, 65, site.BasePosition("chat"))
	assert.Equal(t, 40, site.BasePosition("prospects"), "defaults are kept")

	var none *File
	site, err = none.SiteConfig()
	require.NoError(t, err)
	assert.Equal(t, docgen.DefaultURLPrefix, site.URLPrefix)
}

func TestFile_Merge(t *testing.T) {
	base := Defaults()
	merged := base.Merge(&File{Output: "out", Tags: []Tag{{Tag: "A", Folder: "a"}}})
	assert.Equal(t, docgen.DefaultSpecPath, merged.Spec)
	assert.Equal(t, "out", merged.Output)
	assert.Equal(t, docgen.DefaultMappingsPath, merged.Mappings)
	assert.Len(t, merged.Tags, 1)
	assert.Empty(t, base.Tags, "merge does not modify the receiver")

	assert.Equal(t, base, base.Merge(nil))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	f, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "api/partner.yaml", f.Spec)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, oaserrors.ErrConfig))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	f, err = LoadOptional(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	assert.Nil(t, f)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("tags:\n  - folder: x\n"), 0o600))
	_, err = LoadOptional(bad)
	assert.True(t, errors.Is(err, oaserrors.ErrConfig))
}
