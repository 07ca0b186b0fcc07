package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeArtifacts writes a minimal valid artifact set into dir.
func writeArtifacts(t *testing.T, dir string) {
	t.Helper()

	entries := []Entry{
		{
			Name:        "button",
			Title:       "Button",
			Description: "Triggers an action.",
			Category:    CategoryComponent,
			Sections:    []Section{SectionOverview, SectionCode},
		},
	}
	icons := []Icon{
		{Name: "download", Category: "system", Variants: []string{"fill", "line"}, Classes: []string{"dk-icon-download"}},
	}
	colors := Colors{
		DecisionTokens: []DecisionToken{
			{Token: "background-default", Context: "background", Description: "Default surface", Light: "grey-1000", Dark: "grey-75"},
		},
		Families: []Family{
			{Name: "blue-france", Category: "primaire", Correspondences: map[string]Shade{
				"hover": {Light: "blue-425", Dark: "blue-625"},
			}},
		},
		IllustrativeNames: []string{"green-tilleul"},
	}

	for name, v := range map[string]any{IndexFile: entries, IconsFile: icons, ColorsFile: colors} {
		data, err := json.Marshal(v)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o644))
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeArtifacts(t, dir)

	c, err := Load(dir)
	require.NoError(t, err)

	require.Len(t, c.Entries, 1)
	assert.Equal(t, "button", c.Entries[0].Name)
	assert.Equal(t, CategoryComponent, c.Entries[0].Category)

	require.Len(t, c.Icons, 1)
	assert.Equal(t, []string{"fill", "line"}, c.Icons[0].Variants)

	require.Len(t, c.Colors.DecisionTokens, 1)
	assert.Equal(t, "background", c.Colors.DecisionTokens[0].Context)
	require.Len(t, c.Colors.Families, 1)
	assert.Equal(t, "blue-425", c.Colors.Families[0].Correspondences["hover"].Light)
	assert.Equal(t, []string{"green-tilleul"}, c.Colors.IllustrativeNames)
}

func TestLoadMissingArtifactIsFatal(t *testing.T) {
	dir := t.TempDir()
	writeArtifacts(t, dir)
	require.NoError(t, os.Remove(filepath.Join(dir, ColorsFile)))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ColorsFile)
	assert.Contains(t, err.Error(), "extract")
}

func TestLoadMalformedArtifact(t *testing.T) {
	dir := t.TempDir()
	writeArtifacts(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, IndexFile), []byte("{not json"), 0o644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), IndexFile)
}

func TestSectionPath(t *testing.T) {
	c := &Catalog{dataDir: "/data"}
	e := Entry{Name: "button", Category: CategoryComponent}

	got := c.SectionPath(e, SectionCode)
	assert.Equal(t, filepath.Join("/data", "content", "component", "button", "code.md"), got)
}

func TestEntryHasSection(t *testing.T) {
	e := Entry{Sections: []Section{SectionOverview, SectionCode}}
	assert.True(t, e.HasSection(SectionCode))
	assert.False(t, e.HasSection(SectionDemo))
}

func TestContentStoreRead(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "code.md")
	require.NoError(t, os.WriteFile(path, []byte("## Usage"), 0o644))

	store, err := NewContentStore(2)
	require.NoError(t, err)

	text, ok := store.Read(path)
	require.True(t, ok)
	assert.Equal(t, "## Usage", text)
	assert.Equal(t, 1, store.Len())

	// Second read is served from cache even if the file disappears.
	require.NoError(t, os.Remove(path))
	text, ok = store.Read(path)
	require.True(t, ok)
	assert.Equal(t, "## Usage", text)
}

func TestContentStoreMissingFile(t *testing.T) {
	store, err := NewContentStore(2)
	require.NoError(t, err)

	_, ok := store.Read(filepath.Join(t.TempDir(), "absent.md"))
	assert.False(t, ok)
	assert.Equal(t, 0, store.Len())
}

func TestContentStoreBoundedByCapacity(t *testing.T) {
	dir := t.TempDir()
	store, err := NewContentStore(2)
	require.NoError(t, err)

	for _, name := range []string{"a.md", "b.md", "c.md"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(name), 0o644))
		_, ok := store.Read(path)
		require.True(t, ok)
	}

	assert.Equal(t, 2, store.Len())
}

func TestContentStoreRejectsInvalidCapacity(t *testing.T) {
	_, err := NewContentStore(0)
	require.Error(t, err)
}
