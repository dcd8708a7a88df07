package registry

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-engine/internal/cache"
	"github.com/jonathan/resume-engine/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogTemplate(id string) *types.ResumeTemplate {
	return &types.ResumeTemplate{
		ID:          id,
		Name:        "Catalog Entry",
		Description: "Fixture template for registry tests.",
		Category:    types.CategoryModern,
		Sections: []types.TemplateSection{
			{
				ID: "personal", Type: types.SectionPersonalInfo, Order: 1, Visible: true, Required: true,
				Fields: []types.TemplateField{
					{ID: "full_name", Type: "text", Required: true},
					{ID: "email", Type: "email", Required: true},
				},
			},
		},
		Layout: types.LayoutConfig{
			Format:       "single-column",
			Columns:      1,
			HeaderStyle:  types.HeaderCentered,
			SectionOrder: []string{"personal"},
		},
		Styling: types.StylingConfig{
			Fonts: types.FontConfig{
				Heading: types.FontSpec{Family: "Georgia", SizePx: 22},
				Body:    types.FontSpec{Family: "Arial", SizePx: 11},
			},
			Colors: types.ColorPalette{Primary: "#2563eb", Text: "#111111", Background: "#ffffff"},
		},
		Features: types.TemplateFeatures{ATSOptimized: true},
	}
}

func writeDefinition(t *testing.T, dir string, template *types.ResumeTemplate) {
	t.Helper()
	data, err := json.MarshalIndent(template, "", "  ")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, template.ID+".json"), data, 0644))
}

func newTestRegistry(t *testing.T) (*Registry, string, *cache.TemplateCache) {
	t.Helper()
	dir := t.TempDir()
	templateCache := cache.New()
	reg, err := New(dir, templateCache)
	require.NoError(t, err)
	return reg, dir, templateCache
}

func TestGet_LoadsDefinitionFromDisk(t *testing.T) {
	reg, dir, _ := newTestRegistry(t)
	writeDefinition(t, dir, catalogTemplate("modern-one"))

	template, err := reg.Get("modern-one")

	require.NoError(t, err)
	assert.Equal(t, "modern-one", template.ID)
	assert.Equal(t, types.CategoryModern, template.Category)
}

func TestGet_PopulatesCache(t *testing.T) {
	reg, dir, templateCache := newTestRegistry(t)
	writeDefinition(t, dir, catalogTemplate("modern-one"))

	_, err := reg.Get("modern-one")
	require.NoError(t, err)

	assert.True(t, templateCache.Has("modern-one"))

	// A second resolve is served from cache even if the file disappears.
	require.NoError(t, os.Remove(filepath.Join(dir, "modern-one.json")))
	template, err := reg.Get("modern-one")
	require.NoError(t, err)
	assert.Equal(t, "modern-one", template.ID)
}

func TestGet_UnknownIDReturnsTypedError(t *testing.T) {
	reg, _, _ := newTestRegistry(t)

	_, err := reg.Get("nope")

	var notFound *TemplateNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "nope", notFound.ID)
}

func TestGet_SchemaInvalidDefinitionRejected(t *testing.T) {
	reg, dir, _ := newTestRegistry(t)
	// Missing required layout/styling keys.
	bad := []byte(`{"id": "broken", "name": "Broken", "category": "modern", "sections": []}`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), bad, 0644))

	_, err := reg.Get("broken")

	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.NotEmpty(t, schemaErr.Fields)
}

func TestGet_IDMismatchRejected(t *testing.T) {
	reg, dir, _ := newTestRegistry(t)
	template := catalogTemplate("actual-id")
	data, err := json.Marshal(template)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other-id.json"), data, 0644))

	_, err = reg.Get("other-id")

	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestGet_MalformedIDNeverLeavesCatalog(t *testing.T) {
	parent := t.TempDir()
	catalogDir := filepath.Join(parent, "catalog")
	require.NoError(t, os.MkdirAll(catalogDir, 0755))

	// A valid definition sits next to the catalog, not inside it.
	outside := catalogTemplate("escape")
	data, err := json.MarshalIndent(outside, "", "  ")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(parent, "escape.json"), data, 0644))

	reg, err := New(catalogDir, cache.New())
	require.NoError(t, err)

	for _, id := range []string{"../escape", "sub/escape", "Escape", ""} {
		_, err := reg.Get(id)
		var notFound *TemplateNotFoundError
		require.ErrorAs(t, err, &notFound, "id %q", id)
		assert.False(t, reg.Has(id), "id %q", id)
	}
}

func TestHas_ChecksDiskWithoutLoading(t *testing.T) {
	reg, dir, templateCache := newTestRegistry(t)
	writeDefinition(t, dir, catalogTemplate("modern-one"))

	assert.True(t, reg.Has("modern-one"))
	assert.False(t, templateCache.Has("modern-one"))
	assert.False(t, reg.Has("absent"))
}

func TestList_SortedSummariesSkippingInvalid(t *testing.T) {
	reg, dir, _ := newTestRegistry(t)
	writeDefinition(t, dir, catalogTemplate("zeta"))
	writeDefinition(t, dir, catalogTemplate("alpha"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "garbage.json"), []byte("{not json"), 0644))

	summaries, err := reg.List()

	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "alpha", summaries[0].ID)
	assert.Equal(t, "zeta", summaries[1].ID)
	assert.True(t, summaries[0].ATSReady)
}
