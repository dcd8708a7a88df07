package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/resume-engine/internal/cache"
	"github.com/jonathan/resume-engine/internal/types"
)

// schemaRelativePath locates the template shape schema relative to the repo root
const schemaRelativePath = "schemas/template.schema.json"

// idPattern matches well-formed template ids. Anything else never resolves,
// which also keeps lookups confined to the catalog directory.
var idPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// Registry resolves template definitions by id. Definitions live as
// <id>.json files in a catalog directory, are shape-checked against the
// template JSON schema on load, and are served through the TemplateCache.
type Registry struct {
	dir    string
	cache  *cache.TemplateCache
	schema *gojsonschema.Schema
}

// Summary is a lightweight catalog listing entry for template galleries
type Summary struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Category    types.TemplateCategory `json:"category"`
	ATSReady    bool                   `json:"ats_ready"`
}

// New creates a Registry over dir, fronted by templateCache. The template
// schema is compiled once at construction.
func New(dir string, templateCache *cache.TemplateCache) (*Registry, error) {
	schemaPath := ResolveSchemaPath(schemaRelativePath)
	if schemaPath == "" {
		return nil, &LoadError{Path: schemaRelativePath, Message: "template schema not found"}
	}

	schema, err := gojsonschema.NewSchema(gojsonschema.NewReferenceLoader("file://" + schemaPath))
	if err != nil {
		return nil, &LoadError{Path: schemaPath, Message: "failed to compile template schema", Cause: err}
	}

	return &Registry{dir: dir, cache: templateCache, schema: schema}, nil
}

// ResolveSchemaPath attempts to find a schema file by trying multiple common
// path resolutions: relative to the working directory, then one and two
// levels up. This keeps CLI commands and package tests working from their
// respective directories. Returns empty string if nothing exists.
func ResolveSchemaPath(relativePath string) string {
	candidates := []string{
		relativePath,
		filepath.Join("..", relativePath),
		filepath.Join("..", "..", relativePath),
	}
	for _, candidate := range candidates {
		if absPath, err := filepath.Abs(candidate); err == nil {
			if _, err := os.Stat(absPath); err == nil {
				return absPath
			}
		}
	}
	return ""
}

// Get resolves a template by id, consulting the cache first. A cache miss
// loads and validates the definition from disk and populates the cache.
func (r *Registry) Get(id string) (*types.ResumeTemplate, error) {
	if !idPattern.MatchString(id) {
		return nil, &TemplateNotFoundError{ID: id}
	}
	if template := r.cache.Get(id); template != nil {
		return template, nil
	}

	template, err := r.load(id)
	if err != nil {
		return nil, err
	}

	r.cache.Set(id, template)
	return template, nil
}

// Has reports whether a definition exists for id, without loading it
func (r *Registry) Has(id string) bool {
	if !idPattern.MatchString(id) {
		return false
	}
	if r.cache.Has(id) {
		return true
	}
	_, err := os.Stat(r.definitionPath(id))
	return err == nil
}

// List returns summaries for every definition in the catalog directory,
// sorted by id. Unreadable or schema-invalid files are skipped.
func (r *Registry) List() ([]Summary, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, &LoadError{Path: r.dir, Message: "failed to read catalog directory", Cause: err}
	}

	summaries := make([]Summary, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		id := strings.TrimSuffix(entry.Name(), ".json")
		template, err := r.Get(id)
		if err != nil {
			continue
		}
		summaries = append(summaries, Summary{
			ID:          template.ID,
			Name:        template.Name,
			Description: template.Description,
			Category:    template.Category,
			ATSReady:    template.Features.ATSOptimized,
		})
	}

	sort.Slice(summaries, func(i, j int) bool { return summaries[i].ID < summaries[j].ID })
	return summaries, nil
}

// load reads and shape-validates one definition file
func (r *Registry) load(id string) (*types.ResumeTemplate, error) {
	path := r.definitionPath(id)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &TemplateNotFoundError{ID: id}
		}
		return nil, &LoadError{Path: path, Message: "failed to read definition", Cause: err}
	}

	validation, err := r.schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, &LoadError{Path: path, Message: "schema validation failed to run", Cause: err}
	}
	if !validation.Valid() {
		fields := make([]string, 0, len(validation.Errors()))
		for _, desc := range validation.Errors() {
			fields = append(fields, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
		}
		return nil, &SchemaError{ID: id, Fields: fields}
	}

	var template types.ResumeTemplate
	if err := json.Unmarshal(data, &template); err != nil {
		return nil, &LoadError{Path: path, Message: "failed to parse definition", Cause: err}
	}
	if template.ID != id {
		return nil, &LoadError{Path: path, Message: fmt.Sprintf("definition id %q does not match file name %q", template.ID, id)}
	}

	return &template, nil
}

func (r *Registry) definitionPath(id string) string {
	return filepath.Join(r.dir, id+".json")
}
