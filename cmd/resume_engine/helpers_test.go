package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadResume_ValidJSON(t *testing.T) {
	content := `{
		"personal_info": {"full_name": "Dana Whitfield", "email": "dana@example.com"},
		"skills": [{"name": "Go"}]
	}`
	path := filepath.Join(t.TempDir(), "resume.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	resume, err := loadResume(path)

	require.NoError(t, err)
	assert.Equal(t, "Dana Whitfield", resume.PersonalInfo.FullName)
	assert.Len(t, resume.Skills, 1)
}

func TestLoadResume_MissingFile(t *testing.T) {
	_, err := loadResume("/nonexistent/resume.json")
	assert.ErrorContains(t, err, "failed to read resume file")
}

func TestLoadCustomization_EmptyPathIsNil(t *testing.T) {
	customization, err := loadCustomization("")
	require.NoError(t, err)
	assert.Nil(t, customization)
}

func TestWriteJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	require.NoError(t, writeJSONFile(path, map[string]int{"score": 80}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"score":80}`, string(data))
}

func TestLoadEngineConfig_DefaultsWithoutFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("RESUME_ENGINE_TEMPLATE_DIR", dir)

	cfg, err := loadEngineConfig("")

	require.NoError(t, err)
	assert.Equal(t, dir, cfg.TemplateDir)
	assert.Equal(t, 8080, cfg.Port)
}
