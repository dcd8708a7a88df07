package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-engine/internal/config"
	"github.com/jonathan/resume-engine/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serverTemplate() *types.ResumeTemplate {
	return &types.ResumeTemplate{
		ID:          "api-fixture",
		Name:        "API Fixture",
		Description: "Single column fixture used by the HTTP API tests.",
		Category:    types.CategoryProfessional,
		Sections: []types.TemplateSection{
			{
				ID: "personal", Type: types.SectionPersonalInfo, Required: true, Order: 1, Visible: true,
				Fields: []types.TemplateField{
					{ID: "full_name", Type: "text", Required: true},
					{ID: "email", Type: "email"},
				},
			},
			{
				ID: "experience", Type: types.SectionExperience, Order: 2, Visible: true,
				Fields: []types.TemplateField{
					{ID: "position", Type: "text"},
					{ID: "company", Type: "text"},
				},
			},
		},
		Layout: types.LayoutConfig{
			Format:       "single-column",
			Columns:      1,
			HeaderStyle:  types.HeaderCentered,
			SectionOrder: []string{"personal", "experience"},
			Spacing:      types.SpacingConfig{Section: 18, Item: 8, LineHeight: 1.4},
			Page: types.PageConfig{
				WidthIn: 8.5, HeightIn: 11,
				Margins: types.MarginConfig{Top: 1, Bottom: 1, Left: 1, Right: 1},
			},
		},
		Styling: types.StylingConfig{
			Fonts: types.FontConfig{
				Heading: types.FontSpec{Family: "Georgia", SizePx: 24},
				Body:    types.FontSpec{Family: "Arial", SizePx: 11},
			},
			Colors: types.ColorPalette{Primary: "#2563eb", Text: "#111111", Background: "#ffffff"},
		},
	}
}

func serverResume() *types.Resume {
	return &types.Resume{
		PersonalInfo: types.PersonalInfo{
			FullName: "Dana Whitfield",
			Email:    "dana@example.com",
			Phone:    "(415) 555-0142",
		},
		Summary: "Led backend platform work across payments and infrastructure.",
		Experience: []types.Experience{
			{Position: "Staff Engineer", Company: "Initech", Description: "Led a team of 6 people and reduced deploy time by 40%."},
		},
		Education: []types.Education{{Institution: "State University", Degree: "BS Computer Science"}},
		Skills:    []types.Skill{{Name: "Go"}},
	}
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	dir := t.TempDir()
	data, err := json.MarshalIndent(serverTemplate(), "", "  ")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "api-fixture.json"), data, 0644))

	cfg := &config.Config{TemplateDir: dir}
	cfg.ApplyDefaults()

	srv, err := New(cfg)
	require.NoError(t, err)
	return srv
}

func doJSON(t *testing.T, srv *Server, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	srv.Handler().ServeHTTP(recorder, req)
	return recorder
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t)

	recorder := doJSON(t, srv, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"status":"ok"}`, recorder.Body.String())
}

func TestHandleRender_Success(t *testing.T) {
	srv := newTestServer(t)

	recorder := doJSON(t, srv, http.MethodPost, "/render", RenderRequest{
		TemplateID: "api-fixture",
		Resume:     serverResume(),
		Options:    types.RenderOptions{InlineCSS: true},
	})

	require.Equal(t, http.StatusOK, recorder.Code)
	var rendered types.RenderedTemplate
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &rendered))
	assert.Contains(t, rendered.HTML, "Dana Whitfield")
	assert.NotEmpty(t, rendered.Metadata.Checksum)
}

func TestHandleRender_UnknownTemplate(t *testing.T) {
	srv := newTestServer(t)

	recorder := doJSON(t, srv, http.MethodPost, "/render", RenderRequest{
		TemplateID: "ghost",
		Resume:     serverResume(),
	})

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestHandleRender_ValidationFailure(t *testing.T) {
	srv := newTestServer(t)
	resume := serverResume()
	resume.PersonalInfo.FullName = ""

	recorder := doJSON(t, srv, http.MethodPost, "/render", RenderRequest{
		TemplateID: "api-fixture",
		Resume:     resume,
	})

	require.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	var payload struct {
		Error    string   `json:"error"`
		Messages []string `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	assert.NotEmpty(t, payload.Messages)
}

func TestHandleRender_MissingFields(t *testing.T) {
	srv := newTestServer(t)

	recorder := doJSON(t, srv, http.MethodPost, "/render", RenderRequest{TemplateID: "api-fixture"})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "validation error")
}

func TestHandleRender_MalformedBody(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/render", bytes.NewBufferString("{not json"))
	recorder := httptest.NewRecorder()
	srv.Handler().ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandleRenderPreview(t *testing.T) {
	srv := newTestServer(t)

	recorder := doJSON(t, srv, http.MethodPost, "/render/preview", PreviewRequest{TemplateID: "api-fixture"})

	require.Equal(t, http.StatusOK, recorder.Code)
	var preview PreviewResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &preview))
	assert.Contains(t, preview.HTML, "API Fixture")
}

func TestHandleRenderPreview_UnknownTemplatePlaceholder(t *testing.T) {
	srv := newTestServer(t)

	recorder := doJSON(t, srv, http.MethodPost, "/render/preview", PreviewRequest{TemplateID: "ghost"})

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "template-card-loading")
}

func TestHandleOptimize_Success(t *testing.T) {
	srv := newTestServer(t)

	recorder := doJSON(t, srv, http.MethodPost, "/optimize", OptimizeRequest{
		TemplateID:     "api-fixture",
		Resume:         serverResume(),
		JobDescription: "Senior Go engineer building cloud infrastructure",
	})

	require.Equal(t, http.StatusOK, recorder.Code)
	var result types.ATSOptimizationResult
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
	assert.GreaterOrEqual(t, result.OverallScore, 0.0)
	assert.LessOrEqual(t, result.OverallScore, 100.0)
	assert.Len(t, result.Compatibility.Systems, 8)
}

func TestHandleOptimize_UnknownTemplate(t *testing.T) {
	srv := newTestServer(t)

	recorder := doJSON(t, srv, http.MethodPost, "/optimize", OptimizeRequest{
		TemplateID: "ghost",
		Resume:     serverResume(),
	})

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestHandleRealTimeScore(t *testing.T) {
	srv := newTestServer(t)

	recorder := doJSON(t, srv, http.MethodPost, "/optimize/realtime", RealTimeScoreRequest{
		Content: "Led migration of the billing platform, reducing costs by 30%",
		Section: "experience",
	})

	require.Equal(t, http.StatusOK, recorder.Code)
	var score types.RealTimeScore
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &score))
	assert.Greater(t, score.Score, 0.0)
}

func TestHandleValidateTemplate_ReturnsReportNotError(t *testing.T) {
	srv := newTestServer(t)
	template := serverTemplate()
	template.ID = "Bad ID!"

	recorder := doJSON(t, srv, http.MethodPost, "/templates/validate", template)

	require.Equal(t, http.StatusOK, recorder.Code)
	var result types.ValidationResult
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
	assert.False(t, result.IsValid)
	assert.Less(t, result.Score, 100)
}

func TestHandleListTemplates(t *testing.T) {
	srv := newTestServer(t)

	recorder := doJSON(t, srv, http.MethodGet, "/templates", nil)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "api-fixture")
}

func TestHandleCacheStatsAndCleanup(t *testing.T) {
	srv := newTestServer(t)

	// Load one template into the cache first.
	doJSON(t, srv, http.MethodPost, "/render", RenderRequest{
		TemplateID: "api-fixture",
		Resume:     serverResume(),
	})

	stats := doJSON(t, srv, http.MethodGet, "/cache/stats", nil)
	require.Equal(t, http.StatusOK, stats.Code)
	assert.Contains(t, stats.Body.String(), "\"size\":1")

	cleanup := doJSON(t, srv, http.MethodPost, "/cache/cleanup", nil)
	require.Equal(t, http.StatusOK, cleanup.Code)
	assert.JSONEq(t, `{"removed":0}`, cleanup.Body.String())
}
