package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-engine/internal/observability"
	"github.com/jonathan/resume-engine/internal/rendering"
	"github.com/jonathan/resume-engine/internal/templates"
	"github.com/jonathan/resume-engine/internal/types"
)

// RenderRequest is the payload for POST /render
type RenderRequest struct {
	TemplateID string              `json:"template_id" validate:"required"`
	Resume     *types.Resume       `json:"resume" validate:"required"`
	Options    types.RenderOptions `json:"options"`
}

// PreviewRequest is the payload for POST /render/preview
type PreviewRequest struct {
	TemplateID string `json:"template_id" validate:"required"`
}

// PreviewResponse carries the gallery card markup
type PreviewResponse struct {
	HTML string `json:"html"`
}

// OptimizeRequest is the payload for POST /optimize. The template is
// resolved from the registry by id.
type OptimizeRequest struct {
	TemplateID     string                       `json:"template_id" validate:"required"`
	Resume         *types.Resume                `json:"resume" validate:"required"`
	Customization  *types.TemplateCustomization `json:"customization,omitempty"`
	JobDescription string                       `json:"job_description,omitempty"`
	TargetIndustry string                       `json:"target_industry,omitempty"`
	TargetCompany  string                       `json:"target_company,omitempty"`
}

// RealTimeScoreRequest is the payload for POST /optimize/realtime
type RealTimeScoreRequest struct {
	Content  string   `json:"content"`
	Section  string   `json:"section" validate:"required"`
	Keywords []string `json:"keywords,omitempty"`
}

// CacheCleanupResponse reports how many expired entries were removed
type CacheCleanupResponse struct {
	Removed int `json:"removed"`
}

// handleRender renders a resume through a template and returns the document
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req RenderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	start := time.Now()
	rendered, err := s.renderer.Render(req.TemplateID, req.Resume, req.Options)
	if err != nil {
		observability.ObserveRender(time.Since(start), "error")
		s.renderErrorResponse(w, err)
		return
	}
	observability.ObserveRender(time.Since(start), "ok")

	s.jsonResponse(w, http.StatusOK, rendered)
}

// renderErrorResponse maps a render failure onto the right status, keeping
// the validation message list intact for 422 responses.
func (s *Server) renderErrorResponse(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if failed, ok := err.(*rendering.ValidationFailedError); ok {
		s.jsonResponse(w, status, map[string]any{
			"error":    "resume failed validation",
			"messages": failed.Messages,
		})
		return
	}
	s.errorResponse(w, status, err.Error())
}

// handleRenderPreview returns the lightweight gallery card for a template
func (s *Server) handleRenderPreview(w http.ResponseWriter, r *http.Request) {
	var req PreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	s.jsonResponse(w, http.StatusOK, PreviewResponse{HTML: s.renderer.Preview(req.TemplateID)})
}

// handleOptimize runs the batch ATS scoring pipeline
func (s *Server) handleOptimize(w http.ResponseWriter, r *http.Request) {
	var req OptimizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	template, err := s.registry.Get(req.TemplateID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	start := time.Now()
	result, err := s.optimizer.OptimizeForATS(r.Context(), &types.OptimizeRequest{
		Resume:         req.Resume,
		Template:       template,
		Customization:  req.Customization,
		JobDescription: req.JobDescription,
		TargetIndustry: req.TargetIndustry,
		TargetCompany:  req.TargetCompany,
	})
	if err != nil {
		observability.ObserveOptimize(time.Since(start), "error")
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	observability.ObserveOptimize(time.Since(start), "ok")

	s.jsonResponse(w, http.StatusOK, result)
}

// handleRealTimeScore returns as-you-type feedback for one section
func (s *Server) handleRealTimeScore(w http.ResponseWriter, r *http.Request) {
	var req RealTimeScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	s.jsonResponse(w, http.StatusOK, s.optimizer.RealTimeATSScore(req.Content, req.Section, req.Keywords))
}

// handleValidateTemplate validates a template definition supplied in the
// request body and returns the scored report. Findings are data, so the
// response is 200 even when the template fails.
func (s *Server) handleValidateTemplate(w http.ResponseWriter, r *http.Request) {
	var template types.ResumeTemplate
	if err := json.NewDecoder(r.Body).Decode(&template); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid template JSON")
		return
	}

	s.jsonResponse(w, http.StatusOK, templates.Validate(&template))
}

// handleListTemplates returns catalog summaries sorted by id
func (s *Server) handleListTemplates(w http.ResponseWriter, _ *http.Request) {
	summaries, err := s.registry.List()
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, summaries)
}

// handleCacheStats returns cache statistics and publishes them as metrics
func (s *Server) handleCacheStats(w http.ResponseWriter, _ *http.Request) {
	stats := s.cache.GetStats()
	observability.SetCacheStats(stats.HitRate, stats.Size)
	s.jsonResponse(w, http.StatusOK, stats)
}

// handleCacheCleanup evicts expired entries eagerly
func (s *Server) handleCacheCleanup(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, CacheCleanupResponse{Removed: s.cache.Cleanup()})
}

// extractValidationErrors formats the first validation failure for the
// client.
func extractValidationErrors(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		if len(validationErrors) > 0 {
			ve := validationErrors[0]
			return fmt.Sprintf("validation error: %s - %s", ve.Field(), ve.Tag())
		}
	}
	return "validation error: invalid request"
}
