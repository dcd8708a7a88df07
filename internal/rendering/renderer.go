package rendering

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-engine/internal/binding"
	"github.com/jonathan/resume-engine/internal/registry"
	"github.com/jonathan/resume-engine/internal/types"
)

// ContentProcessor runs before binding to sanitize or reshape resume
// content. The default set is empty; processing is pass-through.
type ContentProcessor interface {
	Name() string
	Process(resume *types.Resume) (*types.Resume, error)
}

// Renderer orchestrates the render pipeline: resolve template → validate
// resume against it → bind data → generate styles → assemble HTML.
type Renderer struct {
	registry   *registry.Registry
	binder     *binding.Binder
	processors []ContentProcessor
}

// New creates a Renderer over a template registry and binder
func New(reg *registry.Registry, binder *binding.Binder, processors ...ContentProcessor) *Renderer {
	return &Renderer{registry: reg, binder: binder, processors: processors}
}

// Render produces a complete document for (templateID, resume, options).
// Template absence surfaces as *registry.TemplateNotFoundError and contract
// violations as *ValidationFailedError; any other failure is wrapped into
// *RenderError so callers never see an unstructured panic.
func (r *Renderer) Render(templateID string, resume *types.Resume, options types.RenderOptions) (rendered *types.RenderedTemplate, err error) {
	started := time.Now()

	defer func() {
		if rec := recover(); rec != nil {
			rendered = nil
			err = &RenderError{TemplateID: templateID, Message: "unexpected rendering failure", Cause: fmt.Errorf("%v", rec)}
		}
	}()

	template, err := r.registry.Get(templateID)
	if err != nil {
		return nil, err
	}

	validation := ValidateResume(template, resume)
	if !validation.IsValid {
		return nil, &ValidationFailedError{TemplateID: templateID, Messages: validation.ErrorMessages()}
	}

	if options.Format == "" {
		options.Format = types.FormatHTML
	}

	processed := resume
	for _, processor := range r.processors {
		next, procErr := processor.Process(processed)
		if procErr != nil {
			return nil, &RenderError{TemplateID: templateID, Message: fmt.Sprintf("content processor %q failed", processor.Name()), Cause: procErr}
		}
		processed = next
	}

	bindResult := r.binder.Bind(template, processed, options.Customization)
	contract := binding.ValidateBoundData(template, bindResult.Data)

	style := resolveStyle(template, options.Customization)
	css := generateCSS(style)
	htmlDoc := assembleDocument(template, processed, bindResult.Data, css, options)
	if options.Minify {
		htmlDoc = minifyHTML(htmlDoc)
	}

	metadata := types.RenderMetadata{
		RenderID:      uuid.NewString(),
		TemplateID:    templateID,
		GeneratedAt:   started,
		RenderingTime: time.Since(started),
		Checksum:      checksum(htmlDoc + css),
		HTMLBytes:     len(htmlDoc),
		CSSBytes:      len(css),
		TotalBytes:    len(htmlDoc) + len(css),
	}

	return &types.RenderedTemplate{
		HTML:        htmlDoc,
		CSS:         css,
		Assets:      fontAssets(style),
		Metadata:    metadata,
		Diagnostics: contract,
	}, nil
}

// Validate resolves the template and checks the resume against it without
// rendering. Template absence surfaces as *registry.TemplateNotFoundError.
func (r *Renderer) Validate(templateID string, resume *types.Resume) (*types.ValidationResult, error) {
	template, err := r.registry.Get(templateID)
	if err != nil {
		return nil, err
	}
	return ValidateResume(template, resume), nil
}

// fontAssets lists the font families the document depends on
func fontAssets(style resolvedStyle) []types.Asset {
	assets := []types.Asset{{Kind: "font", Name: style.BodyFamily}}
	if style.HeadingFamily != style.BodyFamily {
		assets = append(assets, types.Asset{Kind: "font", Name: style.HeadingFamily})
	}
	return assets
}
