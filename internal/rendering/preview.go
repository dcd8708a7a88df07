package rendering

import (
	"fmt"
	"html"
	"strings"

	"github.com/jonathan/resume-engine/internal/types"
)

// previewPlaceholder is returned when the requested template is not yet
// available; galleries show it in place of a card.
const previewPlaceholder = `<div class="template-card template-card-loading"><p>Loading template…</p></div>`

// Preview produces the lightweight gallery card for a template: thumbnail
// slot, name, description, category, and an ATS badge. Unlike Render it
// never fails on a missing template; the loading placeholder is returned
// instead.
func (r *Renderer) Preview(templateID string) string {
	template, err := r.registry.Get(templateID)
	if err != nil {
		return previewPlaceholder
	}
	return previewCard(template)
}

func previewCard(template *types.ResumeTemplate) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<div class=\"template-card\" data-template-id=\"%s\">\n", html.EscapeString(template.ID))
	fmt.Fprintf(&b, "<div class=\"template-thumbnail\" aria-label=\"%s preview\"></div>\n", html.EscapeString(template.Name))
	fmt.Fprintf(&b, "<h3>%s</h3>\n", html.EscapeString(template.Name))
	if template.Description != "" {
		fmt.Fprintf(&b, "<p>%s</p>\n", html.EscapeString(template.Description))
	}
	fmt.Fprintf(&b, "<span class=\"template-category\">%s</span>\n", html.EscapeString(string(template.Category)))
	if template.Features.ATSOptimized {
		b.WriteString("<span class=\"template-badge template-badge-ats\">ATS friendly</span>\n")
	}
	b.WriteString("</div>\n")
	return b.String()
}
