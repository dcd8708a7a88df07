package rendering

import (
	"fmt"
	"html"
	"sort"
	"strings"

	"github.com/jonathan/resume-engine/internal/types"
)

// assembleDocument builds the complete HTML document: a header block followed
// by one block per visible section that has bound data, sorted by declared
// order. Sections without data are silently omitted rather than rendered
// empty.
func assembleDocument(template *types.ResumeTemplate, resume *types.Resume, data types.BoundData, css string, options types.RenderOptions) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(resume.PersonalInfo.FullName))
	if options.InlineCSS {
		fmt.Fprintf(&b, "<style>\n%s</style>\n", css)
	} else {
		b.WriteString("<link rel=\"stylesheet\" href=\"resume.css\">\n")
	}
	b.WriteString("</head>\n<body>\n")

	writeHeader(&b, resume)

	b.WriteString("<main class=\"resume-body\">\n")
	for _, section := range orderedSections(template) {
		if !options.Customization.SectionVisible(&section) {
			continue
		}
		if section.Type == types.SectionPersonalInfo {
			// Contact details already rendered in the header block.
			continue
		}
		fields, ok := data[section.ID]
		if !ok || len(fields) == 0 {
			continue
		}
		writeSection(&b, section, fields)
	}
	b.WriteString("</main>\n</body>\n</html>\n")

	return b.String()
}

// writeHeader emits the name, optional title, and contact line
func writeHeader(b *strings.Builder, resume *types.Resume) {
	info := resume.PersonalInfo
	b.WriteString("<header class=\"resume-header\">\n")
	fmt.Fprintf(b, "<h1>%s</h1>\n", html.EscapeString(info.FullName))
	if info.Title != "" {
		fmt.Fprintf(b, "<p class=\"resume-title\">%s</p>\n", html.EscapeString(info.Title))
	}
	contact := make([]string, 0, 4)
	for _, part := range []string{info.Email, info.Phone, info.Location, info.LinkedIn} {
		if part != "" {
			contact = append(contact, html.EscapeString(part))
		}
	}
	if len(contact) > 0 {
		fmt.Fprintf(b, "<p class=\"resume-contact\">%s</p>\n", strings.Join(contact, " · "))
	}
	b.WriteString("</header>\n")
}

// writeSection emits one section block. List sections carry parallel arrays
// of field values; these are zipped into per-entry items.
func writeSection(b *strings.Builder, section types.TemplateSection, fields map[string]any) {
	fmt.Fprintf(b, "<section class=\"resume-section\" id=\"%s\">\n", html.EscapeString(section.ID))
	title := section.Title
	if title == "" {
		title = string(section.Type)
	}
	fmt.Fprintf(b, "<h2>%s</h2>\n", html.EscapeString(title))

	entries := entryCount(section, fields)
	if entries > 1 || (entries == 1 && hasListValues(section, fields)) {
		for i := 0; i < entries; i++ {
			b.WriteString("<div class=\"resume-item\">\n")
			for _, field := range section.Fields {
				writeFieldValue(b, field, elementAt(fields[field.ID], i))
			}
			b.WriteString("</div>\n")
		}
	} else {
		for _, field := range section.Fields {
			writeFieldValue(b, field, fields[field.ID])
		}
	}
	b.WriteString("</section>\n")
}

func writeFieldValue(b *strings.Builder, field types.TemplateField, value any) {
	if value == nil {
		return
	}
	switch v := value.(type) {
	case []any:
		fmt.Fprintf(b, "<ul class=\"resume-field resume-field-%s\">\n", html.EscapeString(field.ID))
		for _, element := range v {
			fmt.Fprintf(b, "<li>%s</li>\n", html.EscapeString(fmt.Sprintf("%v", element)))
		}
		b.WriteString("</ul>\n")
	default:
		fmt.Fprintf(b, "<p class=\"resume-field resume-field-%s\">%s</p>\n",
			html.EscapeString(field.ID), html.EscapeString(fmt.Sprintf("%v", v)))
	}
}

// orderedSections returns the template sections sorted by declared order
func orderedSections(template *types.ResumeTemplate) []types.TemplateSection {
	sections := make([]types.TemplateSection, len(template.Sections))
	copy(sections, template.Sections)
	sort.SliceStable(sections, func(i, j int) bool { return sections[i].Order < sections[j].Order })
	return sections
}

// entryCount derives how many zipped items a section has: the longest value
// list among its fields, or 1 when every value is scalar.
func entryCount(section types.TemplateSection, fields map[string]any) int {
	max := 1
	for _, field := range section.Fields {
		if list, ok := fields[field.ID].([]any); ok && len(list) > max {
			max = len(list)
		}
	}
	return max
}

func hasListValues(section types.TemplateSection, fields map[string]any) bool {
	for _, field := range section.Fields {
		if _, ok := fields[field.ID].([]any); ok {
			return true
		}
	}
	return false
}

// elementAt picks the i-th element of a list value; scalars only appear in
// the first entry.
func elementAt(value any, i int) any {
	switch v := value.(type) {
	case []any:
		if i < len(v) {
			return v[i]
		}
		return nil
	default:
		if i == 0 {
			return v
		}
		return nil
	}
}
