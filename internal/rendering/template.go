package rendering

import (
	"html/template"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// TemplateInfo describes a selectable template to external callers.
type TemplateInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Template maps a resume record to a fully self-contained HTML document.
// Implementations must be pure: the same record always produces
// byte-identical output.
type Template interface {
	Info() TemplateInfo
	Generate(r *types.Resume) (string, error)
}

// pageData is the root value handed to a theme's "page" template.
type pageData struct {
	Resume   *types.Resume
	Sections []template.HTML
}

// htmlTemplate is a visual theme backed by html/template. Each content
// module lives in a named sub-template keyed by its module ID, so the
// record's module order drives a lookup instead of a branch chain and
// unknown IDs fall through to nothing.
type htmlTemplate struct {
	info TemplateInfo
	page *template.Template
}

func newHTMLTemplate(info TemplateInfo, text string) *htmlTemplate {
	page := template.Must(template.New(info.ID).Funcs(templateFuncs()).Parse(text))
	return &htmlTemplate{info: info, page: page}
}

func (t *htmlTemplate) Info() TemplateInfo {
	return t.info
}

// Generate renders the resume into a complete HTML document. Sections are
// emitted in module order; disabled modules, empty modules, and module IDs
// the theme does not define are all skipped silently.
func (t *htmlTemplate) Generate(r *types.Resume) (string, error) {
	sections := make([]template.HTML, 0, len(r.ModuleOrder))
	for _, m := range r.ModuleOrder {
		if !m.Enabled {
			continue
		}
		if !sectionHasContent(r, m.ID) {
			continue
		}
		if t.page.Lookup(m.ID) == nil {
			continue
		}
		var buf strings.Builder
		if err := t.page.ExecuteTemplate(&buf, m.ID, r); err != nil {
			return "", &TemplateError{
				Message: "failed to render section " + m.ID,
				Cause:   err,
			}
		}
		sections = append(sections, template.HTML(buf.String()))
	}

	var out strings.Builder
	if err := t.page.ExecuteTemplate(&out, "page", pageData{Resume: r, Sections: sections}); err != nil {
		return "", &TemplateError{
			Message: "failed to render page",
			Cause:   err,
		}
	}
	return out.String(), nil
}

// sectionHasContent reports whether a module has anything to render.
// Empty sections are suppressed entirely rather than shown as bare
// headers; unknown module IDs have no content by definition.
func sectionHasContent(r *types.Resume, moduleID string) bool {
	switch moduleID {
	case types.ModuleWorkExperience:
		return len(r.WorkExperience) > 0
	case types.ModuleEducation:
		return len(r.Education) > 0
	case types.ModuleSkills:
		return len(r.Skills) > 0
	case types.ModuleProjects:
		return len(r.Projects) > 0
	case types.ModuleCertifications:
		return len(r.Certifications) > 0
	case types.ModuleLanguages:
		return len(r.Languages) > 0
	default:
		return false
	}
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"formatMonth": FormatMonth,
		"dateRange":   FormatDateRange,
		"join":        strings.Join,
	}
}
