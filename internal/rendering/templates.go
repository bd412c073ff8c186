package rendering

import "fmt"

// DefaultTemplate is used when no template is selected.
const DefaultTemplate = "classic"

// Template describes one visual variant of the preview.
type Template struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Description string `json:"description"`
}

var templates = []Template{
	{Name: "classic", DisplayName: "Classic", Description: "Traditional serif layout with ruled section titles"},
	{Name: "modern", DisplayName: "Modern", Description: "Sans-serif layout with an accent color"},
	{Name: "minimal", DisplayName: "Minimal", Description: "Compact layout without decoration"},
	{Name: "professional", DisplayName: "Professional", Description: "Centered header with shaded section titles"},
}

// Templates returns the available visual variants.
func Templates() []Template {
	return append([]Template(nil), templates...)
}

// LookupTemplate resolves a template by name. An empty name selects the default.
func LookupTemplate(name string) (Template, error) {
	if name == "" {
		name = DefaultTemplate
	}
	for _, t := range templates {
		if t.Name == name {
			return t, nil
		}
	}
	return Template{}, &TemplateError{Message: fmt.Sprintf("unknown template %q", name)}
}

// RootClass is the class list of the preview root element for a template.
func (t Template) RootClass() string {
	return "resume-preview " + t.Name + "-template"
}
