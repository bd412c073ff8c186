package rendering

import "strings"

const baseStylesheet = `
.resume-preview { max-width: 800px; margin: 0 auto; padding: 32px; background: #fff; color: #222; line-height: 1.45; }
.resume-header { margin-bottom: 20px; }
.resume-name { font-size: 28px; margin: 0 0 8px 0; }
.resume-contact span { margin-right: 15px; }
.resume-section { margin-top: 18px; }
.section-title { font-size: 18px; margin: 0 0 10px 0; }
.entry { margin-bottom: 14px; }
.entry-title { font-weight: bold; }
.entry-subtitle { color: #666; font-size: 14px; margin: 2px 0 6px 0; }
.skills-display { margin-top: 6px; }
.skill-item { display: inline-block; padding: 3px 8px; margin: 2px; border-radius: 3px; background: #f0f0f0; }
`

var templateStylesheets = map[string]string{
	"classic": `
.classic-template { font-family: Georgia, "Times New Roman", serif; }
.classic-template .section-title { border-bottom: 1px solid #000; text-transform: uppercase; letter-spacing: 1px; }
`,
	"modern": `
.modern-template { font-family: "Helvetica Neue", Arial, sans-serif; }
.modern-template .resume-name { color: #1f6feb; }
.modern-template .section-title { color: #1f6feb; border-left: 4px solid #1f6feb; padding-left: 8px; }
.modern-template .skill-item { background: #e7f0ff; }
`,
	"minimal": `
.minimal-template { font-family: Arial, sans-serif; padding: 20px; }
.minimal-template .section-title { font-size: 15px; text-transform: uppercase; color: #555; }
.minimal-template .skill-item { background: none; padding: 0 6px 0 0; }
`,
	"professional": `
.professional-template { font-family: Calibri, Arial, sans-serif; }
.professional-template .resume-header { text-align: center; border-bottom: 2px solid #333; padding-bottom: 12px; }
.professional-template .section-title { background: #eee; padding: 4px 8px; }
`,
}

// Stylesheet returns the CSS for the named template, including the shared base rules.
func Stylesheet(templateName string) (string, error) {
	tmpl, err := LookupTemplate(templateName)
	if err != nil {
		return "", err
	}
	return baseStylesheet + templateStylesheets[tmpl.Name], nil
}

// Stylesheets returns the base rules and every template's rules, for pages
// that switch templates without reloading.
func Stylesheets() string {
	var sb strings.Builder
	sb.WriteString(baseStylesheet)
	for _, t := range templates {
		sb.WriteString(templateStylesheets[t.Name])
	}
	return sb.String()
}
