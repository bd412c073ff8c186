package rendering

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// NamePlaceholder is shown in the header while no name has been entered.
const NamePlaceholder = "Your Name"

// Render produces the preview markup for doc under the named template.
// It has no side effects and returns identical output for identical input.
// User text is placed in text nodes, so it is escaped on serialization.
func Render(doc types.ResumeDocument, templateName string) (string, error) {
	root, err := Build(doc, templateName)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	if err := html.Render(&sb, root); err != nil {
		return "", &RenderError{Message: "failed to serialize preview", Cause: err}
	}
	return sb.String(), nil
}

// Build returns the preview as a node tree rooted at the preview container.
func Build(doc types.ResumeDocument, templateName string) (*html.Node, error) {
	tmpl, err := LookupTemplate(templateName)
	if err != nil {
		return nil, err
	}

	root := element(atom.Div, tmpl.RootClass(), buildHeader(doc.Personal))

	if doc.Summary != "" {
		root.AppendChild(section("Professional Summary", element(atom.P, "", text(doc.Summary))))
	}
	if len(doc.Experience) > 0 {
		root.AppendChild(section("Work Experience", experienceEntries(doc.Experience)...))
	}
	if len(doc.Education) > 0 {
		root.AppendChild(section("Education", educationEntries(doc.Education)...))
	}
	if len(doc.Skills) > 0 {
		display := element(atom.Div, "skills-display")
		for _, skill := range doc.Skills {
			display.AppendChild(element(atom.Span, "skill-item", text(skill)))
		}
		root.AppendChild(section("Skills", display))
	}
	if len(doc.Projects) > 0 {
		root.AppendChild(section("Projects", projectEntries(doc.Projects)...))
	}
	if len(doc.Certifications) > 0 {
		root.AppendChild(section("Certifications", certificationEntries(doc.Certifications)...))
	}

	return root, nil
}

func buildHeader(p types.Personal) *html.Node {
	name := p.Name
	if name == "" {
		name = NamePlaceholder
	}

	contact := element(atom.Div, "resume-contact")
	for _, value := range []string{p.Email, p.Phone, p.Address, p.LinkedIn, p.Website} {
		if value != "" {
			contact.AppendChild(element(atom.Span, "", text(value)))
		}
	}

	return element(atom.Div, "resume-header",
		element(atom.H1, "resume-name", text(name)),
		contact,
	)
}

func experienceEntries(list []types.Experience) []*html.Node {
	nodes := make([]*html.Node, 0, len(list))
	for _, exp := range list {
		title := exp.Title
		if exp.Company != "" {
			title = strings.TrimSpace(title + " at " + exp.Company)
		}
		subtitle := joinNonEmpty(" | ", exp.Location, FormatDateRange(exp.StartDate, exp.EndDate))
		nodes = append(nodes, entry(title, subtitle, exp.Description))
	}
	return nodes
}

func educationEntries(list []types.Education) []*html.Node {
	nodes := make([]*html.Node, 0, len(list))
	for _, edu := range list {
		place := joinNonEmpty(", ", edu.School, edu.Location)
		subtitle := joinNonEmpty(" | ", place, FormatDateRange(edu.StartDate, edu.EndDate))
		nodes = append(nodes, entry(edu.Degree, subtitle, ""))
	}
	return nodes
}

func projectEntries(list []types.Project) []*html.Node {
	nodes := make([]*html.Node, 0, len(list))
	for _, p := range list {
		nodes = append(nodes, entry(p.Name, p.Technologies, p.Description))
	}
	return nodes
}

func certificationEntries(list []types.Certification) []*html.Node {
	nodes := make([]*html.Node, 0, len(list))
	for _, c := range list {
		nodes = append(nodes, entry(c.Name, joinNonEmpty(" | ", c.Issuer, FormatDate(c.Date)), ""))
	}
	return nodes
}

// entry builds one list entry; empty subtitle and body are omitted.
func entry(title, subtitle, body string) *html.Node {
	n := element(atom.Div, "entry", element(atom.Div, "entry-title", text(title)))
	if subtitle != "" {
		n.AppendChild(element(atom.Div, "entry-subtitle", text(subtitle)))
	}
	if body != "" {
		n.AppendChild(element(atom.P, "", text(body)))
	}
	return n
}

func section(title string, children ...*html.Node) *html.Node {
	n := element(atom.Div, "resume-section", element(atom.H2, "section-title", text(title)))
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}

func element(a atom.Atom, class string, children ...*html.Node) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	if class != "" {
		n.Attr = []html.Attribute{{Key: "class", Val: class}}
	}
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
