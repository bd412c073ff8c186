package server

import (
	"bytes"
	_ "embed"
	"html/template"
	"net/http"

	"github.com/jonathan/resume-builder/internal/formsync"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
	"go.uber.org/zap"
)

//go:embed web/editor.html.tmpl
var editorSource string

var editorTemplate = template.Must(template.New("editor").Parse(editorSource))

// sectionView is one list section of the editor form.
type sectionView struct {
	Section  types.Section
	Title    string
	AddLabel string
	Forms    []formsync.EntryForm
}

// editorView is the data the editor page template renders.
type editorView struct {
	Templates  []rendering.Template
	Selected   string
	Revision   uint64
	Personal   []formsync.Control
	Sections   []sectionView
	Skills     []string
	Preview    template.HTML
	Stylesheet template.CSS
	Specs      map[types.Section][]formsync.FieldSpec
	Headings   map[types.Section]string
}

var sectionTitles = map[types.Section]struct{ title, add string }{
	types.SectionExperience:     {"Work Experience", "Add Experience"},
	types.SectionEducation:      {"Education", "Add Education"},
	types.SectionProjects:       {"Projects", "Add Project"},
	types.SectionCertifications: {"Certifications", "Add Certification"},
}

// handleEditor renders the form, the live preview and the client wiring.
func (s *Server) handleEditor(w http.ResponseWriter, _ *http.Request) {
	preview, err := s.ws.Preview()
	if err != nil {
		s.writeError(w, err)
		return
	}
	doc, _ := s.ws.Document()
	sync := s.ws.Synchronizer()

	view := editorView{
		Templates: rendering.Templates(),
		Selected:  preview.Template,
		Revision:  preview.Revision,
		Personal:  sync.PersonalControls(),
		Skills:    doc.Skills,
		// the preview is built as a node tree with all user text escaped
		Preview:    template.HTML(preview.HTML), //nolint:gosec
		Stylesheet: template.CSS(rendering.Stylesheets()),
		Specs:      make(map[types.Section][]formsync.FieldSpec),
		Headings:   make(map[types.Section]string),
	}
	for _, section := range types.ListSections() {
		t := sectionTitles[section]
		view.Sections = append(view.Sections, sectionView{
			Section:  section,
			Title:    t.title,
			AddLabel: t.add,
			Forms:    sync.EntryForms(section),
		})
		view.Specs[section] = formsync.SectionSpecs(section)
		view.Headings[section] = formsync.SectionHeading(section)
	}

	var buf bytes.Buffer
	if err := editorTemplate.Execute(&buf, view); err != nil {
		s.logger.Error("failed to render editor page", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to render page")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
