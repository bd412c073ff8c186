package formsync

import (
	"errors"
	"strconv"
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-builder/internal/document"
	"github.com/jonathan/resume-builder/internal/types"
)

// Input is one form input event. Dynamic controls send the structured
// address (Section, ID, Field); older clients may send only the composite
// Name instead.
type Input struct {
	Name    string        `json:"name,omitempty"`
	Section types.Section `json:"section,omitempty"`
	ID      types.EntryID `json:"id,omitempty"`
	Field   string        `json:"field,omitempty"`
	Value   string        `json:"value"`
}

// Result reports what an input event did.
type Result struct {
	Applied bool                `json:"applied"`
	Address *types.FieldAddress `json:"address,omitempty"`
	Field   string              `json:"field,omitempty"`
}

// SubmitResult is the outcome of required-field validation.
type SubmitResult struct {
	Valid   bool     `json:"valid"`
	Missing []string `json:"missing"`
}

// Synchronizer applies form input to a document model, write-through.
type Synchronizer struct {
	model *document.Model
}

// New creates a Synchronizer bound to model.
func New(model *document.Model) *Synchronizer {
	return &Synchronizer{model: model}
}

// Apply routes one input event to the model. Events that cannot be resolved
// to an existing field are dropped and reported as not applied.
func (s *Synchronizer) Apply(in Input) Result {
	if in.Section != "" {
		addr := types.FieldAddress{Section: in.Section, ID: in.ID, Field: in.Field}
		return Result{Applied: s.model.UpdateField(addr, in.Value), Address: &addr}
	}

	if s.ApplyFixed(in.Name, in.Value) {
		return Result{Applied: true, Field: in.Name}
	}

	addr, ok := s.Resolve(in.Name)
	if !ok {
		return Result{}
	}
	return Result{Applied: s.model.UpdateField(addr, in.Value), Address: &addr}
}

// ApplyFixed writes a personal field or the summary. It reports false for
// any other name.
func (s *Synchronizer) ApplyFixed(name, value string) bool {
	if name == types.FieldSummary {
		s.model.SetSummary(value)
		return true
	}
	if !slice.Contains(types.PersonalFields(), name) {
		return false
	}
	return s.model.SetPersonal(name, value)
}

// Resolve turns a composite control name into a typed address using the
// current index projection.
func (s *Synchronizer) Resolve(name string) (types.FieldAddress, bool) {
	section, index, field, ok := ParseControlName(name)
	if !ok || !section.HasField(field) {
		return types.FieldAddress{}, false
	}
	id, ok := s.model.IDAt(section, index)
	if !ok {
		return types.FieldAddress{}, false
	}
	return types.FieldAddress{Section: section, ID: id, Field: field}, true
}

// Submit checks that name, email and phone are filled. It never modifies
// the document and never blocks preview or export.
func (s *Synchronizer) Submit() SubmitResult {
	p := s.model.Snapshot().Personal
	req := types.ContactRequirement{
		Name:  strings.TrimSpace(p.Name),
		Email: strings.TrimSpace(p.Email),
		Phone: strings.TrimSpace(p.Phone),
	}

	result := SubmitResult{Valid: true, Missing: []string{}}
	err := req.Validate()
	if err == nil {
		return result
	}

	result.Valid = false
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		result.Missing = slice.Map(verrs, func(_ int, fe validator.FieldError) string {
			return strings.ToLower(fe.Field())
		})
	}
	return result
}

// PersonalControls returns the bound controls for the header fields and summary.
func (s *Synchronizer) PersonalControls() []Control {
	doc := s.model.Snapshot()
	controls := make([]Control, 0, len(personalSpecs)+1)
	for _, spec := range personalSpecs {
		value, _ := doc.Personal.Get(spec.Field)
		controls = append(controls, Control{FieldSpec: spec, Name: spec.Field, Value: value})
	}
	return append(controls, Control{FieldSpec: summarySpec, Name: summarySpec.Field, Value: doc.Summary})
}

// EntryForms returns one bound form per entry of section, in display order.
// Each control's address is fixed at creation; its Name is the composite
// key for the entry's current index.
func (s *Synchronizer) EntryForms(section types.Section) []EntryForm {
	doc := s.model.Snapshot()

	type row struct {
		id     types.EntryID
		values map[string]string
	}
	var rows []row
	switch section {
	case types.SectionExperience:
		for _, e := range doc.Experience {
			rows = append(rows, row{e.ID, experienceValues(e)})
		}
	case types.SectionEducation:
		for _, e := range doc.Education {
			rows = append(rows, row{e.ID, educationValues(e)})
		}
	case types.SectionProjects:
		for _, p := range doc.Projects {
			rows = append(rows, row{p.ID, projectValues(p)})
		}
	case types.SectionCertifications:
		for _, c := range doc.Certifications {
			rows = append(rows, row{c.ID, certificationValues(c)})
		}
	}

	forms := make([]EntryForm, 0, len(rows))
	for index, r := range rows {
		form := EntryForm{
			Section: section,
			ID:      r.id,
			Index:   index,
			Heading: sectionHeadings[section] + " " + strconv.Itoa(index+1),
		}
		for _, spec := range sectionSpecs[section] {
			addr := types.FieldAddress{Section: section, ID: r.id, Field: spec.Field}
			form.Controls = append(form.Controls, Control{
				FieldSpec: spec,
				Name:      ControlName(section, index, spec.Field),
				Address:   &addr,
				Value:     r.values[spec.Field],
			})
		}
		forms = append(forms, form)
	}
	return forms
}
