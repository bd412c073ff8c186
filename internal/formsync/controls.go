package formsync

import "github.com/jonathan/resume-builder/internal/types"

// Control input kinds.
const (
	KindText     = "text"
	KindEmail    = "email"
	KindTel      = "tel"
	KindURL      = "url"
	KindMonth    = "month"
	KindTextarea = "textarea"
)

// FieldSpec describes how one document field is presented as a form control.
type FieldSpec struct {
	Field    string `json:"field"`
	Label    string `json:"label"`
	Kind     string `json:"kind"`
	Required bool   `json:"required,omitempty"`
}

// Control is one bound form control. Address is set for list entry controls;
// fixed controls carry only Name.
type Control struct {
	FieldSpec
	Name    string
	Address *types.FieldAddress
	Value   string
}

// EntryForm groups the controls of one list entry.
type EntryForm struct {
	Section  types.Section
	ID       types.EntryID
	Index    int
	Heading  string
	Controls []Control
}

var personalSpecs = []FieldSpec{
	{Field: types.FieldName, Label: "Full Name", Kind: KindText, Required: true},
	{Field: types.FieldEmail, Label: "Email", Kind: KindEmail, Required: true},
	{Field: types.FieldPhone, Label: "Phone", Kind: KindTel, Required: true},
	{Field: types.FieldStreet, Label: "Address", Kind: KindText},
	{Field: types.FieldLinkedIn, Label: "LinkedIn", Kind: KindURL},
	{Field: types.FieldWebsite, Label: "Website", Kind: KindURL},
}

var summarySpec = FieldSpec{Field: types.FieldSummary, Label: "Professional Summary", Kind: KindTextarea}

var sectionSpecs = map[types.Section][]FieldSpec{
	types.SectionExperience: {
		{Field: "title", Label: "Job Title", Kind: KindText, Required: true},
		{Field: "company", Label: "Company", Kind: KindText, Required: true},
		{Field: "location", Label: "Location", Kind: KindText},
		{Field: "startDate", Label: "Start Date", Kind: KindMonth},
		{Field: "endDate", Label: "End Date", Kind: KindMonth},
		{Field: "description", Label: "Description", Kind: KindTextarea},
	},
	types.SectionEducation: {
		{Field: "degree", Label: "Degree", Kind: KindText, Required: true},
		{Field: "school", Label: "School", Kind: KindText, Required: true},
		{Field: "location", Label: "Location", Kind: KindText},
		{Field: "startDate", Label: "Start Date", Kind: KindMonth},
		{Field: "endDate", Label: "End Date", Kind: KindMonth},
	},
	types.SectionProjects: {
		{Field: "name", Label: "Project Name", Kind: KindText, Required: true},
		{Field: "description", Label: "Description", Kind: KindTextarea},
		{Field: "technologies", Label: "Technologies Used", Kind: KindText},
	},
	types.SectionCertifications: {
		{Field: "name", Label: "Certification Name", Kind: KindText, Required: true},
		{Field: "issuer", Label: "Issuer", Kind: KindText},
		{Field: "date", Label: "Date", Kind: KindMonth},
	},
}

var sectionHeadings = map[types.Section]string{
	types.SectionExperience:     "Experience",
	types.SectionEducation:      "Education",
	types.SectionProjects:       "Project",
	types.SectionCertifications: "Certification",
}

// SectionSpecs returns the control specs of a list section in form order.
func SectionSpecs(section types.Section) []FieldSpec {
	return append([]FieldSpec(nil), sectionSpecs[section]...)
}

// SectionHeading is the per-entry heading prefix, e.g. "Experience" in "Experience 2".
func SectionHeading(section types.Section) string {
	return sectionHeadings[section]
}

func experienceValues(e types.Experience) map[string]string {
	return map[string]string{
		"title": e.Title, "company": e.Company, "location": e.Location,
		"startDate": e.StartDate, "endDate": e.EndDate, "description": e.Description,
	}
}

func educationValues(e types.Education) map[string]string {
	return map[string]string{
		"degree": e.Degree, "school": e.School, "location": e.Location,
		"startDate": e.StartDate, "endDate": e.EndDate,
	}
}

func projectValues(p types.Project) map[string]string {
	return map[string]string{"name": p.Name, "description": p.Description, "technologies": p.Technologies}
}

func certificationValues(c types.Certification) map[string]string {
	return map[string]string{"name": c.Name, "issuer": c.Issuer, "date": c.Date}
}
