package types

import "fmt"

// Section names a list-valued part of the document.
type Section string

// List sections addressable by the section editors.
const (
	SectionExperience     Section = "experience"
	SectionEducation      Section = "education"
	SectionProjects       Section = "projects"
	SectionCertifications Section = "certifications"
)

// ListSections returns the list sections in display order.
func ListSections() []Section {
	return []Section{SectionExperience, SectionEducation, SectionProjects, SectionCertifications}
}

// Valid reports whether s is a known list section.
func (s Section) Valid() bool {
	_, ok := sectionFields[s]
	return ok
}

// Fields returns the editable field names of the section, in form order.
func (s Section) Fields() []string {
	return append([]string(nil), sectionFields[s]...)
}

// HasField reports whether field is an editable field of the section.
func (s Section) HasField(field string) bool {
	for _, f := range sectionFields[s] {
		if f == field {
			return true
		}
	}
	return false
}

var sectionFields = map[Section][]string{
	SectionExperience:     {"title", "company", "location", "startDate", "endDate", "description"},
	SectionEducation:      {"degree", "school", "location", "startDate", "endDate"},
	SectionProjects:       {"name", "description", "technologies"},
	SectionCertifications: {"name", "issuer", "date"},
}

// Fixed (non-list) field names.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPhone    = "phone"
	FieldStreet   = "address"
	FieldLinkedIn = "linkedin"
	FieldWebsite  = "website"
	FieldSummary  = "summary"
)

// PersonalFields returns the personal field names in contact-line order,
// name first.
func PersonalFields() []string {
	return []string{FieldName, FieldEmail, FieldPhone, FieldStreet, FieldLinkedIn, FieldWebsite}
}

// FieldAddress is a typed path to one field of one list entry. It is built
// once when a form control is created and carried with every input event.
type FieldAddress struct {
	Section Section `json:"section"`
	ID      EntryID `json:"id"`
	Field   string  `json:"field"`
}

func (a FieldAddress) String() string {
	return fmt.Sprintf("%s/%d/%s", a.Section, a.ID, a.Field)
}

// Get returns the named personal field.
func (p *Personal) Get(field string) (string, bool) {
	switch field {
	case FieldName:
		return p.Name, true
	case FieldEmail:
		return p.Email, true
	case FieldPhone:
		return p.Phone, true
	case FieldStreet:
		return p.Address, true
	case FieldLinkedIn:
		return p.LinkedIn, true
	case FieldWebsite:
		return p.Website, true
	}
	return "", false
}

// Set assigns the named personal field. It returns false for unknown fields.
func (p *Personal) Set(field, value string) bool {
	switch field {
	case FieldName:
		p.Name = value
	case FieldEmail:
		p.Email = value
	case FieldPhone:
		p.Phone = value
	case FieldStreet:
		p.Address = value
	case FieldLinkedIn:
		p.LinkedIn = value
	case FieldWebsite:
		p.Website = value
	default:
		return false
	}
	return true
}

// Set assigns the named field. It returns false for unknown fields.
func (e *Experience) Set(field, value string) bool {
	switch field {
	case "title":
		e.Title = value
	case "company":
		e.Company = value
	case "location":
		e.Location = value
	case "startDate":
		e.StartDate = value
	case "endDate":
		e.EndDate = value
	case "description":
		e.Description = value
	default:
		return false
	}
	return true
}

// Set assigns the named field. It returns false for unknown fields.
func (e *Education) Set(field, value string) bool {
	switch field {
	case "degree":
		e.Degree = value
	case "school":
		e.School = value
	case "location":
		e.Location = value
	case "startDate":
		e.StartDate = value
	case "endDate":
		e.EndDate = value
	default:
		return false
	}
	return true
}

// Set assigns the named field. It returns false for unknown fields.
func (p *Project) Set(field, value string) bool {
	switch field {
	case "name":
		p.Name = value
	case "description":
		p.Description = value
	case "technologies":
		p.Technologies = value
	default:
		return false
	}
	return true
}

// Set assigns the named field. It returns false for unknown fields.
func (c *Certification) Set(field, value string) bool {
	switch field {
	case "name":
		c.Name = value
	case "issuer":
		c.Issuer = value
	case "date":
		c.Date = value
	default:
		return false
	}
	return true
}
