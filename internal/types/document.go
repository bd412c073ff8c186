// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// PresentSentinel marks an ongoing role or program in place of an end date.
const PresentSentinel = "Present"

// EntryID is the stable identity of a list entry. Zero means "unassigned".
type EntryID uint64

// ResumeDocument is the single aggregate holding all user-entered resume data.
type ResumeDocument struct {
	Personal       Personal        `json:"personal"`
	Summary        string          `json:"summary"`
	Experience     []Experience    `json:"experience"`
	Education      []Education     `json:"education"`
	Projects       []Project       `json:"projects"`
	Certifications []Certification `json:"certifications"`
	Skills         []string        `json:"skills"`
}

// Personal holds the contact block shown in the resume header.
type Personal struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	LinkedIn string `json:"linkedin"`
	Website  string `json:"website"`
}

// Experience is one work history entry. EndDate may hold PresentSentinel.
type Experience struct {
	ID          EntryID `json:"id"`
	Title       string  `json:"title"`
	Company     string  `json:"company"`
	Location    string  `json:"location"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	Description string  `json:"description"`
}

// Education is one degree or program entry.
type Education struct {
	ID        EntryID `json:"id"`
	Degree    string  `json:"degree"`
	School    string  `json:"school"`
	Location  string  `json:"location"`
	StartDate string  `json:"startDate"`
	EndDate   string  `json:"endDate"`
}

// Project is one portfolio entry.
type Project struct {
	ID           EntryID `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Technologies string  `json:"technologies"`
}

// Certification is one credential entry.
type Certification struct {
	ID     EntryID `json:"id"`
	Name   string  `json:"name"`
	Issuer string  `json:"issuer"`
	Date   string  `json:"date"`
}

// NewResumeDocument returns an empty document with non-nil lists so that it
// serializes as [] rather than null.
func NewResumeDocument() ResumeDocument {
	return ResumeDocument{
		Experience:     []Experience{},
		Education:      []Education{},
		Projects:       []Project{},
		Certifications: []Certification{},
		Skills:         []string{},
	}
}

// Clone returns a deep copy of the document.
func (d ResumeDocument) Clone() ResumeDocument {
	out := d
	out.Experience = append(make([]Experience, 0, len(d.Experience)), d.Experience...)
	out.Education = append(make([]Education, 0, len(d.Education)), d.Education...)
	out.Projects = append(make([]Project, 0, len(d.Projects)), d.Projects...)
	out.Certifications = append(make([]Certification, 0, len(d.Certifications)), d.Certifications...)
	out.Skills = append(make([]string, 0, len(d.Skills)), d.Skills...)
	return out
}
