package formsync

import (
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestControlName(t *testing.T) {
	assert.Equal(t, "experience-0-title", ControlName(types.SectionExperience, 0, "title"))
	assert.Equal(t, "certifications-12-date", ControlName(types.SectionCertifications, 12, "date"))
}

func TestParseControlName(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantSection types.Section
		wantIndex   int
		wantField   string
		wantOK      bool
	}{
		{name: "experience", input: "experience-0-title", wantSection: "experience", wantIndex: 0, wantField: "title", wantOK: true},
		{name: "camel case field", input: "education-3-startDate", wantSection: "education", wantIndex: 3, wantField: "startDate", wantOK: true},
		{name: "only first two dashes split", input: "projects-1-a-b", wantSection: "projects", wantIndex: 1, wantField: "a-b", wantOK: true},
		{name: "fixed field", input: "email", wantOK: false},
		{name: "missing field", input: "experience-0-", wantOK: false},
		{name: "non numeric index", input: "experience-x-title", wantOK: false},
		{name: "negative index", input: "experience--1-title", wantOK: false},
		{name: "plus signed index", input: "experience-+0-title", wantOK: false},
		{name: "space in index", input: "experience- 1-title", wantOK: false},
		{name: "empty index", input: "experience--title", wantOK: false},
		{name: "empty", input: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			section, index, field, ok := ParseControlName(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantSection, section)
				assert.Equal(t, tt.wantIndex, index)
				assert.Equal(t, tt.wantField, field)
			}
		})
	}
}

func TestControlName_RoundTrip(t *testing.T) {
	for _, section := range types.ListSections() {
		for _, field := range section.Fields() {
			s, i, f, ok := ParseControlName(ControlName(section, 7, field))
			assert.True(t, ok)
			assert.Equal(t, section, s)
			assert.Equal(t, 7, i)
			assert.Equal(t, field, f)
		}
	}
}
