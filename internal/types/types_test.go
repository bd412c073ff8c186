//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResumeDocument_SerializesEmptyLists(t *testing.T) {
	data, err := json.Marshal(NewResumeDocument())
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	for _, key := range []string{"experience", "education", "projects", "certifications", "skills"} {
		assert.Equal(t, []any{}, raw[key], key)
	}
}

func TestClone_IsDeep(t *testing.T) {
	doc := NewResumeDocument()
	doc.Experience = append(doc.Experience, Experience{ID: 1, Title: "Engineer"})
	doc.Skills = append(doc.Skills, "Go")

	clone := doc.Clone()
	clone.Experience[0].Title = "Manager"
	clone.Skills[0] = "Rust"

	assert.Equal(t, "Engineer", doc.Experience[0].Title)
	assert.Equal(t, "Go", doc.Skills[0])
}

func TestSection_Fields(t *testing.T) {
	assert.True(t, SectionEducation.Valid())
	assert.False(t, Section("skills").Valid())

	assert.Equal(t, []string{"name", "issuer", "date"}, SectionCertifications.Fields())
	assert.True(t, SectionExperience.HasField("endDate"))
	assert.False(t, SectionProjects.HasField("endDate"))
	assert.False(t, Section("bogus").HasField("name"))
}

func TestSection_FieldsReturnsCopy(t *testing.T) {
	fields := SectionProjects.Fields()
	fields[0] = "changed"
	assert.Equal(t, "name", SectionProjects.Fields()[0])
}

func TestEntrySetters_CoverSectionFields(t *testing.T) {
	for _, field := range SectionExperience.Fields() {
		var e Experience
		assert.True(t, e.Set(field, "v"), field)
	}
	for _, field := range SectionEducation.Fields() {
		var e Education
		assert.True(t, e.Set(field, "v"), field)
	}
	for _, field := range SectionProjects.Fields() {
		var p Project
		assert.True(t, p.Set(field, "v"), field)
	}
	for _, field := range SectionCertifications.Fields() {
		var c Certification
		assert.True(t, c.Set(field, "v"), field)
	}

	var c Certification
	assert.False(t, c.Set("gpa", "4.0"))
	assert.Equal(t, Certification{}, c)
}

func TestPersonal_GetSet(t *testing.T) {
	var p Personal
	for _, field := range PersonalFields() {
		require.True(t, p.Set(field, field+"-value"), field)
		got, ok := p.Get(field)
		require.True(t, ok)
		assert.Equal(t, field+"-value", got)
	}
	assert.Equal(t, "address-value", p.Address)

	assert.False(t, p.Set("summary", "x"))
	_, ok := p.Get("summary")
	assert.False(t, ok)
}

func TestFieldAddress_String(t *testing.T) {
	addr := FieldAddress{Section: SectionExperience, ID: 7, Field: "title"}
	assert.Equal(t, "experience/7/title", addr.String())
}

func TestContactRequirement_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     ContactRequirement
		missing []string
	}{
		{
			name: "all present",
			req:  ContactRequirement{Name: "Jane", Email: "jane@example.com", Phone: "555"},
		},
		{
			name:    "missing email",
			req:     ContactRequirement{Name: "Jane", Phone: "555"},
			missing: []string{"Email"},
		},
		{
			name:    "all missing",
			req:     ContactRequirement{},
			missing: []string{"Name", "Email", "Phone"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if len(tt.missing) == 0 {
				assert.NoError(t, err)
				return
			}
			var verrs validator.ValidationErrors
			require.True(t, errors.As(err, &verrs))
			var fields []string
			for _, fe := range verrs {
				fields = append(fields, fe.Field())
			}
			assert.Equal(t, tt.missing, fields)
		})
	}
}
