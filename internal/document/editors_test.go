package document

import (
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppend_ReturnsPreviousLengthAsIndex(t *testing.T) {
	m := New()

	for want := 0; want < 3; want++ {
		id, index, err := m.Append(types.SectionExperience)
		require.NoError(t, err)
		assert.Equal(t, want, index)
		assert.NotZero(t, id)
	}
	assert.Equal(t, 3, m.Len(types.SectionExperience))
}

func TestAppend_UnknownSection(t *testing.T) {
	m := New()

	_, _, err := m.Append(types.Section("hobbies"))
	require.Error(t, err)

	var sectionErr *UnknownSectionError
	assert.ErrorAs(t, err, &sectionErr)
	assert.Equal(t, uint64(0), m.Revision())
}

func TestAppend_NewEntryIsEmpty(t *testing.T) {
	m := New()
	id, _, err := m.Append(types.SectionEducation)
	require.NoError(t, err)

	doc := m.Snapshot()
	require.Len(t, doc.Education, 1)
	assert.Equal(t, types.Education{ID: id}, doc.Education[0])
}

func TestAppendRemoveSequence_PreservesInsertionOrder(t *testing.T) {
	sections := types.ListSections()

	for _, section := range sections {
		t.Run(string(section), func(t *testing.T) {
			m := New()
			var ids []types.EntryID
			for i := 0; i < 6; i++ {
				id, _, err := m.Append(section)
				require.NoError(t, err)
				ids = append(ids, id)
			}

			// remove positions 4, 0, 1 in turn and mirror on the expected list
			for _, index := range []int{4, 0, 1} {
				require.True(t, m.RemoveAt(section, index))
				ids = append(ids[:index], ids[index+1:]...)
				assert.Equal(t, ids, m.IDs(section))
			}

			assert.Equal(t, 6-3, m.Len(section))
		})
	}
}

func TestRemoveAt_OutOfBoundsIsNoop(t *testing.T) {
	m := New()
	_, _, err := m.Append(types.SectionProjects)
	require.NoError(t, err)
	rev := m.Revision()

	assert.False(t, m.RemoveAt(types.SectionProjects, -1))
	assert.False(t, m.RemoveAt(types.SectionProjects, 1))
	assert.False(t, m.RemoveAt(types.Section("nope"), 0))
	assert.Equal(t, 1, m.Len(types.SectionProjects))
	assert.Equal(t, rev, m.Revision())
}

func TestRemoveAt_FirstOfTwoShiftsSecondDown(t *testing.T) {
	m := New()
	first, _, _ := m.Append(types.SectionExperience)
	second, _, _ := m.Append(types.SectionExperience)
	require.True(t, m.UpdateField(types.FieldAddress{Section: types.SectionExperience, ID: first, Field: "title"}, "Intern"))
	require.True(t, m.UpdateField(types.FieldAddress{Section: types.SectionExperience, ID: second, Field: "title"}, "Engineer"))
	require.True(t, m.UpdateField(types.FieldAddress{Section: types.SectionExperience, ID: second, Field: "company"}, "Acme"))
	original := m.Snapshot().Experience[1]

	require.True(t, m.RemoveAt(types.SectionExperience, 0))

	doc := m.Snapshot()
	require.Len(t, doc.Experience, 1)
	assert.Equal(t, original, doc.Experience[0])

	index, ok := m.IndexOf(types.SectionExperience, second)
	assert.True(t, ok)
	assert.Equal(t, 0, index)
}

func TestRemove_ByID(t *testing.T) {
	m := New()
	a, _, _ := m.Append(types.SectionCertifications)
	b, _, _ := m.Append(types.SectionCertifications)

	assert.True(t, m.Remove(types.SectionCertifications, a))
	assert.False(t, m.Remove(types.SectionCertifications, a))
	assert.Equal(t, []types.EntryID{b}, m.IDs(types.SectionCertifications))
}

func TestUpdateField_StaleAddressIsDropped(t *testing.T) {
	m := New()
	id, _, _ := m.Append(types.SectionExperience)
	require.True(t, m.Remove(types.SectionExperience, id))
	rev := m.Revision()

	assert.False(t, m.UpdateField(types.FieldAddress{Section: types.SectionExperience, ID: id, Field: "title"}, "x"))
	assert.Equal(t, rev, m.Revision())
}

func TestUpdateField_UnknownFieldIsDropped(t *testing.T) {
	m := New()
	id, _, _ := m.Append(types.SectionProjects)

	assert.False(t, m.UpdateField(types.FieldAddress{Section: types.SectionProjects, ID: id, Field: "degree"}, "x"))
	assert.Equal(t, types.Project{ID: id}, m.Snapshot().Projects[0])
}

func TestUpdateField_SetsEveryExperienceField(t *testing.T) {
	m := New()
	id, _, _ := m.Append(types.SectionExperience)

	for _, field := range types.SectionExperience.Fields() {
		require.True(t, m.UpdateField(types.FieldAddress{Section: types.SectionExperience, ID: id, Field: field}, field+"-value"))
	}

	assert.Equal(t, types.Experience{
		ID:          id,
		Title:       "title-value",
		Company:     "company-value",
		Location:    "location-value",
		StartDate:   "startDate-value",
		EndDate:     "endDate-value",
		Description: "description-value",
	}, m.Snapshot().Experience[0])
}

func TestIDAt(t *testing.T) {
	m := New()
	id, _, _ := m.Append(types.SectionEducation)

	got, ok := m.IDAt(types.SectionEducation, 0)
	assert.True(t, ok)
	assert.Equal(t, id, got)

	_, ok = m.IDAt(types.SectionEducation, 1)
	assert.False(t, ok)
}

func TestAddSkill_DuplicateIsIdempotent(t *testing.T) {
	m := New()

	assert.True(t, m.AddSkill("Go"))
	assert.False(t, m.AddSkill("Go"))
	assert.False(t, m.AddSkill("  Go  "))

	assert.Equal(t, []string{"Go"}, m.Snapshot().Skills)
}

func TestAddSkill_CaseSensitive(t *testing.T) {
	m := New()

	assert.True(t, m.AddSkill("go"))
	assert.True(t, m.AddSkill("Go"))
	assert.Len(t, m.Snapshot().Skills, 2)
}

func TestAddSkill_BlankIsNoop(t *testing.T) {
	m := New()

	assert.False(t, m.AddSkill(""))
	assert.False(t, m.AddSkill("   "))
	assert.Empty(t, m.Snapshot().Skills)
	assert.Equal(t, uint64(0), m.Revision())
}

func TestRemoveSkill(t *testing.T) {
	m := New()
	m.AddSkill("Go")
	m.AddSkill("SQL")
	m.AddSkill("Git")

	assert.True(t, m.RemoveSkill("SQL"))
	assert.False(t, m.RemoveSkill("SQL"))
	assert.Equal(t, []string{"Go", "Git"}, m.Snapshot().Skills)
}
