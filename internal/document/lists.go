package document

import "github.com/jonathan/resume-builder/internal/types"

// entryList abstracts one list section of the document so the editors can
// treat experience, education, projects and certifications uniformly.
type entryList interface {
	length() int
	idAt(index int) types.EntryID
	indexOf(id types.EntryID) int
	appendEmpty(id types.EntryID)
	removeAt(index int)
	set(index int, field, value string) bool
}

type listOps[T any] struct {
	list  *[]T
	id    func(*T) *types.EntryID
	setFn func(*T, string, string) bool
}

func (l listOps[T]) length() int { return len(*l.list) }

func (l listOps[T]) idAt(index int) types.EntryID {
	return *l.id(&(*l.list)[index])
}

func (l listOps[T]) indexOf(id types.EntryID) int {
	for i := range *l.list {
		if *l.id(&(*l.list)[i]) == id {
			return i
		}
	}
	return -1
}

func (l listOps[T]) appendEmpty(id types.EntryID) {
	var entry T
	*l.id(&entry) = id
	*l.list = append(*l.list, entry)
}

func (l listOps[T]) removeAt(index int) {
	s := *l.list
	*l.list = append(s[:index:index], s[index+1:]...)
}

func (l listOps[T]) set(index int, field, value string) bool {
	return l.setFn(&(*l.list)[index], field, value)
}

// list must be called with mu held.
func (m *Model) list(section types.Section) (entryList, bool) {
	switch section {
	case types.SectionExperience:
		return listOps[types.Experience]{
			list:  &m.doc.Experience,
			id:    func(e *types.Experience) *types.EntryID { return &e.ID },
			setFn: (*types.Experience).Set,
		}, true
	case types.SectionEducation:
		return listOps[types.Education]{
			list:  &m.doc.Education,
			id:    func(e *types.Education) *types.EntryID { return &e.ID },
			setFn: (*types.Education).Set,
		}, true
	case types.SectionProjects:
		return listOps[types.Project]{
			list:  &m.doc.Projects,
			id:    func(p *types.Project) *types.EntryID { return &p.ID },
			setFn: (*types.Project).Set,
		}, true
	case types.SectionCertifications:
		return listOps[types.Certification]{
			list:  &m.doc.Certifications,
			id:    func(c *types.Certification) *types.EntryID { return &c.ID },
			setFn: (*types.Certification).Set,
		}, true
	}
	return nil, false
}
