package skills

import "github.com/sandeepkv93/drilld/internal/model"

// ReorderVisible translates positions in a filtered/sorted view back
// to authoritative collection indices and applies the move. It
// refuses to reorder while any filter is active: a narrowed view
// cannot be mapped onto the full order without corrupting it.
func ReorderVisible(m *Manager, view []model.Skill, start, end int, criteria model.FilterCriteria) bool {
	if criteria.IsActive() {
		return false
	}
	if start < 0 || start >= len(view) || end < 0 || end >= len(view) || start == end {
		return false
	}
	all := m.All()
	fromIdx := indexByID(all, view[start].ID)
	toIdx := indexByID(all, view[end].ID)
	if fromIdx < 0 || toIdx < 0 {
		return false
	}
	m.Reorder(fromIdx, toIdx)
	return true
}

func indexByID(skills []model.Skill, id string) int {
	for i := range skills {
		if skills[i].ID == id {
			return i
		}
	}
	return -1
}
