package update

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	domainmodel "github.com/sandeepkv93/drilld/internal/model"
	"github.com/sandeepkv93/drilld/internal/skills"
	"github.com/sandeepkv93/drilld/internal/toast"
)

func (m Model) handleSkillsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
		return m, nil
	case "down", "j":
		if m.Cursor < len(m.visibleSkills())-1 {
			m.Cursor++
		}
		return m, nil
	case "enter":
		if sel, ok := m.selectedSkill(); ok {
			m.Manager.SetActive(sel.ID)
			m.Status = StatusBar{Text: fmt.Sprintf("practicing: %s", sel.Name), IsError: false}
		}
		return m, nil
	case "a":
		added := m.Manager.Add()
		m.Cursor = m.indexInVisible(added.ID)
		m.openEditor(added)
		m.Status = StatusBar{Text: "skill added", IsError: false}
		return m, nil
	case "e":
		if sel, ok := m.selectedSkill(); ok {
			m.openEditor(sel)
		}
		return m, nil
	case "d":
		return m.deleteSelected()
	case "K":
		return m.moveSelected(-1), nil
	case "J":
		return m.moveSelected(1), nil
	case "f":
		m.Criteria.RoleIDs = cycleSelection(m.Criteria.RoleIDs, roleIDs())
		m.clampCursor()
		m.Status = StatusBar{Text: "filter: " + m.filterSummary(), IsError: false}
		return m, nil
	case "h":
		m.Criteria.HeroIDs = cycleSelection(m.Criteria.HeroIDs, heroIDs())
		m.clampCursor()
		m.Status = StatusBar{Text: "filter: " + m.filterSummary(), IsError: false}
		return m, nil
	case "t":
		m.Criteria.Tags = cycleSelection(m.Criteria.Tags, domainmodel.UniqueTags(m.Manager.Visible()))
		m.clampCursor()
		m.Status = StatusBar{Text: "filter: " + m.filterSummary(), IsError: false}
		return m, nil
	case "c":
		m.Criteria = domainmodel.FilterCriteria{}
		m.clampCursor()
		m.Status = StatusBar{Text: "filters cleared", IsError: false}
		return m, nil
	case "s":
		m.SortKey = nextSortKey(m.SortKey)
		m.Status = StatusBar{Text: fmt.Sprintf("sort: %s %s", m.SortKey, m.SortDir), IsError: false}
		return m, nil
	case "S":
		if m.SortDir == domainmodel.SortAsc {
			m.SortDir = domainmodel.SortDesc
		} else {
			m.SortDir = domainmodel.SortAsc
		}
		m.Status = StatusBar{Text: fmt.Sprintf("sort: %s %s", m.SortKey, m.SortDir), IsError: false}
		return m, nil
	case "x":
		m.ResetPrompt = true
		return m, nil
	}
	return m, nil
}

func (m Model) deleteSelected() (tea.Model, tea.Cmd) {
	sel, ok := m.selectedSkill()
	if !ok {
		return m, nil
	}
	archived, ok := m.Manager.Delete(context.Background(), sel.ID)
	if !ok {
		return m, nil
	}
	manager := m.Manager
	m.Toast.Show(fmt.Sprintf("Deleted %q", archived.Name), toast.Options{
		OnUndo: func() { manager.Restore(archived) },
	}, m.now())
	m.clampCursor()
	m.Status = StatusBar{Text: "skill deleted", IsError: false}
	return m, m.startToastTicker()
}

// moveSelected reorders within the full collection. Reordering is
// refused while a filter narrows the view, since visible neighbors
// are not collection neighbors then.
func (m Model) moveSelected(step int) Model {
	visible := m.visibleSkills()
	if len(visible) == 0 {
		return m
	}
	target := m.Cursor + step
	if target < 0 || target >= len(visible) {
		return m
	}
	if !skills.ReorderVisible(m.Manager, visible, m.Cursor, target, m.Criteria) {
		m.Status = StatusBar{Text: "clear filters before reordering", IsError: true}
		return m
	}
	m.Cursor = target
	m.Status = StatusBar{Text: "skill moved", IsError: false}
	return m
}

func (m Model) handleResetPromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		m.ResetPrompt = false
		m.Manager.Reset(context.Background())
		m.Criteria = domainmodel.FilterCriteria{}
		m.Cursor = 0
		m.Status = StatusBar{Text: "skills reset to presets", IsError: false}
	case "n", "N", "esc":
		m.ResetPrompt = false
		m.Status = StatusBar{Text: "reset cancelled", IsError: false}
	}
	return m, nil
}

func (m Model) indexInVisible(id string) int {
	for i, s := range m.visibleSkills() {
		if s.ID == id {
			return i
		}
	}
	return 0
}

func (m Model) filterSummary() string {
	if !m.Criteria.IsActive() {
		return ""
	}
	summary := ""
	if len(m.Criteria.RoleIDs) > 0 {
		summary += "role=" + m.Criteria.RoleIDs[0] + " "
	}
	if len(m.Criteria.HeroIDs) > 0 {
		summary += "hero=" + m.Criteria.HeroIDs[0] + " "
	}
	if len(m.Criteria.Tags) > 0 {
		summary += "tag=" + m.Criteria.Tags[0] + " "
	}
	if m.Criteria.SearchQuery != "" {
		summary += "search=" + m.Criteria.SearchQuery + " "
	}
	return strings.TrimSpace(summary)
}

// cycleSelection steps a single-choice filter through its options and
// back to unfiltered.
func cycleSelection(current []string, options []string) []string {
	if len(options) == 0 {
		return nil
	}
	if len(current) == 0 {
		return []string{options[0]}
	}
	for i, opt := range options {
		if opt == current[0] {
			if i+1 < len(options) {
				return []string{options[i+1]}
			}
			return nil
		}
	}
	return []string{options[0]}
}

func nextSortKey(key domainmodel.SortKey) domainmodel.SortKey {
	switch key {
	case domainmodel.SortByCreated:
		return domainmodel.SortByName
	case domainmodel.SortByName:
		return domainmodel.SortByRole
	case domainmodel.SortByRole:
		return domainmodel.SortByHero
	default:
		return domainmodel.SortByCreated
	}
}

func roleIDs() []string {
	out := make([]string, 0, len(domainmodel.Roles))
	for _, r := range domainmodel.Roles {
		out = append(out, r.ID)
	}
	return out
}

func heroIDs() []string {
	out := make([]string, 0, len(domainmodel.Heroes))
	for _, h := range domainmodel.Heroes {
		out = append(out, h.ID)
	}
	return out
}
