package update

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handlePracticeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case " ":
		if m.Session.IsActive() {
			m.Session.Stop()
			m.Status = StatusBar{Text: "session stopped", IsError: false}
			return m, nil
		}
		if _, ok := m.activeSkill(); !ok {
			m.Status = StatusBar{Text: "no skill selected", IsError: true}
			return m, nil
		}
		m.Session.Start()
		m.Status = StatusBar{Text: "session started", IsError: false}
		return m, m.startSessionTicker()
	case "up", "k":
		m.cycleActiveSkill(-1)
		return m, nil
	case "down", "j":
		m.cycleActiveSkill(1)
		return m, nil
	}
	return m, nil
}

// cycleActiveSkill moves the practiced skill through the visible
// collection. A running session keeps its countdown; the next
// announcement picks up the new skill's phrase and interval.
func (m *Model) cycleActiveSkill(step int) {
	visible := m.visibleSkills()
	if len(visible) == 0 || m.Manager == nil {
		return
	}
	current := 0
	if active, ok := m.activeSkill(); ok {
		for i, s := range visible {
			if s.ID == active.ID {
				current = i
				break
			}
		}
	}
	next := current + step
	if next < 0 {
		next = 0
	}
	if next >= len(visible) {
		next = len(visible) - 1
	}
	m.Manager.SetActive(visible[next].ID)
	m.Cursor = next
}
