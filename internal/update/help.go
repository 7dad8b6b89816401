package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/sandeepkv93/drilld/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	return m.renderHelpView()
}

func (m Model) renderHelpView() string {
	bindings := m.helpBindings()
	var plain []string
	for _, kb := range m.viewBindings() {
		plain = append(plain, fmt.Sprintf("- %s: %s", kb.Key, kb.Action))
	}
	return views.RenderHelpPanel(string(m.CurrentView), plain, m.helpModel.View(helpKeyMap{
		short: bindings,
		full:  [][]key.Binding{bindings},
	}))
}

func (m Model) globalBindings() []KeyBinding {
	return []KeyBinding{
		{Key: m.Keys.Practice, Action: "switch to Practice"},
		{Key: m.Keys.Skills, Action: "switch to Skills"},
		{Key: m.Keys.Settings, Action: "switch to Settings"},
		{Key: "/", Action: "open command palette"},
		{Key: "u", Action: "undo last delete"},
		{Key: m.Keys.Help, Action: "toggle help panel"},
		{Key: m.Keys.Quit, Action: "quit app"},
	}
}

func (m Model) viewBindings() []KeyBinding {
	switch m.CurrentView {
	case ViewPractice:
		return []KeyBinding{
			{Key: "space", Action: "start/stop session"},
			{Key: "j/k", Action: "cycle practiced skill"},
		}
	case ViewSkills:
		return []KeyBinding{
			{Key: "j/k", Action: "move cursor"},
			{Key: "enter", Action: "practice selected skill"},
			{Key: "a/e/d", Action: "add / edit / delete"},
			{Key: "J/K", Action: "reorder skill"},
			{Key: "f/h/t", Action: "cycle role/hero/tag filter"},
			{Key: "c", Action: "clear filters"},
			{Key: "s/S", Action: "cycle sort key / direction"},
			{Key: "x", Action: "reset to preset skills"},
		}
	case ViewSettings:
		return []KeyBinding{
			{Key: "+/-", Action: "raise/lower volume"},
			{Key: "[/]", Action: "shorten/lengthen session delay"},
		}
	default:
		return []KeyBinding{{Key: "-", Action: "no contextual bindings"}}
	}
}

func (m Model) helpBindings() []key.Binding {
	out := make([]key.Binding, 0, len(m.globalBindings())+len(m.viewBindings()))
	for _, kb := range m.globalBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	for _, kb := range m.viewBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}
