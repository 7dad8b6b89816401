package update

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/drilld/internal/commands"
	domainmodel "github.com/sandeepkv93/drilld/internal/model"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed", IsError: false}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		return m.executePaletteCommand()
	default:
		if msg.Type == tea.KeyRunes {
			m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
			m.Palette.Input = m.commandInput.Value()
			return m, nil
		}
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		_ = cmd
		m.Palette.Input = m.commandInput.Value()
	}
	return m, nil
}

func (m Model) executePaletteCommand() (tea.Model, tea.Cmd) {
	raw := strings.TrimSpace(m.Palette.Input)
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.Palette.Active = false
		m.Palette.Input = ""
		return m, nil
	}

	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			added := m.Manager.Add()
			added.Name = a.Name
			added.TTS = a.Name
			m.Manager.Save(added)
			m.CurrentView = ViewSkills
			m.Cursor = m.indexInVisible(added.ID)
			return commands.Result{Message: fmt.Sprintf("added skill: %s", a.Name)}, nil
		},
		Find: func(f commands.FindArgs) (commands.Result, error) {
			m.Criteria.SearchQuery = f.Query
			m.CurrentView = ViewSkills
			m.clampCursor()
			if f.Query == "" {
				return commands.Result{Message: "search cleared"}, nil
			}
			return commands.Result{Message: fmt.Sprintf("searching: %s", f.Query)}, nil
		},
		Sort: func(s commands.SortArgs) (commands.Result, error) {
			key, ok := sortKeyFromString(s.Key)
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "sort key must be one of: name, role, hero, created"}
			}
			m.SortKey = key
			if s.Direction == "desc" {
				m.SortDir = domainmodel.SortDesc
			} else {
				m.SortDir = domainmodel.SortAsc
			}
			return commands.Result{Message: fmt.Sprintf("sorted by %s %s", m.SortKey, m.SortDir)}, nil
		},
		Volume: func(v commands.VolumeArgs) (commands.Result, error) {
			if m.Settings == nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "settings unavailable"}
			}
			m.Settings.SetVolume(context.Background(), v.Value)
			return commands.Result{Message: fmt.Sprintf("volume: %d%%", int(m.Settings.Volume()*100))}, nil
		},
		Delay: func(d commands.DelayArgs) (commands.Result, error) {
			if m.Settings == nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "settings unavailable"}
			}
			m.Settings.SetDelay(context.Background(), d.Seconds)
			return commands.Result{Message: fmt.Sprintf("session delay: %ds", m.Settings.Delay())}, nil
		},
		Reset: func() (commands.Result, error) {
			m.ResetPrompt = true
			m.CurrentView = ViewSkills
			return commands.Result{Message: "confirm reset"}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
	} else {
		m.Status = StatusBar{Text: res.Message, IsError: false}
	}

	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	return m, nil
}

func sortKeyFromString(raw string) (domainmodel.SortKey, bool) {
	switch raw {
	case "name":
		return domainmodel.SortByName, true
	case "role":
		return domainmodel.SortByRole, true
	case "hero":
		return domainmodel.SortByHero, true
	case "created", "createdAt":
		return domainmodel.SortByCreated, true
	default:
		return "", false
	}
}
