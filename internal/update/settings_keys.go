package update

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleSettingsKey(msg tea.KeyMsg) Model {
	if m.Settings == nil {
		return m
	}
	switch msg.String() {
	case "+", "=":
		m.Settings.SetVolume(context.Background(), m.Settings.Volume()+0.1)
		m.Status = StatusBar{Text: fmt.Sprintf("volume: %d%%", int(m.Settings.Volume()*100)), IsError: false}
	case "-", "_":
		m.Settings.SetVolume(context.Background(), m.Settings.Volume()-0.1)
		m.Status = StatusBar{Text: fmt.Sprintf("volume: %d%%", int(m.Settings.Volume()*100)), IsError: false}
	case "]":
		m.Settings.SetDelay(context.Background(), m.Settings.Delay()+5)
		m.Status = StatusBar{Text: fmt.Sprintf("session delay: %ds", m.Settings.Delay()), IsError: false}
	case "[":
		m.Settings.SetDelay(context.Background(), m.Settings.Delay()-5)
		m.Status = StatusBar{Text: fmt.Sprintf("session delay: %ds", m.Settings.Delay()), IsError: false}
	}
	return m
}
