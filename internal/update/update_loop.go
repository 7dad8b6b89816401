package update

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	domainmodel "github.com/sandeepkv93/drilld/internal/model"
	"github.com/sandeepkv93/drilld/internal/session"
	"github.com/sandeepkv93/drilld/internal/views"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(typed)
	case SwitchViewMsg:
		if isKnownView(typed.View) {
			m.CurrentView = typed.View
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
		}
		return m, nil
	case SessionTickMsg:
		return m.onSessionTick()
	case ToastTickMsg:
		return m.onToastTick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.Palette.Active {
		if msg.String() == m.Keys.Help {
			m.HelpVisible = !m.HelpVisible
			return m, nil
		}
		return m.handlePaletteKey(msg)
	}
	if m.Editor.Active {
		return m.handleEditorKey(msg), nil
	}
	if m.ResetPrompt {
		return m.handleResetPromptKey(msg)
	}

	switch msg.String() {
	case "/":
		m.Palette.Active = true
		m.Palette.Input = ""
		m.commandInput.Focus()
		m.commandInput.SetValue("")
		m.Status = StatusBar{Text: "command palette active", IsError: false}
		return m, nil
	case m.Keys.Practice:
		m.CurrentView = ViewPractice
		return m, nil
	case m.Keys.Skills:
		m.CurrentView = ViewSkills
		return m, nil
	case m.Keys.Settings:
		m.CurrentView = ViewSettings
		return m, nil
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
		if m.HelpVisible {
			m.Status = StatusBar{Text: "help shown", IsError: false}
		} else {
			m.Status = StatusBar{Text: "help hidden", IsError: false}
		}
		return m, nil
	case "u":
		if m.Toast.Visible() && m.Toast.HasUndo() {
			m.Toast.Undo()
			m.clampCursor()
			m.Status = StatusBar{Text: "skill restored", IsError: false}
			return m, nil
		}
	case "ctrl+c", m.Keys.Quit:
		m.Quitting = true
		m.Session.Stop()
		return m, tea.Quit
	}

	switch m.CurrentView {
	case ViewPractice:
		return m.handlePracticeKey(msg)
	case ViewSkills:
		return m.handleSkillsKey(msg)
	case ViewSettings:
		return m.handleSettingsKey(msg), nil
	}
	return m, nil
}

func (m Model) onSessionTick() (tea.Model, tea.Cmd) {
	if m.Session == nil || !m.Session.IsActive() {
		m.sessionTicking = false
		return m, nil
	}
	m.Session.Tick()
	if !m.Session.IsActive() {
		m.sessionTicking = false
		return m, nil
	}
	return m, sessionTickCmd()
}

func (m Model) onToastTick() (tea.Model, tea.Cmd) {
	m.Toast.Advance(m.now())
	if !m.Toast.Visible() {
		m.toastTicking = false
		m.clampCursor()
		return m, nil
	}
	return m, toastTickCmd()
}

// startToastTicker arms the toast timer once; re-arming happens in
// onToastTick while the toast stays visible.
func (m *Model) startToastTicker() tea.Cmd {
	if m.toastTicking {
		return nil
	}
	m.toastTicking = true
	return toastTickCmd()
}

func (m *Model) startSessionTicker() tea.Cmd {
	if m.sessionTicking {
		return nil
	}
	m.sessionTicking = true
	return sessionTickCmd()
}

func sessionTickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return SessionTickMsg{} })
}

func toastTickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(time.Time) tea.Msg { return ToastTickMsg{} })
}

func (m Model) View() string {
	m.syncBubbleData()

	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	leftPane := ""
	rightPane := ""
	switch m.CurrentView {
	case ViewPractice:
		leftPane = m.renderPracticeView()
		rightPane = m.renderSkillDetail() + m.renderHelpIfVisible()
	case ViewSkills:
		leftPane = m.renderSkillsView()
		rightPane = m.renderSkillDetail() + m.renderEditorIfVisible() + m.renderResetPromptIfVisible() + m.renderHelpIfVisible()
	case ViewSettings:
		leftPane = m.renderSettingsView()
		rightPane = m.renderHelpIfVisible()
	}
	if m.Palette.Active {
		rightPane = views.RenderCommandPalette(true, m.Palette.Input) + "\n" + rightPane
	}

	toastView := ""
	if m.Toast.Visible() {
		toastView = views.RenderToast(m.Toast.Message(), m.Toast.Exiting(), m.Toast.HasUndo())
	}

	activeName := ""
	if active, ok := m.activeSkill(); ok {
		activeName = active.Name
	}

	return views.RenderApp(views.AppData{
		Header:     fmt.Sprintf("drilld | view: %s | skill: %s", m.CurrentView, activeName),
		LeftPane:   leftPane,
		RightPane:  strings.TrimSpace(rightPane),
		StatusLine: status,
		Toast:      toastView,
		Footer:     fmt.Sprintf("keys: %s practice | %s skills | %s settings | / cmd | %s help | %s quit", m.Keys.Practice, m.Keys.Skills, m.Keys.Settings, m.Keys.Help, m.Keys.Quit),
	})
}

func (m Model) renderPracticeView() string {
	phase := "idle"
	switch m.Session.State() {
	case session.StateDelayCountdown:
		phase = "delay"
	case session.StateActiveCountdown:
		phase = "active"
	}
	name := ""
	phrase := ""
	interval := domainmodel.DefaultInterval
	if active, ok := m.activeSkill(); ok {
		name = active.Name
		phrase = active.TTS
		interval = active.Interval
	}
	return views.RenderPracticePanel(views.PracticePanelData{
		SkillName:    name,
		Phrase:       phrase,
		Phase:        phase,
		Timer:        formatDuration(m.Session.Remaining()),
		IntervalText: fmt.Sprintf("every %s", formatDuration(interval)),
		ProgressView: m.sessionProgress.View(),
		ProgressPct:  int(m.sessionPct() * 100),
		Muted:        m.Muted,
	})
}

func (m Model) renderSkillsView() string {
	visible := m.visibleSkills()
	items := make([]views.SkillItemData, 0, len(visible))
	activeID := ""
	if active, ok := m.activeSkill(); ok {
		activeID = active.ID
	}
	for _, s := range visible {
		items = append(items, views.SkillItemData{
			ID:        s.ID,
			Name:      s.Name,
			Interval:  s.Interval,
			HeroNames: domainmodel.HeroNames(s.HeroIDs),
			RoleNames: domainmodel.RoleNames(s.RoleIDs),
			Tags:      s.Tags,
			IsPreset:  s.IsPreset,
			IsActive:  s.ID == activeID,
		})
	}
	selectedID := ""
	if sel, ok := m.selectedSkill(); ok {
		selectedID = sel.ID
	}
	total := 0
	if m.Manager != nil {
		total = len(m.Manager.Visible())
	}
	return views.RenderSkillsPanel(views.SkillsPanelData{
		ListView:      m.skillList.View(),
		Items:         items,
		SelectedID:    selectedID,
		FilterSummary: m.filterSummary(),
		TotalCount:    total,
	})
}

func (m Model) renderSkillDetail() string {
	sel, ok := m.selectedSkill()
	if !ok {
		return views.RenderSkillDetail(views.SkillDetailData{})
	}
	return views.RenderSkillDetail(views.SkillDetailData{
		Name:         sel.Name,
		Phrase:       sel.TTS,
		Interval:     sel.Interval,
		HeroNames:    domainmodel.HeroNames(sel.HeroIDs),
		RoleNames:    domainmodel.RoleNames(sel.RoleIDs),
		Tags:         sel.Tags,
		IsPreset:     sel.IsPreset,
		MarkdownView: m.detailViewport.View(),
	})
}

func (m Model) renderSettingsView() string {
	volume := 1.0
	delay := session.DefaultDelaySec
	if m.Settings != nil {
		volume = m.Settings.Volume()
		delay = m.Settings.Delay()
	}
	return views.RenderSettingsPanel(views.SettingsPanelData{
		VolumePct:    int(volume * 100),
		DelaySec:     delay,
		VolumeView:   progressBar(volume, 10),
		SpeechEngine: speechEngineName(m.Muted),
		Muted:        m.Muted,
	})
}

func (m Model) renderResetPromptIfVisible() string {
	count := 0
	if m.Manager != nil {
		count = len(m.Manager.Visible())
	}
	return views.RenderResetPrompt(views.ResetPromptData{Active: m.ResetPrompt, Count: count})
}

func isKnownView(v View) bool {
	switch v {
	case ViewPractice, ViewSkills, ViewSettings:
		return true
	default:
		return false
	}
}
