package update

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	domainmodel "github.com/sandeepkv93/drilld/internal/model"
	"github.com/sandeepkv93/drilld/internal/views"
)

func (m *Model) initBubbleComponents() {
	m.skillList = list.New([]list.Item{}, list.NewDefaultDelegate(), 56, 12)
	m.skillList.Title = "Skills (list)"
	m.skillList.SetShowHelp(false)
	m.skillList.SetFilteringEnabled(false)

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.nameInput = textinput.New()
	m.nameInput.Prompt = "name> "
	m.nameInput.CharLimit = 128
	m.nameInput.Width = 40

	m.phraseInput = textinput.New()
	m.phraseInput.Prompt = "phrase> "
	m.phraseInput.CharLimit = 256
	m.phraseInput.Width = 40

	m.intervalInput = textinput.New()
	m.intervalInput.Prompt = "interval> "
	m.intervalInput.CharLimit = 6
	m.intervalInput.Width = 10

	m.descriptionArea = textarea.New()
	m.descriptionArea.SetWidth(44)
	m.descriptionArea.SetHeight(6)
	m.descriptionArea.ShowLineNumbers = false
	m.descriptionArea.Placeholder = "Skill notes (markdown)"

	m.sessionProgress = progress.New(progress.WithDefaultGradient())

	m.helpModel = help.New()
	m.detailViewport = viewport.New(46, 12)
}

func (m *Model) syncBubbleData() {
	listWidth, listHeight, areaHeight, viewportHeight := densityDimensions(m.uiDensity)
	m.skillList.SetSize(listWidth, listHeight)
	m.descriptionArea.SetHeight(areaHeight)
	m.detailViewport.Height = viewportHeight

	visible := m.visibleSkills()
	items := make([]list.Item, 0, len(visible))
	for _, s := range visible {
		desc := strings.Join(domainmodel.RoleNames(s.RoleIDs), ",")
		if desc == "" {
			desc = strings.Join(s.Tags, ",")
		}
		items = append(items, listItem{title: s.Name, description: desc})
	}
	m.skillList.SetItems(items)
	if len(items) > 0 && m.Cursor < len(items) {
		m.skillList.Select(m.Cursor)
	}

	if m.Palette.Active {
		m.commandInput.Focus()
	}

	if sel, ok := m.selectedSkill(); ok {
		md := sel.Description
		if strings.TrimSpace(md) == "" {
			md = "_No notes_"
		}
		m.detailViewport.SetContent(views.RenderMarkdown(md))
	}

	_ = m.sessionProgress.SetPercent(m.sessionPct())
}

// sessionPct reports elapsed fraction of the current countdown phase.
func (m Model) sessionPct() float64 {
	if m.Session == nil || !m.Session.IsActive() {
		return 0
	}
	total := 0
	if m.Session.IsDelayPhase() {
		if m.Settings != nil {
			total = m.Settings.Delay()
		}
	} else if active, ok := m.activeSkill(); ok {
		total = active.Interval
	}
	if total <= 0 {
		return 0
	}
	pct := float64(total-m.Session.Remaining()) / float64(total)
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	return pct
}

func (m Model) activeSkill() (domainmodel.Skill, bool) {
	if m.Manager == nil {
		return domainmodel.Skill{}, false
	}
	return m.Manager.Active()
}

func densityDimensions(level int) (listWidth int, listHeight int, areaHeight int, viewportHeight int) {
	switch level {
	case 2:
		return 60, 14, 8, 14
	case 3:
		return 64, 16, 10, 16
	default:
		return 56, 12, 6, 12
	}
}
