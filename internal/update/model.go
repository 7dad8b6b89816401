package update

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	domainmodel "github.com/sandeepkv93/drilld/internal/model"
	"github.com/sandeepkv93/drilld/internal/session"
	"github.com/sandeepkv93/drilld/internal/settings"
	"github.com/sandeepkv93/drilld/internal/skills"
	"github.com/sandeepkv93/drilld/internal/speech"
	"github.com/sandeepkv93/drilld/internal/toast"
)

type View string

const (
	ViewPractice View = "Practice"
	ViewSkills   View = "Skills"
	ViewSettings View = "Settings"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Practice string
	Skills   string
	Settings string
	Help     string
	Quit     string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

// EditorField indexes the inline skill editor's focusable inputs.
type EditorField int

const (
	FieldName EditorField = iota
	FieldPhrase
	FieldInterval
	FieldDescription
	fieldCount
)

type EditorState struct {
	Active  bool
	SkillID string
	Field   EditorField
	Err     string
}

type Model struct {
	CurrentView View
	Manager     *skills.Manager
	Settings    *settings.Store
	Session     *session.Engine
	Toast       *toast.Coordinator
	Criteria    domainmodel.FilterCriteria
	SortKey     domainmodel.SortKey
	SortDir     domainmodel.SortDirection
	Cursor      int
	Palette     CommandPaletteState
	Editor      EditorState
	ResetPrompt bool
	HelpVisible bool
	Status      StatusBar
	Keys        GlobalKeyMap
	Muted       bool
	Quitting    bool
	LastError   error
	// Bubble components used for rich TUI controls
	skillList       list.Model
	commandInput    textinput.Model
	nameInput       textinput.Model
	phraseInput     textinput.Model
	intervalInput   textinput.Model
	descriptionArea textarea.Model
	sessionProgress progress.Model
	helpModel       help.Model
	detailViewport  viewport.Model
	sessionTicking  bool
	toastTicking    bool
	uiDensity       int
	now             func() time.Time
}

type listItem struct {
	title       string
	description string
}

func (i listItem) FilterValue() string { return i.title + " " + i.description }
func (i listItem) Title() string       { return i.title }
func (i listItem) Description() string { return i.description }

type SwitchViewMsg struct {
	View View
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type SkillsLoadedMsg struct{}

type SessionTickMsg struct{}

type ToastTickMsg struct{}

func NewModel(manager *skills.Manager, store *settings.Store, speaker speech.Speaker) Model {
	return NewModelWithConfig(manager, store, speaker, DefaultRuntimeConfig())
}

func NewModelWithConfig(manager *skills.Manager, store *settings.Store, speaker speech.Speaker, cfg RuntimeConfig) Model {
	if speaker == nil {
		speaker = speech.NoopSpeaker{}
	}
	m := Model{
		CurrentView: ViewPractice,
		Manager:     manager,
		Settings:    store,
		Toast:       &toast.Coordinator{},
		SortKey:     domainmodel.SortByCreated,
		SortDir:     domainmodel.SortDesc,
		Muted:       cfg.Muted,
		Keys: GlobalKeyMap{
			Practice: "1",
			Skills:   "2",
			Settings: "3",
			Help:     "?",
			Quit:     "q",
		},
		uiDensity: cfg.UIDensity,
		now:       time.Now,
	}
	m.Session = session.NewEngine(m.sessionParams(cfg), speaker)
	m.initBubbleComponents()
	m.syncBubbleData()
	return m
}

// sessionParams closes over the manager, the settings store, and the
// launch config so the engine reads the current skill and audio
// settings on every tick. The mute flag comes from cfg, never from a
// Model field, since Model values are copied on every update.
func (m *Model) sessionParams(cfg RuntimeConfig) func() session.Params {
	manager := m.Manager
	store := m.Settings
	return func() session.Params {
		p := session.Params{
			Phrase:      "Focus",
			IntervalSec: domainmodel.DefaultInterval,
			Volume:      1,
			DelaySec:    session.DefaultDelaySec,
		}
		if manager != nil {
			if active, ok := manager.Active(); ok {
				p.Phrase = active.TTS
				p.IntervalSec = active.Interval
			}
		}
		if store != nil {
			p.Volume = store.Volume()
			p.DelaySec = store.Delay()
		}
		if cfg.Muted {
			p.Volume = 0
		}
		return p
	}
}

// visibleSkills applies the current filter and sort to the manager's
// non-archived skills. The cursor always indexes into this slice.
func (m Model) visibleSkills() []domainmodel.Skill {
	if m.Manager == nil {
		return nil
	}
	return domainmodel.FilterAndSortSkills(m.Manager.Visible(), m.Criteria, m.SortKey, m.SortDir)
}

func (m Model) selectedSkill() (domainmodel.Skill, bool) {
	visible := m.visibleSkills()
	if len(visible) == 0 || m.Cursor < 0 || m.Cursor >= len(visible) {
		return domainmodel.Skill{}, false
	}
	return visible[m.Cursor], true
}

func (m *Model) clampCursor() {
	count := len(m.visibleSkills())
	if count == 0 {
		m.Cursor = 0
		return
	}
	if m.Cursor >= count {
		m.Cursor = count - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}
