package update

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	domainmodel "github.com/sandeepkv93/drilld/internal/model"
	"github.com/sandeepkv93/drilld/internal/session"
	"github.com/sandeepkv93/drilld/internal/settings"
	"github.com/sandeepkv93/drilld/internal/skills"
	"github.com/sandeepkv93/drilld/internal/speech"
)

type fakeSkillStore struct {
	mu      sync.Mutex
	records []domainmodel.Skill
}

func (f *fakeSkillStore) GetAll(context.Context) ([]domainmodel.Skill, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return domainmodel.CloneAll(f.records), nil
}

func (f *fakeSkillStore) Save(_ context.Context, skill domainmodel.Skill) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = append([]domainmodel.Skill{skill}, f.records...)
	return nil
}

func (f *fakeSkillStore) SaveAll(_ context.Context, all []domainmodel.Skill) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = domainmodel.CloneAll(all)
	return nil
}

func (f *fakeSkillStore) Delete(context.Context, string) error { return nil }

type fakeSettingsStore struct {
	volume float64
	delay  int
}

func (f *fakeSettingsStore) GetVolume(context.Context) (float64, error) { return f.volume, nil }
func (f *fakeSettingsStore) SetVolume(_ context.Context, v float64) error {
	f.volume = v
	return nil
}
func (f *fakeSettingsStore) GetDelay(context.Context) (int, error) { return f.delay, nil }
func (f *fakeSettingsStore) SetDelay(_ context.Context, d int) error {
	f.delay = d
	return nil
}

type recordingSpeaker struct {
	mu      sync.Mutex
	volumes []float64
}

func (r *recordingSpeaker) Speak(_ string, volume float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.volumes = append(r.volumes, volume)
}

func (r *recordingSpeaker) Cancel() {}

func newTestModel(t *testing.T) Model {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	manager := skills.NewManager(&fakeSkillStore{}, logger)
	manager.Load(context.Background())
	t.Cleanup(manager.Close)
	store := settings.NewStore(&fakeSettingsStore{volume: 0.8, delay: 10}, logger)
	store.Load(context.Background())
	return NewModel(manager, store, speech.NoopSpeaker{})
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModelDefaults(t *testing.T) {
	m := newTestModel(t)
	if m.CurrentView != ViewPractice {
		t.Fatalf("expected default view %q, got %q", ViewPractice, m.CurrentView)
	}
	if m.SortKey != domainmodel.SortByCreated || m.SortDir != domainmodel.SortDesc {
		t.Fatalf("unexpected default sort: %s %s", m.SortKey, m.SortDir)
	}
	if m.Keys.Quit != "q" {
		t.Fatalf("expected quit key q, got %q", m.Keys.Quit)
	}
	if len(m.Manager.Visible()) == 0 {
		t.Fatal("expected seeded skills available")
	}
}

func TestUpdateKeySwitchesView(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(keyRunes("2"))
	next := updated.(Model)
	if next.CurrentView != ViewSkills {
		t.Fatalf("expected skills view, got %q", next.CurrentView)
	}

	updated, _ = next.Update(keyRunes("3"))
	next = updated.(Model)
	if next.CurrentView != ViewSettings {
		t.Fatalf("expected settings view, got %q", next.CurrentView)
	}
}

func TestUpdateQuitKey(t *testing.T) {
	m := newTestModel(t)
	updated, cmd := m.Update(keyRunes("q"))
	next := updated.(Model)
	if !next.Quitting {
		t.Fatal("expected quitting flag true")
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}

func TestSessionStartDelayThenTick(t *testing.T) {
	m := newTestModel(t)
	updated, cmd := m.Update(keyRunes(" "))
	next := updated.(Model)
	if next.Session.State() != session.StateDelayCountdown {
		t.Fatalf("expected delay countdown, got %s", next.Session.State())
	}
	if next.Session.Remaining() != 10 {
		t.Fatalf("expected delay remaining 10s, got %d", next.Session.Remaining())
	}
	if cmd == nil {
		t.Fatal("expected tick command after start")
	}

	updated, cmd = next.Update(SessionTickMsg{})
	next = updated.(Model)
	if next.Session.Remaining() != 9 {
		t.Fatalf("expected remaining 9 after tick, got %d", next.Session.Remaining())
	}
	if cmd == nil {
		t.Fatal("expected tick rearm while session active")
	}

	updated, _ = next.Update(keyRunes(" "))
	next = updated.(Model)
	if next.Session.IsActive() {
		t.Fatal("expected second space to stop the session")
	}
}

func TestMutedConfigSilencesSpeech(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	manager := skills.NewManager(&fakeSkillStore{}, logger)
	manager.Load(context.Background())
	t.Cleanup(manager.Close)
	store := settings.NewStore(&fakeSettingsStore{volume: 0.8, delay: 10}, logger)
	store.Load(context.Background())

	cfg := DefaultRuntimeConfig()
	cfg.Muted = true
	speaker := &recordingSpeaker{}
	m := NewModelWithConfig(manager, store, speaker, cfg)

	updated, _ := m.Update(keyRunes(" "))
	next := updated.(Model)
	if !next.Session.IsActive() {
		t.Fatal("expected session active after start")
	}
	if len(speaker.volumes) != 1 || speaker.volumes[0] != 0 {
		t.Fatalf("expected opener spoken at volume 0 when muted, got %v", speaker.volumes)
	}
}

func TestDeleteShowsUndoToastAndRestores(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(keyRunes("2"))
	next := updated.(Model)
	before := len(next.Manager.Visible())

	updated, cmd := next.Update(keyRunes("d"))
	next = updated.(Model)
	if len(next.Manager.Visible()) != before-1 {
		t.Fatalf("expected %d skills after delete, got %d", before-1, len(next.Manager.Visible()))
	}
	if !next.Toast.Visible() || !next.Toast.HasUndo() {
		t.Fatal("expected visible toast with undo after delete")
	}
	if cmd == nil {
		t.Fatal("expected toast ticker command")
	}

	updated, _ = next.Update(keyRunes("u"))
	next = updated.(Model)
	if len(next.Manager.Visible()) != before {
		t.Fatalf("expected %d skills after undo, got %d", before, len(next.Manager.Visible()))
	}
	if next.Toast.Visible() {
		t.Fatal("expected toast cleared immediately after undo")
	}
}

func TestResetPromptConfirmAndCancel(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(keyRunes("2"))
	next := updated.(Model)

	updated, _ = next.Update(keyRunes("a"))
	next = updated.(Model)
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEsc})
	next = updated.(Model)
	grown := len(next.Manager.Visible())

	updated, _ = next.Update(keyRunes("x"))
	next = updated.(Model)
	if !next.ResetPrompt {
		t.Fatal("expected reset prompt active")
	}
	updated, _ = next.Update(keyRunes("n"))
	next = updated.(Model)
	if next.ResetPrompt {
		t.Fatal("expected reset prompt dismissed on cancel")
	}
	if len(next.Manager.Visible()) != grown {
		t.Fatalf("expected collection unchanged on cancel, got %d", len(next.Manager.Visible()))
	}

	updated, _ = next.Update(keyRunes("x"))
	next = updated.(Model)
	updated, _ = next.Update(keyRunes("y"))
	next = updated.(Model)
	presets := domainmodel.InitialSkills()
	if len(next.Manager.Visible()) != len(presets) {
		t.Fatalf("expected %d preset skills after reset, got %d", len(presets), len(next.Manager.Visible()))
	}
}

func TestPaletteAddCommand(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(keyRunes("/"))
	next := updated.(Model)
	if !next.Palette.Active {
		t.Fatal("expected palette active")
	}

	updated, _ = next.Update(keyRunes("add Peel for supports"))
	next = updated.(Model)
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next = updated.(Model)

	if next.Palette.Active {
		t.Fatal("expected palette closed after execute")
	}
	if next.Status.IsError {
		t.Fatalf("unexpected error status: %+v", next.Status)
	}
	found := false
	for _, s := range next.Manager.Visible() {
		if s.Name == "Peel for supports" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected added skill in collection")
	}
}

func TestPaletteUnknownCommandSetsErrorStatus(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(keyRunes("/"))
	next := updated.(Model)
	updated, _ = next.Update(keyRunes("frobnicate"))
	next = updated.(Model)
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next = updated.(Model)
	if !next.Status.IsError {
		t.Fatalf("expected error status, got %+v", next.Status)
	}
}

func TestReorderRefusedWhileFiltered(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(keyRunes("2"))
	next := updated.(Model)

	updated, _ = next.Update(keyRunes("a"))
	next = updated.(Model)
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEsc})
	next = updated.(Model)
	updated, _ = next.Update(keyRunes("a"))
	next = updated.(Model)
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEsc})
	next = updated.(Model)

	next.Criteria.SearchQuery = "new focus"
	next.Cursor = 0
	if len(next.visibleSkills()) < 2 {
		t.Fatalf("expected at least 2 filtered skills, got %d", len(next.visibleSkills()))
	}

	updated, _ = next.Update(keyRunes("J"))
	next = updated.(Model)
	if !next.Status.IsError {
		t.Fatalf("expected reorder refusal status, got %+v", next.Status)
	}
}

func TestSettingsKeysClampAndPersist(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(keyRunes("3"))
	next := updated.(Model)

	for i := 0; i < 5; i++ {
		updated, _ = next.Update(keyRunes("+"))
		next = updated.(Model)
	}
	if next.Settings.Volume() != 1 {
		t.Fatalf("expected volume clamped to 1, got %v", next.Settings.Volume())
	}

	updated, _ = next.Update(keyRunes("["))
	next = updated.(Model)
	if next.Settings.Delay() != 5 {
		t.Fatalf("expected delay 5, got %d", next.Settings.Delay())
	}
}

func TestViewContainsCoreState(t *testing.T) {
	m := newTestModel(t)
	m.Status = StatusBar{Text: "all good"}
	out := m.View()
	if !strings.Contains(out, "view: Practice") {
		t.Fatalf("expected view text in output: %q", out)
	}
	if !strings.Contains(out, "status: all good") {
		t.Fatalf("expected status in output: %q", out)
	}
}

func TestEditorRejectsBadInterval(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(keyRunes("2"))
	next := updated.(Model)
	updated, _ = next.Update(keyRunes("e"))
	next = updated.(Model)
	if !next.Editor.Active {
		t.Fatal("expected editor active")
	}

	next.intervalInput.SetValue("zero")
	next.Editor.Field = FieldInterval
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next = updated.(Model)
	if !next.Editor.Active {
		t.Fatal("expected editor still open after invalid interval")
	}
	if next.Editor.Err == "" {
		t.Fatal("expected editor error for invalid interval")
	}
}
