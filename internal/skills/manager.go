// Package skills owns the authoritative in-memory skill collection
// and keeps it synchronized with the storage adapter.
package skills

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/sandeepkv93/drilld/internal/model"
	"github.com/sandeepkv93/drilld/internal/storage"
)

// Manager mediates every mutation of the collection. Mutations are
// applied to memory first; persistence trails as a best-effort
// full-snapshot write whose failure is logged, never surfaced. The
// in-memory state is the source of truth for the session.
//
// A single writer goroutine drains the latest pending snapshot, so
// rapid successive mutations collapse into one last-write-wins
// storage round trip.
type Manager struct {
	store    storage.SkillStore
	logger   *slog.Logger
	seed     func() []model.Skill
	now      func() time.Time
	skills   []model.Skill
	activeID string
	loading  bool
	loaded   bool

	mu      sync.Mutex
	pending []model.Skill
	wakeup  chan struct{}
	stopCh  chan struct{}
	doneCh  chan struct{}
	started bool
	closed  bool
}

func NewManager(store storage.SkillStore, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		store:  store,
		logger: logger,
		seed:   model.InitialSkills,
		now:    func() time.Time { return time.Now().UTC() },
		wakeup: make(chan struct{}, 1),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
}

// NewManagerWithSeed overrides the bundled seed set, mainly for tests.
func NewManagerWithSeed(store storage.SkillStore, logger *slog.Logger, seed func() []model.Skill) *Manager {
	m := NewManager(store, logger)
	if seed != nil {
		m.seed = seed
	}
	return m
}

// Close flushes any pending snapshot and stops the writer. Further
// mutations remain in memory only.
func (m *Manager) Close() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.closed = true
	started := m.started
	m.mu.Unlock()
	close(m.stopCh)
	if started {
		<-m.doneCh
	}
}

func (m *Manager) IsLoading() bool { return m.loading }

// All returns the full collection, archived records included.
func (m *Manager) All() []model.Skill {
	return model.CloneAll(m.skills)
}

// Visible returns the user-facing view: non-archived records in
// authoritative order.
func (m *Manager) Visible() []model.Skill {
	out := make([]model.Skill, 0, len(m.skills))
	for _, s := range m.skills {
		if !s.IsArchived {
			out = append(out, s.Clone())
		}
	}
	return out
}

func (m *Manager) Active() (model.Skill, bool) {
	if m.activeID == "" {
		return model.Skill{}, false
	}
	for _, s := range m.skills {
		if s.ID == m.activeID && !s.IsArchived {
			return s.Clone(), true
		}
	}
	return model.Skill{}, false
}

func (m *Manager) SetActive(id string) {
	for _, s := range m.skills {
		if s.ID == id && !s.IsArchived {
			m.activeID = id
			return
		}
	}
}

// Load reads the stored collection. An empty store is seeded and the
// seed persisted; an unreadable store falls back to the seed in
// memory only. A store holding nothing but archived records is kept
// exactly as found so a later restore still works.
func (m *Manager) Load(ctx context.Context) {
	m.loading = true
	defer func() {
		m.loading = false
		m.loaded = true
	}()

	stored, err := m.store.GetAll(ctx)
	if err != nil {
		m.logger.Warn("load skills failed, using bundled set", "error", err)
		m.skills = m.seed()
		m.selectFirstVisible()
		return
	}
	if len(stored) == 0 {
		m.skills = m.seed()
		m.selectFirstVisible()
		if len(m.skills) > 0 {
			if err := m.store.SaveAll(ctx, model.CloneAll(m.skills)); err != nil {
				m.logger.Warn("persist seed failed", "error", err)
			}
		}
		return
	}
	m.skills = stored
	m.selectFirstVisible()
}

// Add constructs a fresh skill, prepends it, and makes it active.
func (m *Manager) Add() model.Skill {
	skill := model.CreateSkillWithDefaults(model.Skill{
		Name:        model.DefaultSkillName,
		Description: "New Description",
	})
	m.skills = append([]model.Skill{skill}, m.skills...)
	m.activeID = skill.ID
	m.persistOnChange()
	return skill.Clone()
}

// Save replaces the record matching the given id, or prepends it as
// new when the id is unknown. The active selection is unchanged.
func (m *Manager) Save(skill model.Skill) {
	skill = skill.Clone()
	skill.UpdatedAt = m.now()
	for i := range m.skills {
		if m.skills[i].ID == skill.ID {
			m.skills[i] = skill
			m.persistOnChange()
			return
		}
	}
	m.skills = append([]model.Skill{skill}, m.skills...)
	m.persistOnChange()
}

// Delete soft-deletes: the record stays in the collection with
// IsArchived set, available for restore. Returns the archived record
// for pairing with an undo affordance.
func (m *Manager) Delete(ctx context.Context, id string) (model.Skill, bool) {
	idx := m.indexOf(id)
	if idx < 0 {
		return model.Skill{}, false
	}
	m.skills[idx].IsArchived = true
	m.skills[idx].UpdatedAt = m.now()
	archived := m.skills[idx].Clone()

	if err := m.store.Delete(ctx, id); err != nil {
		m.logger.Warn("persist delete failed", "error", err, "id", id)
	}
	if m.activeID == id {
		m.activeID = ""
		m.selectFirstVisible()
	}
	m.persistOnChange()
	return archived, true
}

// Restore flips a soft-deleted record back and makes it active. If
// the id no longer exists (hard-reset away), the record is
// re-inserted at the front.
func (m *Manager) Restore(skill model.Skill) {
	now := m.now()
	idx := m.indexOf(skill.ID)
	if idx >= 0 {
		m.skills[idx].IsArchived = false
		m.skills[idx].UpdatedAt = now
		m.activeID = skill.ID
		m.persistOnChange()
		return
	}
	revived := skill.Clone()
	revived.IsArchived = false
	revived.UpdatedAt = now
	m.skills = append([]model.Skill{revived}, m.skills...)
	m.activeID = revived.ID
	m.persistOnChange()
}

// Reset replaces the whole collection with the bundled set and
// persists the replacement. A persistence failure does not roll back
// the in-memory reset.
func (m *Manager) Reset(ctx context.Context) {
	m.skills = m.seed()
	m.activeID = ""
	m.selectFirstVisible()
	if err := m.store.SaveAll(ctx, model.CloneAll(m.skills)); err != nil {
		m.logger.Warn("persist reset failed", "error", err)
	}
}

// Reorder moves the record at start to end, both positions in the
// authoritative full-collection order. Callers holding a filtered
// view must translate indices first (see ReorderVisible).
func (m *Manager) Reorder(start, end int) {
	if start < 0 || start >= len(m.skills) || end < 0 || end >= len(m.skills) || start == end {
		return
	}
	moved := m.skills[start]
	rest := append(append([]model.Skill{}, m.skills[:start]...), m.skills[start+1:]...)
	m.skills = append(append(append([]model.Skill{}, rest[:end]...), moved), rest[end:]...)
	m.persistOnChange()
}

func (m *Manager) indexOf(id string) int {
	for i := range m.skills {
		if m.skills[i].ID == id {
			return i
		}
	}
	return -1
}

func (m *Manager) selectFirstVisible() {
	if m.activeID != "" {
		return
	}
	for _, s := range m.skills {
		if !s.IsArchived {
			m.activeID = s.ID
			return
		}
	}
}

// persistOnChange stages the latest full snapshot for the writer
// goroutine. Callers never block on storage.
func (m *Manager) persistOnChange() {
	if !m.loaded || m.store == nil {
		return
	}
	snapshot := model.CloneAll(m.skills)

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.pending = snapshot
	if !m.started {
		m.started = true
		go m.writerLoop()
	}
	m.mu.Unlock()
	m.signalWakeup()
}

func (m *Manager) signalWakeup() {
	select {
	case m.wakeup <- struct{}{}:
	default:
	}
}

func (m *Manager) writerLoop() {
	defer close(m.doneCh)
	for {
		select {
		case <-m.wakeup:
			m.flushPending()
		case <-m.stopCh:
			m.flushPending()
			return
		}
	}
}

func (m *Manager) flushPending() {
	m.mu.Lock()
	snapshot := m.pending
	m.pending = nil
	m.mu.Unlock()
	if snapshot == nil {
		return
	}
	if err := m.store.SaveAll(context.Background(), snapshot); err != nil {
		m.logger.Warn("persist skills failed", "error", err)
	}
}
