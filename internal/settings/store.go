// Package settings holds the two scalar preferences, loaded once at
// startup and written through on change.
package settings

import (
	"context"
	"log/slog"

	"github.com/sandeepkv93/drilld/internal/storage"
)

const (
	DefaultVolume = 1.0
	DefaultDelay  = 30
)

// Store keeps volume and delay in memory as the source of truth.
// Writes are fire-and-forget: a storage failure is logged and the
// in-memory value stands.
type Store struct {
	store  storage.SettingsStore
	logger *slog.Logger
	volume float64
	delay  int
}

func NewStore(store storage.SettingsStore, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		store:  store,
		logger: logger,
		volume: DefaultVolume,
		delay:  DefaultDelay,
	}
}

// Load reads both values, keeping the defaults when a value is absent
// or its read fails.
func (s *Store) Load(ctx context.Context) {
	if s.store == nil {
		return
	}
	if volume, err := s.store.GetVolume(ctx); err != nil {
		s.logger.Warn("load volume failed, using default", "error", err)
	} else {
		s.volume = clampVolume(volume)
	}
	if delay, err := s.store.GetDelay(ctx); err != nil {
		s.logger.Warn("load delay failed, using default", "error", err)
	} else {
		s.delay = clampDelay(delay)
	}
}

func (s *Store) Volume() float64 { return s.volume }
func (s *Store) Delay() int      { return s.delay }

func (s *Store) SetVolume(ctx context.Context, volume float64) {
	s.volume = clampVolume(volume)
	if s.store == nil {
		return
	}
	if err := s.store.SetVolume(ctx, s.volume); err != nil {
		s.logger.Warn("persist volume failed", "error", err)
	}
}

func (s *Store) SetDelay(ctx context.Context, delay int) {
	s.delay = clampDelay(delay)
	if s.store == nil {
		return
	}
	if err := s.store.SetDelay(ctx, s.delay); err != nil {
		s.logger.Warn("persist delay failed", "error", err)
	}
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampDelay(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
