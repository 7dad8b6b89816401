package storage

import (
	"context"
	"errors"

	"github.com/sandeepkv93/drilld/internal/model"
)

var ErrNotFound = errors.New("storage: not found")

// SchemaVersion is the current persisted-data format. Stored data
// written by a newer binary is discarded rather than misread.
const SchemaVersion = 1

// SkillStore is the persistence contract for the skill collection.
// Implementations may fail; callers treat every method as best-effort.
type SkillStore interface {
	// GetAll returns every stored skill, archived included.
	GetAll(ctx context.Context) ([]model.Skill, error)
	// Save upserts one record.
	Save(ctx context.Context, skill model.Skill) error
	// SaveAll atomically replaces the whole collection.
	SaveAll(ctx context.Context, skills []model.Skill) error
	// Delete removes one record by id. The collection manager soft
	// deletes in memory regardless of what the store does here.
	Delete(ctx context.Context, id string) error
}

// SettingsStore persists the two scalar preferences, each
// independently fallible.
type SettingsStore interface {
	GetVolume(ctx context.Context) (float64, error)
	SetVolume(ctx context.Context, volume float64) error
	GetDelay(ctx context.Context) (int, error)
	SetDelay(ctx context.Context, delay int) error
}
