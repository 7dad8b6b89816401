package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidInterval = errors.New("model: invalid skill interval")
	ErrDuplicateTag    = errors.New("model: duplicate tag")
)

const DefaultGameID = "overwatch"

// Skill is a single practice reminder: a phrase spoken aloud every
// Interval seconds while a session runs, plus the metadata used to
// organize and filter the list.
type Skill struct {
	ID          string
	GameID      string
	Name        string
	Description string
	TTS         string
	Interval    int
	HeroIDs     []string
	RoleIDs     []string
	Tags        []string
	IsPreset    bool
	IsArchived  bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (s Skill) Validate() error {
	if strings.TrimSpace(s.ID) == "" {
		return errors.New("model: skill id is required")
	}
	if strings.TrimSpace(s.Name) == "" {
		return errors.New("model: skill name is required")
	}
	if s.Interval < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidInterval, s.Interval)
	}
	if s.CreatedAt.IsZero() {
		return errors.New("model: skill created_at is required")
	}
	seen := make(map[string]bool, len(s.Tags))
	for _, tag := range s.Tags {
		key := strings.ToLower(strings.TrimSpace(tag))
		if seen[key] {
			return fmt.Errorf("%w: %q", ErrDuplicateTag, tag)
		}
		seen[key] = true
	}
	return nil
}

// Clone returns a deep copy; slices are never shared with the source.
func (s Skill) Clone() Skill {
	out := s
	out.HeroIDs = cloneStrings(s.HeroIDs)
	out.RoleIDs = cloneStrings(s.RoleIDs)
	out.Tags = cloneStrings(s.Tags)
	return out
}

// cloneStrings keeps empty-vs-nil identity. The defaults factory
// guarantees non-nil slices and clones must not degrade that.
func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func CloneAll(skills []Skill) []Skill {
	out := make([]Skill, len(skills))
	for i, s := range skills {
		out[i] = s.Clone()
	}
	return out
}
