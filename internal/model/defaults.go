package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultSkillName = "New Focus"
	DefaultInterval  = 60
)

// CreateSkillWithDefaults fills every unset field of partial with its
// default. Explicit values are preserved, so reapplying the factory to
// an already-complete record yields it unchanged; identity and
// timestamps are generated only when absent.
func CreateSkillWithDefaults(partial Skill) Skill {
	now := time.Now().UTC()
	out := partial.Clone()
	if out.ID == "" {
		out.ID = uuid.NewString()
	}
	if out.GameID == "" {
		out.GameID = DefaultGameID
	}
	if out.Name == "" {
		out.Name = DefaultSkillName
	}
	if out.TTS == "" {
		out.TTS = out.Name
	}
	if out.Interval == 0 {
		out.Interval = DefaultInterval
	}
	if out.Interval < 1 {
		out.Interval = 1
	}
	if out.HeroIDs == nil {
		out.HeroIDs = []string{}
	}
	if out.RoleIDs == nil {
		out.RoleIDs = []string{}
	}
	out.Tags = NormalizeTags(out.Tags)
	if out.CreatedAt.IsZero() {
		out.CreatedAt = now
	}
	if out.UpdatedAt.IsZero() {
		out.UpdatedAt = now
	}
	return out
}

// TagDisplayCase renders a tag in its canonical display form: first
// letter upper, rest lower.
func TagDisplayCase(tag string) string {
	t := strings.TrimSpace(tag)
	if t == "" {
		return t
	}
	r := []rune(t)
	return strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:]))
}

// NormalizeTags trims, title-cases, drops empties, and dedupes tags
// case-insensitively, keeping first-occurrence order.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		display := TagDisplayCase(tag)
		if display == "" {
			continue
		}
		key := strings.ToLower(display)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, display)
	}
	return out
}
