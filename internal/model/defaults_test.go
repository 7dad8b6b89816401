package model

import (
	"reflect"
	"testing"
	"time"
)

func TestCreateSkillWithDefaultsFillsEverything(t *testing.T) {
	skill := CreateSkillWithDefaults(Skill{})
	if skill.ID == "" {
		t.Fatal("expected generated id")
	}
	if skill.GameID != DefaultGameID {
		t.Fatalf("expected game id %q, got %q", DefaultGameID, skill.GameID)
	}
	if skill.Name != DefaultSkillName {
		t.Fatalf("expected default name, got %q", skill.Name)
	}
	if skill.TTS != DefaultSkillName {
		t.Fatalf("expected tts to fall back to name, got %q", skill.TTS)
	}
	if skill.Interval != DefaultInterval {
		t.Fatalf("expected default interval %d, got %d", DefaultInterval, skill.Interval)
	}
	if skill.HeroIDs == nil || skill.RoleIDs == nil || skill.Tags == nil {
		t.Fatal("expected empty slices, not nil")
	}
	if skill.CreatedAt.IsZero() || skill.UpdatedAt.IsZero() {
		t.Fatal("expected generated timestamps")
	}
	if err := skill.Validate(); err != nil {
		t.Fatalf("factory output must validate: %v", err)
	}
}

func TestCreateSkillWithDefaultsTTSFallsBackToName(t *testing.T) {
	skill := CreateSkillWithDefaults(Skill{Name: "Ult Tracking"})
	if skill.TTS != "Ult Tracking" {
		t.Fatalf("expected tts %q, got %q", "Ult Tracking", skill.TTS)
	}
}

func TestCreateSkillWithDefaultsClampsInterval(t *testing.T) {
	skill := CreateSkillWithDefaults(Skill{Interval: -5})
	if skill.Interval != 1 {
		t.Fatalf("expected interval clamped to 1, got %d", skill.Interval)
	}
}

func TestCreateSkillWithDefaultsNormalizesTags(t *testing.T) {
	skill := CreateSkillWithDefaults(Skill{Tags: []string{" aim ", "AIM", "", "positioning", "Positioning"}})
	want := []string{"Aim", "Positioning"}
	if !reflect.DeepEqual(skill.Tags, want) {
		t.Fatalf("expected tags %v, got %v", want, skill.Tags)
	}
}

func TestCreateSkillWithDefaultsIsIdempotentOnCompleteInput(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	full := CreateSkillWithDefaults(Skill{
		ID:          "skill-1",
		Name:        "Off Angle",
		Description: "Use off angles",
		TTS:         "off angles",
		Interval:    20,
		HeroIDs:     []string{"tracer"},
		RoleIDs:     []string{"damage"},
		Tags:        []string{"Positioning"},
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	again := CreateSkillWithDefaults(full)
	if !reflect.DeepEqual(full, again) {
		t.Fatalf("expected idempotent factory, got\nfirst:  %+v\nsecond: %+v", full, again)
	}
}

func TestCreateSkillWithDefaultsPreservesExplicitTimestamps(t *testing.T) {
	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	updated := time.Date(2025, 6, 7, 8, 9, 10, 0, time.UTC)
	skill := CreateSkillWithDefaults(Skill{ID: "skill-1", Name: "n", CreatedAt: created, UpdatedAt: updated})
	if !skill.CreatedAt.Equal(created) || !skill.UpdatedAt.Equal(updated) {
		t.Fatalf("expected timestamps preserved, got created=%v updated=%v", skill.CreatedAt, skill.UpdatedAt)
	}
}

func TestTagDisplayCase(t *testing.T) {
	if got := TagDisplayCase("gameSENSE"); got != "Gamesense" {
		t.Fatalf("expected Gamesense, got %q", got)
	}
	if got := TagDisplayCase("  "); got != "" {
		t.Fatalf("expected empty result, got %q", got)
	}
}
