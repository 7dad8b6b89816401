package model

import (
	"sort"
	"strings"
)

type RoleMeta struct {
	ID   string
	Name string
}

type HeroMeta struct {
	ID     string
	Name   string
	RoleID string
}

// Static reference catalog, immutable for the process lifetime.
var Roles = []RoleMeta{
	{ID: "tank", Name: "Tank"},
	{ID: "damage", Name: "Damage"},
	{ID: "support", Name: "Support"},
}

var Heroes = []HeroMeta{
	{ID: "dva", Name: "D.Va", RoleID: "tank"},
	{ID: "rein", Name: "Reinhardt", RoleID: "tank"},
	{ID: "winston", Name: "Winston", RoleID: "tank"},
	{ID: "tracer", Name: "Tracer", RoleID: "damage"},
	{ID: "soldier-76", Name: "Soldier: 76", RoleID: "damage"},
	{ID: "sojourn", Name: "Sojourn", RoleID: "damage"},
	{ID: "ana", Name: "Ana", RoleID: "support"},
	{ID: "mercy", Name: "Mercy", RoleID: "support"},
	{ID: "kiriko", Name: "Kiriko", RoleID: "support"},
}

func HeroByID(id string) (HeroMeta, bool) {
	for _, h := range Heroes {
		if h.ID == id {
			return h, true
		}
	}
	return HeroMeta{}, false
}

// HeroNames resolves hero ids to display names. Dangling ids are
// skipped rather than rejected.
func HeroNames(heroIDs []string) []string {
	out := make([]string, 0, len(heroIDs))
	for _, id := range heroIDs {
		if h, ok := HeroByID(id); ok {
			out = append(out, h.Name)
		}
	}
	return out
}

// RoleNames resolves role ids to display names; unknown ids pass
// through as-is.
func RoleNames(roleIDs []string) []string {
	out := make([]string, 0, len(roleIDs))
	for _, id := range roleIDs {
		name := id
		for _, r := range Roles {
			if r.ID == id {
				name = r.Name
				break
			}
		}
		out = append(out, name)
	}
	return out
}

// UniqueTags collects the distinct tags used across skills in display
// case, deduped case-insensitively and sorted alphabetically.
func UniqueTags(skills []Skill) []string {
	seen := make(map[string]string)
	for _, s := range skills {
		for _, tag := range s.Tags {
			display := TagDisplayCase(tag)
			if display == "" {
				continue
			}
			key := strings.ToLower(display)
			if _, ok := seen[key]; !ok {
				seen[key] = display
			}
		}
	}
	out := make([]string, 0, len(seen))
	for _, display := range seen {
		out = append(out, display)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i]) < strings.ToLower(out[j])
	})
	return out
}
