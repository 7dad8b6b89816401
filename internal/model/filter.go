package model

import (
	"sort"
	"strings"
)

type SortKey string

const (
	SortByName    SortKey = "name"
	SortByRole    SortKey = "role"
	SortByHero    SortKey = "hero"
	SortByCreated SortKey = "createdAt"
)

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// FilterCriteria narrows a skill collection. Each non-empty criterion
// must be satisfied (AND across criteria); values within one criterion
// match any (OR).
type FilterCriteria struct {
	RoleIDs     []string
	HeroIDs     []string
	Tags        []string
	SearchQuery string
}

func (c FilterCriteria) IsActive() bool {
	return len(c.RoleIDs) > 0 || len(c.HeroIDs) > 0 || len(c.Tags) > 0 || strings.TrimSpace(c.SearchQuery) != ""
}

// FilterAndSortSkills is a pure view transform: it never mutates the
// input collection and identical inputs yield identical output.
//
// Role and hero filters cross-match: a hero-only skill satisfies a
// role filter through its heroes' roles, and a role-only skill
// satisfies a hero filter only when the role filter also selects one
// of its roles. This mirrors long-standing observed behavior and is
// intentionally asymmetric.
func FilterAndSortSkills(skills []Skill, criteria FilterCriteria, key SortKey, direction SortDirection) []Skill {
	filtered := make([]Skill, 0, len(skills))
	for _, s := range skills {
		if matchesCriteria(s, criteria) {
			filtered = append(filtered, s)
		}
	}
	sortSkills(filtered, key, direction)
	return filtered
}

func matchesCriteria(s Skill, c FilterCriteria) bool {
	if len(c.RoleIDs) > 0 && !matchesRoleFilter(s, c.RoleIDs) {
		return false
	}
	if len(c.HeroIDs) > 0 && !matchesHeroFilter(s, c) {
		return false
	}
	if len(c.Tags) > 0 && !matchesTagFilter(s, c.Tags) {
		return false
	}
	if q := strings.ToLower(strings.TrimSpace(c.SearchQuery)); q != "" {
		if !strings.Contains(strings.ToLower(s.Name), q) &&
			!strings.Contains(strings.ToLower(s.Description), q) &&
			!strings.Contains(strings.ToLower(s.TTS), q) {
			return false
		}
	}
	return true
}

func matchesRoleFilter(s Skill, roleIDs []string) bool {
	if len(s.RoleIDs) > 0 && intersects(s.RoleIDs, roleIDs) {
		return true
	}
	// Hero-only skill: match if any of its heroes belongs to a
	// selected role.
	for _, heroID := range s.HeroIDs {
		if hero, ok := HeroByID(heroID); ok && contains(roleIDs, hero.RoleID) {
			return true
		}
	}
	return false
}

func matchesHeroFilter(s Skill, c FilterCriteria) bool {
	if len(s.HeroIDs) > 0 {
		return intersects(s.HeroIDs, c.HeroIDs)
	}
	// Role-only skill: shown under a hero filter only while the role
	// filter also selects one of its roles.
	return len(c.RoleIDs) > 0 && intersects(s.RoleIDs, c.RoleIDs)
}

func matchesTagFilter(s Skill, selected []string) bool {
	for _, want := range selected {
		norm := strings.ToLower(strings.TrimSpace(want))
		if norm == "" {
			continue
		}
		for _, tag := range s.Tags {
			if strings.ToLower(strings.TrimSpace(tag)) == norm {
				return true
			}
		}
	}
	return false
}

func sortSkills(skills []Skill, key SortKey, direction SortDirection) {
	sort.SliceStable(skills, func(i, j int) bool {
		a, b := sortValue(skills[i], key), sortValue(skills[j], key)
		if direction == SortDesc {
			return a > b
		}
		return a < b
	})
}

func sortValue(s Skill, key SortKey) string {
	switch key {
	case SortByRole:
		if len(s.RoleIDs) > 0 {
			return s.RoleIDs[0]
		}
		return ""
	case SortByHero:
		if len(s.HeroIDs) > 0 {
			return s.HeroIDs[0]
		}
		return ""
	case SortByCreated:
		return s.CreatedAt.UTC().Format("2006-01-02T15:04:05.000000000")
	default:
		return strings.ToLower(s.Name)
	}
}

func contains(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}

func intersects(a, b []string) bool {
	for _, v := range a {
		if contains(b, v) {
			return true
		}
	}
	return false
}
