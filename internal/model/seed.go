package model

// InitialSkills returns the bundled preset skills used to seed an
// empty store and to recover from an unreadable one. Timestamps are
// generated at construction.
func InitialSkills() []Skill {
	return []Skill{
		CreateSkillWithDefaults(Skill{
			ID:          "off-angle",
			Name:        "Off Angle",
			Description: "Use off angles to separate enemy resources",
			TTS:         "off angles",
			Interval:    20,
			IsPreset:    true,
		}),
		CreateSkillWithDefaults(Skill{
			ID:          "target-priority",
			Name:        "Target Priority",
			Description: "Focus squishies, not the tank",
			TTS:         "target priority",
			Interval:    30,
			IsPreset:    true,
		}),
		CreateSkillWithDefaults(Skill{
			ID:          "ult-tracking",
			Name:        "Ult Tracking",
			Description: "Think of what ults the enemy has",
			TTS:         "ult tracking",
			Interval:    45,
			IsPreset:    true,
		}),
		CreateSkillWithDefaults(Skill{
			ID:          "tp-then-suzu",
			Name:        "TP then Suzu",
			Description: "Use Swift Step to your teammate, then Suzu to save them. Prioritize TP before Suzu so you're in position to cleanse.",
			TTS:         "TP then Suzu",
			Interval:    45,
			HeroIDs:     []string{"kiriko"},
			RoleIDs:     []string{"support"},
			IsPreset:    true,
		}),
		CreateSkillWithDefaults(Skill{
			ID:          "engage-with-team",
			Name:        "Engage with team",
			Description: "Before engaging, check that your team is ready and together. Don't push in alone—wait for your team to be in position so everyone engages together.",
			TTS:         "Engage with team",
			Interval:    30,
			RoleIDs:     []string{"tank"},
			IsPreset:    true,
		}),
	}
}
