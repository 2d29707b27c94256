package player

import (
	"slices"
	"time"
)

// UpgradeSkill spends skill points on one more rank of a skill tree node.
// Ranks are stored as repeated ids in UnlockedSkills.
func (e Engine) UpgradeSkill(s State, now time.Time, id string) Outcome {
	node, ok := e.Catalog.SkillNode(id)
	if !ok {
		return reject(s, ReasonNotFound)
	}
	rank := SkillRank(s, id)
	if rank >= node.MaxLevel {
		return reject(s, ReasonMaxLevel)
	}
	if s.Progression.SkillPoints < node.Cost {
		return reject(s, ReasonInsufficientPoints)
	}
	next := s.Clone()
	next.Progression.SkillPoints -= node.Cost
	next.Progression.UnlockedSkills = append(next.Progression.UnlockedSkills, id)
	return accept(next, event(EventSkillUpgraded, now, map[string]any{
		"skill": id, "rank": rank + 1, "cost": node.Cost,
	}))
}

func SkillRank(s State, id string) int {
	n := 0
	for _, v := range s.Progression.UnlockedSkills {
		if v == id {
			n++
		}
	}
	return n
}

// Prestige trades a high level for prestige points and starts progression over.
func (e Engine) Prestige(s State, now time.Time) Outcome {
	if s.Progression.Level < PrestigeMinLevel {
		return reject(s, ReasonNotReady)
	}
	points := s.Progression.Level / PrestigeLevelDivide
	next := s.Clone()
	next.Progression = Progression{
		Level:            1,
		ExperienceToNext: BaseExperienceToNext,
		UnlockedSkills:   []string{},
		PrestigeLevel:    s.Progression.PrestigeLevel + 1,
		PrestigePoints:   s.Progression.PrestigePoints + points,
	}
	next.Stats.HP = next.Base.MaxHP
	return accept(next, event(EventPrestiged, now, map[string]any{
		"from_level": s.Progression.Level, "points": points, "prestige_level": next.Progression.PrestigeLevel,
	}))
}

// HasSkill reports whether any rank of id is unlocked.
func HasSkill(s State, id string) bool {
	return slices.Contains(s.Progression.UnlockedSkills, id)
}
