package player

import "time"

// RollSkill buys a uniformly drawn timed buff. Only one buff may be active,
// and activity is judged against wall-clock expiry.
func (e Engine) RollSkill(s State, now time.Time) Outcome {
	cost := e.Catalog.SkillRollCost
	if s.Currencies.Coins < cost {
		return reject(s, ReasonInsufficientCoins)
	}
	if _, active := ActiveBuff(s, now); active {
		return reject(s, ReasonNotReady)
	}
	if len(e.Catalog.MenuSkills) == 0 {
		return reject(s, ReasonInvalidState)
	}

	def := e.Catalog.MenuSkills[e.Rand.IntN(len(e.Catalog.MenuSkills))]
	skill := MenuSkill{
		ID:          e.newID("skill", now),
		Type:        def.Type,
		Name:        def.Name,
		Description: def.Description,
		Hours:       def.Hours,
		ActivatedAt: now,
		ExpiresAt:   now.Add(time.Duration(def.Hours * float64(time.Hour))),
	}

	next := s.Clone()
	next.Currencies.Coins -= cost
	next.Skills.ActiveMenuSkill = &skill
	next.Skills.LastRollTime = &now
	next.Statistics.SkillsRolled++
	return accept(next, event(EventSkillRolled, now, map[string]any{
		"skill": skill.Type, "expires_at": skill.ExpiresAt, "cost": cost,
	}))
}

// ActiveBuff returns the installed buff while it has not expired at now.
func ActiveBuff(s State, now time.Time) (MenuSkill, bool) {
	b := s.Skills.ActiveMenuSkill
	if b == nil || !now.Before(b.ExpiresAt) {
		return MenuSkill{}, false
	}
	return *b, true
}

// BuffRemaining is zero once the buff has expired.
func BuffRemaining(s State, now time.Time) time.Duration {
	b, ok := ActiveBuff(s, now)
	if !ok {
		return 0
	}
	return b.ExpiresAt.Sub(now)
}
