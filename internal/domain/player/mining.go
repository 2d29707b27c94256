package player

import "time"

// MineGem digs one gem, occasionally a shiny one instead.
func (e Engine) MineGem(s State, now time.Time) Outcome {
	next := s.Clone()
	reward := &Reward{}
	if e.chance(ShinyMineChance) {
		next.Currencies.ShinyGems++
		next.Statistics.ShinyGemsEarned++
		next.Statistics.ShinyGemsMined++
		reward.Shiny = 1
	} else {
		next.earnGems(1)
		next.Statistics.GemsMined++
		reward.Gems = 1
	}
	out := accept(next, event(EventGemMined, now, map[string]any{"gems": reward.Gems, "shiny_gems": reward.Shiny}))
	out.Reward = reward
	return out
}

func (e Engine) ExchangeShinyGems(s State, now time.Time, amount int) Outcome {
	if amount <= 0 {
		return reject(s, ReasonInvalidParams)
	}
	if s.Currencies.ShinyGems < amount {
		return reject(s, ReasonInsufficientShiny)
	}
	gems := amount * ShinyExchangeRate
	next := s.Clone()
	next.Currencies.ShinyGems -= amount
	next.earnGems(gems)
	out := accept(next, event(EventShinyExchanged, now, map[string]any{"shiny_gems": amount, "gems": gems}))
	out.Reward = &Reward{Gems: gems}
	return out
}
