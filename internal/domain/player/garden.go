package player

import (
	"math"
	"time"
)

func (e Engine) PlantSeed(s State, now time.Time) Outcome {
	if s.Garden.Planted {
		return reject(s, ReasonInvalidState)
	}
	if s.Currencies.Coins < s.Garden.SeedCost {
		return reject(s, ReasonInsufficientCoins)
	}
	next := s.Clone()
	next.Currencies.Coins -= s.Garden.SeedCost
	next.Garden.Planted = true
	next.Garden.PlantedAt = &now
	next.Garden.LastWatered = &now
	next.Garden.LastTendedAt = &now
	next.Garden.WaterHoursRemaining = GardenInitialWater
	return accept(next, event(EventSeedPlanted, now, map[string]any{"cost": s.Garden.SeedCost}))
}

// BuyWater settles growth up to now before adding hours, so water bought late
// never back-fills a dry stretch.
func (e Engine) BuyWater(s State, now time.Time, hours float64) Outcome {
	if !s.Garden.Planted {
		return reject(s, ReasonInvalidState)
	}
	if hours <= 0 || math.IsNaN(hours) || math.IsInf(hours, 0) {
		return reject(s, ReasonInvalidParams)
	}
	cost := WaterCost(s.Garden.WaterCost, hours)
	if s.Currencies.Coins < cost {
		return reject(s, ReasonInsufficientCoins)
	}
	next := GrowGarden(s.Clone(), now)
	next.Currencies.Coins -= cost
	next.Garden.WaterHoursRemaining += hours
	next.Garden.LastWatered = &now
	next.Garden.LastTendedAt = &now
	return accept(next, event(EventWaterBought, now, map[string]any{"hours": hours, "cost": cost}))
}

// WaterCost scales linearly against the price of a 24 hour fill.
func WaterCost(dayCost int, hours float64) int {
	return floorInt(hours / GardenWaterBaseHours * float64(dayCost))
}

// GrowGarden drains water for the hours since the last checkpoint and, when
// water is left afterwards, grows the plant for those hours.
func GrowGarden(s State, now time.Time) State {
	g := &s.Garden
	if !g.Planted {
		return s
	}
	from := g.LastTendedAt
	if from == nil {
		from = g.LastWatered
	}
	if from == nil {
		from = g.PlantedAt
	}
	if from == nil {
		g.LastTendedAt = &now
		return s
	}
	hours := now.Sub(*from).Hours()
	if hours <= 0 {
		return s
	}
	if g.WaterHoursRemaining > 0 {
		g.WaterHoursRemaining = math.Max(0, g.WaterHoursRemaining-hours)
		if g.WaterHoursRemaining > 0 {
			limit := g.MaxGrowthCm
			if limit <= 0 {
				limit = GardenMaxGrowthCm
			}
			g.GrowthCm = math.Min(limit, g.GrowthCm+hours*GardenGrowthPerHour)
			g.TotalGrowthBonus = g.GrowthCm * GardenBonusPerCm
		}
	}
	g.LastTendedAt = &now
	return s
}
