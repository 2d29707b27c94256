package player

import (
	"math"
	"time"
)

// ReconcileStep is one stage of the load-time accrual pipeline.
type ReconcileStep func(State, time.Time) State

// ReconcileSteps lists the accrual stages in the order Reconcile runs them.
func (e Engine) ReconcileSteps() []ReconcileStep {
	return []ReconcileStep{
		func(s State, _ time.Time) State { return ClearStaleEncounter(s) },
		AccrueOffline,
		GrowGarden,
		StageDailyReward,
		e.RefreshMarket,
	}
}

// Reconcile brings a freshly loaded document up to now. It runs once per load.
func (e Engine) Reconcile(s State, now time.Time) State {
	next := s.Clone()
	for _, step := range e.ReconcileSteps() {
		next = step(next, now)
	}
	return next
}

// AccrueOffline stages coins and gems for the time since the last save. Short
// absences earn nothing; long ones are capped at MaxOfflineHours.
func AccrueOffline(s State, now time.Time) State {
	hours := now.Sub(s.Offline.LastSaveTime).Hours()
	if s.Offline.LastSaveTime.IsZero() || hours < OfflineMinHours {
		return s
	}
	limit := s.Offline.MaxOfflineHours
	if limit <= 0 {
		limit = DefaultMaxOfflineHrs
	}
	hours = math.Min(hours, limit)
	bonus := 1 + float64(s.Research.Level)*OfflineResearchBonus

	s.Offline.OfflineCoins += floorInt(hours * OfflineCoinRate * bonus)
	s.Offline.OfflineGems += floorInt(hours * OfflineGemRate * bonus)
	s.Offline.OfflineSeconds = hours * 3600
	s.Offline.LastSaveTime = now
	return s
}

func (e Engine) ClaimOffline(s State, now time.Time) Outcome {
	o := s.Offline
	if o.OfflineCoins <= 0 && o.OfflineGems <= 0 {
		return reject(s, ReasonNotReady)
	}
	next := s.Clone()
	next.earnCoins(o.OfflineCoins)
	next.earnGems(o.OfflineGems)
	next.Offline.OfflineCoins = 0
	next.Offline.OfflineGems = 0
	next.Offline.OfflineSeconds = 0
	out := accept(next, event(EventOfflineClaimed, now, map[string]any{
		"coins": o.OfflineCoins, "gems": o.OfflineGems,
	}))
	out.Reward = &Reward{Coins: o.OfflineCoins, Gems: o.OfflineGems}
	return out
}

// StageDailyReward offers the next streak day once a full interval has passed
// since the last claim. At most one reward is pending.
func StageDailyReward(s State, now time.Time) State {
	d := &s.DailyRewards
	if d.AvailableReward != nil {
		return s
	}
	if d.LastClaimDate != nil && now.Sub(*d.LastClaimDate) < DailyRewardInterval {
		return s
	}
	r := DailyRewardFor(d.CurrentStreak + 1)
	d.AvailableReward = &r
	return s
}

// DailyRewardFor scales the payout with the streak day.
func DailyRewardFor(day int) DailyReward {
	r := DailyReward{
		Day:   day,
		Coins: DailyBaseCoins + day*DailyCoinsPerDay,
		Gems:  DailyBaseGems + day/2,
	}
	switch day {
	case DailyLegendaryDay:
		r.Special = DailySpecialChest
	case DailyMythicalDay:
		r.Special = DailySpecialMythical
	}
	return r
}

// ClaimDaily pays the pending reward. The streak restarts when more than one
// whole day passed since the previous claim.
func (e Engine) ClaimDaily(s State, now time.Time) Outcome {
	pending := s.DailyRewards.AvailableReward
	if pending == nil {
		return reject(s, ReasonNotReady)
	}

	next := s.Clone()
	d := &next.DailyRewards
	streak := d.CurrentStreak + 1
	if d.LastClaimDate != nil && int(now.Sub(*d.LastClaimDate)/DailyRewardInterval) > 1 {
		streak = 1
	}
	claimed := *pending
	claimed.Claimed = true
	claimed.ClaimedAt = &now

	d.LastClaimDate = &now
	d.CurrentStreak = streak
	d.MaxStreak = max(d.MaxStreak, streak)
	d.AvailableReward = nil
	d.History = append(d.History, claimed)

	next.earnCoins(claimed.Coins)
	next.earnGems(claimed.Gems)
	reward := &Reward{Coins: claimed.Coins, Gems: claimed.Gems}

	switch claimed.Special {
	case DailySpecialChest:
		w := e.Content.Weapon(next.Premium, RarityLegendary, false)
		next.addWeapon(w)
		reward.Weapons = []Weapon{w}
	case DailySpecialMythical:
		a := e.Content.Armor(next.Premium, RarityMythical, false)
		next.addArmor(a)
		reward.Armor = []Armor{a}
	}

	out := accept(next, event(EventDailyClaimed, now, map[string]any{
		"day": claimed.Day, "streak": streak, "coins": claimed.Coins, "gems": claimed.Gems, "special": claimed.Special,
	}))
	out.Reward = reward
	return out
}

// RefreshMarket regenerates the relic listings once NextRefresh has passed.
func (e Engine) RefreshMarket(s State, now time.Time) State {
	if now.Before(s.Market.NextRefresh) && len(s.Market.Items) > 0 {
		return s
	}
	size := e.Catalog.MarketSize
	if size <= 0 {
		size = DefaultMarketListing
	}
	items := make([]Relic, 0, size)
	for range size {
		items = append(items, e.Content.Relic(s.Premium))
	}
	s.Market = Market{Items: items, LastRefresh: now, NextRefresh: now.Add(MarketRefreshPeriod)}
	return s
}

// ForceMarketRefresh is the on-demand variant of RefreshMarket.
func (e Engine) ForceMarketRefresh(s State, now time.Time) Outcome {
	next := s.Clone()
	next.Market.NextRefresh = now
	next = e.RefreshMarket(next, now)
	return accept(next, event(EventMarketRefreshed, now, map[string]any{"items": len(next.Market.Items)}))
}
