package player

import "time"

// Clone returns a deep copy so the result can be changed without touching s.
func (s State) Clone() State {
	out := s
	out.Inventory.Weapons = cloneSlice(s.Inventory.Weapons)
	out.Inventory.Armor = cloneSlice(s.Inventory.Armor)
	out.Inventory.Relics = cloneSlice(s.Inventory.Relics)
	out.Inventory.EquippedRelicIDs = cloneSlice(s.Inventory.EquippedRelicIDs)
	if s.CurrentEnemy != nil {
		e := *s.CurrentEnemy
		out.CurrentEnemy = &e
	}
	out.CombatLog = cloneSlice(s.CombatLog)
	out.Garden.PlantedAt = cloneTime(s.Garden.PlantedAt)
	out.Garden.LastWatered = cloneTime(s.Garden.LastWatered)
	out.Garden.LastTendedAt = cloneTime(s.Garden.LastTendedAt)
	out.Market.Items = cloneSlice(s.Market.Items)
	out.DailyRewards.LastClaimDate = cloneTime(s.DailyRewards.LastClaimDate)
	if s.DailyRewards.AvailableReward != nil {
		r := cloneReward(*s.DailyRewards.AvailableReward)
		out.DailyRewards.AvailableReward = &r
	}
	out.DailyRewards.History = make([]DailyReward, 0, len(s.DailyRewards.History))
	for _, r := range s.DailyRewards.History {
		out.DailyRewards.History = append(out.DailyRewards.History, cloneReward(r))
	}
	out.Progression.UnlockedSkills = cloneSlice(s.Progression.UnlockedSkills)
	if s.Skills.ActiveMenuSkill != nil {
		m := *s.Skills.ActiveMenuSkill
		out.Skills.ActiveMenuSkill = &m
	}
	out.Skills.LastRollTime = cloneTime(s.Skills.LastRollTime)
	out.Statistics.AccuracyByCategory = make(map[string]CategoryAccuracy, len(s.Statistics.AccuracyByCategory))
	for k, v := range s.Statistics.AccuracyByCategory {
		out.Statistics.AccuracyByCategory[k] = v
	}
	out.CollectionBook.Weapons = cloneBoolMap(s.CollectionBook.Weapons)
	out.CollectionBook.Armor = cloneBoolMap(s.CollectionBook.Armor)
	out.CollectionBook.RarityStats = make(map[Rarity]int, len(s.CollectionBook.RarityStats))
	for k, v := range s.CollectionBook.RarityStats {
		out.CollectionBook.RarityStats[k] = v
	}
	out.Achievements = cloneRecords(s.Achievements)
	out.Tags = cloneRecords(s.Tags)
	return out
}

func cloneSlice[T any](src []T) []T {
	if src == nil {
		return nil
	}
	return append(make([]T, 0, len(src)), src...)
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func cloneReward(r DailyReward) DailyReward {
	r.ClaimedAt = cloneTime(r.ClaimedAt)
	return r
}

func cloneBoolMap(src map[string]bool) map[string]bool {
	out := make(map[string]bool, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

func cloneRecords(src map[string]StatusRecord) map[string]StatusRecord {
	out := make(map[string]StatusRecord, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
