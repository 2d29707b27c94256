package player

import "time"

// ApplyStatusRecords marks newly satisfied achievements and tags and credits
// their rewards. Records already unlocked are skipped.
func ApplyStatusRecords(s State, now time.Time, records []StatusRecord) (State, []DomainEvent) {
	fresh := make([]StatusRecord, 0, len(records))
	for _, r := range records {
		if r.ID != "" && !s.HasStatus(r.Kind, r.ID) {
			fresh = append(fresh, r)
		}
	}
	if len(fresh) == 0 {
		return s, nil
	}

	next := s.Clone()
	if next.Achievements == nil {
		next.Achievements = map[string]StatusRecord{}
	}
	if next.Tags == nil {
		next.Tags = map[string]StatusRecord{}
	}
	events := make([]DomainEvent, 0, len(fresh))
	for _, r := range fresh {
		if r.UnlockedAt.IsZero() {
			r.UnlockedAt = now
		}
		if r.Kind == StatusTag {
			next.Tags[r.ID] = r
		} else {
			next.Achievements[r.ID] = r
		}
		if r.RewardCoins > 0 {
			next.earnCoins(r.RewardCoins)
		}
		if r.RewardGems > 0 {
			next.earnGems(r.RewardGems)
		}
		events = append(events, event(EventStatusUnlocked, now, map[string]any{
			"id": r.ID, "kind": string(r.Kind), "coins": r.RewardCoins, "gems": r.RewardGems,
		}))
	}
	return next, events
}

func (s State) HasStatus(kind StatusKind, id string) bool {
	if kind == StatusTag {
		_, ok := s.Tags[id]
		return ok
	}
	_, ok := s.Achievements[id]
	return ok
}
