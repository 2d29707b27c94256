package player

import "testing"

func TestApplyStatusRecordsCreditsOnce(t *testing.T) {
	s := NewState(t0)
	records := []StatusRecord{
		{ID: "first_blood", Kind: StatusAchievement, Name: "First Blood", RewardCoins: 50, RewardGems: 2},
		{ID: "scholar", Kind: StatusTag, Name: "Scholar"},
	}

	next, events := ApplyStatusRecords(s, t0, records)
	if len(events) != 2 {
		t.Fatalf("expected 2 unlock events, got %d", len(events))
	}
	if next.Currencies.Coins != StartingCoins+50 || next.Currencies.Gems != 2 {
		t.Fatalf("rewards not credited: %+v", next.Currencies)
	}
	if got := next.Achievements["first_blood"]; !got.UnlockedAt.Equal(t0) {
		t.Fatalf("unlock time not stamped: %+v", got)
	}
	if _, ok := next.Tags["scholar"]; !ok {
		t.Fatalf("tag not recorded")
	}
	if len(s.Achievements) != 0 {
		t.Fatalf("input document was mutated")
	}

	again, events := ApplyStatusRecords(next, t0, records)
	if len(events) != 0 || again.Currencies != next.Currencies {
		t.Fatalf("records applied twice")
	}
}
