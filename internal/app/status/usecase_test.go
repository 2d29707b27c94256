package status

import (
	"io"
	"log"
	"testing"
	"time"

	"hugoland/internal/app/store"
	"hugoland/internal/domain/catalog"
	"hugoland/internal/domain/player"
)

var now = time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

func newStore(t *testing.T, s player.State) (*store.Store, player.Engine) {
	t.Helper()
	eng := player.Engine{Catalog: catalog.Default()}
	return store.New(s, store.Options{
		Engine: eng,
		Logger: log.New(io.Discard, "", 0),
		Now:    func() time.Time { return now },
	}), eng
}

func TestUseCase_ReportsDerivedValues(t *testing.T) {
	s := player.NewState(now)
	s.Research.Level = 2
	s.Offline.OfflineCoins = 40
	s.Offline.OfflineGems = 4
	s.Offline.OfflineSeconds = 14400
	s.Market.NextRefresh = now.Add(90 * time.Second)
	st, eng := newStore(t, s)

	resp := UseCase{Store: st, Engine: eng, Now: func() time.Time { return now }}.Execute()
	if resp.Stats != eng.Stats(s) {
		t.Fatalf("expected derived stats %+v, got %+v", eng.Stats(s), resp.Stats)
	}
	if resp.PendingOffline.Coins != 40 || resp.PendingOffline.Gems != 4 || resp.PendingOffline.Seconds != 14400 {
		t.Fatalf("unexpected pending offline: %+v", resp.PendingOffline)
	}
	if resp.UpgradeCosts.Research != player.ResearchCost(2) {
		t.Fatalf("expected research cost %d, got %d", player.ResearchCost(2), resp.UpgradeCosts.Research)
	}
	if resp.NextMarketIn != 90 {
		t.Fatalf("expected 90s to market refresh, got %d", resp.NextMarketIn)
	}
	if resp.ActiveBuff != nil || resp.PendingDaily != nil {
		t.Fatalf("expected no buff and no daily reward")
	}
}

func TestUseCase_ReportsActiveBuffAndDaily(t *testing.T) {
	s := player.NewState(now)
	s.Skills.ActiveMenuSkill = &player.MenuSkill{
		Type:        "coin_boost",
		Name:        "Coin Boost",
		ActivatedAt: now.Add(-time.Hour),
		ExpiresAt:   now.Add(30 * time.Minute),
	}
	s.DailyRewards.AvailableReward = &player.DailyReward{Day: 3, Coins: 125, Gems: 6}
	st, eng := newStore(t, s)

	resp := UseCase{Store: st, Engine: eng, Now: func() time.Time { return now }}.Execute()
	if resp.ActiveBuff == nil || resp.ActiveBuff.RemainingSeconds != 1800 {
		t.Fatalf("expected 1800s of buff remaining, got %+v", resp.ActiveBuff)
	}
	if resp.PendingDaily == nil || resp.PendingDaily.Day != 3 {
		t.Fatalf("expected day 3 reward pending, got %+v", resp.PendingDaily)
	}
}

func TestUseCase_ExpiredBuffIsNotReported(t *testing.T) {
	s := player.NewState(now)
	s.Skills.ActiveMenuSkill = &player.MenuSkill{Type: "coin_boost", ExpiresAt: now}
	st, eng := newStore(t, s)

	resp := UseCase{Store: st, Engine: eng, Now: func() time.Time { return now }}.Execute()
	if resp.ActiveBuff != nil {
		t.Fatalf("buff expiring at now must not be active")
	}
}

func TestUseCase_FillsBuffDetailsFromCatalog(t *testing.T) {
	s := player.NewState(now)
	s.Skills.ActiveMenuSkill = &player.MenuSkill{Type: "treasurer", Name: "Treasurer", ExpiresAt: now.Add(10 * time.Minute)}
	st, eng := newStore(t, s)

	resp := UseCase{Store: st, Engine: eng, Now: func() time.Time { return now }}.Execute()
	if resp.ActiveBuff == nil {
		t.Fatalf("expected active buff")
	}
	if resp.ActiveBuff.TotalHours != 0.5 || resp.ActiveBuff.Description == "" {
		t.Fatalf("expected catalog hours and description, got %+v", resp.ActiveBuff)
	}
}

func TestUseCase_ReportsSkillTreeRanks(t *testing.T) {
	s := player.NewState(now)
	s.Progression.UnlockedSkills = []string{"combat_mastery", "combat_mastery"}
	s.Progression.SkillPoints = 2
	st, eng := newStore(t, s)

	resp := UseCase{Store: st, Engine: eng, Now: func() time.Time { return now }}.Execute()
	if len(resp.SkillTree) != len(eng.Catalog.SkillTree) {
		t.Fatalf("expected %d skill tree nodes, got %d", len(eng.Catalog.SkillTree), len(resp.SkillTree))
	}
	nodes := map[string]SkillTreeNode{}
	for _, n := range resp.SkillTree {
		nodes[n.ID] = n
	}
	if n := nodes["combat_mastery"]; n.Rank != 2 || !n.Unlocked || !n.Affordable {
		t.Fatalf("unexpected combat_mastery node: %+v", n)
	}
	if n := nodes["health_regeneration"]; n.Unlocked || n.Affordable {
		t.Fatalf("health_regeneration costs 3 and is not unlocked: %+v", n)
	}
}
