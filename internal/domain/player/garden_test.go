package player

import (
	"testing"
	"time"
)

func TestPlantSeedPreconditions(t *testing.T) {
	eng, _ := newTestEngine(nil)
	s := NewState(t0)
	mustReject(t, eng.PlantSeed(s, t0), ReasonInsufficientCoins)

	s.Currencies.Coins = GardenSeedCost
	next := mustAccept(t, eng.PlantSeed(s, t0))
	if !next.Garden.Planted || next.Garden.WaterHoursRemaining != GardenInitialWater || next.Currencies.Coins != 0 {
		t.Fatalf("unexpected garden: %+v", next.Garden)
	}
	next.Currencies.Coins = GardenSeedCost
	mustReject(t, eng.PlantSeed(next, t0), ReasonInvalidState)
}

func TestGrowGardenWhileWatered(t *testing.T) {
	eng, _ := newTestEngine(nil)
	s := NewState(t0)
	s.Currencies.Coins = GardenSeedCost
	s = mustAccept(t, eng.PlantSeed(s, t0))

	g := GrowGarden(s, t0.Add(10*time.Hour)).Garden
	if g.WaterHoursRemaining != 14 || g.GrowthCm != 5 || g.TotalGrowthBonus != 25 {
		t.Fatalf("unexpected garden after 10h: %+v", g)
	}
}

func TestGrowGardenDryDoesNotGrow(t *testing.T) {
	eng, _ := newTestEngine(nil)
	s := NewState(t0)
	s.Currencies.Coins = GardenSeedCost
	s = mustAccept(t, eng.PlantSeed(s, t0))

	g := GrowGarden(s, t0.Add(30*time.Hour)).Garden
	if g.WaterHoursRemaining != 0 || g.GrowthCm != 0 {
		t.Fatalf("expected dry garden without growth: %+v", g)
	}
}

func TestGrowGardenCheckpointAvoidsDoubleCounting(t *testing.T) {
	eng, _ := newTestEngine(nil)
	s := NewState(t0)
	s.Currencies.Coins = GardenSeedCost
	s = mustAccept(t, eng.PlantSeed(s, t0))

	stepped := GrowGarden(GrowGarden(s, t0.Add(4*time.Hour)), t0.Add(8*time.Hour)).Garden
	once := GrowGarden(s, t0.Add(8*time.Hour)).Garden
	if stepped.GrowthCm != once.GrowthCm || stepped.WaterHoursRemaining != once.WaterHoursRemaining {
		t.Fatalf("stepped=%+v once=%+v", stepped, once)
	}
}

func TestGrowGardenCapsGrowth(t *testing.T) {
	s := NewState(t0)
	s.Garden.Planted = true
	s.Garden.LastTendedAt = &t0
	s.Garden.WaterHoursRemaining = 1000
	s.Garden.GrowthCm = 99

	g := GrowGarden(s, t0.Add(10*time.Hour)).Garden
	if g.GrowthCm != GardenMaxGrowthCm || g.TotalGrowthBonus != GardenMaxGrowthCm*GardenBonusPerCm {
		t.Fatalf("expected growth capped: %+v", g)
	}
}

func TestBuyWater(t *testing.T) {
	eng, _ := newTestEngine(nil)
	mustReject(t, eng.BuyWater(NewState(t0), t0, 12), ReasonInvalidState)

	s := NewState(t0)
	s.Currencies.Coins = GardenSeedCost + 250
	s = mustAccept(t, eng.PlantSeed(s, t0))
	mustReject(t, eng.BuyWater(s, t0, 0), ReasonInvalidParams)
	mustReject(t, eng.BuyWater(s, t0, 13), ReasonInsufficientCoins)

	later := t0.Add(4 * time.Hour)
	next := mustAccept(t, eng.BuyWater(s, later, 12))
	if next.Currencies.Coins != 0 {
		t.Fatalf("expected 250 coin cost, left %d", next.Currencies.Coins)
	}
	// 24 - 4 drained, +12 bought, 4h of growth settled first
	if next.Garden.WaterHoursRemaining != 32 || next.Garden.GrowthCm != 2 {
		t.Fatalf("unexpected garden after watering: %+v", next.Garden)
	}
	if next.Garden.LastWatered == nil || !next.Garden.LastWatered.Equal(later) {
		t.Fatalf("expected last watered at %v", later)
	}
}

func TestWaterCostLinear(t *testing.T) {
	if got := WaterCost(500, 24); got != 500 {
		t.Fatalf("WaterCost(24h) = %d", got)
	}
	if got := WaterCost(500, 6); got != 125 {
		t.Fatalf("WaterCost(6h) = %d", got)
	}
}
