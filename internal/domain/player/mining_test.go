package player

import "testing"

func TestMineGem(t *testing.T) {
	eng, _ := newTestEngine(&scriptedRand{floats: []float64{0.5, 0.01}})
	s := NewState(t0)

	s = mustAccept(t, eng.MineGem(s, t0))
	s = mustAccept(t, eng.MineGem(s, t0))
	if s.Currencies.Gems != 1 || s.Currencies.ShinyGems != 1 {
		t.Fatalf("unexpected currencies: %+v", s.Currencies)
	}
	if s.Statistics.GemsMined != 1 || s.Statistics.ShinyGemsMined != 1 {
		t.Fatalf("unexpected mining statistics: %+v", s.Statistics)
	}
}

func TestExchangeShinyGems(t *testing.T) {
	eng, _ := newTestEngine(nil)
	s := NewState(t0)
	s.Currencies.ShinyGems = 2

	mustReject(t, eng.ExchangeShinyGems(s, t0, 3), ReasonInsufficientShiny)
	mustReject(t, eng.ExchangeShinyGems(s, t0, 0), ReasonInvalidParams)
	next := mustAccept(t, eng.ExchangeShinyGems(s, t0, 2))
	if next.Currencies.ShinyGems != 0 || next.Currencies.Gems != 20 {
		t.Fatalf("unexpected exchange: %+v", next.Currencies)
	}
}
