package player

import (
	"slices"
	"time"
)

// PurchaseRelic buys a market listing with gems and equips it straight away.
func (e Engine) PurchaseRelic(s State, now time.Time, id string) Outcome {
	i := slices.IndexFunc(s.Market.Items, func(r Relic) bool { return r.ID == id })
	if i < 0 {
		return reject(s, ReasonNotFound)
	}
	relic := s.Market.Items[i]
	if s.Currencies.Gems < relic.Cost {
		return reject(s, ReasonInsufficientGems)
	}
	if len(s.Inventory.EquippedRelicIDs) >= MaxEquippedRelics {
		return reject(s, ReasonRelicSlotsFull)
	}
	next := s.Clone()
	next.Currencies.Gems -= relic.Cost
	next.Inventory.Relics = append(next.Inventory.Relics, relic)
	next.Inventory.EquippedRelicIDs = append(next.Inventory.EquippedRelicIDs, relic.ID)
	next.Market.Items = slices.Delete(next.Market.Items, i, i+1)
	out := accept(next, event(EventRelicPurchased, now, map[string]any{"item_id": relic.ID, "cost": relic.Cost}))
	out.Reward = &Reward{Relics: []Relic{relic}}
	return out
}

func (e Engine) UpgradeRelic(s State, now time.Time, id string) Outcome {
	return e.UpgradeItem(s, now, KindRelic, id)
}

func (e Engine) EquipRelic(s State, now time.Time, id string) Outcome {
	if s.relicIndex(id) < 0 {
		return reject(s, ReasonNotFound)
	}
	if s.IsEquipped(KindRelic, id) {
		return reject(s, ReasonInvalidState)
	}
	if len(s.Inventory.EquippedRelicIDs) >= MaxEquippedRelics {
		return reject(s, ReasonRelicSlotsFull)
	}
	next := s.Clone()
	next.Inventory.EquippedRelicIDs = append(next.Inventory.EquippedRelicIDs, id)
	return accept(next, event(EventItemEquipped, now, map[string]any{"kind": string(KindRelic), "item_id": id}))
}

func (e Engine) UnequipRelic(s State, now time.Time, id string) Outcome {
	if !s.IsEquipped(KindRelic, id) {
		return reject(s, ReasonNotFound)
	}
	next := s.Clone()
	next.Inventory.EquippedRelicIDs = slices.DeleteFunc(next.Inventory.EquippedRelicIDs, func(v string) bool { return v == id })
	return accept(next, event(EventItemUnequipped, now, map[string]any{"kind": string(KindRelic), "item_id": id}))
}

// SellRelic removes the relic from both the owned and equipped sets.
func (e Engine) SellRelic(s State, now time.Time, id string) Outcome {
	i := s.relicIndex(id)
	if i < 0 {
		return reject(s, ReasonNotFound)
	}
	price := s.Inventory.Relics[i].SellPrice
	next := s.Clone()
	next.removeItem(KindRelic, id)
	next.Currencies.Coins += price
	next.Statistics.ItemsSold++
	return accept(next, event(EventItemSold, now, map[string]any{"kind": string(KindRelic), "item_id": id, "price": price}))
}
