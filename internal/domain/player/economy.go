package player

import (
	"math"
	"slices"
	"time"
)

// OpenChest debits cost coins and rolls a rarity, then either a gem payout or
// one item (two from 400 coins up) plus bonus gems.
func (e Engine) OpenChest(s State, now time.Time, cost int) Outcome {
	if cost <= 0 {
		return reject(s, ReasonInvalidParams)
	}
	if s.Currencies.Coins < cost {
		return reject(s, ReasonInsufficientCoins)
	}

	next := s.Clone()
	next.Currencies.Coins -= cost
	next.Statistics.ChestsOpened++
	reward := &Reward{}

	rarity := e.rollRarity(e.Content.ChestRarityWeights(cost))
	if e.chance(ChestGemOnlyChance) {
		gems := e.Catalog.GemOnlyAmount(cost)
		next.earnGems(gems)
		reward.Gems = gems
	} else {
		count := 1
		if cost >= ChestDoubleItemCost {
			count = 2
		}
		for range count {
			isWeapon := e.chance(0.5)
			enchanted := e.chance(ChestEnchantChance)
			if isWeapon {
				w := e.Content.Weapon(false, rarity, enchanted)
				next.addWeapon(w)
				reward.Weapons = append(reward.Weapons, w)
			} else {
				a := e.Content.Armor(false, rarity, enchanted)
				next.addArmor(a)
				reward.Armor = append(reward.Armor, a)
			}
		}
		bonus := e.Rand.IntN(ChestBonusGemsSpread) + ChestBonusGemsMin
		next.earnGems(bonus)
		reward.Gems = bonus
	}

	out := accept(next, event(EventChestOpened, now, map[string]any{
		"cost":   cost,
		"rarity": string(rarity),
		"gems":   reward.Gems,
		"items":  len(reward.Weapons) + len(reward.Armor),
	}))
	out.Reward = reward
	return out
}

// rollRarity samples weights cumulatively. An empty or zero table yields common.
func (e Engine) rollRarity(weights []float64) Rarity {
	var total float64
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return RarityCommon
	}
	r := e.Rand.Float64() * total
	var cumulative float64
	for i, w := range weights {
		if i >= len(Rarities) {
			break
		}
		if w <= 0 {
			continue
		}
		cumulative += w
		if r < cumulative {
			return Rarities[i]
		}
	}
	return RarityCommon
}

func (e Engine) PurchaseMythical(s State, now time.Time, kind ItemKind) Outcome {
	if kind != KindWeapon && kind != KindArmor {
		return reject(s, ReasonInvalidParams)
	}
	if s.Currencies.Coins < MythicalCost {
		return reject(s, ReasonInsufficientCoins)
	}

	next := s.Clone()
	next.Currencies.Coins -= MythicalCost
	reward := &Reward{}
	var id string
	if kind == KindWeapon {
		w := e.Content.Weapon(false, RarityMythical, false)
		next.addWeapon(w)
		reward.Weapons = []Weapon{w}
		id = w.ID
	} else {
		a := e.Content.Armor(false, RarityMythical, false)
		next.addArmor(a)
		reward.Armor = []Armor{a}
		id = a.ID
	}
	out := accept(next, event(EventMythicalPurchased, now, map[string]any{"kind": string(kind), "item_id": id}))
	out.Reward = reward
	return out
}

// UpgradeItem spends gems to raise an owned weapon, armor or relic by one level.
func (e Engine) UpgradeItem(s State, now time.Time, kind ItemKind, id string) Outcome {
	cost, ok := s.upgradeCost(kind, id)
	if !ok {
		return reject(s, ReasonNotFound)
	}
	if s.Currencies.Gems < cost {
		return reject(s, ReasonInsufficientGems)
	}
	next := s.Clone()
	level := next.upgrade(kind, id)
	return accept(next, event(EventItemUpgraded, now, map[string]any{
		"kind": string(kind), "item_id": id, "level": level, "cost": cost,
	}))
}

// BulkUpgrade upgrades every listed item once, or nothing when the total cost
// exceeds the gem balance.
func (e Engine) BulkUpgrade(s State, now time.Time, kind ItemKind, ids []string) Outcome {
	ids = dedupe(ids)
	if len(ids) == 0 {
		return reject(s, ReasonInvalidParams)
	}
	total := 0
	for _, id := range ids {
		cost, ok := s.upgradeCost(kind, id)
		if !ok {
			return reject(s, ReasonNotFound)
		}
		total += cost
	}
	if s.Currencies.Gems < total {
		return reject(s, ReasonInsufficientGems)
	}
	next := s.Clone()
	for _, id := range ids {
		next.upgrade(kind, id)
	}
	return accept(next, event(EventItemsUpgraded, now, map[string]any{
		"kind": string(kind), "item_ids": ids, "cost": total,
	}))
}

func (e Engine) SellItem(s State, now time.Time, kind ItemKind, id string) Outcome {
	if kind != KindWeapon && kind != KindArmor {
		return reject(s, ReasonInvalidParams)
	}
	price, reason := s.sellable(kind, id)
	if reason != "" {
		return reject(s, reason)
	}
	next := s.Clone()
	next.removeItem(kind, id)
	next.Currencies.Coins += price
	next.Statistics.ItemsSold++
	return accept(next, event(EventItemSold, now, map[string]any{
		"kind": string(kind), "item_id": id, "price": price,
	}))
}

// BulkSell sells every listed item or none: one missing or equipped id rejects the batch.
func (e Engine) BulkSell(s State, now time.Time, kind ItemKind, ids []string) Outcome {
	if kind != KindWeapon && kind != KindArmor {
		return reject(s, ReasonInvalidParams)
	}
	ids = dedupe(ids)
	if len(ids) == 0 {
		return reject(s, ReasonInvalidParams)
	}
	total := 0
	for _, id := range ids {
		price, reason := s.sellable(kind, id)
		if reason != "" {
			return reject(s, reason)
		}
		total += price
	}
	next := s.Clone()
	for _, id := range ids {
		next.removeItem(kind, id)
	}
	next.Currencies.Coins += total
	next.Statistics.ItemsSold += len(ids)
	return accept(next, event(EventItemsSold, now, map[string]any{
		"kind": string(kind), "item_ids": ids, "price": total,
	}))
}

func (e Engine) UpgradeResearch(s State, now time.Time) Outcome {
	cost := ResearchCost(s.Research.Level)
	if s.Currencies.Coins < cost {
		return reject(s, ReasonInsufficientCoins)
	}
	next := s.Clone()
	next.Currencies.Coins -= cost
	next.Research.Level++
	next.Research.TotalSpent += cost
	next.Statistics.TotalResearchSpent += cost
	return accept(next, event(EventResearchUpgraded, now, map[string]any{
		"level": next.Research.Level, "cost": cost,
	}))
}

func ResearchCost(level int) int {
	return ResearchBaseCost + level*ResearchCostPerLevel
}

func (e Engine) EquipWeapon(s State, now time.Time, id string) Outcome {
	if s.weaponIndex(id) < 0 {
		return reject(s, ReasonNotFound)
	}
	next := s.Clone()
	next.Inventory.CurrentWeaponID = id
	return accept(next, event(EventItemEquipped, now, map[string]any{"kind": string(KindWeapon), "item_id": id}))
}

func (e Engine) EquipArmor(s State, now time.Time, id string) Outcome {
	if s.armorIndex(id) < 0 {
		return reject(s, ReasonNotFound)
	}
	next := s.Clone()
	next.Inventory.CurrentArmorID = id
	return accept(next, event(EventItemEquipped, now, map[string]any{"kind": string(KindArmor), "item_id": id}))
}

// DiscardItem drops an unequipped weapon or armor without payout.
func (e Engine) DiscardItem(s State, now time.Time, kind ItemKind, id string) Outcome {
	if kind != KindWeapon && kind != KindArmor {
		return reject(s, ReasonInvalidParams)
	}
	if _, reason := s.sellable(kind, id); reason != "" {
		return reject(s, reason)
	}
	next := s.Clone()
	next.removeItem(kind, id)
	return accept(next, event(EventItemDiscarded, now, map[string]any{"kind": string(kind), "item_id": id}))
}

func (s State) upgradeCost(kind ItemKind, id string) (int, bool) {
	switch kind {
	case KindWeapon:
		if i := s.weaponIndex(id); i >= 0 {
			return s.Inventory.Weapons[i].UpgradeCost, true
		}
	case KindArmor:
		if i := s.armorIndex(id); i >= 0 {
			return s.Inventory.Armor[i].UpgradeCost, true
		}
	case KindRelic:
		if i := s.relicIndex(id); i >= 0 {
			return s.Inventory.Relics[i].UpgradeCost, true
		}
	}
	return 0, false
}

// upgrade assumes the item exists and is affordable. Equipped items are
// referenced by id, so the equipped copy sees the new level.
func (s *State) upgrade(kind ItemKind, id string) int {
	switch kind {
	case KindWeapon:
		w := &s.Inventory.Weapons[s.weaponIndex(id)]
		s.Currencies.Gems -= w.UpgradeCost
		w.Level++
		w.UpgradeCost = nextUpgradeCost(w.UpgradeCost)
		s.Statistics.ItemsUpgraded++
		return w.Level
	case KindArmor:
		a := &s.Inventory.Armor[s.armorIndex(id)]
		s.Currencies.Gems -= a.UpgradeCost
		a.Level++
		a.UpgradeCost = nextUpgradeCost(a.UpgradeCost)
		s.Statistics.ItemsUpgraded++
		return a.Level
	default:
		r := &s.Inventory.Relics[s.relicIndex(id)]
		s.Currencies.Gems -= r.UpgradeCost
		r.Level++
		r.UpgradeCost = nextUpgradeCost(r.UpgradeCost)
		return r.Level
	}
}

func (s State) sellable(kind ItemKind, id string) (int, RejectReason) {
	switch kind {
	case KindWeapon:
		i := s.weaponIndex(id)
		if i < 0 {
			return 0, ReasonNotFound
		}
		if s.IsEquipped(KindWeapon, id) {
			return 0, ReasonEquipped
		}
		return s.Inventory.Weapons[i].SellPrice, ""
	case KindArmor:
		i := s.armorIndex(id)
		if i < 0 {
			return 0, ReasonNotFound
		}
		if s.IsEquipped(KindArmor, id) {
			return 0, ReasonEquipped
		}
		return s.Inventory.Armor[i].SellPrice, ""
	}
	return 0, ReasonInvalidParams
}

func (s *State) removeItem(kind ItemKind, id string) {
	switch kind {
	case KindWeapon:
		s.Inventory.Weapons = slices.DeleteFunc(s.Inventory.Weapons, func(w Weapon) bool { return w.ID == id })
	case KindArmor:
		s.Inventory.Armor = slices.DeleteFunc(s.Inventory.Armor, func(a Armor) bool { return a.ID == id })
	case KindRelic:
		s.Inventory.Relics = slices.DeleteFunc(s.Inventory.Relics, func(r Relic) bool { return r.ID == id })
		s.Inventory.EquippedRelicIDs = slices.DeleteFunc(s.Inventory.EquippedRelicIDs, func(v string) bool { return v == id })
	}
}

func dedupe(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != "" && !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}

func floorInt(v float64) int {
	return int(math.Floor(v))
}
