package player

import "slices"

func (s State) EquippedWeapon() (Weapon, bool) {
	if s.Inventory.CurrentWeaponID == "" {
		return Weapon{}, false
	}
	i := s.weaponIndex(s.Inventory.CurrentWeaponID)
	if i < 0 {
		return Weapon{}, false
	}
	return s.Inventory.Weapons[i], true
}

func (s State) EquippedArmor() (Armor, bool) {
	if s.Inventory.CurrentArmorID == "" {
		return Armor{}, false
	}
	i := s.armorIndex(s.Inventory.CurrentArmorID)
	if i < 0 {
		return Armor{}, false
	}
	return s.Inventory.Armor[i], true
}

func (s State) EquippedRelics() []Relic {
	out := make([]Relic, 0, len(s.Inventory.EquippedRelicIDs))
	for _, id := range s.Inventory.EquippedRelicIDs {
		if i := s.relicIndex(id); i >= 0 {
			out = append(out, s.Inventory.Relics[i])
		}
	}
	return out
}

func (s State) IsEquipped(kind ItemKind, id string) bool {
	switch kind {
	case KindWeapon:
		return id != "" && s.Inventory.CurrentWeaponID == id
	case KindArmor:
		return id != "" && s.Inventory.CurrentArmorID == id
	case KindRelic:
		return slices.Contains(s.Inventory.EquippedRelicIDs, id)
	}
	return false
}

func (s State) weaponIndex(id string) int {
	return slices.IndexFunc(s.Inventory.Weapons, func(w Weapon) bool { return w.ID == id })
}

func (s State) armorIndex(id string) int {
	return slices.IndexFunc(s.Inventory.Armor, func(a Armor) bool { return a.ID == id })
}

func (s State) relicIndex(id string) int {
	return slices.IndexFunc(s.Inventory.Relics, func(r Relic) bool { return r.ID == id })
}

// addWeapon also records the item in the collection book.
func (s *State) addWeapon(w Weapon) {
	s.Inventory.Weapons = append(s.Inventory.Weapons, w)
	if !s.CollectionBook.Weapons[w.Name] {
		s.CollectionBook.Weapons[w.Name] = true
		s.CollectionBook.TotalWeaponsFound++
	}
	s.CollectionBook.RarityStats[w.Rarity]++
	s.Statistics.ItemsCollected++
}

func (s *State) addArmor(a Armor) {
	s.Inventory.Armor = append(s.Inventory.Armor, a)
	if !s.CollectionBook.Armor[a.Name] {
		s.CollectionBook.Armor[a.Name] = true
		s.CollectionBook.TotalArmorFound++
	}
	s.CollectionBook.RarityStats[a.Rarity]++
	s.Statistics.ItemsCollected++
}

func (s *State) earnCoins(n int) {
	s.Currencies.Coins += n
	s.Statistics.CoinsEarned += n
}

func (s *State) earnGems(n int) {
	s.Currencies.Gems += n
	s.Statistics.GemsEarned += n
}

// appendLog never writes into a backing array shared with another document.
func (s *State) appendLog(lines ...string) {
	s.CombatLog = append(slices.Clip(s.CombatLog), lines...)
	if n := len(s.CombatLog); n > CombatLogLimit {
		s.CombatLog = append([]string(nil), s.CombatLog[n-CombatLogLimit:]...)
	}
}

func nextUpgradeCost(cost int) int {
	return int(float64(cost) * UpgradeCostGrowth)
}
