package player

import (
	"fmt"
	"math"
	"time"
)

// StartCombat moves the document from Idle into an encounter with an enemy
// scaled to the current zone.
func (e Engine) StartCombat(s State, now time.Time) Outcome {
	if s.InCombat {
		return reject(s, ReasonInvalidState)
	}
	enemy := e.Content.Enemy(s.Zone)
	next := s.Clone()
	next.CurrentEnemy = &enemy
	next.InCombat = true
	next.HasUsedRevival = false
	next.CombatLog = []string{fmt.Sprintf("You encounter a %s in Zone %d!", enemy.Name, enemy.Zone)}
	return accept(next, event(EventCombatStarted, now, map[string]any{
		"enemy": enemy.Name, "zone": enemy.Zone, "enemy_hp": enemy.HP,
	}))
}

// ResolveTurn applies one answered question. A hit damages the enemy, a miss
// lets the enemy strike back. Equipped gear wears by one point either way.
func (e Engine) ResolveTurn(s State, now time.Time, hit bool, category string) Outcome {
	if !s.InCombat || s.CurrentEnemy == nil {
		return reject(s, ReasonInvalidState)
	}

	next := s.Clone()
	stats := e.Stats(next)
	enemy := *next.CurrentEnemy
	events := make([]DomainEvent, 0, 3)

	next.Statistics.TotalQuestionsAnswered++
	if category != "" {
		acc := next.Statistics.AccuracyByCategory[category]
		acc.Total++
		if hit {
			acc.Correct++
		}
		next.Statistics.AccuracyByCategory[category] = acc
	}

	turn := map[string]any{"hit": hit, "category": category}
	if hit {
		damage := Damage(stats.Atk, enemy.Def)
		enemy.HP = max(0, enemy.HP-damage)
		next.appendLog(fmt.Sprintf("You deal %d damage to the %s!", damage, enemy.Name))
		next.KnowledgeStreak = advanceStreak(next.KnowledgeStreak)
		next.Statistics.CorrectAnswers++
		next.Statistics.TotalDamageDealt += damage
		next.Statistics.LongestStreak = max(next.Statistics.LongestStreak, next.KnowledgeStreak.Best)
		turn["damage_dealt"] = damage
		turn["enemy_hp"] = enemy.HP

		next.CurrentEnemy = &enemy
		if enemy.HP <= 0 {
			events = append(events, e.victory(&next, now, enemy, s.Zone)...)
		}
	} else {
		damage := Damage(enemy.Atk, stats.Def)
		stats.HP = max(0, stats.HP-damage)
		next.appendLog(fmt.Sprintf("The %s attacks you for %d damage!", enemy.Name, damage))
		next.KnowledgeStreak.Current = 0
		next.KnowledgeStreak.Multiplier = 1
		next.Statistics.TotalDamageTaken += damage
		turn["damage_taken"] = damage
		turn["hp"] = stats.HP

		if stats.HP <= 0 {
			if !next.HasUsedRevival {
				stats.HP = int(math.Floor(float64(stats.MaxHP) * RevivalHPRatio))
				next.HasUsedRevival = true
				next.Statistics.Revivals++
				next.appendLog("You have been revived with 50% HP!")
				events = append(events, event(EventRevived, now, map[string]any{"hp": stats.HP}))
			} else {
				next.appendLog("You have been defeated!")
				next.InCombat = false
				next.CurrentEnemy = nil
				next.Statistics.TotalDeaths++
				stats.HP = stats.MaxHP
				events = append(events, event(EventDefeat, now, map[string]any{"enemy": enemy.Name, "zone": next.Zone}))
			}
		}
		next.Stats.HP = stats.HP
	}

	wearEquipment(&next)
	return accept(next, append([]DomainEvent{event(EventTurnResolved, now, turn)}, events...)...)
}

func (e Engine) victory(next *State, now time.Time, enemy Enemy, zone int) []DomainEvent {
	next.appendLog(fmt.Sprintf("You defeated the %s!", enemy.Name))

	mult := next.KnowledgeStreak.Multiplier
	coins := int(math.Floor(float64(10+zone*2) * mult))
	gems := int(math.Floor(float64(zone/5+1) * mult))
	next.earnCoins(coins)
	next.earnGems(gems)
	next.Zone = zone + 1
	next.InCombat = false
	next.CurrentEnemy = nil
	next.Statistics.TotalVictories++
	next.Statistics.ZonesReached = max(next.Statistics.ZonesReached, next.Zone)

	events := []DomainEvent{event(EventVictory, now, map[string]any{
		"enemy": enemy.Name, "zone": next.Zone, "coins": coins, "gems": gems,
	})}

	for _, level := range GrantExperience(&next.Progression, 25+zone*5) {
		next.appendLog(fmt.Sprintf("Level up! You are now level %d!", level))
		events = append(events, event(EventLevelUp, now, map[string]any{"level": level}))
	}
	next.appendLog(fmt.Sprintf("You earned %d coins and %d gems!", coins, gems))

	if next.Zone >= PremiumZone && !next.Premium {
		next.Premium = true
		next.appendLog("Premium status unlocked!")
		events = append(events, event(EventPremiumUnlocked, now, nil))
	}

	if zone >= DropMinZone && e.chance(DropChance) {
		var name string
		if e.chance(0.5) {
			w := e.Content.Weapon(next.Premium, "", false)
			next.addWeapon(w)
			name = w.Name
		} else {
			a := e.Content.Armor(next.Premium, "", false)
			next.addArmor(a)
			name = a.Name
		}
		next.appendLog(fmt.Sprintf("The %s dropped a %s!", enemy.Name, name))
	}
	return events
}

// Damage is the attacker's surplus over the defender, never below one.
func Damage(atk, def int) int {
	return max(1, atk-def)
}

// StreakMultiplier stops growing once the streak reaches StreakCap.
func StreakMultiplier(streak int) float64 {
	return 1 + float64(min(max(streak, 0), StreakCap))*StreakStepMultiplier
}

func advanceStreak(k KnowledgeStreak) KnowledgeStreak {
	k.Current++
	k.Best = max(k.Best, k.Current)
	k.Multiplier = StreakMultiplier(k.Current)
	return k
}

// ExperienceToNext is the threshold for leaving level.
func ExperienceToNext(level int) int {
	return int(math.Floor(BaseExperienceToNext * math.Pow(ExperienceGrowth, float64(level-1))))
}

// GrantExperience adds exp and levels up as many times as it covers, carrying
// the remainder. It returns each level reached.
func GrantExperience(p *Progression, exp int) []int {
	if p.ExperienceToNext <= 0 {
		p.ExperienceToNext = ExperienceToNext(max(p.Level, 1))
	}
	p.Experience += exp
	var reached []int
	for p.Experience >= p.ExperienceToNext {
		p.Experience -= p.ExperienceToNext
		p.Level++
		p.SkillPoints++
		p.ExperienceToNext = ExperienceToNext(p.Level)
		reached = append(reached, p.Level)
	}
	return reached
}

func wearEquipment(s *State) {
	if id := s.Inventory.CurrentWeaponID; id != "" {
		if i := s.weaponIndex(id); i >= 0 {
			w := &s.Inventory.Weapons[i]
			w.Durability = max(0, w.Durability-1)
		}
	}
	if id := s.Inventory.CurrentArmorID; id != "" {
		if i := s.armorIndex(id); i >= 0 {
			a := &s.Inventory.Armor[i]
			a.Durability = max(0, a.Durability-1)
		}
	}
}

// ClearStaleEncounter drops an encounter left open by a previous session.
func ClearStaleEncounter(s State) State {
	if !s.InCombat && s.CurrentEnemy == nil {
		return s
	}
	s.InCombat = false
	s.CurrentEnemy = nil
	s.HasUsedRevival = false
	s.appendLog("The previous encounter ended while you were away.")
	return s
}
