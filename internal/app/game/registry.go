package game

import (
	"sort"
	"time"

	"hugoland/internal/app/store"
	"hugoland/internal/domain/player"
)

const (
	OpOpenChest        = "open_chest"
	OpPurchaseMythical = "purchase_mythical"
	OpUpgradeItem      = "upgrade_item"
	OpSellItem         = "sell_item"
	OpBulkSell         = "bulk_sell"
	OpBulkUpgrade      = "bulk_upgrade"
	OpUpgradeResearch  = "upgrade_research"
	OpEquipWeapon      = "equip_weapon"
	OpEquipArmor       = "equip_armor"
	OpDiscardItem      = "discard_item"
	OpPlantSeed        = "plant_seed"
	OpBuyWater         = "buy_water"
	OpPurchaseRelic    = "purchase_relic"
	OpUpgradeRelic     = "upgrade_relic"
	OpEquipRelic       = "equip_relic"
	OpUnequipRelic     = "unequip_relic"
	OpSellRelic        = "sell_relic"
	OpStartCombat      = "start_combat"
	OpResolveTurn      = "resolve_turn"
	OpRollSkill        = "roll_skill"
	OpClaimOffline     = "claim_offline"
	OpClaimDaily       = "claim_daily"
	OpUpgradeSkill     = "upgrade_skill"
	OpPrestige         = "prestige"
	OpMineGem          = "mine_gem"
	OpExchangeShiny    = "exchange_shiny_gems"
	OpRefreshMarket    = "refresh_market"
)

// OpSpec binds an operation name to its parameter check and transform.
type OpSpec struct {
	Name     string
	Validate func(Params) bool
	Build    func(e player.Engine, p Params) store.TransformFunc
}

func noParams(Params) bool { return true }

func hasID(p Params) bool { return p.ID != "" }

func hasGearKind(p Params) bool { return p.Kind == player.KindWeapon || p.Kind == player.KindArmor }

func hasGearItem(p Params) bool { return hasGearKind(p) && hasID(p) }

func hasUpgradable(p Params) bool {
	return (hasGearKind(p) || p.Kind == player.KindRelic) && hasID(p)
}

func plain(fn func(player.Engine) store.TransformFunc) func(player.Engine, Params) store.TransformFunc {
	return func(e player.Engine, _ Params) store.TransformFunc { return fn(e) }
}

func byID(fn func(e player.Engine, s player.State, now time.Time, id string) player.Outcome) func(player.Engine, Params) store.TransformFunc {
	return func(e player.Engine, p Params) store.TransformFunc {
		return func(s player.State, now time.Time) player.Outcome { return fn(e, s, now, p.ID) }
	}
}

func registry() map[string]OpSpec {
	specs := []OpSpec{
		{Name: OpOpenChest, Validate: func(p Params) bool { return p.Cost > 0 }, Build: func(e player.Engine, p Params) store.TransformFunc {
			return func(s player.State, now time.Time) player.Outcome { return e.OpenChest(s, now, p.Cost) }
		}},
		{Name: OpPurchaseMythical, Validate: hasGearKind, Build: func(e player.Engine, p Params) store.TransformFunc {
			return func(s player.State, now time.Time) player.Outcome { return e.PurchaseMythical(s, now, p.Kind) }
		}},
		{Name: OpUpgradeItem, Validate: hasUpgradable, Build: func(e player.Engine, p Params) store.TransformFunc {
			return func(s player.State, now time.Time) player.Outcome { return e.UpgradeItem(s, now, p.Kind, p.ID) }
		}},
		{Name: OpSellItem, Validate: hasGearItem, Build: func(e player.Engine, p Params) store.TransformFunc {
			return func(s player.State, now time.Time) player.Outcome { return e.SellItem(s, now, p.Kind, p.ID) }
		}},
		{Name: OpBulkSell, Validate: func(p Params) bool { return hasGearKind(p) && len(p.IDs) > 0 }, Build: func(e player.Engine, p Params) store.TransformFunc {
			return func(s player.State, now time.Time) player.Outcome { return e.BulkSell(s, now, p.Kind, p.IDs) }
		}},
		{Name: OpBulkUpgrade, Validate: func(p Params) bool { return hasGearKind(p) && len(p.IDs) > 0 }, Build: func(e player.Engine, p Params) store.TransformFunc {
			return func(s player.State, now time.Time) player.Outcome { return e.BulkUpgrade(s, now, p.Kind, p.IDs) }
		}},
		{Name: OpUpgradeResearch, Validate: noParams, Build: plain(func(e player.Engine) store.TransformFunc { return e.UpgradeResearch })},
		{Name: OpEquipWeapon, Validate: hasID, Build: byID(player.Engine.EquipWeapon)},
		{Name: OpEquipArmor, Validate: hasID, Build: byID(player.Engine.EquipArmor)},
		{Name: OpDiscardItem, Validate: hasGearItem, Build: func(e player.Engine, p Params) store.TransformFunc {
			return func(s player.State, now time.Time) player.Outcome { return e.DiscardItem(s, now, p.Kind, p.ID) }
		}},
		{Name: OpPlantSeed, Validate: noParams, Build: plain(func(e player.Engine) store.TransformFunc { return e.PlantSeed })},
		{Name: OpBuyWater, Validate: func(p Params) bool { return p.Hours > 0 }, Build: func(e player.Engine, p Params) store.TransformFunc {
			return func(s player.State, now time.Time) player.Outcome { return e.BuyWater(s, now, p.Hours) }
		}},
		{Name: OpPurchaseRelic, Validate: hasID, Build: byID(player.Engine.PurchaseRelic)},
		{Name: OpUpgradeRelic, Validate: hasID, Build: byID(player.Engine.UpgradeRelic)},
		{Name: OpEquipRelic, Validate: hasID, Build: byID(player.Engine.EquipRelic)},
		{Name: OpUnequipRelic, Validate: hasID, Build: byID(player.Engine.UnequipRelic)},
		{Name: OpSellRelic, Validate: hasID, Build: byID(player.Engine.SellRelic)},
		{Name: OpStartCombat, Validate: noParams, Build: plain(func(e player.Engine) store.TransformFunc { return e.StartCombat })},
		{Name: OpResolveTurn, Validate: func(p Params) bool { return p.Hit != nil }, Build: func(e player.Engine, p Params) store.TransformFunc {
			return func(s player.State, now time.Time) player.Outcome { return e.ResolveTurn(s, now, *p.Hit, p.Category) }
		}},
		{Name: OpRollSkill, Validate: noParams, Build: plain(func(e player.Engine) store.TransformFunc { return e.RollSkill })},
		{Name: OpClaimOffline, Validate: noParams, Build: plain(func(e player.Engine) store.TransformFunc { return e.ClaimOffline })},
		{Name: OpClaimDaily, Validate: noParams, Build: plain(func(e player.Engine) store.TransformFunc { return e.ClaimDaily })},
		{Name: OpUpgradeSkill, Validate: hasID, Build: byID(player.Engine.UpgradeSkill)},
		{Name: OpPrestige, Validate: noParams, Build: plain(func(e player.Engine) store.TransformFunc { return e.Prestige })},
		{Name: OpMineGem, Validate: noParams, Build: plain(func(e player.Engine) store.TransformFunc { return e.MineGem })},
		{Name: OpExchangeShiny, Validate: func(p Params) bool { return p.Amount > 0 }, Build: func(e player.Engine, p Params) store.TransformFunc {
			return func(s player.State, now time.Time) player.Outcome { return e.ExchangeShinyGems(s, now, p.Amount) }
		}},
		{Name: OpRefreshMarket, Validate: noParams, Build: plain(func(e player.Engine) store.TransformFunc { return e.ForceMarketRefresh })},
	}
	out := make(map[string]OpSpec, len(specs))
	for _, spec := range specs {
		out[spec.Name] = spec
	}
	return out
}

// SupportedOps lists operation names in sorted order.
func SupportedOps() []string {
	reg := registry()
	out := make([]string, 0, len(reg))
	for name := range reg {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
