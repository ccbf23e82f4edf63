package dispatch

import (
	"github.com/thurn/spelldawn/internal/game"
)

// QueryManaCost folds the mana-cost query over a card's base cost. A nil
// value means the card has no mana cost.
func QueryManaCost(g *game.Game, card game.CardID, base *game.ManaValue) *game.ManaValue {
	return performQuery(g, game.KindManaCost,
		func(d game.Delegate) *game.QueryDelegate[game.CardID, *game.ManaValue] { return d.ManaCost },
		card, base)
}

// QueryActionCost folds the action-cost query over a card's base cost.
func QueryActionCost(g *game.Game, card game.CardID, base game.ActionCount) game.ActionCount {
	return performQuery(g, game.KindActionCost,
		func(d game.Delegate) *game.QueryDelegate[game.CardID, game.ActionCount] { return d.ActionCost },
		card, base)
}

// QueryAttackValue folds the attack query over a card's base attack.
func QueryAttackValue(g *game.Game, card game.CardID, base game.AttackValue) game.AttackValue {
	return performQuery(g, game.KindAttackValue,
		func(d game.Delegate) *game.QueryDelegate[game.CardID, game.AttackValue] { return d.AttackValue },
		card, base)
}

// QueryHealthValue folds the health query over a card's base health.
func QueryHealthValue(g *game.Game, card game.CardID, base game.HealthValue) game.HealthValue {
	return performQuery(g, game.KindHealthValue,
		func(d game.Delegate) *game.QueryDelegate[game.CardID, game.HealthValue] { return d.HealthValue },
		card, base)
}

// QueryShieldValue folds the shield query over a card's base shield.
func QueryShieldValue(g *game.Game, card game.CardID, base game.ShieldValue) game.ShieldValue {
	return performQuery(g, game.KindShieldValue,
		func(d game.Delegate) *game.QueryDelegate[game.CardID, game.ShieldValue] { return d.ShieldValue },
		card, base)
}

// QueryBreachValue folds the breach query over a card's base breach.
func QueryBreachValue(g *game.Game, card game.CardID, base game.BreachValue) game.BreachValue {
	return performQuery(g, game.KindBreachValue,
		func(d game.Delegate) *game.QueryDelegate[game.CardID, game.BreachValue] { return d.BreachValue },
		card, base)
}

// QueryBoostCount folds the boost-count query over a card's current count.
func QueryBoostCount(g *game.Game, card game.CardID, base game.BoostCount) game.BoostCount {
	return performQuery(g, game.KindBoostCount,
		func(d game.Delegate) *game.QueryDelegate[game.CardID, game.BoostCount] { return d.BoostCount },
		card, base)
}

// QueryAttackBoost folds the attack-boost query over a card's declared
// boost stat.
func QueryAttackBoost(g *game.Game, card game.CardID, base game.AttackBoost) game.AttackBoost {
	return performQuery(g, game.KindAttackBoost,
		func(d game.Delegate) *game.QueryDelegate[game.CardID, game.AttackBoost] { return d.AttackBoost },
		card, base)
}

// QueryStartOfTurnActions folds the start-of-turn action count query for a
// side.
func QueryStartOfTurnActions(g *game.Game, side game.Side, base game.ActionCount) game.ActionCount {
	return performQuery(g, game.KindStartOfTurnActions,
		func(d game.Delegate) *game.QueryDelegate[game.Side, game.ActionCount] {
			return d.StartOfTurnActions
		},
		side, base)
}

// QueryVaultAccessCount folds the vault access count query for a raid.
func QueryVaultAccessCount(g *game.Game, raid game.RaidID, base int) int {
	return performQuery(g, game.KindVaultAccessCount,
		func(d game.Delegate) *game.QueryDelegate[game.RaidID, int] { return d.VaultAccessCount },
		raid, base)
}

// QuerySanctumAccessCount folds the sanctum access count query for a raid.
func QuerySanctumAccessCount(g *game.Game, raid game.RaidID, base int) int {
	return performQuery(g, game.KindSanctumAccessCount,
		func(d game.Delegate) *game.QueryDelegate[game.RaidID, int] { return d.SanctumAccessCount },
		raid, base)
}
