// Package queries computes pure read derivations of game state. Every
// numeric property starts from the card's static base value and folds all
// matching query delegates over it.
package queries

import (
	"github.com/thurn/spelldawn/internal/game"
	"github.com/thurn/spelldawn/internal/game/dispatch"
)

// Stats returns the static stats for a card, or the zero value if the card
// or its definition is missing.
func Stats(g *game.Game, id game.CardID) game.CardStats {
	definition := g.Definition(id)
	if definition == nil {
		return game.CardStats{}
	}
	return definition.Stats
}

// ManaCost returns the mana cost to play a card, or nil for cards with no
// mana cost.
func ManaCost(g *game.Game, id game.CardID) *game.ManaValue {
	definition := g.Definition(id)
	var base *game.ManaValue
	if definition != nil {
		base = definition.Cost.Mana
	}
	return dispatch.QueryManaCost(g, id, base)
}

// ActionCost returns the action point cost to play a card.
func ActionCost(g *game.Game, id game.CardID) game.ActionCount {
	definition := g.Definition(id)
	var base game.ActionCount
	if definition != nil {
		base = definition.Cost.Actions
	}
	return dispatch.QueryActionCost(g, id, base)
}

// Attack returns the attack power for a card, or 0 by default.
func Attack(g *game.Game, id game.CardID) game.AttackValue {
	var base game.AttackValue
	if ptr := Stats(g, id).Attack; ptr != nil {
		base = *ptr
	}
	return dispatch.QueryAttackValue(g, id, base)
}

// Health returns the health value for a card, or 0 by default.
func Health(g *game.Game, id game.CardID) game.HealthValue {
	var base game.HealthValue
	if ptr := Stats(g, id).Health; ptr != nil {
		base = *ptr
	}
	return dispatch.QueryHealthValue(g, id, base)
}

// Shield returns the shield value for a card, or 0 by default.
func Shield(g *game.Game, id game.CardID) game.ShieldValue {
	var base game.ShieldValue
	if ptr := Stats(g, id).Shield; ptr != nil {
		base = *ptr
	}
	return dispatch.QueryShieldValue(g, id, base)
}

// Breach returns the breach value for a card, or 0 by default.
func Breach(g *game.Game, id game.CardID) game.BreachValue {
	var base game.BreachValue
	if ptr := Stats(g, id).Breach; ptr != nil {
		base = *ptr
	}
	return dispatch.QueryBreachValue(g, id, base)
}

// BoostCount returns the current boost count for a card.
func BoostCount(g *game.Game, id game.CardID) game.BoostCount {
	var base game.BoostCount
	if card := g.Card(id); card != nil {
		base = card.Data.BoostCount
	}
	return dispatch.QueryBoostCount(g, id, base)
}

// AttackBoost returns the boost stat for a card, or nil if the card has no
// boost ability.
func AttackBoost(g *game.Game, id game.CardID) *game.AttackBoost {
	base := Stats(g, id).AttackBoost
	if base == nil {
		return nil
	}
	boost := dispatch.QueryAttackBoost(g, id, *base)
	return &boost
}

// CostToDefeatTarget returns the mana the owner of id would need to spend
// to raise its attack to defeat target's health by activating boosts, plus
// the mana required to pay target's shield cost beyond the attacker's
// breach.
//
// Returns (0 plus the shield cost, true) if the card can already defeat
// the target. Returns (0, false) if defeating the target is impossible:
// the attack is insufficient and the card has no usable boost.
func CostToDefeatTarget(g *game.Game, id, target game.CardID) (game.ManaValue, bool) {
	targetHealth := Health(g, target)
	current := Attack(g, id)

	shieldCost := game.ManaValue(0)
	if excess := int(Shield(g, target)) - int(Breach(g, id)); excess > 0 {
		shieldCost = game.ManaValue(excess)
	}

	if current >= game.AttackValue(targetHealth) {
		return shieldCost, true
	}

	boost := AttackBoost(g, id)
	if boost == nil || boost.Bonus == 0 {
		return 0, false
	}

	increase := int(targetHealth) - int(current)
	// If the boost does not evenly divide into the deficit, it must be
	// applied one additional time.
	activations := increase / int(boost.Bonus)
	if increase%int(boost.Bonus) != 0 {
		activations++
	}
	return game.ManaValue(activations)*boost.Cost + shieldCost, true
}

// BoostsToDefeatTarget returns how many boost activations the attacker
// needs to reach the target's health, or 0 if none are needed.
func BoostsToDefeatTarget(g *game.Game, id, target game.CardID) int {
	targetHealth := Health(g, target)
	current := Attack(g, id)
	if current >= game.AttackValue(targetHealth) {
		return 0
	}
	boost := AttackBoost(g, id)
	if boost == nil || boost.Bonus == 0 {
		return 0
	}
	increase := int(targetHealth) - int(current)
	activations := increase / int(boost.Bonus)
	if increase%int(boost.Bonus) != 0 {
		activations++
	}
	return activations
}

// StartOfTurnActionCount returns the number of action points a player
// receives at the start of their turn.
func StartOfTurnActionCount(g *game.Game, side game.Side) game.ActionCount {
	return dispatch.QueryStartOfTurnActions(g, side, game.DefaultStartOfTurnActions)
}

// VaultAccessCount returns how many cards the Champion can access from the
// vault during the current raid.
func VaultAccessCount(g *game.Game) (int, error) {
	raid, err := g.Raid()
	if err != nil {
		return 0, err
	}
	return dispatch.QueryVaultAccessCount(g, raid.ID, 1), nil
}

// SanctumAccessCount returns how many cards the Champion can access from
// the sanctum during the current raid.
func SanctumAccessCount(g *game.Game) (int, error) {
	raid, err := g.Raid()
	if err != nil {
		return 0, err
	}
	return dispatch.QuerySanctumAccessCount(g, raid.ID, 1), nil
}

// CanTakeAction reports whether the side player currently has a legal game
// action available to them.
func CanTakeAction(g *game.Game, side game.Side) bool {
	if raid := g.Data.Raid; raid != nil {
		if raid.Phase == game.RaidPhaseActivation {
			return side == game.SideOverlord
		}
		return side == game.SideChampion
	}
	return side == g.Data.Turn.Side
}

// InMainPhase reports whether the side player is in their main phase with
// no pending prompts, and thus can take a primary game action.
func InMainPhase(g *game.Game, side game.Side) bool {
	return g.Player(side).Actions > 0 &&
		g.Data.Turn.Side == side &&
		g.Data.Raid == nil &&
		g.Overlord.Prompt == nil &&
		g.Champion.Prompt == nil
}
