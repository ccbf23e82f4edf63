// Package abilities provides reusable delegate constructors shared by card
// definitions: encounter-scoped weapon boosts, mana batteries, combat
// strikes and scoring triggers. Each constructor returns a complete
// Ability whose delegates are scoped to the owning card through the
// requirement functions below.
package abilities

import (
	"github.com/thurn/spelldawn/internal/game"
	"github.com/thurn/spelldawn/internal/game/mutations"
)

// thisCard restricts an event carrying a card identifier to the delegate's
// own card.
func thisCard(scope game.Scope, card game.CardID) bool {
	return scope.CardID() == card
}

// EncounterBoost grants a weapon its printed attack boost for the duration
// of one encounter. Boost activations accumulate on the card, feed the
// attack query, and clear when the encounter ends.
func EncounterBoost() game.Ability {
	return game.Ability{
		Delegates: []game.Delegate{
			{
				ActivateBoost: &game.EventDelegate[game.BoostData]{
					Requirement: func(g *game.Game, scope game.Scope, data game.BoostData) bool {
						return thisCard(scope, data.Card)
					},
					Mutation: func(g *game.Game, scope game.Scope, data game.BoostData) error {
						return mutations.WriteBoost(g, data)
					},
				},
			},
			{
				AttackValue: &game.QueryDelegate[game.CardID, game.AttackValue]{
					Requirement: func(g *game.Game, scope game.Scope, card game.CardID) bool {
						return thisCard(scope, card)
					},
					Transformation: func(g *game.Game, scope game.Scope, card game.CardID, current game.AttackValue) game.AttackValue {
						state := g.Card(card)
						def := g.Definition(card)
						if state == nil || def == nil || def.Stats.AttackBoost == nil {
							return current
						}
						bonus := game.AttackValue(state.Data.BoostCount) * def.Stats.AttackBoost.Bonus
						return current + bonus
					},
				},
			},
			{
				EncounterEnd: &game.EventDelegate[game.RaidID]{
					Mutation: func(g *game.Game, scope game.Scope, raid game.RaidID) error {
						return mutations.ClearBoost(g, scope.CardID())
					},
				},
			},
		},
	}
}

// StoreMana charges the card with n mana when it comes into play and
// discards it once the last stored mana is taken.
func StoreMana(n game.ManaValue) game.Ability {
	return game.Ability{
		Delegates: []game.Delegate{
			{
				PlayCard: &game.EventDelegate[game.CardID]{
					Requirement: func(g *game.Game, scope game.Scope, card game.CardID) bool {
						return thisCard(scope, card)
					},
					Mutation: func(g *game.Game, scope game.Scope, card game.CardID) error {
						return mutations.SetStoredMana(g, card, n)
					},
				},
			},
			{
				StoredManaTaken: &game.EventDelegate[game.CardID]{
					Requirement: func(g *game.Game, scope game.Scope, card game.CardID) bool {
						return thisCard(scope, card)
					},
					Mutation: func(g *game.Game, scope game.Scope, card game.CardID) error {
						state := g.Card(card)
						if state == nil || state.Data.StoredMana > 0 {
							return nil
						}
						return mutations.MoveCard(g, card, game.DiscardPilePosition(scope.Side()))
					},
				},
			},
		},
	}
}

// Strike discards n random cards from the Champion's hand when this minion
// survives its encounter.
func Strike(n int) game.Ability {
	return game.Ability{
		Delegates: []game.Delegate{
			{
				MinionCombat: &game.EventDelegate[game.CardID]{
					Requirement: func(g *game.Game, scope game.Scope, card game.CardID) bool {
						return thisCard(scope, card)
					},
					Mutation: func(g *game.Game, scope game.Scope, card game.CardID) error {
						for i := 0; i < n; i++ {
							if err := mutations.DiscardRandomCard(g, game.SideChampion); err != nil {
								return err
							}
						}
						return nil
					},
				},
			},
		},
	}
}

// OnScoreGainMana grants the scoring player n mana when this card is
// scored.
func OnScoreGainMana(n game.ManaValue) game.Ability {
	return game.Ability{
		Delegates: []game.Delegate{
			{
				ScoreCard: &game.EventDelegate[game.CardID]{
					Requirement: func(g *game.Game, scope game.Scope, card game.CardID) bool {
						return thisCard(scope, card)
					},
					Mutation: func(g *game.Game, scope game.Scope, card game.CardID) error {
						state := g.Card(card)
						if state == nil {
							return nil
						}
						mutations.GainMana(g, state.Position.Side, n)
						return nil
					},
				},
			},
		},
	}
}

// OnRaidEndDrawCard draws the owner a card whenever a raid ends while this
// card is in play.
func OnRaidEndDrawCard() game.Ability {
	return game.Ability{
		Delegates: []game.Delegate{
			{
				RaidEnd: &game.EventDelegate[game.RaidID]{
					Mutation: func(g *game.Game, scope game.Scope, raid game.RaidID) error {
						_, err := mutations.DrawCard(g, scope.Side())
						return err
					},
				},
			},
		},
	}
}
