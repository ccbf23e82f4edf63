//go:build scenario

package game

import (
	"testing"

	"github.com/thurn/spelldawn/internal/game"
	"github.com/thurn/spelldawn/internal/game/abilities"
	"github.com/thurn/spelldawn/internal/game/dispatch"
	"github.com/thurn/spelldawn/internal/game/mutations"
)

// scenarioSeed keeps deck shuffles stable across runs. Scenario decks are
// uniform per card type, so scripts do not depend on draw order.
const scenarioSeed = 1

func scenarioRegistry(t *testing.T) *game.Registry {
	t.Helper()

	registry, err := game.NewRegistry(
		&game.CardDefinition{
			Name:     "Overlord Sigil",
			CardType: game.CardTypeIdentity,
			Side:     game.SideOverlord,
		},
		&game.CardDefinition{
			Name:     "Champion Sigil",
			CardType: game.CardTypeIdentity,
			Side:     game.SideChampion,
		},
		&game.CardDefinition{
			Name:     "Watchtower Sentry",
			Cost:     game.CardCost{Mana: mana(2), Actions: 1},
			CardType: game.CardTypeMinion,
			Side:     game.SideOverlord,
			Stats: game.CardStats{
				Health: health(4),
				Shield: shield(1),
			},
		},
		&game.CardDefinition{
			Name:     "Secret Plans",
			Cost:     game.CardCost{Actions: 1},
			CardType: game.CardTypeScheme,
			Side:     game.SideOverlord,
			Stats: game.CardStats{
				SchemePoints: &game.SchemePoints{LevelRequirement: 3, Points: 10},
			},
		},
		&game.CardDefinition{
			Name:      "Mana Battery",
			Cost:      game.CardCost{Mana: mana(1), Actions: 1},
			CardType:  game.CardTypeProject,
			Side:      game.SideOverlord,
			Abilities: []game.Ability{abilities.StoreMana(12)},
		},
		&game.CardDefinition{
			Name:     "Worn Greataxe",
			Cost:     game.CardCost{Mana: mana(3), Actions: 1},
			CardType: game.CardTypeWeapon,
			Side:     game.SideChampion,
			Stats: game.CardStats{
				Attack:      attack(2),
				AttackBoost: &game.AttackBoost{Cost: 1, Bonus: 2},
			},
			Abilities: []game.Ability{abilities.EncounterBoost()},
		},
		&game.CardDefinition{
			Name:      "Meditation",
			Cost:      game.CardCost{Actions: 1},
			CardType:  game.CardTypeSpell,
			Side:      game.SideChampion,
			Abilities: []game.Ability{gainManaOnPlay(2)},
		},
	)
	if err != nil {
		t.Fatalf("build registry: %v", err)
	}
	return registry
}

func gainManaOnPlay(n game.ManaValue) game.Ability {
	return game.Ability{
		Delegates: []game.Delegate{
			{
				PlayCard: &game.EventDelegate[game.CardID]{
					Requirement: func(g *game.Game, s game.Scope, card game.CardID) bool {
						return s.CardID() == card
					},
					Mutation: func(g *game.Game, s game.Scope, card game.CardID) error {
						mutations.GainMana(g, s.Side(), n)
						return nil
					},
				},
			},
		},
	}
}

func newScenarioGame(t *testing.T, overlordDeck, championDeck []game.CardName) *game.Game {
	t.Helper()

	g, err := game.NewGame("scenario", scenarioRegistry(t), scenarioSeed,
		game.PlayerConfig{Identity: "Overlord Sigil", Deck: overlordDeck},
		game.PlayerConfig{Identity: "Champion Sigil", Deck: championDeck},
	)
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	dispatch.PopulateCache(g)
	return g
}

func mana(v game.ManaValue) *game.ManaValue       { return &v }
func health(v game.HealthValue) *game.HealthValue { return &v }
func shield(v game.ShieldValue) *game.ShieldValue { return &v }
func attack(v game.AttackValue) *game.AttackValue { return &v }
