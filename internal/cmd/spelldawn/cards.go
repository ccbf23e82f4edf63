package spelldawn

import (
	"github.com/thurn/spelldawn/internal/game"
	"github.com/thurn/spelldawn/internal/game/abilities"
	"github.com/thurn/spelldawn/internal/game/mutations"
)

// demoRegistry builds the small card catalog the demo game plays with.
func demoRegistry() (*game.Registry, error) {
	return game.NewRegistry(
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
			Name:     "Frost Sentinel",
			Cost:     game.CardCost{Mana: mana(2), Actions: 1},
			CardType: game.CardTypeMinion,
			Side:     game.SideOverlord,
			Stats: game.CardStats{
				Health: health(4),
				Shield: shield(1),
			},
		},
		&game.CardDefinition{
			Name:     "Hidden Machination",
			Cost:     game.CardCost{Actions: 1},
			CardType: game.CardTypeScheme,
			Side:     game.SideOverlord,
			Stats: game.CardStats{
				SchemePoints: &game.SchemePoints{LevelRequirement: 3, Points: 10},
			},
		},
		&game.CardDefinition{
			Name:      "Gold Mine",
			Cost:      game.CardCost{Mana: mana(1), Actions: 1},
			CardType:  game.CardTypeProject,
			Side:      game.SideOverlord,
			Abilities: []game.Ability{abilities.StoreMana(12)},
		},
		&game.CardDefinition{
			Name:     "Greataxe",
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
			Name:      "Contemplate",
			Cost:      game.CardCost{Actions: 1},
			CardType:  game.CardTypeSpell,
			Side:      game.SideChampion,
			Abilities: []game.Ability{onPlayGainMana(2)},
		},
	)
}

// onPlayGainMana grants the owner mana when the card is played.
func onPlayGainMana(n game.ManaValue) game.Ability {
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

func mana(v game.ManaValue) *game.ManaValue       { return &v }
func health(v game.HealthValue) *game.HealthValue { return &v }
func shield(v game.ShieldValue) *game.ShieldValue { return &v }
func attack(v game.AttackValue) *game.AttackValue { return &v }
