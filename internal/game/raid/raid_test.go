package raid_test

import (
	"testing"

	"github.com/thurn/spelldawn/internal/errors"
	"github.com/thurn/spelldawn/internal/game"
	"github.com/thurn/spelldawn/internal/game/abilities"
	"github.com/thurn/spelldawn/internal/game/dispatch"
	"github.com/thurn/spelldawn/internal/game/mutations"
	"github.com/thurn/spelldawn/internal/game/raid"
)

func mana(v game.ManaValue) *game.ManaValue       { return &v }
func attack(v game.AttackValue) *game.AttackValue { return &v }
func health(v game.HealthValue) *game.HealthValue { return &v }
func shield(v game.ShieldValue) *game.ShieldValue { return &v }

func raidRegistry(t *testing.T) *game.Registry {
	t.Helper()
	registry, err := game.NewRegistry(
		&game.CardDefinition{Name: "Overlord Sigil", CardType: game.CardTypeIdentity, Side: game.SideOverlord},
		&game.CardDefinition{Name: "Champion Sigil", CardType: game.CardTypeIdentity, Side: game.SideChampion},
		&game.CardDefinition{
			Name:     "Watchtower Sentry",
			CardType: game.CardTypeMinion,
			Side:     game.SideOverlord,
			Cost:     game.CardCost{Mana: mana(2), Actions: 1},
			Stats:    game.CardStats{Health: health(4), Shield: shield(1)},
		},
		&game.CardDefinition{
			Name:     "Secret Plans",
			CardType: game.CardTypeScheme,
			Side:     game.SideOverlord,
			Cost:     game.CardCost{Actions: 1},
			Stats:    game.CardStats{SchemePoints: &game.SchemePoints{LevelRequirement: 3, Points: 10}},
		},
		&game.CardDefinition{
			Name:      "Dungeon Brute",
			CardType:  game.CardTypeMinion,
			Side:      game.SideOverlord,
			Cost:      game.CardCost{Mana: mana(3), Actions: 1},
			Stats:     game.CardStats{Health: health(5)},
			Abilities: []game.Ability{abilities.Strike(2)},
		},
		&game.CardDefinition{
			Name:      "Worn Greataxe",
			CardType:  game.CardTypeWeapon,
			Side:      game.SideChampion,
			Cost:      game.CardCost{Mana: mana(3), Actions: 1},
			Stats:     game.CardStats{Attack: attack(2), AttackBoost: &game.AttackBoost{Cost: 1, Bonus: 2}},
			Abilities: []game.Ability{abilities.EncounterBoost()},
		},
	)
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	return registry
}

// raidGame builds a game with an armed Champion and one outer room holding
// a scheme occupant, optionally guarded by a face-down defender.
func raidGame(t *testing.T, defended bool) *game.Game {
	t.Helper()
	g, err := game.NewGame("test", raidRegistry(t), 1,
		game.PlayerConfig{Identity: "Overlord Sigil", Deck: []game.CardName{"Watchtower Sentry", "Secret Plans"}},
		game.PlayerConfig{Identity: "Champion Sigil", Deck: []game.CardName{"Worn Greataxe"}})
	if err != nil {
		t.Fatalf("NewGame() error = %v", err)
	}
	schemeID := findCard(t, g, game.SideOverlord, "Secret Plans")
	if err := g.SetCardPosition(schemeID, game.RoomPosition(game.RoomA, game.RoomLocationOccupant)); err != nil {
		t.Fatalf("SetCardPosition() error = %v", err)
	}
	if defended {
		minionID := findCard(t, g, game.SideOverlord, "Watchtower Sentry")
		if err := g.SetCardPosition(minionID, game.RoomPosition(game.RoomA, game.RoomLocationDefender)); err != nil {
			t.Fatalf("SetCardPosition() error = %v", err)
		}
	}
	weaponID := findCard(t, g, game.SideChampion, "Worn Greataxe")
	if err := g.SetCardPosition(weaponID, game.ItemPosition(game.ItemLocationWeapon)); err != nil {
		t.Fatalf("SetCardPosition() error = %v", err)
	}
	dispatch.PopulateCache(g)
	return g
}

func findCard(t *testing.T, g *game.Game, side game.Side, name game.CardName) game.CardID {
	t.Helper()
	for _, card := range g.SideCards(side) {
		if card.Name == name {
			return card.ID
		}
	}
	t.Fatalf("card %q not found for %s", name, side)
	return game.CardID{}
}

func beginRaid(t *testing.T, g *game.Game, room game.RoomID) {
	t.Helper()
	if _, err := mutations.InitiateRaid(g, room); err != nil {
		t.Fatalf("InitiateRaid() error = %v", err)
	}
	if err := raid.Run(g); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
}

func TestUndefendedRoomResolvesStraightToAccess(t *testing.T) {
	g := raidGame(t, false)
	beginRaid(t, g, game.RoomA)

	if g.Data.Raid != nil {
		t.Fatalf("raid did not resolve, phase = %q", g.Data.Raid.Phase)
	}
	if got := g.Player(game.SideChampion).Score; got != 10 {
		t.Errorf("champion score = %d, want 10", got)
	}
	schemeID := findCard(t, g, game.SideOverlord, "Secret Plans")
	if !g.Card(schemeID).Position.InScorePile() {
		t.Errorf("scheme position = %+v, want scored", g.Card(schemeID).Position)
	}
}

func TestFaceDownDefenderPromptsActivation(t *testing.T) {
	g := raidGame(t, true)
	beginRaid(t, g, game.RoomA)

	if g.Data.Raid == nil || g.Data.Raid.Phase != game.RaidPhaseActivation {
		t.Fatalf("expected activation phase, got %+v", g.Data.Raid)
	}
	prompt := g.Overlord.Prompt
	if prompt == nil || prompt.Kind != game.PromptActivateRoom {
		t.Fatalf("expected activation prompt for the overlord, got %+v", prompt)
	}
	if len(prompt.Responses) != 2 {
		t.Errorf("expected activate and pass responses, got %v", prompt.Responses)
	}
}

func TestPassActivationSkipsFaceDownDefender(t *testing.T) {
	g := raidGame(t, true)
	beginRaid(t, g, game.RoomA)

	err := raid.HandleAction(g, game.SideOverlord, game.ActivateRoomResponse(game.PassActivation))
	if err != nil {
		t.Fatalf("HandleAction() error = %v", err)
	}
	if g.Data.Raid != nil {
		t.Fatalf("raid did not resolve, phase = %q", g.Data.Raid.Phase)
	}
	if got := g.Player(game.SideChampion).Score; got != 10 {
		t.Errorf("champion score = %d, want 10", got)
	}
	minionID := findCard(t, g, game.SideOverlord, "Watchtower Sentry")
	if g.Card(minionID).Data.Revealed {
		t.Error("passed defender must stay face down")
	}
}

func TestActivationRevealsDefenderAndPromptsEncounter(t *testing.T) {
	g := raidGame(t, true)
	beginRaid(t, g, game.RoomA)

	err := raid.HandleAction(g, game.SideOverlord, game.ActivateRoomResponse(game.ActivateRoom))
	if err != nil {
		t.Fatalf("HandleAction() error = %v", err)
	}
	if g.Data.Raid == nil || g.Data.Raid.Phase != game.RaidPhaseEncounter {
		t.Fatalf("expected encounter phase, got %+v", g.Data.Raid)
	}
	minionID := findCard(t, g, game.SideOverlord, "Watchtower Sentry")
	if !g.Card(minionID).Data.Revealed {
		t.Error("activated defender must be revealed")
	}
	prompt := g.Champion.Prompt
	if prompt == nil || prompt.Kind != game.PromptEncounterAction {
		t.Fatalf("expected encounter prompt for the champion, got %+v", prompt)
	}
	// One affordable weapon plus retreat.
	if len(prompt.Responses) != 2 {
		t.Errorf("expected weapon and retreat responses, got %v", prompt.Responses)
	}
}

func TestRetreatEndsRaidWithoutAccess(t *testing.T) {
	g := raidGame(t, true)
	beginRaid(t, g, game.RoomA)
	if err := raid.HandleAction(g, game.SideOverlord, game.ActivateRoomResponse(game.ActivateRoom)); err != nil {
		t.Fatalf("HandleAction(activate) error = %v", err)
	}

	if err := raid.HandleAction(g, game.SideChampion, game.RetreatResponse()); err != nil {
		t.Fatalf("HandleAction(retreat) error = %v", err)
	}
	if g.Data.Raid != nil {
		t.Fatal("raid survived retreat")
	}
	if got := g.Player(game.SideChampion).Score; got != 0 {
		t.Errorf("retreat must not score, got %d", got)
	}
}

func TestRetreatLandsDefenderCombat(t *testing.T) {
	g, err := game.NewGame("test", raidRegistry(t), 1,
		game.PlayerConfig{Identity: "Overlord Sigil", Deck: []game.CardName{"Dungeon Brute", "Secret Plans"}},
		game.PlayerConfig{Identity: "Champion Sigil", Deck: []game.CardName{"Worn Greataxe", "Worn Greataxe", "Worn Greataxe"}})
	if err != nil {
		t.Fatalf("NewGame() error = %v", err)
	}
	schemeID := findCard(t, g, game.SideOverlord, "Secret Plans")
	if err := g.SetCardPosition(schemeID, game.RoomPosition(game.RoomA, game.RoomLocationOccupant)); err != nil {
		t.Fatalf("SetCardPosition() error = %v", err)
	}
	bruteID := findCard(t, g, game.SideOverlord, "Dungeon Brute")
	if err := g.SetCardPosition(bruteID, game.RoomPosition(game.RoomA, game.RoomLocationDefender)); err != nil {
		t.Fatalf("SetCardPosition() error = %v", err)
	}
	g.Card(bruteID).Data.Revealed = true
	for _, card := range g.DeckCards(game.SideChampion)[:2] {
		if err := g.SetCardPosition(card.ID, game.HandPosition(game.SideChampion)); err != nil {
			t.Fatalf("SetCardPosition() error = %v", err)
		}
	}
	dispatch.PopulateCache(g)
	beginRaid(t, g, game.RoomA)
	if g.Data.Raid == nil || g.Data.Raid.Phase != game.RaidPhaseEncounter {
		t.Fatalf("expected encounter phase, got %+v", g.Data.Raid)
	}

	if err := raid.HandleAction(g, game.SideChampion, game.RetreatResponse()); err != nil {
		t.Fatalf("HandleAction(retreat) error = %v", err)
	}
	if g.Data.Raid != nil {
		t.Fatal("raid survived retreat")
	}
	if got := len(g.Hand(game.SideChampion)); got != 0 {
		t.Errorf("champion hand size = %d, want 0 after two strikes", got)
	}
	if got := len(g.DiscardPile(game.SideChampion)); got != 2 {
		t.Errorf("champion discard size = %d, want 2", got)
	}
	if got := g.Player(game.SideChampion).Score; got != 0 {
		t.Errorf("retreat must not score, got %d", got)
	}
}

func TestRaidStartDelegateCanAbortRaid(t *testing.T) {
	abort := game.Ability{
		Delegates: []game.Delegate{
			{
				RaidStart: &game.EventDelegate[game.RaidStart]{
					Mutation: func(g *game.Game, scope game.Scope, data game.RaidStart) error {
						return mutations.EndRaid(g)
					},
				},
			},
		},
	}
	registry, err := game.NewRegistry(
		&game.CardDefinition{Name: "Overlord Sigil", CardType: game.CardTypeIdentity, Side: game.SideOverlord, Abilities: []game.Ability{abort}},
		&game.CardDefinition{Name: "Champion Sigil", CardType: game.CardTypeIdentity, Side: game.SideChampion},
		&game.CardDefinition{
			Name:     "Watchtower Sentry",
			CardType: game.CardTypeMinion,
			Side:     game.SideOverlord,
			Cost:     game.CardCost{Mana: mana(2), Actions: 1},
			Stats:    game.CardStats{Health: health(4), Shield: shield(1)},
		},
		&game.CardDefinition{
			Name:     "Secret Plans",
			CardType: game.CardTypeScheme,
			Side:     game.SideOverlord,
			Cost:     game.CardCost{Actions: 1},
			Stats:    game.CardStats{SchemePoints: &game.SchemePoints{LevelRequirement: 3, Points: 10}},
		},
	)
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	g, err := game.NewGame("test", registry, 1,
		game.PlayerConfig{Identity: "Overlord Sigil", Deck: []game.CardName{"Watchtower Sentry", "Secret Plans"}},
		game.PlayerConfig{Identity: "Champion Sigil"})
	if err != nil {
		t.Fatalf("NewGame() error = %v", err)
	}
	schemeID := findCard(t, g, game.SideOverlord, "Secret Plans")
	if err := g.SetCardPosition(schemeID, game.RoomPosition(game.RoomA, game.RoomLocationOccupant)); err != nil {
		t.Fatalf("SetCardPosition() error = %v", err)
	}
	minionID := findCard(t, g, game.SideOverlord, "Watchtower Sentry")
	if err := g.SetCardPosition(minionID, game.RoomPosition(game.RoomA, game.RoomLocationDefender)); err != nil {
		t.Fatalf("SetCardPosition() error = %v", err)
	}
	dispatch.PopulateCache(g)

	beginRaid(t, g, game.RoomA)
	if g.Data.Raid != nil {
		t.Fatalf("aborted raid survived, phase = %q", g.Data.Raid.Phase)
	}
	if g.Overlord.Prompt != nil || g.Champion.Prompt != nil {
		t.Error("aborted raid left a prompt pending")
	}
	if g.Card(minionID).Data.Revealed {
		t.Error("aborted raid reached activation, defender was revealed")
	}
	if got := g.Player(game.SideChampion).Score; got != 0 {
		t.Errorf("aborted raid reached access, score = %d", got)
	}
}

func TestDisplayStateFollowsPhases(t *testing.T) {
	g := raidGame(t, true)
	beginRaid(t, g, game.RoomA)

	state, err := raid.CurrentDisplayState(g)
	if err != nil {
		t.Fatalf("CurrentDisplayState() error = %v", err)
	}
	minionID := findCard(t, g, game.SideOverlord, "Watchtower Sentry")
	if state.Kind != raid.DisplayDefenders {
		t.Fatalf("activation display kind = %q, want %q", state.Kind, raid.DisplayDefenders)
	}
	if len(state.Defenders) != 1 || state.Defenders[0] != minionID {
		t.Errorf("activation defenders = %v, want [%v]", state.Defenders, minionID)
	}

	if err := raid.HandleAction(g, game.SideOverlord, game.ActivateRoomResponse(game.ActivateRoom)); err != nil {
		t.Fatalf("HandleAction(activate) error = %v", err)
	}
	state, err = raid.CurrentDisplayState(g)
	if err != nil {
		t.Fatalf("CurrentDisplayState() error = %v", err)
	}
	if state.Kind != raid.DisplayDefenders {
		t.Errorf("encounter display kind = %q, want %q", state.Kind, raid.DisplayDefenders)
	}

	g.Data.Raid.Phase = game.RaidPhaseAccess
	state, err = raid.CurrentDisplayState(g)
	if err != nil {
		t.Fatalf("CurrentDisplayState() error = %v", err)
	}
	schemeID := findCard(t, g, game.SideOverlord, "Secret Plans")
	if state.Kind != raid.DisplayAccess {
		t.Fatalf("access display kind = %q, want %q", state.Kind, raid.DisplayAccess)
	}
	if len(state.Accessed) != 1 || state.Accessed[0] != schemeID {
		t.Errorf("accessed cards = %v, want [%v]", state.Accessed, schemeID)
	}

	g.Data.Raid.Phase = game.RaidPhaseBegin
	state, err = raid.CurrentDisplayState(g)
	if err != nil {
		t.Fatalf("CurrentDisplayState() error = %v", err)
	}
	if state.Kind != raid.DisplayNone {
		t.Errorf("begin display kind = %q, want %q", state.Kind, raid.DisplayNone)
	}
}

func TestDisplayStateWithoutRaid(t *testing.T) {
	g := raidGame(t, false)
	if _, err := raid.CurrentDisplayState(g); !errors.IsCode(err, errors.CodeRaidNotActive) {
		t.Fatalf("expected %s, got %v", errors.CodeRaidNotActive, err)
	}
}

func TestDefeatDefenderThenAccess(t *testing.T) {
	g := raidGame(t, true)
	beginRaid(t, g, game.RoomA)
	if err := raid.HandleAction(g, game.SideOverlord, game.ActivateRoomResponse(game.ActivateRoom)); err != nil {
		t.Fatalf("HandleAction(activate) error = %v", err)
	}

	weaponID := findCard(t, g, game.SideChampion, "Worn Greataxe")
	if err := raid.HandleAction(g, game.SideChampion, game.UseWeaponResponse(weaponID)); err != nil {
		t.Fatalf("HandleAction(use weapon) error = %v", err)
	}

	// One boost activation plus one unbreached shield point.
	if got := g.Player(game.SideChampion).Mana; got != game.StartingMana-2 {
		t.Errorf("champion mana = %d, want %d", got, game.StartingMana-2)
	}
	minionID := findCard(t, g, game.SideOverlord, "Watchtower Sentry")
	if !g.Card(minionID).Position.InDiscardPile() {
		t.Errorf("defeated defender position = %+v, want discard pile", g.Card(minionID).Position)
	}
	if got := g.Card(weaponID).Data.BoostCount; got != 0 {
		t.Errorf("boost count survived the encounter: %d", got)
	}
	if g.Data.Raid != nil {
		t.Fatal("raid did not resolve after the last defender fell")
	}
	if got := g.Player(game.SideChampion).Score; got != 10 {
		t.Errorf("champion score = %d, want 10", got)
	}
}

func TestVaultRaidAccessesTopOfDeck(t *testing.T) {
	g, err := game.NewGame("test", raidRegistry(t), 1,
		game.PlayerConfig{Identity: "Overlord Sigil", Deck: []game.CardName{"Secret Plans"}},
		game.PlayerConfig{Identity: "Champion Sigil"})
	if err != nil {
		t.Fatalf("NewGame() error = %v", err)
	}
	dispatch.PopulateCache(g)
	beginRaid(t, g, game.RoomVault)

	if g.Data.Raid != nil {
		t.Fatal("vault raid did not resolve")
	}
	if got := g.Player(game.SideChampion).Score; got != 10 {
		t.Errorf("champion score = %d, want 10", got)
	}
}

func TestWrongSideAndIllegalActionLeaveRaidUntouched(t *testing.T) {
	g := raidGame(t, true)
	beginRaid(t, g, game.RoomA)

	err := raid.HandleAction(g, game.SideChampion, game.ActivateRoomResponse(game.PassActivation))
	if !errors.IsCode(err, errors.CodeRaidWrongSide) {
		t.Fatalf("expected %s, got %v", errors.CodeRaidWrongSide, err)
	}
	err = raid.HandleAction(g, game.SideOverlord, game.RetreatResponse())
	if !errors.IsCode(err, errors.CodeRaidInvalidAction) {
		t.Fatalf("expected %s, got %v", errors.CodeRaidInvalidAction, err)
	}
	if g.Data.Raid == nil || g.Data.Raid.Phase != game.RaidPhaseActivation {
		t.Fatalf("rejected actions changed the raid: %+v", g.Data.Raid)
	}
	if g.Overlord.Prompt == nil {
		t.Error("rejected actions cleared the pending prompt")
	}
}

func TestHandleActionWithoutRaid(t *testing.T) {
	g := raidGame(t, false)
	err := raid.HandleAction(g, game.SideChampion, game.RetreatResponse())
	if !errors.IsCode(err, errors.CodeRaidNotActive) {
		t.Fatalf("expected %s, got %v", errors.CodeRaidNotActive, err)
	}
}
