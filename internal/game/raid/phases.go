package raid

import (
	"github.com/thurn/spelldawn/internal/errors"
	"github.com/thurn/spelldawn/internal/game"
	"github.com/thurn/spelldawn/internal/game/dispatch"
	"github.com/thurn/spelldawn/internal/game/mutations"
	"github.com/thurn/spelldawn/internal/game/queries"
)

// beginPhase announces the raid and routes to Activation when the target
// room hides a face-down defender, to Encounter when an activated defender
// awaits, and straight to Access otherwise.
type beginPhase struct{}

func (beginPhase) enter(g *game.Game) (game.InternalRaidPhase, error) {
	raid, err := g.Raid()
	if err != nil {
		return "", err
	}
	raid.Active = true
	id, target := raid.ID, raid.Target
	if err := dispatch.InvokeRaidStart(g, game.RaidStart{Raid: id, Target: target}); err != nil {
		return "", err
	}
	if g.Data.Raid == nil {
		return "", nil
	}
	if hasFaceDownDefender(g, target) {
		return game.RaidPhaseActivation, nil
	}
	return encounterOrAccess(g)
}

func (beginPhase) actions(g *game.Game) ([]game.PromptAction, error) { return nil, nil }

func (beginPhase) handle(g *game.Game, action game.PromptAction) (game.InternalRaidPhase, error) {
	return "", errors.New(errors.CodeRaidWrongPhase, "no actions in the begin phase")
}

func (beginPhase) activeSide() game.Side       { return game.SideOverlord }
func (beginPhase) promptKind() game.PromptKind { return game.PromptActivateRoom }

func (beginPhase) displayState(g *game.Game) (DisplayState, error) {
	return DisplayState{Kind: DisplayNone}, nil
}

// activationPhase asks the Overlord whether to turn the target room's
// defenders face up. Passing leaves them face down, and face-down
// defenders are skipped during the encounter sequence.
type activationPhase struct{}

func (activationPhase) enter(g *game.Game) (game.InternalRaidPhase, error) {
	return "", nil
}

func (activationPhase) actions(g *game.Game) ([]game.PromptAction, error) {
	return []game.PromptAction{
		game.ActivateRoomResponse(game.ActivateRoom),
		game.ActivateRoomResponse(game.PassActivation),
	}, nil
}

func (activationPhase) handle(g *game.Game, action game.PromptAction) (game.InternalRaidPhase, error) {
	raid, err := g.Raid()
	if err != nil {
		return "", err
	}
	if action.ActivateRoom == nil {
		return "", errors.New(errors.CodeRaidInvalidAction, "expected a room activation response")
	}
	if *action.ActivateRoom == game.ActivateRoom {
		for _, defender := range g.Defenders(raid.Target) {
			if err := mutations.SetRevealed(g, defender.ID, true); err != nil {
				return "", err
			}
		}
	}
	if g.Data.Raid == nil {
		return "", nil
	}
	return encounterOrAccess(g)
}

func (activationPhase) activeSide() game.Side       { return game.SideOverlord }
func (activationPhase) promptKind() game.PromptKind { return game.PromptActivateRoom }

func (activationPhase) displayState(g *game.Game) (DisplayState, error) {
	return defenderDisplay(g)
}

// encounterPhase pits the Champion against the current defender. The
// Champion either pays to defeat it with a weapon able to reach its health,
// or retreats and ends the raid. A defender that survives its encounter
// lands its combat abilities on the Champion before the raid ends.
type encounterPhase struct{}

func (encounterPhase) enter(g *game.Game) (game.InternalRaidPhase, error) {
	return "", nil
}

func (encounterPhase) actions(g *game.Game) ([]game.PromptAction, error) {
	raid, err := g.Raid()
	if err != nil {
		return nil, err
	}
	if raid.Encounter == nil {
		return nil, errors.New(errors.CodeRaidNoEncounter, "encounter phase has no defender")
	}
	defender := *raid.Encounter
	var responses []game.PromptAction
	for _, weapon := range g.Items(game.ItemLocationWeapon) {
		cost, ok := queries.CostToDefeatTarget(g, weapon.ID, defender)
		if !ok {
			continue
		}
		if cost <= g.Player(game.SideChampion).Mana {
			responses = append(responses, game.UseWeaponResponse(weapon.ID))
		}
	}
	responses = append(responses, game.RetreatResponse())
	return responses, nil
}

func (encounterPhase) handle(g *game.Game, action game.PromptAction) (game.InternalRaidPhase, error) {
	raid, err := g.Raid()
	if err != nil {
		return "", err
	}
	if action.Encounter == nil {
		return "", errors.New(errors.CodeRaidInvalidAction, "expected an encounter response")
	}
	if action.Encounter.Kind == game.EncounterRetreat {
		raidID := raid.ID
		if raid.Encounter != nil {
			if err := dispatch.InvokeMinionCombat(g, *raid.Encounter); err != nil {
				return "", err
			}
			if g.Data.Raid == nil {
				return "", nil
			}
		}
		if err := dispatch.InvokeEncounterEnd(g, raidID); err != nil {
			return "", err
		}
		if err := mutations.EndRaid(g); err != nil {
			return "", err
		}
		return "", nil
	}
	if raid.Encounter == nil {
		return "", errors.New(errors.CodeRaidNoEncounter, "encounter phase has no defender")
	}
	return defeatDefender(g, action.Encounter.Weapon, *raid.Encounter)
}

// defeatDefender pays the full cost of a weapon strike, applies the boosts
// required to match the defender's health, and sends the defender to the
// Overlord's discard pile.
func defeatDefender(g *game.Game, weapon, defender game.CardID) (game.InternalRaidPhase, error) {
	raid, err := g.Raid()
	if err != nil {
		return "", err
	}
	cost, ok := queries.CostToDefeatTarget(g, weapon, defender)
	if !ok {
		return "", errors.New(errors.CodeRaidInvalidAction, "weapon cannot defeat this defender")
	}
	if err := mutations.SpendMana(g, game.SideChampion, cost); err != nil {
		return "", err
	}
	if boosts := queries.BoostsToDefeatTarget(g, weapon, defender); boosts > 0 {
		if err := mutations.ActivateBoost(g, weapon, game.BoostCount(boosts)); err != nil {
			return "", err
		}
	}
	if err := dispatch.InvokeMinionDefeated(g, defender); err != nil {
		return "", err
	}
	if err := mutations.MoveCard(g, defender, game.DiscardPilePosition(game.SideOverlord)); err != nil {
		return "", err
	}
	if err := dispatch.InvokeEncounterEnd(g, raid.ID); err != nil {
		return "", err
	}
	if g.Data.Raid == nil {
		return "", nil
	}
	raid.Encounter = nil
	return encounterOrAccess(g)
}

func (encounterPhase) activeSide() game.Side       { return game.SideChampion }
func (encounterPhase) promptKind() game.PromptKind { return game.PromptEncounterAction }

func (encounterPhase) displayState(g *game.Game) (DisplayState, error) {
	return defenderDisplay(g)
}

// accessPhase reveals the accessed cards to the Champion, scores any
// schemes among them, and resolves the raid.
type accessPhase struct{}

func (accessPhase) enter(g *game.Game) (game.InternalRaidPhase, error) {
	accessed, err := accessedCards(g)
	if err != nil {
		return "", err
	}
	for _, id := range accessed {
		if err := mutations.SetRevealed(g, id, true); err != nil {
			return "", err
		}
	}
	for _, id := range accessed {
		def := g.Definition(id)
		if def == nil {
			return "", errors.New(errors.CodeCardNotFound, "accessed card has no definition")
		}
		if def.CardType == game.CardTypeScheme {
			if err := mutations.ScoreCard(g, game.SideChampion, id); err != nil {
				return "", err
			}
		}
	}
	if g.Data.Raid == nil {
		return "", nil
	}
	return "", mutations.EndRaid(g)
}

func (accessPhase) actions(g *game.Game) ([]game.PromptAction, error) { return nil, nil }

func (accessPhase) handle(g *game.Game, action game.PromptAction) (game.InternalRaidPhase, error) {
	return "", errors.New(errors.CodeRaidWrongPhase, "no actions in the access phase")
}

func (accessPhase) activeSide() game.Side       { return game.SideChampion }
func (accessPhase) promptKind() game.PromptKind { return game.PromptEncounterAction }

func (accessPhase) displayState(g *game.Game) (DisplayState, error) {
	accessed, err := accessedCards(g)
	if err != nil {
		return DisplayState{}, err
	}
	return DisplayState{Kind: DisplayAccess, Accessed: accessed}, nil
}

// defenderDisplay projects the target room's defenders for the phases that
// highlight them.
func defenderDisplay(g *game.Game) (DisplayState, error) {
	raid, err := g.Raid()
	if err != nil {
		return DisplayState{}, err
	}
	return DisplayState{
		Kind:      DisplayDefenders,
		Defenders: cardIDs(g.Defenders(raid.Target)),
	}, nil
}

// accessedCards returns the card identifiers the Champion accesses in the
// target room. The vault yields cards from the top of the Overlord's deck,
// the sanctum from the Overlord's hand, the crypt the whole discard pile,
// and outer rooms their occupants.
func accessedCards(g *game.Game) ([]game.CardID, error) {
	raid, err := g.Raid()
	if err != nil {
		return nil, err
	}
	switch raid.Target {
	case game.RoomVault:
		count, err := queries.VaultAccessCount(g)
		if err != nil {
			return nil, err
		}
		return firstIDs(g.DeckCards(game.SideOverlord), count), nil
	case game.RoomSanctum:
		count, err := queries.SanctumAccessCount(g)
		if err != nil {
			return nil, err
		}
		return firstIDs(g.Hand(game.SideOverlord), count), nil
	case game.RoomCrypts:
		return cardIDs(g.DiscardPile(game.SideOverlord)), nil
	default:
		return cardIDs(g.Occupants(raid.Target)), nil
	}
}

func firstIDs(cards []*game.CardState, n int) []game.CardID {
	if n > len(cards) {
		n = len(cards)
	}
	return cardIDs(cards[:n])
}

func cardIDs(cards []*game.CardState) []game.CardID {
	ids := make([]game.CardID, len(cards))
	for i, card := range cards {
		ids[i] = card.ID
	}
	return ids
}
