// Package raid models one breach attempt on a room as a phase-sequenced
// state machine: Begin, Activation, Encounter and Access, with resolution
// represented by the raid data becoming absent. Each phase exposes the
// legal action set for the side empowered to act, a handler consuming one
// submitted action, and a display projection for the presentation layer.
package raid

import (
	"github.com/thurn/spelldawn/internal/errors"
	"github.com/thurn/spelldawn/internal/game"
	"github.com/thurn/spelldawn/internal/game/mutations"
)

// phase is the behavior of one raid phase. enter fires the phase-entry
// events and either names the next phase or returns empty to await player
// input. actions lists the legal responses; an empty list means the phase
// progresses automatically.
type phase interface {
	enter(g *game.Game) (game.InternalRaidPhase, error)
	actions(g *game.Game) ([]game.PromptAction, error)
	handle(g *game.Game, action game.PromptAction) (game.InternalRaidPhase, error)
	activeSide() game.Side
	promptKind() game.PromptKind
	displayState(g *game.Game) (DisplayState, error)
}

// DisplayStateKind names the presentation shape of a raid phase.
type DisplayStateKind string

const (
	// DisplayNone shows the raid with no highlighted cards.
	DisplayNone DisplayStateKind = "none"
	// DisplayDefenders highlights the target room's defenders.
	DisplayDefenders DisplayStateKind = "defenders"
	// DisplayAccess shows the cards the Champion is accessing.
	DisplayAccess DisplayStateKind = "access"
)

// DisplayState is the presentation projection of one raid phase: which
// cards the interface should foreground while the phase awaits input or
// resolves.
type DisplayState struct {
	Kind DisplayStateKind
	// Defenders lists the target room's defenders, innermost first, when
	// Kind is DisplayDefenders.
	Defenders []game.CardID
	// Accessed lists the accessed cards when Kind is DisplayAccess.
	Accessed []game.CardID
}

// CurrentDisplayState projects the active raid's phase for presentation.
func CurrentDisplayState(g *game.Game) (DisplayState, error) {
	raid, err := g.Raid()
	if err != nil {
		return DisplayState{}, err
	}
	impl, err := phaseImpl(raid.Phase)
	if err != nil {
		return DisplayState{}, err
	}
	return impl.displayState(g)
}

func phaseImpl(p game.InternalRaidPhase) (phase, error) {
	switch p {
	case game.RaidPhaseBegin:
		return beginPhase{}, nil
	case game.RaidPhaseActivation:
		return activationPhase{}, nil
	case game.RaidPhaseEncounter:
		return encounterPhase{}, nil
	case game.RaidPhaseAccess:
		return accessPhase{}, nil
	default:
		return nil, errors.New(errors.CodeRaidWrongPhase, "unknown raid phase")
	}
}

// Run drives the active raid through its phases until it resolves or a
// phase requires player input, in which case the matching prompt is shown
// to the empowered side.
func Run(g *game.Game) error {
	for {
		raid := g.Data.Raid
		if raid == nil {
			return nil
		}
		impl, err := phaseImpl(raid.Phase)
		if err != nil {
			return err
		}
		next, err := impl.enter(g)
		if err != nil {
			return err
		}
		if g.Data.Raid == nil {
			// A delegate response aborted the raid.
			return nil
		}
		if next == "" {
			responses, err := impl.actions(g)
			if err != nil {
				return err
			}
			if len(responses) == 0 {
				return nil
			}
			return mutations.SetPrompt(g, impl.activeSide(), game.Prompt{
				Kind:      impl.promptKind(),
				Responses: responses,
			})
		}
		g.Data.Raid.Phase = next
	}
}

// HandleAction consumes one submitted raid action for the given side.
// Submitting an action for the wrong phase or wrong side is a caller usage
// error and leaves the game state untouched.
func HandleAction(g *game.Game, side game.Side, action game.PromptAction) error {
	raid := g.Data.Raid
	if raid == nil {
		return errors.New(errors.CodeRaidNotActive, "no active raid")
	}
	impl, err := phaseImpl(raid.Phase)
	if err != nil {
		return err
	}
	if side != impl.activeSide() {
		return errors.New(errors.CodeRaidWrongSide, "side cannot act in this raid phase")
	}
	legal, err := impl.actions(g)
	if err != nil {
		return err
	}
	if !containsAction(legal, action) {
		return errors.New(errors.CodeRaidInvalidAction, "action is not legal in this raid phase")
	}

	mutations.ClearPrompts(g)
	next, err := impl.handle(g, action)
	if err != nil {
		return err
	}
	if g.Data.Raid == nil {
		return nil
	}
	if next == "" {
		return nil
	}
	g.Data.Raid.Phase = next
	return Run(g)
}

func containsAction(legal []game.PromptAction, action game.PromptAction) bool {
	for _, candidate := range legal {
		if candidate.Equal(action) {
			return true
		}
	}
	return false
}

// nextDefender returns the next undefeated, activated defender of the
// target room, outermost (highest sorting key) first. Face-down defenders
// cannot be encountered.
func nextDefender(g *game.Game, room game.RoomID) *game.CardState {
	defenders := g.Defenders(room)
	for i := len(defenders) - 1; i >= 0; i-- {
		if defenders[i].Data.Revealed {
			return defenders[i]
		}
	}
	return nil
}

// encounterOrAccess decides the phase following a defender lookup: another
// Encounter when an activated defender remains, Access otherwise.
func encounterOrAccess(g *game.Game) (game.InternalRaidPhase, error) {
	raid, err := g.Raid()
	if err != nil {
		return "", err
	}
	if defender := nextDefender(g, raid.Target); defender != nil {
		id := defender.ID
		raid.Encounter = &id
		return game.RaidPhaseEncounter, nil
	}
	raid.Encounter = nil
	return game.RaidPhaseAccess, nil
}

func hasFaceDownDefender(g *game.Game, room game.RoomID) bool {
	for _, defender := range g.Defenders(room) {
		if !defender.Data.Revealed {
			return true
		}
	}
	return false
}
