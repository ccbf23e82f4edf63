// Package engine executes external player actions against a game. Execute
// is all-or-nothing: it applies the action to a deep copy of the game and
// returns the copy only when every step succeeds, so a failed action never
// leaves a partially mutated state behind.
package engine

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/thurn/spelldawn/internal/errors"
	"github.com/thurn/spelldawn/internal/game"
	"github.com/thurn/spelldawn/internal/game/dispatch"
	"github.com/thurn/spelldawn/internal/game/mutations"
	"github.com/thurn/spelldawn/internal/game/queries"
	"github.com/thurn/spelldawn/internal/game/raid"
)

func tracer() trace.Tracer {
	return otel.Tracer("github.com/thurn/spelldawn/internal/game/engine")
}

// Execute applies one player action and returns the resulting game state.
// The input game is never mutated; on error it remains the authoritative
// state and the returned game is nil.
func Execute(ctx context.Context, g *game.Game, side game.Side, action Action) (*game.Game, error) {
	_, span := tracer().Start(ctx, "engine.Execute", trace.WithAttributes(
		attribute.String("game.id", g.ID),
		attribute.String("game.side", string(side)),
		attribute.String("game.action", action.Name()),
	))
	defer span.End()

	next := g.Clone()
	if err := apply(next, side, action); err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, string(errors.GetCode(err)))
		return nil, err
	}
	return next, nil
}

func apply(g *game.Game, side game.Side, action Action) error {
	switch {
	case action.DrawCard != nil:
		return drawCard(g, side)
	case action.GainMana != nil:
		return gainMana(g, side)
	case action.PlayCard != nil:
		return playCard(g, side, *action.PlayCard)
	case action.InitiateRaid != nil:
		return initiateRaid(g, side, action.InitiateRaid.Room)
	case action.Raid != nil:
		return raid.HandleAction(g, side, action.Raid.Action)
	case action.EndTurn != nil:
		return endTurn(g, side)
	default:
		return errors.New(errors.CodeActionNotAllowed, "empty action")
	}
}

// requireMainPhase guards the primary game actions: they are only legal on
// the acting player's turn, outside raids and prompts, with action points
// remaining.
func requireMainPhase(g *game.Game, side game.Side) error {
	if !queries.InMainPhase(g, side) {
		return errors.New(errors.CodeActionNotAllowed, "action requires the main phase of your turn")
	}
	return nil
}

func drawCard(g *game.Game, side game.Side) error {
	if err := requireMainPhase(g, side); err != nil {
		return err
	}
	if err := mutations.SpendActionPoints(g, side, 1); err != nil {
		return err
	}
	_, err := mutations.DrawCard(g, side)
	return err
}

func gainMana(g *game.Game, side game.Side) error {
	if err := requireMainPhase(g, side); err != nil {
		return err
	}
	if err := mutations.SpendActionPoints(g, side, 1); err != nil {
		return err
	}
	mutations.GainMana(g, side, 1)
	return nil
}

func playCard(g *game.Game, side game.Side, action PlayCardAction) error {
	if err := requireMainPhase(g, side); err != nil {
		return err
	}
	card := g.Card(action.Card)
	if card == nil {
		return errors.New(errors.CodeCardNotFound, "card does not exist")
	}
	if card.Side != side || !card.Position.InHand() {
		return errors.New(errors.CodeActionNotAllowed, "card is not in your hand")
	}
	definition := g.Definition(action.Card)
	if definition == nil {
		return errors.New(errors.CodeUnknownCardName, "card has no definition")
	}

	if err := mutations.SpendActionPoints(g, side, queries.ActionCost(g, action.Card)); err != nil {
		return err
	}
	if cost := queries.ManaCost(g, action.Card); cost != nil {
		if err := mutations.SpendMana(g, side, *cost); err != nil {
			return err
		}
	}

	target, err := playPosition(definition.CardType, side, action.Room)
	if err != nil {
		return err
	}

	// The Champion plays face up. The Overlord's room cards stay face
	// down until activated or accessed.
	if side == game.SideChampion || definition.CardType == game.CardTypeSpell {
		if err := mutations.SetRevealed(g, action.Card, true); err != nil {
			return err
		}
	}
	if definition.CardType == game.CardTypeSpell {
		// Spells resolve and discard without entering play, so their play
		// delegates never reach the cache. Run them directly from the
		// definition, then fire the cache-based event for onlookers.
		if err := resolveSpell(g, action.Card, definition); err != nil {
			return err
		}
		if err := dispatch.InvokePlayCard(g, action.Card); err != nil {
			return err
		}
	}
	return mutations.MoveCard(g, action.Card, target)
}

func resolveSpell(g *game.Game, card game.CardID, definition *game.CardDefinition) error {
	for index := range definition.Abilities {
		id := game.AbilityID{Card: card, Index: index}
		ability, err := g.Ability(id)
		if err != nil {
			return err
		}
		scope := game.NewScope(id)
		for _, delegate := range ability.Delegates {
			handler := delegate.PlayCard
			if handler == nil {
				continue
			}
			if handler.Requirement != nil && !handler.Requirement(g, scope, card) {
				continue
			}
			if err := handler.Mutation(g, scope, card); err != nil {
				return err
			}
		}
	}
	return nil
}

// playPosition maps a card type to the position the card occupies once
// played.
func playPosition(cardType game.CardType, side game.Side, room *game.RoomID) (game.CardPosition, error) {
	switch cardType {
	case game.CardTypeWeapon:
		return game.ItemPosition(game.ItemLocationWeapon), nil
	case game.CardTypeArtifact:
		return game.ItemPosition(game.ItemLocationArtifact), nil
	case game.CardTypeMinion:
		if room == nil {
			return game.CardPosition{}, errors.New(errors.CodeActionNotAllowed, "minions require a target room")
		}
		return game.RoomPosition(*room, game.RoomLocationDefender), nil
	case game.CardTypeProject, game.CardTypeScheme:
		if room == nil {
			return game.CardPosition{}, errors.New(errors.CodeActionNotAllowed, "projects and schemes require a target room")
		}
		return game.RoomPosition(*room, game.RoomLocationOccupant), nil
	case game.CardTypeSpell:
		return game.DiscardPilePosition(side), nil
	default:
		return game.CardPosition{}, errors.New(errors.CodeActionNotAllowed, "this card type cannot be played")
	}
}

func initiateRaid(g *game.Game, side game.Side, room game.RoomID) error {
	if side != game.SideChampion {
		return errors.New(errors.CodeActionNotAllowed, "only the Champion raids")
	}
	if err := requireMainPhase(g, side); err != nil {
		return err
	}
	if err := mutations.SpendActionPoints(g, side, 1); err != nil {
		return err
	}
	if _, err := mutations.InitiateRaid(g, room); err != nil {
		return err
	}
	return raid.Run(g)
}

func endTurn(g *game.Game, side game.Side) error {
	if g.Data.Turn.Side != side {
		return errors.New(errors.CodeActionNotAllowed, "not your turn")
	}
	if g.Data.Raid != nil || g.Overlord.Prompt != nil || g.Champion.Prompt != nil {
		return errors.New(errors.CodeActionNotAllowed, "resolve the pending raid or prompt first")
	}

	g.Player(side).Actions = 0
	opponent := side.Opponent()
	g.Data.Turn = game.TurnData{Side: opponent, Number: g.Data.Turn.Number + 1}
	g.Player(opponent).Actions = queries.StartOfTurnActionCount(g, opponent)
	if g.TopOfDeck(opponent) != nil {
		if _, err := mutations.DrawCard(g, opponent); err != nil {
			return err
		}
	}
	g.PushUpdate(game.Update{Type: game.UpdateTypeUpdateGameState})
	return nil
}
