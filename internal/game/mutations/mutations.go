// Package mutations is the sole writer of game state. Every function here
// validates its preconditions, applies the change, raises the semantically
// matching events through the dispatch engine, and appends one observable
// update record. Events fire strictly after the mutation is visible, so
// delegate guards observe post-mutation state.
//
// Precondition violations signal a caller bug: they return a coded error
// and the enclosing action must be discarded without partial state applied
// (the engine package enforces this by executing actions against a clone).
package mutations

import (
	"github.com/thurn/spelldawn/internal/errors"
	"github.com/thurn/spelldawn/internal/game"
	"github.com/thurn/spelldawn/internal/game/dispatch"
)

// MoveCard moves a card to a new position. It detects higher-level
// transitions by comparing old and new position categories: entering hand
// from deck raises a draw event, entering play raises a play event, and
// collapsing to an unknown deck position records destroy semantics. The
// most specific applicable update kind wins over the generic moved record.
//
// This function does not change the card's revealed flag; callers update
// that when the card moves to a public zone.
func MoveCard(g *game.Game, id game.CardID, newPosition game.CardPosition) error {
	card := g.Card(id)
	if card == nil {
		return errors.New(errors.CodeCardNotFound, "move card: card not found")
	}
	oldPosition := card.Position
	if err := g.SetCardPosition(id, newPosition); err != nil {
		return err
	}

	// The set of in-play ability instances changed, so derived delegate
	// state must be rebuilt before events fire.
	if oldPosition.InPlay() != newPosition.InPlay() {
		dispatch.PopulateCache(g)
	}

	if err := dispatch.InvokeCardMoved(g, game.CardMoved{
		Card:        id,
		OldPosition: oldPosition,
		NewPosition: newPosition,
	}); err != nil {
		return err
	}

	pushedUpdate := false
	if oldPosition.InDeck() && newPosition.InHand() {
		if err := dispatch.InvokeDrawCard(g, id); err != nil {
			return err
		}
		g.PushUpdate(game.CardUpdate(game.UpdateTypeDrawCard, id))
		pushedUpdate = true
	}

	if !oldPosition.InPlay() && newPosition.InPlay() {
		if err := dispatch.InvokePlayCard(g, id); err != nil {
			return err
		}
	}

	if newPosition.Kind == game.PositionDeckUnknown {
		g.PushUpdate(game.CardUpdate(game.UpdateTypeDestroyCard, id))
		pushedUpdate = true
	}

	if !pushedUpdate {
		g.PushUpdate(game.CardUpdate(game.UpdateTypeMoveCard, id))
	}
	return nil
}

// DrawCard moves the top card of a side's deck into its hand.
func DrawCard(g *game.Game, side game.Side) (game.CardID, error) {
	top := g.TopOfDeck(side)
	if top == nil {
		return game.CardID{}, errors.New(errors.CodeCardNotInDeck, "draw card: deck is empty")
	}
	id := top.ID
	if err := MoveCard(g, id, game.HandPosition(side)); err != nil {
		return game.CardID{}, err
	}
	return id, nil
}

// DiscardRandomCard moves one uniformly chosen card from a side's hand to
// its discard pile. The choice advances the game's random stream; an empty
// hand discards nothing.
func DiscardRandomCard(g *game.Game, side game.Side) error {
	hand := g.Hand(side)
	if len(hand) == 0 {
		return nil
	}
	card := hand[g.RandomIndex(len(hand))]
	return MoveCard(g, card.ID, game.DiscardPilePosition(side))
}

// SetRevealed updates the revealed flag of a card. Becoming revealed fires
// the reveal event and appends a reveal update; other transitions are
// silent.
func SetRevealed(g *game.Game, id game.CardID, revealed bool) error {
	card := g.Card(id)
	if card == nil {
		return errors.New(errors.CodeCardNotFound, "set revealed: card not found")
	}
	wasRevealed := card.Data.Revealed
	card.Data.Revealed = revealed

	if !wasRevealed && revealed {
		g.PushUpdate(game.CardUpdate(game.UpdateTypeRevealCard, id))
		if err := dispatch.InvokeRevealCard(g, id); err != nil {
			return err
		}
	}
	return nil
}

// GainMana gives mana to the indicated player.
func GainMana(g *game.Game, side game.Side, amount game.ManaValue) {
	g.Player(side).Mana += amount
	g.PushUpdate(game.Update{Type: game.UpdateTypeUpdateGameState, Side: side})
}

// SpendMana spends a player's mana. Overspending is a fatal precondition
// violation.
func SpendMana(g *game.Game, side game.Side, amount game.ManaValue) error {
	player := g.Player(side)
	if player.Mana < amount {
		return errors.New(errors.CodeInsufficientMana, "insufficient mana available")
	}
	player.Mana -= amount
	g.PushUpdate(game.Update{Type: game.UpdateTypeUpdateGameState, Side: side})
	return nil
}

// SpendActionPoints spends a player's action points. Overspending is a
// fatal precondition violation.
func SpendActionPoints(g *game.Game, side game.Side, amount game.ActionCount) error {
	player := g.Player(side)
	if player.Actions < amount {
		return errors.New(errors.CodeInsufficientActions, "insufficient action points available")
	}
	player.Actions -= amount
	g.PushUpdate(game.Update{Type: game.UpdateTypeUpdateGameState, Side: side})
	return nil
}

// SetStoredMana overwrites the mana banked on a card.
func SetStoredMana(g *game.Game, id game.CardID, amount game.ManaValue) error {
	card := g.Card(id)
	if card == nil {
		return errors.New(errors.CodeCardNotFound, "set stored mana: card not found")
	}
	card.Data.StoredMana = amount
	g.PushUpdate(game.CardUpdate(game.UpdateTypeUpdateCard, id))
	return nil
}

// TakeStoredMana withdraws up to maximum stored mana from a card and gives
// it to the card's owner. The amount taken is min(available, maximum);
// withdrawing from a card with no stored mana takes zero and is never an
// error, so the stored counter can never go negative.
func TakeStoredMana(g *game.Game, id game.CardID, maximum game.ManaValue) (game.ManaValue, error) {
	card := g.Card(id)
	if card == nil {
		return 0, errors.New(errors.CodeCardNotFound, "take stored mana: card not found")
	}
	taken := min(card.Data.StoredMana, maximum)
	card.Data.StoredMana -= taken
	GainMana(g, id.Side, taken)
	g.PushUpdate(game.CardUpdate(game.UpdateTypeUpdateCard, id))
	if err := dispatch.InvokeStoredManaTaken(g, id); err != nil {
		return taken, err
	}
	return taken, nil
}

// ActivateBoost records count activations of a card's boost ability and
// fires the activate-boost event so the card's delegates can apply it.
func ActivateBoost(g *game.Game, id game.CardID, count game.BoostCount) error {
	card := g.Card(id)
	if card == nil {
		return errors.New(errors.CodeCardNotFound, "activate boost: card not found")
	}
	g.PushUpdate(game.CardUpdate(game.UpdateTypeUpdateCard, id))
	return dispatch.InvokeActivateBoost(g, game.BoostData{Card: id, Count: count})
}

// WriteBoost overwrites a card's boost count to match the provided data.
func WriteBoost(g *game.Game, data game.BoostData) error {
	card := g.Card(data.Card)
	if card == nil {
		return errors.New(errors.CodeCardNotFound, "write boost: card not found")
	}
	card.Data.BoostCount = data.Count
	return nil
}

// ClearBoost resets a card's boost count to zero. Boost counts never
// survive outside an active encounter.
func ClearBoost(g *game.Game, id game.CardID) error {
	card := g.Card(id)
	if card == nil {
		return errors.New(errors.CodeCardNotFound, "clear boost: card not found")
	}
	card.Data.BoostCount = 0
	return nil
}

// SetPrompt shows a prompt to the side player. Setting a prompt while one
// is already active is a fatal precondition violation.
func SetPrompt(g *game.Game, side game.Side, prompt game.Prompt) error {
	player := g.Player(side)
	if player.Prompt != nil {
		return errors.New(errors.CodePromptAlreadyActive, "player already has an active prompt")
	}
	player.Prompt = &prompt
	g.PushUpdate(game.Update{Type: game.UpdateTypeUserPrompt, Side: side})
	return nil
}

// ClearPrompts clears shown prompts for both players.
func ClearPrompts(g *game.Game) {
	g.Overlord.Prompt = nil
	g.Champion.Prompt = nil
	g.PushUpdate(game.Update{Type: game.UpdateTypeClearPrompts})
}

// InitiateRaid creates a new raid on the given room in its Begin phase.
// Starting a raid while one is active is a fatal precondition violation.
// The raid package's driver runs the phase sequence from here.
func InitiateRaid(g *game.Game, room game.RoomID) (*game.RaidData, error) {
	if g.Data.Raid != nil {
		return nil, errors.New(errors.CodeRaidAlreadyActive, "raid is already active")
	}
	raid := &game.RaidData{
		ID:     g.Data.NextRaidID,
		Target: room,
		Phase:  game.RaidPhaseBegin,
	}
	g.Data.NextRaidID++
	g.Data.Raid = raid
	g.PushUpdate(game.Update{Type: game.UpdateTypeInitiateRaid, Room: room})
	return raid, nil
}

// EndRaid ends the current raid. Ending a raid while none is active is a
// fatal precondition violation.
func EndRaid(g *game.Game) error {
	raid, err := g.Raid()
	if err != nil {
		return err
	}
	raidID := raid.ID
	g.Data.Raid = nil
	g.PushUpdate(game.Update{Type: game.UpdateTypeEndRaid})
	return dispatch.InvokeRaidEnd(g, raidID)
}

// ScoreCard moves a scheme card to the scoring side's score area and
// credits its points.
func ScoreCard(g *game.Game, side game.Side, id game.CardID) error {
	definition := g.Definition(id)
	if definition == nil {
		return errors.New(errors.CodeCardNotFound, "score card: card not found")
	}
	if err := MoveCard(g, id, game.ScoredPosition(side)); err != nil {
		return err
	}
	if definition.Stats.SchemePoints != nil {
		g.Player(side).Score += definition.Stats.SchemePoints.Points
		g.PushUpdate(game.Update{Type: game.UpdateTypeUpdateGameState, Side: side})
	}
	return dispatch.InvokeScoreCard(g, id)
}
