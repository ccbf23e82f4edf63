package engine

import "github.com/thurn/spelldawn/internal/game"

// DrawCardAction spends one action point to draw the top card of the
// acting player's deck.
type DrawCardAction struct{}

// GainManaAction spends one action point to gain one mana.
type GainManaAction struct{}

// PlayCardAction plays a card from the acting player's hand. Room must be
// set for cards that are played into a room.
type PlayCardAction struct {
	Card game.CardID
	Room *game.RoomID
}

// InitiateRaidAction spends one action point to start a raid on a room.
// Only the Champion raids.
type InitiateRaidAction struct {
	Room game.RoomID
}

// RaidAction answers the pending raid prompt.
type RaidAction struct {
	Action game.PromptAction
}

// EndTurnAction passes the turn to the opponent.
type EndTurnAction struct{}

// Action is a closed variant over the external actions a player can
// submit: exactly one field is non-nil.
type Action struct {
	DrawCard     *DrawCardAction
	GainMana     *GainManaAction
	PlayCard     *PlayCardAction
	InitiateRaid *InitiateRaidAction
	Raid         *RaidAction
	EndTurn      *EndTurnAction
}

// Name returns a stable identifier for the action variant, used in traces
// and logs.
func (a Action) Name() string {
	switch {
	case a.DrawCard != nil:
		return "draw_card"
	case a.GainMana != nil:
		return "gain_mana"
	case a.PlayCard != nil:
		return "play_card"
	case a.InitiateRaid != nil:
		return "initiate_raid"
	case a.Raid != nil:
		return "raid_action"
	case a.EndTurn != nil:
		return "end_turn"
	default:
		return "unknown"
	}
}
