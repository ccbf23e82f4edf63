package game

// UpdateType identifies the kind of an observable update record.
type UpdateType string

const (
	// UpdateTypeDrawCard records a card drawn into a hand.
	UpdateTypeDrawCard UpdateType = "draw_card"
	// UpdateTypeMoveCard records a generic card movement.
	UpdateTypeMoveCard UpdateType = "move_card"
	// UpdateTypeDestroyCard records a card collapsing back to an unknown
	// deck position.
	UpdateTypeDestroyCard UpdateType = "destroy_card"
	// UpdateTypeRevealCard records a card becoming visible to the opponent.
	UpdateTypeRevealCard UpdateType = "reveal_card"
	// UpdateTypeUpdateCard records a change to a card's counters.
	UpdateTypeUpdateCard UpdateType = "update_card"
	// UpdateTypeUpdateGameState records a change to player-level state.
	UpdateTypeUpdateGameState UpdateType = "update_game_state"
	// UpdateTypeUserPrompt records a prompt shown to a player.
	UpdateTypeUserPrompt UpdateType = "user_prompt"
	// UpdateTypeClearPrompts records all prompts being dismissed.
	UpdateTypeClearPrompts UpdateType = "clear_prompts"
	// UpdateTypeInitiateRaid records a raid starting on a room.
	UpdateTypeInitiateRaid UpdateType = "initiate_raid"
	// UpdateTypeEndRaid records the active raid ending.
	UpdateTypeEndRaid UpdateType = "end_raid"
)

// Update is one append-only record describing an externally observable
// state change. The presentation layer drains the update log after each
// external action completes.
type Update struct {
	Type UpdateType `json:"type"`
	// Card is set for card-specific updates.
	Card *CardID `json:"card,omitempty"`
	// Side is set for player-specific updates.
	Side Side `json:"side,omitempty"`
	// Room is set for raid updates.
	Room RoomID `json:"room,omitempty"`
}

// CardUpdate builds an update record about one card.
func CardUpdate(updateType UpdateType, card CardID) Update {
	return Update{Type: updateType, Card: &card}
}
