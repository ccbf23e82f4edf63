package game

// AbilityState is opaque per-ability storage, keyed by whatever the
// ability's delegates agree on.
type AbilityState map[string]any

// CardData holds the mutable counters and flags of a card.
type CardData struct {
	// Revealed reports whether this card has been revealed to the opponent.
	Revealed bool `json:"revealed,omitempty"`
	// CardLevel counts how many times this card has been leveled up.
	CardLevel LevelValue `json:"card_level,omitempty"`
	// BoostCount counts activations of this card's boost ability. It is
	// reset to zero whenever an encounter ends.
	BoostCount BoostCount `json:"boost_count,omitempty"`
	// StoredMana is the mana banked on this card. Never negative.
	StoredMana ManaValue `json:"stored_mana,omitempty"`
	// AbilityState holds per-ability state keyed by ability index.
	AbilityState map[int]AbilityState `json:"ability_state,omitempty"`
}

// CardState stores the state of a card during an ongoing game. The rules
// of a card are not part of its state, see CardDefinition for that.
type CardState struct {
	// ID identifies this card.
	ID CardID `json:"id"`
	// Name keys this card's definition in the registry.
	Name CardName `json:"name"`
	// Side is the player who owns this card.
	Side Side `json:"side"`
	// Position locates the card. Use Game.SetCardPosition instead of
	// modifying this directly.
	Position CardPosition `json:"position"`
	// SortingKey orders this card within its position.
	SortingKey SortingKey `json:"sorting_key"`
	// Data holds the card's mutable counters.
	Data CardData `json:"data"`
}

// NewCardState creates a card in its initial position: the identity slot
// for identity cards, otherwise an unknown deck position.
func NewCardState(id CardID, name CardName, side Side, isIdentity bool) CardState {
	position := DeckUnknownPosition(side)
	revealed := false
	if isIdentity {
		position = IdentityPosition(side)
		revealed = true
	}
	return CardState{
		ID:       id,
		Name:     name,
		Side:     side,
		Position: position,
		Data:     CardData{Revealed: revealed},
	}
}

// IsRevealedTo reports whether this card is currently visible to the given
// player. Cards in unknown deck positions are visible to nobody; a player
// always sees their own cards elsewhere.
func (c *CardState) IsRevealedTo(side Side) bool {
	switch {
	case c.Position.Kind == PositionDeckUnknown:
		return false
	case c.ID.Side == side:
		return true
	default:
		return c.Data.Revealed
	}
}
