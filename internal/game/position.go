package game

// PositionKind classifies card positions without their parameters.
type PositionKind string

const (
	// PositionDeckUnknown is an unspecified position within a player's
	// deck. The default position of all cards when a new game starts.
	PositionDeckUnknown PositionKind = "deck_unknown"
	// PositionDeckTop marks a card known to be on top of a deck.
	PositionDeckTop PositionKind = "deck_top"
	// PositionHand places a card in a player's hand.
	PositionHand PositionKind = "hand"
	// PositionRoom places a card in a room sub-slot.
	PositionRoom PositionKind = "room"
	// PositionArenaItem places a card in an item slot.
	PositionArenaItem PositionKind = "arena_item"
	// PositionDiscardPile places a card in a discard pile.
	PositionDiscardPile PositionKind = "discard_pile"
	// PositionScored places a card in a player's score area.
	PositionScored PositionKind = "scored"
	// PositionIdentity marks a side's identity card. A game must not
	// contain more than one identity card per side.
	PositionIdentity PositionKind = "identity"
)

// RoomLocation identifies a sub-slot within a room.
type RoomLocation string

const (
	// RoomLocationDefender holds defending minions.
	RoomLocationDefender RoomLocation = "defender"
	// RoomLocationOccupant holds projects and schemes.
	RoomLocationOccupant RoomLocation = "occupant"
)

// ItemLocation identifies an item slot in the arena.
type ItemLocation string

const (
	// ItemLocationWeapon holds the Champion's weapons.
	ItemLocationWeapon ItemLocation = "weapon"
	// ItemLocationArtifact holds the Champion's artifacts.
	ItemLocationArtifact ItemLocation = "artifact"
)

// CardPosition identifies the location of a card during a game. A card
// occupies exactly one position. The zero value is not a valid position.
type CardPosition struct {
	Kind PositionKind `json:"kind"`
	// Side parameterizes deck, hand, discard, scored and identity positions.
	Side Side `json:"side,omitempty"`
	// Room and RoomLocation parameterize room positions.
	Room         RoomID       `json:"room,omitempty"`
	RoomLocation RoomLocation `json:"room_location,omitempty"`
	// ItemLocation parameterizes arena item positions.
	ItemLocation ItemLocation `json:"item_location,omitempty"`
}

// DeckUnknownPosition returns an unspecified deck position for a side.
func DeckUnknownPosition(side Side) CardPosition {
	return CardPosition{Kind: PositionDeckUnknown, Side: side}
}

// DeckTopPosition returns the known deck-top position for a side.
func DeckTopPosition(side Side) CardPosition {
	return CardPosition{Kind: PositionDeckTop, Side: side}
}

// HandPosition returns the hand position for a side.
func HandPosition(side Side) CardPosition {
	return CardPosition{Kind: PositionHand, Side: side}
}

// RoomPosition returns a room sub-slot position.
func RoomPosition(room RoomID, location RoomLocation) CardPosition {
	return CardPosition{Kind: PositionRoom, Room: room, RoomLocation: location}
}

// ItemPosition returns an arena item slot position.
func ItemPosition(location ItemLocation) CardPosition {
	return CardPosition{Kind: PositionArenaItem, ItemLocation: location}
}

// DiscardPilePosition returns the discard pile position for a side.
func DiscardPilePosition(side Side) CardPosition {
	return CardPosition{Kind: PositionDiscardPile, Side: side}
}

// ScoredPosition returns the score area position for a side.
func ScoredPosition(side Side) CardPosition {
	return CardPosition{Kind: PositionScored, Side: side}
}

// IdentityPosition returns the identity position for a side.
func IdentityPosition(side Side) CardPosition {
	return CardPosition{Kind: PositionIdentity, Side: side}
}

// InDeck reports whether this is a known or unknown deck position.
func (p CardPosition) InDeck() bool {
	return p.Kind == PositionDeckUnknown || p.Kind == PositionDeckTop
}

// InHand reports whether the card is in a hand.
func (p CardPosition) InHand() bool {
	return p.Kind == PositionHand
}

// InPlay reports whether the card is in a room or played as an item.
func (p CardPosition) InPlay() bool {
	return p.Kind == PositionRoom || p.Kind == PositionArenaItem
}

// InDiscardPile reports whether the card is in a discard pile.
func (p CardPosition) InDiscardPile() bool {
	return p.Kind == PositionDiscardPile
}

// InScorePile reports whether the card is in a score area.
func (p CardPosition) InScorePile() bool {
	return p.Kind == PositionScored
}
