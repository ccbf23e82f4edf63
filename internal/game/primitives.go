package game

// Side identifies one of the two players in a game.
type Side string

const (
	// SideOverlord is the defending player who owns rooms and defenders.
	SideOverlord Side = "overlord"
	// SideChampion is the challenging player who initiates raids.
	SideChampion Side = "champion"
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == SideOverlord {
		return SideChampion
	}
	return SideOverlord
}

// IsValid reports whether the side is one of the two known players.
func (s Side) IsValid() bool {
	return s == SideOverlord || s == SideChampion
}

// CardName is the key into the ability registry for a card.
type CardName string

// CardID identifies one card within a game. Each side owns a densely
// numbered card list, so the pair (side, index) is stable for the whole
// game regardless of where the card moves.
type CardID struct {
	Side  Side `json:"side"`
	Index int  `json:"index"`
}

// AbilityID addresses one ability instance: the card it belongs to and the
// ability's index within the card's declared ability list.
type AbilityID struct {
	Card  CardID `json:"card"`
	Index int    `json:"index"`
}

// Scope is the capability handle passed to every delegate invocation. It
// identifies the currently executing ability instance without granting
// direct state access.
type Scope struct {
	ability AbilityID
}

// NewScope creates a scope for the given ability instance.
func NewScope(ability AbilityID) Scope {
	return Scope{ability: ability}
}

// AbilityID returns the ability instance this scope executes for.
func (s Scope) AbilityID() AbilityID {
	return s.ability
}

// CardID returns the card owning the executing ability.
func (s Scope) CardID() CardID {
	return s.ability.Card
}

// Side returns the side owning the executing ability's card.
func (s Scope) Side() Side {
	return s.ability.Card.Side
}

// RoomID identifies a room of the Overlord player.
type RoomID string

const (
	// RoomVault is the special room backed by the Overlord's deck.
	RoomVault RoomID = "vault"
	// RoomSanctum is the special room backed by the Overlord's hand.
	RoomSanctum RoomID = "sanctum"
	// RoomCrypts is the special room backed by the Overlord's discard pile.
	RoomCrypts RoomID = "crypts"

	RoomA RoomID = "room_a"
	RoomB RoomID = "room_b"
	RoomC RoomID = "room_c"
	RoomD RoomID = "room_d"
	RoomE RoomID = "room_e"
)

// RaidID identifies one raid within a game, assigned from a monotonic
// per-game counter.
type RaidID int

// ManaValue counts mana, either in a player's pool or stored on a card.
type ManaValue int

// ActionCount counts action points.
type ActionCount int

// AttackValue measures a weapon's attack power.
type AttackValue int

// HealthValue measures a defender's health.
type HealthValue int

// ShieldValue measures a defender's shield.
type ShieldValue int

// BreachValue measures how much shield a weapon ignores.
type BreachValue int

// LevelValue counts how many times a card has been leveled up.
type LevelValue int

// BoostCount counts how many times a card's boost ability has been
// activated during the current encounter.
type BoostCount int

// SortingKey determines display order when multiple cards share a position.
// Taken from an opaque, monotonically increasing per-game counter recording
// when the card last moved.
type SortingKey uint64
