package game

// Kind identifies one event or query a delegate can respond to. The set of
// kinds is closed; each kind corresponds to exactly one field of Delegate.
type Kind string

// Event kinds. Event delegates are ordered, fallible, and may mutate state.
const (
	KindCardMoved       Kind = "card_moved"
	KindDrawCard        Kind = "draw_card"
	KindPlayCard        Kind = "play_card"
	KindRevealCard      Kind = "reveal_card"
	KindStoredManaTaken Kind = "stored_mana_taken"
	KindActivateBoost   Kind = "activate_boost"
	KindMinionDefeated  Kind = "minion_defeated"
	KindMinionCombat    Kind = "minion_combat"
	KindEncounterEnd    Kind = "encounter_end"
	KindScoreCard       Kind = "score_card"
	KindRaidStart       Kind = "raid_start"
	KindRaidEnd         Kind = "raid_end"
)

// Query kinds. Query delegates are ordered, total folds over a base value.
const (
	KindManaCost           Kind = "mana_cost"
	KindActionCost         Kind = "action_cost"
	KindAttackValue        Kind = "attack_value"
	KindHealthValue        Kind = "health_value"
	KindShieldValue        Kind = "shield_value"
	KindBreachValue        Kind = "breach_value"
	KindBoostCount         Kind = "boost_count"
	KindAttackBoost        Kind = "attack_boost"
	KindStartOfTurnActions Kind = "start_of_turn_actions"
	KindVaultAccessCount   Kind = "vault_access_count"
	KindSanctumAccessCount Kind = "sanctum_access_count"
)

// CardMoved is the payload for KindCardMoved events.
type CardMoved struct {
	Card        CardID
	OldPosition CardPosition
	NewPosition CardPosition
}

// BoostData is the payload for KindActivateBoost events.
type BoostData struct {
	// Card is the card whose boost ability was activated.
	Card CardID
	// Count is the number of activations.
	Count BoostCount
}

// RaidStart is the payload for KindRaidStart events.
type RaidStart struct {
	Raid   RaidID
	Target RoomID
}

// EventDelegate pairs a guard with an effect for one event kind. A nil
// Requirement is treated as always true.
type EventDelegate[T any] struct {
	// Requirement decides whether the Mutation runs for this invocation.
	// It observes post-mutation state.
	Requirement func(g *Game, s Scope, data T) bool
	// Mutation applies the delegate's effect. A returned error halts the
	// remaining delegates for the event and aborts the enclosing action.
	Mutation func(g *Game, s Scope, data T) error
}

// QueryDelegate pairs a guard with a transformation for one query kind. A
// nil Requirement is treated as always true. Transformations are total:
// they cannot fail and cannot short-circuit the fold.
type QueryDelegate[T, R any] struct {
	Requirement    func(g *Game, s Scope, data T) bool
	Transformation func(g *Game, s Scope, data T, current R) R
}

// Delegate is a closed tagged variant over event and query kinds: exactly
// one field is non-nil, matching the value returned by Kind. Dispatch
// recovers the correctly typed closures by reading that field directly.
type Delegate struct {
	CardMoved       *EventDelegate[CardMoved]
	DrawCard        *EventDelegate[CardID]
	PlayCard        *EventDelegate[CardID]
	RevealCard      *EventDelegate[CardID]
	StoredManaTaken *EventDelegate[CardID]
	ActivateBoost   *EventDelegate[BoostData]
	MinionDefeated  *EventDelegate[CardID]
	MinionCombat    *EventDelegate[CardID]
	EncounterEnd    *EventDelegate[RaidID]
	ScoreCard       *EventDelegate[CardID]
	RaidStart       *EventDelegate[RaidStart]
	RaidEnd         *EventDelegate[RaidID]

	ManaCost           *QueryDelegate[CardID, *ManaValue]
	ActionCost         *QueryDelegate[CardID, ActionCount]
	AttackValue        *QueryDelegate[CardID, AttackValue]
	HealthValue        *QueryDelegate[CardID, HealthValue]
	ShieldValue        *QueryDelegate[CardID, ShieldValue]
	BreachValue        *QueryDelegate[CardID, BreachValue]
	BoostCount         *QueryDelegate[CardID, BoostCount]
	AttackBoost        *QueryDelegate[CardID, AttackBoost]
	StartOfTurnActions *QueryDelegate[Side, ActionCount]
	VaultAccessCount   *QueryDelegate[RaidID, int]
	SanctumAccessCount *QueryDelegate[RaidID, int]
}

// Kind returns the kind this delegate responds to.
func (d Delegate) Kind() Kind {
	switch {
	case d.CardMoved != nil:
		return KindCardMoved
	case d.DrawCard != nil:
		return KindDrawCard
	case d.PlayCard != nil:
		return KindPlayCard
	case d.RevealCard != nil:
		return KindRevealCard
	case d.StoredManaTaken != nil:
		return KindStoredManaTaken
	case d.ActivateBoost != nil:
		return KindActivateBoost
	case d.MinionDefeated != nil:
		return KindMinionDefeated
	case d.MinionCombat != nil:
		return KindMinionCombat
	case d.EncounterEnd != nil:
		return KindEncounterEnd
	case d.ScoreCard != nil:
		return KindScoreCard
	case d.RaidStart != nil:
		return KindRaidStart
	case d.RaidEnd != nil:
		return KindRaidEnd
	case d.ManaCost != nil:
		return KindManaCost
	case d.ActionCost != nil:
		return KindActionCost
	case d.AttackValue != nil:
		return KindAttackValue
	case d.HealthValue != nil:
		return KindHealthValue
	case d.ShieldValue != nil:
		return KindShieldValue
	case d.BreachValue != nil:
		return KindBreachValue
	case d.BoostCount != nil:
		return KindBoostCount
	case d.AttackBoost != nil:
		return KindAttackBoost
	case d.StartOfTurnActions != nil:
		return KindStartOfTurnActions
	case d.VaultAccessCount != nil:
		return KindVaultAccessCount
	case d.SanctumAccessCount != nil:
		return KindSanctumAccessCount
	default:
		return ""
	}
}

// DelegateContext is one cache entry: a delegate plus the scope of the
// ability instance that registered it.
type DelegateContext struct {
	Scope    Scope
	Delegate Delegate
}

// DelegateCache indexes registered delegates by kind, in deterministic
// registration order. It is derived state: rebuilding it from a fixed card
// collection snapshot always yields the same ordering.
//
// A rebuild installs an entirely new lookup map with fresh slices, so any
// iteration over a slice obtained before the rebuild proceeds unaffected.
type DelegateCache struct {
	lookup map[Kind][]DelegateContext
}

// NewDelegateCache creates a cache from a prepared lookup table.
func NewDelegateCache(lookup map[Kind][]DelegateContext) DelegateCache {
	return DelegateCache{lookup: lookup}
}

// Lookup returns the ordered delegate list for a kind. The returned slice
// is stable: cache rebuilds replace it rather than mutating it.
func (c *DelegateCache) Lookup(kind Kind) []DelegateContext {
	if c == nil || c.lookup == nil {
		return nil
	}
	return c.lookup[kind]
}

// Count returns the number of delegates registered for a kind.
func (c *DelegateCache) Count(kind Kind) int {
	return len(c.Lookup(kind))
}
