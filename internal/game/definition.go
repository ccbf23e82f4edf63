package game

import (
	"github.com/thurn/spelldawn/internal/errors"
)

// CardType classifies cards by how they are played.
type CardType string

const (
	CardTypeSpell    CardType = "spell"
	CardTypeWeapon   CardType = "weapon"
	CardTypeArtifact CardType = "artifact"
	CardTypeMinion   CardType = "minion"
	CardTypeProject  CardType = "project"
	CardTypeScheme   CardType = "scheme"
	CardTypeIdentity CardType = "identity"
)

// AttackBoost describes a repeatable, paid attack increase: paying Cost
// raises the card's attack by Bonus for the current encounter.
type AttackBoost struct {
	Cost  ManaValue
	Bonus AttackValue
}

// SchemePoints describes the scoring profile of a scheme card.
type SchemePoints struct {
	// LevelRequirement is the level at which the Overlord may score this
	// scheme.
	LevelRequirement LevelValue
	// Points awarded when the scheme is scored.
	Points int
}

// CardStats holds the static base values a card's queries start from. A nil
// field means the card has no such stat; queries substitute a
// type-appropriate default, typically zero.
type CardStats struct {
	Health       *HealthValue
	Attack       *AttackValue
	Shield       *ShieldValue
	Breach       *BreachValue
	AttackBoost  *AttackBoost
	SchemePoints *SchemePoints
}

// CardCost is the price of playing a card. A nil Mana means the card has no
// mana cost (for example schemes).
type CardCost struct {
	Mana    *ManaValue
	Actions ActionCount
}

// Ability is one declared ability of a card: an ordered list of delegates
// responding to events and queries.
type Ability struct {
	Delegates []Delegate
}

// CardDefinition is the immutable declaration of a card, produced by the
// content catalog and consumed here only by name lookup.
type CardDefinition struct {
	Name      CardName
	Cost      CardCost
	CardType  CardType
	Side      Side
	Abilities []Ability
	Stats     CardStats
}

// Ability returns the declared ability at the given index, or nil if the
// index is out of range.
func (d *CardDefinition) Ability(index int) *Ability {
	if d == nil || index < 0 || index >= len(d.Abilities) {
		return nil
	}
	return &d.Abilities[index]
}

// Registry is the process-wide catalog mapping card names to definitions.
// It is built once, before any game starts, and never mutated afterwards.
type Registry struct {
	definitions map[CardName]*CardDefinition
}

// NewRegistry builds a registry from the given definitions. Duplicate card
// names are rejected.
func NewRegistry(definitions ...*CardDefinition) (*Registry, error) {
	defs := make(map[CardName]*CardDefinition, len(definitions))
	for _, def := range definitions {
		if _, ok := defs[def.Name]; ok {
			return nil, errors.WithMetadata(errors.CodeDuplicateCardName,
				"duplicate card name in registry",
				map[string]string{"Name": string(def.Name)})
		}
		defs[def.Name] = def
	}
	return &Registry{definitions: defs}, nil
}

// Get returns the definition registered under a name.
func (r *Registry) Get(name CardName) (*CardDefinition, bool) {
	if r == nil {
		return nil, false
	}
	def, ok := r.definitions[name]
	return def, ok
}
