// Package dispatch invokes registered ability delegates for game events
// and queries. Events run each matching delegate's guard and effect in
// cache order; queries fold every matching transformation over a base
// value. Both iterate a snapshot of the matching list taken at call start,
// so an effect that rebuilds the cache mid-dispatch cannot affect in-flight
// iteration.
package dispatch

import (
	"github.com/thurn/spelldawn/internal/game"
)

// PopulateCache rebuilds the game's delegate cache from the current card
// collection. Delegates are registered for identity cards and cards in
// play, iterating cards in id order and each card's abilities in
// declaration order, which makes the resulting ordering deterministic for
// a fixed collection snapshot.
func PopulateCache(g *game.Game) {
	lookup := make(map[game.Kind][]game.DelegateContext)
	for _, cardID := range g.AllCardIDs() {
		card := g.Card(cardID)
		if card.Position.Kind != game.PositionIdentity && !card.Position.InPlay() {
			continue
		}
		definition := g.Definition(cardID)
		if definition == nil {
			continue
		}
		for index, ability := range definition.Abilities {
			scope := game.NewScope(game.AbilityID{Card: cardID, Index: index})
			for _, delegate := range ability.Delegates {
				kind := delegate.Kind()
				lookup[kind] = append(lookup[kind], game.DelegateContext{
					Scope:    scope,
					Delegate: delegate,
				})
			}
		}
	}
	g.InstallDelegateCache(game.NewDelegateCache(lookup))
}

// invokeEvent runs every delegate registered for an event kind against a
// snapshot of the cache taken at call start. An effect error halts the
// remaining delegates and propagates to the caller.
func invokeEvent[T any](g *game.Game, kind game.Kind, extract func(game.Delegate) *game.EventDelegate[T], data T) error {
	entries := g.Delegates().Lookup(kind)
	for _, entry := range entries {
		fns := extract(entry.Delegate)
		if fns == nil || fns.Mutation == nil {
			continue
		}
		if fns.Requirement != nil && !fns.Requirement(g, entry.Scope, data) {
			continue
		}
		if err := fns.Mutation(g, entry.Scope, data); err != nil {
			return err
		}
	}
	return nil
}

// performQuery folds every registered transformation for a query kind over
// the provided base value. Queries cannot fail and cannot short-circuit.
func performQuery[T, R any](g *game.Game, kind game.Kind, extract func(game.Delegate) *game.QueryDelegate[T, R], data T, base R) R {
	result := base
	entries := g.Delegates().Lookup(kind)
	for _, entry := range entries {
		fns := extract(entry.Delegate)
		if fns == nil || fns.Transformation == nil {
			continue
		}
		if fns.Requirement != nil && !fns.Requirement(g, entry.Scope, data) {
			continue
		}
		result = fns.Transformation(g, entry.Scope, data, result)
	}
	return result
}
