// Package game holds the data model for an ongoing Spelldawn game: cards,
// positions, players, raids, ability delegates, and the observable update
// log. State is mutated only through the mutations package; this package
// provides the types and low-level accessors those functions build on.
package game
