package dispatch

import (
	"github.com/thurn/spelldawn/internal/game"
)

// InvokeCardMoved fires the card-moved event.
func InvokeCardMoved(g *game.Game, data game.CardMoved) error {
	return invokeEvent(g, game.KindCardMoved,
		func(d game.Delegate) *game.EventDelegate[game.CardMoved] { return d.CardMoved }, data)
}

// InvokeDrawCard fires the draw event for a card entering a hand from a
// deck position.
func InvokeDrawCard(g *game.Game, card game.CardID) error {
	return invokeEvent(g, game.KindDrawCard,
		func(d game.Delegate) *game.EventDelegate[game.CardID] { return d.DrawCard }, card)
}

// InvokePlayCard fires the play event for a card entering play.
func InvokePlayCard(g *game.Game, card game.CardID) error {
	return invokeEvent(g, game.KindPlayCard,
		func(d game.Delegate) *game.EventDelegate[game.CardID] { return d.PlayCard }, card)
}

// InvokeRevealCard fires the reveal event for a card becoming visible to
// the opponent.
func InvokeRevealCard(g *game.Game, card game.CardID) error {
	return invokeEvent(g, game.KindRevealCard,
		func(d game.Delegate) *game.EventDelegate[game.CardID] { return d.RevealCard }, card)
}

// InvokeStoredManaTaken fires after stored mana has been withdrawn from a
// card.
func InvokeStoredManaTaken(g *game.Game, card game.CardID) error {
	return invokeEvent(g, game.KindStoredManaTaken,
		func(d game.Delegate) *game.EventDelegate[game.CardID] { return d.StoredManaTaken }, card)
}

// InvokeActivateBoost fires after a card's boost count has been updated.
func InvokeActivateBoost(g *game.Game, data game.BoostData) error {
	return invokeEvent(g, game.KindActivateBoost,
		func(d game.Delegate) *game.EventDelegate[game.BoostData] { return d.ActivateBoost }, data)
}

// InvokeMinionDefeated fires after a defender has been defeated during an
// encounter.
func InvokeMinionDefeated(g *game.Game, card game.CardID) error {
	return invokeEvent(g, game.KindMinionDefeated,
		func(d game.Delegate) *game.EventDelegate[game.CardID] { return d.MinionDefeated }, card)
}

// InvokeMinionCombat fires when an encountered defender survives its
// encounter, landing the minion's combat abilities on the Champion.
func InvokeMinionCombat(g *game.Game, card game.CardID) error {
	return invokeEvent(g, game.KindMinionCombat,
		func(d game.Delegate) *game.EventDelegate[game.CardID] { return d.MinionCombat }, card)
}

// InvokeEncounterEnd fires when a raid encounter finishes, before the raid
// moves to its next phase.
func InvokeEncounterEnd(g *game.Game, raid game.RaidID) error {
	return invokeEvent(g, game.KindEncounterEnd,
		func(d game.Delegate) *game.EventDelegate[game.RaidID] { return d.EncounterEnd }, raid)
}

// InvokeScoreCard fires after a scheme card has been scored.
func InvokeScoreCard(g *game.Game, card game.CardID) error {
	return invokeEvent(g, game.KindScoreCard,
		func(d game.Delegate) *game.EventDelegate[game.CardID] { return d.ScoreCard }, card)
}

// InvokeRaidStart fires when a raid enters its Begin phase. A delegate may
// respond by ending the raid, which aborts it.
func InvokeRaidStart(g *game.Game, data game.RaidStart) error {
	return invokeEvent(g, game.KindRaidStart,
		func(d game.Delegate) *game.EventDelegate[game.RaidStart] { return d.RaidStart }, data)
}

// InvokeRaidEnd fires after the active raid has ended.
func InvokeRaidEnd(g *game.Game, raid game.RaidID) error {
	return invokeEvent(g, game.KindRaidEnd,
		func(d game.Delegate) *game.EventDelegate[game.RaidID] { return d.RaidEnd }, raid)
}
