package game

import (
	"fmt"
	"math/rand"
	"sort"
	"strconv"

	"github.com/thurn/spelldawn/internal/errors"
)

// StartingMana is each player's mana pool at the start of a game.
const StartingMana ManaValue = 5

// DefaultStartOfTurnActions is the base number of action points a player
// receives at the start of their turn, before query delegates transform it.
const DefaultStartOfTurnActions ActionCount = 3

// InternalRaidPhase sequences the phases of one raid. The resolved state is
// implicit: the game's raid data becomes absent.
type InternalRaidPhase string

const (
	RaidPhaseBegin      InternalRaidPhase = "begin"
	RaidPhaseActivation InternalRaidPhase = "activation"
	RaidPhaseEncounter  InternalRaidPhase = "encounter"
	RaidPhaseAccess     InternalRaidPhase = "access"
)

// RaidData models one breach attempt on a room. It exists for the lifetime
// of a single raid and becomes absent on resolution or termination.
type RaidData struct {
	// ID is assigned from the game's monotonic raid counter.
	ID RaidID `json:"id"`
	// Target is the room being raided.
	Target RoomID `json:"target"`
	// Phase is the current phase of the raid.
	Phase InternalRaidPhase `json:"phase"`
	// Encounter identifies the defender currently being encountered, if
	// the raid is in the Encounter phase.
	Encounter *CardID `json:"encounter,omitempty"`
	// Active reports whether the raid-start event has fired.
	Active bool `json:"active"`
}

// TurnData tracks whose turn it is.
type TurnData struct {
	Side   Side `json:"side"`
	Number int  `json:"number"`
}

// GameData holds game-level counters and the optional active raid.
type GameData struct {
	Turn TurnData `json:"turn"`
	// Raid is the active raid. At most one raid is active per game.
	Raid *RaidData `json:"raid,omitempty"`
	// NextRaidID feeds the monotonic raid id counter.
	NextRaidID RaidID `json:"next_raid_id"`
}

// PlayerState holds the per-player portion of the game state.
type PlayerState struct {
	Side    Side        `json:"side"`
	Mana    ManaValue   `json:"mana"`
	Actions ActionCount `json:"actions"`
	Score   int         `json:"score"`
	// Prompt is the question currently shown to this player, if any.
	Prompt *Prompt `json:"prompt,omitempty"`
}

// PlayerConfig describes one player's starting cards.
type PlayerConfig struct {
	// Identity is the player's identity card, if any.
	Identity CardName
	// Deck lists the card names shuffled into the player's starting deck.
	Deck []CardName
}

// Game is the root aggregate for one ongoing game. It owns both player
// states, the full card collection, the optional active raid, and the
// append-only update log. Mutate it only through the mutations package.
type Game struct {
	// ID is the opaque identifier used by the storage collaborator.
	ID string `json:"id"`
	// Seed drove the initial deck shuffle.
	Seed int64 `json:"seed"`
	// Random is the persisted state of the game's random stream. It
	// advances on every random draw so replays from a stored document
	// stay deterministic.
	Random int64 `json:"random"`

	Overlord PlayerState `json:"overlord"`
	Champion PlayerState `json:"champion"`

	// OverlordCards and ChampionCards are the card collections; a CardID
	// indexes into the owner's slice.
	OverlordCards []CardState `json:"overlord_cards"`
	ChampionCards []CardState `json:"champion_cards"`

	Data GameData `json:"data"`

	// Updates is the append-only observable update log.
	Updates []Update `json:"updates"`

	// NextSortingKey feeds the monotonic card ordering counter.
	NextSortingKey SortingKey `json:"next_sorting_key"`

	registry  *Registry
	delegates DelegateCache
}

// NewGame creates a game with both decks shuffled according to seed. All
// card names must exist in the registry. The Overlord takes the first turn.
func NewGame(id string, registry *Registry, seed int64, overlord, champion PlayerConfig) (*Game, error) {
	g := &Game{
		ID:     id,
		Seed:   seed,
		Random: seed,
		Overlord: PlayerState{
			Side:    SideOverlord,
			Mana:    StartingMana,
			Actions: DefaultStartOfTurnActions,
		},
		Champion: PlayerState{Side: SideChampion, Mana: StartingMana},
		Data:     GameData{Turn: TurnData{Side: SideOverlord, Number: 1}},
		registry: registry,
	}

	rng := rand.New(rand.NewSource(seed))
	var err error
	if g.OverlordCards, err = buildCards(registry, SideOverlord, overlord, rng); err != nil {
		return nil, err
	}
	if g.ChampionCards, err = buildCards(registry, SideChampion, champion, rng); err != nil {
		return nil, err
	}
	for _, cards := range [][]CardState{g.OverlordCards, g.ChampionCards} {
		for i := range cards {
			if cards[i].SortingKey >= g.NextSortingKey {
				g.NextSortingKey = cards[i].SortingKey + 1
			}
		}
	}
	return g, nil
}

// buildCards creates a side's identity and deck cards, assigning shuffled
// sorting keys so that draw order is deterministic given the game seed.
func buildCards(registry *Registry, side Side, config PlayerConfig, rng *rand.Rand) ([]CardState, error) {
	var cards []CardState
	if config.Identity != "" {
		if _, ok := registry.Get(config.Identity); !ok {
			return nil, unknownCardName(config.Identity)
		}
		cards = append(cards, NewCardState(CardID{Side: side, Index: 0}, config.Identity, side, true))
	}
	deckStart := len(cards)
	for _, name := range config.Deck {
		if _, ok := registry.Get(name); !ok {
			return nil, unknownCardName(name)
		}
		id := CardID{Side: side, Index: len(cards)}
		cards = append(cards, NewCardState(id, name, side, false))
	}

	keys := rng.Perm(len(cards) - deckStart)
	for i, key := range keys {
		cards[deckStart+i].SortingKey = SortingKey(key + 1)
	}
	return cards, nil
}

func unknownCardName(name CardName) error {
	return errors.WithMetadata(errors.CodeUnknownCardName, "unknown card name",
		map[string]string{"Name": string(name)})
}

// Player returns the state for one side.
func (g *Game) Player(side Side) *PlayerState {
	if side == SideOverlord {
		return &g.Overlord
	}
	return &g.Champion
}

// Card returns the state for one card, or nil if the id is out of range.
func (g *Game) Card(id CardID) *CardState {
	cards := g.SideCards(id.Side)
	if id.Index < 0 || id.Index >= len(cards) {
		return nil
	}
	return &cards[id.Index]
}

// SideCards returns the card collection owned by one side.
func (g *Game) SideCards(side Side) []CardState {
	if side == SideOverlord {
		return g.OverlordCards
	}
	return g.ChampionCards
}

// AllCardIDs returns every card id in deterministic order: Overlord cards
// by index, then Champion cards by index.
func (g *Game) AllCardIDs() []CardID {
	ids := make([]CardID, 0, len(g.OverlordCards)+len(g.ChampionCards))
	for i := range g.OverlordCards {
		ids = append(ids, CardID{Side: SideOverlord, Index: i})
	}
	for i := range g.ChampionCards {
		ids = append(ids, CardID{Side: SideChampion, Index: i})
	}
	return ids
}

// SetCardPosition moves a card to a new position and stamps a fresh sorting
// key. This is the low-level write; mutations.MoveCard is the sanctioned
// entry point because it also raises events and appends updates.
func (g *Game) SetCardPosition(id CardID, position CardPosition) error {
	card := g.Card(id)
	if card == nil {
		return errors.New(errors.CodeCardNotFound, "card not found")
	}
	card.Position = position
	card.SortingKey = g.NextSortingKey
	g.NextSortingKey++
	return nil
}

// cardsInPosition returns pointers to all cards matching the predicate,
// ordered by ascending sorting key.
func (g *Game) cardsInPosition(match func(CardPosition) bool) []*CardState {
	var result []*CardState
	for _, cards := range [][]CardState{g.OverlordCards, g.ChampionCards} {
		for i := range cards {
			if match(cards[i].Position) {
				result = append(result, &cards[i])
			}
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].SortingKey < result[j].SortingKey
	})
	return result
}

// Defenders returns the defenders of a room ordered by ascending sorting
// key (innermost first).
func (g *Game) Defenders(room RoomID) []*CardState {
	return g.cardsInPosition(func(p CardPosition) bool {
		return p.Kind == PositionRoom && p.Room == room && p.RoomLocation == RoomLocationDefender
	})
}

// Occupants returns the occupants of a room ordered by ascending sorting key.
func (g *Game) Occupants(room RoomID) []*CardState {
	return g.cardsInPosition(func(p CardPosition) bool {
		return p.Kind == PositionRoom && p.Room == room && p.RoomLocation == RoomLocationOccupant
	})
}

// Hand returns the cards in a side's hand ordered by ascending sorting key.
func (g *Game) Hand(side Side) []*CardState {
	return g.cardsInPosition(func(p CardPosition) bool {
		return p.Kind == PositionHand && p.Side == side
	})
}

// Items returns the Champion's cards in item slots.
func (g *Game) Items(location ItemLocation) []*CardState {
	return g.cardsInPosition(func(p CardPosition) bool {
		return p.Kind == PositionArenaItem && p.ItemLocation == location
	})
}

// DiscardPile returns a side's discard pile ordered by ascending sorting
// key.
func (g *Game) DiscardPile(side Side) []*CardState {
	return g.cardsInPosition(func(p CardPosition) bool {
		return p.Kind == PositionDiscardPile && p.Side == side
	})
}

// DeckCards returns a side's deck ordered top first: known deck-top cards
// before unknown positions, then by descending sorting key.
func (g *Game) DeckCards(side Side) []*CardState {
	inDeck := g.cardsInPosition(func(p CardPosition) bool {
		return p.InDeck() && p.Side == side
	})
	sort.SliceStable(inDeck, func(i, j int) bool {
		top := inDeck[i].Position.Kind == PositionDeckTop
		otherTop := inDeck[j].Position.Kind == PositionDeckTop
		if top != otherTop {
			return top
		}
		return inDeck[i].SortingKey > inDeck[j].SortingKey
	})
	return inDeck
}

// TopOfDeck returns the next card a side would draw, or nil for an empty
// deck.
func (g *Game) TopOfDeck(side Side) *CardState {
	deck := g.DeckCards(side)
	if len(deck) == 0 {
		return nil
	}
	return deck[0]
}

// Raid returns the active raid data. Callers that require an active raid
// treat absence as a precondition failure.
func (g *Game) Raid() (*RaidData, error) {
	if g.Data.Raid == nil {
		return nil, errors.New(errors.CodeRaidNotActive, "no active raid")
	}
	return g.Data.Raid, nil
}

// PushUpdate appends one record to the observable update log.
func (g *Game) PushUpdate(update Update) {
	g.Updates = append(g.Updates, update)
}

// DrainUpdates returns the accumulated updates and clears the log. The
// presentation layer calls this after each external action completes.
func (g *Game) DrainUpdates() []Update {
	updates := g.Updates
	g.Updates = nil
	return updates
}

// AttachRegistry points the game at its ability registry. Storage does not
// persist the registry, so loaders re-attach it before repopulating the
// delegate cache.
func (g *Game) AttachRegistry(registry *Registry) {
	g.registry = registry
}

// Registry returns the attached ability registry.
func (g *Game) Registry() *Registry {
	return g.registry
}

// Definition returns the definition for a card in this game, or nil if the
// card or its registry entry is missing.
func (g *Game) Definition(id CardID) *CardDefinition {
	card := g.Card(id)
	if card == nil || g.registry == nil {
		return nil
	}
	def, _ := g.registry.Get(card.Name)
	return def
}

// Ability returns the ability instance addressed by id.
func (g *Game) Ability(id AbilityID) (Ability, error) {
	def := g.Definition(id.Card)
	if def == nil || id.Index < 0 || id.Index >= len(def.Abilities) {
		return Ability{}, errors.WithMetadata(errors.CodeAbilityNotFound, "ability not found",
			map[string]string{"card": fmt.Sprint(id.Card), "index": strconv.Itoa(id.Index)})
	}
	return def.Abilities[id.Index], nil
}

// RandomIndex returns a uniform index below n from the game's random
// stream and advances the stream.
func (g *Game) RandomIndex(n int) int {
	rng := rand.New(rand.NewSource(g.Random))
	g.Random = rng.Int63()
	return rng.Intn(n)
}

// Delegates returns the current delegate cache.
func (g *Game) Delegates() *DelegateCache {
	return &g.delegates
}

// InstallDelegateCache replaces the delegate cache wholesale. In-flight
// iterations over slices obtained from the previous cache are unaffected.
func (g *Game) InstallDelegateCache(cache DelegateCache) {
	g.delegates = cache
}

// Clone returns a deep copy of the game's state. The registry and the
// delegate cache are shared: both are immutable between installs, and the
// clone installs a fresh cache if its card collection diverges.
func (g *Game) Clone() *Game {
	clone := *g
	clone.OverlordCards = cloneCards(g.OverlordCards)
	clone.ChampionCards = cloneCards(g.ChampionCards)
	clone.Updates = append([]Update(nil), g.Updates...)
	clone.Overlord.Prompt = clonePrompt(g.Overlord.Prompt)
	clone.Champion.Prompt = clonePrompt(g.Champion.Prompt)
	if g.Data.Raid != nil {
		raid := *g.Data.Raid
		if raid.Encounter != nil {
			encounter := *raid.Encounter
			raid.Encounter = &encounter
		}
		clone.Data.Raid = &raid
	}
	return &clone
}

func cloneCards(cards []CardState) []CardState {
	cloned := append([]CardState(nil), cards...)
	for i := range cloned {
		if cloned[i].Data.AbilityState == nil {
			continue
		}
		states := make(map[int]AbilityState, len(cloned[i].Data.AbilityState))
		for index, state := range cloned[i].Data.AbilityState {
			copied := make(AbilityState, len(state))
			for k, v := range state {
				copied[k] = v
			}
			states[index] = copied
		}
		cloned[i].Data.AbilityState = states
	}
	return cloned
}

func clonePrompt(prompt *Prompt) *Prompt {
	if prompt == nil {
		return nil
	}
	cloned := *prompt
	cloned.Responses = append([]PromptAction(nil), prompt.Responses...)
	return &cloned
}
