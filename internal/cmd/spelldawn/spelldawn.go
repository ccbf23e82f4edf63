// Package spelldawn parses command flags and runs a scripted demo game
// against the rules engine, persisting the state after every action.
package spelldawn

import (
	"context"
	"flag"
	"log"

	entrypoint "github.com/thurn/spelldawn/internal/platform/cmd"
	"github.com/thurn/spelldawn/internal/platform/id"
	"github.com/thurn/spelldawn/internal/random"

	"github.com/thurn/spelldawn/internal/game"
	"github.com/thurn/spelldawn/internal/game/dispatch"
	"github.com/thurn/spelldawn/internal/game/engine"
	"github.com/thurn/spelldawn/internal/storage/sqlite"
)

// Config holds spelldawn command configuration.
type Config struct {
	StoragePath string `env:"SPELLDAWN_STORAGE_PATH" envDefault:"spelldawn.db"`
	Seed        int64  `env:"SPELLDAWN_SEED"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.StoragePath, "db", cfg.StoragePath, "Path to the SQLite game database")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Deck shuffle seed (0 picks a random seed)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run creates a demo game and plays a short scripted sequence of actions.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceSpelldawn, func(ctx context.Context) error {
		return runDemo(ctx, cfg)
	})
}

func runDemo(ctx context.Context, cfg Config) error {
	registry, err := demoRegistry()
	if err != nil {
		return err
	}

	store, err := sqlite.Open(cfg.StoragePath)
	if err != nil {
		return err
	}
	defer store.Close()

	seed := cfg.Seed
	if seed == 0 {
		if seed, err = random.NewSeed(); err != nil {
			return err
		}
	}
	gameID, err := id.NewID()
	if err != nil {
		return err
	}

	g, err := game.NewGame(gameID, registry, seed,
		game.PlayerConfig{
			Identity: "Overlord Sigil",
			Deck: []game.CardName{
				"Frost Sentinel", "Hidden Machination", "Gold Mine",
				"Frost Sentinel", "Hidden Machination", "Gold Mine",
			},
		},
		game.PlayerConfig{
			Identity: "Champion Sigil",
			Deck: []game.CardName{
				"Greataxe", "Contemplate", "Greataxe",
				"Contemplate", "Greataxe", "Contemplate",
			},
		},
	)
	if err != nil {
		return err
	}
	dispatch.PopulateCache(g)
	log.Printf("game %s created with seed %d", g.ID, seed)

	script := []struct {
		side   game.Side
		action engine.Action
	}{
		{game.SideOverlord, engine.Action{DrawCard: &engine.DrawCardAction{}}},
		{game.SideOverlord, engine.Action{DrawCard: &engine.DrawCardAction{}}},
		{game.SideOverlord, engine.Action{GainMana: &engine.GainManaAction{}}},
		{game.SideOverlord, engine.Action{EndTurn: &engine.EndTurnAction{}}},
		{game.SideChampion, engine.Action{GainMana: &engine.GainManaAction{}}},
		{game.SideChampion, engine.Action{GainMana: &engine.GainManaAction{}}},
		{game.SideChampion, engine.Action{InitiateRaid: &engine.InitiateRaidAction{Room: game.RoomVault}}},
	}

	for _, step := range script {
		next, err := engine.Execute(ctx, g, step.side, step.action)
		if err != nil {
			log.Printf("%s %s: %v", step.side, step.action.Name(), err)
			continue
		}
		g = next
		for _, update := range g.DrainUpdates() {
			log.Printf("%s %s: %s", step.side, step.action.Name(), update.Type)
		}
		if err := store.Put(ctx, g); err != nil {
			return err
		}
	}

	log.Printf("demo complete: overlord %d mana, champion %d mana, champion score %d",
		g.Overlord.Mana, g.Champion.Mana, g.Champion.Score)
	return nil
}
