package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golang.org/x/sync/errgroup"

	"grimdelve/internal/config"
	"grimdelve/internal/data"
	"grimdelve/internal/db"
	"grimdelve/internal/model"
	"grimdelve/internal/rng"
	"grimdelve/internal/sim"
	"grimdelve/internal/world"
)

const DefaultConfigPath = "config/arenasim.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := DefaultConfigPath
	if p := os.Getenv("GRIMDELVE_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadSimulator(cfgPath)
	if err != nil {
		slog.Warn("config not loaded, using defaults", "err", err)
		cfg = config.DefaultSimulator()
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	slog.Info("arenasim starting", "log_level", cfg.LogLevel, "seed", cfg.Seed)

	if err := data.LoadBlowMethods(); err != nil {
		return fmt.Errorf("loading blow methods: %w", err)
	}

	var journal *db.Journal
	if cfg.Journal.Enabled {
		dsn := cfg.Journal.Database.DSN()
		if err := db.RunMigrations(ctx, dsn); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		journal, err = db.New(ctx, dsn)
		if err != nil {
			return fmt.Errorf("connecting journal: %w", err)
		}
		defer journal.Close()
		slog.Info("battle journal connected")
	}

	roller := rng.New(cfg.Seed)
	enc := buildEncounter(cfg)
	field := world.NewField(66, 22, enc.Player, roller)

	runner := &sim.Runner{
		Roller: roller,
		Msg:    sim.SlogMessenger{},
		World:  field,
	}
	if journal != nil {
		runner.Journal = journal
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res, err := runner.Run(gctx, enc)
		if err != nil {
			return err
		}
		slog.Info("encounter finished",
			"encounter_id", res.EncounterID,
			"turns", res.TurnsRun,
			"blows", res.BlowsDealt,
			"attacker_fled", res.Fled,
			"defender_dead", res.PlayerDead,
			"defender_hp", enc.Player.HP,
			"defender_gold", enc.Player.Gold)

		if journal != nil {
			recs, err := journal.EncounterBlows(gctx, res.EncounterID)
			if err != nil {
				return fmt.Errorf("reading journal transcript: %w", err)
			}
			for _, rec := range recs {
				slog.Info("journal entry",
					"turn", rec.Turn,
					"blow", rec.BlowIndex,
					"method", rec.Method,
					"effect", rec.Effect,
					"damage", rec.Damage,
					"defender_hp", rec.DefenderHP)
			}
		}
		return nil
	})

	return g.Wait()
}

func buildEncounter(cfg config.Simulator) *sim.Encounter {
	p := model.NewPlayer(cfg.Player.Name, cfg.Player.Level, cfg.Player.HP)
	p.Gold = cfg.Player.Gold
	p.SaveSkill = cfg.Player.SaveSkill

	m := model.NewMonster(cfg.Monster.Name, cfg.Monster.Level, cfg.Monster.HP)

	blows := make([]sim.Blow, 0, len(cfg.Monster.Blows))
	for _, b := range cfg.Monster.Blows {
		blows = append(blows, sim.Blow{
			Method:    b.Method,
			Effect:    b.Effect,
			DiceNum:   b.DiceNum,
			DiceSides: b.DiceSides,
		})
	}

	return &sim.Encounter{
		Player:  p,
		Monster: m,
		Blows:   blows,
		Turns:   cfg.Turns,
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
