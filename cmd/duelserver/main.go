package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	flag "github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/udisondev/duels/internal/admin"
	"github.com/udisondev/duels/internal/admin/commands"
	"github.com/udisondev/duels/internal/arena"
	"github.com/udisondev/duels/internal/config"
	"github.com/udisondev/duels/internal/db"
	"github.com/udisondev/duels/internal/model"
	"github.com/udisondev/duels/internal/world"
)

const (
	DefaultConfigPath = "config/duels.yaml"
	ConfigEnv         = "DUELS_CONFIG"

	// shutdownTimeout bounds the final reconcile+save.
	shutdownTimeout = 30 * time.Second
)

func main() {
	configPath := flag.String("config", "", "path to config file (default $"+ConfigEnv+" or "+DefaultConfigPath+")")
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx, resolveConfigPath(*configPath)); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfgPath string) error {
	cfg, err := config.LoadDuels(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	slog.Info("duel server starting",
		"config", cfgPath,
		"log_level", cfg.LogLevel,
		"storage", cfg.Storage)

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	var lobby *model.Location
	if cfg.Lobby != nil {
		loc := cfg.Lobby.Location()
		lobby = &loc
	}
	w := world.New(cfg.Spawn.Location(), lobby)

	opts := arena.Options{TeleportToLatestLocation: cfg.TeleportToLatestLocation}
	if cfg.SelectionSeed != 0 {
		seed := uint64(cfg.SelectionSeed)
		opts.Rand = rand.New(rand.NewPCG(seed, seed))
	}
	registry := arena.NewRegistry(store, w, opts)
	registry.Load(ctx)

	handler := admin.NewHandler()
	commands.RegisterAll(handler, registry, w)
	slog.Info("admin commands registered",
		"admin", handler.AdminCommandCount(),
		"user", handler.UserCommandCount())

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return registry.RunSaveLoop(gctx, cfg.AutosaveInterval)
	})

	console, err := newConsole(handler, cfg.Spawn.Location(), os.Stdin, os.Stdout)
	if err != nil {
		return fmt.Errorf("creating admin console: %w", err)
	}
	g.Go(func() error {
		return console.Run(gctx)
	})

	slog.Info("duel server ready", "arenas", registry.Len())

	if err := g.Wait(); err != nil && ctx.Err() == nil {
		slog.Error("duel server stopped unexpectedly", "error", err)
	}

	// Новый контекст: исходный уже отменён, а сохранение обязано дойти до конца.
	saveCtx, cancelSave := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelSave()
	registry.Save(saveCtx)

	slog.Info("duel server stopped")
	return nil
}

// openStore builds the arena store selected by cfg.Storage.
// The returned close func is always non-nil.
func openStore(ctx context.Context, cfg config.Duels) (arena.Store, func(), error) {
	switch cfg.Storage {
	case config.StoragePostgres:
		database, err := db.New(ctx, cfg.Database.DSN())
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to database: %w", err)
		}
		slog.Info("database connected")

		if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
			database.Close()
			return nil, nil, fmt.Errorf("running migrations: %w", err)
		}
		slog.Info("database migrations applied")

		return &arenaStoreAdapter{repo: db.NewArenaRepository(database.Pool())}, database.Close, nil
	default:
		fs := arena.NewFileStore(cfg.ArenaFilePath())
		slog.Info("using arena file", "path", fs.Path())
		return fs, func() {}, nil
	}
}

// resolveConfigPath picks --config, then $DUELS_CONFIG, then the default path.
func resolveConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if p := os.Getenv(ConfigEnv); p != "" {
		return p
	}
	return DefaultConfigPath
}

// parseLogLevel converts string log level to slog.Level.
// Defaults to Info if invalid or empty.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
