package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/G2-Games/minecraft-alpha-server/internal/server"
	"github.com/G2-Games/minecraft-alpha-server/internal/server/config"
)

func main() {
	cfg := config.DefaultConfig()

	configPath := flag.String("config", "", "path to a YAML config file")
	flag.IntVar(&cfg.Port, "port", cfg.Port, "TCP port")
	flag.StringVar(&cfg.KCPAddr, "kcp", cfg.KCPAddr, "KCP listen address (empty disables)")
	flag.StringVar(&cfg.WebSocketAddr, "ws", cfg.WebSocketAddr, "WebSocket listen address (empty disables)")
	flag.StringVar(&cfg.AdminAddr, "admin", cfg.AdminAddr, "admin HTTP listen address (empty disables)")
	flag.IntVar(&cfg.PlayAreaRadius, "radius", cfg.PlayAreaRadius, "play area radius in chunks")
	flag.StringVar(&cfg.GeneratorType, "generator", cfg.GeneratorType, "terrain generator: flat or empty")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "world seed sent at login")
	flag.StringVar(&cfg.CatalogDir, "catalog", cfg.CatalogDir, "minecraft-data directory with blocks.json and items.json")
	flag.IntVar(&cfg.MaxSessions, "max-sessions", cfg.MaxSessions, "concurrent sessions per listener (0 = unlimited)")
	flag.DurationVar(&cfg.IdleTimeout, "idle-timeout", cfg.IdleTimeout, "drop clients silent for this long (0 disables)")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	flag.Parse()

	if *configPath != "" {
		fromFile, err := config.Load(*configPath)
		if err != nil {
			slog.Error("load config", "error", err)
			os.Exit(1)
		}
		explicit := make(map[string]bool)
		flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
		config.Merge(cfg, fromFile, explicit)
	}

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}
	level, _ := config.ParseLevel(cfg.LogLevel)
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	srv, err := server.New(cfg, log)
	if err != nil {
		log.Error("create server", "error", err)
		os.Exit(1)
	}
	if err := srv.Start(ctx); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
