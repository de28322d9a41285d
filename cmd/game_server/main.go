package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/quantumgrid/quantumgrid/internal/config"
	"github.com/quantumgrid/quantumgrid/internal/game"
	"github.com/quantumgrid/quantumgrid/internal/game/bot"
	"github.com/quantumgrid/quantumgrid/internal/game/core"
	"github.com/quantumgrid/quantumgrid/internal/game/events"
	"github.com/quantumgrid/quantumgrid/internal/server"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	port := flag.Int("port", -1, "The server port (-1 to use config default)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	cfg := config.Get()

	if *port == -1 {
		*port = cfg.Server.Port
	}
	if *logLevel == "" {
		*logLevel = cfg.Log.Level
	}
	setupLogging(*logLevel, cfg.Log.Format)

	engineCfg, err := engineConfig(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Bad game configuration")
	}

	bus := events.NewEventBus()
	engine, err := game.NewEngine(engineCfg, nil, bus)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create engine")
	}

	srv := server.New(engine, bus)
	httpServer := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, *port),
		Handler: srv.Router(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("addr", httpServer.Addr).Msg("Game server listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}
}

func engineConfig(cfg *config.Config) (game.Config, error) {
	humanColor, err := core.ParsePlayer(cfg.Game.HumanColor)
	if err != nil {
		return game.Config{}, err
	}

	engineCfg := game.Config{
		GridSize:   cfg.Game.GridSize,
		TurnBudget: cfg.Game.TurnBudget,
		HumanColor: humanColor,
	}
	if cfg.Bot.Enabled {
		difficulty, err := bot.ParseDifficulty(cfg.Bot.Difficulty)
		if err != nil {
			return game.Config{}, err
		}
		engineCfg.VsBot = true
		engineCfg.BotDifficulty = difficulty
		engineCfg.ThinkDelay = time.Duration(cfg.Bot.ThinkDelayMs) * time.Millisecond
	}
	return engineCfg, nil
}

func setupLogging(level, format string) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)

	if format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}
