package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/quantumgrid/quantumgrid/internal/game/core"
)

// Config holds all configuration for the application
type Config struct {
	Game   GameConfig   `mapstructure:"game"`
	Bot    BotConfig    `mapstructure:"bot"`
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
}

// GameConfig holds the session defaults
type GameConfig struct {
	GridSize   int    `mapstructure:"grid_size"`
	TurnBudget int    `mapstructure:"turn_budget"`
	HumanColor string `mapstructure:"human_color"`
}

// BotConfig holds the computer-opponent settings
type BotConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	Difficulty   string `mapstructure:"difficulty"`
	ThinkDelayMs int    `mapstructure:"think_delay_ms"`
}

// ServerConfig holds the websocket/HTTP server settings
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	// Game defaults
	v.SetDefault("game.grid_size", 6)
	v.SetDefault("game.turn_budget", 20)
	v.SetDefault("game.human_color", "blue")

	// Bot defaults
	v.SetDefault("bot.enabled", true)
	v.SetDefault("bot.difficulty", "medium")
	v.SetDefault("bot.think_delay_ms", 0)

	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

// Init loads configuration from the optional file path, environment
// variables (QUANTUMGRID_ prefix) and the built-in defaults, and starts
// watching the file for changes.
func Init(configPath string) error {
	v = viper.New()
	setViperDefaults(v)

	v.SetEnvPrefix("QUANTUMGRID")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("quantumgrid")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && configPath != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		// Defaults are a complete configuration; a missing file is fine.
	}

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return err
	}
	cfg = c

	v.OnConfigChange(func(e fsnotify.Event) {
		log.Info().Str("file", e.Name).Msg("Config file changed, reloading")
		fresh := &Config{}
		if err := v.Unmarshal(fresh); err != nil {
			log.Error().Err(err).Msg("Failed to reload config, keeping previous values")
			return
		}
		if err := fresh.Validate(); err != nil {
			log.Error().Err(err).Msg("Reloaded config is invalid, keeping previous values")
			return
		}
		cfg = fresh
	})
	v.WatchConfig()

	return nil
}

// Get returns the current configuration. Init must have been called.
func Get() *Config {
	if cfg == nil {
		if err := Init(""); err != nil {
			panic(fmt.Sprintf("config: initialization failed: %v", err))
		}
	}
	return cfg
}

// Validate checks that the loaded values describe a playable session.
func (c *Config) Validate() error {
	if !core.ValidGridSize(c.Game.GridSize) {
		return fmt.Errorf("game.grid_size must be between %d and %d, got %d",
			core.MinGridSize, core.MaxGridSize, c.Game.GridSize)
	}
	if c.Game.TurnBudget <= 0 {
		return fmt.Errorf("game.turn_budget must be positive, got %d", c.Game.TurnBudget)
	}
	if _, err := core.ParsePlayer(c.Game.HumanColor); err != nil {
		return fmt.Errorf("game.human_color: %w", err)
	}
	if c.Bot.ThinkDelayMs < 0 {
		return fmt.Errorf("bot.think_delay_ms must not be negative, got %d", c.Bot.ThinkDelayMs)
	}
	return nil
}
