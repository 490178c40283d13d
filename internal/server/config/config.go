package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/G2-Games/minecraft-alpha-server/internal/server/world/gen"
)

// Config holds the server configuration.
type Config struct {
	Port int `yaml:"port" json:"port"`

	// Optional extra listeners. Empty addresses disable them.
	KCPAddr       string `yaml:"kcp_addr" json:"kcp_addr"`
	WebSocketAddr string `yaml:"websocket_addr" json:"websocket_addr"`
	AdminAddr     string `yaml:"admin_addr" json:"admin_addr"`

	// PlayAreaRadius is the number of chunks sent at login on each side of
	// the origin: -r..r-1 on both axes.
	PlayAreaRadius int    `yaml:"play_area_radius" json:"play_area_radius"`
	GeneratorType  string `yaml:"generator" json:"generator"` // "flat" or "empty"
	Seed           int64  `yaml:"seed" json:"seed"`
	Dimension      int8   `yaml:"dimension" json:"dimension"`
	Spawn          Vec3   `yaml:"spawn" json:"spawn"`

	// CatalogDir points at a minecraft-data overlay fetched by cmd/dmd.
	CatalogDir string `yaml:"catalog_dir" json:"catalog_dir"`

	MaxSessions int           `yaml:"max_sessions" json:"max_sessions"`
	IdleTimeout time.Duration `yaml:"idle_timeout" json:"idle_timeout"` // 0 disables
	LogLevel    string        `yaml:"log_level" json:"log_level"`
}

// Vec3 is a position in block space.
type Vec3 struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
	Z float64 `yaml:"z" json:"z"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Port:           25565,
		PlayAreaRadius: 10,
		GeneratorType:  gen.TypeFlat,
		Spawn:          Vec3{X: 0.5, Y: 9.63, Z: 0.5},
		MaxSessions:    256,
		LogLevel:       "info",
	}
}

// Load reads a YAML config file. Keys missing from the file keep their
// default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Merge applies file-loaded config values into cfg, but only for fields
// that were NOT explicitly set via CLI flags. explicitFlags contains the
// flag names that were explicitly provided on the command line.
func Merge(cfg *Config, fromFile *Config, explicitFlags map[string]bool) {
	if !explicitFlags["port"] {
		cfg.Port = fromFile.Port
	}
	if !explicitFlags["kcp"] {
		cfg.KCPAddr = fromFile.KCPAddr
	}
	if !explicitFlags["ws"] {
		cfg.WebSocketAddr = fromFile.WebSocketAddr
	}
	if !explicitFlags["admin"] {
		cfg.AdminAddr = fromFile.AdminAddr
	}
	if !explicitFlags["radius"] {
		cfg.PlayAreaRadius = fromFile.PlayAreaRadius
	}
	if !explicitFlags["generator"] {
		cfg.GeneratorType = fromFile.GeneratorType
	}
	if !explicitFlags["seed"] {
		cfg.Seed = fromFile.Seed
	}
	if !explicitFlags["catalog"] {
		cfg.CatalogDir = fromFile.CatalogDir
	}
	if !explicitFlags["max-sessions"] {
		cfg.MaxSessions = fromFile.MaxSessions
	}
	if !explicitFlags["idle-timeout"] {
		cfg.IdleTimeout = fromFile.IdleTimeout
	}
	if !explicitFlags["log-level"] {
		cfg.LogLevel = fromFile.LogLevel
	}
	// File-only settings.
	cfg.Dimension = fromFile.Dimension
	cfg.Spawn = fromFile.Spawn
}

// Validate reports every problem with cfg at once.
func (c *Config) Validate() error {
	var errs []error
	if c.Port < 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d out of range", c.Port))
	}
	if c.PlayAreaRadius < 0 {
		errs = append(errs, fmt.Errorf("play area radius %d is negative", c.PlayAreaRadius))
	}
	if _, err := gen.New(c.GeneratorType); err != nil {
		errs = append(errs, err)
	}
	if c.MaxSessions < 0 {
		errs = append(errs, fmt.Errorf("max sessions %d is negative", c.MaxSessions))
	}
	if c.IdleTimeout < 0 {
		errs = append(errs, fmt.Errorf("idle timeout %s is negative", c.IdleTimeout))
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// ParseLevel maps a log level name to its slog level.
func ParseLevel(name string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(name))); err != nil {
		return 0, fmt.Errorf("log level %q: %w", name, err)
	}
	return lvl, nil
}
