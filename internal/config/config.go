package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/duels/internal/model"
)

// Storage backends for the arena collection.
const (
	StorageFile     = "file"
	StoragePostgres = "postgres"
)

// Duels holds all configuration for the duel server.
type Duels struct {
	LogLevel string `yaml:"log_level"` // debug|info|warn|error

	// Arena persistence
	Storage   string         `yaml:"storage"` // file|postgres
	DataDir   string         `yaml:"data_dir"`
	ArenaFile string         `yaml:"arena_file"`
	Database  DatabaseConfig `yaml:"database"`

	// Shutdown extraction
	TeleportToLatestLocation bool            `yaml:"teleport_to_latest_location"`
	Lobby                    *LocationConfig `yaml:"lobby"` // nil = world spawn
	Spawn                    LocationConfig  `yaml:"spawn"`

	AutosaveInterval time.Duration `yaml:"autosave_interval"` // 0 = disabled
	SelectionSeed    int64         `yaml:"selection_seed"`    // 0 = random
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// LocationConfig is a world position in YAML.
type LocationConfig struct {
	X       int32  `yaml:"x"`
	Y       int32  `yaml:"y"`
	Z       int32  `yaml:"z"`
	Heading uint16 `yaml:"heading"`
}

// Location converts to a model.Location.
func (l LocationConfig) Location() model.Location {
	return model.NewLocation(l.X, l.Y, l.Z, l.Heading)
}

// ArenaFilePath returns the arena file location.
func (c Duels) ArenaFilePath() string {
	if filepath.IsAbs(c.ArenaFile) {
		return c.ArenaFile
	}
	return filepath.Join(c.DataDir, c.ArenaFile)
}

// Validate checks values that have no usable fallback.
func (c Duels) Validate() error {
	switch c.Storage {
	case StorageFile:
		if c.ArenaFile == "" {
			return fmt.Errorf("arena_file must be set for %q storage", StorageFile)
		}
	case StoragePostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			return fmt.Errorf("database host and dbname must be set for %q storage", StoragePostgres)
		}
	default:
		return fmt.Errorf("unknown storage %q (want %q or %q)", c.Storage, StorageFile, StoragePostgres)
	}
	if c.AutosaveInterval < 0 {
		return fmt.Errorf("autosave_interval must not be negative, got %s", c.AutosaveInterval)
	}
	return nil
}

// DefaultDuels returns Duels config with sensible defaults.
func DefaultDuels() Duels {
	return Duels{
		LogLevel:         "info",
		Storage:          StorageFile,
		DataDir:          "data",
		ArenaFile:        "arenas.json",
		AutosaveInterval: 5 * time.Minute,
		// Giran Town
		Spawn: LocationConfig{X: 83400, Y: 147943, Z: -3404},
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "duels",
			Password: "duels",
			DBName:   "duels",
			SSLMode:  "disable",
		},
	}
}

// LoadDuels loads duel server config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadDuels(path string) (Duels, error) {
	cfg := DefaultDuels()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}
