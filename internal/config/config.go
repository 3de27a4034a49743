package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"pokesearch/internal/eventbus"
	"pokesearch/internal/pokeapi"
	"pokesearch/internal/silk"
)

// DefaultBaseURL is the public reference API root
const DefaultBaseURL = pokeapi.DefaultBaseURL

// Config represents the application configuration
type Config struct {
	Version    int            `toml:"version"`
	API        APISettings    `toml:"api"`
	UISettings UISettings     `toml:"ui"`
	Search     SearchSettings `toml:"search"`
}

// APISettings configures the record fetcher
type APISettings struct {
	BaseURL   string `toml:"base_url"`
	UserAgent string `toml:"user_agent"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	Background   bool    `toml:"background"`
	AccentColor  string  `toml:"accent_color"`
	SilkSpeed    float64 `toml:"silk_speed"`
	SilkNoise    float64 `toml:"silk_noise"`
	SilkScale    float64 `toml:"silk_scale"`
	SilkRotation float64 `toml:"silk_rotation"`
}

// SilkParams converts the background settings for the renderer
func (u UISettings) SilkParams() silk.Params {
	return silk.Params{
		Speed:          u.SilkSpeed,
		Scale:          u.SilkScale,
		Color:          u.AccentColor,
		NoiseIntensity: u.SilkNoise,
		Rotation:       u.SilkRotation,
	}
}

// SearchSettings controls how overlapping lookups are resolved
type SearchSettings struct {
	// GuardStaleResults drops results from requests superseded by a newer search
	GuardStaleResults bool `toml:"guard_stale_results"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "pokesearch", "config.toml")
}

// NewConfigService creates a config service backed by path.
// An empty path selects DefaultPath. bus may be nil.
func NewConfigService(path string, bus eventbus.EventBus) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{
		bus:      bus,
		filePath: path,
	}
}

// Path returns the file this service reads and writes
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to defaults when absent
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = DefaultConfig()
	} else if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path.
// Keys missing from the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.normalize()

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Write a sibling file and rename it so readers never see a partial file
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Updater serializes read-modify-write updates of the stored config.
// Each update carries a revision; one older than the last applied update
// is skipped, so the newest change always ends up on disk.
type Updater struct {
	mu      sync.Mutex
	svc     ConfigService
	applied uint64
}

// NewUpdater creates an Updater saving through svc
func NewUpdater(svc ConfigService) *Updater {
	return &Updater{svc: svc}
}

// Apply loads the stored config, lets mutate change it and saves it.
// It reports whether the update was written.
func (u *Updater) Apply(revision uint64, mutate func(*Config)) (bool, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if revision <= u.applied {
		return false, nil
	}

	stored, err := u.svc.Load()
	if err != nil {
		stored = DefaultConfig()
	}
	mutate(stored)
	if err := u.svc.Save(stored); err != nil {
		return false, err
	}
	u.applied = revision
	return true, nil
}

// normalize fills values a hand-edited file may have blanked out
func (c *Config) normalize() {
	def := DefaultConfig()
	if c.Version == 0 {
		c.Version = def.Version
	}
	if c.API.BaseURL == "" {
		c.API.BaseURL = def.API.BaseURL
	}
	if c.UISettings.AccentColor == "" {
		c.UISettings.AccentColor = def.UISettings.AccentColor
	}
	if c.UISettings.SilkScale <= 0 {
		c.UISettings.SilkScale = def.UISettings.SilkScale
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		API: APISettings{
			BaseURL:   DefaultBaseURL,
			UserAgent: "pokesearch",
		},
		UISettings: UISettings{
			Background:  true,
			AccentColor: "#7B7481",
			SilkSpeed:   5,
			SilkNoise:   1.5,
			SilkScale:   1,
		},
	}
}
