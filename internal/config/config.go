// Package config handles configuration loading from TOML files and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"github.com/xonecas/termchat/internal/constants"
)

// Transport kinds.
const (
	TransportBridge  = "bridge"
	TransportOffline = "offline"
)

// Config is the root configuration structure.
type Config struct {
	Account   AccountConfig   `toml:"account"`
	Transport TransportConfig `toml:"transport"`
	Bridge    BridgeConfig    `toml:"bridge"`
	Offline   OfflineConfig   `toml:"offline"`
	Startup   StartupConfig   `toml:"startup"`
	Journal   JournalConfig   `toml:"journal"`
}

// AccountConfig holds settings about the local account.
type AccountConfig struct {
	// DisplayName is used when the transport does not report one.
	DisplayName string `toml:"display_name"`
}

// TransportConfig selects the chat transport.
type TransportConfig struct {
	Kind string `toml:"kind" validate:"oneof=bridge offline"`
}

// BridgeConfig holds settings for the JSON-RPC chat bridge.
type BridgeConfig struct {
	Endpoint       string        `toml:"endpoint" validate:"required_if=Enabled true,omitempty,url"`
	RequestTimeout time.Duration `toml:"request_timeout" validate:"gte=0"`
	PollInterval   time.Duration `toml:"poll_interval" validate:"gt=0"`
	PollBurst      int           `toml:"poll_burst" validate:"gte=1"`
	SendRate       float64       `toml:"send_rate" validate:"gte=0"`
	SendBurst      int           `toml:"send_burst" validate:"gte=1"`

	// Enabled mirrors Transport.Kind for validation; it is not read from the file.
	Enabled bool `toml:"-"`
}

// OfflineConfig holds settings for the offline transport.
type OfflineConfig struct {
	Self      string        `toml:"self" validate:"required"`
	Contacts  []string      `toml:"contacts"`
	Echo      bool          `toml:"echo"`
	EchoDelay time.Duration `toml:"echo_delay" validate:"gte=0"`
}

// StartupConfig controls the initial contact list fetch.
type StartupConfig struct {
	RetryInterval time.Duration `toml:"retry_interval" validate:"gt=0"`
}

// JournalConfig controls the message journal.
type JournalConfig struct {
	Enabled bool `toml:"enabled"`
	// Path defaults to journal.db in the data directory.
	Path string `toml:"path"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Transport: TransportConfig{
			Kind: TransportBridge,
		},
		Bridge: BridgeConfig{
			Endpoint:       "http://localhost:7600/rpc",
			RequestTimeout: constants.BridgeRequestTimeout,
			PollInterval:   constants.BridgePollInterval,
			PollBurst:      1,
			SendRate:       2.0,
			SendBurst:      3,
		},
		Offline: OfflineConfig{
			Self:      "me",
			Contacts:  []string{"Alice", "Bob", "Carol"},
			Echo:      true,
			EchoDelay: constants.OfflineEchoDelay,
		},
		Startup: StartupConfig{
			RetryInterval: constants.StartupRetryInterval,
		},
		Journal: JournalConfig{
			Enabled: false,
		},
	}
}

// Load reads configuration from a TOML file, applies environment variable
// overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, err
			}
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// UseOffline switches the configuration to the offline transport.
func (c *Config) UseOffline() {
	c.Transport.Kind = TransportOffline
	c.Bridge.Enabled = false
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	c.Bridge.Enabled = c.Transport.Kind == TransportBridge

	v := validator.New()
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides to the configuration.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("TERMCHAT_DISPLAY_NAME"); v != "" {
		cfg.Account.DisplayName = v
	}

	if v := os.Getenv("TERMCHAT_TRANSPORT"); v != "" {
		cfg.Transport.Kind = strings.ToLower(v)
	}

	if v := os.Getenv("TERMCHAT_BRIDGE_ENDPOINT"); v != "" {
		cfg.Bridge.Endpoint = v
	}

	if v := os.Getenv("TERMCHAT_BRIDGE_POLL_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Bridge.PollInterval = d
		}
	}

	if v := os.Getenv("TERMCHAT_BRIDGE_SEND_RATE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Bridge.SendRate = f
		}
	}

	if v := os.Getenv("TERMCHAT_BRIDGE_SEND_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Bridge.SendBurst = n
		}
	}

	if v := os.Getenv("TERMCHAT_STARTUP_RETRY_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Startup.RetryInterval = d
		}
	}

	if v := os.Getenv("TERMCHAT_JOURNAL"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Journal.Enabled = b
		}
	}

	if v := os.Getenv("TERMCHAT_JOURNAL_PATH"); v != "" {
		cfg.Journal.Path = v
	}
}

// DataDir returns the path to the termchat data directory (~/.termchat).
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".termchat"), nil
}

// EnsureDataDir creates the data directory if it doesn't exist.
func EnsureDataDir() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}
