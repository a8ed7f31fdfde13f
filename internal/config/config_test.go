package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Transport.Kind != TransportBridge {
		t.Errorf("expected transport=bridge, got %s", cfg.Transport.Kind)
	}
	if cfg.Startup.RetryInterval != 2*time.Second {
		t.Errorf("expected retry_interval=2s, got %v", cfg.Startup.RetryInterval)
	}
	if cfg.Journal.Enabled {
		t.Error("expected journal disabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[account]
display_name = "Zed"

[transport]
kind = "offline"

[offline]
self = "zed"
contacts = ["Dora", "Eve"]
echo = false
echo_delay = "250ms"

[startup]
retry_interval = "5s"

[journal]
enabled = true
path = "/tmp/termchat-journal.db"
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Account.DisplayName != "Zed" {
		t.Errorf("expected display_name=Zed, got %s", cfg.Account.DisplayName)
	}
	if cfg.Transport.Kind != TransportOffline {
		t.Errorf("expected transport=offline, got %s", cfg.Transport.Kind)
	}
	if !slices.Equal(cfg.Offline.Contacts, []string{"Dora", "Eve"}) {
		t.Errorf("unexpected contacts %v", cfg.Offline.Contacts)
	}
	if cfg.Offline.Echo {
		t.Error("expected echo disabled")
	}
	if cfg.Offline.EchoDelay != 250*time.Millisecond {
		t.Errorf("expected echo_delay=250ms, got %v", cfg.Offline.EchoDelay)
	}
	if cfg.Startup.RetryInterval != 5*time.Second {
		t.Errorf("expected retry_interval=5s, got %v", cfg.Startup.RetryInterval)
	}
	if !cfg.Journal.Enabled || cfg.Journal.Path != "/tmp/termchat-journal.db" {
		t.Errorf("unexpected journal config %+v", cfg.Journal)
	}
	// Untouched sections keep their defaults.
	if cfg.Bridge.Endpoint != "http://localhost:7600/rpc" {
		t.Errorf("expected default bridge endpoint, got %s", cfg.Bridge.Endpoint)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Transport.Kind != TransportBridge {
		t.Errorf("expected default transport, got %s", cfg.Transport.Kind)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(configPath, []byte("[transport\nkind ="), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := Load(configPath); err == nil {
		t.Error("expected error for malformed TOML")
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	t.Setenv("TERMCHAT_DISPLAY_NAME", "Env")
	t.Setenv("TERMCHAT_TRANSPORT", "OFFLINE")
	t.Setenv("TERMCHAT_BRIDGE_ENDPOINT", "http://bridge.internal:9000/rpc")
	t.Setenv("TERMCHAT_BRIDGE_POLL_INTERVAL", "3s")
	t.Setenv("TERMCHAT_BRIDGE_SEND_RATE", "0.5")
	t.Setenv("TERMCHAT_BRIDGE_SEND_BURST", "7")
	t.Setenv("TERMCHAT_STARTUP_RETRY_INTERVAL", "10s")
	t.Setenv("TERMCHAT_JOURNAL", "true")
	t.Setenv("TERMCHAT_JOURNAL_PATH", "/var/tmp/j.db")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Account.DisplayName != "Env" {
		t.Errorf("expected display_name=Env, got %s", cfg.Account.DisplayName)
	}
	if cfg.Transport.Kind != TransportOffline {
		t.Errorf("expected transport=offline, got %s", cfg.Transport.Kind)
	}
	if cfg.Bridge.Endpoint != "http://bridge.internal:9000/rpc" {
		t.Errorf("unexpected endpoint %s", cfg.Bridge.Endpoint)
	}
	if cfg.Bridge.PollInterval != 3*time.Second {
		t.Errorf("expected poll_interval=3s, got %v", cfg.Bridge.PollInterval)
	}
	if cfg.Bridge.SendRate != 0.5 || cfg.Bridge.SendBurst != 7 {
		t.Errorf("unexpected send limits %v/%d", cfg.Bridge.SendRate, cfg.Bridge.SendBurst)
	}
	if cfg.Startup.RetryInterval != 10*time.Second {
		t.Errorf("expected retry_interval=10s, got %v", cfg.Startup.RetryInterval)
	}
	if !cfg.Journal.Enabled || cfg.Journal.Path != "/var/tmp/j.db" {
		t.Errorf("unexpected journal config %+v", cfg.Journal)
	}
}

func TestInvalidEnvValuesAreIgnored(t *testing.T) {
	t.Setenv("TERMCHAT_BRIDGE_POLL_INTERVAL", "soon")
	t.Setenv("TERMCHAT_BRIDGE_SEND_BURST", "many")
	t.Setenv("TERMCHAT_JOURNAL", "maybe")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	defaults := DefaultConfig()
	if cfg.Bridge.PollInterval != defaults.Bridge.PollInterval {
		t.Errorf("expected default poll interval, got %v", cfg.Bridge.PollInterval)
	}
	if cfg.Bridge.SendBurst != defaults.Bridge.SendBurst {
		t.Errorf("expected default send burst, got %d", cfg.Bridge.SendBurst)
	}
	if cfg.Journal.Enabled {
		t.Error("expected journal to stay disabled")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"unknown transport", func(c *Config) { c.Transport.Kind = "carrier-pigeon" }, "Kind"},
		{"bridge without endpoint", func(c *Config) { c.Bridge.Endpoint = "" }, "Endpoint"},
		{"bridge with bad endpoint", func(c *Config) { c.Bridge.Endpoint = "not a url" }, "Endpoint"},
		{"offline ignores endpoint", func(c *Config) {
			c.Transport.Kind = TransportOffline
			c.Bridge.Endpoint = ""
		}, ""},
		{"zero retry interval", func(c *Config) { c.Startup.RetryInterval = 0 }, "RetryInterval"},
		{"offline without self", func(c *Config) { c.Offline.Self = "" }, "Self"},
		{"zero send burst", func(c *Config) { c.Bridge.SendBurst = 0 }, "SendBurst"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error mentioning %s", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error mentioning %s, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestUseOffline(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Bridge.Endpoint = ""
	cfg.UseOffline()

	if cfg.Transport.Kind != TransportOffline {
		t.Errorf("expected transport=offline, got %s", cfg.Transport.Kind)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("offline config should validate without endpoint: %v", err)
	}
}

func TestEnsureDataDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	dir, err := EnsureDataDir()
	if err != nil {
		t.Fatalf("EnsureDataDir() error: %v", err)
	}
	if filepath.Base(dir) != ".termchat" {
		t.Errorf("expected .termchat dir, got %s", dir)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Errorf("expected data dir to exist: %v", err)
	}
}
