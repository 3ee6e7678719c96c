package session

import (
	"errors"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.KeepAliveInterval != 20*time.Second {
		t.Errorf("KeepAliveInterval = %v; want 20s", cfg.KeepAliveInterval)
	}
	if !cfg.BufferPartialFrames {
		t.Error("BufferPartialFrames = false; want true")
	}
	if cfg.Address() != "localhost:25565" {
		t.Errorf("Address() = %q; want localhost:25565", cfg.Address())
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		ok     bool
	}{
		{"valid", func(*Config) {}, true},
		{"no_host", func(c *Config) { c.Host = "" }, false},
		{"bad_port", func(c *Config) { c.Port = 70000 }, false},
		{"no_username", func(c *Config) { c.Username = "" }, false},
		{"long_username", func(c *Config) { c.Username = "abcdefghijklmnopq" }, false},
		{"max_username", func(c *Config) { c.Username = "abcdefghijklmnop" }, true},
		{"zero_keepalive", func(c *Config) { c.KeepAliveInterval = 0 }, false},
		{"negative_pending", func(c *Config) { c.MaxPending = -1 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() error = %v; want nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() error = %v; want ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfigClone(t *testing.T) {
	cfg := testConfig()
	clone := cfg.Clone()
	clone.Username = "Alex"
	if cfg.Username != "Steve" {
		t.Errorf("original Username = %q after modifying clone", cfg.Username)
	}
	var nilCfg *Config
	if nilCfg.Clone() != nil {
		t.Error("nil Clone() != nil")
	}
}

func TestNewFillsDefaults(t *testing.T) {
	s := newSession(t, &Config{Username: "Steve"})
	cfg := s.Config()
	if cfg.Host != "localhost" || cfg.Port != 25565 {
		t.Errorf("address = %s; want localhost:25565", cfg.Address())
	}
	if cfg.KeepAliveInterval != 20*time.Second {
		t.Errorf("KeepAliveInterval = %v; want 20s", cfg.KeepAliveInterval)
	}
	if cfg.BufferPartialFrames {
		t.Error("BufferPartialFrames changed from explicit false")
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  *Config
	}{
		{"nil_has_no_username", nil},
		{"negative_keepalive", &Config{Username: "Steve", KeepAliveInterval: -time.Nanosecond}},
		{"negative_read_buffer", &Config{Username: "Steve", ReadBufferSize: -1}},
		{"bad_port", &Config{Username: "Steve", Port: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.cfg, WithLogger(discardLogger()))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("New() error = %v; want ErrInvalidConfig", err)
			}
			if s != nil {
				t.Error("New() returned a session with an error")
			}
		})
	}
}
