package config

import (
	"bytes"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/N1ghtTheF0x/TypeCraft/internal/errors"
	"github.com/N1ghtTheF0x/TypeCraft/pkg/transport"
)

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Server.Port != DefaultPort {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, DefaultPort)
	}
	if cfg.Server.Host != DefaultHost {
		t.Errorf("Server.Host = %q, want %q", cfg.Server.Host, DefaultHost)
	}
	if cfg.Transport.Kind != TransportTCP {
		t.Errorf("Transport.Kind = %q, want %q", cfg.Transport.Kind, TransportTCP)
	}
	if cfg.KeepAliveInterval != "20s" {
		t.Errorf("KeepAliveInterval = %q, want 20s", cfg.KeepAliveInterval)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := Load(tmpDir)
	var e *errors.Error
	if !stderrors.As(err, &e) || e.Code != "E100" {
		t.Errorf("Load() missing file error = %v, want E100", err)
	}

	configJSON := `{
  "server": {"host": "mc.example.net", "port": 25566},
  "username": "Steve",
  "transport": {"kind": "websocket", "url": "ws://bridge:8080/"},
  "keepAliveInterval": "5s",
  "capture": {"dir": "packets"},
  "log": {"level": "debug", "format": "json"}
}
`
	if err := os.WriteFile(filepath.Join(tmpDir, ConfigFileName), []byte(configJSON), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Address() != "mc.example.net:25566" {
		t.Errorf("Address() = %q", cfg.Address())
	}
	if cfg.Username != "Steve" {
		t.Errorf("Username = %q", cfg.Username)
	}
	if cfg.Transport.DialTimeout != DefaultDialTimeout {
		t.Errorf("Transport.DialTimeout = %q, want default", cfg.Transport.DialTimeout)
	}
	if cfg.CapturePath() != filepath.Join(tmpDir, "packets") {
		t.Errorf("CapturePath() = %q", cfg.CapturePath())
	}
	if cfg.Dir() != tmpDir {
		t.Errorf("Dir() = %q, want %q", cfg.Dir(), tmpDir)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}

	sc := cfg.Session()
	if sc.KeepAliveInterval != 5*time.Second || sc.Username != "Steve" || sc.Port != 25566 {
		t.Errorf("Session() = %+v", sc)
	}
	if !sc.BufferPartialFrames {
		t.Error("Session().BufferPartialFrames = false")
	}

	if d, ok := cfg.Dialer().(transport.WebSocketDialer); !ok || d.URL != "ws://bridge:8080/" {
		t.Errorf("Dialer() = %#v, want WebSocketDialer", cfg.Dialer())
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadFile(path)
	var e *errors.Error
	if !stderrors.As(err, &e) || e.Code != "E101" {
		t.Errorf("LoadFile() error = %v, want E101", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	cfg := New()
	cfg.Username = "Alex"
	cfg.Metrics.Addr = ":9090"

	if err := cfg.Save(); err == nil {
		t.Error("Save() without path succeeded")
	}
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}
	if cfg.Path() != path {
		t.Errorf("Path() = %q, want %q", cfg.Path(), path)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if loaded.Username != "Alex" || loaded.Metrics.Addr != ":9090" {
		t.Errorf("loaded = %+v", loaded)
	}

	loaded.Username = "Notch"
	if err := loaded.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	again, _ := LoadFile(path)
	if again.Username != "Notch" {
		t.Errorf("Username after Save() = %q", again.Username)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		code   string
	}{
		{"valid", func(*Config) {}, ""},
		{"port", func(c *Config) { c.Server.Port = 70000 }, "E102"},
		{"host", func(c *Config) { c.Server.Host = "" }, "E102"},
		{"username_long", func(c *Config) { c.Username = strings.Repeat("a", 17) }, "E103"},
		{"transport_kind", func(c *Config) { c.Transport.Kind = "udp" }, "E104"},
		{"websocket_without_url", func(c *Config) { c.Transport.Kind = TransportWebSocket }, "E104"},
		{"dial_timeout", func(c *Config) { c.Transport.DialTimeout = "soon" }, "E101"},
		{"keepalive", func(c *Config) { c.KeepAliveInterval = "0s" }, "E101"},
		{"log_level", func(c *Config) { c.Log.Level = "loud" }, "E105"},
		{"log_format", func(c *Config) { c.Log.Format = "xml" }, "E105"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.code == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			var e *errors.Error
			if !stderrors.As(err, &e) || e.Code != tt.code {
				t.Errorf("Validate() = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestDialerTCP(t *testing.T) {
	d, ok := New().Dialer().(transport.TCPDialer)
	if !ok {
		t.Fatalf("Dialer() = %T, want TCPDialer", New().Dialer())
	}
	if d.Timeout != 10*time.Second {
		t.Errorf("Timeout = %v, want 10s", d.Timeout)
	}
}

func TestLogger(t *testing.T) {
	cfg := New()
	cfg.Log.Format = "json"
	cfg.Log.Level = "warn"

	var buf bytes.Buffer
	logger := cfg.Logger(&buf)
	logger.Info("hidden")
	logger.Warn("shown", "k", 1)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info logged at warn level: %s", out)
	}
	if !strings.Contains(out, `"msg":"shown"`) {
		t.Errorf("output not JSON: %s", out)
	}
}

func TestCapturePathAbsolute(t *testing.T) {
	cfg := New()
	if cfg.CapturePath() != "" {
		t.Errorf("CapturePath() = %q, want empty", cfg.CapturePath())
	}
	abs := filepath.Join(t.TempDir(), "p")
	cfg.Capture.Dir = abs
	if cfg.CapturePath() != abs {
		t.Errorf("CapturePath() = %q, want %q", cfg.CapturePath(), abs)
	}
}
