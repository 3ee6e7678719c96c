package config

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/N1ghtTheF0x/TypeCraft/internal/errors"
	"github.com/N1ghtTheF0x/TypeCraft/pkg/protocol"
	"github.com/N1ghtTheF0x/TypeCraft/pkg/session"
	"github.com/N1ghtTheF0x/TypeCraft/pkg/transport"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "typecraft.json"

	// DefaultHost is the default server host.
	DefaultHost = "localhost"

	// DefaultPort is the default server port.
	DefaultPort = 25565

	// DefaultUsername is used when neither file nor flag names a player.
	DefaultUsername = "Player"

	// DefaultDialTimeout bounds connection setup.
	DefaultDialTimeout = "10s"

	// DefaultLogLevel and DefaultLogFormat configure the command's logger.
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Transport kinds.
const (
	TransportTCP       = "tcp"
	TransportWebSocket = "websocket"
)

// Config represents the complete typecraft.json configuration.
type Config struct {
	// Server locates the server to join.
	Server ServerConfig `json:"server,omitempty"`

	// Username is the player name.
	Username string `json:"username,omitempty"`

	// Transport selects how to reach the server.
	Transport TransportConfig `json:"transport,omitempty"`

	// KeepAliveInterval is the time between keep-alive packets (e.g., "20s").
	KeepAliveInterval string `json:"keepAliveInterval,omitempty"`

	// Metrics contains the telemetry listener configuration.
	Metrics MetricsConfig `json:"metrics,omitempty"`

	// Capture contains packet capture destinations.
	Capture CaptureConfig `json:"capture,omitempty"`

	// Log configures logging.
	Log LogConfig `json:"log,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig contains the server address.
type ServerConfig struct {
	Host string `json:"host,omitempty"`
	Port int    `json:"port,omitempty"`
}

// TransportConfig contains transport settings.
type TransportConfig struct {
	// Kind is "tcp" or "websocket".
	Kind string `json:"kind,omitempty"`

	// URL is the websocket bridge endpoint. Only used by "websocket".
	URL string `json:"url,omitempty"`

	// DialTimeout bounds connection setup (e.g., "10s").
	DialTimeout string `json:"dialTimeout,omitempty"`
}

// MetricsConfig contains telemetry settings.
type MetricsConfig struct {
	// Addr is the listen address for /metrics and /healthz. Empty disables
	// the listener.
	Addr string `json:"addr,omitempty"`

	// Namespace is the Prometheus namespace (default: "typecraft").
	Namespace string `json:"namespace,omitempty"`
}

// CaptureConfig contains packet capture settings. Captures are disabled
// when both Dir and Bucket are empty.
type CaptureConfig struct {
	// Dir receives one file per packet.
	Dir string `json:"dir,omitempty"`

	// Bucket and Prefix select an S3 destination.
	Bucket string `json:"bucket,omitempty"`
	Prefix string `json:"prefix,omitempty"`

	// Region overrides the AWS region from the environment and shared
	// config. Endpoint points the client at an S3-compatible store and
	// switches to path-style addressing.
	Region   string `json:"region,omitempty"`
	Endpoint string `json:"endpoint,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is debug, info, warn, or error.
	Level string `json:"level,omitempty"`

	// Format is text or json.
	Format string `json:"format,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from the specified directory.
// It looks for typecraft.json in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E100").
				WithDetail("No " + filepath.Base(path) + " found in " + filepath.Dir(path)).
				WithSuggestion("Create one or pass --host, --port, and --username instead")
		}
		return nil, errors.New("E101").Wrap(err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E101").
			WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error()).
			WithSuggestion("Check that the file is valid JSON")
	}
	cfg.configPath = path
	cfg.applyDefaults()
	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E101").Wrap(err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E101").Wrap(err)
	}
	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Username == "" {
		c.Username = DefaultUsername
	}
	if c.Transport.Kind == "" {
		c.Transport.Kind = TransportTCP
	}
	if c.Transport.DialTimeout == "" {
		c.Transport.DialTimeout = DefaultDialTimeout
	}
	if c.KeepAliveInterval == "" {
		c.KeepAliveInterval = session.DefaultConfig().KeepAliveInterval.String()
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = "typecraft"
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Host == "" || c.Server.Port <= 0 || c.Server.Port > 65535 {
		return errors.New("E102").
			WithDetail("Port must be between 1 and 65535 and host must be set")
	}
	if n := len([]rune(c.Username)); n == 0 || n > protocol.MaxUsernameLength {
		return errors.New("E103")
	}
	switch c.Transport.Kind {
	case TransportTCP:
	case TransportWebSocket:
		if c.Transport.URL == "" {
			return errors.New("E104").WithSuggestion("Set transport.url or pass --url")
		}
	default:
		return errors.New("E104")
	}
	if _, err := parseDuration(c.Transport.DialTimeout); err != nil {
		return errors.New("E101").WithDetail("transport.dialTimeout: " + err.Error())
	}
	if d, err := parseDuration(c.KeepAliveInterval); err != nil || d <= 0 {
		return errors.New("E101").WithDetail("keepAliveInterval must be a positive duration")
	}
	if _, ok := parseLevel(c.Log.Level); !ok {
		return errors.New("E105")
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return errors.New("E105")
	}
	return nil
}

func parseDuration(s string) (time.Duration, error) {
	return time.ParseDuration(s)
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return 0, false
}

// Address returns the server dial address.
func (c *Config) Address() string {
	return transport.Address(c.Server.Host, c.Server.Port)
}

// Session returns the session configuration. Call Validate first; invalid
// durations fall back to their defaults.
func (c *Config) Session() *session.Config {
	cfg := session.DefaultConfig()
	cfg.Host = c.Server.Host
	cfg.Port = c.Server.Port
	cfg.Username = c.Username
	if d, err := parseDuration(c.KeepAliveInterval); err == nil && d > 0 {
		cfg.KeepAliveInterval = d
	}
	if d, err := parseDuration(c.Transport.DialTimeout); err == nil {
		cfg.DialTimeout = d
	}
	return cfg
}

// Dialer returns the transport dialer for the configured kind.
func (c *Config) Dialer() transport.Dialer {
	timeout, _ := parseDuration(c.Transport.DialTimeout)
	if c.Transport.Kind == TransportWebSocket {
		return transport.WebSocketDialer{URL: c.Transport.URL, HandshakeTimeout: timeout}
	}
	return transport.TCPDialer{Timeout: timeout}
}

// CapturePath returns the capture directory, resolved against the config
// file's directory when relative.
func (c *Config) CapturePath() string {
	if c.Capture.Dir == "" || filepath.IsAbs(c.Capture.Dir) {
		return c.Capture.Dir
	}
	return filepath.Join(c.Dir(), c.Capture.Dir)
}

// Logger builds the logger described by Log, writing to w.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	level, ok := parseLevel(c.Log.Level)
	if !ok {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
