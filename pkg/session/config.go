package session

import (
	"fmt"
	"time"

	"github.com/N1ghtTheF0x/TypeCraft/pkg/protocol"
	"github.com/N1ghtTheF0x/TypeCraft/pkg/transport"
)

// KeepAliveTicks is the default keep-alive period in server ticks.
const KeepAliveTicks = protocol.TPS * 20

// Config configures a session.
type Config struct {
	// Host and Port locate the server.
	// Default: localhost:25565.
	Host string
	Port int

	// Username is sent in the Handshake and LoginRequest.
	Username string

	// KeepAliveInterval is the time between KeepAlive packets once Ready.
	// Default: KeepAliveTicks at 20 ticks per second.
	KeepAliveInterval time.Duration

	// DialTimeout bounds Connect. Zero means no limit beyond ctx.
	// Default: 10 seconds.
	DialTimeout time.Duration

	// BufferPartialFrames keeps a truncated trailing packet and completes it
	// with the next delivery. When false, a delivery that ends mid-packet
	// ends the session.
	// Default: true.
	BufferPartialFrames bool

	// MaxPending caps the bytes buffered for an incomplete packet.
	// Default: protocol.DefaultMaxPending.
	MaxPending int

	// ReadBufferSize is the size of the buffer Run reads into.
	// Default: 32KB.
	ReadBufferSize int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Host:                "localhost",
		Port:                25565,
		KeepAliveInterval:   protocol.TicksToDuration(KeepAliveTicks),
		DialTimeout:         10 * time.Second,
		BufferPartialFrames: true,
		MaxPending:          protocol.DefaultMaxPending,
		ReadBufferSize:      32 * 1024,
	}
}

// Clone returns a copy of the config.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}

// Address returns the dial address.
func (c *Config) Address() string {
	return transport.Address(c.Host, c.Port)
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	switch {
	case c.Host == "":
		return fmt.Errorf("%w: host is required", ErrInvalidConfig)
	case c.Port <= 0 || c.Port > 65535:
		return fmt.Errorf("%w: port %d out of range", ErrInvalidConfig, c.Port)
	case c.Username == "":
		return fmt.Errorf("%w: username is required", ErrInvalidConfig)
	case len([]rune(c.Username)) > protocol.MaxUsernameLength:
		return fmt.Errorf("%w: username longer than %d characters", ErrInvalidConfig, protocol.MaxUsernameLength)
	case c.KeepAliveInterval <= 0:
		return fmt.Errorf("%w: keep-alive interval must be positive", ErrInvalidConfig)
	case c.MaxPending < 0:
		return fmt.Errorf("%w: negative max pending", ErrInvalidConfig)
	case c.ReadBufferSize < 0:
		return fmt.Errorf("%w: negative read buffer size", ErrInvalidConfig)
	}
	return nil
}

// withDefaults fills zero numeric fields. BufferPartialFrames is left as
// given because false is a meaningful choice.
func (c *Config) withDefaults() *Config {
	out := c.Clone()
	def := DefaultConfig()
	if out.Host == "" {
		out.Host = def.Host
	}
	if out.Port == 0 {
		out.Port = def.Port
	}
	if out.KeepAliveInterval == 0 {
		out.KeepAliveInterval = def.KeepAliveInterval
	}
	if out.MaxPending == 0 {
		out.MaxPending = def.MaxPending
	}
	if out.ReadBufferSize == 0 {
		out.ReadBufferSize = def.ReadBufferSize
	}
	return out
}
