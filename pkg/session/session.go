package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/N1ghtTheF0x/TypeCraft/pkg/capture"
	"github.com/N1ghtTheF0x/TypeCraft/pkg/protocol"
	"github.com/N1ghtTheF0x/TypeCraft/pkg/transport"
)

const tracerName = "typecraft"

// Option configures a Session.
type Option func(*Session)

// WithDialer sets the dialer used by Connect.
// Default: transport.TCPDialer with Config.DialTimeout.
func WithDialer(d transport.Dialer) Option {
	return func(s *Session) {
		s.dialer = d
	}
}

// WithLogger sets the logger.
// Default: slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithMetrics records session metrics into m.
func WithMetrics(m *Metrics) Option {
	return func(s *Session) {
		s.metrics = m
	}
}

// WithTracer sets the tracer for connect and delivery spans.
// Default: otel.Tracer("typecraft").
func WithTracer(t trace.Tracer) Option {
	return func(s *Session) {
		s.tracer = t
	}
}

// WithCapture writes every inbound and outbound packet to sink.
func WithCapture(sink capture.Sink) Option {
	return func(s *Session) {
		s.capture = sink
	}
}

// Session is one client connection to a server.
//
// HandleData must not be called concurrently with itself; deliveries are
// serialized internally. Send, the accessors, and HandleClose are safe to
// call from any goroutine.
type Session struct {
	config  *Config
	dialer  transport.Dialer
	logger  *slog.Logger
	metrics *Metrics
	tracer  trace.Tracer
	capture capture.Sink

	// Connection
	conn    transport.Conn
	writeMu sync.Mutex // Serializes conn writes

	// Inbound delivery
	deliverMu   sync.Mutex
	reassembler *protocol.Reassembler

	// State, guarded by mu
	mu        sync.RWMutex
	state     State
	hash      string
	entityID  int32
	mapSeed   int64
	dimension protocol.Dimension
	worldTime int64
	haveTime  bool
	ticks     int64
	keepAlive *keepAlive
	endErr    error

	subs subscribers
	seq  atomic.Uint64 // Capture sequence
	done chan struct{}
}

// New creates a disconnected session. A nil cfg uses DefaultConfig; zero
// numeric fields take their defaults. The result must pass Validate.
func New(cfg *Config, opts ...Option) (*Session, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		config: cfg,
		state:  StateDisconnected,
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.dialer == nil {
		s.dialer = transport.TCPDialer{Timeout: cfg.DialTimeout}
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.tracer == nil {
		s.tracer = otel.Tracer(tracerName)
	}
	s.logger = s.logger.With("server", cfg.Address(), "username", cfg.Username)
	if cfg.BufferPartialFrames {
		s.reassembler = protocol.NewReassembler()
		s.reassembler.MaxPending = cfg.MaxPending
	}
	s.metrics.created()
	return s, nil
}

// Config returns a copy of the session's configuration.
func (s *Session) Config() *Config {
	return s.config.Clone()
}

// Connect dials the server and sends the Handshake.
func (s *Session) Connect(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "typecraft.connect",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("typecraft.server", s.config.Address()),
			attribute.String("typecraft.username", s.config.Username),
		),
	)
	defer span.End()

	if err := s.transition(StateDisconnected, StateConnecting); err != nil {
		return err
	}

	conn, err := s.dialer.Dial(ctx, s.config.Address())
	if err != nil {
		err = &SessionError{Op: "dial", Err: err}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.Error("connect failed", "error", err)
		s.end(err)
		return err
	}

	s.mu.Lock()
	s.conn = conn
	s.mu.Unlock()
	s.logger.Info("connected", "remote", conn.RemoteAddr())

	if err := s.HandleConnected(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	span.SetStatus(codes.Ok, "")
	return nil
}

// Attach uses conn, opened by the caller, as the session's transport.
// The session must be Disconnected; it becomes Connecting. Call
// HandleConnected next.
func (s *Session) Attach(conn transport.Conn) error {
	s.mu.Lock()
	if s.state != StateDisconnected {
		state := s.state
		s.mu.Unlock()
		return stateError(state)
	}
	s.conn = conn
	s.state = StateConnecting
	s.mu.Unlock()
	s.metrics.transition(StateDisconnected, StateConnecting)
	return nil
}

// HandleConnected sends the Handshake once the transport is up.
func (s *Session) HandleConnected() error {
	if err := s.transition(StateConnecting, StateAwaitingHandshake); err != nil {
		return err
	}
	if err := s.Send(&protocol.Handshake{Value: s.config.Username}); err != nil {
		s.end(err)
		return err
	}
	return nil
}

// HandleData delivers bytes received from the server.
//
// Complete frames are processed in order. With BufferPartialFrames a
// trailing incomplete frame is kept for the next call; without it the
// session ends. An unknown opcode is returned as an error matching
// protocol.ErrUnknownOpcode and the session continues. Any other decode
// failure ends the session and is returned.
func (s *Session) HandleData(chunk []byte) error {
	s.deliverMu.Lock()
	defer s.deliverMu.Unlock()

	if s.State() == StateEnded {
		return ErrSessionEnded
	}

	_, span := s.tracer.Start(context.Background(), "typecraft.deliver",
		trace.WithSpanKind(trace.SpanKindConsumer),
		trace.WithAttributes(attribute.Int("typecraft.bytes", len(chunk))),
	)
	defer span.End()

	s.metrics.delivered(len(chunk))

	frames, err := s.decode(chunk)
	span.SetAttributes(attribute.Int("typecraft.frames", len(frames)))
	for _, f := range frames {
		s.deliver(f)
		if s.State() == StateEnded {
			return nil
		}
	}
	if err == nil {
		return nil
	}

	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	s.metrics.decodeError(errorKind(err))

	if errors.Is(err, protocol.ErrUnknownOpcode) {
		s.logger.Warn("unknown opcode, dropping rest of delivery", "error", err)
		return err
	}
	s.logger.Error("decode failed", "error", err)
	err = &SessionError{Op: "deliver", Err: err}
	s.end(err)
	return err
}

func (s *Session) decode(chunk []byte) ([]*protocol.Frame, error) {
	if s.reassembler != nil {
		return s.reassembler.Feed(chunk)
	}
	return protocol.DecodeStream(protocol.NewReadCursor(chunk))
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, protocol.ErrUnknownOpcode):
		return "unknown_opcode"
	case errors.Is(err, protocol.ErrFrameTooLarge):
		return "frame_too_large"
	case errors.Is(err, protocol.ErrBoundsViolation):
		return "bounds"
	case errors.Is(err, protocol.ErrMalformed),
		errors.Is(err, protocol.ErrAllocationTooLarge),
		errors.Is(err, protocol.ErrCollectionTooLarge):
		return "malformed"
	default:
		return "other"
	}
}

// deliver applies one frame: state changes first, then subscribers. A kick
// is published before the session ends.
func (s *Session) deliver(f *protocol.Frame) {
	s.metrics.received(f.Opcode)
	s.record(protocol.Inbound, f.Opcode, f.Raw)
	s.logger.Debug("packet received", "frame", f)

	switch p := f.Packet.(type) {
	case *protocol.Handshake:
		s.onHandshake(p)
	case *protocol.LoginRequest:
		s.onLogin(p)
	case *protocol.TimeUpdate:
		s.onTimeUpdate(p)
	case *protocol.DisconnectKick:
		s.subs.publish(p)
		s.logger.Info("kicked", "reason", p.Reason)
		s.end(&KickError{Reason: p.Reason})
		return
	}
	s.subs.publish(f.Packet)
}

func (s *Session) onHandshake(p *protocol.Handshake) {
	if s.State() != StateAwaitingHandshake {
		return
	}
	_, span := s.tracer.Start(context.Background(), "typecraft.login",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("typecraft.connection_hash", p.Value)),
	)
	defer span.End()

	s.mu.Lock()
	s.hash = p.Value
	s.mu.Unlock()

	login := protocol.NewLoginRequest(s.config.Username)
	if err := s.Send(login); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.end(err)
		return
	}
	if err := s.transition(StateAwaitingHandshake, StateAwaitingLogin); err != nil {
		return
	}
	s.logger.Debug("handshake accepted", "hash", p.Value)
}

func (s *Session) onLogin(p *protocol.LoginRequest) {
	s.mu.Lock()
	if s.state != StateAwaitingLogin {
		s.mu.Unlock()
		return
	}
	s.entityID = p.EntityID
	s.mapSeed = p.MapSeed
	s.dimension = p.Dimension
	s.state = StateReady
	s.keepAlive = startKeepAlive(s.config.KeepAliveInterval, s.sendKeepAlive, s.keepAliveFailed)
	s.mu.Unlock()

	s.metrics.transition(StateAwaitingLogin, StateReady)
	s.logger.Info("logged in",
		"entity_id", p.EntityID,
		"map_seed", p.MapSeed,
		"dimension", p.Dimension.String())
}

func (s *Session) onTimeUpdate(p *protocol.TimeUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateReady {
		return
	}
	// A time set or clock reset moves the baseline without rewinding ticks.
	if s.haveTime && p.Time > s.worldTime {
		s.ticks += p.Time - s.worldTime
	}
	s.worldTime = p.Time
	s.haveTime = true
}

func (s *Session) sendKeepAlive() error {
	return s.Send(&protocol.KeepAlive{})
}

func (s *Session) keepAliveFailed(err error) {
	s.logger.Error("keep-alive failed", "error", err)
	s.end(err)
}

// HandleClose ends the session after the transport closed. err is the
// reason, nil for a clean close. Calling it on an ended session is a no-op.
func (s *Session) HandleClose(err error) {
	s.end(err)
}

// Close ends the session and closes its transport.
func (s *Session) Close() error {
	s.end(nil)
	return nil
}

// end moves to Ended, stops the keep-alive, closes the transport, and
// notifies end handlers. Only the first call has any effect.
func (s *Session) end(err error) {
	s.mu.Lock()
	if s.state == StateEnded {
		s.mu.Unlock()
		return
	}
	prev := s.state
	s.state = StateEnded
	s.endErr = err
	ka := s.keepAlive
	conn := s.conn
	s.mu.Unlock()

	ka.stop()
	if conn != nil {
		_ = conn.Close()
	}
	close(s.done)

	s.metrics.transition(prev, StateEnded)
	if err != nil && !errors.Is(err, ErrKicked) {
		s.logger.Warn("session ended", "from", prev.String(), "error", err)
	} else {
		s.logger.Info("session ended", "from", prev.String())
	}
	s.subs.ended(err)
}

// transition moves from one state to the next, or reports ErrInvalidState.
func (s *Session) transition(from, to State) error {
	s.mu.Lock()
	if s.state != from {
		state := s.state
		s.mu.Unlock()
		return stateError(state)
	}
	s.state = to
	s.mu.Unlock()
	s.metrics.transition(from, to)
	return nil
}

func stateError(state State) error {
	if state == StateEnded {
		return ErrSessionEnded
	}
	return ErrInvalidState
}

// Send encodes p and writes it to the server.
func (s *Session) Send(p protocol.Packet) error {
	if p == nil {
		return protocol.ErrNilPacket
	}
	s.mu.RLock()
	state, conn := s.state, s.conn
	s.mu.RUnlock()
	if state == StateEnded {
		return ErrSessionEnded
	}
	if conn == nil {
		return ErrNotConnected
	}

	data, err := protocol.Encode(p)
	if err != nil {
		return &SessionError{Op: "send", Err: err}
	}

	s.writeMu.Lock()
	_, err = conn.Write(data)
	s.writeMu.Unlock()
	if err != nil {
		return &SessionError{Op: "send", Err: err}
	}

	s.metrics.sent(p.Opcode(), len(data))
	s.record(protocol.Outbound, p.Opcode(), data)
	s.logger.Debug("packet sent", "opcode", p.Opcode().String(), "len", len(data))
	return nil
}

// Chat sends a chat message, truncated to protocol.MaxChatLength.
func (s *Session) Chat(message string) error {
	return s.Send(protocol.NewChat(message))
}

func (s *Session) record(dir protocol.Direction, op protocol.Opcode, data []byte) {
	if s.capture == nil {
		return
	}
	rec := capture.Record{
		Seq:       s.seq.Add(1),
		Direction: dir,
		Opcode:    op,
		Time:      time.Now(),
		Data:      data,
	}
	if err := s.capture.Write(context.Background(), rec); err != nil {
		s.logger.Warn("capture failed", "record", rec.Name(), "error", err)
	}
}

// Run reads from the transport and delivers data until the session ends or
// ctx is canceled. It returns the reason the session ended: nil after a
// clean close by the server, *KickError after a kick.
func (s *Session) Run(ctx context.Context) error {
	s.mu.RLock()
	conn := s.conn
	s.mu.RUnlock()
	if conn == nil {
		return ErrNotConnected
	}

	stop := context.AfterFunc(ctx, func() {
		s.end(ctx.Err())
	})
	defer stop()

	buf := make([]byte, s.config.ReadBufferSize)
	for {
		n, err := conn.Read(buf)
		if n > 0 {
			if herr := s.HandleData(buf[:n]); errors.Is(herr, ErrSessionEnded) {
				break
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.end(nil)
			} else {
				s.end(&SessionError{Op: "read", Err: err})
			}
			break
		}
		if s.State() == StateEnded {
			break
		}
	}
	return s.Err()
}

// Done returns a channel that is closed when the session ends.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Err returns the reason the session ended, or nil.
func (s *Session) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.endErr
}

// State returns the current state.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// ConnectionHash returns the hash from the server's Handshake.
func (s *Session) ConnectionHash() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hash
}

// EntityID returns the player's entity id, assigned at login.
func (s *Session) EntityID() int32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entityID
}

// MapSeed returns the world seed sent at login.
func (s *Session) MapSeed() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mapSeed
}

// Dimension returns the dimension sent at login.
func (s *Session) Dimension() protocol.Dimension {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dimension
}

// Ticks returns the world ticks elapsed since the first TimeUpdate.
func (s *Session) Ticks() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ticks
}

// WorldTime returns the last world time received, and whether one has been.
func (s *Session) WorldTime() (int64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.worldTime, s.haveTime
}

// KeepAliveActive reports whether keep-alive packets are being sent.
func (s *Session) KeepAliveActive() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.keepAlive.active()
}

// LogValue implements slog.LogValuer.
func (s *Session) LogValue() slog.Value {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slog.GroupValue(
		slog.String("state", s.state.String()),
		slog.String("server", s.config.Address()),
		slog.Int("entity_id", int(s.entityID)),
		slog.Int64("ticks", s.ticks),
	)
}
