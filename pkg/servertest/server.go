package servertest

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/N1ghtTheF0x/TypeCraft/pkg/protocol"
	"github.com/N1ghtTheF0x/TypeCraft/pkg/transport"
)

// ErrServerClosed is returned by Accept after Close.
var ErrServerClosed = errors.New("servertest: server closed")

// Config scripts the server side of the login.
type Config struct {
	// Hash is the connection hash sent in reply to the client's Handshake.
	// Default: "-" (no authentication).
	Hash string

	// EntityID, MapSeed, and Dimension fill the login reply.
	EntityID  int32
	MapSeed   int64
	Dimension protocol.Dimension

	// Welcome packets are sent right after the login reply, for example a
	// SpawnPosition and the first TimeUpdate.
	Welcome []protocol.Packet

	// SkipLogin disables the scripted replies. The server then only records
	// what the client sends.
	SkipLogin bool
}

// Option configures a Server.
type Option func(*Config)

// WithHash sets the connection hash.
func WithHash(hash string) Option {
	return func(c *Config) {
		c.Hash = hash
	}
}

// WithEntityID sets the entity id assigned at login.
func WithEntityID(id int32) Option {
	return func(c *Config) {
		c.EntityID = id
	}
}

// WithMapSeed sets the map seed sent at login.
func WithMapSeed(seed int64) Option {
	return func(c *Config) {
		c.MapSeed = seed
	}
}

// WithDimension sets the dimension sent at login.
func WithDimension(d protocol.Dimension) Option {
	return func(c *Config) {
		c.Dimension = d
	}
}

// WithWelcome queues packets to send after the login reply.
func WithWelcome(packets ...protocol.Packet) Option {
	return func(c *Config) {
		c.Welcome = append(c.Welcome, packets...)
	}
}

// WithoutLogin turns the scripted replies off.
func WithoutLogin() Option {
	return func(c *Config) {
		c.SkipLogin = true
	}
}

// Server is a local protocol server listening on a loopback port.
type Server struct {
	// Addr is the host:port the server listens on.
	Addr string

	// URL is the websocket endpoint. Empty for TCP servers.
	URL string

	config Config
	ln     net.Listener
	http   *httptest.Server

	peers chan *Peer

	mu     sync.Mutex
	closed bool
	all    []*Peer
	wg     sync.WaitGroup
}

func newServer(opts []Option) *Server {
	cfg := Config{Hash: "-"}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Server{
		config: cfg,
		peers:  make(chan *Peer, 16),
	}
}

// New starts a TCP server on 127.0.0.1 with a random port. It panics if it
// cannot listen, like httptest.NewServer.
func New(opts ...Option) *Server {
	s := newServer(opts)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		panic(fmt.Sprintf("servertest: failed to listen: %v", err))
	}
	s.ln = ln
	s.Addr = ln.Addr().String()

	s.wg.Add(1)
	go s.acceptLoop()
	return s
}

// NewWebSocket starts a server that speaks the protocol as binary websocket
// messages behind an HTTP upgrade.
func NewWebSocket(opts ...Option) *Server {
	s := newServer(opts)
	upgrader := websocket.Upgrader{
		CheckOrigin: func(*http.Request) bool { return true },
	}
	s.http = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		s.start(transport.NewWebSocketConn(ws))
	}))
	s.Addr = s.http.Listener.Addr().String()
	s.URL = "ws" + strings.TrimPrefix(s.http.URL, "http") + "/"
	return s
}

func (s *Server) acceptLoop() {
	defer s.wg.Done()
	for {
		c, err := s.ln.Accept()
		if err != nil {
			return
		}
		s.start(transport.NewConn(c))
	}
}

// start registers a connection and runs its script.
func (s *Server) start(conn transport.Conn) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		conn.Close()
		return
	}
	p := newPeer(conn, s.config)
	s.all = append(s.all, p)
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		p.serve()
	}()

	select {
	case s.peers <- p:
	default:
		// Nobody is accepting; the peer is still tracked for Close.
	}
}

// Host returns the listening host.
func (s *Server) Host() string {
	host, _, _ := net.SplitHostPort(s.Addr)
	return host
}

// Port returns the listening port.
func (s *Server) Port() int {
	_, port, _ := net.SplitHostPort(s.Addr)
	n, _ := strconv.Atoi(port)
	return n
}

// Dialer returns a dialer that reaches this server regardless of the
// address the session asks for.
func (s *Server) Dialer() transport.Dialer {
	if s.http != nil {
		return transport.WebSocketDialer{URL: s.URL}
	}
	return transport.DialerFunc(func(ctx context.Context, _ string) (transport.Conn, error) {
		return transport.TCPDialer{}.Dial(ctx, s.Addr)
	})
}

// Accept returns the next client connection.
//
// Example:
//
//	peer, err := srv.Accept(ctx)
//	if err != nil {
//	    t.Fatal(err)
//	}
//	defer peer.Close()
func (s *Server) Accept(ctx context.Context) (*Peer, error) {
	select {
	case p := <-s.peers:
		return p, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Peers returns every connection the server has seen, in accept order.
func (s *Server) Peers() []*Peer {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Peer, len(s.all))
	copy(out, s.all)
	return out
}

// Close stops listening, drops every connection, and waits for the
// connection goroutines to exit.
func (s *Server) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	peers := s.all
	s.mu.Unlock()

	if s.ln != nil {
		s.ln.Close()
	}
	for _, p := range peers {
		p.Close()
	}
	if s.http != nil {
		s.http.Close()
	}
	s.wg.Wait()
}
