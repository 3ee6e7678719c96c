package servertest

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/N1ghtTheF0x/TypeCraft/pkg/protocol"
	"github.com/N1ghtTheF0x/TypeCraft/pkg/transport"
)

// Peer is the server's end of one client connection.
type Peer struct {
	conn   transport.Conn
	config Config

	writeMu sync.Mutex

	mu       sync.Mutex
	received []protocol.Packet
	changed  chan struct{} // Closed and replaced whenever received or err changes
	err      error
	ended    bool
	local    bool // Closed by this side
	once     sync.Once
}

func newPeer(conn transport.Conn, cfg Config) *Peer {
	return &Peer{
		conn:    conn,
		config:  cfg,
		changed: make(chan struct{}),
	}
}

// serve reads client packets until the connection fails.
func (p *Peer) serve() {
	ra := protocol.NewReassembler()
	buf := make([]byte, 4096)
	for {
		n, err := p.conn.Read(buf)
		if n > 0 {
			frames, ferr := ra.Feed(buf[:n])
			for _, f := range frames {
				// Reply before recording so a waiter sees the script's answer
				// already on the wire.
				rerr := p.reply(f.Packet)
				p.record(f.Packet)
				if rerr != nil {
					p.finish(rerr)
					return
				}
			}
			if ferr != nil {
				p.finish(ferr)
				return
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = nil
			}
			p.finish(err)
			return
		}
	}
}

// reply plays the scripted login.
func (p *Peer) reply(pk protocol.Packet) error {
	if p.config.SkipLogin {
		return nil
	}
	switch pk.(type) {
	case *protocol.Handshake:
		return p.Send(&protocol.Handshake{Value: p.config.Hash})
	case *protocol.LoginRequest:
		err := p.Send(&protocol.LoginRequest{
			EntityID:  p.config.EntityID,
			MapSeed:   p.config.MapSeed,
			Dimension: p.config.Dimension,
		})
		if err != nil {
			return err
		}
		for _, w := range p.config.Welcome {
			if err := p.Send(w); err != nil {
				return err
			}
		}
	}
	return nil
}

func (p *Peer) record(pk protocol.Packet) {
	p.mu.Lock()
	p.received = append(p.received, pk)
	p.notifyLocked()
	p.mu.Unlock()
}

func (p *Peer) finish(err error) {
	p.mu.Lock()
	if !p.ended {
		p.ended = true
		if p.local {
			err = nil
		}
		p.err = err
		p.notifyLocked()
	}
	p.mu.Unlock()
}

func (p *Peer) notifyLocked() {
	close(p.changed)
	p.changed = make(chan struct{})
}

// Send writes one packet to the client.
func (p *Peer) Send(pk protocol.Packet) error {
	data, err := protocol.Encode(pk)
	if err != nil {
		return err
	}
	return p.SendRaw(data)
}

// SendRaw writes bytes to the client unchanged. Use it to split a packet
// across deliveries or to send bytes no encoder produces.
func (p *Peer) SendRaw(data []byte) error {
	p.writeMu.Lock()
	defer p.writeMu.Unlock()
	_, err := p.conn.Write(data)
	return err
}

// Kick sends DisconnectKick and closes the connection, as a server does.
func (p *Peer) Kick(reason string) error {
	err := p.Send(&protocol.DisconnectKick{Reason: reason})
	if cerr := p.Close(); err == nil {
		err = cerr
	}
	return err
}

// Close drops the connection.
func (p *Peer) Close() error {
	var err error
	p.once.Do(func() {
		p.mu.Lock()
		p.local = true
		p.mu.Unlock()
		err = p.conn.Close()
	})
	return err
}

// Received returns every packet the client has sent so far.
func (p *Peer) Received() []protocol.Packet {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]protocol.Packet, len(p.received))
	copy(out, p.received)
	return out
}

// Count returns how many packets with op the client has sent.
func (p *Peer) Count(op protocol.Opcode) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return count(p.received, op)
}

func count(packets []protocol.Packet, op protocol.Opcode) int {
	n := 0
	for _, pk := range packets {
		if pk.Opcode() == op {
			n++
		}
	}
	return n
}

// WaitFor blocks until the client has sent a packet with op and returns the
// first one. Any scripted reply to that packet has been written by then.
//
// Example:
//
//	pk, err := peer.WaitFor(ctx, protocol.OpChat)
//	if err != nil {
//	    t.Fatal(err)
//	}
//	if got := pk.(*protocol.Chat).Message; got != "hello" {
//	    t.Errorf("chat = %q", got)
//	}
func (p *Peer) WaitFor(ctx context.Context, op protocol.Opcode) (protocol.Packet, error) {
	packets, err := p.WaitN(ctx, op, 1)
	if err != nil {
		return nil, err
	}
	return packets[0], nil
}

// WaitN blocks until the client has sent n packets with op and returns them
// in wire order. It fails early if the connection ends first.
func (p *Peer) WaitN(ctx context.Context, op protocol.Opcode, n int) ([]protocol.Packet, error) {
	for {
		p.mu.Lock()
		var matched []protocol.Packet
		for _, pk := range p.received {
			if pk.Opcode() == op {
				matched = append(matched, pk)
			}
		}
		if len(matched) >= n {
			p.mu.Unlock()
			return matched[:n], nil
		}
		if p.ended {
			err := p.err
			p.mu.Unlock()
			if err == nil {
				err = io.EOF
			}
			return nil, err
		}
		changed := p.changed
		p.mu.Unlock()

		select {
		case <-changed:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// Wait blocks until the client closes the connection and returns the read
// error, or nil for a clean close.
func (p *Peer) Wait(ctx context.Context) error {
	for {
		p.mu.Lock()
		if p.ended {
			err := p.err
			p.mu.Unlock()
			return err
		}
		changed := p.changed
		p.mu.Unlock()

		select {
		case <-changed:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
