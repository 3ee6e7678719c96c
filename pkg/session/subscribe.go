package session

import (
	"sync"

	"github.com/N1ghtTheF0x/TypeCraft/pkg/protocol"
)

// Handler receives a decoded packet.
type Handler func(p protocol.Packet)

type subscriber struct {
	id uint64
	fn Handler
}

// subscribers holds packet and end handlers. Handlers are called from a
// snapshot, so a handler may subscribe or cancel without deadlocking.
type subscribers struct {
	mu     sync.Mutex
	nextID uint64
	byOp   map[protocol.Opcode][]subscriber
	all    []subscriber
	end    []func(error)
	fired  bool
	endErr error
}

func (s *subscribers) add(op protocol.Opcode, all bool, fn Handler) func() {
	s.mu.Lock()
	s.nextID++
	sub := subscriber{id: s.nextID, fn: fn}
	if all {
		s.all = append(s.all, sub)
	} else {
		if s.byOp == nil {
			s.byOp = make(map[protocol.Opcode][]subscriber)
		}
		s.byOp[op] = append(s.byOp[op], sub)
	}
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if all {
				s.all = remove(s.all, sub.id)
			} else {
				s.byOp[op] = remove(s.byOp[op], sub.id)
			}
		})
	}
}

func remove(subs []subscriber, id uint64) []subscriber {
	out := subs[:0:0]
	for _, sub := range subs {
		if sub.id != id {
			out = append(out, sub)
		}
	}
	return out
}

func (s *subscribers) snapshot(op protocol.Opcode) []Handler {
	s.mu.Lock()
	defer s.mu.Unlock()
	fns := make([]Handler, 0, len(s.byOp[op])+len(s.all))
	for _, sub := range s.byOp[op] {
		fns = append(fns, sub.fn)
	}
	for _, sub := range s.all {
		fns = append(fns, sub.fn)
	}
	return fns
}

func (s *subscribers) publish(p protocol.Packet) {
	for _, fn := range s.snapshot(p.Opcode()) {
		fn(p)
	}
}

func (s *subscribers) onEnd(fn func(error)) {
	s.mu.Lock()
	if s.fired {
		err := s.endErr
		s.mu.Unlock()
		fn(err)
		return
	}
	s.end = append(s.end, fn)
	s.mu.Unlock()
}

func (s *subscribers) ended(err error) {
	s.mu.Lock()
	if s.fired {
		s.mu.Unlock()
		return
	}
	s.fired, s.endErr = true, err
	fns := s.end
	s.end = nil
	s.mu.Unlock()
	for _, fn := range fns {
		fn(err)
	}
}

// Subscribe calls fn for every received packet with opcode op, after the
// session has applied its own state changes. The returned function cancels
// the subscription; calling it more than once is a no-op.
func (s *Session) Subscribe(op protocol.Opcode, fn Handler) (cancel func()) {
	return s.subs.add(op, false, fn)
}

// SubscribeAll calls fn for every received packet. All-packet handlers run
// after the handlers for the specific opcode.
func (s *Session) SubscribeAll(fn Handler) (cancel func()) {
	return s.subs.add(0, true, fn)
}

// On subscribes fn to packets of type *P. The packet type is inferred from
// fn:
//
//	session.On(s, func(p *protocol.Chat) { log.Println(p.Message) })
func On[P any, T interface {
	*P
	protocol.Packet
}](s *Session, fn func(T)) (cancel func()) {
	op := T(new(P)).Opcode()
	return s.Subscribe(op, func(p protocol.Packet) {
		if v, ok := p.(T); ok {
			fn(v)
		}
	})
}

// OnEnd registers fn to run once when the session ends, with the reason:
// nil for a clean close, *KickError for a kick, or the fatal error. If the
// session has already ended, fn runs immediately.
func (s *Session) OnEnd(fn func(error)) {
	s.subs.onEnd(fn)
}
