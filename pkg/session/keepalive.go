package session

import (
	"sync"
	"time"

	"github.com/N1ghtTheF0x/TypeCraft/pkg/protocol"
)

// keepAlive sends a packet every interval until stopped.
type keepAlive struct {
	stopCh chan struct{}
	done   chan struct{}
	once   sync.Once
}

// startKeepAlive runs send on a ticker. If send fails the loop exits and
// fail is called with the error.
func startKeepAlive(interval time.Duration, send func() error, fail func(error)) *keepAlive {
	k := &keepAlive{
		stopCh: make(chan struct{}),
		done:   make(chan struct{}),
	}
	go k.run(interval, send, fail)
	return k
}

func (k *keepAlive) run(interval time.Duration, send func() error, fail func(error)) {
	defer close(k.done)
	if interval <= 0 {
		interval = protocol.TicksToDuration(KeepAliveTicks)
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-k.stopCh:
			return
		case <-ticker.C:
			if err := send(); err != nil {
				select {
				case <-k.stopCh:
				default:
					fail(err)
				}
				return
			}
		}
	}
}

// stop cancels the ticker. It is safe to call more than once and on nil.
// It does not wait for the loop to exit.
func (k *keepAlive) stop() {
	if k == nil {
		return
	}
	k.once.Do(func() { close(k.stopCh) })
}

func (k *keepAlive) active() bool {
	if k == nil {
		return false
	}
	select {
	case <-k.stopCh:
		return false
	case <-k.done:
		return false
	default:
		return true
	}
}
