package capture

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/N1ghtTheF0x/TypeCraft/pkg/protocol"
)

// Record is one captured packet.
type Record struct {
	Seq       uint64
	Direction protocol.Direction // Inbound or Outbound
	Opcode    protocol.Opcode
	Time      time.Time
	Data      []byte
}

// Name returns the file name for the record.
func (r Record) Name() string {
	dir := "in"
	if r.Direction == protocol.Outbound {
		dir = "out"
	}
	name := kebab(r.Opcode.String())
	if !r.Opcode.Known() {
		name = fmt.Sprintf("unknown-%02x", uint8(r.Opcode))
	}
	return fmt.Sprintf("%04d-%s-%s.bin", r.Seq, dir, name)
}

// kebab turns a packet name like "MapChunk" into "map-chunk".
func kebab(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Sink persists records.
type Sink interface {
	Write(ctx context.Context, rec Record) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(ctx context.Context, rec Record) error

// Write calls f(ctx, rec).
func (f SinkFunc) Write(ctx context.Context, rec Record) error {
	return f(ctx, rec)
}
