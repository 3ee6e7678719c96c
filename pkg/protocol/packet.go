package protocol

import (
	"fmt"
	"log/slog"
)

// Packet is one variant of the closed packet catalogue.
//
// Every variant is a pointer to a struct in this package. Opcode works on a
// nil pointer, so a zero value of a packet type identifies its variant.
// LogValue renders the decoded fields; byte payloads appear as lengths.
type Packet interface {
	Opcode() Opcode
	slog.LogValuer
	encode(w *writer)
}

// Frame is a decoded inbound packet together with the bytes it was parsed
// from, opcode included.
type Frame struct {
	Opcode Opcode
	Packet Packet
	Raw    []byte
}

// Bytes returns the wire form of the frame. The retained raw span is
// returned as is; frames built by hand are encoded.
func (f *Frame) Bytes() ([]byte, error) {
	if len(f.Raw) > 0 {
		return f.Raw, nil
	}
	return Encode(f.Packet)
}

// LogValue implements slog.LogValuer.
func (f *Frame) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("opcode", fmt.Sprintf("0x%02X", uint8(f.Opcode))),
		slog.String("name", f.Opcode.String()),
		slog.Int("len", len(f.Raw)),
		slog.Any("packet", f.Packet),
	)
}

// EmptySlotID marks an empty inventory slot.
const EmptySlotID = -1

// Slot is an inventory slot on the wire. When ID is EmptySlotID, Count and
// Damage are absent from the wire and decode as zero.
type Slot struct {
	ID     int16
	Count  int8
	Damage int16
}

// Empty reports whether the slot holds nothing.
func (s Slot) Empty() bool {
	return s.ID == EmptySlotID
}

func writeSlot(w *writer, s Slot) {
	w.i16(s.ID)
	if s.ID != EmptySlotID {
		w.i8(s.Count)
		w.i16(s.Damage)
	}
}

func readSlot(r *reader) Slot {
	s := Slot{ID: r.i16()}
	if s.ID != EmptySlotID {
		s.Count = r.i8()
		s.Damage = r.i16()
	}
	return s
}
