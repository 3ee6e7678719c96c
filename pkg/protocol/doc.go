// Package protocol implements the Beta 1.7 (protocol version 14) wire format
// spoken between a block-game client and server over TCP.
//
// The package is pure: it turns bytes into typed packets and back, and holds
// no connection state. Connection lifecycle lives in package session.
//
// # Wire Format
//
// There is no length header. Every packet is a single opcode byte followed
// by a body whose layout is fixed by the opcode:
//
//	┌─────────────┬──────────────────────────────────────────────┐
//	│ Opcode      │ Body                                         │
//	│ (1 byte)    │ (layout selected by opcode, no length field) │
//	└─────────────┴──────────────────────────────────────────────┘
//
// Because the body length is implied, an opcode missing from the catalogue
// makes the rest of the stream undecodable.
//
// # Primitives
//
//   - Integers: big-endian two's complement, 8 to 64 bits
//   - Floats: big-endian IEEE 754, 32 and 64 bits
//   - Bool: one byte, 0x01 is true
//   - String16: int16 character count, then one 16-bit code unit per char
//   - String8: int16 byte length, then modified UTF-8
//   - Slot: int16 item id; count (int8) and damage (int16) follow unless
//     the id is -1
//   - Metadata: entries with a control byte (type<<5 | index), ended by 0x7F
//
// # Cursor
//
// Cursor is a fixed-capacity buffer with separate read and write positions.
// Encode sizes the buffer exactly before writing, so a successful encode
// fills it to capacity. Reads past the end fail with ErrBoundsViolation.
//
// # Usage Example
//
//	// Encode a packet
//	data, err := protocol.Encode(&protocol.Handshake{Value: "Steve"})
//
//	// Decode one packet
//	frame, err := protocol.Decode(data)
//	if hs, ok := frame.Packet.(*protocol.Handshake); ok {
//	    fmt.Println(hs.Value)
//	}
//
//	// Decode a TCP stream split at arbitrary points
//	ra := protocol.NewReassembler()
//	frames, err := ra.Feed(chunk)
//
// # Security
//
// Counts and lengths read from the wire are checked before allocating:
// collections are capped by MaxCollectionCount and compressed chunk
// payloads by DefaultMaxAllocation. Chunk payloads must inflate to exactly
// the size implied by their dimensions.
package protocol
