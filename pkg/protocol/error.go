package protocol

import (
	"errors"
	"fmt"
)

// Codec errors.
var (
	// ErrBoundsViolation is returned when a read or write needs more bytes
	// than the cursor has left. A decode that runs out of input reports it.
	ErrBoundsViolation = errors.New("protocol: bounds violation")

	// ErrUnknownOpcode is matched by *UnknownOpcodeError.
	ErrUnknownOpcode = errors.New("protocol: unknown opcode")

	// ErrMalformed is returned for values no valid encoder produces:
	// negative lengths, oversized counts, bad compressed payloads.
	ErrMalformed = errors.New("protocol: malformed packet")

	// ErrPartialFrame is matched by *PartialFrameError.
	ErrPartialFrame = errors.New("protocol: partial frame")

	// ErrFrameTooLarge is returned when buffered partial input exceeds the
	// reassembly limit.
	ErrFrameTooLarge = errors.New("protocol: pending frame exceeds limit")

	// ErrStringTooLong is returned when a string does not fit its int16 prefix.
	ErrStringTooLong = errors.New("protocol: string too long")

	// ErrNilPacket is returned when encoding a nil packet.
	ErrNilPacket = errors.New("protocol: nil packet")
)

// UnknownOpcodeError reports an opcode with no catalogue entry. The layout of
// an unknown packet is unknown too, so the bytes after it cannot be decoded.
type UnknownOpcodeError struct {
	Opcode Opcode
	Offset int // Offset of the opcode byte
}

// Error implements the error interface.
func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("protocol: unknown opcode 0x%02X at offset %d", uint8(e.Opcode), e.Offset)
}

// Is reports whether target is ErrUnknownOpcode.
func (e *UnknownOpcodeError) Is(target error) bool {
	return target == ErrUnknownOpcode
}

// DecodeError wraps a failure inside a known packet's body.
type DecodeError struct {
	Opcode Opcode
	Offset int   // Offset of the opcode byte
	Err    error // Underlying error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("protocol: decode %s at offset %d: %v", e.Opcode, e.Offset, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// PartialFrameError reports a truncated packet at the end of the input.
// Bytes from Offset onward belong to a frame that has not fully arrived.
type PartialFrameError struct {
	Offset int
	Opcode Opcode
	Err    error
}

// Error implements the error interface.
func (e *PartialFrameError) Error() string {
	return fmt.Sprintf("protocol: partial %s frame at offset %d: %v", e.Opcode, e.Offset, e.Err)
}

// Is reports whether target is ErrPartialFrame.
func (e *PartialFrameError) Is(target error) bool {
	return target == ErrPartialFrame
}

// Unwrap returns the underlying error for errors.Is/As.
func (e *PartialFrameError) Unwrap() error {
	return e.Err
}

// EncodeError wraps a failure while encoding a packet.
type EncodeError struct {
	Opcode Opcode
	Err    error
}

// Error implements the error interface.
func (e *EncodeError) Error() string {
	return fmt.Sprintf("protocol: encode %s: %v", e.Opcode, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As.
func (e *EncodeError) Unwrap() error {
	return e.Err
}
