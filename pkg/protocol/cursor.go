package protocol

import (
	"encoding/binary"
	"math"
)

// Cursor is a fixed-capacity byte region with independent read and write
// positions. All multi-byte values are big-endian.
//
// A cursor built with NewCursor is written front to back; one built with
// NewReadCursor is read front to back. The two positions never need to agree.
// Any access that would run past the capacity fails with ErrBoundsViolation
// and leaves the cursor where it was.
type Cursor struct {
	buf      []byte
	readPos  int
	writePos int
}

// NewCursor creates an empty cursor with room for exactly size bytes.
func NewCursor(size int) *Cursor {
	return &Cursor{buf: make([]byte, size)}
}

// NewReadCursor wraps received bytes for reading. The slice is not copied.
func NewReadCursor(data []byte) *Cursor {
	return &Cursor{buf: data, writePos: len(data)}
}

// Cap returns the fixed capacity.
func (c *Cursor) Cap() int {
	return len(c.buf)
}

// ReadPos returns the current read position.
func (c *Cursor) ReadPos() int {
	return c.readPos
}

// WritePos returns the current write position.
func (c *Cursor) WritePos() int {
	return c.writePos
}

// Remaining returns the number of bytes left to read.
func (c *Cursor) Remaining() int {
	return len(c.buf) - c.readPos
}

// EOF returns true if every byte has been read.
func (c *Cursor) EOF() bool {
	return c.readPos >= len(c.buf)
}

// Bytes returns the written prefix of the buffer.
func (c *Cursor) Bytes() []byte {
	return c.buf[:c.writePos]
}

// Unread returns the bytes after the read position.
// The returned slice references the cursor's buffer; do not modify.
func (c *Cursor) Unread() []byte {
	return c.buf[c.readPos:]
}

// Slice returns buf[from:to] without moving either cursor.
func (c *Cursor) Slice(from, to int) ([]byte, error) {
	if from < 0 || to < from || to > len(c.buf) {
		return nil, ErrBoundsViolation
	}
	return c.buf[from:to], nil
}

// Seek moves the read position to an absolute offset.
func (c *Cursor) Seek(pos int) error {
	if pos < 0 || pos > len(c.buf) {
		return ErrBoundsViolation
	}
	c.readPos = pos
	return nil
}

func (c *Cursor) readSpan(n int) ([]byte, error) {
	if n < 0 || n > len(c.buf)-c.readPos {
		return nil, ErrBoundsViolation
	}
	b := c.buf[c.readPos : c.readPos+n]
	c.readPos += n
	return b, nil
}

func (c *Cursor) writeSpan(n int) ([]byte, error) {
	if n < 0 || n > len(c.buf)-c.writePos {
		return nil, ErrBoundsViolation
	}
	b := c.buf[c.writePos : c.writePos+n]
	c.writePos += n
	return b, nil
}

// SkipRead advances the read position by n bytes without decoding them.
func (c *Cursor) SkipRead(n int) error {
	_, err := c.readSpan(n)
	return err
}

// SkipWrite advances the write position by n bytes, leaving them zero.
func (c *Cursor) SkipWrite(n int) error {
	_, err := c.writeSpan(n)
	return err
}

// ReadBytes reads exactly n bytes and returns a copy.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	b, err := c.readSpan(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

// ReadFull fills dst from the read position.
func (c *Cursor) ReadFull(dst []byte) error {
	b, err := c.readSpan(len(dst))
	if err != nil {
		return err
	}
	copy(dst, b)
	return nil
}

// WriteBytes writes raw bytes.
func (c *Cursor) WriteBytes(p []byte) error {
	b, err := c.writeSpan(len(p))
	if err != nil {
		return err
	}
	copy(b, p)
	return nil
}

// ReadUint8 reads a single unsigned byte.
func (c *Cursor) ReadUint8() (uint8, error) {
	b, err := c.readSpan(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadInt8 reads a signed byte.
func (c *Cursor) ReadInt8() (int8, error) {
	v, err := c.ReadUint8()
	return int8(v), err
}

// ReadUint16 reads a uint16.
func (c *Cursor) ReadUint16() (uint16, error) {
	b, err := c.readSpan(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

// ReadInt16 reads an int16.
func (c *Cursor) ReadInt16() (int16, error) {
	v, err := c.ReadUint16()
	return int16(v), err
}

// ReadInt32 reads an int32.
func (c *Cursor) ReadInt32() (int32, error) {
	b, err := c.readSpan(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(b)), nil
}

// ReadInt64 reads an int64.
func (c *Cursor) ReadInt64() (int64, error) {
	b, err := c.readSpan(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(b)), nil
}

// ReadFloat32 reads an IEEE 754 single.
func (c *Cursor) ReadFloat32() (float32, error) {
	b, err := c.readSpan(4)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.BigEndian.Uint32(b)), nil
}

// ReadFloat64 reads an IEEE 754 double.
func (c *Cursor) ReadFloat64() (float64, error) {
	b, err := c.readSpan(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.BigEndian.Uint64(b)), nil
}

// ReadBool reads a boolean. Only 0x01 is true.
func (c *Cursor) ReadBool() (bool, error) {
	v, err := c.ReadUint8()
	return v == 0x01, err
}

// WriteUint8 writes a single unsigned byte.
func (c *Cursor) WriteUint8(v uint8) error {
	b, err := c.writeSpan(1)
	if err != nil {
		return err
	}
	b[0] = v
	return nil
}

// WriteInt8 writes a signed byte.
func (c *Cursor) WriteInt8(v int8) error {
	return c.WriteUint8(uint8(v))
}

// WriteUint16 writes a uint16.
func (c *Cursor) WriteUint16(v uint16) error {
	b, err := c.writeSpan(2)
	if err != nil {
		return err
	}
	binary.BigEndian.PutUint16(b, v)
	return nil
}

// WriteInt16 writes an int16.
func (c *Cursor) WriteInt16(v int16) error {
	return c.WriteUint16(uint16(v))
}

// WriteInt32 writes an int32.
func (c *Cursor) WriteInt32(v int32) error {
	b, err := c.writeSpan(4)
	if err != nil {
		return err
	}
	binary.BigEndian.PutUint32(b, uint32(v))
	return nil
}

// WriteInt64 writes an int64.
func (c *Cursor) WriteInt64(v int64) error {
	b, err := c.writeSpan(8)
	if err != nil {
		return err
	}
	binary.BigEndian.PutUint64(b, uint64(v))
	return nil
}

// WriteFloat32 writes an IEEE 754 single.
func (c *Cursor) WriteFloat32(v float32) error {
	b, err := c.writeSpan(4)
	if err != nil {
		return err
	}
	binary.BigEndian.PutUint32(b, math.Float32bits(v))
	return nil
}

// WriteFloat64 writes an IEEE 754 double.
func (c *Cursor) WriteFloat64(v float64) error {
	b, err := c.writeSpan(8)
	if err != nil {
		return err
	}
	binary.BigEndian.PutUint64(b, math.Float64bits(v))
	return nil
}

// WriteBool writes a boolean as 0x00 or 0x01.
func (c *Cursor) WriteBool(v bool) error {
	if v {
		return c.WriteUint8(0x01)
	}
	return c.WriteUint8(0x00)
}
