package protocol

import "errors"

// Encode returns the wire form of p: the opcode byte followed by the body.
// The destination cursor is sized by a counting pass, so a successful encode
// always fills it exactly.
func Encode(p Packet) ([]byte, error) {
	if p == nil {
		return nil, ErrNilPacket
	}
	op := p.Opcode()

	sizer := &writer{}
	p.encode(sizer)
	if sizer.err != nil {
		return nil, &EncodeError{Opcode: op, Err: sizer.err}
	}

	c := NewCursor(1 + sizer.n)
	w := &writer{c: c}
	w.u8(uint8(op))
	p.encode(w)
	if w.err != nil {
		return nil, &EncodeError{Opcode: op, Err: w.err}
	}
	return c.Bytes(), nil
}

// EncodeTo writes p at the cursor's write position. On error the write
// position is restored, so a failed packet leaves no partial frame behind.
func EncodeTo(c *Cursor, p Packet) error {
	if p == nil {
		return ErrNilPacket
	}
	start := c.writePos
	w := &writer{c: c}
	w.u8(uint8(p.Opcode()))
	p.encode(w)
	if w.err != nil {
		c.writePos = start
		return &EncodeError{Opcode: p.Opcode(), Err: w.err}
	}
	return nil
}

// Decode decodes exactly one frame from data.
func Decode(data []byte) (*Frame, error) {
	return DecodeOne(NewReadCursor(data))
}

// DecodeOne reads one opcode byte and the body it selects.
//
// On failure the read position is restored to the opcode byte and no frame
// is returned. An opcode without a catalogue entry yields
// *UnknownOpcodeError; a body that runs out of input yields a *DecodeError
// wrapping ErrBoundsViolation.
func DecodeOne(c *Cursor) (*Frame, error) {
	start := c.ReadPos()
	b, err := c.ReadUint8()
	if err != nil {
		return nil, err
	}
	op := Opcode(b)

	decode := decoders[op]
	if decode == nil {
		c.readPos = start
		return nil, &UnknownOpcodeError{Opcode: op, Offset: start}
	}

	r := &reader{c: c}
	p := decode(r)
	if r.err != nil {
		c.readPos = start
		return nil, &DecodeError{Opcode: op, Offset: start, Err: r.err}
	}

	raw := make([]byte, c.ReadPos()-start)
	copy(raw, c.buf[start:c.ReadPos()])
	return &Frame{Opcode: op, Packet: p, Raw: raw}, nil
}

// DecodeStream decodes concatenated frames until the cursor is exhausted.
//
// One transport read may carry several packets. If the last one is cut
// short, the frames before it are returned together with a
// *PartialFrameError whose Offset marks the unconsumed tail. Any other
// failure stops decoding and is returned with the frames decoded so far.
func DecodeStream(c *Cursor) ([]*Frame, error) {
	var frames []*Frame
	for !c.EOF() {
		f, err := DecodeOne(c)
		if err != nil {
			var de *DecodeError
			if errors.As(err, &de) && errors.Is(de.Err, ErrBoundsViolation) {
				return frames, &PartialFrameError{Offset: de.Offset, Opcode: de.Opcode, Err: de.Err}
			}
			return frames, err
		}
		frames = append(frames, f)
	}
	return frames, nil
}
