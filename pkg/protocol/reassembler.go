package protocol

// Reassembler turns a byte stream split at arbitrary points into whole
// frames. Bytes of a frame that has not fully arrived are kept and retried
// when the next chunk is fed.
//
// A Reassembler is not safe for concurrent use.
type Reassembler struct {
	pending []byte

	// MaxPending caps the bytes held for an incomplete frame.
	// Default: DefaultMaxPending.
	MaxPending int
}

// NewReassembler creates a Reassembler with the default pending limit.
func NewReassembler() *Reassembler {
	return &Reassembler{MaxPending: DefaultMaxPending}
}

// Feed appends chunk to the pending input and decodes every complete frame.
//
// An incomplete trailing frame is not an error; it stays buffered. Unknown
// opcodes and malformed bodies are returned with the frames decoded before
// them, and the pending input is discarded because the stream cannot be
// resynchronized.
func (ra *Reassembler) Feed(chunk []byte) ([]*Frame, error) {
	if len(ra.pending) == 0 {
		// Decode straight from the chunk when nothing is buffered.
		return ra.decode(chunk)
	}
	ra.pending = append(ra.pending, chunk...)
	return ra.decode(ra.pending)
}

// Pending returns the number of buffered bytes awaiting completion.
func (ra *Reassembler) Pending() int {
	return len(ra.pending)
}

// Reset drops any buffered input.
func (ra *Reassembler) Reset() {
	ra.pending = nil
}

func (ra *Reassembler) decode(data []byte) ([]*Frame, error) {
	c := NewReadCursor(data)
	frames, err := DecodeStream(c)
	if err == nil {
		ra.pending = nil
		return frames, nil
	}

	pfe, ok := err.(*PartialFrameError)
	if !ok {
		ra.pending = nil
		return frames, err
	}
	tail := data[pfe.Offset:]
	max := ra.MaxPending
	if max <= 0 {
		max = DefaultMaxPending
	}
	if len(tail) > max {
		ra.pending = nil
		return frames, ErrFrameTooLarge
	}
	ra.pending = append([]byte(nil), tail...)
	return frames, nil
}
