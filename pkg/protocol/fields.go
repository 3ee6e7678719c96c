package protocol

import "fmt"

// writer serializes packet bodies. With a nil cursor it only counts bytes,
// which lets Encode size the destination exactly before writing.
// The first error sticks; later writes are no-ops.
type writer struct {
	c   *Cursor
	n   int
	err error
}

func (w *writer) fail(err error) {
	if w.err == nil {
		w.err = err
	}
}

func (w *writer) failf(format string, args ...any) {
	w.fail(fmt.Errorf("%w: "+format, append([]any{ErrMalformed}, args...)...))
}

func (w *writer) ok() bool {
	return w.c != nil && w.err == nil
}

func (w *writer) u8(v uint8) {
	w.n++
	if w.ok() {
		w.err = w.c.WriteUint8(v)
	}
}

func (w *writer) i8(v int8) {
	w.n++
	if w.ok() {
		w.err = w.c.WriteInt8(v)
	}
}

func (w *writer) i16(v int16) {
	w.n += 2
	if w.ok() {
		w.err = w.c.WriteInt16(v)
	}
}

func (w *writer) i32(v int32) {
	w.n += 4
	if w.ok() {
		w.err = w.c.WriteInt32(v)
	}
}

func (w *writer) i64(v int64) {
	w.n += 8
	if w.ok() {
		w.err = w.c.WriteInt64(v)
	}
}

func (w *writer) f32(v float32) {
	w.n += 4
	if w.ok() {
		w.err = w.c.WriteFloat32(v)
	}
}

func (w *writer) f64(v float64) {
	w.n += 8
	if w.ok() {
		w.err = w.c.WriteFloat64(v)
	}
}

func (w *writer) bool(v bool) {
	w.n++
	if w.ok() {
		w.err = w.c.WriteBool(v)
	}
}

func (w *writer) s16(s string) {
	w.n += String16Size(s)
	if w.ok() {
		w.err = w.c.WriteString16(s)
	}
}

func (w *writer) s8(s string) {
	w.n += String8Size(s)
	if w.ok() {
		w.err = w.c.WriteString8(s)
	}
}

func (w *writer) bytes(b []byte) {
	w.n += len(b)
	if w.ok() {
		w.err = w.c.WriteBytes(b)
	}
}

// reader decodes packet bodies from a cursor. The first error sticks and
// every later read returns a zero value, so decoders check r.err once.
type reader struct {
	c   *Cursor
	err error
}

func (r *reader) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

func (r *reader) failf(format string, args ...any) {
	r.fail(fmt.Errorf("%w: "+format, append([]any{ErrMalformed}, args...)...))
}

func (r *reader) u8() uint8 {
	if r.err != nil {
		return 0
	}
	v, err := r.c.ReadUint8()
	r.err = err
	return v
}

func (r *reader) i8() int8 {
	if r.err != nil {
		return 0
	}
	v, err := r.c.ReadInt8()
	r.err = err
	return v
}

func (r *reader) i16() int16 {
	if r.err != nil {
		return 0
	}
	v, err := r.c.ReadInt16()
	r.err = err
	return v
}

func (r *reader) i32() int32 {
	if r.err != nil {
		return 0
	}
	v, err := r.c.ReadInt32()
	r.err = err
	return v
}

func (r *reader) i64() int64 {
	if r.err != nil {
		return 0
	}
	v, err := r.c.ReadInt64()
	r.err = err
	return v
}

func (r *reader) f32() float32 {
	if r.err != nil {
		return 0
	}
	v, err := r.c.ReadFloat32()
	r.err = err
	return v
}

func (r *reader) f64() float64 {
	if r.err != nil {
		return 0
	}
	v, err := r.c.ReadFloat64()
	r.err = err
	return v
}

func (r *reader) bool() bool {
	if r.err != nil {
		return false
	}
	v, err := r.c.ReadBool()
	r.err = err
	return v
}

func (r *reader) s16() string {
	if r.err != nil {
		return ""
	}
	v, err := r.c.ReadString16()
	r.err = err
	return v
}

func (r *reader) s8() string {
	if r.err != nil {
		return ""
	}
	v, err := r.c.ReadString8()
	r.err = err
	return v
}

func (r *reader) bytes(n int) []byte {
	if r.err != nil {
		return nil
	}
	v, err := r.c.ReadBytes(n)
	r.err = err
	return v
}

// count validates a collection length read from the wire.
func (r *reader) count(n int64) int {
	if r.err != nil {
		return 0
	}
	if n < 0 {
		r.failf("negative count %d", n)
		return 0
	}
	if n > MaxCollectionCount {
		r.fail(ErrCollectionTooLarge)
		return 0
	}
	return int(n)
}
