package protocol

import (
	"testing"
)

// FuzzDecode tests that decoding arbitrary bytes doesn't panic.
func FuzzDecode(f *testing.F) {
	for _, tc := range samplePackets() {
		data, err := Encode(tc.p)
		if err != nil {
			f.Fatal(err)
		}
		f.Add(data)
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		// Should not panic
		frame, err := Decode(data)
		if (frame == nil) == (err == nil) {
			t.Fatalf("Decode() = %v, %v; want exactly one of frame, error", frame, err)
		}
	})
}

// FuzzReassembler tests that arbitrary chunking of arbitrary bytes doesn't
// panic and never holds more than the pending limit.
func FuzzReassembler(f *testing.F) {
	f.Add(mustEncodeFuzz(&Chat{Message: "hello"}), 3)
	f.Add(mustEncodeFuzz(&TimeUpdate{Time: 99}), 1)

	f.Fuzz(func(t *testing.T, data []byte, split int) {
		ra := &Reassembler{MaxPending: 64}
		if split < 0 || split > len(data) {
			split = len(data) / 2
		}
		ra.Feed(data[:split])
		ra.Feed(data[split:])
		if ra.Pending() > 64 {
			t.Fatalf("Pending() = %d, want <= 64", ra.Pending())
		}
	})
}

// FuzzString16RoundTrip tests that BMP strings survive a round trip.
func FuzzString16RoundTrip(f *testing.F) {
	f.Add("hello world")
	f.Add("§aGreen")

	f.Fuzz(func(t *testing.T, s string) {
		for _, r := range s {
			if r > 0xFFFF || (r >= 0xD800 && r <= 0xDFFF) || r == 0xFFFD {
				return // Not representable, that's fine
			}
		}
		c := NewCursor(String16Size(s))
		if err := c.WriteString16(s); err != nil {
			return // Too long, that's fine
		}
		got, err := NewReadCursor(c.Bytes()).ReadString16()
		if err != nil {
			t.Fatalf("ReadString16() error = %v", err)
		}
		if got != s {
			t.Errorf("round trip = %q, want %q", got, s)
		}
	})
}

func mustEncodeFuzz(p Packet) []byte {
	data, err := Encode(p)
	if err != nil {
		panic(err)
	}
	return data
}
