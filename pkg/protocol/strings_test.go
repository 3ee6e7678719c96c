package protocol

import (
	"errors"
	"strings"
	"testing"
)

func TestString16(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"ascii", "hello world", "hello world"},
		{"latin", "héllo wörld", "héllo wörld"},
		{"bmp_max", "\uFFFF", "\uFFFF"},
		{"section_sign", "§cred text", "§cred text"},
		// U+1F600 keeps only its low 16 bits.
		{"supplementary", "a\U0001F600b", "a\uF600b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCursor(String16Size(tt.in))
			if err := c.WriteString16(tt.in); err != nil {
				t.Fatalf("WriteString16() error = %v", err)
			}
			if c.WritePos() != c.Cap() {
				t.Errorf("WritePos = %d, want %d", c.WritePos(), c.Cap())
			}
			got, err := NewReadCursor(c.Bytes()).ReadString16()
			if err != nil {
				t.Fatalf("ReadString16() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ReadString16() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestString16Wire(t *testing.T) {
	c := NewCursor(String16Size("Hé"))
	c.WriteString16("Hé")
	want := []byte{0x00, 0x02, 0x00, 'H', 0x00, 0xE9}
	if string(c.Bytes()) != string(want) {
		t.Errorf("WriteString16(%q) = % X, want % X", "Hé", c.Bytes(), want)
	}
}

func TestString16Errors(t *testing.T) {
	t.Run("negative_length", func(t *testing.T) {
		c := NewReadCursor([]byte{0xFF, 0xFF})
		if _, err := c.ReadString16(); !errors.Is(err, ErrMalformed) {
			t.Errorf("error = %v, want ErrMalformed", err)
		}
		if c.ReadPos() != 0 {
			t.Errorf("ReadPos = %d, want 0", c.ReadPos())
		}
	})

	t.Run("truncated", func(t *testing.T) {
		c := NewReadCursor([]byte{0x00, 0x03, 0x00, 'a'})
		if _, err := c.ReadString16(); !errors.Is(err, ErrBoundsViolation) {
			t.Errorf("error = %v, want ErrBoundsViolation", err)
		}
		if c.ReadPos() != 0 {
			t.Errorf("ReadPos = %d, want 0", c.ReadPos())
		}
	})

	t.Run("too_long", func(t *testing.T) {
		s := strings.Repeat("a", 1<<15)
		c := NewCursor(String16Size(s))
		if err := c.WriteString16(s); !errors.Is(err, ErrStringTooLong) {
			t.Errorf("error = %v, want ErrStringTooLong", err)
		}
	})
}

func TestString8(t *testing.T) {
	tests := []struct {
		name string
		in   string
		size int
	}{
		{"empty", "", 2},
		{"ascii", "Chest", 2 + 5},
		{"nul", "a\x00b", 2 + 4},
		{"two_byte", "é", 2 + 2},
		{"three_byte", "€", 2 + 3},
		{"supplementary", "\U0001F600", 2 + 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := String8Size(tt.in); got != tt.size {
				t.Errorf("String8Size() = %d, want %d", got, tt.size)
			}
			c := NewCursor(String8Size(tt.in))
			if err := c.WriteString8(tt.in); err != nil {
				t.Fatalf("WriteString8() error = %v", err)
			}
			got, err := NewReadCursor(c.Bytes()).ReadString8()
			if err != nil {
				t.Fatalf("ReadString8() error = %v", err)
			}
			if got != tt.in {
				t.Errorf("ReadString8() = %q, want %q", got, tt.in)
			}
		})
	}
}

func TestString8NulEncoding(t *testing.T) {
	c := NewCursor(String8Size("\x00"))
	c.WriteString8("\x00")
	want := []byte{0x00, 0x02, 0xC0, 0x80}
	if string(c.Bytes()) != string(want) {
		t.Errorf("WriteString8(NUL) = % X, want % X", c.Bytes(), want)
	}
}

func TestString8Malformed(t *testing.T) {
	for _, body := range [][]byte{
		{0x80},             // continuation without lead
		{0xC3},             // truncated two-byte
		{0xE2, 0x82},       // truncated three-byte
		{0xF0, 0x9F, 0x98}, // four-byte lead
	} {
		c := NewCursor(2 + len(body))
		c.WriteInt16(int16(len(body)))
		c.WriteBytes(body)
		r := NewReadCursor(c.Bytes())
		if _, err := r.ReadString8(); !errors.Is(err, ErrMalformed) {
			t.Errorf("ReadString8(% X) error = %v, want ErrMalformed", body, err)
		}
		if r.ReadPos() != 0 {
			t.Errorf("ReadString8(% X): ReadPos = %d, want 0", body, r.ReadPos())
		}
	}
}
