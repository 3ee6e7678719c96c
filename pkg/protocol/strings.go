package protocol

import (
	"encoding/binary"
	"math"
	"unicode/utf8"
)

// String16Size returns the encoded width of s as a String16.
func String16Size(s string) int {
	return 2 + 2*utf8.RuneCountInString(s)
}

// WriteString16 writes an int16 character count followed by one 16-bit code
// unit per character. Characters above U+FFFF are truncated to their low
// 16 bits and do not survive a round trip.
func (c *Cursor) WriteString16(s string) error {
	n := utf8.RuneCountInString(s)
	if n > math.MaxInt16 {
		return ErrStringTooLong
	}
	b, err := c.writeSpan(2 + 2*n)
	if err != nil {
		return err
	}
	binary.BigEndian.PutUint16(b, uint16(n))
	i := 2
	for _, r := range s {
		binary.BigEndian.PutUint16(b[i:], uint16(r))
		i += 2
	}
	return nil
}

// ReadString16 reads a string written by WriteString16.
func (c *Cursor) ReadString16() (string, error) {
	start := c.readPos
	n, err := c.ReadInt16()
	if err != nil {
		return "", err
	}
	if n < 0 {
		c.readPos = start
		return "", ErrMalformed
	}
	b, err := c.readSpan(2 * int(n))
	if err != nil {
		c.readPos = start
		return "", err
	}
	runes := make([]rune, n)
	for i := range runes {
		runes[i] = rune(binary.BigEndian.Uint16(b[2*i:]))
	}
	return string(runes), nil
}

// String8Size returns the encoded width of s as a String8.
func String8Size(s string) int {
	return 2 + modifiedUTF8Len(s)
}

// WriteString8 writes an int16 byte length followed by the modified UTF-8
// encoding of s.
func (c *Cursor) WriteString8(s string) error {
	n := modifiedUTF8Len(s)
	if n > math.MaxInt16 {
		return ErrStringTooLong
	}
	b, err := c.writeSpan(2 + n)
	if err != nil {
		return err
	}
	binary.BigEndian.PutUint16(b, uint16(n))
	appendModifiedUTF8(b[2:2], s)
	return nil
}

// ReadString8 reads a string written by WriteString8.
func (c *Cursor) ReadString8() (string, error) {
	start := c.readPos
	n, err := c.ReadInt16()
	if err != nil {
		return "", err
	}
	if n < 0 {
		c.readPos = start
		return "", ErrMalformed
	}
	b, err := c.readSpan(int(n))
	if err != nil {
		c.readPos = start
		return "", err
	}
	s, err := decodeModifiedUTF8(b)
	if err != nil {
		c.readPos = start
		return "", err
	}
	return s, nil
}
