package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Category represents the type of error.
type Category string

const (
	CategoryConfig   Category = "config"
	CategoryConnect  Category = "connect"
	CategoryProtocol Category = "protocol"
	CategoryCLI      Category = "cli"
)

// Location is a byte offset inside a named input, usually a capture file.
type Location struct {
	File   string
	Offset int
}

// String returns the location as a formatted string.
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	if l.File == "" {
		return fmt.Sprintf("+0x%04x", l.Offset)
	}
	return fmt.Sprintf("%s+0x%04x", l.File, l.Offset)
}

// Error is a structured error with a code, explanation, and hint.
type Error struct {
	// Code is a unique error identifier (e.g., "E301").
	Code string

	// Category is the error type.
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Location is where in the input the error occurred.
	Location *Location

	// Context holds hex dump lines around Location.
	Context []string

	// contextLine is the index in Context of the line holding Location.
	contextLine int

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = e.Code + ": " + msg
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// WithOffset records the offset inside file and keeps a hex dump of data
// around it.
func (e *Error) WithOffset(file string, offset int, data []byte) *Error {
	e.Location = &Location{File: file, Offset: offset}
	e.Context, e.contextLine = hexContext(data, offset, 1)
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *Error) WithSuggestion(s string) *Error {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *Error) WithDetail(d string) *Error {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *Error) Wrap(err error) *Error {
	e.Wrapped = err
	return e
}

const hexWidth = 16

// hexContext dumps the 16-byte row holding offset and up to radius rows on
// either side. It returns the lines and the index of the row with offset.
func hexContext(data []byte, offset, radius int) ([]string, int) {
	if len(data) == 0 || offset < 0 {
		return nil, 0
	}
	if offset > len(data) {
		offset = len(data)
	}
	row := offset / hexWidth
	first := max(row-radius, 0)
	last := min(row+radius, (len(data)-1)/hexWidth)

	var lines []string
	for r := first; r <= last; r++ {
		start := r * hexWidth
		end := min(start+hexWidth, len(data))
		var b strings.Builder
		fmt.Fprintf(&b, "0x%04x │", start)
		for _, c := range data[start:end] {
			fmt.Fprintf(&b, " %02x", c)
		}
		lines = append(lines, b.String())
	}
	return lines, min(row, last) - first
}

// New creates an Error from a registered error code.
func New(code string) *Error {
	template, ok := registry[code]
	if !ok {
		return &Error{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &Error{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
	}
}

// Newf creates a new Error with a formatted message (no code).
func Newf(category Category, format string, args ...any) *Error {
	return &Error{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in an Error with the given code.
func FromError(err error, code string) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if stderrors.As(err, &e) {
		return e
	}
	return New(code).Wrap(err)
}
