package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"strings"
)

// ANSI color codes for terminal output.
const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorCyan  = "\033[36m"
	colorWhite = "\033[37m"
	colorGray  = "\033[90m"
	colorBold  = "\033[1m"
)

// colorEnabled controls whether ANSI colors are used.
var colorEnabled = true

// SetColor turns ANSI color output on or off.
func SetColor(enabled bool) {
	colorEnabled = enabled
}

func color(code, text string) string {
	if !colorEnabled {
		return text
	}
	return code + text + colorReset
}

func red(text string) string   { return color(colorRed, text) }
func cyan(text string) string  { return color(colorCyan, text) }
func white(text string) string { return color(colorWhite, text) }
func gray(text string) string  { return color(colorGray, text) }
func bold(text string) string  { return color(colorBold, text) }

// Format returns the error formatted for terminal display.
func (e *Error) Format() string {
	var b strings.Builder

	b.WriteString("\n")
	if e.Code != "" {
		b.WriteString(red(bold("ERROR ")))
		b.WriteString(white(bold(e.Code + ": ")))
	} else {
		b.WriteString(red(bold("ERROR: ")))
	}
	b.WriteString(white(e.Message))
	b.WriteString("\n\n")

	if e.Location != nil {
		b.WriteString("  ")
		b.WriteString(cyan(e.Location.String()))
		b.WriteString("\n\n")

		for i, line := range e.Context {
			if i == e.contextLine {
				b.WriteString("  ")
				b.WriteString(red("→ "))
			} else {
				b.WriteString("    ")
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
		if len(e.Context) > 0 {
			b.WriteString("\n")
		}
	}

	if e.Detail != "" {
		for _, line := range wrapText(e.Detail, 70) {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if e.Wrapped != nil {
		b.WriteString("  ")
		b.WriteString(gray("Cause: "))
		b.WriteString(e.Wrapped.Error())
		b.WriteString("\n\n")
	}

	if e.Suggestion != "" {
		b.WriteString("  ")
		b.WriteString(cyan("Hint: "))
		b.WriteString(e.Suggestion)
		b.WriteString("\n\n")
	}

	return b.String()
}

// FormatCompact returns a compact single-line error format.
func (e *Error) FormatCompact() string {
	var b strings.Builder
	if e.Location != nil {
		b.WriteString(e.Location.String())
		b.WriteString(": ")
	}
	if e.Code != "" {
		b.WriteString(e.Code)
		b.WriteString(": ")
	}
	b.WriteString(e.Message)
	return b.String()
}

type jsonLocation struct {
	File   string `json:"file,omitempty"`
	Offset int    `json:"offset"`
}

type jsonError struct {
	Code       string        `json:"code,omitempty"`
	Category   Category      `json:"category,omitempty"`
	Message    string        `json:"message"`
	Detail     string        `json:"detail,omitempty"`
	Location   *jsonLocation `json:"location,omitempty"`
	Cause      string        `json:"cause,omitempty"`
	Suggestion string        `json:"suggestion,omitempty"`
}

// FormatJSON returns the error as a JSON object. Invalid UTF-8 in any field
// is replaced with U+FFFD.
func (e *Error) FormatJSON() string {
	out := jsonError{
		Code:       e.Code,
		Category:   e.Category,
		Message:    e.Message,
		Detail:     e.Detail,
		Suggestion: e.Suggestion,
	}
	if e.Location != nil {
		out.Location = &jsonLocation{File: e.Location.File, Offset: e.Location.Offset}
	}
	if e.Wrapped != nil {
		out.Cause = e.Wrapped.Error()
	}
	// Only strings and ints; Marshal cannot fail.
	b, _ := json.Marshal(out)
	return string(b)
}

// wrapText wraps text to the specified width.
func wrapText(text string, width int) []string {
	if text == "" {
		return nil
	}
	if len(text) <= width {
		return []string{text}
	}

	var lines []string
	var current strings.Builder
	for _, word := range strings.Fields(text) {
		if current.Len() > 0 && current.Len()+len(word)+1 > width {
			lines = append(lines, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(word)
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	return lines
}

// Style selects how Fprint renders an error.
type Style string

const (
	StyleText    Style = "text"
	StyleCompact Style = "compact"
	StyleJSON    Style = "json"
)

// ParseStyle returns the Style named s.
func ParseStyle(s string) (Style, error) {
	switch st := Style(s); st {
	case StyleText, StyleCompact, StyleJSON:
		return st, nil
	}
	return "", fmt.Errorf("unknown error format %q", s)
}

// Fprint writes a formatted error to w.
func Fprint(w io.Writer, err error) {
	FprintStyle(w, err, StyleText)
}

// FprintStyle writes err to w in the given style. Errors without a code are
// rendered with their message only.
func FprintStyle(w io.Writer, err error, style Style) {
	var e *Error
	if !stderrors.As(err, &e) {
		if style == StyleText {
			fmt.Fprintf(w, "\n%s %s\n\n", red(bold("ERROR:")), err.Error())
			return
		}
		e = &Error{Message: err.Error()}
	}
	switch style {
	case StyleCompact:
		fmt.Fprintln(w, e.FormatCompact())
	case StyleJSON:
		fmt.Fprintln(w, e.FormatJSON())
	default:
		fmt.Fprint(w, e.Format())
	}
}
