package errors

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"reflect"
	"strings"
	"testing"

	"github.com/N1ghtTheF0x/TypeCraft/pkg/protocol"
	"github.com/N1ghtTheF0x/TypeCraft/pkg/session"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{"config", "E100", "Configuration file not found", CategoryConfig},
		{"connect", "E201", "Kicked by server", CategoryConnect},
		{"protocol", "E301", "Unknown opcode", CategoryProtocol},
		{"cli", "E400", "Invalid arguments", CategoryCLI},
		{"unknown code", "E999", "Unknown error", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CategoryCLI, "file %q not found", "a.bin")
	if err.Message != `file "a.bin" not found` {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Error() != `file "a.bin" not found` {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestErrorWrap(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := New("E200").Wrap(cause)
	if !stderrors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false")
	}
	want := "E200: Could not connect to server: connection refused"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, "E200") != nil {
		t.Error("FromError(nil) != nil")
	}
	orig := New("E301")
	if got := FromError(orig, "E200"); got != orig {
		t.Error("FromError(*Error) did not return it unchanged")
	}
	got := FromError(stderrors.New("x"), "E202")
	if got.Code != "E202" || got.Wrapped == nil {
		t.Errorf("FromError() = %+v", got)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"kick", &session.KickError{Reason: "bye"}, "E201"},
		{"unknown opcode", &protocol.UnknownOpcodeError{Opcode: 0x1A}, "E301"},
		{"truncated", &protocol.PartialFrameError{Err: protocol.ErrBoundsViolation}, "E302"},
		{"malformed", &protocol.DecodeError{Err: protocol.ErrMalformed}, "E303"},
		{"too large", protocol.ErrFrameTooLarge, "E304"},
		{"dial", &session.SessionError{Op: "dial", Err: stderrors.New("refused")}, "E200"},
		{"read", &session.SessionError{Op: "read", Err: stderrors.New("reset")}, "E202"},
		{"deliver wraps decode", &session.SessionError{Op: "deliver", Err: &protocol.DecodeError{Err: protocol.ErrBoundsViolation}}, "E302"},
		{"config", session.ErrInvalidConfig, "E101"},
		{"fallback", stderrors.New("other"), "E400"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err, "E400")
			if got.Code != tt.want {
				t.Errorf("Classify() code = %s, want %s", got.Code, tt.want)
			}
			if !stderrors.Is(got, tt.err) {
				t.Error("classified error does not wrap the original")
			}
		})
	}
	if Classify(nil, "E400") != nil {
		t.Error("Classify(nil) != nil")
	}
}

func TestOffset(t *testing.T) {
	if off, ok := Offset(&protocol.UnknownOpcodeError{Offset: 7}); !ok || off != 7 {
		t.Errorf("Offset(unknown) = %d, %v", off, ok)
	}
	wrapped := &session.SessionError{Op: "deliver", Err: &protocol.PartialFrameError{Offset: 3}}
	if off, ok := Offset(wrapped); !ok || off != 3 {
		t.Errorf("Offset(partial) = %d, %v", off, ok)
	}
	if _, ok := Offset(stderrors.New("x")); ok {
		t.Error("Offset(plain) ok = true")
	}
}

func TestLocationString(t *testing.T) {
	tests := []struct {
		loc  *Location
		want string
	}{
		{nil, ""},
		{&Location{File: "a.bin", Offset: 12}, "a.bin+0x000c"},
		{&Location{Offset: 255}, "+0x00ff"},
	}
	for _, tt := range tests {
		if got := tt.loc.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestHexContext(t *testing.T) {
	data := make([]byte, 40)
	for i := range data {
		data[i] = byte(i)
	}

	lines, at := hexContext(data, 20, 1)
	if len(lines) != 3 || at != 1 {
		t.Fatalf("hexContext(20) = %d lines, at %d; want 3, 1", len(lines), at)
	}
	if !strings.HasPrefix(lines[1], "0x0010 │ 10 11 12") {
		t.Errorf("line[1] = %q", lines[1])
	}
	if !strings.HasSuffix(lines[2], "26 27") {
		t.Errorf("last line = %q, want short final row", lines[2])
	}

	lines, at = hexContext(data, 0, 1)
	if len(lines) != 2 || at != 0 {
		t.Errorf("hexContext(0) = %d lines, at %d; want 2, 0", len(lines), at)
	}

	lines, at = hexContext(data, 40, 1)
	if at >= len(lines) || !strings.HasPrefix(lines[at], "0x0020") {
		t.Errorf("hexContext(end) = %v, at %d", lines, at)
	}

	if lines, _ := hexContext(nil, 0, 1); lines != nil {
		t.Errorf("hexContext(nil) = %v, want nil", lines)
	}
}

func TestFormat(t *testing.T) {
	SetColor(false)
	defer SetColor(true)

	data := []byte{0x03, 0x00, 0x05, 0x00, 'h'}
	err := New("E302").
		WithOffset("dump.bin", 0, data).
		WithSuggestion("Re-record the capture").
		Wrap(protocol.ErrBoundsViolation)

	out := err.Format()
	for _, want := range []string{
		"ERROR E302: Truncated packet",
		"dump.bin+0x0000",
		"→ 0x0000 │ 03 00 05 00 68",
		"The input ended in the middle of a packet body.",
		"Cause: protocol: bounds violation",
		"Hint: Re-record the capture",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q:\n%s", want, out)
		}
	}
}

func TestFormatCompact(t *testing.T) {
	err := New("E301").WithOffset("a.bin", 4, nil)
	want := "a.bin+0x0004: E301: Unknown opcode"
	if got := err.FormatCompact(); got != want {
		t.Errorf("FormatCompact() = %q, want %q", got, want)
	}
}

func TestFormatJSON(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want map[string]any
	}{
		{
			name: "suggestion",
			err:  New("E201").WithSuggestion("rejoin"),
			want: map[string]any{"code": "E201", "category": "connect", "suggestion": "rejoin"},
		},
		{
			name: "control_bytes_in_cause",
			err:  New("E300").Wrap(stderrors.New("bad byte \x01 in name \xff")),
			want: map[string]any{"code": "E300", "cause": "bad byte \x01 in name \ufffd"},
		},
		{
			name: "location",
			err:  New("E302").WithOffset("a\"b.bin", 4, nil),
			want: map[string]any{"location": map[string]any{"file": "a\"b.bin", "offset": float64(4)}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.FormatJSON()
			if !json.Valid([]byte(got)) {
				t.Fatalf("FormatJSON() = %s, not valid JSON", got)
			}
			var m map[string]any
			if err := json.Unmarshal([]byte(got), &m); err != nil {
				t.Fatal(err)
			}
			for k, v := range tt.want {
				if !reflect.DeepEqual(m[k], v) {
					t.Errorf("%s = %#v, want %#v", k, m[k], v)
				}
			}
		})
	}
}

func TestFprint(t *testing.T) {
	SetColor(false)
	defer SetColor(true)

	var buf bytes.Buffer
	Fprint(&buf, New("E400"))
	if !strings.Contains(buf.String(), "ERROR E400: Invalid arguments") {
		t.Errorf("Fprint(*Error) = %q", buf.String())
	}
	buf.Reset()
	Fprint(&buf, stderrors.New("plain"))
	if !strings.Contains(buf.String(), "ERROR: plain") {
		t.Errorf("Fprint(error) = %q", buf.String())
	}
}

func TestGetAllCodes(t *testing.T) {
	codes := GetAllCodes()
	if len(codes) != len(registry) {
		t.Fatalf("GetAllCodes() = %d codes, want %d", len(codes), len(registry))
	}
	for i := 1; i < len(codes); i++ {
		if codes[i-1] >= codes[i] {
			t.Errorf("codes not sorted at %d: %s, %s", i, codes[i-1], codes[i])
		}
	}
}

func TestGetTemplate(t *testing.T) {
	tmpl, ok := GetTemplate("E302")
	if !ok || tmpl.Category != CategoryProtocol || tmpl.Message != "Truncated packet" {
		t.Errorf("GetTemplate(E302) = %+v, %v", tmpl, ok)
	}
	if _, ok := GetTemplate("E999"); ok {
		t.Error("GetTemplate(E999) ok for unregistered code")
	}
}

func TestParseStyle(t *testing.T) {
	for _, name := range []string{"text", "compact", "json"} {
		if st, err := ParseStyle(name); err != nil || string(st) != name {
			t.Errorf("ParseStyle(%q) = %q, %v", name, st, err)
		}
	}
	if _, err := ParseStyle("yaml"); err == nil {
		t.Error("ParseStyle(yaml) succeeded")
	}
}

func TestFprintStyle(t *testing.T) {
	SetColor(false)
	defer SetColor(true)

	tests := []struct {
		name  string
		err   error
		style Style
		want  string
	}{
		{"compact", New("E400"), StyleCompact, "E400: Invalid arguments\n"},
		{"compact_plain", stderrors.New("plain"), StyleCompact, "plain\n"},
		{"json_plain", stderrors.New("plain"), StyleJSON, `{"message":"plain"}` + "\n"},
		{"json_coded", New("E400"), StyleJSON, `{"code":"E400","category":"cli","message":"Invalid arguments","detail":"The command was called with missing or extra arguments."}` + "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			FprintStyle(&buf, tt.err, tt.style)
			if buf.String() != tt.want {
				t.Errorf("FprintStyle() = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestWrapText(t *testing.T) {
	if got := wrapText("", 10); got != nil {
		t.Errorf("wrapText(\"\") = %v", got)
	}
	lines := wrapText("one two three four five", 9)
	for _, l := range lines {
		if len(l) > 9 {
			t.Errorf("line %q longer than 9", l)
		}
	}
	if strings.Join(lines, " ") != "one two three four five" {
		t.Errorf("wrapText() lost words: %v", lines)
	}
}
