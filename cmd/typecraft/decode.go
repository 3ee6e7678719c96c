package main

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/N1ghtTheF0x/TypeCraft/internal/errors"
	"github.com/N1ghtTheF0x/TypeCraft/pkg/protocol"
)

func decodeCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "decode <file>",
		Short: "Decode a packet capture",
		Long: `Decode a file of concatenated packets, one line per packet.

The file may be a single capture record written by "connect --capture-dir"
or any raw dump of the server stream.

Examples:
  typecraft decode packets/0002-in-handshake.bin
  typecraft decode --verbose stream.bin`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("E400").WithSuggestion("Usage: typecraft decode <file>")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(cmd, args[0], verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print packet fields")

	return cmd
}

func runDecode(cmd *cobra.Command, path string, verbose bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.New("E300").Wrap(err)
	}
	out := cmd.OutOrStdout()

	c := protocol.NewReadCursor(data)
	frames, err := protocol.DecodeStream(c)

	offset := 0
	for _, f := range frames {
		fmt.Fprintf(out, "%8d  0x%02X  %-24s %6d bytes\n", offset, uint8(f.Opcode), f.Opcode, len(f.Raw))
		if verbose {
			if fields := formatFields(f.Packet.LogValue()); fields != "" {
				fmt.Fprintf(out, "          %s\n", fields)
			}
		}
		offset += len(f.Raw)
	}
	info(out, "%d packets, %d bytes", len(frames), offset)

	if err == nil {
		return nil
	}
	e := errors.Classify(err, "E303")
	if off, ok := errors.Offset(err); ok {
		e = e.WithOffset(path, off, data)
	}
	var partial *protocol.PartialFrameError
	if stderrors.As(err, &partial) {
		e = e.WithSuggestion(fmt.Sprintf("The last %d bytes are an incomplete %s packet", len(data)-partial.Offset, partial.Opcode))
	}
	return e
}

// formatFields renders a packet's log value as key=value pairs. Strings are
// quoted and nested groups are wrapped in braces.
func formatFields(v slog.Value) string {
	var b strings.Builder
	writeFields(&b, v.Resolve())
	return b.String()
}

func writeFields(b *strings.Builder, v slog.Value) {
	switch v.Kind() {
	case slog.KindGroup:
		for i, a := range v.Group() {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(a.Key)
			b.WriteByte('=')
			av := a.Value.Resolve()
			if av.Kind() == slog.KindGroup {
				b.WriteByte('{')
				writeFields(b, av)
				b.WriteByte('}')
			} else {
				writeFields(b, av)
			}
		}
	case slog.KindString:
		b.WriteString(strconv.Quote(v.String()))
	default:
		b.WriteString(v.String())
	}
}
