package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/N1ghtTheF0x/TypeCraft/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		printError(root, os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "typecraft",
		Short: "Client for Beta 1.7 block-game servers",
		Long: `typecraft speaks protocol version 14, the protocol of Beta 1.7.

It can join a server, keep the connection alive, log chat and kicks,
record every packet to disk or S3, and decode recorded packets again.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("error-format")
			if _, err := errors.ParseStyle(name); err != nil {
				return errors.New("E400").
					Wrap(err).
					WithSuggestion("Use --error-format text, compact, or json")
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().String("error-format", string(errors.StyleText), "Error output: text, compact, or json")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored error output")

	rootCmd.AddCommand(
		connectCmd(),
		decodeCmd(),
		explainCmd(),
		versionCmd(),
	)
	return rootCmd
}

// printError writes err to w as selected by the root flags. NO_COLOR in the
// environment also disables color.
func printError(root *cobra.Command, w io.Writer, err error) {
	flags := root.PersistentFlags()
	noColor, _ := flags.GetBool("no-color")
	errors.SetColor(!noColor && os.Getenv("NO_COLOR") == "")

	name, _ := flags.GetString("error-format")
	style, perr := errors.ParseStyle(name)
	if perr != nil {
		style = errors.StyleText
	}
	errors.FprintStyle(w, err, style)
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}
