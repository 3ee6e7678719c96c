package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/N1ghtTheF0x/TypeCraft/internal/errors"
)

func explainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explain [code]",
		Short: "Describe error codes",
		Long: `Describe an error code, or list every code when none is given.

Examples:
  typecraft explain
  typecraft explain E302`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("E400").WithSuggestion("Usage: typecraft explain [code]")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, code := range errors.GetAllCodes() {
					t, _ := errors.GetTemplate(code)
					fmt.Fprintf(out, "%s  %-8s  %s\n", code, t.Category, t.Message)
				}
				return nil
			}

			code := strings.ToUpper(args[0])
			t, ok := errors.GetTemplate(code)
			if !ok {
				return errors.New("E400").
					WithDetail(fmt.Sprintf("%q is not a typecraft error code.", args[0])).
					WithSuggestion("Run typecraft explain to list every code")
			}
			fmt.Fprintf(out, "%s: %s\n", code, t.Message)
			info(out, "Category: %s", t.Category)
			info(out, "%s", t.Detail)
			return nil
		},
	}
}
