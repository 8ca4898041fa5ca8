// Package cli implements omsctl, the operator tool of the order service:
// minting and inspecting bearer tokens and checking the database.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Format string // "json" | "text"
	Secret string
	Issuer string
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for omsctl.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "omsctl",
		Short: "omsctl - order service operator tool",
		Long:  "Mint and verify bearer tokens for the order API and manage its database.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Secret, "secret", os.Getenv("JWT_SECRET_KEY"), "HS256 signing secret (default $JWT_SECRET_KEY)")
	cmd.PersistentFlags().StringVar(&opts.Issuer, "issuer", os.Getenv("JWT_ISSUER"), "token issuer (default $JWT_ISSUER)")

	cmd.AddCommand(NewTokenCommand(opts))
	cmd.AddCommand(NewVerifyCommand(opts))
	cmd.AddCommand(NewDBCommand(opts))

	return cmd
}

// write prints v as indented JSON, or text via the fallback, depending on
// the selected format.
func write(w io.Writer, opts *RootOptions, v any, text func(io.Writer) error) error {
	if opts.Format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	return text(w)
}
