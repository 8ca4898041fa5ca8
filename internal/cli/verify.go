package cli

import (
	"fmt"
	"io"

	"oms/internal/adapters/out/jwtidentity"

	"github.com/spf13/cobra"
)

// VerifyResult is the json output of the verify command.
type VerifyResult struct {
	Subject string `json:"subject"`
	Role    string `json:"role"`
}

// NewVerifyCommand creates the verify command.
func NewVerifyCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify <token>",
		Short: "Verify a bearer token and print the caller it resolves to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			verifier, err := jwtidentity.NewVerifier(rootOpts.Secret, rootOpts.Issuer)
			if err != nil {
				return err
			}

			caller, err := verifier.Verify(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			result := VerifyResult{Subject: caller.SubjectID(), Role: caller.Role().String()}
			return write(cmd.OutOrStdout(), rootOpts, result, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "subject: %s\nrole:    %s\n", result.Subject, result.Role)
				return err
			})
		},
	}

	return cmd
}
