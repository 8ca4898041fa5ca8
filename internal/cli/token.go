package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"oms/internal/adapters/out/jwtidentity"
	"oms/internal/core/domain/model/identity"

	"github.com/spf13/cobra"
)

// TokenResult is the json output of the token command.
type TokenResult struct {
	Token     string    `json:"token"`
	Subject   string    `json:"subject"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NewTokenCommand creates the token command.
func NewTokenCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		subject string
		role    string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token",
		Long: `Mint an HS256 bearer token for the order API.

The role is "customer" or "admin"; anything else is issued as customer.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("ttl") {
				var err error
				if ttl, err = ttlFromEnv(os.Getenv); err != nil {
					return err
				}
			}

			issuer, err := jwtidentity.NewIssuer(rootOpts.Secret, rootOpts.Issuer, ttl)
			if err != nil {
				return err
			}

			r := identity.ParseRole(role)
			token, expiresAt, err := issuer.Issue(subject, r)
			if err != nil {
				return err
			}

			result := TokenResult{Token: token, Subject: subject, Role: r.String(), ExpiresAt: expiresAt.UTC()}
			return write(cmd.OutOrStdout(), rootOpts, result, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, token)
				return err
			})
		},
	}

	cmd.Flags().StringVarP(&subject, "subject", "s", "", "subject (user id) of the token")
	cmd.Flags().StringVarP(&role, "role", "r", identity.Customer.String(), "role claim (customer|admin)")
	cmd.Flags().DurationVar(&ttl, "ttl", jwtidentity.DefaultTTL, "token lifetime (default $JWT_TTL_MINUTES minutes)")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}

// ttlFromEnv reads JWT_TTL_MINUTES: unset means jwtidentity.DefaultTTL,
// otherwise a positive number of minutes.
func ttlFromEnv(getenv func(string) string) (time.Duration, error) {
	raw := getenv("JWT_TTL_MINUTES")
	if raw == "" {
		return jwtidentity.DefaultTTL, nil
	}
	minutes, err := strconv.Atoi(raw)
	if err != nil || minutes <= 0 {
		return 0, fmt.Errorf("JWT_TTL_MINUTES: %q is not a positive number of minutes", raw)
	}
	return time.Duration(minutes) * time.Minute, nil
}
