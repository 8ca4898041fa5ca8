package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"oms/internal/adapters/out/postgres"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var errDSNIsRequired = errors.New("a DSN is required: pass --dsn or set DATABASE_URL")

// NewDBCommand creates the db command group.
func NewDBCommand(rootOpts *RootOptions) *cobra.Command {
	var dsn string

	cmd := &cobra.Command{
		Use:   "db",
		Short: "Check or migrate the order database",
	}
	cmd.PersistentFlags().StringVar(&dsn, "dsn", os.Getenv("DATABASE_URL"), "PostgreSQL DSN or URL (default $DATABASE_URL)")

	cmd.AddCommand(&cobra.Command{
		Use:   "ping",
		Short: "Check that the database is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(cmd.Context(), dsn, func(ctx context.Context, db *gorm.DB) error {
				start := time.Now()
				if err := postgres.Ping(ctx, db); err != nil {
					return err
				}
				return report(cmd.OutOrStdout(), rootOpts, "connected", time.Since(start))
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Create or update the orders table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(cmd.Context(), dsn, func(_ context.Context, db *gorm.DB) error {
				start := time.Now()
				if err := postgres.Migrate(db); err != nil {
					return err
				}
				return report(cmd.OutOrStdout(), rootOpts, "migrated", time.Since(start))
			})
		},
	})

	return cmd
}

func withDB(ctx context.Context, dsn string, fn func(context.Context, *gorm.DB) error) error {
	if dsn == "" {
		return errDSNIsRequired
	}
	if ctx == nil {
		ctx = context.Background()
	}

	db, err := postgres.Open(dsn, postgres.DefaultPoolConfig())
	if err != nil {
		return err
	}
	defer func() {
		_ = postgres.Close(db)
	}()

	return fn(ctx, db)
}

func report(w io.Writer, opts *RootOptions, status string, elapsed time.Duration) error {
	result := map[string]any{"status": status, "elapsed_ms": elapsed.Milliseconds()}
	return write(w, opts, result, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "%s (%s)\n", status, elapsed.Round(time.Millisecond))
		return err
	})
}
