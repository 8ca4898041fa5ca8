package orderrepo

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"
	"strings"

	"oms/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

// classify wraps connectivity failures in errs.StoreIsUnavailableError and
// returns every other error unchanged.
func classify(operation string, err error) error {
	if err == nil {
		return nil
	}
	if isUnavailable(err) {
		return errs.NewStoreIsUnavailableError(operation, err)
	}
	return err
}

func isUnavailable(err error) bool {
	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	// 08: connection exception, 57P: operator intervention (shutdown, ...)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return strings.HasPrefix(pgErr.Code, "08") || strings.HasPrefix(pgErr.Code, "57P")
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	return errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, context.DeadlineExceeded)
}
