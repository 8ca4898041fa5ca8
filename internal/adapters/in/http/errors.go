package http

import (
	"errors"
	"net/http"
	"strings"

	"oms/internal/core/domain/model/identity"
	"oms/internal/generated/servers"
	"oms/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// errUnauthenticated marks a request that reached a handler without a
// resolved caller.
var errUnauthenticated = errors.New(msgAuthorizationRequired)

// fail writes the response for a use case error. Server side failures are
// logged with their cause; the client only sees a generic message.
func (s *Server) fail(ctx echo.Context, err error) error {
	status, body := errorResponse(err)
	if status >= http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
	}
	return ctx.JSON(status, body)
}

// errorResponse maps an error kind to its status code and body.
//
//	invalid input   422, or 400 when the path id is malformed
//	forbidden       403
//	not found       404
//	unavailable     503
//	anything else   500
func errorResponse(err error) (int, servers.Error) {
	switch {
	case errors.Is(err, errUnauthenticated), errors.Is(err, identity.ErrCallerIsNotConstructed):
		return errorBody(http.StatusUnauthorized, errUnauthenticated.Error(), "")

	case errs.IsInvalidInput(err):
		field := errs.ParamName(err)
		if field == "id" {
			return errorBody(http.StatusBadRequest, "Invalid order ID format", field)
		}
		return errorBody(http.StatusUnprocessableEntity, flatten(err), field)

	case errors.Is(err, errs.ErrAccessIsForbidden):
		var forbidden *errs.AccessIsForbiddenError
		if errors.As(err, &forbidden) && forbidden.Reason != "" {
			return errorBody(http.StatusForbidden, capitalize(forbidden.Reason), "")
		}
		return errorBody(http.StatusForbidden, "Forbidden", "")

	case errors.Is(err, errs.ErrObjectNotFound):
		return errorBody(http.StatusNotFound, "Order not found", "")

	case errors.Is(err, errs.ErrStoreIsUnavailable):
		return errorBody(http.StatusServiceUnavailable, "Service temporarily unavailable", "")

	default:
		return errorBody(http.StatusInternalServerError, "Internal server error", "")
	}
}

func errorBody(status int, message, field string) (int, servers.Error) {
	body := servers.Error{Code: status, Message: message}
	if field != "" {
		body.Field = &field
	}
	return status, body
}

func badRequest(ctx echo.Context, message string) error {
	status, body := errorBody(http.StatusBadRequest, message, "")
	return ctx.JSON(status, body)
}

// flatten turns a joined error into a single line.
func flatten(err error) string {
	return strings.ReplaceAll(err.Error(), "\n", "; ")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ErrorHandler renders errors that never reached a use case (unknown route,
// wrong method, unparsable query parameter, panics) in the same body shape.
func ErrorHandler() echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := http.StatusText(status)

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			status = httpErr.Code
			if m, ok := httpErr.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(status)
			}
		}

		code, body := errorBody(status, message, "")
		if ctx.Request().Method == http.MethodHead {
			_ = ctx.NoContent(code)
			return
		}
		_ = ctx.JSON(code, body)
	}
}
