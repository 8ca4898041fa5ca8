package http

import (
	"net/http"
	"strings"

	"oms/internal/core/domain/model/identity"
	"oms/internal/core/ports"

	"github.com/labstack/echo/v4"
)

const callerContextKey = "oms.caller"

const (
	msgAuthorizationRequired = "Authorization header required"
	msgInvalidCredentials    = "Could not validate credentials"
)

// Authenticate resolves the bearer token of every request into an
// identity.Caller stored on the echo context. Requests without a bearer
// token, or with one the verifier rejects, end with 401.
func Authenticate(verifier ports.IdentityVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			token, ok := bearerToken(ctx.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return unauthorized(ctx, msgAuthorizationRequired)
			}

			caller, err := verifier.Verify(ctx.Request().Context(), token)
			if err != nil {
				return unauthorized(ctx, msgInvalidCredentials)
			}

			ctx.Set(callerContextKey, caller)
			return next(ctx)
		}
	}
}

// bearerToken extracts the credential of a "Bearer <token>" header. Any
// other scheme counts as no credential at all.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)
	return token, token != ""
}

func callerFrom(ctx echo.Context) (identity.Caller, error) {
	caller, ok := ctx.Get(callerContextKey).(identity.Caller)
	if !ok {
		return identity.Caller{}, errUnauthenticated
	}
	return caller, nil
}

func unauthorized(ctx echo.Context, message string) error {
	ctx.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	status, body := errorBody(http.StatusUnauthorized, message, "")
	return ctx.JSON(status, body)
}
