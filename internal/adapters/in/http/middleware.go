package http

import (
	"net/http"
	"strings"

	"workorders/internal/core/application/usecases/queries"
	"workorders/internal/core/domain/services"

	"github.com/labstack/echo/v4"
)

// identityContextKey is the echo context key under which the authenticated
// caller's identity is stored by the auth middleware.
const identityContextKey = "identity"

// AuthMiddleware resolves the bearer token on each request and stores the
// caller's identity in the request context. Requests without a valid token
// are rejected with 401 before reaching any handler.
func AuthMiddleware(authHandler queries.AuthenticateUserQueryHandler) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			tokenValue, ok := bearerToken(ctx.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return respondErrorCode(ctx, http.StatusUnauthorized, "missing bearer token")
			}

			query, err := queries.NewAuthenticateUserQuery(tokenValue)
			if err != nil {
				return respondErrorCode(ctx, http.StatusUnauthorized, "missing bearer token")
			}

			identity, err := authHandler.Handle(ctx.Request().Context(), query)
			if err != nil {
				return respondError(ctx, err)
			}

			ctx.Set(identityContextKey, identity)
			return next(ctx)
		}
	}
}

// RequireOperation gates a route on the access policy. Must run after
// AuthMiddleware; the role comes from the stored identity.
func RequireOperation(policy *services.AccessPolicy, op services.Operation) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			identity, ok := identityFrom(ctx)
			if !ok {
				return respondErrorCode(ctx, http.StatusUnauthorized, "not authenticated")
			}

			if err := policy.Authorize(identity.Role, op); err != nil {
				return respondError(ctx, err)
			}

			return next(ctx)
		}
	}
}

// identityFrom retrieves the authenticated identity stored by AuthMiddleware.
func identityFrom(ctx echo.Context) (queries.AuthenticateUserQueryResponse, bool) {
	identity, ok := ctx.Get(identityContextKey).(queries.AuthenticateUserQueryResponse)
	return identity, ok
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme comparison is case-insensitive per RFC 9110.
func bearerToken(header string) (string, bool) {
	const prefix = "bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}

	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}
