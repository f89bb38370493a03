package http

import (
	"strings"

	"canteen/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
)

const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"

	principalKey = "canteen.principal"
)

// Authenticate reads the principal established by the upstream auth proxy
// from the X-User-ID and X-User-Role headers. Requests without a role pass
// through anonymously; malformed headers are rejected.
func Authenticate() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			role := strings.TrimSpace(ctx.Request().Header.Get(HeaderUserRole))
			if role == "" {
				return next(ctx)
			}

			parsed, err := user.ParseRole(role)
			if err != nil {
				return ctx.JSON(statusOf(err), Error{Code: statusOf(err), Message: err.Error()})
			}
			principal := user.Principal{
				ID:   user.ID(strings.TrimSpace(ctx.Request().Header.Get(HeaderUserID))),
				Role: parsed,
			}
			if err := principal.Validate(); err != nil {
				return ctx.JSON(statusOf(err), Error{Code: statusOf(err), Message: err.Error()})
			}

			ctx.Set(principalKey, principal)
			return next(ctx)
		}
	}
}

func principalOf(ctx echo.Context) (user.Principal, bool) {
	p, ok := ctx.Get(principalKey).(user.Principal)
	return p, ok
}

// requirePrincipal returns the caller or errUnauthenticated.
func requirePrincipal(ctx echo.Context) (user.Principal, error) {
	p, ok := principalOf(ctx)
	if !ok {
		return user.Principal{}, errUnauthenticated
	}
	return p, nil
}

// requireStaff returns the caller if it may manage orders.
func requireStaff(ctx echo.Context) (user.Principal, error) {
	p, err := requirePrincipal(ctx)
	if err != nil {
		return user.Principal{}, err
	}
	if !p.CanManageOrders() {
		return user.Principal{}, errForbidden
	}
	return p, nil
}

// userIDOf returns the caller's id for attribution, or nil when anonymous.
func userIDOf(ctx echo.Context) *user.ID {
	p, ok := principalOf(ctx)
	if !ok || p.ID == "" {
		return nil
	}
	id := p.ID
	return &id
}
