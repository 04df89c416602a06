package middleware

import (
	"strings"

	domainerrors "linkup/internal/domain/errors"
	"linkup/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// identityKey is the echo context key the gate stores the caller under.
const identityKey = "identity"

// AuthMiddleware is the request gate for protected routes. It extracts the
// bearer token, hands it to the account usecase for verification plus
// principal re-resolution, and attaches the resulting identity to the
// request context.
type AuthMiddleware struct {
	accountUC usecase.AccountUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(accountUC usecase.AccountUsecase) *AuthMiddleware {
	return &AuthMiddleware{accountUC: accountUC}
}

// Authenticate validates the bearer token on each request.
// Missing or malformed credentials answer 401; a token that fails
// verification or whose account no longer exists answers 403.
// Running the gate twice on one request yields the same outcome.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return errors.WithStack(domainerrors.ErrUnauthorized)
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return errors.WithStack(domainerrors.ErrUnauthorized)
		}

		identity, err := m.accountUC.Authorize(c.Request().Context(), tokenString)
		if err != nil {
			return errors.WithStack(err)
		}

		c.Set(identityKey, identity)

		return next(c)
	}
}

// IdentityFrom returns the authenticated caller stored by Authenticate.
// Handlers behind the gate can rely on it being present.
func IdentityFrom(c echo.Context) (*usecase.Identity, bool) {
	identity, ok := c.Get(identityKey).(*usecase.Identity)

	return identity, ok
}
