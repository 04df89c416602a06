package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "linkup/internal/domain/errors"
	mockUC "linkup/internal/mocks/usecase"
	"linkup/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGateContext(authHeader string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/user/profile", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec)
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	accountUC := mockUC.NewMockAccountUsecase(t)
	gate := NewAuthMiddleware(accountUC)

	err := gate.Authenticate(okHandler)(newGateContext(""))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	accountUC := mockUC.NewMockAccountUsecase(t)
	gate := NewAuthMiddleware(accountUC)

	for _, header := range []string{"Basic abc123", "Bearer", "Bearer "} {
		err := gate.Authenticate(okHandler)(newGateContext(header))

		require.Error(t, err, "header %q", header)
		assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized), "header %q", header)
	}
}

func TestAuthenticate_RejectedToken(t *testing.T) {
	accountUC := mockUC.NewMockAccountUsecase(t)
	gate := NewAuthMiddleware(accountUC)

	c := newGateContext("Bearer stale.token")
	accountUC.On("Authorize", c.Request().Context(), "stale.token").
		Return(nil, domainerrors.ErrForbidden)

	err := gate.Authenticate(okHandler)(c)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestAuthenticate_Success(t *testing.T) {
	accountUC := mockUC.NewMockAccountUsecase(t)
	gate := NewAuthMiddleware(accountUC)

	identity := &usecase.Identity{UserID: uuid.New(), Username: "alice"}
	c := newGateContext("Bearer good.token")
	accountUC.On("Authorize", c.Request().Context(), "good.token").
		Return(identity, nil)

	var seen *usecase.Identity
	err := gate.Authenticate(func(c echo.Context) error {
		got, ok := IdentityFrom(c)
		require.True(t, ok)
		seen = got

		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	assert.Equal(t, identity, seen)
}

func TestAuthenticate_Idempotent(t *testing.T) {
	accountUC := mockUC.NewMockAccountUsecase(t)
	gate := NewAuthMiddleware(accountUC)

	identity := &usecase.Identity{UserID: uuid.New(), Username: "alice"}
	c := newGateContext("Bearer good.token")
	accountUC.On("Authorize", c.Request().Context(), "good.token").
		Return(identity, nil).
		Twice()

	// Running the gate twice over the same request yields the same identity.
	handler := gate.Authenticate(gate.Authenticate(okHandler))

	require.NoError(t, handler(c))

	got, ok := IdentityFrom(c)
	require.True(t, ok)
	assert.Equal(t, identity, got)
}
