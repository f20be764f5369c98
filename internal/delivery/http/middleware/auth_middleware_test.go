package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "storefront/internal/delivery/context"
	mockservice "storefront/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(t *testing.T, authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAuthenticate_SetsUserIDFromToken(t *testing.T) {
	identity := mockservice.NewMockIdentityProvider(t)
	identity.EXPECT().VerifyToken(mock.Anything, "valid-token").Return("user_1", nil).Once()

	m := NewAuthMiddleware(identity, discardLogger())
	c, _ := newAuthTestContext(t, "Bearer valid-token")

	var seenUserID string
	next := func(c echo.Context) error {
		seenUserID = deliverycontext.GetUserID(c)

		return nil
	}

	require.NoError(t, m.Authenticate(next)(c))
	assert.Equal(t, "user_1", seenUserID)
}

func TestAuthenticate_RejectsMissingHeader(t *testing.T) {
	identity := mockservice.NewMockIdentityProvider(t)

	m := NewAuthMiddleware(identity, discardLogger())
	c, rec := newAuthTestContext(t, "")

	nextCalled := false
	next := func(c echo.Context) error {
		nextCalled = true

		return nil
	}

	require.NoError(t, m.Authenticate(next)(c))
	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_RejectsInvalidToken(t *testing.T) {
	identity := mockservice.NewMockIdentityProvider(t)
	identity.EXPECT().VerifyToken(mock.Anything, "bad-token").Return("", errors.New("token expired")).Once()

	m := NewAuthMiddleware(identity, discardLogger())
	c, rec := newAuthTestContext(t, "Bearer bad-token")

	nextCalled := false
	next := func(c echo.Context) error {
		nextCalled = true

		return nil
	}

	require.NoError(t, m.Authenticate(next)(c))
	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireSeller_AllowsSeller(t *testing.T) {
	identity := mockservice.NewMockIdentityProvider(t)
	identity.EXPECT().IsSeller(mock.Anything, "seller_1").Return(true, nil).Once()

	m := NewAuthMiddleware(identity, discardLogger())
	c, _ := newAuthTestContext(t, "")
	deliverycontext.SetUserID(c, "seller_1")

	nextCalled := false
	next := func(c echo.Context) error {
		nextCalled = true

		return nil
	}

	require.NoError(t, m.RequireSeller(next)(c))
	assert.True(t, nextCalled)
}

func TestRequireSeller_DeniesNonSeller(t *testing.T) {
	identity := mockservice.NewMockIdentityProvider(t)
	identity.EXPECT().IsSeller(mock.Anything, "user_1").Return(false, nil).Once()

	m := NewAuthMiddleware(identity, discardLogger())
	c, rec := newAuthTestContext(t, "")
	deliverycontext.SetUserID(c, "user_1")

	next := func(c echo.Context) error {
		t.Fatal("next should not run")

		return nil
	}

	require.NoError(t, m.RequireSeller(next)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Unauthorized")
}

func TestRequireSeller_FailsClosedOnLookupError(t *testing.T) {
	identity := mockservice.NewMockIdentityProvider(t)
	identity.EXPECT().IsSeller(mock.Anything, "user_1").Return(false, errors.New("provider unreachable")).Once()

	m := NewAuthMiddleware(identity, discardLogger())
	c, rec := newAuthTestContext(t, "")
	deliverycontext.SetUserID(c, "user_1")

	next := func(c echo.Context) error {
		t.Fatal("next should not run")

		return nil
	}

	require.NoError(t, m.RequireSeller(next)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
