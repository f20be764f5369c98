package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	mockusecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newWebhookTestContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/identity", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHandleIdentityEvent_UserCreated(t *testing.T) {
	sync := mockusecase.NewMockIdentitySyncUsecase(t)

	var received *usecase.ProviderUserEvent
	sync.EXPECT().
		HandleUserCreated(mock.Anything, mock.AnythingOfType("*usecase.ProviderUserEvent")).
		Run(func(_ context.Context, event *usecase.ProviderUserEvent) {
			received = event
		}).
		Return(nil).
		Once()

	h := NewWebhookHandler(sync, discardLogger())
	body := `{
		"type": "user.created",
		"data": {
			"id": "user_1",
			"first_name": "Ada",
			"last_name": "Lovelace",
			"email_addresses": [{"email_address": "ada@example.com"}],
			"image_url": "https://img.example.com/ada.png"
		}
	}`
	c, rec := newWebhookTestContext(t, body)

	require.NoError(t, h.HandleIdentityEvent(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, received)
	assert.Equal(t, "user_1", received.ID)
	assert.Equal(t, "ada@example.com", received.PrimaryEmail())
}

func TestHandleIdentityEvent_UserUpdated(t *testing.T) {
	sync := mockusecase.NewMockIdentitySyncUsecase(t)
	sync.EXPECT().
		HandleUserUpdated(mock.Anything, mock.AnythingOfType("*usecase.ProviderUserEvent")).
		Return(nil).
		Once()

	h := NewWebhookHandler(sync, discardLogger())
	c, rec := newWebhookTestContext(t, `{"type": "user.updated", "data": {"id": "user_1", "first_name": "Ada"}}`)

	require.NoError(t, h.HandleIdentityEvent(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleIdentityEvent_UserDeleted(t *testing.T) {
	sync := mockusecase.NewMockIdentitySyncUsecase(t)
	sync.EXPECT().HandleUserDeleted(mock.Anything, "user_1").Return(nil).Once()

	h := NewWebhookHandler(sync, discardLogger())
	c, rec := newWebhookTestContext(t, `{"type": "user.deleted", "data": {"id": "user_1"}}`)

	require.NoError(t, h.HandleIdentityEvent(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleIdentityEvent_UnknownTypeAcked(t *testing.T) {
	// No expectations: any dispatch would fail the test.
	sync := mockusecase.NewMockIdentitySyncUsecase(t)

	h := NewWebhookHandler(sync, discardLogger())
	c, rec := newWebhookTestContext(t, `{"type": "session.created", "data": {"id": "sess_1"}}`)

	require.NoError(t, h.HandleIdentityEvent(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleIdentityEvent_SyncFailurePropagates(t *testing.T) {
	sync := mockusecase.NewMockIdentitySyncUsecase(t)
	sync.EXPECT().
		HandleUserCreated(mock.Anything, mock.AnythingOfType("*usecase.ProviderUserEvent")).
		Return(errors.New("database unavailable")).
		Once()

	h := NewWebhookHandler(sync, discardLogger())
	c, _ := newWebhookTestContext(t, `{"type": "user.created", "data": {"id": "user_1"}}`)

	// The error surfaces so the provider redelivers the event.
	require.Error(t, h.HandleIdentityEvent(c))
}

func TestHandleIdentityEvent_MalformedDataRejected(t *testing.T) {
	sync := mockusecase.NewMockIdentitySyncUsecase(t)

	h := NewWebhookHandler(sync, discardLogger())
	c, rec := newWebhookTestContext(t, `{"type": "user.created", "data": "not-an-object"}`)

	require.NoError(t, h.HandleIdentityEvent(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
