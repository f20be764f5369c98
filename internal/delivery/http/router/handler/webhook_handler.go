package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Identity-provider lifecycle event names.
const (
	eventUserCreated = "user.created"
	eventUserUpdated = "user.updated"
	eventUserDeleted = "user.deleted"
)

// identityWebhookPayload is the provider's push envelope. Signature
// verification happens at the ingress boundary, before this handler.
type identityWebhookPayload struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// WebhookHandler applies identity-provider lifecycle events to the local
// user store. A non-2xx answer makes the provider redeliver, so only
// transient failures propagate; malformed payloads are acknowledged.
type WebhookHandler struct {
	sync   usecase.IdentitySyncUsecase
	logger *slog.Logger
}

// NewWebhookHandler is the constructor for WebhookHandler, injected by Fx.
func NewWebhookHandler(sync usecase.IdentitySyncUsecase, logger *slog.Logger) *WebhookHandler {
	return &WebhookHandler{
		sync:   sync,
		logger: logger,
	}
}

// HandleIdentityEvent dispatches one provider lifecycle event.
func (h *WebhookHandler) HandleIdentityEvent(c echo.Context) error {
	var payload identityWebhookPayload
	if err := c.Bind(&payload); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid webhook payload")
	}

	ctx := c.Request().Context()

	switch payload.Type {
	case eventUserCreated, eventUserUpdated:
		var event usecase.ProviderUserEvent
		if err := json.Unmarshal(payload.Data, &event); err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid event data")
		}

		var err error
		if payload.Type == eventUserCreated {
			err = h.sync.HandleUserCreated(ctx, &event)
		} else {
			err = h.sync.HandleUserUpdated(ctx, &event)
		}
		if err != nil {
			return errors.WithStack(err)
		}

	case eventUserDeleted:
		var event struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(payload.Data, &event); err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid event data")
		}

		if err := h.sync.HandleUserDeleted(ctx, event.ID); err != nil {
			return errors.WithStack(err)
		}

	default:
		// Unknown event kinds are acknowledged so the provider stops
		// redelivering them.
		h.logger.Info("Ignoring unhandled identity event",
			slog.String("type", payload.Type),
		)
	}

	return response.Success(c, http.StatusOK, nil, "Event processed")
}
