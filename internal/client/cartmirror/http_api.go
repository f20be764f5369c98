package cartmirror

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
)

// httpCartAPI talks to the storefront cart endpoints with a bearer token.
type httpCartAPI struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewHTTPAPI creates a CartAPI over the storefront HTTP surface.
func NewHTTPAPI(baseURL, token string) CartAPI {
	return &httpCartAPI{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type cartEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    struct {
		CartItems entity.CartItems `json:"cartItems"`
	} `json:"data"`
}

func (a *httpCartAPI) FetchCart(ctx context.Context) (entity.CartItems, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"/api/cart", nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Authorization", "Bearer "+a.token)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "fetch cart")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("fetch cart returned status %d", resp.StatusCode)
	}

	var envelope cartEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, errors.Wrap(err, "decode cart response")
	}
	if !envelope.Success {
		return nil, errors.Errorf("fetch cart failed: %s", envelope.Message)
	}
	if envelope.Data.CartItems == nil {
		return entity.CartItems{}, nil
	}

	return envelope.Data.CartItems, nil
}

func (a *httpCartAPI) ReplaceCart(ctx context.Context, items entity.CartItems) error {
	payload, err := json.Marshal(map[string]entity.CartItems{"cartData": items})
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, a.baseURL+"/api/cart", bytes.NewReader(payload))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Authorization", "Bearer "+a.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "push cart")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("push cart returned status %d", resp.StatusCode)
	}

	return nil
}
