package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fernandoemejia/ecommerce-frontend/internal/domain"
)

func testClient(t *testing.T, handler http.HandlerFunc, token string) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return NewClient(ts.URL, 5*time.Second, func() string { return token }, zap.NewNop())
}

func TestEnvelopeDecode(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    map[string]any{"id": 1, "username": "ann", "role": "CUSTOMER"},
		})
	}, "")

	user, err := do[*domain.User](context.Background(), c, http.MethodGet, "/auth/me", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "ann", user.Username)
}

func TestSuccessFalseIsFailure(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"message": "Insufficient stock for Bluetooth Speaker",
		})
	}, "")

	_, err := do[*domain.Cart](context.Background(), c, http.MethodPost, "/cart/items", nil, domain.AddToCartRequest{ProductID: 2, Quantity: 50})
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Insufficient stock for Bluetooth Speaker", apiErr.Message)
	assert.Equal(t, "Insufficient stock for Bluetooth Speaker", DisplayMessage(err, "fallback"))
}

func TestBusinessRejectionCarriesServerMessage(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"message": "Order can no longer be cancelled",
		})
	}, "tok")

	_, err := do[*domain.Order](context.Background(), c, http.MethodPost, "/orders/1/cancel", nil, struct{}{})
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Order can no longer be cancelled", apiErr.Message)
}

func TestUnauthenticatedTaxonomy(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "Authentication required"})
	}, "")

	_, err := do[*domain.Cart](context.Background(), c, http.MethodGet, "/cart", nil, nil)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestNotFoundTaxonomy(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "Product not found"})
	}, "")

	_, err := do[*domain.Product](context.Background(), c, http.MethodGet, "/products/999", nil, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTransportErrorFallsBackToGenericMessage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	c := NewClient(ts.URL, time.Second, nil, zap.NewNop())
	ts.Close() // connection refused from here on

	_, err := do[*domain.Cart](context.Background(), c, http.MethodGet, "/cart", nil, nil)
	require.Error(t, err)

	var apiErr *Error
	assert.False(t, errors.As(err, &apiErr))
	assert.Equal(t, "Something went wrong", DisplayMessage(err, "Something went wrong"))
}

func TestRequestHeaders(t *testing.T) {
	var gotAuth, gotRequestID string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
	}, "my-token")

	_, err := do[*domain.Cart](context.Background(), c, http.MethodGet, "/cart", nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "Bearer my-token", gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

func TestNoAuthHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
	}, "")

	_, err := do[*domain.Page[domain.Product]](context.Background(), c, http.MethodGet, "/products", nil, nil)
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}
