package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fernandoemejia/ecommerce-frontend/internal/domain"
)

type PaymentsClient struct {
	c *Client
}

func NewPaymentsClient(c *Client) *PaymentsClient {
	return &PaymentsClient{c: c}
}

func (pc *PaymentsClient) Create(ctx context.Context, req domain.CreatePaymentRequest) (*domain.Payment, error) {
	return do[*domain.Payment](ctx, pc.c, http.MethodPost, "/payments", nil, req)
}

func (pc *PaymentsClient) Process(ctx context.Context, paymentID int64, providerReference string) (*domain.Payment, error) {
	req := domain.ProcessPaymentRequest{ProviderReference: providerReference}
	return do[*domain.Payment](ctx, pc.c, http.MethodPost, fmt.Sprintf("/payments/%d/process", paymentID), nil, req)
}

func (pc *PaymentsClient) ByOrderID(ctx context.Context, orderID int64) (*domain.Payment, error) {
	return do[*domain.Payment](ctx, pc.c, http.MethodGet, fmt.Sprintf("/payments/order/%d", orderID), nil, nil)
}
