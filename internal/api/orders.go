package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fernandoemejia/ecommerce-frontend/internal/domain"
)

type OrdersClient struct {
	c *Client
}

func NewOrdersClient(c *Client) *OrdersClient {
	return &OrdersClient{c: c}
}

// Checkout creates an order from the server-side cart contents.
func (oc *OrdersClient) Checkout(ctx context.Context, req domain.CreateOrderRequest) (*domain.Order, error) {
	return do[*domain.Order](ctx, oc.c, http.MethodPost, "/orders/checkout", nil, req)
}

// Create places an order with an explicit item list, bypassing the cart.
func (oc *OrdersClient) Create(ctx context.Context, req domain.CreateOrderRequest) (*domain.Order, error) {
	return do[*domain.Order](ctx, oc.c, http.MethodPost, "/orders", nil, req)
}

func (oc *OrdersClient) ByID(ctx context.Context, id int64) (*domain.Order, error) {
	return do[*domain.Order](ctx, oc.c, http.MethodGet, fmt.Sprintf("/orders/%d", id), nil, nil)
}

func (oc *OrdersClient) ByNumber(ctx context.Context, orderNumber string) (*domain.Order, error) {
	return do[*domain.Order](ctx, oc.c, http.MethodGet, "/orders/number/"+orderNumber, nil, nil)
}

func (oc *OrdersClient) Cancel(ctx context.Context, id int64) (*domain.Order, error) {
	return do[*domain.Order](ctx, oc.c, http.MethodPost, fmt.Sprintf("/orders/%d/cancel", id), nil, struct{}{})
}

func (oc *OrdersClient) MyOrders(ctx context.Context, page, size int) (*domain.Page[domain.Order], error) {
	return do[*domain.Page[domain.Order]](ctx, oc.c, http.MethodGet, "/orders/my-orders", pageQuery(page, size), nil)
}
