package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fernandoemejia/ecommerce-frontend/internal/domain"
)

// CartClient talks to the server-side cart. Every mutation returns the
// full recomputed cart, which is the only cart state the client keeps.
type CartClient struct {
	c *Client
}

func NewCartClient(c *Client) *CartClient {
	return &CartClient{c: c}
}

func (cc *CartClient) Get(ctx context.Context) (*domain.Cart, error) {
	return do[*domain.Cart](ctx, cc.c, http.MethodGet, "/cart", nil, nil)
}

func (cc *CartClient) AddItem(ctx context.Context, req domain.AddToCartRequest) (*domain.Cart, error) {
	return do[*domain.Cart](ctx, cc.c, http.MethodPost, "/cart/items", nil, req)
}

func (cc *CartClient) UpdateQuantity(ctx context.Context, productID int64, req domain.UpdateCartItemRequest) (*domain.Cart, error) {
	return do[*domain.Cart](ctx, cc.c, http.MethodPut, fmt.Sprintf("/cart/items/%d", productID), nil, req)
}

func (cc *CartClient) RemoveItem(ctx context.Context, productID int64) (*domain.Cart, error) {
	return do[*domain.Cart](ctx, cc.c, http.MethodDelete, fmt.Sprintf("/cart/items/%d", productID), nil, nil)
}

func (cc *CartClient) Clear(ctx context.Context) (*domain.Cart, error) {
	return do[*domain.Cart](ctx, cc.c, http.MethodDelete, "/cart", nil, nil)
}
