package api

import (
	"context"
	"net/http"

	"github.com/fernandoemejia/ecommerce-frontend/internal/domain"
)

type AuthClient struct {
	c *Client
}

func NewAuthClient(c *Client) *AuthClient {
	return &AuthClient{c: c}
}

func (a *AuthClient) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error) {
	return do[*domain.LoginResponse](ctx, a.c, http.MethodPost, "/auth/login", nil, req)
}

func (a *AuthClient) Register(ctx context.Context, req domain.RegisterRequest) (*domain.User, error) {
	return do[*domain.User](ctx, a.c, http.MethodPost, "/auth/register", nil, req)
}

// CurrentUser re-fetches the identity behind the current token.
func (a *AuthClient) CurrentUser(ctx context.Context) (*domain.User, error) {
	return do[*domain.User](ctx, a.c, http.MethodGet, "/auth/me", nil, nil)
}
