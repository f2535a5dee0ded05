package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/fernandoemejia/ecommerce-frontend/internal/domain"
)

type CatalogClient struct {
	c *Client
}

func NewCatalogClient(c *Client) *CatalogClient {
	return &CatalogClient{c: c}
}

func pageQuery(page, size int) url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	return q
}

func (cc *CatalogClient) Products(ctx context.Context, page, size int) (*domain.Page[domain.Product], error) {
	return do[*domain.Page[domain.Product]](ctx, cc.c, http.MethodGet, "/products", pageQuery(page, size), nil)
}

func (cc *CatalogClient) ProductByID(ctx context.Context, id int64) (*domain.Product, error) {
	return do[*domain.Product](ctx, cc.c, http.MethodGet, fmt.Sprintf("/products/%d", id), nil, nil)
}

func (cc *CatalogClient) ProductsByCategory(ctx context.Context, categoryID int64, page, size int) (*domain.Page[domain.Product], error) {
	return do[*domain.Page[domain.Product]](ctx, cc.c, http.MethodGet, fmt.Sprintf("/products/category/%d", categoryID), pageQuery(page, size), nil)
}

func (cc *CatalogClient) FeaturedProducts(ctx context.Context) ([]domain.Product, error) {
	return do[[]domain.Product](ctx, cc.c, http.MethodGet, "/products/featured", nil, nil)
}

func (cc *CatalogClient) SearchProducts(ctx context.Context, keyword string, page, size int) (*domain.Page[domain.Product], error) {
	q := pageQuery(page, size)
	q.Set("keyword", keyword)
	return do[*domain.Page[domain.Product]](ctx, cc.c, http.MethodGet, "/products/search", q, nil)
}

func (cc *CatalogClient) ProductsByPriceRange(ctx context.Context, minPrice, maxPrice float64, page, size int) (*domain.Page[domain.Product], error) {
	q := pageQuery(page, size)
	q.Set("minPrice", strconv.FormatFloat(minPrice, 'f', -1, 64))
	q.Set("maxPrice", strconv.FormatFloat(maxPrice, 'f', -1, 64))
	return do[*domain.Page[domain.Product]](ctx, cc.c, http.MethodGet, "/products/price-range", q, nil)
}

func (cc *CatalogClient) Categories(ctx context.Context) ([]domain.Category, error) {
	return do[[]domain.Category](ctx, cc.c, http.MethodGet, "/categories", nil, nil)
}

func (cc *CatalogClient) CategoryByID(ctx context.Context, id int64) (*domain.Category, error) {
	return do[*domain.Category](ctx, cc.c, http.MethodGet, fmt.Sprintf("/categories/%d", id), nil, nil)
}

func (cc *CatalogClient) RootCategories(ctx context.Context) ([]domain.Category, error) {
	return do[[]domain.Category](ctx, cc.c, http.MethodGet, "/categories/root", nil, nil)
}
