package catalog

import (
	"context"
	"strings"

	"github.com/fernandoemejia/ecommerce-frontend/internal/domain"
)

// Page/size defaults mirror the API's own.
const (
	DefaultPage = 0
	DefaultSize = 20
)

type catalogAPI interface {
	Products(ctx context.Context, page, size int) (*domain.Page[domain.Product], error)
	ProductByID(ctx context.Context, id int64) (*domain.Product, error)
	ProductsByCategory(ctx context.Context, categoryID int64, page, size int) (*domain.Page[domain.Product], error)
	FeaturedProducts(ctx context.Context) ([]domain.Product, error)
	SearchProducts(ctx context.Context, keyword string, page, size int) (*domain.Page[domain.Product], error)
	ProductsByPriceRange(ctx context.Context, minPrice, maxPrice float64, page, size int) (*domain.Page[domain.Product], error)
	Categories(ctx context.Context) ([]domain.Category, error)
	CategoryByID(ctx context.Context, id int64) (*domain.Category, error)
	RootCategories(ctx context.Context) ([]domain.Category, error)
}

// Service is a stateless pass-through over the catalog endpoints. Every
// call is a fresh fetch; callers memoize if they need to.
type Service struct {
	api catalogAPI
}

func NewService(api catalogAPI) *Service {
	return &Service{api: api}
}

func clampPaging(page, size int) (int, int) {
	if page < 0 {
		page = DefaultPage
	}
	if size <= 0 {
		size = DefaultSize
	}
	return page, size
}

func (s *Service) Products(ctx context.Context, page, size int) (*domain.Page[domain.Product], error) {
	page, size = clampPaging(page, size)
	return s.api.Products(ctx, page, size)
}

func (s *Service) ProductByID(ctx context.Context, id int64) (*domain.Product, error) {
	return s.api.ProductByID(ctx, id)
}

func (s *Service) ProductsByCategory(ctx context.Context, categoryID int64, page, size int) (*domain.Page[domain.Product], error) {
	page, size = clampPaging(page, size)
	return s.api.ProductsByCategory(ctx, categoryID, page, size)
}

func (s *Service) FeaturedProducts(ctx context.Context) ([]domain.Product, error) {
	return s.api.FeaturedProducts(ctx)
}

func (s *Service) SearchProducts(ctx context.Context, keyword string, page, size int) (*domain.Page[domain.Product], error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, ErrEmptyKeyword
	}
	page, size = clampPaging(page, size)
	return s.api.SearchProducts(ctx, keyword, page, size)
}

func (s *Service) ProductsByPriceRange(ctx context.Context, minPrice, maxPrice float64, page, size int) (*domain.Page[domain.Product], error) {
	if minPrice < 0 || maxPrice < minPrice {
		return nil, ErrInvalidPriceRange
	}
	page, size = clampPaging(page, size)
	return s.api.ProductsByPriceRange(ctx, minPrice, maxPrice, page, size)
}

func (s *Service) Categories(ctx context.Context) ([]domain.Category, error) {
	return s.api.Categories(ctx)
}

func (s *Service) CategoryByID(ctx context.Context, id int64) (*domain.Category, error) {
	return s.api.CategoryByID(ctx, id)
}

func (s *Service) RootCategories(ctx context.Context) ([]domain.Category, error) {
	return s.api.RootCategories(ctx)
}
