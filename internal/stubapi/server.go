// Package stubapi is an in-memory stand-in for the remote storefront
// API, close enough for local development and integration tests: same
// envelope, same paths, same business rejections (stock checks, cancel
// rules), server-computed cart totals.
package stubapi

import (
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/fernandoemejia/ecommerce-frontend/internal/domain"
)

type account struct {
	user     domain.User
	password string
}

type Server struct {
	m sync.Mutex

	accounts map[string]*account // by email
	tokens   map[string]int64    // bearer token -> user id

	products   []domain.Product
	categories []domain.Category

	carts    map[int64]*domain.Cart // by user id
	orders   map[int64]*domain.Order
	payments map[int64]*domain.Payment

	nextUserID    int64
	nextCartItem  int64
	nextOrderID   int64
	nextPaymentID int64
}

func New() *Server {
	s := &Server{
		accounts: make(map[string]*account),
		tokens:   make(map[string]int64),
		carts:    make(map[int64]*domain.Cart),
		orders:   make(map[int64]*domain.Order),
		payments: make(map[int64]*domain.Payment),
	}
	s.seed()
	return s
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", s.login)
		r.Post("/auth/register", s.register)

		r.Get("/products", s.listProducts)
		r.Get("/products/featured", s.featuredProducts)
		r.Get("/products/search", s.searchProducts)
		r.Get("/products/price-range", s.productsByPriceRange)
		r.Get("/products/category/{categoryID}", s.productsByCategory)
		r.Get("/products/{productID}", s.productByID)

		r.Get("/categories", s.listCategories)
		r.Get("/categories/root", s.rootCategories)
		r.Get("/categories/{categoryID}", s.categoryByID)

		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth)

			r.Get("/auth/me", s.currentUser)

			r.Get("/cart", s.getCart)
			r.Post("/cart/items", s.addCartItem)
			r.Put("/cart/items/{productID}", s.updateCartItem)
			r.Delete("/cart/items/{productID}", s.removeCartItem)
			r.Delete("/cart", s.clearCart)

			r.Post("/orders/checkout", s.checkout)
			r.Post("/orders", s.createOrder)
			r.Get("/orders/my-orders", s.myOrders)
			r.Get("/orders/number/{orderNumber}", s.orderByNumber)
			r.Get("/orders/{orderID}", s.orderByID)
			r.Post("/orders/{orderID}/cancel", s.cancelOrder)

			r.Post("/payments", s.createPayment)
			r.Post("/payments/{paymentID}/process", s.processPayment)
			r.Get("/payments/order/{orderID}", s.paymentByOrder)
		})
	})

	return r
}
