package cart

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/fernandoemejia/ecommerce-frontend/internal/domain"
)

type cartAPI interface {
	Get(ctx context.Context) (*domain.Cart, error)
	AddItem(ctx context.Context, req domain.AddToCartRequest) (*domain.Cart, error)
	UpdateQuantity(ctx context.Context, productID int64, req domain.UpdateCartItemRequest) (*domain.Cart, error)
	RemoveItem(ctx context.Context, productID int64) (*domain.Cart, error)
	Clear(ctx context.Context) (*domain.Cart, error)
}

// Holder caches the single server-confirmed cart snapshot. Totals, stock
// checks and pricing all live server-side, so every mutation replaces the
// whole snapshot with the server's response and never patches it locally.
// A nil snapshot means "not loaded yet", which is not the same as an
// empty cart.
type Holder struct {
	m        sync.RWMutex
	snapshot *domain.Cart
	api      cartAPI
	sfg      singleflight.Group // collapses concurrent loads into one fetch
	logger   *zap.Logger
}

func NewHolder(api cartAPI, logger *zap.Logger) *Holder {
	return &Holder{
		api:    api,
		logger: logger,
	}
}

// Load fetches the cart. Concurrent callers share one request and one
// response, so identical loads cannot race each other's snapshot swap.
func (h *Holder) Load(ctx context.Context) (*domain.Cart, error) {
	v, err, _ := h.sfg.Do("cart", func() (interface{}, error) {
		snapshot, err := h.api.Get(ctx)
		if err != nil {
			return nil, err
		}
		h.replace(snapshot)
		return snapshot, nil
	})
	if err != nil {
		h.logger.Debug("cart load failed", zap.Error(err))
		return nil, err
	}
	return v.(*domain.Cart), nil
}

// AddItem adds quantity units of a product. The server is the sole
// authority on stock; a rejection leaves the cached snapshot untouched.
func (h *Holder) AddItem(ctx context.Context, productID int64, quantity int) (*domain.Cart, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	snapshot, err := h.api.AddItem(ctx, domain.AddToCartRequest{ProductID: productID, Quantity: quantity})
	if err != nil {
		return nil, err
	}
	h.replace(snapshot)
	return snapshot, nil
}

// SetQuantity changes an item's quantity. Zero is not a removal path;
// callers wanting removal use RemoveItem.
func (h *Holder) SetQuantity(ctx context.Context, productID int64, quantity int) (*domain.Cart, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	snapshot, err := h.api.UpdateQuantity(ctx, productID, domain.UpdateCartItemRequest{Quantity: quantity})
	if err != nil {
		return nil, err
	}
	h.replace(snapshot)
	return snapshot, nil
}

func (h *Holder) RemoveItem(ctx context.Context, productID int64) (*domain.Cart, error) {
	snapshot, err := h.api.RemoveItem(ctx, productID)
	if err != nil {
		return nil, err
	}
	h.replace(snapshot)
	return snapshot, nil
}

func (h *Holder) Clear(ctx context.Context) (*domain.Cart, error) {
	snapshot, err := h.api.Clear(ctx)
	if err != nil {
		return nil, err
	}
	h.replace(snapshot)
	return snapshot, nil
}

// Reset drops the cached snapshot back to "not loaded" without touching
// the server. Used on logout so the next session never sees the previous
// user's cart.
func (h *Holder) Reset() {
	h.m.Lock()
	h.snapshot = nil
	h.m.Unlock()
}

func (h *Holder) Loaded() bool {
	h.m.RLock()
	defer h.m.RUnlock()
	return h.snapshot != nil
}

func (h *Holder) Items() []domain.CartItem {
	h.m.RLock()
	defer h.m.RUnlock()
	if h.snapshot == nil {
		return nil
	}
	items := make([]domain.CartItem, len(h.snapshot.Items))
	copy(items, h.snapshot.Items)
	return items
}

func (h *Holder) Total() float64 {
	h.m.RLock()
	defer h.m.RUnlock()
	if h.snapshot == nil {
		return 0
	}
	return h.snapshot.TotalAmount
}

func (h *Holder) ItemCount() int {
	h.m.RLock()
	defer h.m.RUnlock()
	if h.snapshot == nil {
		return 0
	}
	return h.snapshot.TotalItems
}

// IsEmpty reports whether the loaded cart has no items. The second
// return distinguishes a genuinely empty cart from one that was never
// loaded.
func (h *Holder) IsEmpty() (empty bool, loaded bool) {
	h.m.RLock()
	defer h.m.RUnlock()
	if h.snapshot == nil {
		return false, false
	}
	return len(h.snapshot.Items) == 0, true
}

// Snapshot returns a copy of the cached cart, or nil when not loaded.
func (h *Holder) Snapshot() *domain.Cart {
	h.m.RLock()
	defer h.m.RUnlock()
	if h.snapshot == nil {
		return nil
	}
	c := *h.snapshot
	c.Items = make([]domain.CartItem, len(h.snapshot.Items))
	copy(c.Items, h.snapshot.Items)
	return &c
}

func (h *Holder) replace(snapshot *domain.Cart) {
	h.m.Lock()
	h.snapshot = snapshot
	h.m.Unlock()
}
