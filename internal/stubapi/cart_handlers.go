package stubapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fernandoemejia/ecommerce-frontend/internal/domain"
)

func (s *Server) getCart(w http.ResponseWriter, r *http.Request) {
	s.m.Lock()
	defer s.m.Unlock()
	respondJSON(w, http.StatusOK, s.cartFor(userIDFrom(r.Context())))
}

func (s *Server) addCartItem(w http.ResponseWriter, r *http.Request) {
	var req domain.AddToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Quantity < 1 {
		respondError(w, http.StatusBadRequest, "Quantity must be at least 1")
		return
	}

	s.m.Lock()
	defer s.m.Unlock()

	product := s.productNoLock(req.ProductID)
	if product == nil {
		respondError(w, http.StatusNotFound, "Product not found")
		return
	}

	cart := s.cartFor(userIDFrom(r.Context()))

	requested := req.Quantity
	for i := range cart.Items {
		if cart.Items[i].ProductID == req.ProductID {
			requested += cart.Items[i].Quantity
		}
	}
	if requested > product.StockQuantity {
		respondError(w, http.StatusBadRequest, "Insufficient stock for "+product.Name)
		return
	}

	added := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == req.ProductID {
			cart.Items[i].Quantity += req.Quantity
			added = true
			break
		}
	}
	if !added {
		s.nextCartItem++
		cart.Items = append(cart.Items, domain.CartItem{
			ID:          s.nextCartItem,
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    req.Quantity,
			UnitPrice:   product.EffectivePrice,
		})
	}

	s.recompute(cart)
	respondJSON(w, http.StatusCreated, cart)
}

func (s *Server) updateCartItem(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid product id")
		return
	}
	var req domain.UpdateCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Quantity < 1 {
		respondError(w, http.StatusBadRequest, "Quantity must be at least 1")
		return
	}

	s.m.Lock()
	defer s.m.Unlock()

	product := s.productNoLock(productID)
	if product == nil {
		respondError(w, http.StatusNotFound, "Product not found")
		return
	}
	if req.Quantity > product.StockQuantity {
		respondError(w, http.StatusBadRequest, "Insufficient stock for "+product.Name)
		return
	}

	cart := s.cartFor(userIDFrom(r.Context()))
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity = req.Quantity
			s.recompute(cart)
			respondJSON(w, http.StatusOK, cart)
			return
		}
	}
	respondError(w, http.StatusNotFound, "Item not in cart")
}

func (s *Server) removeCartItem(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	s.m.Lock()
	defer s.m.Unlock()

	cart := s.cartFor(userIDFrom(r.Context()))
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			s.recompute(cart)
			respondJSON(w, http.StatusOK, cart)
			return
		}
	}
	respondError(w, http.StatusNotFound, "Item not in cart")
}

func (s *Server) clearCart(w http.ResponseWriter, r *http.Request) {
	s.m.Lock()
	defer s.m.Unlock()

	cart := s.cartFor(userIDFrom(r.Context()))
	cart.Items = nil
	s.recompute(cart)
	respondJSON(w, http.StatusOK, cart)
}

func (s *Server) cartFor(userID int64) *domain.Cart {
	cart, ok := s.carts[userID]
	if !ok {
		cart = &domain.Cart{ID: userID, UserID: userID, Items: []domain.CartItem{}}
		s.carts[userID] = cart
	}
	return cart
}

// recompute fills in everything the real server owns: line totals, cart
// totals, stock flags.
func (s *Server) recompute(cart *domain.Cart) {
	cart.TotalAmount = 0
	cart.TotalItems = 0
	for i := range cart.Items {
		item := &cart.Items[i]
		if p := s.productNoLock(item.ProductID); p != nil {
			item.UnitPrice = p.EffectivePrice
			item.InStock = p.StockQuantity >= item.Quantity
			item.AvailableStock = p.StockQuantity
		}
		item.TotalPrice = item.UnitPrice * float64(item.Quantity)
		cart.TotalAmount += item.TotalPrice
		cart.TotalItems += item.Quantity
	}
}

func (s *Server) productNoLock(id int64) *domain.Product {
	for i := range s.products {
		if s.products[i].ID == id {
			return &s.products[i]
		}
	}
	return nil
}
