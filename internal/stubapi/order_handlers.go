package stubapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/fernandoemejia/ecommerce-frontend/internal/domain"
)

func (s *Server) checkout(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.ShippingAddress) == "" {
		respondError(w, http.StatusBadRequest, "Shipping address is required")
		return
	}

	userID := userIDFrom(r.Context())

	s.m.Lock()
	defer s.m.Unlock()

	cart := s.cartFor(userID)
	if len(cart.Items) == 0 {
		respondError(w, http.StatusBadRequest, "Cart is empty")
		return
	}

	var orderItems []domain.OrderItem
	for _, item := range cart.Items {
		product := s.productNoLock(item.ProductID)
		if product == nil || product.StockQuantity < item.Quantity {
			respondError(w, http.StatusBadRequest, "Insufficient stock for "+item.ProductName)
			return
		}
		orderItems = append(orderItems, domain.OrderItem{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			ProductSKU:  product.SKU,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.TotalPrice,
		})
	}

	// stock committed at order time
	for _, item := range cart.Items {
		product := s.productNoLock(item.ProductID)
		product.StockQuantity -= item.Quantity
		product.InStock = product.StockQuantity > 0
	}

	order := s.newOrder(userID, orderItems, req)

	cart.Items = nil
	s.recompute(cart)

	respondJSON(w, http.StatusCreated, order)
}

func (s *Server) createOrder(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.ShippingAddress) == "" {
		respondError(w, http.StatusBadRequest, "Shipping address is required")
		return
	}
	if len(req.Items) == 0 {
		respondError(w, http.StatusBadRequest, "Order has no items")
		return
	}

	s.m.Lock()
	defer s.m.Unlock()

	var orderItems []domain.OrderItem
	for _, item := range req.Items {
		product := s.productNoLock(item.ProductID)
		if product == nil {
			respondError(w, http.StatusNotFound, "Product not found")
			return
		}
		if item.Quantity < 1 || product.StockQuantity < item.Quantity {
			respondError(w, http.StatusBadRequest, "Insufficient stock for "+product.Name)
			return
		}
		orderItems = append(orderItems, domain.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			ProductSKU:  product.SKU,
			Quantity:    item.Quantity,
			UnitPrice:   product.EffectivePrice,
			TotalPrice:  product.EffectivePrice * float64(item.Quantity),
		})
	}
	for i, item := range req.Items {
		product := s.productNoLock(item.ProductID)
		product.StockQuantity -= item.Quantity
		product.InStock = product.StockQuantity > 0
		orderItems[i].ID = int64(i + 1)
	}

	order := s.newOrder(userIDFrom(r.Context()), orderItems, req)
	respondJSON(w, http.StatusCreated, order)
}

func (s *Server) newOrder(userID int64, items []domain.OrderItem, req domain.CreateOrderRequest) *domain.Order {
	s.nextOrderID++

	var subtotal float64
	var totalItems int
	for _, item := range items {
		subtotal += item.TotalPrice
		totalItems += item.Quantity
	}

	order := &domain.Order{
		ID:              s.nextOrderID,
		OrderNumber:     fmt.Sprintf("ORD-%s", strings.ToUpper(uuid.NewString()[:8])),
		UserID:          userID,
		OrderItems:      items,
		Status:          domain.OrderStatusPending,
		Subtotal:        subtotal,
		TotalAmount:     subtotal,
		ShippingAddress: req.ShippingAddress,
		BillingAddress:  req.BillingAddress,
		Notes:           req.Notes,
		TotalItems:      totalItems,
		CreatedAt:       time.Now().UTC().Format(time.RFC3339),
	}
	s.orders[order.ID] = order
	return order
}

func (s *Server) myOrders(w http.ResponseWriter, r *http.Request) {
	userID := userIDFrom(r.Context())
	page, size := paging(r)

	s.m.Lock()
	defer s.m.Unlock()

	mine := []domain.Order{}
	for _, o := range s.orders {
		if o.UserID == userID {
			mine = append(mine, *o)
		}
	}
	sort.Slice(mine, func(i, j int) bool { return mine[i].ID > mine[j].ID })

	total := len(mine)
	start := page * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	respondJSON(w, http.StatusOK, pageEnvelope{
		Content:       mine[start:end],
		TotalPages:    (total + size - 1) / size,
		TotalElements: int64(total),
		PageNumber:    page,
	})
}

func (s *Server) orderByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "orderID"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	s.m.Lock()
	defer s.m.Unlock()

	order, ok := s.orders[id]
	if !ok || order.UserID != userIDFrom(r.Context()) {
		respondError(w, http.StatusNotFound, "Order not found")
		return
	}
	respondJSON(w, http.StatusOK, order)
}

func (s *Server) orderByNumber(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "orderNumber")

	s.m.Lock()
	defer s.m.Unlock()

	for _, order := range s.orders {
		if order.OrderNumber == number && order.UserID == userIDFrom(r.Context()) {
			respondJSON(w, http.StatusOK, order)
			return
		}
	}
	respondError(w, http.StatusNotFound, "Order not found")
}

func (s *Server) cancelOrder(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "orderID"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	s.m.Lock()
	defer s.m.Unlock()

	order, ok := s.orders[id]
	if !ok || order.UserID != userIDFrom(r.Context()) {
		respondError(w, http.StatusNotFound, "Order not found")
		return
	}
	if order.Status != domain.OrderStatusPending && order.Status != domain.OrderStatusConfirmed {
		respondError(w, http.StatusBadRequest, "Order can no longer be cancelled")
		return
	}

	order.Status = domain.OrderStatusCancelled
	respondJSON(w, http.StatusOK, order)
}

func (s *Server) createPayment(w http.ResponseWriter, r *http.Request) {
	var req domain.CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.PaymentMethod == "" {
		respondError(w, http.StatusBadRequest, "Payment method is required")
		return
	}

	s.m.Lock()
	defer s.m.Unlock()

	order, ok := s.orders[req.OrderID]
	if !ok || order.UserID != userIDFrom(r.Context()) {
		respondError(w, http.StatusNotFound, "Order not found")
		return
	}
	if order.Payment != nil {
		respondError(w, http.StatusConflict, "Order already has a payment")
		return
	}

	s.nextPaymentID++
	payment := &domain.Payment{
		ID:            s.nextPaymentID,
		OrderID:       order.ID,
		OrderNumber:   order.OrderNumber,
		Amount:        order.TotalAmount,
		PaymentMethod: req.PaymentMethod,
		Status:        domain.PaymentStatusPending,
		Currency:      "USD",
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
	}
	s.payments[payment.ID] = payment
	order.Payment = payment

	respondJSON(w, http.StatusCreated, payment)
}

func (s *Server) processPayment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "paymentID"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid payment id")
		return
	}
	var req domain.ProcessPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	s.m.Lock()
	defer s.m.Unlock()

	payment, ok := s.payments[id]
	if !ok {
		respondError(w, http.StatusNotFound, "Payment not found")
		return
	}
	if payment.Status != domain.PaymentStatusPending {
		respondError(w, http.StatusBadRequest, "Payment is not pending")
		return
	}

	payment.Status = domain.PaymentStatusCompleted
	payment.TransactionID = "txn-" + uuid.NewString()
	payment.ProviderReference = req.ProviderReference
	payment.PaidAt = time.Now().UTC().Format(time.RFC3339)

	if order, ok := s.orders[payment.OrderID]; ok {
		order.Status = domain.OrderStatusConfirmed
	}

	respondJSON(w, http.StatusOK, payment)
}

func (s *Server) paymentByOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.ParseInt(chi.URLParam(r, "orderID"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	s.m.Lock()
	defer s.m.Unlock()

	order, ok := s.orders[orderID]
	if !ok || order.UserID != userIDFrom(r.Context()) || order.Payment == nil {
		respondError(w, http.StatusNotFound, "Payment not found")
		return
	}
	respondJSON(w, http.StatusOK, order.Payment)
}
