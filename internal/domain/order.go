package domain

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusConfirmed  OrderStatus = "CONFIRMED"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusShipped    OrderStatus = "SHIPPED"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
	OrderStatusRefunded   OrderStatus = "REFUNDED"
)

func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled || s == OrderStatusRefunded
}

// String representation (for logging)
func (s OrderStatus) String() string {
	return string(s)
}

type OrderItem struct {
	ID             int64   `json:"id"`
	ProductID      int64   `json:"productId"`
	ProductName    string  `json:"productName"`
	ProductSKU     string  `json:"productSku,omitempty"`
	Quantity       int     `json:"quantity"`
	UnitPrice      float64 `json:"unitPrice"`
	DiscountAmount float64 `json:"discountAmount,omitempty"`
	TotalPrice     float64 `json:"totalPrice"`
}

// Order is a read-only projection of a server-side order. Status
// transitions are server-authoritative; this side only reads status or
// requests a cancel.
type Order struct {
	ID              int64       `json:"id"`
	OrderNumber     string      `json:"orderNumber"`
	UserID          int64       `json:"userId"`
	UserEmail       string      `json:"userEmail,omitempty"`
	OrderItems      []OrderItem `json:"orderItems"`
	Payment         *Payment    `json:"payment,omitempty"`
	Status          OrderStatus `json:"status"`
	Subtotal        float64     `json:"subtotal"`
	TaxAmount       float64     `json:"taxAmount"`
	ShippingAmount  float64     `json:"shippingAmount"`
	DiscountAmount  float64     `json:"discountAmount"`
	TotalAmount     float64     `json:"totalAmount"`
	ShippingAddress string      `json:"shippingAddress"`
	BillingAddress  string      `json:"billingAddress,omitempty"`
	Notes           string      `json:"notes,omitempty"`
	TrackingNumber  string      `json:"trackingNumber,omitempty"`
	TotalItems      int         `json:"totalItems"`
	CreatedAt       string      `json:"createdAt,omitempty"`
	UpdatedAt       string      `json:"updatedAt,omitempty"`
	ShippedAt       string      `json:"shippedAt,omitempty"`
	DeliveredAt     string      `json:"deliveredAt,omitempty"`
}

type OrderItemRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

type CreateOrderRequest struct {
	Items           []OrderItemRequest `json:"items,omitempty"`
	ShippingAddress string             `json:"shippingAddress"`
	BillingAddress  string             `json:"billingAddress,omitempty"`
	Notes           string             `json:"notes,omitempty"`
}
