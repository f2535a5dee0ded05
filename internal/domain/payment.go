package domain

type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "PENDING"
	PaymentStatusProcessing PaymentStatus = "PROCESSING"
	PaymentStatusCompleted  PaymentStatus = "COMPLETED"
	PaymentStatusFailed     PaymentStatus = "FAILED"
	PaymentStatusRefunded   PaymentStatus = "REFUNDED"
	PaymentStatusCancelled  PaymentStatus = "CANCELLED"
)

func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentStatusCompleted || s == PaymentStatusFailed ||
		s == PaymentStatusRefunded || s == PaymentStatusCancelled
}

func (s PaymentStatus) String() string {
	return string(s)
}

type PaymentMethod string

const (
	PaymentMethodCreditCard     PaymentMethod = "CREDIT_CARD"
	PaymentMethodDebitCard      PaymentMethod = "DEBIT_CARD"
	PaymentMethodPayPal         PaymentMethod = "PAYPAL"
	PaymentMethodBankTransfer   PaymentMethod = "BANK_TRANSFER"
	PaymentMethodCashOnDelivery PaymentMethod = "CASH_ON_DELIVERY"
	PaymentMethodCrypto         PaymentMethod = "CRYPTO"
)

type Payment struct {
	ID                int64         `json:"id"`
	TransactionID     string        `json:"transactionId"`
	OrderID           int64         `json:"orderId"`
	OrderNumber       string        `json:"orderNumber,omitempty"`
	Amount            float64       `json:"amount"`
	PaymentMethod     PaymentMethod `json:"paymentMethod"`
	Status            PaymentStatus `json:"status"`
	PaymentProvider   string        `json:"paymentProvider,omitempty"`
	ProviderReference string        `json:"providerReference,omitempty"`
	FailureReason     string        `json:"failureReason,omitempty"`
	Currency          string        `json:"currency,omitempty"`
	CreatedAt         string        `json:"createdAt,omitempty"`
	UpdatedAt         string        `json:"updatedAt,omitempty"`
	PaidAt            string        `json:"paidAt,omitempty"`
	RefundedAt        string        `json:"refundedAt,omitempty"`
}

type CreatePaymentRequest struct {
	OrderID         int64         `json:"orderId"`
	PaymentMethod   PaymentMethod `json:"paymentMethod"`
	PaymentProvider string        `json:"paymentProvider,omitempty"`
}

type ProcessPaymentRequest struct {
	ProviderReference string `json:"providerReference,omitempty"`
}
