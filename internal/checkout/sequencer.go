package checkout

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fernandoemejia/ecommerce-frontend/internal/api"
	"github.com/fernandoemejia/ecommerce-frontend/internal/domain"
)

type ordersAPI interface {
	Checkout(ctx context.Context, req domain.CreateOrderRequest) (*domain.Order, error)
}

type paymentsAPI interface {
	Create(ctx context.Context, req domain.CreatePaymentRequest) (*domain.Payment, error)
	Process(ctx context.Context, paymentID int64, providerReference string) (*domain.Payment, error)
}

type notifier interface {
	Success(message string)
	Warning(message string)
	Error(message string)
}

// Outcome classifies where a checkout attempt ended up. The three
// failure points leave the order in three different already-committed
// server states, so they are never collapsed into one generic failure.
type Outcome string

const (
	// OutcomeOrderFailed: nothing was created, no partial state exists.
	OutcomeOrderFailed Outcome = "ORDER_FAILED"
	// OutcomePaymentPending: the order exists but no payment record
	// does. The user retries payment from the order page.
	OutcomePaymentPending Outcome = "PAYMENT_PENDING"
	// OutcomeProcessingPending: order and payment record exist but the
	// charge did not go through. Recoverable later, no rollback.
	OutcomeProcessingPending Outcome = "PROCESSING_PENDING"
	OutcomeSucceeded         Outcome = "SUCCEEDED"
)

type Request struct {
	ShippingAddress string
	BillingAddress  string
	Notes           string
	PaymentMethod   domain.PaymentMethod
	// ProviderReference is the payment provider's reference. Left empty,
	// a simulated one is synthesized.
	ProviderReference string
}

type Result struct {
	Outcome Outcome
	Status  Status
	Order   *domain.Order
	Payment *domain.Payment
	// Message is what the user sees for this outcome.
	Message string
	// Err is the step failure behind a non-success outcome.
	Err error
}

func (r *Result) OrderPlaced() bool {
	return r.Outcome != OutcomeOrderFailed
}

// Sequencer runs the three dependent checkout steps in strict order:
// create order, create payment, process payment. Step n+1 is never
// issued before step n's response is observed, and nothing is retried
// automatically.
type Sequencer struct {
	orders   ordersAPI
	payments paymentsAPI
	notify   notifier
	logger   *zap.Logger
}

func NewSequencer(orders ordersAPI, payments paymentsAPI, notify notifier, logger *zap.Logger) *Sequencer {
	return &Sequencer{
		orders:   orders,
		payments: payments,
		notify:   notify,
		logger:   logger,
	}
}

// PlaceOrder runs one checkout attempt from the current server-side cart
// contents. Validation failures return an error before any network call;
// everything after that resolves to a Result.
func (s *Sequencer) PlaceOrder(ctx context.Context, req Request) (*Result, error) {
	if strings.TrimSpace(req.ShippingAddress) == "" {
		return nil, ErrMissingShippingAddress
	}
	if req.PaymentMethod == "" {
		return nil, ErrMissingPaymentMethod
	}
	billing := req.BillingAddress
	if billing == "" {
		billing = req.ShippingAddress
	}

	attempt := &attempt{status: StatusNotStarted}

	// step 1: create the order
	if err := attempt.advance(StatusOrderCreating); err != nil {
		return nil, err
	}
	order, err := s.orders.Checkout(ctx, domain.CreateOrderRequest{
		ShippingAddress: req.ShippingAddress,
		BillingAddress:  billing,
		Notes:           req.Notes,
	})
	if err != nil {
		if errAdv := attempt.advance(StatusFailed); errAdv != nil {
			return nil, errAdv
		}
		s.logger.Warn("checkout: order not placed", zap.Error(err))
		msg := api.DisplayMessage(err, "Failed to place order")
		s.notify.Error(msg)
		return &Result{
			Outcome: OutcomeOrderFailed,
			Status:  attempt.status,
			Message: msg,
			Err:     err,
		}, nil
	}
	if err := attempt.advance(StatusOrderCreated); err != nil {
		return nil, err
	}
	s.logger.Info("checkout: order created",
		zap.Int64("order_id", order.ID), zap.String("order_number", order.OrderNumber))

	// step 2: create the payment record
	if err := attempt.advance(StatusPaymentCreating); err != nil {
		return nil, err
	}
	payment, err := s.payments.Create(ctx, domain.CreatePaymentRequest{
		OrderID:       order.ID,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		// the order is already committed server-side, no rollback
		if errAdv := attempt.advance(StatusCompleted); errAdv != nil {
			return nil, errAdv
		}
		s.logger.Warn("checkout: payment record not created",
			zap.Int64("order_id", order.ID), zap.Error(err))
		msg := "Order placed! Payment pending."
		s.notify.Warning(msg)
		return &Result{
			Outcome: OutcomePaymentPending,
			Status:  attempt.status,
			Order:   order,
			Message: msg,
			Err:     err,
		}, nil
	}
	if err := attempt.advance(StatusPaymentCreated); err != nil {
		return nil, err
	}

	// step 3: process the payment
	if err := attempt.advance(StatusPaymentProcessing); err != nil {
		return nil, err
	}
	ref := req.ProviderReference
	if ref == "" {
		ref = "SIM-" + uuid.NewString()
	}
	processed, err := s.payments.Process(ctx, payment.ID, ref)
	if err != nil {
		if errAdv := attempt.advance(StatusCompleted); errAdv != nil {
			return nil, errAdv
		}
		s.logger.Warn("checkout: payment processing pending",
			zap.Int64("order_id", order.ID), zap.Int64("payment_id", payment.ID), zap.Error(err))
		msg := "Order placed but payment processing pending"
		s.notify.Warning(msg)
		return &Result{
			Outcome: OutcomeProcessingPending,
			Status:  attempt.status,
			Order:   order,
			Payment: payment,
			Message: msg,
			Err:     err,
		}, nil
	}
	if err := attempt.advance(StatusCompleted); err != nil {
		return nil, err
	}
	s.logger.Info("checkout: completed",
		zap.Int64("order_id", order.ID), zap.Int64("payment_id", processed.ID))

	msg := "Order placed successfully!"
	s.notify.Success(msg)
	return &Result{
		Outcome: OutcomeSucceeded,
		Status:  attempt.status,
		Order:   order,
		Payment: processed,
		Message: msg,
	}, nil
}

type attempt struct {
	status Status
}

func (a *attempt) advance(to Status) error {
	if !CanTransitionTo(a.status, to) {
		return IllegalTransitionError
	}
	a.status = to
	return nil
}
