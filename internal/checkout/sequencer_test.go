package checkout

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fernandoemejia/ecommerce-frontend/internal/api"
	"github.com/fernandoemejia/ecommerce-frontend/internal/domain"
)

type mockOrdersAPI struct {
	m        sync.Mutex
	order    *domain.Order
	err      error
	requests []domain.CreateOrderRequest
}

func (m *mockOrdersAPI) Checkout(_ context.Context, req domain.CreateOrderRequest) (*domain.Order, error) {
	m.m.Lock()
	defer m.m.Unlock()
	m.requests = append(m.requests, req)
	if m.err != nil {
		return nil, m.err
	}
	return m.order, nil
}

type mockPaymentsAPI struct {
	m          sync.Mutex
	payment    *domain.Payment
	createErr  error
	processErr error
	processed  []string // provider references seen
	createReqs []domain.CreatePaymentRequest
}

func (m *mockPaymentsAPI) Create(_ context.Context, req domain.CreatePaymentRequest) (*domain.Payment, error) {
	m.m.Lock()
	defer m.m.Unlock()
	m.createReqs = append(m.createReqs, req)
	if m.createErr != nil {
		return nil, m.createErr
	}
	return m.payment, nil
}

func (m *mockPaymentsAPI) Process(_ context.Context, paymentID int64, providerReference string) (*domain.Payment, error) {
	m.m.Lock()
	defer m.m.Unlock()
	m.processed = append(m.processed, providerReference)
	if m.processErr != nil {
		return nil, m.processErr
	}
	p := *m.payment
	p.ID = paymentID
	p.Status = domain.PaymentStatusCompleted
	p.ProviderReference = providerReference
	return &p, nil
}

type mockNotifier struct {
	m        sync.Mutex
	messages []string
	kinds    []string
}

func (m *mockNotifier) record(kind, msg string) {
	m.m.Lock()
	defer m.m.Unlock()
	m.kinds = append(m.kinds, kind)
	m.messages = append(m.messages, msg)
}

func (m *mockNotifier) Success(msg string) { m.record("success", msg) }
func (m *mockNotifier) Warning(msg string) { m.record("warning", msg) }
func (m *mockNotifier) Error(msg string)   { m.record("error", msg) }

func fixtureOrder() *domain.Order {
	return &domain.Order{
		ID: 42, OrderNumber: "ORD-TEST42", UserID: 1,
		Status: domain.OrderStatusPending, TotalAmount: 99.99,
	}
}

func fixturePayment() *domain.Payment {
	return &domain.Payment{
		ID: 7, OrderID: 42, Amount: 99.99,
		PaymentMethod: domain.PaymentMethodCreditCard,
		Status:        domain.PaymentStatusPending,
	}
}

func validRequest() Request {
	return Request{
		ShippingAddress: "1 Test Lane",
		PaymentMethod:   domain.PaymentMethodCreditCard,
	}
}

func TestAllStepsSucceed(t *testing.T) {
	orders := &mockOrdersAPI{order: fixtureOrder()}
	payments := &mockPaymentsAPI{payment: fixturePayment()}
	notify := &mockNotifier{}
	seq := NewSequencer(orders, payments, notify, zap.NewNop())

	result, err := seq.PlaceOrder(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, OutcomeSucceeded, result.Outcome)
	assert.Equal(t, StatusCompleted, result.Status)
	require.NotNil(t, result.Order)
	require.NotNil(t, result.Payment)
	assert.Equal(t, int64(42), result.Order.ID)
	assert.Equal(t, int64(7), result.Payment.ID)
	assert.Equal(t, domain.PaymentStatusCompleted, result.Payment.Status)
	assert.True(t, result.OrderPlaced())
	assert.NoError(t, result.Err)

	require.Equal(t, []string{"success"}, notify.kinds)
	assert.Equal(t, "Order placed successfully!", notify.messages[0])
	assert.Equal(t, "Order placed successfully!", result.Message)

	// payment record was created for the order the first step returned
	require.Len(t, payments.createReqs, 1)
	assert.Equal(t, int64(42), payments.createReqs[0].OrderID)
}

func TestOrderCreateFails(t *testing.T) {
	orders := &mockOrdersAPI{err: &api.Error{StatusCode: 400, Message: "Cart is empty"}}
	payments := &mockPaymentsAPI{payment: fixturePayment()}
	notify := &mockNotifier{}
	seq := NewSequencer(orders, payments, notify, zap.NewNop())

	result, err := seq.PlaceOrder(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, OutcomeOrderFailed, result.Outcome)
	assert.Equal(t, StatusFailed, result.Status)
	assert.Nil(t, result.Order)
	assert.Nil(t, result.Payment)
	assert.False(t, result.OrderPlaced())
	assert.Error(t, result.Err)

	// the server's own message is shown verbatim
	assert.Equal(t, "Cart is empty", result.Message)
	require.Equal(t, []string{"error"}, notify.kinds)

	// no later step was attempted
	assert.Empty(t, payments.createReqs)
	assert.Empty(t, payments.processed)
}

func TestOrderCreateFailsWithoutServerMessage(t *testing.T) {
	orders := &mockOrdersAPI{err: errors.New("connection refused")}
	notify := &mockNotifier{}
	seq := NewSequencer(orders, &mockPaymentsAPI{}, notify, zap.NewNop())

	result, err := seq.PlaceOrder(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, OutcomeOrderFailed, result.Outcome)
	assert.Equal(t, "Failed to place order", result.Message)
}

func TestPaymentCreateFails(t *testing.T) {
	orders := &mockOrdersAPI{order: fixtureOrder()}
	payments := &mockPaymentsAPI{createErr: errors.New("payments unavailable")}
	notify := &mockNotifier{}
	seq := NewSequencer(orders, payments, notify, zap.NewNop())

	result, err := seq.PlaceOrder(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, OutcomePaymentPending, result.Outcome)
	assert.Equal(t, StatusCompleted, result.Status)
	require.NotNil(t, result.Order)
	assert.Equal(t, int64(42), result.Order.ID)
	assert.Nil(t, result.Payment)
	assert.True(t, result.OrderPlaced())
	assert.Error(t, result.Err)

	assert.Equal(t, "Order placed! Payment pending.", result.Message)
	require.Equal(t, []string{"warning"}, notify.kinds)

	// processing was never attempted without a payment record
	assert.Empty(t, payments.processed)
}

func TestPaymentProcessFails(t *testing.T) {
	orders := &mockOrdersAPI{order: fixtureOrder()}
	payments := &mockPaymentsAPI{payment: fixturePayment(), processErr: errors.New("provider timeout")}
	notify := &mockNotifier{}
	seq := NewSequencer(orders, payments, notify, zap.NewNop())

	result, err := seq.PlaceOrder(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, OutcomeProcessingPending, result.Outcome)
	assert.Equal(t, StatusCompleted, result.Status)
	require.NotNil(t, result.Order)
	require.NotNil(t, result.Payment)
	assert.Equal(t, int64(42), result.Order.ID)
	assert.Equal(t, int64(7), result.Payment.ID)
	assert.Error(t, result.Err)

	assert.Equal(t, "Order placed but payment processing pending", result.Message)
	require.Equal(t, []string{"warning"}, notify.kinds)

	// exactly one attempt, never retried
	assert.Len(t, payments.processed, 1)
}

func TestProviderReferenceSynthesizedWhenAbsent(t *testing.T) {
	orders := &mockOrdersAPI{order: fixtureOrder()}
	payments := &mockPaymentsAPI{payment: fixturePayment()}
	seq := NewSequencer(orders, payments, &mockNotifier{}, zap.NewNop())

	_, err := seq.PlaceOrder(context.Background(), validRequest())
	require.NoError(t, err)

	require.Len(t, payments.processed, 1)
	assert.Contains(t, payments.processed[0], "SIM-")
}

func TestProviderReferencePassedThrough(t *testing.T) {
	orders := &mockOrdersAPI{order: fixtureOrder()}
	payments := &mockPaymentsAPI{payment: fixturePayment()}
	seq := NewSequencer(orders, payments, &mockNotifier{}, zap.NewNop())

	req := validRequest()
	req.ProviderReference = "real-ref-123"
	_, err := seq.PlaceOrder(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, payments.processed, 1)
	assert.Equal(t, "real-ref-123", payments.processed[0])
}

func TestValidationBeforeAnyNetworkCall(t *testing.T) {
	orders := &mockOrdersAPI{order: fixtureOrder()}
	seq := NewSequencer(orders, &mockPaymentsAPI{}, &mockNotifier{}, zap.NewNop())

	_, err := seq.PlaceOrder(context.Background(), Request{PaymentMethod: domain.PaymentMethodPayPal})
	assert.ErrorIs(t, err, ErrMissingShippingAddress)

	_, err = seq.PlaceOrder(context.Background(), Request{ShippingAddress: "1 Test Lane"})
	assert.ErrorIs(t, err, ErrMissingPaymentMethod)

	assert.Empty(t, orders.requests)
}

func TestBillingDefaultsToShipping(t *testing.T) {
	orders := &mockOrdersAPI{order: fixtureOrder()}
	seq := NewSequencer(orders, &mockPaymentsAPI{payment: fixturePayment()}, &mockNotifier{}, zap.NewNop())

	_, err := seq.PlaceOrder(context.Background(), validRequest())
	require.NoError(t, err)

	require.Len(t, orders.requests, 1)
	assert.Equal(t, "1 Test Lane", orders.requests[0].BillingAddress)
}
