package checkout

// Status tracks one checkout attempt. There is no way back to
// NotStarted within an attempt; a fresh attempt is a new invocation.
type Status string

const (
	StatusNotStarted        Status = "NOT_STARTED"
	StatusOrderCreating     Status = "ORDER_CREATING"
	StatusOrderCreated      Status = "ORDER_CREATED"
	StatusPaymentCreating   Status = "PAYMENT_CREATING"
	StatusPaymentCreated    Status = "PAYMENT_CREATED"
	StatusPaymentProcessing Status = "PAYMENT_PROCESSING"
	StatusCompleted         Status = "COMPLETED"
	StatusFailed            Status = "FAILED"
)

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// String representation (for logging)
func (s Status) String() string {
	return string(s)
}

var transitions = map[Status][]Status{
	StatusNotStarted:    {StatusOrderCreating},
	StatusOrderCreating: {StatusOrderCreated, StatusFailed},
	StatusOrderCreated:  {StatusPaymentCreating},
	// payment-create failure completes the attempt with the order
	// already committed server-side, it is not a rollback path
	StatusPaymentCreating:   {StatusPaymentCreated, StatusCompleted},
	StatusPaymentCreated:    {StatusPaymentProcessing},
	StatusPaymentProcessing: {StatusCompleted},
}

func CanTransitionTo(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
