package domain

import (
	"errors"
	"fmt"
)

// ErrPaymentNotFound is returned by repositories when no row matches the
// requested id. The service layer turns it into a PaymentNotFoundError
// carrying the id, which is what reaches the HTTP adapter.
var ErrPaymentNotFound = errors.New("payment not found")

// PaymentNotFoundError is the user-visible not-found failure. Its message
// text is part of the API contract and must not change.
type PaymentNotFoundError struct {
	PaymentID int
}

func (e *PaymentNotFoundError) Error() string {
	return fmt.Sprintf("Payment with id: %d not found", e.PaymentID)
}

// ValidationError marks a malformed or unparseable request.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// InfrastructureError wraps store I/O failures and order-client transport or
// decoding failures. The underlying cause text is surfaced to the client.
type InfrastructureError struct {
	Op  string
	Err error
}

func (e *InfrastructureError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}
