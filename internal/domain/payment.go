package domain

type PaymentStatus string

const (
	PaymentStatusNotStarted PaymentStatus = "NOT_STARTED"
	PaymentStatusInProgress PaymentStatus = "IN_PROGRESS"
	PaymentStatusCompleted  PaymentStatus = "COMPLETED"
)

// Payment is the persisted record. PaymentID is assigned by the store on
// first save and immutable afterwards. IsPayed and PaymentStatus are
// tri-state: nil means unknown, and nil must survive the round trip through
// the store and back onto the wire.
type Payment struct {
	PaymentID     *int
	OrderID       int
	IsPayed       *bool
	PaymentStatus *PaymentStatus
}

// IsValidStatus reports whether s is one of the known payment statuses.
func IsValidStatus(s PaymentStatus) bool {
	switch s {
	case PaymentStatusNotStarted, PaymentStatusInProgress, PaymentStatusCompleted:
		return true
	}
	return false
}
