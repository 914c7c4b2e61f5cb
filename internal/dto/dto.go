package dto

import (
	"payment-service/internal/domain"
)

// OrderDto is the read-only view of an order owned by the sibling order
// service. Only OrderID is meaningful on input; the remaining fields are
// filled from the order service on read paths.
type OrderDto struct {
	OrderID   int      `json:"orderId"`
	OrderDesc *string  `json:"orderDesc,omitempty"`
	OrderFee  *float64 `json:"orderFee,omitempty"`
}

// PaymentDto is the wire shape of a payment. The embedded order is
// serialized under the key "order".
type PaymentDto struct {
	PaymentID     *int                  `json:"paymentId"`
	IsPayed       *bool                 `json:"isPayed"`
	PaymentStatus *domain.PaymentStatus `json:"paymentStatus"`
	Order         OrderDto              `json:"order"`
}

// PaymentCollection wraps list responses.
type PaymentCollection struct {
	Collection []PaymentDto `json:"collection"`
}

// FromPayment maps an entity to its DTO. The order field is a stub holding
// only the order id; enrichment with the full order body is the service
// layer's job, not the mapper's.
func FromPayment(p *domain.Payment) *PaymentDto {
	return &PaymentDto{
		PaymentID:     p.PaymentID,
		IsPayed:       p.IsPayed,
		PaymentStatus: p.PaymentStatus,
		Order:         OrderDto{OrderID: p.OrderID},
	}
}

// ToPayment maps a DTO back to the entity, taking the order id from the
// embedded order stub. FromPayment followed by ToPayment is the identity on
// all four entity fields.
func ToPayment(d *PaymentDto) *domain.Payment {
	return &domain.Payment{
		PaymentID:     d.PaymentID,
		OrderID:       d.Order.OrderID,
		IsPayed:       d.IsPayed,
		PaymentStatus: d.PaymentStatus,
	}
}
