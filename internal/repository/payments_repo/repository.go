package payments_repo

import (
	"context"

	"payment-service/internal/domain"
)

// PaymentRepository is the persistence contract for payments. Save is an
// upsert: a payment without an id gets a fresh store-assigned one, a payment
// with an id replaces the row with that id. DeleteByID is silent when no row
// matches. Count and DeleteAll exist for test harnesses.
type PaymentRepository interface {
	FindAll(ctx context.Context) ([]domain.Payment, error)
	FindByID(ctx context.Context, id int) (*domain.Payment, error)
	Save(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	DeleteByID(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}
