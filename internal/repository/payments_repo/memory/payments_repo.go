package memory

import (
	"context"
	"sort"
	"sync"

	"payment-service/internal/domain"
)

// PaymentRepository is a map-backed implementation of the payments store.
// Ids are assigned from a monotonically increasing counter; FindAll returns
// rows ordered by id, matching the SQL implementation.
type PaymentRepository struct {
	mu       sync.RWMutex
	payments map[int]domain.Payment
	nextID   int
}

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{
		payments: make(map[int]domain.Payment),
		nextID:   1,
	}
}

func (r *PaymentRepository) FindAll(ctx context.Context) ([]domain.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	payments := make([]domain.Payment, 0, len(r.payments))
	for _, p := range r.payments {
		payments = append(payments, clone(p))
	}
	sort.Slice(payments, func(i, j int) bool {
		return *payments[i].PaymentID < *payments[j].PaymentID
	})
	return payments, nil
}

func (r *PaymentRepository) FindByID(ctx context.Context, id int) (*domain.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.payments[id]
	if !ok {
		return nil, domain.ErrPaymentNotFound
	}
	c := clone(p)
	return &c, nil
}

func (r *PaymentRepository) Save(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	saved := clone(*payment)
	if saved.PaymentID == nil {
		id := r.nextID
		r.nextID++
		saved.PaymentID = &id
	} else if *saved.PaymentID >= r.nextID {
		r.nextID = *saved.PaymentID + 1
	}
	r.payments[*saved.PaymentID] = clone(saved)
	return &saved, nil
}

func (r *PaymentRepository) DeleteByID(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.payments, id)
	return nil
}

func (r *PaymentRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.payments), nil
}

func (r *PaymentRepository) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.payments = make(map[int]domain.Payment)
	return nil
}

// clone copies the payment including its pointer fields so stored rows never
// alias caller memory.
func clone(p domain.Payment) domain.Payment {
	c := domain.Payment{OrderID: p.OrderID}
	if p.PaymentID != nil {
		id := *p.PaymentID
		c.PaymentID = &id
	}
	if p.IsPayed != nil {
		v := *p.IsPayed
		c.IsPayed = &v
	}
	if p.PaymentStatus != nil {
		s := *p.PaymentStatus
		c.PaymentStatus = &s
	}
	return c
}
