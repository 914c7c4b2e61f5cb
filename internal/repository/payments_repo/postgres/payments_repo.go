package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"payment-service/internal/domain"
)

type PaymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) FindAll(ctx context.Context) ([]domain.Payment, error) {
	query := `
		SELECT payment_id, order_id, is_payed, payment_status
		FROM payments
		ORDER BY payment_id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	payments := []domain.Payment{}
	for rows.Next() {
		payment, err := scanPayment(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		payments = append(payments, *payment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payment rows: %w", err)
	}
	return payments, nil
}

func (r *PaymentRepository) FindByID(ctx context.Context, id int) (*domain.Payment, error) {
	query := `
		SELECT payment_id, order_id, is_payed, payment_status
		FROM payments
		WHERE payment_id = $1
	`
	row := r.db.QueryRowContext(ctx, query, id)
	payment, err := scanPayment(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to get payment by id %d: %w", id, err)
	}
	return payment, nil
}

func (r *PaymentRepository) Save(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	if payment.PaymentID == nil {
		query := `
			INSERT INTO payments (order_id, is_payed, payment_status)
			VALUES ($1, $2, $3)
			RETURNING payment_id
		`
		var id int
		err := r.db.QueryRowContext(ctx, query,
			payment.OrderID,
			nullBool(payment.IsPayed),
			nullStatus(payment.PaymentStatus),
		).Scan(&id)
		if err != nil {
			return nil, fmt.Errorf("failed to insert payment: %w", err)
		}
		saved := *payment
		saved.PaymentID = &id
		return &saved, nil
	}

	query := `
		INSERT INTO payments (payment_id, order_id, is_payed, payment_status)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (payment_id) DO UPDATE
		SET order_id = EXCLUDED.order_id,
		    is_payed = EXCLUDED.is_payed,
		    payment_status = EXCLUDED.payment_status
	`
	_, err := r.db.ExecContext(ctx, query,
		*payment.PaymentID,
		payment.OrderID,
		nullBool(payment.IsPayed),
		nullStatus(payment.PaymentStatus),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert payment %d: %w", *payment.PaymentID, err)
	}

	// Keep the id sequence ahead of caller-chosen ids so a later insert
	// cannot draw a colliding value.
	seqQuery := `SELECT setval(pg_get_serial_sequence('payments', 'payment_id'), (SELECT MAX(payment_id) FROM payments))`
	if _, err := r.db.ExecContext(ctx, seqQuery); err != nil {
		return nil, fmt.Errorf("failed to advance payment id sequence: %w", err)
	}

	saved := *payment
	return &saved, nil
}

func (r *PaymentRepository) DeleteByID(ctx context.Context, id int) error {
	// Idempotent: deleting a missing row is not an error.
	_, err := r.db.ExecContext(ctx, `DELETE FROM payments WHERE payment_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete payment %d: %w", id, err)
	}
	return nil
}

func (r *PaymentRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM payments`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count payments: %w", err)
	}
	return count, nil
}

func (r *PaymentRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM payments`); err != nil {
		return fmt.Errorf("failed to delete all payments: %w", err)
	}
	return nil
}

func scanPayment(scan func(dest ...any) error) (*domain.Payment, error) {
	var (
		id      int
		orderID int
		isPayed sql.NullBool
		status  sql.NullString
	)
	if err := scan(&id, &orderID, &isPayed, &status); err != nil {
		return nil, err
	}

	payment := &domain.Payment{
		PaymentID: &id,
		OrderID:   orderID,
	}
	if isPayed.Valid {
		v := isPayed.Bool
		payment.IsPayed = &v
	}
	if status.Valid {
		s := domain.PaymentStatus(status.String)
		payment.PaymentStatus = &s
	}
	return payment, nil
}

func nullBool(b *bool) sql.NullBool {
	if b == nil {
		return sql.NullBool{}
	}
	return sql.NullBool{Bool: *b, Valid: true}
}

func nullStatus(s *domain.PaymentStatus) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: string(*s), Valid: true}
}
