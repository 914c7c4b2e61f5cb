package payments

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"payment-service/internal/client/orders"
	"payment-service/internal/domain"
	"payment-service/internal/dto"
	"payment-service/internal/repository/payments_repo"
)

// PaymentService mediates between the HTTP edge, the payments store and the
// outbound order lookup. Read paths enrich each payment with the full order
// body; write paths return the order stub untouched and never call out.
type PaymentService interface {
	FindAll(ctx context.Context) ([]dto.PaymentDto, error)
	FindByID(ctx context.Context, paymentID int) (*dto.PaymentDto, error)
	Save(ctx context.Context, payment *dto.PaymentDto) (*dto.PaymentDto, error)
	Update(ctx context.Context, payment *dto.PaymentDto) (*dto.PaymentDto, error)
	DeleteByID(ctx context.Context, paymentID int) error
}

type paymentService struct {
	paymentRepo payments_repo.PaymentRepository
	orderClient orders.OrderClient
	logger      *zap.Logger
}

func NewPaymentService(
	paymentRepo payments_repo.PaymentRepository,
	orderClient orders.OrderClient,
	logger *zap.Logger,
) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		orderClient: orderClient,
		logger:      logger,
	}
}

// FindAll returns every payment enriched with its order. The fetches run
// concurrently but the result keeps the store's ordering; the first fetch
// failure cancels the rest and fails the whole call.
func (s *paymentService) FindAll(ctx context.Context) ([]dto.PaymentDto, error) {
	payments, err := s.paymentRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to load payments from repository", zap.Error(err))
		return nil, infrastructure("load payments", err)
	}

	result := make([]dto.PaymentDto, len(payments))
	g, gctx := errgroup.WithContext(ctx)
	for i := range payments {
		i := i
		payment := payments[i]
		g.Go(func() error {
			order, err := s.orderClient.FetchOrder(gctx, payment.OrderID)
			if err != nil {
				return err
			}
			d := dto.FromPayment(&payment)
			d.Order = *order
			result[i] = *d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Error("Failed to enrich payments with order data", zap.Error(err))
		return nil, err
	}

	return result, nil
}

func (s *paymentService) FindByID(ctx context.Context, paymentID int) (*dto.PaymentDto, error) {
	payment, err := s.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, domain.ErrPaymentNotFound) {
			s.logger.Debug("Payment not found", zap.Int("payment_id", paymentID))
			return nil, &domain.PaymentNotFoundError{PaymentID: paymentID}
		}
		s.logger.Error("Failed to load payment from repository", zap.Int("payment_id", paymentID), zap.Error(err))
		return nil, infrastructure("load payment", err)
	}

	order, err := s.orderClient.FetchOrder(ctx, payment.OrderID)
	if err != nil {
		s.logger.Error("Failed to fetch order for payment",
			zap.Int("payment_id", paymentID),
			zap.Int("order_id", payment.OrderID),
			zap.Error(err))
		return nil, err
	}

	result := dto.FromPayment(payment)
	result.Order = *order
	return result, nil
}

// Save persists a new payment. Any client-supplied id is discarded; the
// store assigns a fresh one. The returned order field is the stub.
func (s *paymentService) Save(ctx context.Context, payment *dto.PaymentDto) (*dto.PaymentDto, error) {
	entity := dto.ToPayment(payment)
	entity.PaymentID = nil

	saved, err := s.paymentRepo.Save(ctx, entity)
	if err != nil {
		s.logger.Error("Failed to save payment", zap.Int("order_id", entity.OrderID), zap.Error(err))
		return nil, infrastructure("save payment", err)
	}

	s.logger.Info("Payment created",
		zap.Int("payment_id", *saved.PaymentID),
		zap.Int("order_id", saved.OrderID))
	return dto.FromPayment(saved), nil
}

// Update upserts the payment under its caller-supplied id.
func (s *paymentService) Update(ctx context.Context, payment *dto.PaymentDto) (*dto.PaymentDto, error) {
	if payment.PaymentID == nil {
		return nil, &domain.ValidationError{Reason: "paymentId is required for update"}
	}

	entity := dto.ToPayment(payment)
	saved, err := s.paymentRepo.Save(ctx, entity)
	if err != nil {
		s.logger.Error("Failed to update payment", zap.Int("payment_id", *payment.PaymentID), zap.Error(err))
		return nil, infrastructure("update payment", err)
	}

	s.logger.Info("Payment updated", zap.Int("payment_id", *saved.PaymentID))
	return dto.FromPayment(saved), nil
}

func (s *paymentService) DeleteByID(ctx context.Context, paymentID int) error {
	if err := s.paymentRepo.DeleteByID(ctx, paymentID); err != nil {
		s.logger.Error("Failed to delete payment", zap.Int("payment_id", paymentID), zap.Error(err))
		return infrastructure("delete payment", err)
	}
	s.logger.Info("Payment deleted", zap.Int("payment_id", paymentID))
	return nil
}

// infrastructure wraps repository failures, leaving already-classified
// errors untouched.
func infrastructure(op string, err error) error {
	var infraErr *domain.InfrastructureError
	if errors.As(err, &infraErr) {
		return err
	}
	return &domain.InfrastructureError{Op: op, Err: err}
}
