package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/clubhub/club-service/internal/domain"
	"github.com/clubhub/club-service/internal/events"
	"github.com/clubhub/club-service/internal/repository"
)

// PaymentService wraps payment operations and emits lifecycle events.
type PaymentService struct {
	payments   repository.PaymentRepository
	dispatcher events.Dispatcher
}

// NewPaymentService builds the service.
func NewPaymentService(payments repository.PaymentRepository, dispatcher events.Dispatcher) *PaymentService {
	return &PaymentService{payments: payments, dispatcher: dispatcher}
}

func (s *PaymentService) Create(ctx context.Context, payment *domain.Payment) error {
	if err := s.payments.Create(ctx, payment); err != nil {
		return err
	}
	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventPaymentRecorded,
			ClubID:    payment.ClubID,
			Timestamp: time.Now(),
			Payload: events.PaymentRecordedPayload{
				PaymentID:   payment.ID,
				MemberID:    payment.MemberID,
				AmountCents: payment.AmountCents,
				Currency:    payment.Currency,
			},
		})
	}
	return nil
}

func (s *PaymentService) Update(ctx context.Context, payment *domain.Payment) error {
	return s.payments.Update(ctx, payment)
}

func (s *PaymentService) Delete(ctx context.Context, id string) error {
	return s.payments.Delete(ctx, id)
}

func (s *PaymentService) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	return s.payments.GetByID(ctx, id)
}

func (s *PaymentService) List(ctx context.Context, clubID string, limit, offset int) ([]domain.Payment, int64, error) {
	return s.payments.List(ctx, clubID, limit, offset)
}
