package service

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/MDMahidul/bistro-boss-server/internal/domain"
	"github.com/MDMahidul/bistro-boss-server/internal/logging"
	"github.com/MDMahidul/bistro-boss-server/internal/repository"
	"github.com/MDMahidul/bistro-boss-server/pkg/mq"
)

// CheckoutService drives the checkout sequence: persist the payment record
// and retire the cart entries it paid for, together or not at all. Once the
// transaction commits the checkout is forward-only; a client disconnect
// never rolls anything back.
type CheckoutService struct {
	payments *repository.PaymentRepo
	pub      *mq.Publisher
	log      logging.Logger
	tracer   trace.Tracer
}

func NewCheckoutService(payments *repository.PaymentRepo, pub *mq.Publisher, log logging.Logger) *CheckoutService {
	return &CheckoutService{
		payments: payments,
		pub:      pub,
		log:      log,
		tracer:   otel.Tracer("checkout"),
	}
}

// Submit runs the checkout transaction. A replayed payload (cart already
// retired) is reported as a successful no-op with an empty payment id, so
// retries never produce a duplicate record.
func (s *CheckoutService) Submit(ctx context.Context, p *domain.Payment) (*repository.CheckoutResult, error) {
	ctx, span := s.tracer.Start(ctx, "checkout.submit")
	defer span.End()

	res, err := s.payments.Checkout(ctx, p)
	if errors.Is(err, repository.ErrCartAlreadyRetired) {
		s.log.Info(ctx, "checkout replay, cart already retired", "email", p.Email)
		return &repository.CheckoutResult{}, nil
	}
	if err != nil {
		return nil, err
	}

	s.publishRecorded(ctx, p, res)
	return res, nil
}

// publishRecorded emits the event a reconciliation consumer audits cart
// retirement against. Publishing is best-effort: the checkout has already
// committed and must not fail because the broker is down.
func (s *CheckoutService) publishRecorded(ctx context.Context, p *domain.Payment, res *repository.CheckoutResult) {
	if s.pub == nil {
		return
	}
	err := s.pub.PublishJSON(ctx, "payment.recorded", map[string]any{
		"payment_id":    res.PaymentID,
		"email":         p.Email,
		"price":         p.Price.String(),
		"cart_items":    p.CartItemIDs,
		"deleted_count": res.DeletedCount,
	})
	if err != nil {
		s.log.Error(ctx, "publish payment.recorded", "payment_id", res.PaymentID, "err", err)
	}
}
