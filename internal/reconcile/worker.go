// Package reconcile repairs checkouts whose cart retirement did not
// complete: a persisted payment referencing cart entries that still exist.
// It consumes the checkout event stream and retires any leftovers.
package reconcile

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/MDMahidul/bistro-boss-server/internal/logging"
	"github.com/MDMahidul/bistro-boss-server/internal/repository"
)

const RKPaymentRecorded = "payment.recorded"

type PaymentRecorded struct {
	PaymentID    string   `json:"payment_id"`
	Email        string   `json:"email"`
	Price        string   `json:"price"`
	CartItems    []string `json:"cart_items"`
	DeletedCount int64    `json:"deleted_count"`
}

type Worker struct {
	carts *repository.CartRepo
	log   logging.Logger
}

func NewWorker(carts *repository.CartRepo, log logging.Logger) *Worker {
	return &Worker{carts: carts, log: log}
}

func (w *Worker) Run(ctx context.Context, msgs <-chan amqp.Delivery) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return nil
			}
			if err := w.Handle(ctx, d.RoutingKey, d.Body); err != nil {
				w.log.Error(ctx, "reconcile handle", "key", d.RoutingKey, "err", err)
				_ = d.Nack(false, true)
				continue
			}
			_ = d.Ack(false)
		}
	}
}

// Handle checks one recorded payment: if any cart entry it paid for still
// exists, the retirement is finished here. Re-deliveries are no-ops, the
// delete is conditional on id+identity.
func (w *Worker) Handle(ctx context.Context, key string, body []byte) error {
	if key != RKPaymentRecorded {
		return nil
	}
	var ev PaymentRecorded
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal %s: %w", key, err)
	}

	left, err := w.carts.CountByIDs(ctx, ev.CartItems)
	if err != nil {
		return err
	}
	if left == 0 {
		return nil
	}

	w.log.Warn(ctx, "payment with unretired cart entries",
		"payment_id", ev.PaymentID, "email", ev.Email, "left", left)
	n, err := w.carts.DeleteOwnedByIDs(ctx, ev.CartItems, ev.Email)
	if err != nil {
		return err
	}
	w.log.Info(ctx, "retired leftover cart entries",
		"payment_id", ev.PaymentID, "retired", n)
	return nil
}
