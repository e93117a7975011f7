package reconcile

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/MDMahidul/bistro-boss-server/internal/domain"
	"github.com/MDMahidul/bistro-boss-server/internal/logging"
	"github.com/MDMahidul/bistro-boss-server/internal/repository"
)

func newWorker(t *testing.T) (*Worker, *repository.CartRepo) {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	carts := repository.NewCartRepo(gdb)
	require.NoError(t, carts.Migrate())
	return NewWorker(carts, logging.NewDefault()), carts
}

func event(t *testing.T, ev PaymentRecorded) []byte {
	t.Helper()
	b, err := json.Marshal(ev)
	require.NoError(t, err)
	return b
}

func TestHandleRetiresLeftovers(t *testing.T) {
	w, carts := newWorker(t)
	ctx := context.Background()

	// retirement never ran for this payment's entries
	item := &domain.CartItem{Email: "alice@example.com", Name: "pizza", Price: decimal.NewFromInt(10)}
	require.NoError(t, carts.Create(ctx, item))

	body := event(t, PaymentRecorded{
		PaymentID: "pay-1", Email: "alice@example.com", CartItems: []string{item.ID},
	})
	require.NoError(t, w.Handle(ctx, RKPaymentRecorded, body))

	left, err := carts.CountByIDs(ctx, []string{item.ID})
	require.NoError(t, err)
	assert.Zero(t, left)
}

func TestHandleCleanCheckoutIsNoOp(t *testing.T) {
	w, _ := newWorker(t)

	body := event(t, PaymentRecorded{
		PaymentID: "pay-1", Email: "alice@example.com", CartItems: []string{"already-gone"},
	})
	assert.NoError(t, w.Handle(context.Background(), RKPaymentRecorded, body))
}

func TestHandleIgnoresOtherKeys(t *testing.T) {
	w, _ := newWorker(t)
	assert.NoError(t, w.Handle(context.Background(), "payment.failed", []byte("not json")))
}

func TestHandleBadPayload(t *testing.T) {
	w, _ := newWorker(t)
	assert.Error(t, w.Handle(context.Background(), RKPaymentRecorded, []byte("{broken")))
}

func TestHandleNeverTouchesOtherIdentities(t *testing.T) {
	w, carts := newWorker(t)
	ctx := context.Background()

	bob := &domain.CartItem{Email: "bob@example.com", Name: "soup", Price: decimal.NewFromInt(3)}
	require.NoError(t, carts.Create(ctx, bob))

	body := event(t, PaymentRecorded{
		PaymentID: "pay-1", Email: "alice@example.com", CartItems: []string{bob.ID},
	})
	require.NoError(t, w.Handle(ctx, RKPaymentRecorded, body))

	left, err := carts.CountByIDs(ctx, []string{bob.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), left, "reconciliation is scoped to the payment's identity")
}
