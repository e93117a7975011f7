package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/MDMahidul/bistro-boss-server/internal/domain"
)

var (
	// ErrCartAlreadyRetired: none of the referenced cart entries exist for
	// this identity. A replayed checkout lands here.
	ErrCartAlreadyRetired = errors.New("cart entries already retired")
	// ErrCartConflict: a concurrent checkout retired some of the claimed
	// entries between claim and delete. Nothing was persisted.
	ErrCartConflict = errors.New("cart changed during checkout")
)

type CheckoutResult struct {
	PaymentID    string
	DeletedCount int64
}

type PaymentRepo struct{ db *gorm.DB }

func NewPaymentRepo(db *gorm.DB) *PaymentRepo {
	return &PaymentRepo{db: db}
}

func (r *PaymentRepo) Migrate() error {
	return r.db.AutoMigrate(&domain.Payment{})
}

// Checkout persists the payment and retires the cart entries it paid for as
// one transaction. The claimed entry set is the fencing token: the payment
// records exactly the entries found for this identity at claim time, and the
// delete is conditional on id+email, so a racing attempt either observes an
// already-emptied cart or aborts the whole transaction.
func (r *PaymentRepo) Checkout(ctx context.Context, p *domain.Payment) (*CheckoutResult, error) {
	res := &CheckoutResult{}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var claimed []domain.CartItem
		if err := tx.Where("id IN ? AND email = ?", p.CartItemIDs, p.Email).
			Find(&claimed).Error; err != nil {
			return err
		}
		if len(claimed) == 0 {
			return ErrCartAlreadyRetired
		}

		ids := make([]string, 0, len(claimed))
		for _, ci := range claimed {
			ids = append(ids, ci.ID)
		}
		p.CartItemIDs = ids
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		if p.CreatedAt.IsZero() {
			p.CreatedAt = time.Now().UTC()
		}
		if err := tx.Create(p).Error; err != nil {
			return err
		}

		del := tx.Where("id IN ? AND email = ?", ids, p.Email).
			Delete(&domain.CartItem{})
		if del.Error != nil {
			return del.Error
		}
		if del.RowsAffected < int64(len(ids)) {
			return ErrCartConflict
		}
		res.PaymentID = p.ID
		res.DeletedCount = del.RowsAffected
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *PaymentRepo) List(ctx context.Context) ([]domain.Payment, error) {
	var out []domain.Payment
	if err := r.db.WithContext(ctx).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PaymentRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Payment{}).Count(&n).Error
	return n, err
}
