package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/MDMahidul/bistro-boss-server/internal/domain"
)

type CartRepo struct{ db *gorm.DB }

func NewCartRepo(db *gorm.DB) *CartRepo {
	return &CartRepo{db: db}
}

func (r *CartRepo) Migrate() error {
	return r.db.AutoMigrate(&domain.CartItem{})
}

func (r *CartRepo) ByEmail(ctx context.Context, email string) ([]domain.CartItem, error) {
	var out []domain.CartItem
	if err := r.db.WithContext(ctx).Where("email = ?", email).
		Order("created_at ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CartRepo) Create(ctx context.Context, item *domain.CartItem) error {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(item).Error
}

// DeleteOwned removes the entry only if it belongs to the given identity.
// A missing id or someone else's entry is a zero-row no-op.
func (r *CartRepo) DeleteOwned(ctx context.Context, id, email string) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ? AND email = ?", id, email).
		Delete(&domain.CartItem{})
	return res.RowsAffected, res.Error
}

// DeleteOwnedByIDs bulk-retires entries by id for one identity; missing ids
// are skipped. Used by reconciliation to finish a checkout's retirement.
func (r *CartRepo) DeleteOwnedByIDs(ctx context.Context, ids []string, email string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Where("id IN ? AND email = ?", ids, email).
		Delete(&domain.CartItem{})
	return res.RowsAffected, res.Error
}

func (r *CartRepo) CountByIDs(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.CartItem{}).
		Where("id IN ?", ids).Count(&n).Error
	return n, err
}
