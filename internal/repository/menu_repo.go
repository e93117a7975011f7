package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/MDMahidul/bistro-boss-server/internal/domain"
)

type MenuRepo struct{ db *gorm.DB }

func NewMenuRepo(db *gorm.DB) *MenuRepo {
	return &MenuRepo{db: db}
}

func (r *MenuRepo) Migrate() error {
	return r.db.AutoMigrate(&domain.MenuItem{}, &domain.Review{})
}

func (r *MenuRepo) List(ctx context.Context) ([]domain.MenuItem, error) {
	var out []domain.MenuItem
	if err := r.db.WithContext(ctx).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *MenuRepo) Create(ctx context.Context, m *domain.MenuItem) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *MenuRepo) DeleteByID(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&domain.MenuItem{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

// ByIDs returns the items that still exist; callers must tolerate holes,
// a referenced item may have been deleted since the payment was recorded.
func (r *MenuRepo) ByIDs(ctx context.Context, ids []string) ([]domain.MenuItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var out []domain.MenuItem
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *MenuRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.MenuItem{}).Count(&n).Error
	return n, err
}

func (r *MenuRepo) ListReviews(ctx context.Context) ([]domain.Review, error) {
	var out []domain.Review
	if err := r.db.WithContext(ctx).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *MenuRepo) CreateReview(ctx context.Context, rv *domain.Review) error {
	if rv.ID == "" {
		rv.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(rv).Error
}
