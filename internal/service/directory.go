package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/MDMahidul/bistro-boss-server/internal/domain"
	"github.com/MDMahidul/bistro-boss-server/internal/repository"
)

// Directory maps identity → role. The role is looked up fresh on every call;
// there is deliberately no session cache that could go stale after a grant.
type Directory struct {
	users *repository.UserRepo
}

func NewDirectory(users *repository.UserRepo) *Directory {
	return &Directory{users: users}
}

func (d *Directory) Role(ctx context.Context, email string) (string, error) {
	return d.users.Role(ctx, email)
}

func (d *Directory) IsAdmin(ctx context.Context, email string) (bool, error) {
	role, err := d.users.Role(ctx, email)
	if err != nil {
		return false, err
	}
	return role == domain.RoleAdmin, nil
}

// Register is idempotent: an existing identity is a no-op, not an error.
// The created flag tells the handler which acknowledgment to send.
func (d *Directory) Register(ctx context.Context, u *domain.User) (created bool, err error) {
	_, err = d.users.ByEmail(ctx, u.Email)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	if err := d.users.Create(ctx, u); err != nil {
		return false, err
	}
	return true, nil
}

func (d *Directory) List(ctx context.Context) ([]domain.User, error) {
	return d.users.List(ctx)
}

func (d *Directory) Delete(ctx context.Context, id string) (int64, error) {
	return d.users.DeleteByID(ctx, id)
}

func (d *Directory) GrantAdmin(ctx context.Context, id string) (int64, error) {
	return d.users.GrantAdmin(ctx, id)
}
