package domain

import "time"

// RoleAdmin is the only privileged role. A user without it has a zero-value
// role; roles are granted, never revoked.
const RoleAdmin = "admin"

type User struct {
	ID        string    `gorm:"primaryKey" json:"_id"`
	Email     string    `gorm:"uniqueIndex" json:"email"`
	Name      string    `json:"name"`
	Role      string    `gorm:"index" json:"role,omitempty"`
	CreatedAt time.Time `json:"-"`
}

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
