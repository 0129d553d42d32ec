package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

// OAuthPasswordPlaceholder is stored instead of a bcrypt hash for users
// provisioned through a federated sign-in. It never matches a real hash,
// so credential login is impossible for those accounts.
const OAuthPasswordPlaceholder = "oauth-user"

type User struct {
	ID        string    `json:"id" gorm:"primarykey;size:36"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Name      string    `json:"name" gorm:"not null"`
	Password  string    `json:"-" gorm:"not null"`
	Role      UserRole  `json:"role" gorm:"size:20;default:'user';not null"`
	GoogleID  string    `json:"-" gorm:"index"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
