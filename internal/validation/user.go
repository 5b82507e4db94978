package validation

import (
	"time"

	"github.com/Domenick1991/travelbooking/internal/domain"
)

type UserCreate struct {
	Name         string          `json:"name" binding:"required"`
	Email        string          `json:"email" binding:"required,email"`
	Role         domain.UserRole `json:"role" binding:"required,oneof=Admin Customer"`
	Contact      *string         `json:"contact"`
	PasswordHash string          `json:"password_hash" binding:"required"`
}

func (in UserCreate) Record(time.Time) domain.User {
	return domain.User{
		Name:         in.Name,
		Email:        in.Email,
		Role:         in.Role,
		Contact:      in.Contact,
		PasswordHash: in.PasswordHash,
	}
}

type UserUpdate struct {
	Name         *string          `json:"name"`
	Email        *string          `json:"email" binding:"omitnil,email"`
	Role         *domain.UserRole `json:"role" binding:"omitnil,oneof=Admin Customer"`
	Contact      *string          `json:"contact"`
	PasswordHash *string          `json:"password_hash"`
}

func (in UserUpdate) Apply(u *domain.User) {
	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	if in.Role != nil {
		u.Role = *in.Role
	}
	if in.Contact != nil {
		u.Contact = in.Contact
	}
	if in.PasswordHash != nil {
		u.PasswordHash = *in.PasswordHash
	}
}
