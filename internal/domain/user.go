package domain

type UserRole string

const (
	UserRoleAdmin    UserRole = "Admin"
	UserRoleCustomer UserRole = "Customer"
)

func (r UserRole) Valid() bool {
	return r == UserRoleAdmin || r == UserRoleCustomer
}

type User struct {
	UserID       int64    `json:"user_id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Role         UserRole `json:"role"`
	Contact      *string  `json:"contact"`
	PasswordHash string   `json:"password_hash"`
}

func (u User) Identity() int64 { return u.UserID }

func (u User) WithIdentity(id int64) User {
	u.UserID = id
	return u
}

func (User) Entity() string { return "User" }
