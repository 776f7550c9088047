package domain

import (
	"context"
	"time"
)

// User roles
const (
	RoleEmployer = "employer"
	RoleIntern   = "intern"
)

type User struct {
	ID           string    `json:"id"` // UUID
	Username     string    `json:"username"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
}

// RegisterInput carries the registration form fields into the usecase.
type RegisterInput struct {
	Username        string `validate:"required,valid_username"`
	FirstName       string `validate:"required,valid_name"`
	LastName        string `validate:"required,valid_name"`
	Email           string `validate:"required,email"`
	Password        string `validate:"required,min=6"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
	Role            string `validate:"required,oneof=employer intern"`
}

type AuthUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*User, error)
	Login(ctx context.Context, username, password string) (*User, error)
	GetCurrentUser(ctx context.Context, id string) (*User, error)
}
