package repository

import (
	"context"
	"errors"

	"inventory-management/internal/domain/entity"
)

// ErrDuplicateEmail is returned when a create or update would violate the
// unique constraint on users.email.
var ErrDuplicateEmail = errors.New("email already exists")

// UpdateFields carries a partial update; nil fields are left untouched.
// A non-nil Password is re-hashed before storage.
type UpdateFields struct {
	Name     *string
	Email    *string
	Password *string
}

// UserPage is one page of users plus the total row count across all pages.
type UserPage struct {
	Items []*entity.User
	Total int64
	Page  int
	Size  int
}

// UserRepository is the sole mutation and query boundary for the User
// entity. Lookups and Authenticate report absence as (nil, nil), not as
// an error.
type UserRepository interface {
	Create(ctx context.Context, name, email, rawPassword string) (*entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context, page, size int) (*UserPage, error)
	Update(ctx context.Context, id string, fields UpdateFields) (*entity.User, error)
	Delete(ctx context.Context, id string) (bool, error)
	Authenticate(ctx context.Context, email, rawPassword string) (*entity.User, error)
}
