package auth

import (
	"context"

	"imobsite/internal/domain"
)

// UserReader is the slice of the user repository the auth service needs.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}
