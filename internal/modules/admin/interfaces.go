package admin

import (
	"context"

	"imobsite/internal/domain"
)

type ListingRepository interface {
	List(ctx context.Context) ([]domain.Listing, error)
	GetByID(ctx context.Context, id int64) (*domain.Listing, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Listing, error)
	Create(ctx context.Context, listing *domain.Listing) error
	Update(ctx context.Context, listing *domain.Listing) error
	Delete(ctx context.Context, id int64) error
}

type CategoryRepository interface {
	List(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)
	Create(ctx context.Context, category *domain.Category) error
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, id int64) error
}

type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id int64) error
}

type SettingRepository interface {
	All(ctx context.Context) (domain.Settings, error)
	Upsert(ctx context.Context, key, value string) error
}
