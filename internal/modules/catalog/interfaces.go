package catalog

import (
	"context"

	"imobsite/internal/domain"
)

// ListingReader is the read contract the catalog needs from the listing store.
type ListingReader interface {
	ListPublished(ctx context.Context) ([]domain.Listing, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Listing, error)
	CountPublishedByCategory(ctx context.Context, categoryID int64) (int64, error)
}

// CategoryReader is the read contract for the category taxonomy.
type CategoryReader interface {
	List(ctx context.Context) ([]domain.Category, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)
}
