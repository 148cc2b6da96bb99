package dashboard

import (
	"context"
	"time"

	"imobsite/internal/domain"
)

type ListingStatsReader interface {
	CountByStatus(ctx context.Context) (map[domain.ListingStatus]int64, error)
	ListCreatedSince(ctx context.Context, since time.Time) ([]domain.Listing, error)
}

type LeadStatsReader interface {
	CountByStatus(ctx context.Context) (map[domain.LeadStatus]int64, error)
	ListCreatedSince(ctx context.Context, since time.Time) ([]domain.Lead, error)
}

type CategoryCounter interface {
	Count(ctx context.Context) (int64, error)
}
