package lead

import (
	"context"

	"imobsite/internal/domain"
)

// Repository is the lead store contract.
type Repository interface {
	Create(ctx context.Context, lead *domain.Lead) error
	GetByID(ctx context.Context, id int64) (*domain.Lead, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Lead, error)
	List(ctx context.Context, status *domain.LeadStatus, limit, offset int) ([]domain.Lead, int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.LeadStatus) error
	CountByStatus(ctx context.Context) (map[domain.LeadStatus]int64, error)
}

// CreationFeed receives each lead after it has been persisted.
type CreationFeed interface {
	Publish(lead domain.Lead)
}
