package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"imobsite/internal/domain"
)

type LeadRepository struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

func (r *LeadRepository) Create(ctx context.Context, lead *domain.Lead) error {
	return r.db.WithContext(ctx).Create(lead).Error
}

func (r *LeadRepository) GetByID(ctx context.Context, id int64) (*domain.Lead, error) {
	var lead domain.Lead
	err := r.db.WithContext(ctx).First(&lead, id).Error
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

// ListRecent returns the newest leads, capped at limit.
func (r *LeadRepository) ListRecent(ctx context.Context, limit int) ([]domain.Lead, error) {
	var leads []domain.Lead
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&leads).Error
	return leads, err
}

// List returns leads newest first with an optional status filter.
func (r *LeadRepository) List(ctx context.Context, status *domain.LeadStatus, limit, offset int) ([]domain.Lead, int64, error) {
	var leads []domain.Lead
	var total int64

	q := r.db.WithContext(ctx).Model(&domain.Lead{})
	if status != nil {
		q = q.Where("status = ?", *status)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&leads).Error

	return leads, total, err
}

func (r *LeadRepository) UpdateStatus(ctx context.Context, id int64, status domain.LeadStatus) error {
	res := r.db.WithContext(ctx).
		Model(&domain.Lead{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountByStatus returns lead counts grouped by workflow status.
func (r *LeadRepository) CountByStatus(ctx context.Context) (map[domain.LeadStatus]int64, error) {
	rows, err := r.db.WithContext(ctx).
		Model(&domain.Lead{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.LeadStatus]int64)
	for rows.Next() {
		var status domain.LeadStatus
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

// ListCreatedSince returns leads created at or after the given time.
func (r *LeadRepository) ListCreatedSince(ctx context.Context, since time.Time) ([]domain.Lead, error) {
	var leads []domain.Lead
	err := r.db.WithContext(ctx).
		Where("created_at >= ?", since).
		Find(&leads).Error
	return leads, err
}
