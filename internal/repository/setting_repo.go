package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"imobsite/internal/domain"
)

type SettingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// All loads every setting row into a flat key/value map.
func (r *SettingRepository) All(ctx context.Context) (domain.Settings, error) {
	var rows []domain.SiteSetting
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}

	settings := make(domain.Settings, len(rows))
	for _, row := range rows {
		settings[row.Key] = row.Value
	}
	return settings, nil
}

// Upsert writes one key, inserting or updating as needed.
func (r *SettingRepository) Upsert(ctx context.Context, key, value string) error {
	setting := domain.SiteSetting{Key: key, Value: value}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&setting).Error
}
