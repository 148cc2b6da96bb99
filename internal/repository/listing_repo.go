package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"imobsite/internal/domain"
)

type ListingRepository struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) *ListingRepository {
	return &ListingRepository{db: db}
}

// ListPublished returns every published listing, newest first, with the
// category and ordered images joined in.
func (r *ListingRepository) ListPublished(ctx context.Context) ([]domain.Listing, error) {
	var listings []domain.Listing

	err := r.db.WithContext(ctx).
		Where("status = ?", domain.StatusPublished).
		Preload("Category").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("created_at DESC").
		Find(&listings).Error

	return listings, err
}

// GetBySlug fetches a single listing with the same joins as ListPublished.
func (r *ListingRepository) GetBySlug(ctx context.Context, slug string) (*domain.Listing, error) {
	var listing domain.Listing

	err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		Preload("Category").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&listing).Error

	if err != nil {
		return nil, err
	}
	return &listing, nil
}

func (r *ListingRepository) GetByID(ctx context.Context, id int64) (*domain.Listing, error) {
	var listing domain.Listing

	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&listing, id).Error

	if err != nil {
		return nil, err
	}
	return &listing, nil
}

// CountPublishedByCategory counts published listings in a category.
func (r *ListingRepository) CountPublishedByCategory(ctx context.Context, categoryID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Listing{}).
		Where("category_id = ? AND status = ?", categoryID, domain.StatusPublished).
		Count(&count).Error
	return count, err
}

// CountByStatus breaks the listing inventory down by workflow status.
func (r *ListingRepository) CountByStatus(ctx context.Context) (map[domain.ListingStatus]int64, error) {
	rows, err := r.db.WithContext(ctx).
		Model(&domain.Listing{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.ListingStatus]int64)
	for rows.Next() {
		var status domain.ListingStatus
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

// List returns every listing regardless of status (admin view), newest first.
func (r *ListingRepository) List(ctx context.Context) ([]domain.Listing, error) {
	var listings []domain.Listing
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("created_at DESC").
		Find(&listings).Error
	return listings, err
}

// ListCreatedSince returns listings created at or after the given time.
func (r *ListingRepository) ListCreatedSince(ctx context.Context, since time.Time) ([]domain.Listing, error) {
	var listings []domain.Listing
	err := r.db.WithContext(ctx).
		Where("created_at >= ?", since).
		Find(&listings).Error
	return listings, err
}

func (r *ListingRepository) Create(ctx context.Context, listing *domain.Listing) error {
	return r.db.WithContext(ctx).Create(listing).Error
}

func (r *ListingRepository) Update(ctx context.Context, listing *domain.Listing) error {
	return r.db.WithContext(ctx).Save(listing).Error
}

func (r *ListingRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("listing_id = ?", id).Delete(&domain.ListingImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Listing{}, id).Error
	})
}

/* ---------- IMAGES ---------- */

// AddImages appends images after the current last position. When the
// listing has no images yet, the first appended one becomes the cover.
func (r *ListingRepository) AddImages(ctx context.Context, listingID int64, urls []string) ([]domain.ListingImage, error) {
	var images []domain.ListingImage

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&domain.ListingImage{}).
			Where("listing_id = ?", listingID).
			Count(&count).Error; err != nil {
			return err
		}

		for i, url := range urls {
			img := domain.ListingImage{
				ListingID: listingID,
				URL:       url,
				Position:  int(count) + i,
				IsCover:   count == 0 && i == 0,
			}
			if err := tx.Create(&img).Error; err != nil {
				return err
			}
			images = append(images, img)
		}
		return nil
	})

	return images, err
}

// SetCover marks one image as cover and clears the flag everywhere else,
// keeping the at-most-one-cover invariant.
func (r *ListingRepository) SetCover(ctx context.Context, listingID, imageID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&domain.ListingImage{}).
			Where("listing_id = ?", listingID).
			Update("is_cover", false).Error; err != nil {
			return err
		}
		res := tx.Model(&domain.ListingImage{}).
			Where("id = ? AND listing_id = ?", imageID, listingID).
			Update("is_cover", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *ListingRepository) DeleteImage(ctx context.Context, listingID, imageID int64) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND listing_id = ?", imageID, listingID).
		Delete(&domain.ListingImage{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
