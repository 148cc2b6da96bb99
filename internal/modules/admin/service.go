package admin

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"imobsite/internal/domain"
)

type Service struct {
	listings   ListingRepository
	categories CategoryRepository
	users      UserRepository
	settings   SettingRepository
}

func NewService(
	listings ListingRepository,
	categories CategoryRepository,
	users UserRepository,
	settings SettingRepository,
) *Service {
	return &Service{
		listings:   listings,
		categories: categories,
		users:      users,
		settings:   settings,
	}
}

// -------------------- Listings --------------------

func (s *Service) ListListings(ctx context.Context) ([]domain.Listing, error) {
	return s.listings.List(ctx)
}

func (s *Service) GetListing(ctx context.Context, id int64) (*domain.Listing, error) {
	listing, err := s.listings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	return listing, nil
}

func (s *Service) CreateListing(ctx context.Context, req ListingRequest) (*domain.Listing, error) {
	listing := &domain.Listing{}
	s.applyListingRequest(listing, req)

	slug, err := s.uniqueListingSlug(ctx, listing.Slug, 0)
	if err != nil {
		return nil, err
	}
	listing.Slug = slug

	if err := s.listings.Create(ctx, listing); err != nil {
		return nil, mapListingWriteError(err)
	}
	return listing, nil
}

func (s *Service) UpdateListing(ctx context.Context, id int64, req ListingRequest) (*domain.Listing, error) {
	listing, err := s.GetListing(ctx, id)
	if err != nil {
		return nil, err
	}

	s.applyListingRequest(listing, req)

	slug, err := s.uniqueListingSlug(ctx, listing.Slug, id)
	if err != nil {
		return nil, err
	}
	listing.Slug = slug

	if err := s.listings.Update(ctx, listing); err != nil {
		return nil, mapListingWriteError(err)
	}
	return listing, nil
}

// mapListingWriteError surfaces a unique violation on the internal code
// as a domain error. Code 23505 is Postgres unique_violation; sqlite
// only names the violated column in the error text.
func mapListingWriteError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && strings.Contains(pgErr.ConstraintName, "internal_code") {
		return ErrCodeTaken
	}
	if msg := err.Error(); strings.Contains(msg, "UNIQUE constraint failed") && strings.Contains(msg, "internal_code") {
		return ErrCodeTaken
	}
	return err
}

func (s *Service) DeleteListing(ctx context.Context, id int64) error {
	if _, err := s.GetListing(ctx, id); err != nil {
		return err
	}
	return s.listings.Delete(ctx, id)
}

func (s *Service) applyListingRequest(listing *domain.Listing, req ListingRequest) {
	purpose, _ := domain.ParsePurpose(req.Purpose)
	status, _ := domain.ParseListingStatus(req.Status)

	listing.Title = req.Title
	listing.Description = req.Description
	listing.Purpose = purpose
	listing.PropertyType = req.PropertyType
	listing.Status = status
	listing.CategoryID = req.CategoryID
	listing.InternalCode = strings.TrimSpace(req.InternalCode)
	listing.City = req.City
	listing.Neighborhood = req.Neighborhood
	listing.Address = req.Address
	listing.Latitude = req.Latitude
	listing.Longitude = req.Longitude
	listing.Price = req.Price
	listing.RentalPrice = req.RentalPrice
	listing.CondoFee = req.CondoFee
	listing.PropertyTax = req.PropertyTax
	listing.TotalArea = req.TotalArea
	listing.BuiltArea = &req.BuiltArea
	listing.Bedrooms = req.Bedrooms
	listing.Suites = req.Suites
	listing.Bathrooms = req.Bathrooms
	listing.ParkingSpaces = req.ParkingSpaces
	listing.Furnished = req.Furnished
	listing.TradeAccepted = req.TradeAccepted
	listing.Featured = req.Featured
	listing.SEOTitle = req.SEOTitle
	listing.SEODescription = req.SEODescription

	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		slug = Slugify(req.Title)
	} else {
		slug = Slugify(slug)
	}
	listing.Slug = slug
}

// uniqueListingSlug appends a numeric suffix until the slug is free.
// excludeID lets an update keep its own slug.
func (s *Service) uniqueListingSlug(ctx context.Context, base string, excludeID int64) (string, error) {
	slug := base
	for n := 2; ; n++ {
		existing, err := s.listings.GetBySlug(ctx, slug)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return slug, nil
			}
			return "", err
		}
		if existing.ID == excludeID {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, n)
	}
}

// -------------------- Categories --------------------

func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

func (s *Service) CreateCategory(ctx context.Context, req CategoryRequest) (*domain.Category, error) {
	category := &domain.Category{
		Name:      req.Name,
		Slug:      categorySlug(req),
		SortOrder: req.SortOrder,
		Icon:      req.Icon,
	}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *Service) UpdateCategory(ctx context.Context, id int64, req CategoryRequest) (*domain.Category, error) {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	category.Name = req.Name
	category.Slug = categorySlug(req)
	category.SortOrder = req.SortOrder
	category.Icon = req.Icon

	if err := s.categories.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *Service) DeleteCategory(ctx context.Context, id int64) error {
	if _, err := s.categories.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}
	return s.categories.Delete(ctx, id)
}

func categorySlug(req CategoryRequest) string {
	if slug := strings.TrimSpace(req.Slug); slug != "" {
		return Slugify(slug)
	}
	return Slugify(req.Name)
}

// -------------------- Users --------------------

func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

func (s *Service) CreateUser(ctx context.Context, req CreateUserRequest) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         req.Name,
		Role:         domain.UserRole(req.Role),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Service) DeleteUser(ctx context.Context, id, callerID int64) error {
	if id == callerID {
		return ErrCannotDeleteSelf
	}
	return s.users.Delete(ctx, id)
}

// -------------------- Settings --------------------

func (s *Service) GetSettings(ctx context.Context) (domain.Settings, error) {
	return s.settings.All(ctx)
}

func (s *Service) UpdateSettings(ctx context.Context, req UpdateSettingsRequest) (domain.Settings, error) {
	for key, value := range req.Settings {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		if err := s.settings.Upsert(ctx, key, value); err != nil {
			return nil, err
		}
	}
	return s.settings.All(ctx)
}
