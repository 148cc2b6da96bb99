package catalog

import (
	"context"
	"sort"

	"imobsite/internal/domain"
)

type Service struct {
	listings   ListingReader
	categories CategoryReader
}

func NewService(listings ListingReader, categories CategoryReader) *Service {
	return &Service{
		listings:   listings,
		categories: categories,
	}
}

// List fetches the published listings and applies the filter/sort spec.
func (s *Service) List(ctx context.Context, spec FilterSpec) ([]domain.Listing, error) {
	listings, err := s.listings.ListPublished(ctx)
	if err != nil {
		return nil, err
	}

	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}

	return Apply(listings, categories, spec), nil
}

// Featured returns up to limit featured listings, newest first.
func (s *Service) Featured(ctx context.Context, limit int) ([]domain.Listing, error) {
	listings, err := s.listings.ListPublished(ctx)
	if err != nil {
		return nil, err
	}

	featured := make([]domain.Listing, 0, limit)
	for _, l := range listings {
		if l.Featured {
			featured = append(featured, l)
		}
		if len(featured) == limit {
			break
		}
	}
	return featured, nil
}

func (s *Service) BySlug(ctx context.Context, slug string) (*domain.Listing, error) {
	return s.listings.GetBySlug(ctx, slug)
}

// Related returns up to limit other published listings in the same
// category. Listings without a category have no related set.
func (s *Service) Related(ctx context.Context, listing *domain.Listing, limit int) ([]domain.Listing, error) {
	if listing.CategoryID == nil {
		return nil, nil
	}

	listings, err := s.listings.ListPublished(ctx)
	if err != nil {
		return nil, err
	}

	related := make([]domain.Listing, 0, limit)
	for _, l := range listings {
		if l.ID == listing.ID {
			continue
		}
		if l.CategoryID != nil && *l.CategoryID == *listing.CategoryID {
			related = append(related, l)
		}
		if len(related) == limit {
			break
		}
	}
	return related, nil
}

// Cities returns the distinct cities of the published listings, sorted.
func (s *Service) Cities(ctx context.Context) ([]string, error) {
	listings, err := s.listings.ListPublished(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var cities []string
	for _, l := range listings {
		if !seen[l.City] {
			seen[l.City] = true
			cities = append(cities, l.City)
		}
	}
	sort.Strings(cities)
	return cities, nil
}

func (s *Service) Categories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

// CategoryBySlug resolves a category and counts its published listings.
func (s *Service) CategoryBySlug(ctx context.Context, slug string) (*domain.Category, int64, error) {
	category, err := s.categories.GetBySlug(ctx, slug)
	if err != nil {
		return nil, 0, err
	}

	count, err := s.listings.CountPublishedByCategory(ctx, category.ID)
	if err != nil {
		return nil, 0, err
	}
	return category, count, nil
}
