package catalog

import (
	"sort"
	"strings"

	"imobsite/internal/domain"
)

// SortOption orders the filtered catalog.
type SortOption string

const (
	SortMostRecent SortOption = "recent"
	SortPriceAsc   SortOption = "price-asc"
	SortPriceDesc  SortOption = "price-desc"
	SortAreaDesc   SortOption = "area-desc"
)

// ParseSortOption maps a raw query value to a SortOption. Unknown values
// fall back to the default ordering so stale bookmarks keep working.
func ParseSortOption(s string) SortOption {
	switch SortOption(s) {
	case SortPriceAsc, SortPriceDesc, SortAreaDesc:
		return SortOption(s)
	}
	return SortMostRecent
}

// FilterSpec is the set of user-chosen constraints. Zero values mean
// "no constraint"; Sort zero value means most recent first.
type FilterSpec struct {
	SearchText   string
	CategorySlug string
	Purpose      domain.Purpose
	City         string
	Sort         SortOption
}

// Apply filters the published listings by the conjunction of every active
// constraint, then sorts them by the requested key. The input order is the
// tie-break: the sort is stable, so listings comparing equal keep their
// relative store order (creation time descending).
//
// A category slug that resolves to no known category drops the constraint
// instead of forcing an empty result. The engine performs no I/O and
// cannot fail.
func Apply(listings []domain.Listing, categories []domain.Category, spec FilterSpec) []domain.Listing {
	result := make([]domain.Listing, len(listings))
	copy(result, listings)

	if q := strings.ToLower(strings.TrimSpace(spec.SearchText)); q != "" {
		result = filter(result, func(l domain.Listing) bool {
			return strings.Contains(strings.ToLower(l.Title), q) ||
				strings.Contains(strings.ToLower(l.City), q) ||
				strings.Contains(strings.ToLower(l.Neighborhood), q) ||
				strings.Contains(strings.ToLower(l.InternalCode), q)
		})
	}

	if spec.CategorySlug != "" {
		if category := categoryBySlug(categories, spec.CategorySlug); category != nil {
			result = filter(result, func(l domain.Listing) bool {
				return l.CategoryID != nil && *l.CategoryID == category.ID
			})
		}
	}

	if spec.Purpose != "" {
		result = filter(result, func(l domain.Listing) bool {
			return l.Purpose == spec.Purpose
		})
	}

	if spec.City != "" {
		result = filter(result, func(l domain.Listing) bool {
			return l.City == spec.City
		})
	}

	switch spec.Sort {
	case SortPriceAsc:
		// sale price is the sort key for both price sorts, regardless
		// of the listing's purpose
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price < result[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price > result[j].Price
		})
	case SortAreaDesc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].TotalArea > result[j].TotalArea
		})
	default:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		})
	}

	return result
}

func filter(listings []domain.Listing, keep func(domain.Listing) bool) []domain.Listing {
	out := listings[:0]
	for _, l := range listings {
		if keep(l) {
			out = append(out, l)
		}
	}
	return out
}

func categoryBySlug(categories []domain.Category, slug string) *domain.Category {
	for i := range categories {
		if categories[i].Slug == slug {
			return &categories[i]
		}
	}
	return nil
}
