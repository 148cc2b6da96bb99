package catalog

import "imobsite/internal/domain"

// Price suffixes shown next to the displayed price.
const (
	SuffixMonthly = "/month"
	SuffixDaily   = "/day"
)

// DisplayPrice derives the price a visitor sees for a listing.
//
// Rent and seasonal listings show the rental price when one is set,
// with the period suffix; when no rental price is set they fall back to
// the sale price and the suffix is dropped, since the shown figure is
// not a per-period amount. Sale listings always show the sale price
// with no suffix.
func DisplayPrice(l domain.Listing) (price float64, suffix string) {
	switch l.Purpose {
	case domain.PurposeRent:
		if l.RentalPrice != nil {
			return *l.RentalPrice, SuffixMonthly
		}
		return l.Price, ""
	case domain.PurposeSeasonal:
		if l.RentalPrice != nil {
			return *l.RentalPrice, SuffixDaily
		}
		return l.Price, ""
	default:
		return l.Price, ""
	}
}

// CoverImage returns the image flagged as cover, or the first image by
// position when none is flagged, or nil for a listing without images.
func CoverImage(l domain.Listing) *domain.ListingImage {
	for i := range l.Images {
		if l.Images[i].IsCover {
			return &l.Images[i]
		}
	}
	if len(l.Images) > 0 {
		return &l.Images[0]
	}
	return nil
}
