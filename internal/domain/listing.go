package domain

import "time"

// Purpose is what a listing is offered for.
type Purpose string

const (
	PurposeSale     Purpose = "sale"
	PurposeRent     Purpose = "rent"
	PurposeSeasonal Purpose = "seasonal"
)

// ParsePurpose maps a raw string to a Purpose. Unknown values return
// ok=false so callers can drop the constraint instead of failing.
func ParsePurpose(s string) (Purpose, bool) {
	switch Purpose(s) {
	case PurposeSale, PurposeRent, PurposeSeasonal:
		return Purpose(s), true
	}
	return "", false
}

// ListingStatus is the lifecycle state of a listing.
type ListingStatus string

const (
	StatusPublished ListingStatus = "published"
	StatusDraft     ListingStatus = "draft"
	StatusInactive  ListingStatus = "inactive"
	StatusSold      ListingStatus = "sold"
	StatusRented    ListingStatus = "rented"
)

func ParseListingStatus(s string) (ListingStatus, bool) {
	switch ListingStatus(s) {
	case StatusPublished, StatusDraft, StatusInactive, StatusSold, StatusRented:
		return ListingStatus(s), true
	}
	return "", false
}

type Listing struct {
	ID           int64         `json:"id"`
	Title        string        `json:"title"`
	Slug         string        `json:"slug" gorm:"uniqueIndex"`
	Description  string        `json:"description"`
	Purpose      Purpose       `json:"purpose"`
	PropertyType string        `json:"property_type"`
	Status       ListingStatus `json:"status" gorm:"index"`
	CategoryID   *int64        `json:"category_id"`
	InternalCode string        `json:"internal_code" gorm:"uniqueIndex;not null"`

	City         string   `json:"city"`
	Neighborhood string   `json:"neighborhood"`
	Address      string   `json:"address,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`

	Price       float64  `json:"price"`
	RentalPrice *float64 `json:"rental_price,omitempty"`
	CondoFee    *float64 `json:"condo_fee,omitempty"`
	PropertyTax *float64 `json:"property_tax,omitempty"`

	TotalArea     float64  `json:"total_area"`
	BuiltArea     *float64 `json:"built_area,omitempty"`
	Bedrooms      int      `json:"bedrooms"`
	Suites        int      `json:"suites"`
	Bathrooms     int      `json:"bathrooms"`
	ParkingSpaces int      `json:"parking_spaces"`
	Furnished     bool     `json:"furnished"`
	TradeAccepted bool     `json:"trade_accepted"`

	Featured       bool   `json:"featured"`
	SEOTitle       string `json:"seo_title,omitempty"`
	SEODescription string `json:"seo_description,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Category *Category      `json:"category,omitempty"`
	Images   []ListingImage `json:"images,omitempty"`
}

// ListingImage is one photo of a listing, ordered by Position.
// At most one image per listing carries IsCover; when none does,
// the first image by position is the cover by convention.
type ListingImage struct {
	ID        int64  `json:"id"`
	ListingID int64  `json:"listing_id" gorm:"index"`
	URL       string `json:"url"`
	Position  int    `json:"position"`
	IsCover   bool   `json:"is_cover"`
}
