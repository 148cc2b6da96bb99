package catalog

import "imobsite/internal/domain"

// ListingView is a listing plus the derived presentation fields the
// cards render: the effective price, its period suffix and the cover URL.
type ListingView struct {
	domain.Listing
	DisplayPrice float64 `json:"display_price"`
	PriceSuffix  string  `json:"price_suffix,omitempty"`
	CoverURL     string  `json:"cover_url,omitempty"`
}

func NewListingView(l domain.Listing) ListingView {
	price, suffix := DisplayPrice(l)
	view := ListingView{
		Listing:      l,
		DisplayPrice: price,
		PriceSuffix:  suffix,
	}
	if cover := CoverImage(l); cover != nil {
		view.CoverURL = cover.URL
	}
	return view
}

func NewListingViews(listings []domain.Listing) []ListingView {
	views := make([]ListingView, len(listings))
	for i, l := range listings {
		views[i] = NewListingView(l)
	}
	return views
}

// CategoryView is a category with its resolved icon and listing count.
type CategoryView struct {
	domain.Category
	ResolvedIcon domain.CategoryIcon `json:"resolved_icon"`
	Count        int64               `json:"count"`
}
