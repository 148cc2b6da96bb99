package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"imobsite/internal/domain"
)

func f64(v float64) *float64 { return &v }

func TestDisplayPrice_RentUsesRentalPrice(t *testing.T) {
	price, suffix := DisplayPrice(domain.Listing{
		Purpose:     domain.PurposeRent,
		Price:       450000,
		RentalPrice: f64(2500),
	})

	assert.Equal(t, 2500.0, price)
	assert.Equal(t, "/month", suffix)
}

func TestDisplayPrice_RentFallsBackToSalePriceWithoutSuffix(t *testing.T) {
	price, suffix := DisplayPrice(domain.Listing{
		Purpose: domain.PurposeRent,
		Price:   450000,
	})

	assert.Equal(t, 450000.0, price)
	assert.Empty(t, suffix)
}

func TestDisplayPrice_Seasonal(t *testing.T) {
	price, suffix := DisplayPrice(domain.Listing{
		Purpose:     domain.PurposeSeasonal,
		Price:       800000,
		RentalPrice: f64(350),
	})
	assert.Equal(t, 350.0, price)
	assert.Equal(t, "/day", suffix)

	price, suffix = DisplayPrice(domain.Listing{
		Purpose: domain.PurposeSeasonal,
		Price:   800000,
	})
	assert.Equal(t, 800000.0, price)
	assert.Empty(t, suffix)
}

func TestDisplayPrice_SaleIgnoresRentalPrice(t *testing.T) {
	price, suffix := DisplayPrice(domain.Listing{
		Purpose:     domain.PurposeSale,
		Price:       600000,
		RentalPrice: f64(3000),
	})

	assert.Equal(t, 600000.0, price)
	assert.Empty(t, suffix)
}

func TestCoverImage(t *testing.T) {
	flagged := domain.Listing{Images: []domain.ListingImage{
		{ID: 1, URL: "a.jpg", Position: 0},
		{ID: 2, URL: "b.jpg", Position: 1, IsCover: true},
	}}
	assert.Equal(t, "b.jpg", CoverImage(flagged).URL)

	// no explicit cover: first image by position is the cover
	unflagged := domain.Listing{Images: []domain.ListingImage{
		{ID: 1, URL: "a.jpg", Position: 0},
		{ID: 2, URL: "b.jpg", Position: 1},
	}}
	assert.Equal(t, "a.jpg", CoverImage(unflagged).URL)

	assert.Nil(t, CoverImage(domain.Listing{}))
}
