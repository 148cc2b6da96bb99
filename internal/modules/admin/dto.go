package admin

type ListingRequest struct {
	Title        string `json:"title" binding:"required,min=3,max=200"`
	Slug         string `json:"slug"`
	Description  string `json:"description"`
	Purpose      string `json:"purpose" binding:"required,oneof=sale rent seasonal"`
	PropertyType string `json:"property_type"`
	Status       string `json:"status" binding:"required,oneof=published draft inactive sold rented"`

	CategoryID   *int64 `json:"category_id"`
	InternalCode string `json:"internal_code" binding:"required,max=50"`

	City         string   `json:"city" binding:"required"`
	Neighborhood string   `json:"neighborhood"`
	Address      string   `json:"address"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`

	Price       float64  `json:"price" binding:"gte=0"`
	RentalPrice *float64 `json:"rental_price"`
	CondoFee    *float64 `json:"condo_fee"`
	PropertyTax *float64 `json:"property_tax"`

	TotalArea     float64 `json:"total_area" binding:"gte=0"`
	BuiltArea     float64 `json:"built_area" binding:"gte=0"`
	Bedrooms      int     `json:"bedrooms" binding:"gte=0"`
	Suites        int     `json:"suites" binding:"gte=0"`
	Bathrooms     int     `json:"bathrooms" binding:"gte=0"`
	ParkingSpaces int     `json:"parking_spaces" binding:"gte=0"`

	Furnished     bool `json:"furnished"`
	TradeAccepted bool `json:"trade_accepted"`
	Featured      bool `json:"featured"`

	SEOTitle       string `json:"seo_title"`
	SEODescription string `json:"seo_description"`
}

type CategoryRequest struct {
	Name      string `json:"name" binding:"required,min=2,max=100"`
	Slug      string `json:"slug"`
	SortOrder int    `json:"sort_order" binding:"gte=0"`
	Icon      string `json:"icon"`
}

type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required,min=2"`
	Role     string `json:"role" binding:"required,oneof=admin editor"`
}

type UpdateSettingsRequest struct {
	Settings map[string]string `json:"settings" binding:"required"`
}
