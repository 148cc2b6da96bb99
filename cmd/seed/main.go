package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"imobsite/internal/database"
	"imobsite/internal/domain"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "imobsite.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (child tables first)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM listing_images")
	db.Exec("DELETE FROM leads")
	db.Exec("DELETE FROM listings")
	db.Exec("DELETE FROM categories")
	db.Exec("DELETE FROM site_settings")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Email:        "admin@imobsite.com",
		PasswordHash: string(adminHash),
		Name:         "Site Admin",
		Role:         domain.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatal(err)
	}

	editorHash, _ := bcrypt.GenerateFromPassword([]byte("editor123"), bcrypt.DefaultCost)
	editor := domain.User{
		Email:        "editor@imobsite.com",
		PasswordHash: string(editorHash),
		Name:         "Content Editor",
		Role:         domain.RoleEditor,
	}
	if err := db.Create(&editor).Error; err != nil {
		log.Fatal(err)
	}

	// ================== CATEGORIES ==================
	log.Println("Creating categories...")

	categories := []domain.Category{
		{Name: "Houses", Slug: "houses", SortOrder: 1, Icon: "Home"},
		{Name: "Apartments", Slug: "apartments", SortOrder: 2, Icon: "Building2"},
		{Name: "Farms", Slug: "farms", SortOrder: 3, Icon: "Mountain"},
		{Name: "Commercial", Slug: "commercial", SortOrder: 4, Icon: "Store"},
		{Name: "Land", Slug: "land", SortOrder: 5, Icon: "Trees"},
		{Name: "Beach Houses", Slug: "beach-houses", SortOrder: 6, Icon: "Umbrella"},
	}
	for i := range categories {
		if err := db.Create(&categories[i]).Error; err != nil {
			log.Fatal(err)
		}
	}

	houseCat := categories[0].ID
	aptCat := categories[1].ID
	beachCat := categories[5].ID

	// ================== LISTINGS ==================
	log.Println("Creating listings...")

	rental := func(v float64) *float64 { return &v }

	listings := []domain.Listing{
		{
			Title:        "House with Pool in Garden District",
			Slug:         "house-with-pool-in-garden-district",
			Description:  "Spacious family home with a private pool, gourmet area and landscaped garden.",
			Purpose:      domain.PurposeSale,
			PropertyType: "house",
			Status:       domain.StatusPublished,
			CategoryID:   &houseCat,
			InternalCode: "REF-001",
			City:         "Riverside",
			Neighborhood: "Garden District",
			Price:        450000,
			TotalArea:    320,
			BuiltArea:    rental(240),
			Bedrooms:     4,
			Suites:       2,
			Bathrooms:    3,
			ParkingSpaces: 2,
			Featured:     true,
		},
		{
			Title:        "Two Bedroom Apartment Downtown",
			Slug:         "two-bedroom-apartment-downtown",
			Description:  "Bright apartment close to shops and public transport.",
			Purpose:      domain.PurposeRent,
			PropertyType: "apartment",
			Status:       domain.StatusPublished,
			CategoryID:   &aptCat,
			InternalCode: "REF-002",
			City:         "Riverside",
			Neighborhood: "Downtown",
			Price:        280000,
			RentalPrice:  rental(1800),
			TotalArea:    78,
			BuiltArea:    rental(78),
			Bedrooms:     2,
			Bathrooms:    1,
			ParkingSpaces: 1,
			Furnished:    true,
			Featured:     true,
		},
		{
			Title:        "Beach House Steps from the Sand",
			Slug:         "beach-house-steps-from-the-sand",
			Description:  "Perfect for holiday rentals, fully furnished with ocean view.",
			Purpose:      domain.PurposeSeasonal,
			PropertyType: "house",
			Status:       domain.StatusPublished,
			CategoryID:   &beachCat,
			InternalCode: "REF-003",
			City:         "Porto Claro",
			Neighborhood: "Seafront",
			Price:        600000,
			RentalPrice:  rental(350),
			TotalArea:    180,
			BuiltArea:    rental(140),
			Bedrooms:     3,
			Suites:       1,
			Bathrooms:    2,
			Furnished:    true,
		},
		{
			Title:        "Draft Penthouse Listing",
			Slug:         "draft-penthouse-listing",
			Description:  "Work in progress, photos pending.",
			Purpose:      domain.PurposeSale,
			PropertyType: "apartment",
			Status:       domain.StatusDraft,
			CategoryID:   &aptCat,
			InternalCode: "REF-004",
			City:         "Riverside",
			Price:        890000,
			TotalArea:    210,
			Bedrooms:     3,
		},
	}
	for i := range listings {
		// Spread creation dates so the dashboard chart has history.
		listings[i].CreatedAt = time.Now().AddDate(0, 0, -i*3)
		if err := db.Create(&listings[i]).Error; err != nil {
			log.Fatal(err)
		}
	}

	images := []domain.ListingImage{
		{ListingID: listings[0].ID, URL: "/static/uploads/seed/house-pool-1.jpg", Position: 0, IsCover: true},
		{ListingID: listings[0].ID, URL: "/static/uploads/seed/house-pool-2.jpg", Position: 1},
		{ListingID: listings[1].ID, URL: "/static/uploads/seed/apartment-1.jpg", Position: 0, IsCover: true},
		{ListingID: listings[2].ID, URL: "/static/uploads/seed/beach-house-1.jpg", Position: 0, IsCover: true},
	}
	for i := range images {
		if err := db.Create(&images[i]).Error; err != nil {
			log.Fatal(err)
		}
	}

	// ================== LEADS ==================
	log.Println("Creating leads...")

	listingID := listings[0].ID
	leads := []domain.Lead{
		{
			Name:    "Carla Mendes",
			Email:   "carla.mendes@example.com",
			Phone:   "5511999990001",
			Message: "I would like to schedule a visit to the house with pool.",
			Origin:  domain.OriginListing,
			ListingID: &listingID,
			Status:  domain.LeadStatusNew,
		},
		{
			Name:    "John Baker",
			Email:   "john.baker@example.com",
			Phone:   "5511999990002",
			Message: "Do you work with financing options for first-time buyers?",
			Origin:  domain.OriginContact,
			Status:  domain.LeadStatusInContact,
		},
		{
			Name:    "Ana Souza",
			Email:   "ana.souza@example.com",
			Phone:   "5511999990003",
			Message: "I own a three bedroom apartment downtown and would like to list it for sale with your agency.",
			Origin:  domain.OriginAdvertise,
			Status:  domain.LeadStatusClosed,
		},
	}
	for i := range leads {
		leads[i].CreatedAt = time.Now().AddDate(0, 0, -i*2)
		if err := db.Create(&leads[i]).Error; err != nil {
			log.Fatal(err)
		}
	}

	// ================== SETTINGS ==================
	log.Println("Creating settings...")

	settings := []domain.SiteSetting{
		{Key: "site_name", Value: "Imobsite Realty"},
		{Key: "contact_email", Value: "contact@imobsite.com"},
		{Key: "contact_phone", Value: "+55 11 4000-0000"},
		{Key: "contact_whatsapp", Value: "+55 11 98888-0000"},
		{Key: "address", Value: "100 Main Avenue, Riverside"},
	}
	for i := range settings {
		if err := db.Create(&settings[i]).Error; err != nil {
			log.Fatal(err)
		}
	}

	log.Println("Seed completed.")
	log.Println("Admin login: admin@imobsite.com / admin123")
}
