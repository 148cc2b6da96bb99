package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"imobsite/internal/database"
	"imobsite/internal/domain"
	"imobsite/internal/middleware"
	"imobsite/internal/modules/admin"
	"imobsite/internal/modules/auth"
	"imobsite/internal/modules/catalog"
	"imobsite/internal/modules/dashboard"
	"imobsite/internal/modules/lead"
	"imobsite/internal/modules/notification"
	"imobsite/internal/modules/upload"
	jwtsvc "imobsite/internal/pkg/jwt"
	"imobsite/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}
	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	uploadsDir := os.Getenv("UPLOADS_DIR")
	if uploadsDir == "" {
		uploadsDir = upload.UploadsBaseDir
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	listingRepo := repository.NewListingRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	leadRepo := repository.NewLeadRepository(db)
	userRepo := repository.NewUserRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)

	feed := notification.NewFeed()
	hub := notification.NewHub(feed, leadRepo)
	defer hub.Close()
	wsHandler := notification.NewWSHandler(hub, j)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(listingRepo, categoryRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	leadService := lead.NewService(leadRepo, feed)
	leadHandler := lead.NewHandler(leadService)

	dashboardService := dashboard.NewService(listingRepo, leadRepo, categoryRepo)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	adminService := admin.NewService(listingRepo, categoryRepo, userRepo, settingRepo)
	adminHandler := admin.NewHandler(adminService)

	uploadService := upload.NewService(listingRepo, uploadsDir, upload.StaticURLBase)
	uploadHandler := upload.NewHandler(uploadService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	r.Static(upload.StaticURLBase, uploadsDir)

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)
		catalogHandler.RegisterRoutes(v1)
		leadHandler.RegisterPublicRoutes(v1)

		// protected back office
		protected := v1.Group("/admin")
		protected.Use(middleware.Auth(j))
		protected.Use(middleware.RequireRole(string(domain.RoleAdmin), string(domain.RoleEditor)))
		{
			authHandler.RegisterProtectedRoutes(protected)
			leadHandler.RegisterAdminRoutes(protected)
			dashboardHandler.RegisterRoutes(protected)
			adminHandler.RegisterRoutes(protected)
			uploadHandler.RegisterRoutes(protected)
		}

		// websocket upgrades cannot carry an Authorization header, so
		// this route authenticates itself via the token query param
		v1.GET("/admin/notifications/ws", wsHandler.HandleWebSocket)
	}

	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
