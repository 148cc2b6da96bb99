package catalog

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"imobsite/internal/domain"
	"imobsite/internal/pkg/response"
)

const (
	featuredLimit = 6
	relatedLimit  = 3
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetListings handles GET /api/v1/listings?q=&category=&purpose=&city=&sort=
func (h *Handler) GetListings(c *gin.Context) {
	spec := FilterSpec{
		SearchText:   c.Query("q"),
		CategorySlug: c.Query("category"),
		City:         c.Query("city"),
		Sort:         ParseSortOption(c.Query("sort")),
	}
	// an unknown purpose is a dropped constraint, not an error
	if purpose, ok := domain.ParsePurpose(c.Query("purpose")); ok {
		spec.Purpose = purpose
	}

	listings, err := h.service.List(c.Request.Context(), spec)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load listings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"listings": NewListingViews(listings),
		"total":    len(listings),
	})
}

// GetFeatured handles GET /api/v1/listings/featured
func (h *Handler) GetFeatured(c *gin.Context) {
	listings, err := h.service.Featured(c.Request.Context(), featuredLimit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load listings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"listings": NewListingViews(listings)})
}

// GetListingBySlug handles GET /api/v1/listings/:slug
func (h *Handler) GetListingBySlug(c *gin.Context) {
	listing, err := h.service.BySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Listing not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load listing")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"listing": NewListingView(*listing)})
}

// GetRelated handles GET /api/v1/listings/:slug/related
func (h *Handler) GetRelated(c *gin.Context) {
	listing, err := h.service.BySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Listing not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load listing")
		return
	}

	related, err := h.service.Related(c.Request.Context(), listing, relatedLimit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load listings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"listings": NewListingViews(related)})
}

// GetCities handles GET /api/v1/cities
func (h *Handler) GetCities(c *gin.Context) {
	cities, err := h.service.Cities(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load cities")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"cities": cities})
}

// GetCategories handles GET /api/v1/categories
func (h *Handler) GetCategories(c *gin.Context) {
	categories, err := h.service.Categories(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load categories")
		return
	}

	views := make([]gin.H, len(categories))
	for i, cat := range categories {
		views[i] = gin.H{
			"category":      cat,
			"resolved_icon": domain.ResolveIcon(cat.Icon),
		}
	}
	response.Success(c, http.StatusOK, gin.H{"categories": views})
}

// GetCategoryBySlug handles GET /api/v1/categories/:slug
func (h *Handler) GetCategoryBySlug(c *gin.Context) {
	category, count, err := h.service.CategoryBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Category not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load category")
		return
	}

	response.Success(c, http.StatusOK, CategoryView{
		Category:     *category,
		ResolvedIcon: domain.ResolveIcon(category.Icon),
		Count:        count,
	})
}

// RegisterRoutes registers the public catalog routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	listings := r.Group("/listings")
	{
		listings.GET("", h.GetListings)
		listings.GET("/featured", h.GetFeatured)
		listings.GET("/:slug", h.GetListingBySlug)
		listings.GET("/:slug/related", h.GetRelated)
	}

	r.GET("/cities", h.GetCities)

	categories := r.Group("/categories")
	{
		categories.GET("", h.GetCategories)
		categories.GET("/:slug", h.GetCategoryBySlug)
	}
}
