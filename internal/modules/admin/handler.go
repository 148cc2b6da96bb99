package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"imobsite/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(admin *gin.RouterGroup) {
	listings := admin.Group("/listings")
	{
		listings.GET("", h.ListListings)
		listings.POST("", h.CreateListing)
		listings.GET("/:id", h.GetListing)
		listings.PUT("/:id", h.UpdateListing)
		listings.DELETE("/:id", h.DeleteListing)
	}

	categories := admin.Group("/categories")
	{
		categories.GET("", h.ListCategories)
		categories.POST("", h.CreateCategory)
		categories.PUT("/:id", h.UpdateCategory)
		categories.DELETE("/:id", h.DeleteCategory)
	}

	users := admin.Group("/users")
	{
		users.GET("", h.ListUsers)
		users.POST("", h.CreateUser)
		users.DELETE("/:id", h.DeleteUser)
	}

	settings := admin.Group("/settings")
	{
		settings.GET("", h.GetSettings)
		settings.PUT("", h.UpdateSettings)
	}
}

// -------------------- Listings --------------------

func (h *Handler) ListListings(c *gin.Context) {
	listings, err := h.service.ListListings(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load listings")
		return
	}
	response.Success(c, http.StatusOK, listings)
}

func (h *Handler) GetListing(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	listing, err := h.service.GetListing(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrListingNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Listing not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load listing")
		return
	}
	response.Success(c, http.StatusOK, listing)
}

func (h *Handler) CreateListing(c *gin.Context) {
	var req ListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	listing, err := h.service.CreateListing(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrCodeTaken) {
			response.Error(c, http.StatusConflict, "CODE_TAKEN", "Internal code already exists")
			return
		}
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create listing")
		return
	}
	response.Success(c, http.StatusCreated, listing)
}

func (h *Handler) UpdateListing(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req ListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	listing, err := h.service.UpdateListing(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrListingNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Listing not found")
			return
		}
		if errors.Is(err, ErrCodeTaken) {
			response.Error(c, http.StatusConflict, "CODE_TAKEN", "Internal code already exists")
			return
		}
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update listing")
		return
	}
	response.Success(c, http.StatusOK, listing)
}

func (h *Handler) DeleteListing(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.service.DeleteListing(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrListingNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Listing not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete listing")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// -------------------- Categories --------------------

func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.service.ListCategories(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load categories")
		return
	}
	response.Success(c, http.StatusOK, categories)
}

func (h *Handler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	category, err := h.service.CreateCategory(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create category")
		return
	}
	response.Success(c, http.StatusCreated, category)
}

func (h *Handler) UpdateCategory(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	category, err := h.service.UpdateCategory(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrCategoryNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Category not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update category")
		return
	}
	response.Success(c, http.StatusOK, category)
}

func (h *Handler) DeleteCategory(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.service.DeleteCategory(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrCategoryNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Category not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete category")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// -------------------- Users --------------------

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load users")
		return
	}
	response.Success(c, http.StatusOK, users)
}

func (h *Handler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	user, err := h.service.CreateUser(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			response.Error(c, http.StatusConflict, "EMAIL_TAKEN", "Email already exists")
			return
		}
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create user")
		return
	}
	response.Success(c, http.StatusCreated, user)
}

func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	callerID := c.GetInt64("user_id")
	if err := h.service.DeleteUser(c.Request.Context(), id, callerID); err != nil {
		if errors.Is(err, ErrCannotDeleteSelf) {
			response.Error(c, http.StatusBadRequest, "CANNOT_DELETE_SELF", "Cannot delete own account")
			return
		}
		response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete user")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// -------------------- Settings --------------------

func (h *Handler) GetSettings(c *gin.Context) {
	settings, err := h.service.GetSettings(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load settings")
		return
	}
	response.Success(c, http.StatusOK, settings)
}

func (h *Handler) UpdateSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	settings, err := h.service.UpdateSettings(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update settings")
		return
	}
	response.Success(c, http.StatusOK, settings)
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid ID")
		return 0, false
	}
	return id, true
}
