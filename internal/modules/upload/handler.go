package upload

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"imobsite/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(admin *gin.RouterGroup) {
	g := admin.Group("/listings/:id/images")
	{
		g.POST("", h.UploadImages)
		g.PATCH("/:imageID/cover", h.SetCover)
		g.DELETE("/:imageID", h.DeleteImage)
	}
}

// UploadImages accepts one or more files in the "images" multipart field.
func (h *Handler) UploadImages(c *gin.Context) {
	listingID, ok := pathID(c, "id")
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_FORM", "Expected multipart form data")
		return
	}
	files := form.File["images"]
	if len(files) == 0 {
		response.Error(c, http.StatusBadRequest, "NO_FILES", "No images provided")
		return
	}

	images, err := h.service.SaveListingImages(c.Request.Context(), listingID, files)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyFile), errors.Is(err, ErrInvalidMimeType):
			response.Error(c, http.StatusBadRequest, "INVALID_FILE", err.Error())
		case errors.Is(err, ErrFileTooLarge):
			response.Error(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Listing not found")
		default:
			response.Error(c, http.StatusInternalServerError, "UPLOAD_FAILED", "Failed to upload images")
		}
		return
	}

	response.Success(c, http.StatusCreated, images)
}

func (h *Handler) SetCover(c *gin.Context) {
	listingID, ok := pathID(c, "id")
	if !ok {
		return
	}
	imageID, ok := pathID(c, "imageID")
	if !ok {
		return
	}

	if err := h.service.SetCover(c.Request.Context(), listingID, imageID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Image not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to set cover image")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"cover": true})
}

func (h *Handler) DeleteImage(c *gin.Context) {
	listingID, ok := pathID(c, "id")
	if !ok {
		return
	}
	imageID, ok := pathID(c, "imageID")
	if !ok {
		return
	}

	if err := h.service.DeleteImage(c.Request.Context(), listingID, imageID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Image not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete image")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid "+name)
		return 0, false
	}
	return id, true
}
