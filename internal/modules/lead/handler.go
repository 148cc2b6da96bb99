package lead

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

// SubmitLead handles POST /api/v1/leads (public).
func (h *Handler) SubmitLead(c *gin.Context) {
	var req SubmitLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	lead, fields, err := h.service.Submit(c.Request.Context(), &req)
	if err != nil {
		// no partial state survives a store failure; the submitter
		// just retries
		response.Error(c, http.StatusServiceUnavailable, "STORE_UNAVAILABLE", "Could not save your message, please try again")
		return
	}
	if fields != nil {
		response.ValidationFailed(c, fields)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"lead": lead})
}

// ListLeads handles GET /api/v1/admin/leads?status=&limit=&page=
func (h *Handler) ListLeads(c *gin.Context) {
	limit := 50
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 && v <= 200 {
		limit = v
	}
	offset := 0
	if v, err := strconv.Atoi(c.Query("page")); err == nil && v > 1 {
		offset = (v - 1) * limit
	}

	leads, total, err := h.service.List(c.Request.Context(), c.Query("status"), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load leads")
		return
	}

	response.Success(c, http.StatusOK, LeadListResponse{Leads: leads, Total: total})
}

// UpdateStatus handles PATCH /api/v1/admin/leads/:id/status
func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid lead ID")
		return
	}

	var req UpdateLeadStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if err := h.service.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		switch {
		case errors.Is(err, ErrInvalidStatus):
			response.Error(c, http.StatusBadRequest, "INVALID_STATUS", "Status must be one of: new, in_contact, closed")
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Lead not found")
		default:
			response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update lead")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Status updated"})
}

// GetStats handles GET /api/v1/admin/leads/stats
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load stats")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"stats": stats})
}

// RegisterPublicRoutes registers the public intake route.
func (h *Handler) RegisterPublicRoutes(r *gin.RouterGroup) {
	r.POST("/leads", h.SubmitLead)
}

// RegisterAdminRoutes registers the admin lead workflow routes.
func (h *Handler) RegisterAdminRoutes(r *gin.RouterGroup) {
	leads := r.Group("/leads")
	{
		leads.GET("", h.ListLeads)
		leads.GET("/stats", h.GetStats)
		leads.PATCH("/:id/status", h.UpdateStatus)
	}
}
