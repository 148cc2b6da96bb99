package dashboard

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

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
	g := admin.Group("/dashboard")
	{
		g.GET("/stats", h.GetStats)
		g.GET("/activity", h.GetActivity)
		g.GET("/activity/export", h.ExportActivityCSV)
	}
}

func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load dashboard stats")
		return
	}
	response.Success(c, http.StatusOK, stats)
}

func (h *Handler) GetActivity(c *gin.Context) {
	days := periodParam(c)
	points, err := h.service.Activity(c.Request.Context(), days)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load activity")
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"period_days": NormalizePeriod(days),
		"points":      points,
	})
}

// ExportActivityCSV streams the activity series as a CSV report.
func (h *Handler) ExportActivityCSV(c *gin.Context) {
	days := NormalizePeriod(periodParam(c))
	points, err := h.service.Activity(c.Request.Context(), days)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load activity")
		return
	}

	filename := fmt.Sprintf("report-%d-days-%s.csv", days, time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"date", "leads", "listings"})
	for _, p := range points {
		_ = w.Write([]string{p.Date, strconv.Itoa(p.Leads), strconv.Itoa(p.Listings)})
	}
	w.Flush()
}

func periodParam(c *gin.Context) int {
	days, err := strconv.Atoi(c.DefaultQuery("period", strconv.Itoa(DefaultPeriod)))
	if err != nil {
		return DefaultPeriod
	}
	return days
}
