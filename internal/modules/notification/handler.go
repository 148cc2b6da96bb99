package notification

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"imobsite/internal/domain"
	"imobsite/internal/pkg/jwt"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origin check is relaxed here; tighten per deployment.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WSHandler upgrades admin connections onto the notification hub.
type WSHandler struct {
	hub        *Hub
	jwtService *jwt.Service
}

func NewWSHandler(hub *Hub, jwtService *jwt.Service) *WSHandler {
	return &WSHandler{hub: hub, jwtService: jwtService}
}

// HandleWebSocket serves GET /admin/notifications/ws?token=JWT.
//
// The token rides in the query string because browsers cannot set
// headers on a WebSocket upgrade.
func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Token is required. Use ?token=YOUR_JWT_TOKEN",
		})
		return
	}

	claims, err := h.jwtService.ValidateToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid or expired token",
		})
		return
	}

	if claims.Role != string(domain.RoleAdmin) && claims.Role != string(domain.RoleEditor) {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Admin access required",
		})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	log.Printf("Admin %d connected to notifications", claims.UserID)
	h.hub.ServeWS(conn, claims.UserID)
	log.Printf("Admin %d disconnected from notifications", claims.UserID)
}
