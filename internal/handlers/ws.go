package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/chizhinime/brand-pawa-sub000/internal/logger"
	"github.com/chizhinime/brand-pawa-sub000/internal/services"
	"github.com/chizhinime/brand-pawa-sub000/internal/ws"
)

type WSHandler struct {
	hub         *ws.Hub
	authService *services.AuthService
	log         *logger.Logger
}

func NewWSHandler(hub *ws.Hub, authService *services.AuthService, log *logger.Logger) *WSHandler {
	return &WSHandler{hub: hub, authService: authService, log: log}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleActivitySocket godoc
// @Summary      WebSocket activity stream
// @Description  Connect via WebSocket to receive the caller's activity events as they happen; pass the JWT as a token query parameter
// @Tags         websocket
// @Param        token query string true "JWT"
// @Router       /ws/activity [get]
func (h *WSHandler) HandleActivitySocket(c *gin.Context) {
	userID, err := h.authService.ValidateToken(c.Query("token"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid or expired token"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("websocket upgrade error", "error", err)
		return
	}

	h.hub.AddConnection(userID, conn)
	defer h.hub.RemoveConnection(userID, conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
