package assistant

import (
	"net/http"
	"time"

	"labbooking/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,

	// Dev default; restrict the origin check before exposing publicly.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WSHandler streams the assistant over a websocket. One connection, one
// question/answer loop; authentication comes in via ?token= because the
// browser websocket API cannot set headers.
type WSHandler struct {
	service    *Service
	jwtService *jwt.Service
	logger     *zap.Logger
}

func NewWSHandler(service *Service, jwtService *jwt.Service, logger *zap.Logger) *WSHandler {
	return &WSHandler{service: service, jwtService: jwtService, logger: logger}
}

func (h *WSHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/assistant/ws", h.HandleWebSocket)
}

func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token is required. Use ?token=YOUR_JWT_TOKEN"})
		return
	}

	claims, err := h.jwtService.ValidateToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	h.logger.Info("assistant chat connected", zap.Int64("user_id", claims.UserID))
	defer h.logger.Info("assistant chat disconnected", zap.Int64("user_id", claims.UserID))

	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})
	go h.pingLoop(conn)

	h.readLoop(c, conn, claims.UserID)
}

func (h *WSHandler) pingLoop(conn *websocket.Conn) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	// Data frames are written by the read loop only. Pings go out as control
	// frames, the one write gorilla permits from a second goroutine.
	for range ticker.C {
		if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(10*time.Second)); err != nil {
			return
		}
	}
}

func (h *WSHandler) readLoop(c *gin.Context, conn *websocket.Conn, userID int64) {
	for {
		var req AskRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure) {
				h.logger.Warn("websocket read error", zap.Int64("user_id", userID), zap.Error(err))
			}
			return
		}

		reply, err := h.service.Answer(c.Request.Context(), req.Message, req.Language)
		if err != nil {
			reply = &Reply{
				Role:      "assistant",
				Content:   tr(req.Language, "fallback"),
				Timestamp: time.Now(),
			}
		}

		if err := conn.WriteJSON(reply); err != nil {
			return
		}
	}
}
