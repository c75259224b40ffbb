package handler

import (
	"event-ticketing-be/internal/pkg/logger"
	"event-ticketing-be/internal/pkg/serverutils"
	internalWS "event-ticketing-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// CheckinFeedHandler upgrades staff clients onto the live check-in feed.
type CheckinFeedHandler struct {
	hub    *internalWS.Hub
	logger logger.ILogger
}

func NewCheckinFeedHandler(hub *internalWS.Hub, log logger.ILogger) *CheckinFeedHandler {
	return &CheckinFeedHandler{
		hub:    hub,
		logger: log,
	}
}

// ServeWs handles websocket requests from the peer.
func (h *CheckinFeedHandler) ServeWs(c *fiber.Ctx) error {
	// 1. Get Token source
	// Priority 1: Query Param (Browser standard)
	tokenStr := c.Query("token")

	// Priority 2: Authorization Header (Tooling/Non-browser standard)
	if tokenStr == "" {
		authHeader := c.Get("Authorization")
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			tokenStr = authHeader[7:]
		}
	}

	if tokenStr == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse("Missing token (Query 'token' or Header 'Authorization')"))
	}

	// 2. Parse JWT with the same secret as the HTTP middleware
	claims, err := serverutils.ParseToken(tokenStr)
	if err != nil {
		h.logger.Warn("CheckinFeedHandler", "Invalid Token in WS Handshake", map[string]interface{}{"error": err})
		return c.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse("Invalid token"))
	}

	// 3. Extract UserID from Claim
	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse("Token missing user_id"))
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse("Invalid user ID format in token"))
	}

	// Upgrade via Fiber WebSocket Middleware
	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("CheckinFeedHandler", "Starting WebSocket session", map[string]interface{}{"user_id": userID})
			internalWS.ServeWs(h.hub, conn, userID)
			h.logger.Info("CheckinFeedHandler", "WebSocket session ended", map[string]interface{}{"user_id": userID})
		})(c)
	}
	return fiber.ErrUpgradeRequired
}

// RegisterRoutes registers the websocket feed route.
func (h *CheckinFeedHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/ws/checkins", h.ServeWs)
}
