package handler

import (
	"applicant-portal-be/internal/identity"
	"applicant-portal-be/internal/pkg/logger"
	internalWS "applicant-portal-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/golang-jwt/jwt/v5"
)

// SessionEventHandler upgrades portal tabs to websocket connections so they
// hear about session changes without polling.
type SessionEventHandler struct {
	provider  identity.Provider
	hub       *internalWS.Hub
	jwtSecret string
	logger    logger.ILogger
}

func NewSessionEventHandler(provider identity.Provider, hub *internalWS.Hub, jwtSecret string, log logger.ILogger) *SessionEventHandler {
	return &SessionEventHandler{
		provider:  provider,
		hub:       hub,
		jwtSecret: jwtSecret,
		logger:    log,
	}
}

func (h *SessionEventHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/ws", h.ServeWs)
}

// ServeWs authenticates the handshake and hands the connection to the hub.
// Browsers cannot set headers on websocket requests, so the token may arrive
// as a query parameter as well.
func (h *SessionEventHandler) ServeWs(c *fiber.Ctx) error {
	tokenStr := c.Query("token")
	if tokenStr == "" {
		authHeader := c.Get("Authorization")
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			tokenStr = authHeader[7:]
		}
	}
	if tokenStr == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing token (query 'token' or header 'Authorization')"})
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.ErrUnauthorized
		}
		return []byte(h.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		h.logger.Warn("SessionEventHandler", "Invalid token in WS handshake", map[string]interface{}{"error": err})
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token claims"})
	}
	sessionID, ok := claims["session_id"].(string)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token missing session_id"})
	}

	session, found := h.provider.Resolve(sessionID)
	if !found {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Session expired"})
	}

	if websocket.IsWebSocketUpgrade(c) {
		userID := session.UserId
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("SessionEventHandler", "WebSocket session started", map[string]interface{}{"user_id": userID})
			internalWS.ServeWs(h.hub, conn, userID)
			h.logger.Info("SessionEventHandler", "WebSocket session ended", map[string]interface{}{"user_id": userID})
		})(c)
	}
	return fiber.ErrUpgradeRequired
}
