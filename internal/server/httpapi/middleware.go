package httpapi

import (
	"strings"

	"github.com/dynsched/dynsched/internal/common"
	"github.com/dynsched/dynsched/internal/server/auth"
	"github.com/gofiber/fiber/v2"
)

// userIDKey is the fiber locals key holding the authenticated user id.
const userIDKey = "userID"

// requireAuth rejects the request unless it carries a valid bearer token.
// Expired and malformed tokens both produce the same 401 body, so callers
// cannot distinguish the two. The guard never touches any store.
func (s *Server) requireAuth(c *fiber.Ctx) error {
	header := c.Get(common.AuthorizationHeaderName)
	if header == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{Error: "unauthorized"})
	}

	if !strings.HasPrefix(header, common.BearerSchemePrefix) {
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{Error: "unauthorized"})
	}

	token := strings.TrimPrefix(header, common.BearerSchemePrefix)
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{Error: "unauthorized"})
	}

	userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{Error: "unauthorized"})
	}

	c.Locals(userIDKey, userID)
	return c.Next()
}

// authedUserID returns the identity stored by requireAuth.
func authedUserID(c *fiber.Ctx) string {
	id, _ := c.Locals(userIDKey).(string)
	return id
}
