package middleware

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/titipkan/internal/pkg/jwt"
	"github.com/piresc/titipkan/internal/pkg/models"
	"github.com/piresc/titipkan/internal/utils"
)

// JWTAuthMiddleware creates a middleware for JWT authentication.
// On success the user id and role are stored in the echo context under
// "user_id" (uuid.UUID) and "user_role" (models.Role).
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			tokenString := parts[1]

			claims, err := jwtpkg.ValidateToken(tokenString, config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			userIDStr, ok := (*claims)["user_id"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing user_id claim")
			}

			role, ok := (*claims)["role"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing role claim")
			}

			userID, err := uuid.Parse(fmt.Sprintf("%v", userIDStr))
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token: user_id is not a valid UUID")
			}

			c.Set("user_id", userID)
			c.Set("user_role", models.Role(fmt.Sprintf("%v", role)))

			return next(c)
		}
	}
}

// ActorFromContext extracts the authenticated user id and role placed in
// the context by JWTAuthMiddleware.
func ActorFromContext(c echo.Context) (uuid.UUID, models.Role, bool) {
	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return uuid.Nil, models.RoleGuest, false
	}
	role, ok := c.Get("user_role").(models.Role)
	if !ok {
		return uuid.Nil, models.RoleGuest, false
	}
	return userID, role, true
}
