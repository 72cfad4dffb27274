package middleware

import (
	"edubridge/backend/config"
	"edubridge/backend/models"
	"edubridge/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AuthMiddleware verifies the bearer token and resolves it to a user record.
// The user is stored in locals for downstream handlers.
func AuthMiddleware(db *gorm.DB, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := utils.ExtractUserIDFromToken(c, cfg)
		if err != nil {
			return utils.Unauthorized(c, err.Error())
		}

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			return utils.Unauthorized(c, "User not found")
		}
		if !user.IsActive {
			return utils.Unauthorized(c, "User is inactive")
		}

		c.Locals("user", &user)
		c.Locals("userId", user.ID)
		return c.Next()
	}
}

// RequireRoles rejects the request with 403 unless the authenticated user
// holds one of the allowed roles. Must run after AuthMiddleware.
func RequireRoles(roles ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := c.Locals("user").(*models.User)
		if !ok {
			return utils.Unauthorized(c, "Unauthorized")
		}
		for _, role := range roles {
			if user.Role == role {
				return c.Next()
			}
		}
		return utils.Forbidden(c, "Insufficient role")
	}
}
