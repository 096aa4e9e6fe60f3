package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/unipath/counsel-svc/internal/helper"
)

func AuthMiddleware(auth helper.Auth) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		tokenStr := strings.TrimSpace(ctx.Cookies("access_token"))
		if tokenStr == "" {
			tokenStr = strings.TrimSpace(ctx.Get("Authorization"))
		}

		claims, err := auth.VerifyToken(tokenStr)
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		ctx.Locals("userID", claims.UserID)
		ctx.Locals("user", claims)
		return ctx.Next()
	}
}

// UserID reads the authenticated identity set by AuthMiddleware.
func UserID(ctx *fiber.Ctx) uint {
	if id, ok := ctx.Locals("userID").(uint); ok {
		return id
	}
	return 0
}
