package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/sponsorlink/backend/internal/auth"
	"github.com/sponsorlink/backend/internal/config"
	"github.com/sponsorlink/backend/internal/rbac"
)

const (
	CtxIdentity = "identity"
	CtxTokenID  = "token_id"
)

// RevokedTokenKey is the redis key holding a logged-out token id until the
// token would have expired anyway.
func RevokedTokenKey(jti string) string {
	return "revoked_token:" + jti
}

func AuthMiddleware(cfg *config.Config, rdb *redis.Client, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing authorization header"})
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenStr == authHeader {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid authorization format"})
		}

		claims, err := auth.ParseJWT(cfg.JWTSecret, tokenStr)
		if err != nil {
			log.Debug("jwt parse error", zap.Error(err))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid or expired token"})
		}

		if claims.ID != "" {
			n, err := rdb.Exists(c.Context(), RevokedTokenKey(claims.ID)).Result()
			if err == nil && n > 0 {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "token revoked"})
			}
		}

		c.Locals(CtxIdentity, auth.Identity{UserID: claims.UserID, Role: claims.Role})
		c.Locals(CtxTokenID, claims.ID)

		return c.Next()
	}
}

func GetIdentity(c *fiber.Ctx) auth.Identity {
	id, _ := c.Locals(CtxIdentity).(auth.Identity)
	return id
}

func GetTokenID(c *fiber.Ctx) string {
	id, _ := c.Locals(CtxTokenID).(string)
	return id
}

// RequirePermission gates a route on the caller's role holding the
// permission. Ownership checks against the stored resource happen in the
// services, not here.
func RequirePermission(permission string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !rbac.HasPermission(GetIdentity(c).Role, permission) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "access denied"})
		}
		return c.Next()
	}
}
