package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/denimfab/denim_factory_app/internal/core/domain"
	"github.com/denimfab/denim_factory_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware creates a Gin middleware handler that validates JWT bearer
// tokens and attaches the decoded identity to the request context.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authorization header format must be Bearer {token}"})
			return
		}

		claims, err := utils.ParseAndValidateJWT(parts[1], jwtSecret)
		if err != nil {
			logger.Warn("Invalid token", slog.String("error", err.Error()))
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": msg})
			return
		}

		userID, err := claims.UserID()
		if err != nil || !claims.Role.IsValid() {
			logger.Error("Token claims malformed", slog.String("subject", claims.Subject))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token claims"})
			return
		}

		identity := Identity{
			UserID:   userID,
			Username: claims.Username,
			Role:     claims.Role,
		}

		ctx := context.WithValue(c.Request.Context(), identityKey, identity)

		// Enrich the request logger with the caller for downstream handlers.
		enrichedLogger := GetLoggerFromCtx(ctx).With(
			slog.Int64("user_id", identity.UserID),
			slog.String("role", string(identity.Role)),
		)
		ctx = context.WithValue(ctx, loggerCtxKey, enrichedLogger)

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequireRole declares the capability a route needs. RequireRole(RoleAdmin)
// admits only admins; RequireRole(RoleDataEntry) admits both DATA_ENTRY and
// ADMIN callers.
func RequireRole(required domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentityFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		if identity.Role == required || identity.Role == domain.RoleAdmin {
			c.Next()
			return
		}

		logger := GetLoggerFromCtx(c.Request.Context())
		logger.Warn("Role check failed",
			slog.String("required_role", string(required)),
			slog.String("caller_role", string(identity.Role)),
		)
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden: insufficient role"})
	}
}
