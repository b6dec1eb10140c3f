package middleware

import (
	"github.com/denimfab/denim_factory_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// identityKey is the key used to store the authenticated identity in the
// request context.
const identityKey = contextKey("identity")

// Identity is the authenticated caller decoded from the bearer token.
type Identity struct {
	UserID   int64
	Username string
	Role     domain.Role
}

// GetIdentityFromContext retrieves the authenticated identity from the
// request context. It returns the identity and a boolean indicating if it
// was found.
func GetIdentityFromContext(c *gin.Context) (Identity, bool) {
	val := c.Request.Context().Value(identityKey)
	if val == nil {
		return Identity{}, false
	}
	identity, ok := val.(Identity)
	return identity, ok
}
