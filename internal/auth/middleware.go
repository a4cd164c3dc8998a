package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yourname/befree/internal"
	"github.com/yourname/befree/internal/storage"
)

// ContextUserKey is where the middleware stores the sanitized user.
const ContextUserKey = "user"

// CookieName matches the cookie set by the auth handlers.
const CookieName = "token"

func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	if cookie, err := c.Cookie(CookieName); err == nil {
		return cookie
	}
	return ""
}

// Required verifies the request token and loads the user it names. The
// user is stored sanitized on the context; a stale token whose user no
// longer resolves is rejected the same as a bad signature.
func Required(tokens *TokenService, users storage.UserRepository, logger internal.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		userID, err := tokens.Verify(token)
		if err != nil {
			logger.Warnf("auth: token rejected: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication failed"})
			return
		}

		user, err := users.FindByID(userID)
		if err != nil {
			logger.Errorf("auth: loading user %s failed: %v", userID, err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication failed"})
			return
		}
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired"})
			return
		}

		c.Set(ContextUserKey, storage.Sanitize(user))
		c.Next()
	}
}

// CurrentUser returns the authenticated user set by Required.
func CurrentUser(c *gin.Context) *internal.User {
	return c.MustGet(ContextUserKey).(*internal.User)
}
