package middleware

import (
	"context"
	"net/http"
	"strings"

	"todo_api/internal/logger"
	"todo_api/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserID = "user_id"
	ContextClaims = "claims"
)

// Authenticator validates a raw bearer token. Implemented by service.AuthService.
type Authenticator interface {
	Authenticate(ctx context.Context, raw string) (*service.Claims, error)
}

// JWT rejects requests without a valid, unrevoked bearer token and stores the
// caller's id and claims in the gin context.
func JWT(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			AuthEvents.WithLabelValues("rejected").Inc()
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}

		claims, err := auth.Authenticate(c.Request.Context(), raw)
		if err != nil {
			AuthEvents.WithLabelValues("rejected").Inc()
			logger.FromContext(c.Request.Context()).Debug("token rejected", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextClaims, claims)
		c.Request = c.Request.WithContext(logger.NewContext(
			c.Request.Context(),
			logger.FromContext(c.Request.Context()).With("user_id", claims.UserID),
		))
		c.Next()
	}
}

// UserID returns the authenticated user id set by JWT.
func UserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

// Claims returns the token claims set by JWT.
func Claims(c *gin.Context) (*service.Claims, bool) {
	v, ok := c.Get(ContextClaims)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*service.Claims)
	return claims, ok
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
