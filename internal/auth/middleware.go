package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	ctxUserID    = "user_id"
	ctxUserEmail = "user_email"
	ctxUserRoles = "user_roles"
	ctxToken     = "bearer_token"
)

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || strings.TrimSpace(parts[0]) != "Bearer" {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

func setIdentity(c *gin.Context, token string, claims *Claims) {
	c.Set(ctxUserID, claims.UserID)
	c.Set(ctxUserEmail, claims.Subject)
	c.Set(ctxUserRoles, claims.Roles)
	c.Set(ctxToken, token)
}

func rejectToken(c *gin.Context, err error) {
	if errors.Is(err, ErrTokenExpired) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token expired"})
	} else {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or malformed token"})
	}
	c.Abort()
}

// Middleware requires a valid backend-issued bearer token.
func Middleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		claims, err := ValidateToken(token, secret)
		if err != nil {
			rejectToken(c, err)
			return
		}

		setIdentity(c, token, claims)
		c.Next()
	}
}

// OptionalMiddleware lets unauthenticated requests through without an
// identity, for surfaces that work anonymously. A token that is present
// but invalid is still rejected rather than silently downgraded.
func OptionalMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.Next()
			return
		}

		claims, err := ValidateToken(token, secret)
		if err != nil {
			rejectToken(c, err)
			return
		}

		setIdentity(c, token, claims)
		c.Next()
	}
}

// RequireRole gates staff surfaces on a role claim.
func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roles, exists := c.Get(ctxUserRoles)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User roles not found"})
			c.Abort()
			return
		}

		roleList, ok := roles.([]string)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid roles type"})
			c.Abort()
			return
		}

		claims := Claims{Roles: roleList}
		if !claims.HasRole(requiredRole) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// Token returns the raw bearer token for backend passthrough.
func Token(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxToken)
	if !exists {
		return "", false
	}

	token, ok := v.(string)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}

// IsAuthenticated reports whether the request carried a valid token.
func IsAuthenticated(c *gin.Context) bool {
	_, ok := Token(c)
	return ok
}

func UserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(ctxUserID)
	if !exists {
		return 0, false
	}

	id, ok := v.(int64)
	if !ok {
		return 0, false
	}
	return id, true
}
