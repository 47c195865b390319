package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/Lexv0lk/token-store/internal/pkg/jwt"
	"github.com/Lexv0lk/token-store/internal/pkg/ratelimit"
	"github.com/Lexv0lk/token-store/internal/token/domain"
	"github.com/gin-gonic/gin"
)

const (
	authHeaderName   = "Authorization"
	CallerContextKey = "caller"
)

// NewAuthMiddleware resolves the bearer token into the caller's ledger account.
func NewAuthMiddleware(parser jwt.TokenParser, secretKey string) gin.HandlerFunc {
	secret := []byte(secretKey)

	return func(c *gin.Context) {
		header := c.GetHeader(authHeaderName)
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "missing authorization header"})
			return
		}

		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "invalid auth header"})
			return
		}

		claims, err := parser.ParseToken(secret, parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "invalid token"})
			return
		}

		c.Set(jwt.TokenContextKey, parts[1])
		c.Set(CallerContextKey, domain.Address(claims.Account))
		c.Next()
	}
}

// NewRateLimitMiddleware keys buckets by client IP. A nil limiter lets every request through.
func NewRateLimitMiddleware(limiter *ratelimit.KeyLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP(), time.Now()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"errors": "too many requests"})
			return
		}

		c.Next()
	}
}

func callerFrom(c *gin.Context) (domain.Address, bool) {
	value, exists := c.Get(CallerContextKey)
	if !exists {
		return "", false
	}

	caller, ok := value.(domain.Address)
	return caller, ok && caller != ""
}
