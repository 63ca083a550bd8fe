package gateway

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pdcgo/site_ledger_service/authorization"
)

const identityKey = "ledger_identity"

// RequestLogger writes one line per request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		slog.Info("http request",
			slog.Int("status", c.Writer.Status()),
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.String("query", query),
			slog.String("ip", c.ClientIP()),
			slog.Duration("latency", time.Since(start)),
		)
	}
}

// Authenticate resolves the bearer token into an identity for the
// handlers behind it.
func Authenticate(auth authorization.Authorization) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := auth.AuthIdentityFromHeader(c.Request.Header)
		err := identity.Err()
		if err != nil {
			writeError(c, err)
			return
		}

		c.Set(identityKey, identity.Identity())
		c.Next()
	}
}

func identityOf(c *gin.Context) authorization.Identity {
	value, ok := c.Get(identityKey)
	if !ok {
		return nil
	}

	identity, _ := value.(authorization.Identity)
	return identity
}
