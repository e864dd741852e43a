package identity

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"
)

// Middleware resolves the Authorization bearer token to a member and injects
// it into the request context. Resolution is best-effort: requests without a
// token, or with an unknown one, proceed anonymously and their writes are
// attributed to SystemActor. No endpoint is gated on identity.
func Middleware(service *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader || token == "" {
			slog.Debug("malformed authorization header, proceeding anonymously")
			c.Next()
			return
		}

		member, err := service.ResolveToken(c.Request.Context(), token)
		if err != nil {
			slog.Warn("identity resolution failed, proceeding anonymously", "error", err)
			c.Next()
			return
		}
		if member != nil {
			c.Request = c.Request.WithContext(WithMember(c.Request.Context(), member))
		}
		c.Next()
	}
}
