package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"bgcatalog/backend/internal/identity"
	"bgcatalog/backend/pkg/jwt"
)

// MsgUnauthorized is the body error for a missing or rejected bearer token.
const MsgUnauthorized = "Missing or invalid Authorization header"

const userIDKey = "userID"

// Options configures the bearer middleware.
type Options struct {
	// Secret verifies HS256 tokens. Empty disables verification.
	Secret string
	// RequireValidToken rejects tokens that cannot be verified instead of
	// falling back to DefaultCaller.
	RequireValidToken bool
	// DefaultCaller is the identity of requests without a verifiable subject.
	DefaultCaller uuid.UUID
}

// BearerMiddleware requires an "Authorization: Bearer <token>" header and
// resolves the caller. A token signed with Secret whose subject is a user id
// identifies the caller; any other token maps to DefaultCaller unless
// RequireValidToken is set.
func BearerMiddleware(opts Options, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": MsgUnauthorized})
			return
		}

		caller := opts.DefaultCaller
		if opts.Secret != "" {
			subject, err := jwt.ParseSubject(opts.Secret, token)
			switch {
			case err == nil:
				caller = subject
			case opts.RequireValidToken:
				log.Debug().Err(err).Msg("Rejected bearer token")
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": MsgUnauthorized})
				return
			default:
				log.Debug().Err(err).Msg("Unverified bearer token, using default caller")
			}
		}

		c.Set(userIDKey, caller)
		c.Request = c.Request.WithContext(identity.WithCaller(c.Request.Context(), caller))
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || scheme != "Bearer" {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// CallerID returns the caller resolved by BearerMiddleware.
func CallerID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(userIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
