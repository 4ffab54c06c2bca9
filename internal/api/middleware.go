package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/infogen87/myportfolio/internal/repository"
	"github.com/infogen87/myportfolio/internal/service"
)

const userKey = "current_user"

func bearer(header string) string {
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return header
}

// RequireUser resolves the bearer token to a stored user and aborts with
// 401 on an invalid token, or 404 when the token's subject no longer
// exists. Requests without a token fall back to the configured default
// owner when one is set (single-tenant mode), otherwise 401.
func (h *Handler) RequireUser(c *gin.Context) {
	raw := bearer(c.GetHeader("Authorization"))
	if raw == "" {
		if h.defaultOwnerID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}
		// Guard against a malformed configured owner id reaching the
		// uuid column as a raw comparison value.
		if _, err := uuid.Parse(h.defaultOwnerID); err != nil {
			h.abortError(c, service.ErrNotFound)
			return
		}
		user, err := h.auth.GetUser(h.defaultOwnerID)
		if err != nil {
			h.abortError(c, err)
			return
		}
		c.Set(userKey, user)
		c.Next()
		return
	}

	user, err := h.auth.ResolveToken(raw, time.Now())
	if err != nil {
		h.abortError(c, err)
		return
	}
	c.Set(userKey, user)
	c.Next()
}

func currentUser(c *gin.Context) *repository.User {
	return c.MustGet(userKey).(*repository.User)
}
