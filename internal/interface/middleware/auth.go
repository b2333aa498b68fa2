package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/spendario/spendario-api/internal/domain/entity"
	repo "github.com/spendario/spendario-api/internal/domain/repository"
	"github.com/spendario/spendario-api/pkg/helpers"
	"github.com/spendario/spendario-api/pkg/response"
)

const (
	CtxUserIDKey = "userID"
	ctxUserKey   = "user"
)

// Auth resolves the principal from the Authorization: Bearer header. Every
// failure mode collapses to one 401: missing header, malformed token, bad
// signature, expired token, unparseable subject, or a subject with no
// matching user. Callers must not be able to tell these apart.
//
// The principal is re-resolved on every request with one point lookup; there
// is no caching and no server-side session.
func Auth(users repo.UserRepository, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			unauthorized(c)
			return
		}
		uid, err := jwt.ParseAccessToken(token)
		if err != nil {
			unauthorized(c)
			return
		}
		u, err := users.GetByID(c.Request.Context(), uid)
		if err != nil {
			unauthorized(c)
			return
		}
		c.Set(CtxUserIDKey, u.ID)
		c.Set(ctxUserKey, u)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	const prefix = "Bearer "
	if len(h) <= len(prefix) || !strings.EqualFold(h[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(h[len(prefix):])
}

func unauthorized(c *gin.Context) {
	response.AbortError(c, http.StatusUnauthorized, "could not validate credentials", nil)
}

// CurrentUser returns the principal stored by Auth.
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	v, ok := c.Get(ctxUserKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*entity.User)
	return u, ok
}
