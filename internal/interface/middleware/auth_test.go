package middleware_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendario/spendario-api/internal/domain/entity"
	"github.com/spendario/spendario-api/internal/domain/repository"
	"github.com/spendario/spendario-api/internal/interface/middleware"
	"github.com/spendario/spendario-api/pkg/helpers"
)

type stubUserRepo struct {
	users map[string]*entity.User
}

func (r *stubUserRepo) Create(context.Context, *entity.User) error { return nil }

func (r *stubUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

func (r *stubUserRepo) GetByEmail(context.Context, string) (*entity.User, error) {
	return nil, repository.ErrNotFound
}

func newAuthTestServer(t *testing.T) (*gin.Engine, *stubUserRepo, *helpers.JWTManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := &stubUserRepo{users: map[string]*entity.User{
		"user-1": {ID: "user-1", Email: "user@example.com"},
	}}
	jwt, err := helpers.NewJWTManager("test-secret", "HS256", time.Hour)
	require.NoError(t, err)

	r := gin.New()
	r.GET("/protected", middleware.Auth(users, jwt), func(c *gin.Context) {
		u, ok := middleware.CurrentUser(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetString(middleware.CtxUserIDKey),
			"email":   u.Email,
		})
	})
	return r, users, jwt
}

func get(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthResolvesPrincipal(t *testing.T) {
	r, _, jwt := newAuthTestServer(t)

	token, _, err := jwt.GenerateAccessToken("user-1")
	require.NoError(t, err)

	w := get(r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
	assert.Contains(t, w.Body.String(), "user@example.com")
}

func TestAuthFailuresAreUniform(t *testing.T) {
	r, users, jwt := newAuthTestServer(t)

	validForMissingUser, _, err := jwt.GenerateAccessToken("user-2")
	require.NoError(t, err)

	expiredJWT, err := helpers.NewJWTManager("test-secret", "HS256", 0)
	require.NoError(t, err)
	expired, _, err := expiredJWT.GenerateAccessToken("user-1")
	require.NoError(t, err)

	foreign, err := helpers.NewJWTManager("other-secret", "HS256", time.Hour)
	require.NoError(t, err)
	badSignature, _, err := foreign.GenerateAccessToken("user-1")
	require.NoError(t, err)

	cases := map[string]string{
		"missing header":      "",
		"not bearer":          "Basic dXNlcjpwdw==",
		"empty bearer":        "Bearer ",
		"garbage token":       "Bearer garbage",
		"expired token":       "Bearer " + expired,
		"bad signature":       "Bearer " + badSignature,
		"token, unknown user": "Bearer " + validForMissingUser,
	}

	// Every failure reads the same on the wire; nothing hints at the cause.
	var messages []string
	for name, header := range cases {
		w := get(r, header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, name)
		messages = append(messages, rejectionMessage(t, w))
	}
	for _, m := range messages {
		assert.Equal(t, messages[0], m)
	}

	// A principal deleted after token issuance fails like a garbage token.
	token, _, err := jwt.GenerateAccessToken("user-1")
	require.NoError(t, err)
	delete(users.users, "user-1")
	w := get(r, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, messages[0], rejectionMessage(t, w))
}

func rejectionMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Message
}
