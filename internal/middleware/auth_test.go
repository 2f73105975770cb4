package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/metrika-dev/metrika/internal/auth"
	"github.com/metrika-dev/metrika/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserStore struct {
	users map[string]*models.User
}

func (s *fakeUserStore) FindByUsername(username string) (*models.User, error) {
	user, ok := s.users[username]
	if !ok {
		return nil, auth.ErrUserNotFound
	}
	return user, nil
}

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	require.NoError(t, auth.Init("middleware-test-secret", time.Minute))

	store := &fakeUserStore{users: map[string]*models.User{
		"admin":  {Username: "admin"},
		"locked": {Username: "locked", Disabled: true},
	}}

	r := gin.New()
	r.GET("/protected", AuthMiddleware(store), func(ctx *gin.Context) {
		user, ok := CurrentUser(ctx)
		require.True(t, ok)
		ctx.JSON(http.StatusOK, gin.H{"username": user.Username})
	})
	return r
}

func request(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, req)
	return recorder
}

func TestAuthMiddleware(t *testing.T) {
	r := newAuthRouter(t)

	validToken, err := auth.GenerateToken("admin")
	require.NoError(t, err)
	unknownSubject, err := auth.GenerateToken("nobody")
	require.NoError(t, err)
	disabledSubject, err := auth.GenerateToken("locked")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"valid token", "Bearer " + validToken, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"malformed token", "Bearer nope", http.StatusUnauthorized},
		{"unknown subject", "Bearer " + unknownSubject, http.StatusUnauthorized},
		{"disabled subject", "Bearer " + disabledSubject, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := request(r, tt.header)

			assert.Equal(t, tt.status, recorder.Code)
			if tt.status == http.StatusOK {
				assert.Contains(t, recorder.Body.String(), "admin")
			}
		})
	}
}

func TestCurrentUserWithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := CurrentUser(ctx)
	assert.False(t, ok)
}
