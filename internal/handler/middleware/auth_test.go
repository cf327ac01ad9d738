//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"slotbook/internal/handler/middleware"
	"slotbook/internal/pkg/jwt"
	"slotbook/internal/usecase"
	commonhttp "slotbook/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(t *testing.T, svc *jwt.Service) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	authMw := middleware.NewAuthMiddleware(usecase.NewTokenValidator(svc))
	router.GET("/protected", authMw.RequireAuth(), func(c *gin.Context) {
		userID, ok := middleware.GetUserID(c)
		require.True(t, ok)
		email, ok := middleware.GetUserEmail(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"user_id": userID, "email": email})
	})
	return router
}

func TestRequireAuth(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour)
	router := newAuthRouter(t, svc)

	t.Run("valid bearer token passes with claims in context", func(t *testing.T) {
		userID := uuid.New()
		token, err := svc.GenerateToken(userID, "taro@example.com")
		require.NoError(t, err)

		w := commonhttp.PerformRequest(t, router, http.MethodGet, "/protected", nil, token)

		var resp struct {
			UserID uuid.UUID `json:"user_id"`
			Email  string    `json:"email"`
		}
		commonhttp.AssertSuccessResponse(t, w, http.StatusOK, &resp)
		assert.Equal(t, userID, resp.UserID)
		assert.Equal(t, "taro@example.com", resp.Email)
	})

	t.Run("missing token is rejected", func(t *testing.T) {
		w := commonhttp.PerformRequest(t, router, http.MethodGet, "/protected", nil, "")

		commonhttp.AssertPlainErrorResponse(t, w, http.StatusUnauthorized, "Access token required")
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		w := commonhttp.PerformRequest(t, router, http.MethodGet, "/protected", nil, "not.a.jwt")

		commonhttp.AssertPlainErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		other := jwt.NewService("other-secret", time.Hour)
		token, err := other.GenerateToken(uuid.New(), "eve@example.com")
		require.NoError(t, err)

		w := commonhttp.PerformRequest(t, router, http.MethodGet, "/protected", nil, token)

		commonhttp.AssertPlainErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
	})
}
