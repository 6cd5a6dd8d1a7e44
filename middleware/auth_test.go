package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"food-marketplace-api/config"
	"food-marketplace-api/middleware"
	"food-marketplace-api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.OpenDB(filepath.Join(t.TempDir(), "test.db"))

	r := gin.New()
	r.GET("/restaurant-only", middleware.RestaurantAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": middleware.RestaurantID(c)})
	})
	r.GET("/user-only", middleware.UserAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": middleware.UserID(c)})
	})
	return r
}

func get(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRestaurantAuth(t *testing.T) {
	r := setupRouter(t)

	restaurant := models.Restaurant{Name: "Testaurant", Email: "t@example.com", Password: "x"}
	require.NoError(t, config.DB.Create(&restaurant).Error)

	token, err := middleware.GenerateToken(restaurant.ID, middleware.RoleRestaurant)
	require.NoError(t, err)

	w := get(r, "/restaurant-only", token)
	assert.Equal(t, http.StatusOK, w.Code)

	t.Run("missing token", func(t *testing.T) {
		w := get(r, "/restaurant-only", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "not logged in")
	})

	t.Run("malformed token", func(t *testing.T) {
		w := get(r, "/restaurant-only", "not.a.jwt")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid token")
	})

	t.Run("user token rejected on restaurant route", func(t *testing.T) {
		user := models.User{Name: "U", Email: "u@example.com", Password: "x"}
		require.NoError(t, config.DB.Create(&user).Error)
		userToken, err := middleware.GenerateToken(user.ID, middleware.RoleUser)
		require.NoError(t, err)

		w := get(r, "/restaurant-only", userToken)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("stale subject", func(t *testing.T) {
		require.NoError(t, config.DB.Delete(&models.Restaurant{}, restaurant.ID).Error)
		w := get(r, "/restaurant-only", token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "no longer exists")
	})
}

func TestUserAuth(t *testing.T) {
	r := setupRouter(t)

	user := models.User{Name: "Alice", Email: "alice@example.com", Password: "x"}
	require.NoError(t, config.DB.Create(&user).Error)

	token, err := middleware.GenerateToken(user.ID, middleware.RoleUser)
	require.NoError(t, err)

	w := get(r, "/user-only", token)
	assert.Equal(t, http.StatusOK, w.Code)

	// a user id never resolves against the restaurants table
	w = get(r, "/restaurant-only", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
