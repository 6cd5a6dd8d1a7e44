package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"food-marketplace-api/config"
	"food-marketplace-api/handlers"
	"food-marketplace-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.OpenDB(filepath.Join(t.TempDir(), "test.db"))

	r := gin.New()
	r.GET("/health", handlers.Health)
	routes.SetupRoutes(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}

// registerRestaurant creates a restaurant account through the API and
// returns its id and bearer token.
func registerRestaurant(t *testing.T, r *gin.Engine, name, email string) (uint, string) {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/auth/restaurant/register", gin.H{
		"name":     name,
		"email":    email,
		"password": "secret123",
		"cuisine":  []string{"Italian"},
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
		Data  struct {
			Restaurant struct {
				ID uint `json:"id"`
			} `json:"restaurant"`
		} `json:"data"`
	}
	decode(t, w, &resp)
	require.NotEmpty(t, resp.Token)
	return resp.Data.Restaurant.ID, resp.Token
}

func registerUser(t *testing.T, r *gin.Engine, name, email string) (uint, string) {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/auth/user/register", gin.H{
		"name":     name,
		"email":    email,
		"password": "secret123",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
		Data  struct {
			User struct {
				ID uint `json:"id"`
			} `json:"user"`
		} `json:"data"`
	}
	decode(t, w, &resp)
	require.NotEmpty(t, resp.Token)
	return resp.Data.User.ID, resp.Token
}
