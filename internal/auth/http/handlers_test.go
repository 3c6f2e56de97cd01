package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/volunteer-hub/volunteer-hub-backend/internal/auth"
	authmiddleware "github.com/volunteer-hub/volunteer-hub-backend/internal/auth/middleware"
	"github.com/volunteer-hub/volunteer-hub-backend/internal/auth/session"
)

func setupAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)

	sessions := session.NewManager(session.NewMemoryStore(10), 24*time.Hour)
	handler := New(auth.NewAdminAuthenticator("admin", string(hash)), sessions, false)

	r := gin.New()
	api := r.Group("/api")
	handler.Register(api)

	// Guarded probe route to exercise the access guard end to end.
	api.GET("/admin/ping", authmiddleware.RequireAdmin(sessions), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": auth.AdminUsername(c)})
	})

	return r
}

func doJSON(r *gin.Engine, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == auth.SessionCookie {
			return c
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func TestLogin_Success(t *testing.T) {
	r := setupAuthRouter(t)

	w := doJSON(r, http.MethodPost, "/api/login", `{"username":"admin","password":"admin123"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Message string `json:"message"`
		User    struct {
			Username string `json:"username"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Login successful", resp.Message)
	assert.Equal(t, "admin", resp.User.Username)

	cookie := sessionCookie(t, w)
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, int(24*time.Hour/time.Second), cookie.MaxAge)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	r := setupAuthRouter(t)

	w := doJSON(r, http.MethodPost, "/api/login", `{"username":"admin","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Result().Cookies(), "no session on failed login")
}

func TestLogin_MissingFields(t *testing.T) {
	r := setupAuthRouter(t)

	for _, body := range []string{`{}`, `{"username":"admin"}`, `{"password":"admin123"}`, `not json`} {
		w := doJSON(r, http.MethodPost, "/api/login", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body: %s", body)
	}
}

func TestAuthStatus_RoundTrip(t *testing.T) {
	r := setupAuthRouter(t)

	w := doJSON(r, http.MethodGet, "/api/auth/status", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"isAuthenticated":false}`, w.Body.String())

	login := doJSON(r, http.MethodPost, "/api/login", `{"username":"admin","password":"admin123"}`)
	cookie := sessionCookie(t, login)

	w = doJSON(r, http.MethodGet, "/api/auth/status", "", cookie)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		IsAuthenticated bool `json:"isAuthenticated"`
		User            struct {
			Username string `json:"username"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.IsAuthenticated)
	assert.Equal(t, "admin", resp.User.Username)
}

func TestLogout_DestroysSession(t *testing.T) {
	r := setupAuthRouter(t)

	login := doJSON(r, http.MethodPost, "/api/login", `{"username":"admin","password":"admin123"}`)
	cookie := sessionCookie(t, login)

	w := doJSON(r, http.MethodPost, "/api/logout", "", cookie)
	require.Equal(t, http.StatusOK, w.Code)

	cleared := sessionCookie(t, w)
	assert.Empty(t, cleared.Value)
	assert.Less(t, cleared.MaxAge, 0)

	w = doJSON(r, http.MethodGet, "/api/admin/ping", "", cookie)
	assert.Equal(t, http.StatusUnauthorized, w.Code, "old token must be dead after logout")
}

func TestRequireAdmin_Guard(t *testing.T) {
	r := setupAuthRouter(t)

	w := doJSON(r, http.MethodGet, "/api/admin/ping", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodGet, "/api/admin/ping", "", &http.Cookie{Name: auth.SessionCookie, Value: "bogus"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	login := doJSON(r, http.MethodPost, "/api/login", `{"username":"admin","password":"admin123"}`)
	cookie := sessionCookie(t, login)

	w = doJSON(r, http.MethodGet, "/api/admin/ping", "", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin")
}
