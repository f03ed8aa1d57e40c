package router

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

	"restaurant_dashboard/internal/models"
	"restaurant_dashboard/internal/repositories"
	"restaurant_dashboard/internal/services"
	"restaurant_dashboard/pkg/utils"
)

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	seed, err := services.BuildSeedUsers(models.DefaultSeedUsers, bcrypt.MinCost, time.Now())
	require.NoError(t, err)
	users := repositories.NewMemoryUserRepository(seed)
	issuer := utils.NewTokenIssuer("router-secret", time.Hour)

	engine := gin.New()
	Setup(engine, Services{
		Auth:      services.NewAuthService(users, repositories.NewMemoryTokenStore(), issuer),
		Users:     services.NewUserService(users, models.DefaultSeedUsers, bcrypt.MinCost),
		Dashboard: services.NewDashboardService(repositories.NewMockRecordSource(), services.DashboardOptions{CriticalThreshold: 5}),
	})
	return engine
}

func call(r http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func loginAs(t *testing.T, r http.Handler, username string) string {
	t.Helper()
	w := call(r, http.MethodPost, "/api/v1/auth/login", "", `{"username":"`+username+`","password":"password123"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var env struct {
		Data services.AuthResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.NotEmpty(t, env.Data.AccessToken)
	return env.Data.AccessToken
}

func TestPing(t *testing.T) {
	w := call(newTestEngine(t), http.MethodGet, "/ping", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
}

func TestLogin_WrongPassword(t *testing.T) {
	w := call(newTestEngine(t), http.MethodPost, "/api/v1/auth/login", "", `{"username":"admin","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDashboardRoutes_RequireToken(t *testing.T) {
	r := newTestEngine(t)
	w := call(r, http.MethodGet, "/api/v1/dashboard", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDashboardRoutes_StaffAccess(t *testing.T) {
	r := newTestEngine(t)
	token := loginAs(t, r, "waiter")

	for _, path := range []string{
		"/api/v1/dashboard",
		"/api/v1/dashboard?date=2025-03-01",
		"/api/v1/dashboard/booking-capacity",
		"/api/v1/dashboard/cover-tracker",
		"/api/v1/dashboard/financial-overview",
		"/api/v1/dashboard/staff-scheduling",
		"/api/v1/dashboard/stock-insight?status=Low+Stock",
	} {
		w := call(r, http.MethodGet, path, token, "")
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), `"success":true`, path)
	}

	w := call(r, http.MethodGet, "/api/v1/dashboard?date=tomorrow", token, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDashboard_Payload(t *testing.T) {
	r := newTestEngine(t)
	token := loginAs(t, r, "manager")

	w := call(r, http.MethodGet, "/api/v1/dashboard?date=2025-03-01", token, "")
	require.Equal(t, http.StatusOK, w.Code)

	var env struct {
		Data models.DashboardData `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "2025-03-01", env.Data.Date)
	assert.NotEmpty(t, env.Data.BookingCapacities)
	assert.NotNil(t, env.Data.Occupancy)
	assert.NotEmpty(t, env.Data.StockItems)
	assert.NotEmpty(t, env.Data.StaffSchedules)
}

func TestUserRoutes_AdminOnly(t *testing.T) {
	r := newTestEngine(t)

	managerToken := loginAs(t, r, "manager")
	w := call(r, http.MethodGet, "/api/v1/users", managerToken, "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	adminToken := loginAs(t, r, "admin")
	w = call(r, http.MethodGet, "/api/v1/users", adminToken, "")
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Data []models.UserProfile `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list.Data, len(models.DefaultSeedUsers))

	w = call(r, http.MethodPost, "/api/v1/users", adminToken, `{"username":"host","password":"password123","name":"Host","role":"staff"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	w = call(r, http.MethodPost, "/api/v1/users", adminToken, `{"username":"host","password":"password123","name":"Host","role":"staff"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	hostToken := loginAs(t, r, "host")
	w = call(r, http.MethodGet, "/api/v1/dashboard/stock-insight", hostToken, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = call(r, http.MethodPost, "/api/v1/users/reset", adminToken, "")
	require.Equal(t, http.StatusOK, w.Code)

	// The reset removed the added account, so its token no longer authenticates.
	w = call(r, http.MethodGet, "/api/v1/auth/me", hostToken, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w = call(r, http.MethodGet, "/api/v1/auth/me", adminToken, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLogout_RevokesToken(t *testing.T) {
	r := newTestEngine(t)
	token := loginAs(t, r, "chef")

	w := call(r, http.MethodGet, "/api/v1/auth/me", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"chef"`)

	w = call(r, http.MethodPost, "/api/v1/auth/logout", token, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = call(r, http.MethodGet, "/api/v1/auth/me", token, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
