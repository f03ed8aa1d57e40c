package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
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

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthService(t *testing.T) services.AuthService {
	t.Helper()
	seed, err := services.BuildSeedUsers(models.DefaultSeedUsers, bcrypt.MinCost, time.Now())
	require.NoError(t, err)
	issuer := utils.NewTokenIssuer("middleware-secret", time.Hour)
	return services.NewAuthService(repositories.NewMemoryUserRepository(seed), repositories.NewMemoryTokenStore(), issuer)
}

func login(t *testing.T, svc services.AuthService, username string) *services.AuthResponse {
	t.Helper()
	resp, err := svc.Login(context.Background(), services.LoginRequest{Username: username, Password: "password123"})
	require.NoError(t, err)
	return resp
}

func newProtectedEngine(svc services.AuthService, minRole string) *gin.Engine {
	r := gin.New()
	r.GET("/protected", AuthMiddleware(svc), RequireRole(minRole), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":  c.GetString(utils.UserIDKey),
			"username": c.GetString(utils.UsernameKey),
			"role":     c.GetString(utils.UserRoleKey),
		})
	})
	return r
}

func doGet(r http.Handler, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_RejectsMissingOrMalformedHeader(t *testing.T) {
	r := newProtectedEngine(newAuthService(t), models.RoleStaff)

	for _, header := range []string{"", "Token abc", "Bearer", "Bearer a b", "Bearer not-a-jwt"} {
		w := doGet(r, header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
		assert.Contains(t, w.Body.String(), utils.ErrCodeUnauthorized)
	}
}

func TestAuthMiddleware_SetsUserContext(t *testing.T) {
	svc := newAuthService(t)
	resp := login(t, svc, "manager")
	r := newProtectedEngine(svc, models.RoleStaff)

	w := doGet(r, "bearer "+resp.AccessToken)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"manager"`)
	assert.Contains(t, w.Body.String(), `"role":"manager"`)
	assert.Contains(t, w.Body.String(), resp.User.ID)
}

func TestAuthMiddleware_RejectsRevokedToken(t *testing.T) {
	svc := newAuthService(t)
	resp := login(t, svc, "chef")
	r := newProtectedEngine(svc, models.RoleStaff)

	claims, err := utils.NewTokenIssuer("middleware-secret", time.Hour).ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	require.NoError(t, svc.Logout(context.Background(), claims))

	w := doGet(r, "Bearer "+resp.AccessToken)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole(t *testing.T) {
	svc := newAuthService(t)
	tests := []struct {
		username string
		minRole  string
		want     int
	}{
		{"admin", models.RoleAdmin, http.StatusOK},
		{"admin", models.RoleStaff, http.StatusOK},
		{"manager", models.RoleManager, http.StatusOK},
		{"manager", models.RoleAdmin, http.StatusForbidden},
		{"waiter", models.RoleStaff, http.StatusOK},
		{"waiter", models.RoleManager, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.username+"_"+tt.minRole, func(t *testing.T) {
			resp := login(t, svc, tt.username)
			w := doGet(newProtectedEngine(svc, tt.minRole), "Bearer "+resp.AccessToken)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestRequireRole_WithoutAuthMiddleware(t *testing.T) {
	r := gin.New()
	r.GET("/protected", RequireRole(models.RoleStaff), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := doGet(r, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}
