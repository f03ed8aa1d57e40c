package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant_dashboard/internal/models"
	"restaurant_dashboard/internal/services"
)

type fakeUserService struct {
	err       error
	removedBy string
	removedID string
	updatedID string
}

func (f *fakeUserService) ListUsers(context.Context) ([]models.UserProfile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []models.UserProfile{{ID: "u1", Username: "admin", Role: models.RoleAdmin}}, nil
}

func (f *fakeUserService) AddUser(_ context.Context, req services.AddUserRequest) (*models.UserProfile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.UserProfile{ID: "new", Username: req.Username, Name: req.Name, Role: req.Role}, nil
}

func (f *fakeUserService) RemoveUser(_ context.Context, actingUserID, userID string) error {
	f.removedBy, f.removedID = actingUserID, userID
	return f.err
}

func (f *fakeUserService) UpdateUser(_ context.Context, userID string, req services.UpdateUserRequest) (*models.UserProfile, error) {
	f.updatedID = userID
	if f.err != nil {
		return nil, f.err
	}
	profile := &models.UserProfile{ID: userID, Username: "chef", Role: models.RoleStaff}
	if req.Name != nil {
		profile.Name = *req.Name
	}
	return profile, nil
}

func (f *fakeUserService) ResetUsers(context.Context) ([]models.UserProfile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return make([]models.UserProfile, len(models.DefaultSeedUsers)), nil
}

func userEngine(svc services.UserService) *gin.Engine {
	h := NewUserHandler(svc)
	r := gin.New()
	users := r.Group("/users", withUser("admin-id", models.RoleAdmin))
	users.GET("", h.ListUsers)
	users.POST("", h.AddUser)
	users.POST("/reset", h.ResetUsers)
	users.PUT("/:id", h.UpdateUser)
	users.DELETE("/:id", h.RemoveUser)
	return r
}

func TestListUsers(t *testing.T) {
	w := serve(userEngine(&fakeUserService{}), http.MethodGet, "/users", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var users []models.UserProfile
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &users))
	assert.Len(t, users, 1)
}

func TestAddUser(t *testing.T) {
	body := `{"username":"host","password":"password123","name":"Front of House","role":"staff"}`

	t.Run("created", func(t *testing.T) {
		w := serve(userEngine(&fakeUserService{}), http.MethodPost, "/users", strings.NewReader(body))
		require.Equal(t, http.StatusCreated, w.Code)

		var user models.UserProfile
		require.NoError(t, json.Unmarshal(decode(t, w).Data, &user))
		assert.Equal(t, "host", user.Username)
	})

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", fmt.Errorf("%w: role", services.ErrUserValidation), http.StatusBadRequest},
		{"duplicate", services.ErrUsernameExists, http.StatusConflict},
		{"store failure", errors.New("db down"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(userEngine(&fakeUserService{err: tt.err}), http.MethodPost, "/users", strings.NewReader(body))
			assert.Equal(t, tt.want, w.Code)
		})
	}

	t.Run("malformed body", func(t *testing.T) {
		w := serve(userEngine(&fakeUserService{}), http.MethodPost, "/users", strings.NewReader(`{"username":`))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUpdateUser(t *testing.T) {
	fake := &fakeUserService{}
	w := serve(userEngine(fake), http.MethodPut, "/users/u7", strings.NewReader(`{"name":"Sous Chef"}`))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u7", fake.updatedID)
	assert.Contains(t, w.Body.String(), "Sous Chef")

	fake.err = services.ErrUserNotFound
	w = serve(userEngine(fake), http.MethodPut, "/users/missing", strings.NewReader(`{"name":"x"}`))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRemoveUser(t *testing.T) {
	fake := &fakeUserService{}
	w := serve(userEngine(fake), http.MethodDelete, "/users/u7", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "admin-id", fake.removedBy)
	assert.Equal(t, "u7", fake.removedID)

	fake.err = services.ErrCannotRemoveSelf
	w = serve(userEngine(fake), http.MethodDelete, "/users/admin-id", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), services.ErrCannotRemoveSelf.Error())
}

func TestResetUsers(t *testing.T) {
	w := serve(userEngine(&fakeUserService{}), http.MethodPost, "/users/reset", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var users []models.UserProfile
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &users))
	assert.Len(t, users, len(models.DefaultSeedUsers))
}
