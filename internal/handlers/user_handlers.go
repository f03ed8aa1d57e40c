package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant_dashboard/internal/services"
	"restaurant_dashboard/pkg/utils"
)

// UserHandler handles account management for administrators.
type UserHandler struct {
	userService services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(us services.UserService) *UserHandler {
	return &UserHandler{userService: us}
}

func respondUserError(c *gin.Context, err error, op string) {
	switch {
	case errors.Is(err, services.ErrUserValidation):
		utils.RespondValidationFailed(c, err.Error())
	case errors.Is(err, services.ErrUsernameExists):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Username already exists.", ""))
	case errors.Is(err, services.ErrUserNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "User not found.", ""))
	case errors.Is(err, services.ErrCannotRemoveSelf):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, err.Error(), ""))
	default:
		utils.LogError(err, op+": Error from userService")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to process user request.", "Internal error"))
	}
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		respondUserError(c, err, "ListUsers")
		return
	}
	utils.RespondWithData(c, http.StatusOK, users)
}

func (h *UserHandler) AddUser(c *gin.Context) {
	var req services.AddUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	user, err := h.userService.AddUser(c.Request.Context(), req)
	if err != nil {
		respondUserError(c, err, "AddUser")
		return
	}
	utils.LogInfo("User added", map[string]interface{}{"user_id": user.ID, "by": c.GetString(utils.UserIDKey)})
	utils.RespondWithData(c, http.StatusCreated, user)
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req services.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondUserError(c, err, "UpdateUser")
		return
	}
	utils.RespondWithData(c, http.StatusOK, user)
}

func (h *UserHandler) RemoveUser(c *gin.Context) {
	id := c.Param("id")
	if err := h.userService.RemoveUser(c.Request.Context(), c.GetString(utils.UserIDKey), id); err != nil {
		respondUserError(c, err, "RemoveUser")
		return
	}
	utils.LogInfo("User removed", map[string]interface{}{"user_id": id, "by": c.GetString(utils.UserIDKey)})
	c.Status(http.StatusNoContent)
}

// ResetUsers restores the default accounts.
func (h *UserHandler) ResetUsers(c *gin.Context) {
	users, err := h.userService.ResetUsers(c.Request.Context())
	if err != nil {
		respondUserError(c, err, "ResetUsers")
		return
	}
	utils.LogWarn("User accounts reset to defaults", map[string]interface{}{"by": c.GetString(utils.UserIDKey)})
	utils.RespondWithData(c, http.StatusOK, users)
}
