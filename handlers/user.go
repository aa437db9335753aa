package handlers

import (
	"errors"
	"net/http"

	"medibook/middleware"
	"medibook/models"
	"medibook/services/user"
	"medibook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves account management endpoints.
type UserHandler struct {
	Service user.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service user.UserService) *UserHandler {
	return &UserHandler{Service: service}
}

// UpsertUser stores the identity claims for the email in the path and
// returns the account together with a freshly signed bearer token. This is
// the sign-in path and is deliberately public.
func (h *UserHandler) UpsertUser(c *gin.Context) {
	email := c.Param("email")

	var u models.User
	if err := c.ShouldBindJSON(&u); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid user payload", err.Error())
		return
	}
	u.Email = email

	stored, token, err := h.Service.UpsertUser(u)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to upsert user", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": stored, "token": token})
}

// GetAllUsers lists every account. Admin only, enforced by middleware.
func (h *UserHandler) GetAllUsers(c *gin.Context) {
	users, err := h.Service.GetAllUsers()
	if err != nil {
		zap.L().Error("Failed to fetch all users", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch users", err.Error())
		return
	}
	c.JSON(http.StatusOK, users)
}

// CheckAdmin reports whether the account in the path holds the admin role.
func (h *UserHandler) CheckAdmin(c *gin.Context) {
	email := c.Param("email")

	isAdmin, err := h.Service.IsAdmin(email)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to check role", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"isAdmin": isAdmin})
}

// PromoteAdmin grants the admin role to the account in the path. The
// requester is the verified identity on the context and must already be an
// admin; otherwise the target's role is left unchanged.
func (h *UserHandler) PromoteAdmin(c *gin.Context) {
	target := c.Param("email")
	requester := middleware.ClaimedEmail(c)

	err := h.Service.PromoteToAdmin(requester, target)
	switch {
	case errors.Is(err, user.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"message": "forbidden"})
	case errors.Is(err, user.ErrUserNotFound):
		utils.JSONError(c, http.StatusNotFound, "User not found", target)
	case err != nil:
		utils.JSONError(c, http.StatusInternalServerError, "Failed to grant admin role", err.Error())
	default:
		c.JSON(http.StatusOK, gin.H{"modifiedCount": 1})
	}
}
