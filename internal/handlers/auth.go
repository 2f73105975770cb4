package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/metrika-dev/metrika/internal/auth"
	"github.com/metrika-dev/metrika/internal/middleware"
	"github.com/metrika-dev/metrika/internal/types"
	"go.uber.org/zap"
)

type AuthHandler struct {
	users  auth.UserStore
	logger *zap.Logger
}

func NewAuthHandler(users auth.UserStore, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{users: users, logger: logger}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(ctx *gin.Context) {
	var body LoginRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	user, err := auth.Authenticate(h.users, body.Username, body.Password)

	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}
		h.logger.Error("login failed", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	token, err := auth.GenerateToken(user.Username)

	if err != nil {
		h.logger.Error("failed to generate token", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
		"user": types.UserResponse{
			ID:       user.ID,
			Username: user.Username,
			FullName: user.FullName,
			Email:    user.Email,
		},
	})
}

func (h *AuthHandler) Me(ctx *gin.Context) {
	currentUser, ok := middleware.CurrentUser(ctx)

	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"user": types.UserResponse{
			ID:       currentUser.ID,
			Username: currentUser.Username,
			FullName: currentUser.FullName,
			Email:    currentUser.Email,
		},
	})
}
