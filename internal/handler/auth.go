package handler

import (
	"net/http"

	"shift-roster/internal/logger"
	"shift-roster/internal/middleware"
	"shift-roster/internal/model"
	"shift-roster/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth      *service.AuthService
	jwtSecret []byte
}

func NewAuthHandler(auth *service.AuthService, jwtSecret []byte) *AuthHandler {
	return &AuthHandler{auth: auth, jwtSecret: jwtSecret}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	u, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		logger.Warn("login.failed", "username", req.Username)
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	logger.Info("login.ok", "uid", u.ID, "name", u.Name)

	token, _ := middleware.NewToken(h.jwtSecret, u.ID, u.Name)
	c.JSON(http.StatusOK, model.LoginResponse{
		Token: token,
		User:  model.UserInfo{ID: u.ID, Name: u.Name, Role: u.Role},
	})
}
