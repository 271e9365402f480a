package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"immat-api/middleware"
	"immat-api/models"
	"immat-api/services"
	"immat-api/utils"
)

type AuthController struct {
	service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{service: service}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Success bool        `json:"success"`
	Token   string      `json:"token"`
	User    models.User `json:"user"`
}

func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	token, user, err := ac.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err, "Failed to sign in")
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Success: true,
		Token:   token,
		User:    *user,
	})
}

// Me returns the claims of the authenticated caller.
func (ac *AuthController) Me(c *gin.Context) {
	claims, ok := c.Get(middleware.ClaimsKey)
	if !ok {
		utils.SendError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	c.JSON(http.StatusOK, claims)
}
