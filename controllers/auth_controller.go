package controllers

import (
	"errors"
	"net/http"

	"github.com/ArredondoGastelumJavier4-2/bakend-flutter/pkg/resp"
	"github.com/ArredondoGastelumJavier4-2/bakend-flutter/services"
	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	FirstName     string `json:"first_name" binding:"required"`
	LastName      string `json:"last_name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required"`
	AvatarDefault string `json:"avatar_default"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(s *services.AuthService) *AuthController { return &AuthController{Svc: s} }

// POST /api/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "missing or invalid fields")
		return
	}

	user, err := a.Svc.Register(req.Email, req.Password, req.FirstName, req.LastName, req.AvatarDefault)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			resp.BadRequest(c, "email already registered")
			return
		}
		resp.ServerError(c, err)
		return
	}

	resp.Created(c, gin.H{
		"message": "user registered",
		"user_id": user.ID,
	})
}

// POST /api/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "missing email or password")
		return
	}

	user, token, err := a.Svc.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			resp.BadRequest(c, "invalid credentials")
			return
		}
		resp.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":   token.Key,
		"user_id": user.ID,
		"email":   user.Email,
		"message": "login ok",
	})
}
