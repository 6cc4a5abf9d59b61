package handlers

import (
	"errors"

	"github.com/sasaki-csngrp/myreno/helper"
	"github.com/sasaki-csngrp/myreno/models"
	"github.com/sasaki-csngrp/myreno/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService services.AuthService
	Helper      *helper.HTTPHelper
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	user, err := h.authService.Register(req)
	if err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	h.Helper.SendSuccess(c, "Register success", user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	response, err := h.authService.Login(req)
	if err != nil {
		h.Helper.SendUnauthorizedError(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Login success", response)
}

// VerifyEmail consumes the link from the verification mail. The outcome is
// reported through a redirect to the login page, mirroring what the web
// client expects.
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	token := c.Query("token")
	email := c.Query("email")

	if token == "" || email == "" {
		c.Redirect(302, "/login?error=InvalidVerificationToken")
		return
	}

	if err := h.authService.VerifyEmail(email, token); err != nil {
		switch {
		case errors.Is(err, services.ErrExpiredToken):
			c.Redirect(302, "/login?error=ExpiredVerificationToken")
		case errors.Is(err, services.ErrInvalidToken):
			c.Redirect(302, "/login?error=InvalidVerificationToken")
		default:
			c.Redirect(302, "/login?error=VerificationFailed")
		}
		return
	}

	c.Redirect(302, "/login?verified=true")
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		h.Helper.SendUnauthorizedError(c, "User not found in context", h.Helper.EmptyJsonMap())
		return
	}

	user, err := h.authService.GetUserByID(userID.(string))
	if err != nil {
		h.Helper.SendNotFoundError(c, "User not found", h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Profile loaded", user)
}
