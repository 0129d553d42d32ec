package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MrAmlya/unheard-echoes/helper"
	"github.com/MrAmlya/unheard-echoes/middleware"
	"github.com/MrAmlya/unheard-echoes/models"
	"github.com/MrAmlya/unheard-echoes/services"
)

// sessionMaxAge matches config.JWTExpiration.
const sessionMaxAge = 24 * 60 * 60

type AuthHandler struct {
	authService services.AuthService
	Helper      *helper.HTTPHelper
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService, Helper: &helper.HTTPHelper{}}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	response, err := h.authService.Register(req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	setSessionCookie(c, response.Token)
	h.Helper.SendCreated(c, "Register success", response)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	response, err := h.authService.Login(req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	setSessionCookie(c, response.Token)
	h.Helper.SendSuccess(c, "Login success", response)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	h.Helper.SendSuccess(c, "Logged out", h.Helper.EmptyJsonMap())
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	caller := middleware.CallerFrom(c)
	if caller == nil {
		h.Helper.SendUnauthorizedError(c, "authentication required", h.Helper.EmptyJsonMap())
		return
	}

	user, err := h.authService.GetUserByID(caller.ID)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Profile loaded", user)
}

func setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, token, sessionMaxAge, "/", "", false, true)
}
