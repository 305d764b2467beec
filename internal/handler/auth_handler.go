package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vmachado/escritorio-api/internal/models"
	"github.com/vmachado/escritorio-api/internal/service"
	appErrors "github.com/vmachado/escritorio-api/pkg/errors"
	"github.com/vmachado/escritorio-api/pkg/response"
)

// CookieSettings describes how the session cookie is written.
type CookieSettings struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

// AuthHandler wires HTTP endpoints to the auth service.
type AuthHandler struct {
	service *service.AuthService
	cookie  CookieSettings
}

// NewAuthHandler creates a new handler.
func NewAuthHandler(svc *service.AuthService, cookie CookieSettings) *AuthHandler {
	return &AuthHandler{service: svc, cookie: cookie}
}

// Login godoc
// @Summary Authenticate user
// @Description Authenticate by username and password and open a session
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body models.LoginRequest true "Login payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid login payload"))
		return
	}
	req.IP = c.ClientIP()

	user, cookieValue, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.setSessionCookie(c, cookieValue, int(h.cookie.TTL.Seconds()))
	response.JSON(c, http.StatusOK, user)
}

// Logout godoc
// @Summary Logout current session
// @Description Destroy the server-side session and clear the cookie
// @Tags Authentication
// @Produce json
// @Success 204 "No Content"
// @Failure 401 {object} response.Envelope
// @Router /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookieValue, _ := c.Cookie(h.cookie.Name)

	if err := h.service.Logout(c.Request.Context(), userFromContext(c), cookieValue, c.ClientIP()); err != nil {
		response.Error(c, err)
		return
	}

	h.setSessionCookie(c, "", -1)
	response.NoContent(c)
}

// Me godoc
// @Summary Current user
// @Description Return the authenticated user, including the first-access flag
// @Tags Authentication
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /user [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user := userFromContext(c)
	if user == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	response.JSON(c, http.StatusOK, user)
}

// ChangePassword godoc
// @Summary Change own password
// @Description Rotate the current user's password; clears the first-access flag and returns the updated user
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body models.ChangePasswordRequest true "Password payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /change-password [post]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	user := userFromContext(c)
	if user == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req models.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid change password payload"))
		return
	}

	updated, err := h.service.ChangePassword(c.Request.Context(), user, req, c.ClientIP())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, updated)
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, value, maxAge, "/", "", h.cookie.Secure, true)
}
