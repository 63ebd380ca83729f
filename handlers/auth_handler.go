package handlers // Controller layer translates HTTP <-> service calls.

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Lewis3ai/INFOA1test/global"
	"github.com/Lewis3ai/INFOA1test/models"
	"github.com/Lewis3ai/INFOA1test/services"
)

// AuthHandler bundles dependencies for the public auth endpoints.
type AuthHandler struct {
	svc          services.AuthService
	cookieName   string
	cookieTTL    time.Duration
	cookieSecure bool
}

func NewAuthHandler(svc services.AuthService, cookieName string, cookieTTL time.Duration, cookieSecure bool) *AuthHandler {
	return &AuthHandler{svc: svc, cookieName: cookieName, cookieTTL: cookieTTL, cookieSecure: cookieSecure}
}

// Index handles GET / (public HTML banner).
func (h *AuthHandler) Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8",
		[]byte("<h1>Poke API v"+global.AppVersion+"</h1>"))
}

// Signup handles POST /signup (public).
func (h *AuthHandler) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	u, err := h.svc.Signup(req)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateUser) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": fmt.Sprintf("User %d - %s created!", u.ID, u.Username)})
}

// Login handles POST /login (public). On success the token is returned
// in the body and also set as the auth cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	token, err := h.svc.Login(req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": services.ErrInvalidCredentials.Error()})
		return
	}

	c.SetCookie(h.cookieName, token, int(h.cookieTTL.Seconds()), "/", "", h.cookieSecure, true)
	c.JSON(http.StatusOK, models.AuthResponse{AccessToken: token})
}

// Logout handles GET /logout. Token optional: clearing the cookie is
// all there is to do, signed tokens hold no server-side session.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(h.cookieName, "", -1, "/", "", h.cookieSecure, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
