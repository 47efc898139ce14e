package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Rekha718/blogapp/internal/domain"
	"github.com/Rekha718/blogapp/pkg/logger"
)

// AuthHandler renders the login page and manages the session cookies.
type AuthHandler struct {
	provider domain.IdentityProvider
	sessions *SessionManager
	log      *logger.Logger
}

func NewAuthHandler(provider domain.IdentityProvider, sessions *SessionManager, log *logger.Logger) *AuthHandler {
	return &AuthHandler{provider: provider, sessions: sessions, log: log}
}

// LoginPage handles GET /login.
func (h *AuthHandler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// Login handles POST /login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusBadRequest, "login.html", gin.H{"error": "Email and password are required"})
		return
	}
	session, err := h.provider.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.HTML(http.StatusUnauthorized, "login.html", gin.H{"error": "Invalid email or password", "email": req.Email})
			return
		}
		h.log.Errorf("login failed: %v", err)
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{"error": "Login is unavailable right now", "email": req.Email})
		return
	}
	h.sessions.Establish(c, session)
	c.Redirect(http.StatusFound, "/blog")
}

// Logout handles GET /logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.Clear(c)
	c.Redirect(http.StatusFound, "/blog")
}
