package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Rekha718/blogapp/internal/domain"
	"github.com/Rekha718/blogapp/pkg/token"
)

const (
	accessCookie  = "access_token"
	refreshCookie = "refresh_token"
)

// SessionManager hydrates the session from the persisted token on every
// request and writes it back on login. The session travels as an explicit
// value into each render; nothing is held between requests.
type SessionManager struct {
	provider domain.IdentityProvider
}

func NewSessionManager(provider domain.IdentityProvider) *SessionManager {
	return &SessionManager{provider: provider}
}

// Current returns the session for the request, or nil when the visitor is
// not logged in or the persisted token no longer validates. An expired access
// token is exchanged through the refresh token before giving up.
func (m *SessionManager) Current(c *gin.Context) *domain.Session {
	tokenString, err := c.Cookie(accessCookie)
	if err != nil || tokenString == "" {
		return nil
	}
	user, err := m.provider.Authenticate(c.Request.Context(), tokenString)
	if err != nil {
		if errors.Is(err, token.ErrTokenExpired) {
			return m.refresh(c)
		}
		return nil
	}
	session := &domain.Session{Token: tokenString, User: *user}
	if refresh, err := c.Cookie(refreshCookie); err == nil {
		session.RefreshToken = refresh
	}
	return session
}

// refresh rescues an expired access token with the refresh cookie. The rotated
// pair is written back so subsequent requests validate directly.
func (m *SessionManager) refresh(c *gin.Context) *domain.Session {
	refreshToken, err := c.Cookie(refreshCookie)
	if err != nil || refreshToken == "" {
		return nil
	}
	session, err := m.provider.Refresh(c.Request.Context(), refreshToken)
	if err != nil {
		return nil
	}
	m.Establish(c, session)
	return session
}

// Establish persists the session tokens as HTTP-only cookies.
func (m *SessionManager) Establish(c *gin.Context, session *domain.Session) {
	c.SetCookie(accessCookie, session.Token, 0, "/", "", false, true)
	if session.RefreshToken != "" {
		c.SetCookie(refreshCookie, session.RefreshToken, 0, "/", "", false, true)
	}
}

// Clear revokes the refresh token and drops the session cookies.
func (m *SessionManager) Clear(c *gin.Context) {
	if session := m.Current(c); session != nil {
		_ = m.provider.Logout(c.Request.Context(), session)
	}
	c.SetCookie(accessCookie, "", -1, "/", "", false, true)
	c.SetCookie(refreshCookie, "", -1, "/", "", false, true)
}
