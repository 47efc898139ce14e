package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rekha718/blogapp/internal/domain"
	"github.com/Rekha718/blogapp/internal/identity"
	"github.com/Rekha718/blogapp/pkg/token"
)

// expiredLogin logs in against a provider whose access tokens are already
// expired at mint time while the refresh token stays valid.
func expiredLogin(t *testing.T) (domain.IdentityProvider, *domain.Session) {
	t.Helper()
	provider, err := identity.NewFixtureProvider(token.NewManager("test-secret", nil), -5, 1440)
	require.NoError(t, err)
	session, err := provider.Login(context.Background(), "john@example.com", identity.FixturePassword)
	require.NoError(t, err)
	return provider, session
}

func sessionContext(t *testing.T, cookies ...*http.Cookie) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/blog", nil)
	for _, cookie := range cookies {
		c.Request.AddCookie(cookie)
	}
	return c, w
}

func TestCurrentRefreshesExpiredAccessToken(t *testing.T) {
	provider, expired := expiredLogin(t)
	sessions := NewSessionManager(provider)

	c, w := sessionContext(t,
		&http.Cookie{Name: "access_token", Value: expired.Token},
		&http.Cookie{Name: "refresh_token", Value: expired.RefreshToken},
	)

	session := sessions.Current(c)
	require.NotNil(t, session)
	assert.Equal(t, expired.User.ID, session.User.ID)

	// the rotated pair is written back for subsequent requests
	rotated := map[string]string{}
	for _, cookie := range w.Result().Cookies() {
		rotated[cookie.Name] = cookie.Value
	}
	assert.NotEmpty(t, rotated["access_token"])
	assert.NotEmpty(t, rotated["refresh_token"])
}

func TestCurrentExpiredWithoutRefreshCookie(t *testing.T) {
	provider, expired := expiredLogin(t)
	sessions := NewSessionManager(provider)

	c, _ := sessionContext(t, &http.Cookie{Name: "access_token", Value: expired.Token})

	assert.Nil(t, sessions.Current(c))
}

func TestCurrentRejectsGarbageTokens(t *testing.T) {
	provider, _ := expiredLogin(t)
	sessions := NewSessionManager(provider)

	c, _ := sessionContext(t,
		&http.Cookie{Name: "access_token", Value: "not-a-token"},
		&http.Cookie{Name: "refresh_token", Value: "not-a-token"},
	)

	assert.Nil(t, sessions.Current(c))
}
