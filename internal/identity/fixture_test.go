package identity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rekha718/blogapp/internal/domain"
	"github.com/Rekha718/blogapp/pkg/token"
)

func newFixture(t *testing.T) domain.IdentityProvider {
	t.Helper()
	provider, err := NewFixtureProvider(token.NewManager("test-secret", nil), 30, 1440)
	require.NoError(t, err)
	return provider
}

func TestFixtureLogin(t *testing.T) {
	provider := newFixture(t)

	session, err := provider.Login(context.Background(), "john@example.com", FixturePassword)
	require.NoError(t, err)
	assert.Equal(t, "John Doe", session.User.Name)
	assert.Equal(t, "user", session.User.Role)
	assert.NotEmpty(t, session.Token)
	assert.NotEmpty(t, session.RefreshToken)
	assert.Greater(t, session.ExpiresAt, time.Now().Unix())
}

func TestFixtureLoginWrongPassword(t *testing.T) {
	provider := newFixture(t)

	_, err := provider.Login(context.Background(), "john@example.com", "nope")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestFixtureLoginUnknownEmail(t *testing.T) {
	provider := newFixture(t)

	_, err := provider.Login(context.Background(), "nobody@example.com", FixturePassword)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestFixtureAuthenticateRoundTrip(t *testing.T) {
	provider := newFixture(t)

	session, err := provider.Login(context.Background(), "admin@example.com", FixturePassword)
	require.NoError(t, err)

	user, err := provider.Authenticate(context.Background(), session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, user.ID)
	assert.True(t, user.IsAdmin())
}

func TestFixtureAuthenticateGarbageToken(t *testing.T) {
	provider := newFixture(t)

	_, err := provider.Authenticate(context.Background(), "not-a-token")
	assert.Error(t, err)
}

func TestFixtureRefreshRotatesTokens(t *testing.T) {
	provider := newFixture(t)

	session, err := provider.Login(context.Background(), "john@example.com", FixturePassword)
	require.NoError(t, err)

	refreshed, err := provider.Refresh(context.Background(), session.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, refreshed.User.ID)
	assert.NotEmpty(t, refreshed.Token)
	assert.NotEmpty(t, refreshed.RefreshToken)

	user, err := provider.Authenticate(context.Background(), refreshed.Token)
	require.NoError(t, err)
	assert.Equal(t, "John Doe", user.Name)
}

func TestFixtureRefreshGarbageToken(t *testing.T) {
	provider := newFixture(t)

	_, err := provider.Refresh(context.Background(), "not-a-token")
	assert.Error(t, err)
}

func TestFixtureUserByIDMissing(t *testing.T) {
	provider := newFixture(t)

	_, err := provider.UserByID(context.Background(), 9999)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
