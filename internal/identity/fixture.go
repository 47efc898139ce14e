package identity

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Rekha718/blogapp/internal/domain"
	"github.com/Rekha718/blogapp/pkg/token"
)

// FixturePassword is the password every demo account accepts.
const FixturePassword = "password"

// fixtureProvider serves a fixed set of demo users from memory. It issues
// real tokens so the rest of the stack behaves exactly as with the remote
// provider.
type fixtureProvider struct {
	users      []domain.User
	hash       []byte
	tokens     token.Manager
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewFixtureProvider creates the in-memory provider with the demo accounts.
func NewFixtureProvider(tokens token.Manager, accessTTLMinutes, refreshTTLMinutes int) (domain.IdentityProvider, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(FixturePassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash fixture password: %w", err)
	}
	return &fixtureProvider{
		users:      fixtureUsers(),
		hash:       hash,
		tokens:     tokens,
		accessTTL:  time.Duration(accessTTLMinutes) * time.Minute,
		refreshTTL: time.Duration(refreshTTLMinutes) * time.Minute,
	}, nil
}

func fixtureUsers() []domain.User {
	return []domain.User{
		{
			ID:        1,
			Name:      "Admin User",
			Email:     "admin@example.com",
			Role:      "admin",
			Bio:       "Platform administrator with years of experience in content management.",
			Avatar:    "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150",
			CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:        2,
			Name:      "John Doe",
			Email:     "john@example.com",
			Role:      "user",
			Bio:       "Tech enthusiast and blogger passionate about web development.",
			Avatar:    "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150",
			CreatedAt: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:        3,
			Name:      "Jane Smith",
			Email:     "jane@example.com",
			Role:      "user",
			Bio:       "UI/UX designer who loves sharing design insights.",
			Avatar:    "https://images.unsplash.com/photo-1494790108755-2616b612b786?w=150",
			CreatedAt: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
		},
	}
}

func (p *fixtureProvider) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	var user *domain.User
	for i := range p.users {
		if p.users[i].Email == email {
			user = &p.users[i]
			break
		}
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(p.hash, []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	access, refresh, err := p.tokens.GenerateTokens(user.ID, user.Name, user.Role, p.accessTTL, p.refreshTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}
	return &domain.Session{
		Token:        access,
		RefreshToken: refresh,
		ExpiresAt:    time.Now().Add(p.accessTTL).Unix(),
		User:         *user,
	}, nil
}

func (p *fixtureProvider) Authenticate(ctx context.Context, tokenString string) (*domain.User, error) {
	claims, err := p.tokens.ValidateAccessToken(tokenString)
	if err != nil {
		return nil, err
	}
	return p.UserByID(ctx, claims.UserID)
}

// Refresh rotates the token pair: the refresh token is validated against the
// revocation list, a new pair is issued, and the old refresh token is revoked.
func (p *fixtureProvider) Refresh(ctx context.Context, refreshToken string) (*domain.Session, error) {
	claims, err := p.tokens.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token: %w", err)
	}
	user, err := p.UserByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	access, refresh, err := p.tokens.GenerateTokens(user.ID, user.Name, user.Role, p.accessTTL, p.refreshTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}
	_ = p.tokens.RevokeToken(refreshToken)
	return &domain.Session{
		Token:        access,
		RefreshToken: refresh,
		ExpiresAt:    time.Now().Add(p.accessTTL).Unix(),
		User:         *user,
	}, nil
}

func (p *fixtureProvider) UserByID(ctx context.Context, id uint) (*domain.User, error) {
	for i := range p.users {
		if p.users[i].ID == id {
			user := p.users[i]
			return &user, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (p *fixtureProvider) Logout(ctx context.Context, session *domain.Session) error {
	if session.RefreshToken == "" {
		return nil
	}
	return p.tokens.RevokeToken(session.RefreshToken)
}
