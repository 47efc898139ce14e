package domain

import (
	"context"
	"errors"
	"time"
)

var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrUserNotFound = errors.New("user not found")

type User struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"` // "admin" or "user"
	Bio       string    `json:"bio,omitempty"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (u User) IsAdmin() bool { return u.Role == "admin" }

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// Session is the authenticated state carried through view rendering. It is
// hydrated per request from the persisted token, never held as a global.
type Session struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	ExpiresAt    int64  `json:"expires_at"`
	User         User   `json:"user"`
}

// IdentityProvider abstracts where users come from. Two implementations
// exist: one backed by the hosted auth service and an in-memory fixture for
// local development. The active one is chosen by configuration.
type IdentityProvider interface {
	Login(ctx context.Context, email, password string) (*Session, error)
	Authenticate(ctx context.Context, token string) (*User, error)
	// Refresh exchanges a still-valid refresh token for a new session,
	// rotating the refresh token. The old refresh token is revoked.
	Refresh(ctx context.Context, refreshToken string) (*Session, error)
	UserByID(ctx context.Context, id uint) (*User, error)
	Logout(ctx context.Context, session *Session) error
}
