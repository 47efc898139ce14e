package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Rekha718/blogapp/internal/domain"
	"github.com/Rekha718/blogapp/pkg/token"
)

// remoteProvider authenticates against the hosted auth service over HTTP.
// Access tokens are validated locally with the shared signing secret; user
// records are fetched from the service.
type remoteProvider struct {
	baseURL    string
	httpc      *http.Client
	tokens     token.Manager
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewRemoteProvider creates the auth-service-backed provider.
func NewRemoteProvider(baseURL string, tokens token.Manager, accessTTLMinutes, refreshTTLMinutes int) domain.IdentityProvider {
	return &remoteProvider{
		baseURL:    baseURL,
		httpc:      http.DefaultClient,
		tokens:     tokens,
		accessTTL:  time.Duration(accessTTLMinutes) * time.Minute,
		refreshTTL: time.Duration(refreshTTLMinutes) * time.Minute,
	}
}

func (p *remoteProvider) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	payload, err := json.Marshal(domain.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/login", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := p.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("auth service unreachable: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusUnauthorized {
		return nil, domain.ErrInvalidCredentials
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("auth service returned status %d", resp.StatusCode)
	}
	var session domain.Session
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, fmt.Errorf("failed to decode login response: %w", err)
	}
	return &session, nil
}

func (p *remoteProvider) Authenticate(ctx context.Context, tokenString string) (*domain.User, error) {
	claims, err := p.tokens.ValidateAccessToken(tokenString)
	if err != nil {
		return nil, err
	}
	return p.UserByID(ctx, claims.UserID)
}

// Refresh exchanges the refresh token at the auth service's /refresh
// endpoint. The service rotates the pair and revokes the old refresh token.
func (p *remoteProvider) Refresh(ctx context.Context, refreshToken string) (*domain.Session, error) {
	payload, err := json.Marshal(map[string]string{"refresh_token": refreshToken})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/refresh", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := p.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("auth service unreachable: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusUnauthorized {
		return nil, domain.ErrInvalidCredentials
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("auth service returned status %d", resp.StatusCode)
	}
	var session domain.Session
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, fmt.Errorf("failed to decode refresh response: %w", err)
	}
	if session.User.ID == 0 {
		claims, err := p.tokens.ValidateAccessToken(session.Token)
		if err != nil {
			return nil, fmt.Errorf("refreshed token invalid: %w", err)
		}
		user, err := p.UserByID(ctx, claims.UserID)
		if err != nil {
			return nil, err
		}
		session.User = *user
	}
	return &session, nil
}

func (p *remoteProvider) UserByID(ctx context.Context, id uint) (*domain.User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/users/%d", p.baseURL, id), nil)
	if err != nil {
		return nil, err
	}
	resp, err := p.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("auth service unreachable: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrUserNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("auth service returned status %d", resp.StatusCode)
	}
	var user domain.User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to decode user: %w", err)
	}
	return &user, nil
}

func (p *remoteProvider) Logout(ctx context.Context, session *domain.Session) error {
	if session.RefreshToken == "" {
		return nil
	}
	return p.tokens.RevokeToken(session.RefreshToken)
}
