package token

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
)

// ErrTokenExpired is returned when a token has expired.
var ErrTokenExpired = errors.New("token is expired")

// Claims defines the custom JWT claims structure.
type Claims struct {
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Manager issues, validates and revokes the platform's JWT tokens.
type Manager interface {
	// GenerateTokens returns an access token and a refresh token.
	GenerateTokens(userID uint, name, role string, accessExp, refreshExp time.Duration) (string, string, error)
	ValidateAccessToken(tokenString string) (*Claims, error)
	ValidateRefreshToken(tokenString string) (*Claims, error)
	// RevokeToken blacklists a refresh token until it would naturally expire.
	RevokeToken(tokenString string) error
}

// NewManager creates a Manager backed by the given secret and Redis client.
// A nil Redis client disables the revocation list.
func NewManager(secretKey string, redisClient *redis.Client) Manager {
	return &manager{secretKey: secretKey, redis: redisClient}
}

type manager struct {
	secretKey string
	redis     *redis.Client
}

func (m *manager) GenerateTokens(userID uint, name, role string, accessExp, refreshExp time.Duration) (string, string, error) {
	access, err := m.sign(userID, name, role, accessExp)
	if err != nil {
		return "", "", err
	}
	refresh, err := m.sign(userID, name, role, refreshExp)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func (m *manager) sign(userID uint, name, role string, exp time.Duration) (string, error) {
	claims := Claims{
		UserID: userID,
		Name:   name,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(exp)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.secretKey))
}

// ValidateAccessToken parses and validates an access token.
func (m *manager) ValidateAccessToken(tokenString string) (*Claims, error) {
	claims, err := m.parse(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.ExpiresAt != nil && claims.ExpiresAt.Time.Before(time.Now().UTC()) {
		return nil, ErrTokenExpired
	}
	return claims, nil
}

// ValidateRefreshToken parses a refresh token and checks the revocation list.
func (m *manager) ValidateRefreshToken(tokenString string) (*Claims, error) {
	if m.redis != nil {
		revoked, err := m.isRevoked(tokenString)
		if err != nil {
			return nil, err
		}
		if revoked {
			return nil, errors.New("refresh token is revoked")
		}
	}
	return m.parse(tokenString)
}

func (m *manager) parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(m.secretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// RevokeToken stores the refresh token in Redis until its natural expiry.
func (m *manager) RevokeToken(tokenString string) error {
	if m.redis == nil {
		return nil
	}
	claims, err := m.parse(tokenString)
	if err != nil {
		return errors.New("invalid token for revocation")
	}
	if claims.ExpiresAt == nil {
		return nil
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil // already expired
	}
	return m.redis.Set(context.Background(), redisKey(tokenString), "revoked", ttl).Err()
}

func (m *manager) isRevoked(tokenString string) (bool, error) {
	res, err := m.redis.Exists(context.Background(), redisKey(tokenString)).Result()
	if err != nil {
		return false, err
	}
	return res > 0, nil
}

func redisKey(tokenString string) string {
	return "revoked:" + tokenString
}
