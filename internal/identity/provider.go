// Package identity supplies the platform's pluggable identity providers.
// Exactly one implementation is active, chosen by configuration: "remote"
// talks to the hosted auth service, "fixture" serves in-memory demo users.
// There is no fallback from one to the other.
package identity

import (
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/Rekha718/blogapp/internal/config"
	"github.com/Rekha718/blogapp/internal/domain"
	"github.com/Rekha718/blogapp/pkg/token"
)

// NewProvider builds the identity provider selected by conf.IdentityMode.
func NewProvider(conf *config.WebConfig) (domain.IdentityProvider, error) {
	var redisClient *redis.Client
	if conf.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     conf.RedisAddr,
			Password: conf.RedisPassword,
			DB:       0, // use default DB
		})
	}
	tokens := token.NewManager(conf.JWTSecretKey, redisClient)

	switch conf.IdentityMode {
	case "remote":
		return NewRemoteProvider(conf.AuthServiceURL, tokens, conf.AccessTokenTTL, conf.RefreshTokenTTL), nil
	case "fixture":
		return NewFixtureProvider(tokens, conf.AccessTokenTTL, conf.RefreshTokenTTL)
	default:
		return nil, fmt.Errorf("unknown identity mode %q", conf.IdentityMode)
	}
}
