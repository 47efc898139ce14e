package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// APIConfig configures the REST backend.
type APIConfig struct {
	ServerPort    string
	AllowedOrigin string
	PostgresDSN   string
	UploadDir     string
}

// WebConfig configures the web front.
type WebConfig struct {
	ServerPort      string
	APIBaseURL      string
	IdentityMode    string // "remote" or "fixture"
	AuthServiceURL  string // required when IdentityMode is "remote"
	JWTSecretKey    string
	RedisAddr       string // empty disables the revocation list
	RedisPassword   string
	TemplateGlob    string
	StaticDir       string
	AccessTokenTTL  int // minutes
	RefreshTokenTTL int // minutes
}

func LoadAPIConfig() *APIConfig {
	loadDotEnv()
	return &APIConfig{
		ServerPort:    getEnvOrDefault("SERVER_PORT", "3000"),
		AllowedOrigin: getEnvOrDefault("ALLOWED_ORIGIN", "http://localhost:8080"),
		PostgresDSN:   getEnv("POSTGRES_DSN"),
		UploadDir:     getEnvOrDefault("UPLOAD_DIR", "static/uploads"),
	}
}

func LoadWebConfig() *WebConfig {
	loadDotEnv()
	conf := &WebConfig{
		ServerPort:      getEnvOrDefault("WEB_PORT", "8080"),
		APIBaseURL:      getEnvOrDefault("API_BASE_URL", "http://localhost:3000"),
		IdentityMode:    getEnvOrDefault("IDENTITY_MODE", "fixture"),
		JWTSecretKey:    getEnv("JWT_SECRET_KEY"),
		RedisAddr:       getEnvOrDefault("REDIS_ADDR", ""),
		RedisPassword:   getEnvOrDefault("REDIS_PASSWORD", ""),
		TemplateGlob:    getEnvOrDefault("TEMPLATE_GLOB", "internal/web/templates/*.html"),
		StaticDir:       getEnvOrDefault("STATIC_DIR", "static"),
		AccessTokenTTL:  30,
		RefreshTokenTTL: 1440,
	}
	if conf.IdentityMode == "remote" {
		conf.AuthServiceURL = getEnv("AUTH_SERVICE_URL")
	}
	return conf
}

// loadDotEnv loads a .env file for local development if present.
func loadDotEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment variables")
	}
}

// getEnv retrieves the value of the environment variable named by the key.
func getEnv(key string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	panic("critical config missing: " + key)
}

// getEnvOrDefault retrieves the value or returns default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}
