package config

import (
	"os"
	"strings"
)

type Config struct {
	SupabaseURL        string
	SupabaseServiceKey string
	JWTSecret          string
	StripeSecretKey    string
	Port               string
	Environment        string
	AllowedOrigins     []string
}

func NewConfig() *Config {
	allowedOriginsStr := os.Getenv("ALLOWED_ORIGINS")
	allowedOrigins := []string{"http://localhost:3000"}
	if allowedOriginsStr != "" {
		allowedOrigins = strings.Split(allowedOriginsStr, ",")
	}

	return &Config{
		SupabaseURL:        os.Getenv("SUPABASE_URL"),
		SupabaseServiceKey: os.Getenv("SUPABASE_SERVICE_ROLE_KEY"),
		JWTSecret:          os.Getenv("ACCESS_TOKEN_SECRET"),
		StripeSecretKey:    os.Getenv("STRIPE_SECRET_KEY"),
		Port:               getEnvOrDefault("PORT", "5000"),
		Environment:        getEnvOrDefault("ENVIRONMENT", "development"),
		AllowedOrigins:     allowedOrigins,
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
