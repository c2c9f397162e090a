package config

import (
	"os"
	"strings"
)

type Config struct {
	PostgresURI string
	RedisURI    string
	MongoURI    string

	Port           string
	Environment    string   // ENV: production, development, etc.
	AllowedOrigins []string // CORS: from ALLOWED_ORIGINS or FRONTEND_URL
	AllowedHost    string   // Hostname only, strict host check (production only)

	// Admin gate. The hash, when set, wins over the plaintext password.
	AdminUsername     string
	AdminPassword     string
	AdminPasswordHash string

	// Legacy file-backed listing store (fallback when Postgres is down).
	DataDir string

	CloudinaryName      string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
}

func Load() *Config {
	env := strings.ToLower(strings.TrimSpace(getEnv("ENV", "development")))

	// AllowedHost is only enforced in production; host check is skipped in development.
	var allowedHost string
	if env == "production" {
		allowedHost = hostOnly(getEnv("HOST", ""))
	}

	allowedOrigins := parseOrigins(getEnv("ALLOWED_ORIGINS", ""))
	if len(allowedOrigins) == 0 {
		for _, u := range []string{getEnv("FRONTEND_URL", "http://localhost:3000"), getEnv("FRONTEND_URL_2", "")} {
			u = strings.TrimSpace(u)
			if u != "" {
				allowedOrigins = append(allowedOrigins, u)
			}
		}
	}

	return &Config{
		PostgresURI: getEnv("POSTGRES_URI", "postgres://localhost:5432/ilan?sslmode=disable"),
		RedisURI:    getEnv("REDIS_URI", "redis://localhost:6379/0"),
		MongoURI:    getEnv("MONGODB_URI", getEnv("MONGO_URI", "mongodb://localhost:27017/ilan")),

		Port:           getEnv("PORT", "8080"),
		Environment:    env,
		AllowedOrigins: allowedOrigins,
		AllowedHost:    allowedHost,

		AdminUsername:     getEnv("ADMIN_USERNAME", "kirve2323"),
		AdminPassword:     getEnv("ADMIN_PASSWORD", "kirve190523"),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),

		DataDir: getEnv("DATA_DIR", "data"),

		CloudinaryName:      getEnv("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryAPIKey:    getEnv("CLOUDINARY_API_KEY", ""),
		CloudinaryAPISecret: getEnv("CLOUDINARY_API_SECRET", ""),
	}
}

// hostOnly strips scheme, path and port from a HOST value like
// https://api.example.com:8443/x so only the bare hostname remains.
func hostOnly(host string) string {
	for _, prefix := range []string{"https://", "http://"} {
		host = strings.TrimPrefix(host, prefix)
	}
	if idx := strings.Index(host, "/"); idx != -1 {
		host = host[:idx]
	}
	if idx := strings.Index(host, ":"); idx != -1 {
		host = host[:idx]
	}
	return strings.TrimSpace(host)
}

func parseOrigins(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// IsProduction returns true when ENV is set to "production".
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
