package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	MigrationsPath string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool

	JWTSecret                  string
	JWTIssuer                  string
	AccessTokenExpiryDuration  time.Duration
	RefreshTokenExpiryDuration time.Duration
	MaxSessionsPerUser         int

	LoginRateLimit     string
	RedisURL           string
	CORSAllowedOrigins []string

	BaseURL           string
	UploadsDir        string
	MaxUploadSizeMB   int64
	SwaggerUsername   string
	SwaggerPassword   string
	PosthogAPIKey     string
	GoogleClientID    string
	GoogleSecret      string
	GoogleRedirectURL string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_ISSUER", "procurement-backend")
	viper.SetDefault("JWT_ACCESS_TOKEN_EXPIRY", "15m")
	viper.SetDefault("JWT_REFRESH_TOKEN_EXPIRY", "168h")
	viper.SetDefault("MAX_SESSIONS_PER_USER", 10)
	viper.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("BASE_URL", "http://localhost:8080")
	viper.SetDefault("UPLOADS_DIR", "./uploads")
	viper.SetDefault("MAX_UPLOAD_SIZE_MB", 10)
	viper.SetDefault("SWAGGER_USERNAME", "")
	viper.SetDefault("SWAGGER_PASSWORD", "")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_REDIRECT_URL", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = "procurement-backend"
		log.Printf("Warning: JWT_ISSUER not set. Defaulting to %s.\n", cfg.JWTIssuer)
	}

	cfg.AccessTokenExpiryDuration = parseDuration("JWT_ACCESS_TOKEN_EXPIRY", 15*time.Minute)
	cfg.RefreshTokenExpiryDuration = parseDuration("JWT_REFRESH_TOKEN_EXPIRY", 7*24*time.Hour)

	cfg.MaxSessionsPerUser = viper.GetInt("MAX_SESSIONS_PER_USER")
	if cfg.MaxSessionsPerUser <= 0 {
		cfg.MaxSessionsPerUser = 10
		log.Printf("Warning: MAX_SESSIONS_PER_USER must be positive. Defaulting to %d.\n", cfg.MaxSessionsPerUser)
	}

	cfg.MaxUploadSizeMB = viper.GetInt64("MAX_UPLOAD_SIZE_MB")
	if cfg.MaxUploadSizeMB <= 0 {
		cfg.MaxUploadSizeMB = 10
		log.Printf("Warning: MAX_UPLOAD_SIZE_MB must be positive. Defaulting to %d.\n", cfg.MaxUploadSizeMB)
	}

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	cfg.GoogleClientID = viper.GetString("GOOGLE_CLIENT_ID")
	cfg.GoogleSecret = viper.GetString("GOOGLE_CLIENT_SECRET")
	cfg.GoogleRedirectURL = viper.GetString("GOOGLE_REDIRECT_URL")
	if cfg.GoogleClientID == "" {
		log.Println("Warning: GOOGLE_CLIENT_ID not set. Google sign-in will not function.")
	}

	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.LoginRateLimit = viper.GetString("LOGIN_RATE_LIMIT")
	cfg.RedisURL = viper.GetString("REDIS_URL")
	cfg.BaseURL = strings.TrimRight(viper.GetString("BASE_URL"), "/")
	cfg.UploadsDir = viper.GetString("UPLOADS_DIR")
	cfg.SwaggerUsername = viper.GetString("SWAGGER_USERNAME")
	cfg.SwaggerPassword = viper.GetString("SWAGGER_PASSWORD")
	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")

	return cfg, nil
}

// parseDuration reads a duration key such as "15m" or "168h", falling back with a warning.
func parseDuration(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback.String())
		} else {
			log.Printf("Warning: %s not set. Defaulting to %s.\n", key, fallback.String())
		}
		return fallback
	}
	return d
}
