package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"
)

// Supported storage backends.
const (
	DriverMySQL = "mysql"
	DriverMongo = "mongo"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort string

	DBDriver      string
	MySQLDSN      string
	MongoURI      string
	MongoDatabase string
	ResetDB       bool

	RedisAddr string
	RedisDB   int
	RedisPass string

	JWTSecret           string
	SessionTTL          time.Duration
	SessionCookieSecure bool

	AdminEmail      string
	AdminPassword   string
	PasswordHashing string

	LogLevel       string
	MetricsEnabled bool
	SwaggerHost    string
}

// Load builds Config from environment with sensible defaults. A .env file found
// in the working directory or any parent is loaded first.
func Load() *Config {
	loadDotEnv()

	return &Config{
		ServerPort: env.GetString("SERVER_PORT", "8080"),

		DBDriver:      env.GetString("DB_DRIVER", DriverMySQL),
		MySQLDSN:      env.GetString("MYSQL_DSN", "user:password@tcp(localhost:3306)/theboar?charset=utf8mb4&parseTime=True&loc=Local"),
		MongoURI:      env.GetString("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: env.GetString("MONGO_DATABASE", "TheBoar"),
		ResetDB:       env.GetBool("RESET_DB", false),

		RedisAddr: env.GetString("REDIS_ADDR", "localhost:6379"),
		RedisDB:   env.GetInt("REDIS_DB", 0),
		RedisPass: env.GetString("REDIS_PASSWORD", ""),

		JWTSecret:           env.GetString("JWT_SECRET", "change-me"),
		SessionTTL:          env.GetDuration("SESSION_TTL_HOURS", 24, time.Hour),
		SessionCookieSecure: env.GetBool("SESSION_COOKIE_SECURE", false),

		AdminEmail:      env.GetString("ADMIN_EMAIL", "admin@admin.com"),
		AdminPassword:   env.GetString("ADMIN_PASSWORD", "123admin"),
		PasswordHashing: env.GetString("PASSWORD_HASHING", "plain"),

		LogLevel:       env.GetString("LOG_LEVEL", "info"),
		MetricsEnabled: env.GetBool("METRICS_ENABLED", true),
		SwaggerHost:    env.GetString("SWAGGER_HOST", ""),
	}
}

// loadDotEnv walks up from the working directory and loads the first .env found.
func loadDotEnv() {
	dir, err := os.Getwd()
	if err != nil {
		return
	}

	for {
		path := filepath.Join(dir, ".env")
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return
		}
		dir = parent
	}
}
