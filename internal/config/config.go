package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const envProduction = "production"

type Config struct {
	Env             string
	Port            string
	JWTSecret       string
	MongoURI        string
	MongoDBName     string
	MySQLDSN        string
	CORSOrigins     []string
	RateLimitMax    int
	RateLimitWindow time.Duration
	TrustProxy      bool
	LogLevel        string
}

func (c Config) IsProduction() bool {
	return c.Env == envProduction
}

// Load reads the env file named by START (".env" by default) if present and
// builds the Config from the environment. Bad values stop the process.
func Load() Config {
	file := os.Getenv("START")
	if file == "" {
		file = ".env"
	}
	if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Env file %s: %v", file, err)
	}

	cfg, err := FromEnv(os.Getenv)
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}

// FromEnv builds a Config from getenv.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Env:         get(getenv, "APP_ENV", "development"),
		Port:        get(getenv, "PORT", "3000"),
		JWTSecret:   getenv("JWT_SECRET"),
		MongoURI:    get(getenv, "MONGO_URI", "mongodb://localhost:27017"),
		MongoDBName: get(getenv, "MONGO_DB_NAME", "moviesdb"),
		MySQLDSN:    getenv("MYSQL_DSN"),
		CORSOrigins: splitList(getenv("CORS_ORIGINS")),
		LogLevel:    get(getenv, "LOG_LEVEL", "info"),
	}

	if cfg.IsProduction() && cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET is not set in environment")
	}

	var err error
	if cfg.RateLimitMax, err = strconv.Atoi(get(getenv, "RATE_LIMIT_MAX", "100")); err != nil || cfg.RateLimitMax <= 0 {
		return Config{}, fmt.Errorf("RATE_LIMIT_MAX must be a positive integer")
	}
	if cfg.RateLimitWindow, err = time.ParseDuration(get(getenv, "RATE_LIMIT_WINDOW", "15m")); err != nil || cfg.RateLimitWindow <= 0 {
		return Config{}, fmt.Errorf("RATE_LIMIT_WINDOW must be a positive duration")
	}
	if cfg.TrustProxy, err = strconv.ParseBool(get(getenv, "TRUST_PROXY", "false")); err != nil {
		return Config{}, fmt.Errorf("TRUST_PROXY must be a boolean: %w", err)
	}

	return cfg, nil
}

func get(getenv func(string) string, key, fallback string) string {
	if v := strings.TrimSpace(getenv(key)); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
