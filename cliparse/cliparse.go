package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
)

type Config struct {
	Port          int
	DatabaseURL   string
	DatabaseType  string
	ModelPath     string
	ScalerPath    string
	SessionSecret string
	SessionTTL    time.Duration
	LoginRate     int  // attempts per minute per client IP
	TrustProxy    bool // key rate limits on X-Forwarded-For / X-Real-IP
	LogLevel      slog.Level
}

// LoadDotenv loads the first .env file found in paths. Variables already set
// in the environment are left alone. Returns the loaded path, or "" if none.
func LoadDotenv(paths ...string) (string, error) {
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return "", fmt.Errorf("failed to load %s: %w", p, err)
		}
		return p, nil
	}
	return "", nil
}

// ParseFlags validates flags and fills defaults from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var ttl, logLevel string

	fs := flag.NewFlagSet("insureai", flag.ContinueOnError)

	// Network and storage config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL or sqlite file")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Model artifacts
	fs.StringVar(&cfg.ModelPath, "model", "", "Model artifact path (.json or .yaml)")
	fs.StringVar(&cfg.ScalerPath, "scaler", "", "Scaler artifact path (.json or .yaml)")

	// Sessions (prefer env for the secret, but allow CLI for dev)
	fs.StringVar(&cfg.SessionSecret, "session-secret", "", "Session token signing secret (prefer env)")
	fs.StringVar(&ttl, "session-ttl", "", "Session lifetime, e.g. 12h")
	fs.IntVar(&cfg.LoginRate, "login-rate", 0, "Login/signup attempts per minute per IP")
	fs.BoolVar(&cfg.TrustProxy, "trust-proxy", false, "Trust X-Forwarded-For/X-Real-IP from a reverse proxy")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		port, err := envInt("PORT", 3318)
		if err != nil {
			return Config{}, err
		}
		cfg.Port = port
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = envOr("DATABASE_TYPE", DatabaseSQLite)
	}
	if cfg.DatabaseType != DatabaseSQLite && cfg.DatabaseType != DatabasePostgres {
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == DatabasePostgres {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = "insureai.db"
	}

	if cfg.ModelPath == "" {
		cfg.ModelPath = envOr("MODEL_PATH", "model.json")
	}
	if cfg.ScalerPath == "" {
		cfg.ScalerPath = envOr("SCALER_PATH", "scaler.json")
	}

	// Secret - MUST be provided
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = os.Getenv("SESSION_SECRET")
	}
	if cfg.SessionSecret == "" {
		return Config{}, errors.New("SESSION_SECRET required")
	}

	if ttl == "" {
		ttl = envOr("SESSION_TTL", "12h")
	}
	d, err := time.ParseDuration(ttl)
	if err != nil || d <= 0 {
		return Config{}, fmt.Errorf("invalid session TTL %q", ttl)
	}
	cfg.SessionTTL = d

	if cfg.LoginRate == 0 {
		rate, err := envInt("LOGIN_RATE_PER_MIN", 10)
		if err != nil {
			return Config{}, err
		}
		cfg.LoginRate = rate
	}
	if cfg.LoginRate < 0 {
		return Config{}, errors.New("login rate must be positive")
	}

	if !cfg.TrustProxy {
		trust, err := envBool("TRUST_PROXY")
		if err != nil {
			return Config{}, err
		}
		cfg.TrustProxy = trust
	}

	if logLevel == "" {
		logLevel = envOr("LOG_LEVEL", "info")
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(strings.ToUpper(logLevel))); err != nil {
		return Config{}, fmt.Errorf("invalid log level %q", logLevel)
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s env variable", key)
	}
	return n, nil
}

func envBool(key string) (bool, error) {
	s := os.Getenv(key)
	if s == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("invalid %s env variable", key)
	}
	return b, nil
}
