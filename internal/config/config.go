package config

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultHTTPAddr       = ":3000"
	defaultAPIBase        = "http://localhost:8080"
	defaultDatabaseURL    = "smarthub.db"
	defaultStateStore     = StateStoreSQL
	defaultRedisAddr      = "localhost:6379"
	defaultClientSecret   = "change-me-client-secret"
	defaultClientTTL      = "720h"
	defaultCookieName     = "ssh_client"
	defaultCookieSecure   = "false"
	defaultFeedInterval   = "15s"
	defaultFeedIdle       = "10m"
	defaultStatusMethod   = http.MethodPut
	defaultPaymentDelay   = "1500ms"
	defaultRedirectDelay  = "1500ms"
	defaultHTTPTimeout    = "10s"
	defaultStateRetention = "720h"
)

const (
	StateStoreSQL   = "sql"
	StateStoreRedis = "redis"
)

// Config is the runtime configuration of the web front-end.
type Config struct {
	AppEnv string `yaml:"app_env"`

	HTTPAddr string `yaml:"http_addr"`
	// APIBase is the origin of the Smart Service Hub backend.
	APIBase     string        `yaml:"api_base"`
	HTTPTimeout time.Duration `yaml:"http_timeout"`

	DatabaseURL    string        `yaml:"database_url"`
	StateStore     string        `yaml:"state_store"`
	StateRetention time.Duration `yaml:"state_retention"`
	Redis          RedisConfig   `yaml:"redis"`

	ClientSecret string        `yaml:"client_secret"`
	ClientTTL    time.Duration `yaml:"client_ttl"`
	CookieName   string        `yaml:"cookie_name"`
	CookieSecure bool          `yaml:"cookie_secure"`

	FeedInterval        time.Duration `yaml:"feed_interval"`
	FeedFailOpen        bool          `yaml:"feed_fail_open"`
	FeedIdleTimeout     time.Duration `yaml:"feed_idle_timeout"`
	BookingStatusMethod string        `yaml:"booking_status_method"`

	PaymentDelay  time.Duration `yaml:"payment_delay"`
	RedirectDelay time.Duration `yaml:"redirect_delay"`

	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// Load reads .env (if present), an optional YAML file named by CONFIG_FILE,
// and then environment variables, which win over the file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config: .env not loaded: %v", err)
	}

	// fail-open is on unless the file or env turns it off
	cfg := &Config{FeedFailOpen: true}
	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}

	log.Printf("config: env=%s addr=%s api_base=%s state_store=%s feed_interval=%s fail_open=%t status_method=%s",
		cfg.AppEnv, cfg.HTTPAddr, cfg.APIBase, cfg.StateStore, cfg.FeedInterval, cfg.FeedFailOpen, cfg.BookingStatusMethod)

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	appEnv := firstNonEmpty(os.Getenv("APP_ENV"), os.Getenv("ENV"), cfg.AppEnv, "dev")
	cfg.AppEnv = strings.ToLower(strings.TrimSpace(appEnv))

	cfg.HTTPAddr = strings.TrimSpace(getEnv("HTTP_ADDR", firstNonEmpty(cfg.HTTPAddr, defaultHTTPAddr)))
	cfg.APIBase = strings.TrimRight(strings.TrimSpace(getEnv("API_BASE", firstNonEmpty(cfg.APIBase, defaultAPIBase))), "/")
	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", firstNonEmpty(cfg.DatabaseURL, defaultDatabaseURL)))
	cfg.StateStore = strings.ToLower(strings.TrimSpace(getEnv("STATE_STORE", firstNonEmpty(cfg.StateStore, defaultStateStore))))
	cfg.ClientSecret = strings.TrimSpace(getEnv("CLIENT_SECRET", firstNonEmpty(cfg.ClientSecret, defaultClientSecret)))
	cfg.CookieName = strings.TrimSpace(getEnv("COOKIE_NAME", firstNonEmpty(cfg.CookieName, defaultCookieName)))
	cfg.BookingStatusMethod = strings.ToUpper(strings.TrimSpace(getEnv("BOOKING_STATUS_METHOD", firstNonEmpty(cfg.BookingStatusMethod, defaultStatusMethod))))

	cfg.Redis.Addr = strings.TrimSpace(getEnv("REDIS_ADDR", firstNonEmpty(cfg.Redis.Addr, defaultRedisAddr)))
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", cfg.Redis.Password)
	if v := strings.TrimSpace(os.Getenv("REDIS_DB")); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid REDIS_DB value %q: %w", v, err)
		}
		cfg.Redis.DB = db
	}

	var err error
	if cfg.HTTPTimeout, err = durationEnv("HTTP_TIMEOUT", cfg.HTTPTimeout, defaultHTTPTimeout); err != nil {
		return err
	}
	if cfg.ClientTTL, err = durationEnv("CLIENT_TTL", cfg.ClientTTL, defaultClientTTL); err != nil {
		return err
	}
	if cfg.StateRetention, err = durationEnv("STATE_RETENTION", cfg.StateRetention, defaultStateRetention); err != nil {
		return err
	}
	if cfg.FeedInterval, err = durationEnv("FEED_INTERVAL", cfg.FeedInterval, defaultFeedInterval); err != nil {
		return err
	}
	if cfg.FeedIdleTimeout, err = durationEnv("FEED_IDLE_TIMEOUT", cfg.FeedIdleTimeout, defaultFeedIdle); err != nil {
		return err
	}
	if cfg.PaymentDelay, err = durationEnv("PAYMENT_DELAY", cfg.PaymentDelay, defaultPaymentDelay); err != nil {
		return err
	}
	if cfg.RedirectDelay, err = durationEnv("REDIRECT_DELAY", cfg.RedirectDelay, defaultRedirectDelay); err != nil {
		return err
	}

	cfg.CookieSecure = boolEnv("COOKIE_SECURE", cfg.CookieSecure, defaultCookieSecure)
	if strings.TrimSpace(os.Getenv("FEED_FAIL_OPEN")) != "" {
		cfg.FeedFailOpen = boolEnv("FEED_FAIL_OPEN", false, "false")
	}

	if extra := os.Getenv("CORS_ALLOWED_ORIGINS"); extra != "" {
		cfg.CORSAllowedOrigins = nil
		for _, o := range strings.Split(extra, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
			}
		}
	}

	return nil
}

func validate(cfg *Config) error {
	if cfg.APIBase == "" {
		return fmt.Errorf("API_BASE must not be empty")
	}
	if !strings.HasPrefix(cfg.APIBase, "http://") && !strings.HasPrefix(cfg.APIBase, "https://") {
		return fmt.Errorf("API_BASE must be an http(s) URL, got %q", cfg.APIBase)
	}
	if cfg.FeedInterval <= 0 {
		return fmt.Errorf("FEED_INTERVAL must be > 0")
	}
	if cfg.FeedIdleTimeout <= 0 {
		return fmt.Errorf("FEED_IDLE_TIMEOUT must be > 0")
	}
	if cfg.HTTPTimeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be > 0")
	}
	if cfg.ClientTTL <= 0 {
		return fmt.Errorf("CLIENT_TTL must be > 0")
	}
	if cfg.PaymentDelay < 0 || cfg.RedirectDelay < 0 {
		return fmt.Errorf("PAYMENT_DELAY and REDIRECT_DELAY must be >= 0")
	}
	switch cfg.StateStore {
	case StateStoreSQL:
		if cfg.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL must not be empty when STATE_STORE=sql")
		}
	case StateStoreRedis:
		if cfg.Redis.Addr == "" {
			return fmt.Errorf("REDIS_ADDR must not be empty when STATE_STORE=redis")
		}
	default:
		return fmt.Errorf("STATE_STORE must be one of: sql, redis")
	}
	if cfg.BookingStatusMethod != http.MethodPut && cfg.BookingStatusMethod != http.MethodPatch {
		return fmt.Errorf("BOOKING_STATUS_METHOD must be PUT or PATCH")
	}
	if cfg.CookieName == "" {
		return fmt.Errorf("COOKIE_NAME must not be empty")
	}

	if IsProdLike(cfg.AppEnv) {
		if cfg.ClientSecret == "" || cfg.ClientSecret == defaultClientSecret {
			return fmt.Errorf("in prod/release CLIENT_SECRET must be set and not default")
		}
		if !cfg.CookieSecure {
			return fmt.Errorf("in prod/release COOKIE_SECURE must be true")
		}
	}

	return nil
}

func IsProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func durationEnv(name string, current time.Duration, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(os.Getenv(name))
	if value == "" {
		if current != 0 {
			return current, nil
		}
		value = fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func boolEnv(name string, current bool, fallback string) bool {
	value := strings.ToLower(strings.TrimSpace(os.Getenv(name)))
	if value == "" {
		if current {
			return true
		}
		value = fallback
	}
	return value == "1" || value == "true" || value == "yes" || value == "on"
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
