package config

import (
	"errors"
	"fmt"
	"log"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Config stores service settings.
type Config struct {
	Port             int
	OperationTimeout time.Duration
	// AutoMigrate applies pending migrations when the API starts.
	AutoMigrate      bool
	DB               DB
	Geocoder         Geocoder
	Redis            Redis
	Kafka            Kafka
	RateLimit        RateLimit
	Auth             Auth
	Log              Log
	Pprof            PprofConfig
}

// DB stores Postgres connection settings.
type DB struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

// DSN builds a postgres connection URL.
func (d DB) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Pass),
		Host:     net.JoinHostPort(d.Host, d.Port),
		Path:     d.Name,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// Geocoder stores settings of the address lookup collaborator.
type Geocoder struct {
	Enabled      bool
	BaseURL      string
	UserAgent    string
	CountryCodes string
	Timeout      time.Duration
	// RatePerSecond paces outgoing requests; Burst is the bucket size.
	RatePerSecond float64
	Burst         int
	MaxAttempts   int
	BaseDelay     time.Duration
	MaxDelay      time.Duration
}

// Redis stores geocode cache settings. An empty Addr disables the cache.
type Redis struct {
	Addr        string
	Password    string
	DB          int
	TTL         time.Duration
	NegativeTTL time.Duration
}

// Kafka stores patient event consumer settings.
type Kafka struct {
	Brokers []string
	GroupID string
	Topic   string
}

// RateLimit stores per-client HTTP limits.
type RateLimit struct {
	Enabled    bool
	Rate       float64
	Burst      int
	TTL        time.Duration
	MaxBuckets int
}

// Auth stores token verification settings. An empty Secret enables the development identity.
type Auth struct {
	Secret string
	Issuer string
}

// Log selects the logging backend and level.
type Log struct {
	Backend string
	Level   string
}

// PprofConfig stores settings of the profiling listener.
type PprofConfig struct {
	Enabled bool
	Addr    string
	User    string
	Pass    string
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("warning: .env not loaded: %v", err)
	}

	r := &envReader{}
	cfg := &Config{
		Port:             r.int("PORT", defaultPort),
		OperationTimeout: r.duration("OPERATION_TIMEOUT", defaultOperationTimeout),
		AutoMigrate:      r.bool("DB_AUTO_MIGRATE", false),
		DB:               loadDB(r),
		Geocoder:         loadGeocoder(r),
		Redis:            loadRedis(r),
		Kafka:            loadKafka(),
		RateLimit:        loadRateLimit(r),
		Auth: Auth{
			Secret: os.Getenv("AUTH_JWT_SECRET"),
			Issuer: os.Getenv("AUTH_JWT_ISSUER"),
		},
		Log: Log{
			Backend: strings.ToLower(envOr("LOG_BACKEND", defaultLog.Backend)),
			Level:   strings.ToLower(envOr("LOG_LEVEL", defaultLog.Level)),
		},
		Pprof: PprofConfig{
			Enabled: r.bool("PPROF_ENABLED", false),
			Addr:    envOr("PPROF_ADDR", defaultPprofAddr),
			User:    os.Getenv("PPROF_USER"),
			Pass:    os.Getenv("PPROF_PASS"),
		},
	}
	if r.err != nil {
		return nil, r.err
	}

	if err := parseFlags(cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseFlags(cfg *Config) error {
	fs := pflag.CommandLine
	// test binaries and cobra pass flags of their own
	fs.ParseErrorsWhitelist.UnknownFlags = true
	if fs.Lookup("port") == nil {
		fs.IntP("port", "p", cfg.Port, "port to listen on")
	}
	if err := fs.Parse(os.Args[1:]); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	if fs.Changed("port") {
		port, err := fs.GetInt("port")
		if err != nil {
			return fmt.Errorf("parse flags: %w", err)
		}
		cfg.Port = port
	}
	return nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.OperationTimeout <= 0 {
		return fmt.Errorf("invalid operation timeout: %s", c.OperationTimeout)
	}
	switch c.Log.Backend {
	case "slog", "zap":
	default:
		return fmt.Errorf("invalid log backend: %q", c.Log.Backend)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %q", c.Log.Level)
	}
	if c.Geocoder.Enabled && c.Geocoder.BaseURL == "" {
		return errors.New("geocoder enabled without base url")
	}
	return nil
}

func loadDB(r *envReader) DB {
	d := DefaultDB()
	d.Host = envOr("POSTGRES_HOST", d.Host)
	d.Port = strconv.Itoa(r.int("POSTGRES_PORT", atoiOr(d.Port, 5432)))
	d.User = envOr("POSTGRES_USER", d.User)
	d.Pass = envOr("POSTGRES_PASSWORD", d.Pass)
	d.Name = envOr("POSTGRES_DB", d.Name)
	return d
}

func loadGeocoder(r *envReader) Geocoder {
	g := DefaultGeocoder()
	g.Enabled = r.bool("GEOCODER_ENABLED", g.Enabled)
	g.BaseURL = envOr("GEOCODER_BASE_URL", g.BaseURL)
	g.UserAgent = envOr("GEOCODER_USER_AGENT", g.UserAgent)
	g.CountryCodes = envOr("GEOCODER_COUNTRY_CODES", g.CountryCodes)
	g.Timeout = r.duration("GEOCODER_TIMEOUT", g.Timeout)
	g.RatePerSecond = r.float("GEOCODER_RATE_PER_SECOND", g.RatePerSecond)
	g.Burst = r.int("GEOCODER_BURST", g.Burst)
	g.MaxAttempts = r.int("GEOCODER_MAX_ATTEMPTS", g.MaxAttempts)
	g.BaseDelay = r.duration("GEOCODER_BASE_DELAY", g.BaseDelay)
	g.MaxDelay = r.duration("GEOCODER_MAX_DELAY", g.MaxDelay)
	return g
}

func loadRedis(r *envReader) Redis {
	c := DefaultRedis()
	c.Addr = os.Getenv("REDIS_ADDR")
	c.Password = os.Getenv("REDIS_PASSWORD")
	c.DB = r.int("REDIS_DB", c.DB)
	c.TTL = r.duration("GEOCODE_CACHE_TTL", c.TTL)
	c.NegativeTTL = r.duration("GEOCODE_CACHE_NEGATIVE_TTL", c.NegativeTTL)
	return c
}

func loadKafka() Kafka {
	var brokers []string
	for _, b := range strings.Split(os.Getenv("KAFKA_BROKERS"), ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return Kafka{
		Brokers: brokers,
		GroupID: envOr("KAFKA_GROUP_ID", defaultKafka.GroupID),
		Topic:   envOr("KAFKA_TOPIC", defaultKafka.Topic),
	}
}

func loadRateLimit(r *envReader) RateLimit {
	rl := DefaultRateLimit()
	rl.Enabled = r.bool("RATE_LIMIT_ENABLED", rl.Enabled)
	rl.Rate = r.float("RATE_LIMIT_RATE", rl.Rate)
	rl.Burst = r.int("RATE_LIMIT_BURST", rl.Burst)
	rl.TTL = r.duration("RATE_LIMIT_TTL", rl.TTL)
	rl.MaxBuckets = r.int("RATE_LIMIT_MAX_BUCKETS", rl.MaxBuckets)
	return rl
}

// envReader parses typed variables and keeps the first failure.
type envReader struct {
	err error
}

func (r *envReader) fail(key, v string, err error) {
	if r.err == nil {
		r.err = fmt.Errorf("invalid %s=%q: %w", key, v, err)
	}
}

func (r *envReader) int(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.fail(key, v, err)
		return def
	}
	return n
}

func (r *envReader) float(key string, def float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		r.fail(key, v, err)
		return def
	}
	return f
}

func (r *envReader) bool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		r.fail(key, v, err)
		return def
	}
	return b
}

func (r *envReader) duration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		r.fail(key, v, err)
		return def
	}
	if d < 0 {
		r.fail(key, v, errors.New("negative duration"))
		return def
	}
	return d
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func atoiOr(s string, def int) int {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}
