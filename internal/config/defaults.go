package config

import "time"

const (
	defaultPort             = 8080
	defaultOperationTimeout = 3 * time.Second
	defaultPprofAddr        = "127.0.0.1:6060"
)

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "scheduler",
	Pass: "scheduler",
	Name: "homecare",
}

var defaultGeocoder = Geocoder{
	Enabled:       false,
	BaseURL:       "https://nominatim.openstreetmap.org",
	UserAgent:     "homecare-scheduler/1.0",
	CountryCodes:  "fi",
	Timeout:       5 * time.Second,
	RatePerSecond: 1,
	Burst:         1,
	MaxAttempts:   3,
	BaseDelay:     200 * time.Millisecond,
	MaxDelay:      2 * time.Second,
}

var defaultRedis = Redis{
	DB:          0,
	TTL:         30 * 24 * time.Hour,
	NegativeTTL: 24 * time.Hour,
}

var defaultKafka = Kafka{
	GroupID: "homecare-geocoder",
	Topic:   "patient-events",
}

var defaultRateLimit = RateLimit{
	Enabled:    true,
	Rate:       10,
	Burst:      20,
	TTL:        10 * time.Minute,
	MaxBuckets: 10000,
}

var defaultLog = Log{Backend: "slog", Level: "info"}

// DefaultPort returns the default port.
func DefaultPort() int {
	return defaultPort
}

// DefaultDB returns the default database settings.
func DefaultDB() DB {
	return defaultDB
}

// DefaultGeocoder returns the default geocoder settings.
func DefaultGeocoder() Geocoder {
	return defaultGeocoder
}

// DefaultRedis returns the default cache settings.
func DefaultRedis() Redis {
	return defaultRedis
}

// DefaultRateLimit returns the default HTTP rate limit.
func DefaultRateLimit() RateLimit {
	return defaultRateLimit
}
