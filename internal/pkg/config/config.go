package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments and security settings
// - default: Values common across all environments (timezone, timeout, venue policy, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Store   StoreConfig
	CORS    CORSConfig
	Log     LogConfig
	Session SessionConfig
	Booking BookingConfig
	Sweeper SweeperConfig
	Relay   RelayConfig
	Atlas   AtlasConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:""`
	DBName   string `envconfig:"DB_NAME" default:"reservations"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type StoreConfig struct {
	// postgres | memory
	Driver string `envconfig:"STORE_DRIVER" default:"postgres"`
	// upsert the default regions on start; the memory store always does
	Seed bool `envconfig:"STORE_SEED" default:"false"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:4200,http://localhost:3000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-Session-Token"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type SessionConfig struct {
	Secret         string        `envconfig:"SESSION_SECRET" required:"true"`
	Duration       time.Duration `envconfig:"SESSION_DURATION" default:"24h"`
	CookieDomain   string        `envconfig:"SESSION_COOKIE_DOMAIN" default:""`
	CookieSecure   bool          `envconfig:"SESSION_COOKIE_SECURE" default:"false"`
	CookieSameSite string        `envconfig:"SESSION_COOKIE_SAMESITE" default:"Lax"`
}

// BookingConfig holds the venue policy. None of it is hardcoded in the core.
type BookingConfig struct {
	TimeSlots           []string      `envconfig:"BOOKING_TIME_SLOTS" default:"18:00,18:30,19:00,19:30,20:00,20:30,21:00,21:30,22:00"`
	DateFrom            string        `envconfig:"BOOKING_DATE_FROM" default:"2025-07-24"`
	DateTo              string        `envconfig:"BOOKING_DATE_TO" default:"2025-07-31"`
	ReservationDuration time.Duration `envconfig:"BOOKING_RESERVATION_DURATION" default:"2h"`
	HoldDuration        time.Duration `envconfig:"BOOKING_HOLD_DURATION" default:"5m"`
	MinPartySize        int           `envconfig:"BOOKING_MIN_PARTY_SIZE" default:"1"`
	MaxPartySize        int           `envconfig:"BOOKING_MAX_PARTY_SIZE" default:"12"`
	// exact | allowed
	SmokingPolicy string `envconfig:"BOOKING_SMOKING_POLICY" default:"exact"`
	// upper bound on concurrent candidate checks when suggesting alternatives
	AlternativesConcurrency int `envconfig:"BOOKING_ALTERNATIVES_CONCURRENCY" default:"8"`
}

type SweeperConfig struct {
	// robfig/cron spec; must fire well inside HoldDuration
	Schedule string        `envconfig:"SWEEPER_SCHEDULE" default:"@every 1m"`
	Timeout  time.Duration `envconfig:"SWEEPER_TIMEOUT" default:"20s"`
}

// RelayConfig enables forwarding of change events to external consumers.
// Empty addresses leave the relay disabled.
type RelayConfig struct {
	RedisAddr     string   `envconfig:"RELAY_REDIS_ADDR" default:""`
	RedisPassword string   `envconfig:"RELAY_REDIS_PASSWORD" default:""`
	RedisPrefix   string   `envconfig:"RELAY_REDIS_PREFIX" default:"reservations"`
	KafkaBrokers  []string `envconfig:"RELAY_KAFKA_BROKERS" default:""`
	KafkaTopic    string   `envconfig:"RELAY_KAFKA_TOPIC" default:"reservation-events"`
	QueueSize     int      `envconfig:"RELAY_QUEUE_SIZE" default:"256"`
	ObserverQueue int      `envconfig:"OBSERVER_QUEUE_SIZE" default:"64"`
}

type AtlasConfig struct {
	SchemaURL string `envconfig:"ATLAS_SCHEMA_URL" default:"file://db/schema.sql"`
	DevURL    string `envconfig:"ATLAS_DEV_URL" default:"docker://postgres/17/dev?search_path=public"`
	WorkDir   string `envconfig:"ATLAS_WORKDIR" default:"."`
	Binary    string `envconfig:"ATLAS_BINARY" default:"atlas"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Store: StoreConfig{
			Driver: "memory",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Session: SessionConfig{
			Secret:         "test-session-secret",
			Duration:       time.Hour,
			CookieSameSite: "Lax",
		},
		Booking: BookingConfig{
			TimeSlots:               []string{"18:00", "18:30", "19:00", "19:30", "20:00", "20:30", "21:00", "21:30", "22:00"},
			DateFrom:                "2025-07-24",
			DateTo:                  "2025-07-31",
			ReservationDuration:     2 * time.Hour,
			HoldDuration:            5 * time.Minute,
			MinPartySize:            1,
			MaxPartySize:            12,
			SmokingPolicy:           "exact",
			AlternativesConcurrency: 4,
		},
		Sweeper: SweeperConfig{
			Schedule: "@every 1m",
			Timeout:  5 * time.Second,
		},
		Relay: RelayConfig{
			RedisPrefix:   "reservations",
			KafkaTopic:    "reservation-events",
			QueueSize:     16,
			ObserverQueue: 16,
		},
	}
}
