package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (business hours, timeouts, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server       ServerConfig
	DB           DBConfig
	Redis        RedisConfig
	CORS         CORSConfig
	Log          LogConfig
	JWT          JWTConfig
	Calendar     CalendarConfig
	Verification VerificationConfig
	SMTP         SMTPConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// CalendarConfig carries the business rules for the booking calendar.
// Opening hours and closed weekdays are configuration, not code (the slot
// generator stays pure and testable).
type CalendarConfig struct {
	OpenTime           string   `envconfig:"CALENDAR_OPEN_TIME" default:"09:00"`
	CloseTime          string   `envconfig:"CALENDAR_CLOSE_TIME" default:"17:00"`
	ClosedWeekdays     []string `envconfig:"CALENDAR_CLOSED_WEEKDAYS" default:"Sunday"`
	DefaultGapMin      int      `envconfig:"CALENDAR_DEFAULT_GAP_MIN" default:"30"`
	DefaultDurationMin int      `envconfig:"CALENDAR_DEFAULT_DURATION_MIN" default:"30"`
}

type VerificationConfig struct {
	CodeLength   int           `envconfig:"VERIFICATION_CODE_LENGTH" default:"6"`
	TTL          time.Duration `envconfig:"VERIFICATION_CODE_TTL" default:"10m"`
	ResendWindow time.Duration `envconfig:"VERIFICATION_RESEND_WINDOW" default:"60s"`
	// Fixed-window rate limit for the send-code endpoint, per client IP.
	SendLimit  int           `envconfig:"VERIFICATION_SEND_LIMIT" default:"5"`
	SendWindow time.Duration `envconfig:"VERIFICATION_SEND_WINDOW" default:"1m"`
}

type SMTPConfig struct {
	Enabled bool   `envconfig:"SMTP_ENABLED" default:"false"`
	Host    string `envconfig:"SMTP_HOST" default:"localhost"`
	Port    string `envconfig:"SMTP_PORT" default:"1025"`
	From    string `envconfig:"SMTP_FROM" default:"no-reply@salon-booking.local"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
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
		},
		Redis: RedisConfig{
			Addr: "localhost:16379",
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		},
		Log: LogConfig{
			Level: "error", // Error level only for tests
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "24h",
		},
		Calendar: CalendarConfig{
			OpenTime:           "09:00",
			CloseTime:          "17:00",
			ClosedWeekdays:     []string{"Sunday"},
			DefaultGapMin:      30,
			DefaultDurationMin: 30,
		},
		Verification: VerificationConfig{
			CodeLength:   6,
			TTL:          10 * time.Minute,
			ResendWindow: time.Second,
			SendLimit:    100,
			SendWindow:   time.Minute,
		},
	}
}
