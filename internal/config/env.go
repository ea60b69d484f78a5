package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Booking lock backends.
const (
	LockNone   = "none"
	LockMemory = "memory"
	LockRedis  = "redis"
)

type Env struct {
	AppAddr string `yaml:"app_addr" validate:"required"`
	GinMode string `yaml:"gin_mode" validate:"omitempty,oneof=debug release test"`

	DBDSN string `yaml:"db_dsn" validate:"required"`

	JWTSecret string        `yaml:"jwt_secret" validate:"required,min=16"`
	TokenTTL  time.Duration `yaml:"token_ttl" validate:"gt=0"`

	BookingLock   string `yaml:"booking_lock" validate:"oneof=none memory redis"`
	RedisAddr     string `yaml:"redis_addr" validate:"required_if=BookingLock redis"`
	RedisPassword string `yaml:"redis_password"`
	RedisDB       int    `yaml:"redis_db" validate:"gte=0"`

	// AdminEditTx runs the admin edit batch inside one transaction.
	AdminEditTx bool `yaml:"admin_edit_tx"`

	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
	OTLPEndpoint       string   `yaml:"otlp_endpoint"`
}

// Defaults returns the configuration used when nothing is set.
func Defaults() Env {
	return Env{
		AppAddr:     ":8080",
		DBDSN:       "root:@tcp(127.0.0.1:3306)/bus_booking?parseTime=true&loc=Local&charset=utf8mb4&timeout=5s&readTimeout=30s&writeTimeout=30s",
		JWTSecret:   "super-secret-key-change-me",
		TokenTTL:    24 * time.Hour,
		BookingLock: LockMemory,
		CORSAllowedOrigins: []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
			"http://localhost:5173",
			"http://127.0.0.1:5173",
		},
	}
}

// LoadEnv returns Defaults overridden by environment variables.
func LoadEnv() Env {
	env := Defaults()
	env.applyOSEnv()
	return env
}

func (e *Env) applyOSEnv() {
	setString(&e.AppAddr, "APP_ADDR")
	setString(&e.GinMode, "GIN_MODE")
	setString(&e.DBDSN, "DB_DSN")
	setString(&e.JWTSecret, "JWT_SECRET")
	setString(&e.BookingLock, "BOOKING_LOCK")
	setString(&e.RedisAddr, "REDIS_ADDR")
	setString(&e.RedisPassword, "REDIS_PASSWORD")
	setString(&e.OTLPEndpoint, "OTEL_EXPORTER_OTLP_ENDPOINT")

	if v := strings.TrimSpace(os.Getenv("TOKEN_TTL")); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			e.TokenTTL = d
		}
	}
	if v := strings.TrimSpace(os.Getenv("REDIS_DB")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			e.RedisDB = n
		}
	}
	if v := strings.TrimSpace(os.Getenv("ADMIN_EDIT_TX")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			e.AdminEditTx = b
		}
	}
	if v := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); v != "" {
		origins := []string{}
		for _, o := range strings.Split(v, ",") {
			o = strings.TrimSpace(o)
			if o != "" {
				origins = append(origins, o)
			}
		}
		e.CORSAllowedOrigins = origins
	}
}

func setString(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}
