package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"oms/internal/core/domain/model/order"
	"oms/internal/jobs"
	"oms/internal/pkg/errs"

	"github.com/lib/pq"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

type Config struct {
	HTTPPort          string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSslMode         string
	DatabaseURL       string
	StoreDriver       string
	JWTSecretKey      string
	JWTIssuer         string
	LogLevel          string
	StrictTransitions bool
	MetricsSchedule   string
	OTLPEndpoint      string
	ShutdownTimeout   time.Duration
}

// LoadConfig reads the configuration through getenv, applying defaults for
// absent variables. Every malformed variable is reported.
func LoadConfig(getenv func(string) string) (Config, error) {
	env := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	config := Config{
		HTTPPort:        env("HTTP_PORT", "8080"),
		DBHost:          env("DB_HOST", "localhost"),
		DBPort:          env("DB_PORT", "5432"),
		DBUser:          env("DB_USER", "postgres"),
		DBPassword:      getenv("DB_PASSWORD"),
		DBName:          env("DB_NAME", "oms"),
		DBSslMode:       env("DB_SSLMODE", "disable"),
		DatabaseURL:     env("DATABASE_URL", ""),
		StoreDriver:     strings.ToLower(env("STORE_DRIVER", StoreDriverPostgres)),
		JWTSecretKey:    getenv("JWT_SECRET_KEY"),
		JWTIssuer:       env("JWT_ISSUER", ""),
		LogLevel:        env("LOG_LEVEL", "info"),
		MetricsSchedule: env("METRICS_INTERVAL", jobs.DefaultGaugeSchedule),
		OTLPEndpoint:    env("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
	}

	var all []error

	timeout, err := positiveInt(env("SHUTDOWN_TIMEOUT_SECONDS", "10"))
	if err != nil {
		all = append(all, errs.NewValueIsInvalidErrorWithCause("SHUTDOWN_TIMEOUT_SECONDS", err))
	}
	config.ShutdownTimeout = time.Duration(timeout) * time.Second

	strict, err := strconv.ParseBool(env("STRICT_TRANSITIONS", "false"))
	if err != nil {
		all = append(all, errs.NewValueIsInvalidErrorWithCause("STRICT_TRANSITIONS", err))
	}
	config.StrictTransitions = strict

	if err = errors.Join(all...); err != nil {
		return Config{}, err
	}
	if err = config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

// Validate checks the settings that have no usable default.
func (c Config) Validate() error {
	var all []error
	if c.JWTSecretKey == "" {
		all = append(all, errs.NewValueIsRequiredError("JWT_SECRET_KEY"))
	}
	if c.StoreDriver != StoreDriverPostgres && c.StoreDriver != StoreDriverMemory {
		all = append(all, errs.NewValueIsInvalidErrorWithCause(
			"STORE_DRIVER",
			fmt.Errorf("%q is not one of %s, %s", c.StoreDriver, StoreDriverPostgres, StoreDriverMemory),
		))
	}
	return errors.Join(all...)
}

// DSN returns the PostgreSQL connection string. DATABASE_URL wins over the
// individual DB_* variables.
func (c Config) DSN() (string, error) {
	if c.DatabaseURL != "" {
		dsn, err := pq.ParseURL(c.DatabaseURL)
		if err != nil {
			return "", errs.NewValueIsInvalidErrorWithCause("DATABASE_URL", err)
		}
		return dsn, nil
	}

	parts := []string{
		kv("host", c.DBHost),
		kv("port", c.DBPort),
		kv("user", c.DBUser),
		kv("dbname", c.DBName),
		kv("sslmode", c.DBSslMode),
	}
	if c.DBPassword != "" {
		parts = append(parts, kv("password", c.DBPassword))
	}
	return strings.Join(parts, " "), nil
}

// TransitionPolicy returns the status transition rules selected by
// STRICT_TRANSITIONS.
func (c Config) TransitionPolicy() order.TransitionPolicy {
	if c.StrictTransitions {
		return order.StrictTransitions{}
	}
	return order.PermissiveTransitions{}
}

func (c Config) Addr() string {
	return fmt.Sprintf("0.0.0.0:%s", c.HTTPPort)
}

func positiveInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("%d is not greater than 0", n)
	}
	return n, nil
}

// kv renders one key=value pair of a libpq connection string, quoting the
// value when needed.
func kv(key, value string) string {
	if value != "" && !strings.ContainsAny(value, ` '\`) {
		return key + "=" + value
	}
	escaped := strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(value)
	return key + "='" + escaped + "'"
}
