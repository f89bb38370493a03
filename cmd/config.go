package cmd

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"canteen/internal/adapters/out/postgres"
	"canteen/internal/core/application/payment"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/services"
	"canteen/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	HTTPPort string

	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSslMode         string
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration

	Pricing services.PricingPolicy
	Payment payment.Config

	SessionTTL        time.Duration
	SweepSchedule     string
	LowStockThreshold int
	LowStockSchedule  string

	KafkaBrokers          []string
	KafkaOrderEventsTopic string

	OTLPEndpoint   string
	ServiceName    string
	ServiceVersion string
}

// LoadConfig reads .env files (when present) into the environment and
// collects the settings. Unset variables take their defaults; malformed ones
// are reported together.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}

	r := envReader{}
	defaults := services.DefaultPricingPolicy()
	pay := payment.DefaultConfig()
	pool := postgres.DefaultPoolConfig()

	cfg := Config{
		HTTPPort: r.str("HTTP_PORT", "8080"),

		DBHost:            r.str("DB_HOST", "localhost"),
		DBPort:            r.str("DB_PORT", "5432"),
		DBUser:            r.str("DB_USER", "canteen"),
		DBPassword:        r.str("DB_PASSWORD", ""),
		DBName:            r.str("DB_NAME", "canteen"),
		DBSslMode:         r.str("DB_SSLMODE", "disable"),
		DBMaxOpenConns:    r.integer("DB_MAX_OPEN_CONNS", pool.MaxOpenConns),
		DBMaxIdleConns:    r.integer("DB_MAX_IDLE_CONNS", pool.MaxIdleConns),
		DBConnMaxLifetime: r.duration("DB_CONN_MAX_LIFETIME", pool.ConnMaxLifetime),

		Pricing: services.PricingPolicy{
			DiscountThreshold: r.money("PRICING_DISCOUNT_THRESHOLD", defaults.DiscountThreshold),
			DiscountRate:      r.decimal("PRICING_DISCOUNT_RATE", defaults.DiscountRate),
			TaxRate:           r.decimal("PRICING_TAX_RATE", defaults.TaxRate),
			ParcelFee:         r.money("PRICING_PARCEL_FEE", defaults.ParcelFee),
		},
		Payment: payment.Config{
			PayeeVPA:  r.str("PAYEE_VPA", pay.PayeeVPA),
			PayeeName: r.str("PAYEE_NAME", pay.PayeeName),
			Currency:  r.str("PAYMENT_CURRENCY", pay.Currency),
		},

		SessionTTL:        r.duration("SESSION_TTL", 30*time.Minute),
		SweepSchedule:     r.str("SWEEP_SCHEDULE", "0 */5 * * * *"),
		LowStockThreshold: r.integer("LOW_STOCK_THRESHOLD", 5),
		LowStockSchedule:  r.str("LOW_STOCK_SCHEDULE", "0 */15 * * * *"),

		KafkaBrokers:          r.list("KAFKA_BROKERS"),
		KafkaOrderEventsTopic: r.str("KAFKA_ORDER_EVENTS_TOPIC", "canteen.order-events"),

		OTLPEndpoint:   r.str("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		ServiceName:    r.str("OTEL_SERVICE_NAME", "canteen"),
		ServiceVersion: r.str("SERVICE_VERSION", "dev"),
	}

	if err := errors.Join(append(r.errs, cfg.Pricing.Validate(), cfg.Payment.Validate())...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DSN is the key/value connection string used by gorm.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// DatabaseURL is the postgres:// form used by migrations.
func (c Config) DatabaseURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {c.DBSslMode}}.Encode(),
	}
	return u.String()
}

func (c Config) Pool() postgres.PoolConfig {
	return postgres.PoolConfig{
		MaxOpenConns:    c.DBMaxOpenConns,
		MaxIdleConns:    c.DBMaxIdleConns,
		ConnMaxLifetime: c.DBConnMaxLifetime,
	}
}

func (c Config) Jobs() jobs.Config {
	return jobs.Config{
		SessionTTL:        c.SessionTTL,
		SweepSchedule:     c.SweepSchedule,
		LowStockThreshold: c.LowStockThreshold,
		LowStockSchedule:  c.LowStockSchedule,
	}
}

// envReader reads typed variables and collects parse failures.
type envReader struct {
	errs []error
}

func (r *envReader) str(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return def
}

func (r *envReader) list(key string) []string {
	var out []string
	for _, part := range strings.Split(r.str(key, ""), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (r *envReader) integer(key string, def int) int {
	raw := r.str(key, "")
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: %q is not an integer", key, raw))
		return def
	}
	return v
}

func (r *envReader) duration(key string, def time.Duration) time.Duration {
	raw := r.str(key, "")
	if raw == "" {
		return def
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: %q is not a duration", key, raw))
		return def
	}
	return v
}

func (r *envReader) decimal(key string, def decimal.Decimal) decimal.Decimal {
	raw := r.str(key, "")
	if raw == "" {
		return def
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: %q is not a decimal", key, raw))
		return def
	}
	return v
}

func (r *envReader) money(key string, def kernel.Money) kernel.Money {
	raw := r.str(key, "")
	if raw == "" {
		return def
	}
	v, err := kernel.ParseMoney(raw)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return v
}
