package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

type Config struct {
	ServiceName string

	ServerPort int
	BaseURL    string

	DatabaseURL string

	JWTSecret []byte

	ESURL      string
	ESUser     string
	ESPassword string
	ESIndex    string

	KafkaBrokers []string

	Fees FeeConfig
}

// FeeConfig holds the checkout fee rules. Both historical behaviors are
// reproducible: a flat shipping fee plus a packing fee that is either
// conditional on the subtotal or always charged.
type FeeConfig struct {
	ShippingFee         decimal.Decimal
	PackingFeeBase      decimal.Decimal
	PackingFeeThreshold decimal.Decimal
	PackingAlways       bool
}

func Load() Config {
	return Config{
		ServiceName: EnvDefault("SERVICE_NAME", "crackers-shop"),

		ServerPort: EnvIntDefault("SERVER_PORT", 8080),
		BaseURL:    EnvDefault("BASE_URL", "http://localhost:8080"),

		DatabaseURL: os.Getenv("DATABASE_URL"),

		JWTSecret: []byte(os.Getenv("JWT_SECRET")),

		ESURL:      os.Getenv("ES_URL"),
		ESUser:     os.Getenv("ES_USER"),
		ESPassword: os.Getenv("ES_PASSWORD"),
		ESIndex:    EnvDefault("ES_INDEX", "products"),

		KafkaBrokers: CSV(os.Getenv("KAFKA_BROKERS")),

		Fees: FeeConfig{
			ShippingFee:         EnvDecimalDefault("SHIPPING_FEE", "100"),
			PackingFeeBase:      EnvDecimalDefault("PACKING_FEE_BASE", "50"),
			PackingFeeThreshold: EnvDecimalDefault("PACKING_FEE_THRESHOLD", "5000"),
			PackingAlways:       EnvBoolDefault("PACKING_FEE_ALWAYS", false),
		},
	}
}

func CSV(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func EnvDefault(key, def string) string {
	if os.Getenv(key) != "" {
		return os.Getenv(key)
	}
	return def
}

func EnvIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func EnvBoolDefault(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func EnvDecimalDefault(key, def string) decimal.Decimal {
	v := os.Getenv(key)
	if v == "" {
		v = def
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		d, _ = decimal.NewFromString(def)
	}
	return d
}
