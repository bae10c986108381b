package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/nikolayk812/pos-cart/internal/pos"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type Config struct {
	AppEnv   string
	LogLevel string

	// DatabaseURL selects Postgres for the catalog and order sink when set.
	DatabaseURL string

	POS pos.Config
}

func Load() (Config, error) {
	taxRate, err := decimal.NewFromString(getEnv("POS_TAX_RATE", "0.08"))
	if err != nil {
		return Config{}, fmt.Errorf("POS_TAX_RATE is not valid: %w", err)
	}

	cur, err := currency.ParseISO(getEnv("POS_CURRENCY", "USD"))
	if err != nil {
		return Config{}, fmt.Errorf("POS_CURRENCY is not valid: %w", err)
	}

	policy, err := pos.ParseClearPolicy(getEnv("POS_CLEAR_POLICY", string(pos.ClearOptimistic)))
	if err != nil {
		return Config{}, fmt.Errorf("POS_CLEAR_POLICY: %w", err)
	}

	strict, err := getEnvBool("POS_STRICT_LOOKUP", false)
	if err != nil {
		return Config{}, fmt.Errorf("POS_STRICT_LOOKUP is not valid: %w", err)
	}

	cfg := Config{
		AppEnv:      getEnv("APP_ENV", "dev"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		DatabaseURL: os.Getenv("POS_DATABASE_URL"),
		POS: pos.Config{
			Currency:     cur,
			TaxRate:      taxRate,
			ClearPolicy:  policy,
			StrictLookup: strict,
		},
	}

	if err := cfg.POS.Validate(); err != nil {
		return Config{}, fmt.Errorf("POS.Validate: %w", err)
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	return strconv.ParseBool(v)
}
