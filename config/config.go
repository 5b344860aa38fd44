// Package config loads the quoting core's configuration from environment
// variables, with an optional .env file for local development.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/caldertours/tripquote/quote"
)

// Config holds the tunable values the embedding application hands to the
// quote and draft packages. Every field has a safe default; malformed values
// fall back to the default rather than failing, the same rule the pricing
// arithmetic applies to malformed numbers.
type Config struct {
	// DataDir is where draft snapshots are written. Defaults to "./data".
	DataDir string

	// Currency is the ISO code all quotes are denominated in. Defaults to "USD".
	Currency string

	// TaxRate and ServiceFeeRate apply to admin-issued quotes.
	// Defaults: 0.18 and 0.05.
	TaxRate        float64
	ServiceFeeRate float64

	// PlannerFeeRate is the service fee used by the visitor planner's rough
	// estimate. Defaults to 0.10 — intentionally not the same figure as
	// ServiceFeeRate.
	PlannerFeeRate float64

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present; real environment variables win
// over .env entries.
func Load() Config {
	_ = godotenv.Load() // absent .env is fine

	return Config{
		DataDir:        getEnv("DATA_DIR", "./data"),
		Currency:       getEnv("CURRENCY", "USD"),
		TaxRate:        getRate("TAX_RATE", 0.18),
		ServiceFeeRate: getRate("SERVICE_FEE_RATE", 0.05),
		PlannerFeeRate: getRate("PLANNER_FEE_RATE", 0.10),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
	}
}

// QuoteRates returns the rates for admin-issued official quotes.
func (c Config) QuoteRates() quote.Rates {
	return quote.Rates{Tax: c.TaxRate, ServiceFee: c.ServiceFeeRate, Currency: c.Currency}
}

// EstimateRates returns the rates for the visitor planner's estimate.
func (c Config) EstimateRates() quote.Rates {
	return quote.Rates{Tax: c.TaxRate, ServiceFee: c.PlannerFeeRate, Currency: c.Currency}
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getRate parses the environment variable named by key as a fractional rate.
// Unset, unparsable, or out-of-range values (outside [0, 1]) yield fallback.
func getRate(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	rate, err := strconv.ParseFloat(v, 64)
	if err != nil || rate < 0 || rate > 1 {
		return fallback
	}
	return rate
}
