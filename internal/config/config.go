package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// APIVersion is the WooCommerce REST API namespace the client talks to.
const APIVersion = "wc/v3"

type Config struct {
	SiteURL         string
	ConsumerKey     string
	ConsumerSecret  string
	ProductsPerPage int
	RequestTimeout  time.Duration
	ProfileDBPath   string
	AppEnv          string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		SiteURL:         os.Getenv("WC_SITE_URL"),
		ConsumerKey:     os.Getenv("WC_CONSUMER_KEY"),
		ConsumerSecret:  os.Getenv("WC_CONSUMER_SECRET"),
		ProductsPerPage: 100,
		RequestTimeout:  30 * time.Second,
		ProfileDBPath:   os.Getenv("WC_PROFILE_DB"),
		AppEnv:          os.Getenv("APP_ENV"),
	}

	if v := os.Getenv("WC_PRODUCTS_PER_PAGE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.ProductsPerPage = n
		}
	}
	if v := os.Getenv("WC_REQUEST_TIMEOUT_SEC"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.RequestTimeout = time.Duration(n) * time.Second
		}
	}
	if cfg.ProfileDBPath == "" {
		cfg.ProfileDBPath = "wcpm.db"
	}

	return cfg
}

// IsConfigured reports whether the REST client has everything it needs.
// The CSV engine works without any of this.
func (c *Config) IsConfigured() bool {
	return c.SiteURL != "" && c.ConsumerKey != "" && c.ConsumerSecret != ""
}
