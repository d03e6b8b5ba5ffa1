package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv   string
	HTTPAddr string

	Shopify ShopifyConfig
	Woo     WooConfig
}

type ShopifyConfig struct {
	// WebhookSecret is the shared secret Shopify signs webhook bodies with.
	WebhookSecret string
}

type WooConfig struct {
	// BaseURL is the WooCommerce REST API root, e.g.
	// https://shop.example.com/wp-json/wc/v3
	BaseURL        string
	ConsumerKey    string
	ConsumerSecret string
}

func Load() Config {
	// Convenience for local dev: load variables from .env if present.
	// In production, rely on real environment variables.
	_ = godotenv.Load()

	// Cloud Run sets PORT. Prefer it when HTTP_ADDR isn't explicitly set.
	httpAddr := os.Getenv("HTTP_ADDR")
	if httpAddr == "" {
		if port := os.Getenv("PORT"); port != "" {
			httpAddr = ":" + port
		} else {
			httpAddr = ":8080"
		}
	}

	return Config{
		AppEnv:   env("APP_ENV", "dev"),
		HTTPAddr: httpAddr,
		Shopify: ShopifyConfig{
			WebhookSecret: os.Getenv("SHOPIFY_WEBHOOK_SECRET"),
		},
		Woo: WooConfig{
			BaseURL:        os.Getenv("WOOCOMMERCE_BASE_URL"),
			ConsumerKey:    os.Getenv("WOOCOMMERCE_CONSUMER_KEY"),
			ConsumerSecret: os.Getenv("WOOCOMMERCE_CONSUMER_SECRET"),
		},
	}
}

// MissingKeys lists required variables that are unset. Missing config is
// surfaced as startup warnings only; it never prevents the process from starting.
func (c Config) MissingKeys() []string {
	var missing []string
	if c.Shopify.WebhookSecret == "" {
		missing = append(missing, "SHOPIFY_WEBHOOK_SECRET")
	}
	if c.Woo.BaseURL == "" {
		missing = append(missing, "WOOCOMMERCE_BASE_URL")
	}
	if c.Woo.ConsumerKey == "" {
		missing = append(missing, "WOOCOMMERCE_CONSUMER_KEY")
	}
	if c.Woo.ConsumerSecret == "" {
		missing = append(missing, "WOOCOMMERCE_CONSUMER_SECRET")
	}
	return missing
}

func env(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}
