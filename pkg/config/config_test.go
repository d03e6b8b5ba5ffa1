package config

import "testing"

func TestLoad(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("SHOPIFY_WEBHOOK_SECRET", "shhh")
	t.Setenv("WOOCOMMERCE_BASE_URL", "https://shop.example.com/wp-json/wc/v3")
	t.Setenv("WOOCOMMERCE_CONSUMER_KEY", "ck_test")
	t.Setenv("WOOCOMMERCE_CONSUMER_SECRET", "cs_test")

	cfg := Load()
	if cfg.HTTPAddr != ":9999" {
		t.Fatalf("expected :9999, got %q", cfg.HTTPAddr)
	}
	if cfg.Shopify.WebhookSecret != "shhh" {
		t.Fatalf("webhook secret not loaded")
	}
	if cfg.Woo.BaseURL != "https://shop.example.com/wp-json/wc/v3" {
		t.Fatalf("base url not loaded: %q", cfg.Woo.BaseURL)
	}
	if missing := cfg.MissingKeys(); len(missing) != 0 {
		t.Fatalf("expected no missing keys, got %v", missing)
	}
}

func TestLoad_PortFallback(t *testing.T) {
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("PORT", "3000")

	cfg := Load()
	if cfg.HTTPAddr != ":3000" {
		t.Fatalf("expected :3000, got %q", cfg.HTTPAddr)
	}
}

func TestMissingKeys(t *testing.T) {
	var cfg Config
	cfg.Woo.BaseURL = "https://shop.example.com/wp-json/wc/v3"

	missing := cfg.MissingKeys()
	want := map[string]bool{
		"SHOPIFY_WEBHOOK_SECRET":      true,
		"WOOCOMMERCE_CONSUMER_KEY":    true,
		"WOOCOMMERCE_CONSUMER_SECRET": true,
	}
	if len(missing) != len(want) {
		t.Fatalf("expected %d missing keys, got %v", len(want), missing)
	}
	for _, k := range missing {
		if !want[k] {
			t.Fatalf("unexpected missing key %q", k)
		}
	}
}
