package main

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
)

func TestParseConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := parseConfig(env.Options{Environment: map[string]string{"AUTH_TOKEN_SECRET": "s3cret"}})
	if err != nil {
		t.Fatalf("parseConfig() error = %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Fatalf("Addr = %q, want :8080", cfg.Addr)
	}
	if cfg.Catalog.BaseURL != "http://localhost:5000" || cfg.Catalog.Timeout != 10*time.Second {
		t.Fatalf("Catalog = %+v", cfg.Catalog)
	}
	if cfg.RateLimiter.Enabled || cfg.RateLimiter.RequestsPerTimeFrame != 200 || cfg.RateLimiter.TimeFrame != 5*time.Second {
		t.Fatalf("RateLimiter = %+v", cfg.RateLimiter)
	}
	if cfg.Site.Name != "Hostel Meals" {
		t.Fatalf("Site.Name = %q", cfg.Site.Name)
	}
}

func TestParseConfigFromEnvironment(t *testing.T) {
	t.Parallel()

	cfg, err := parseConfig(env.Options{Environment: map[string]string{
		"ADDR":                       ":9000",
		"CATALOG_BASE_URL":           "https://api.hostel.test",
		"CATALOG_TIMEOUT":            "3s",
		"AUTH_TOKEN_SECRET":          "s3cret",
		"AUTH_BASIC_USER":            "ops",
		"RATELIMITER_ENABLED":        "true",
		"RATELIMITER_REQUESTS_COUNT": "20",
		"RATELIMITER_TIME_FRAME":     "1m",
		"SITE_ACCENT_COLOR":          "#0ea5e9",
	}})
	if err != nil {
		t.Fatalf("parseConfig() error = %v", err)
	}
	if cfg.Addr != ":9000" || cfg.Catalog.BaseURL != "https://api.hostel.test" || cfg.Catalog.Timeout != 3*time.Second {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.Auth.Token.Secret != "s3cret" || cfg.Auth.Basic.User != "ops" {
		t.Fatalf("Auth = %+v", cfg.Auth)
	}
	if !cfg.RateLimiter.Enabled || cfg.RateLimiter.RequestsPerTimeFrame != 20 || cfg.RateLimiter.TimeFrame != time.Minute {
		t.Fatalf("RateLimiter = %+v", cfg.RateLimiter)
	}
	if cfg.Site.AccentColor != "#0ea5e9" {
		t.Fatalf("Site.AccentColor = %q", cfg.Site.AccentColor)
	}
}

func TestParseConfigRequiresTokenSecret(t *testing.T) {
	t.Parallel()

	for _, envName := range []string{"production", "development", ""} {
		vars := map[string]string{}
		if envName != "" {
			vars["ENV"] = envName
		}
		if _, err := parseConfig(env.Options{Environment: vars}); err == nil {
			t.Fatalf("parseConfig(ENV=%q) error = nil, want missing secret error", envName)
		}
	}
}
