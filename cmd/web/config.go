package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"nubhostel/internal/ratelimiter"
)

type config struct {
	Addr        string `env:"ADDR" envDefault:":8080"`
	Env         string `env:"ENV" envDefault:"development"`
	APIURL      string `env:"EXTERNAL_URL" envDefault:"localhost:8080"`
	FrontendURL string `env:"FRONTEND_URL"`

	Catalog     catalogConfig
	Auth        authConfig         `envPrefix:"AUTH_"`
	RateLimiter ratelimiter.Config `envPrefix:"RATELIMITER_"`
	Media       mediaConfig
	Site        siteConfig `envPrefix:"SITE_"`
}

type catalogConfig struct {
	BaseURL string        `env:"CATALOG_BASE_URL" envDefault:"http://localhost:5000"`
	Timeout time.Duration `env:"CATALOG_TIMEOUT" envDefault:"10s"`
}

type authConfig struct {
	Basic basicConfig `envPrefix:"BASIC_"`
	Token tokenConfig `envPrefix:"TOKEN_"`
}

type basicConfig struct {
	User string `env:"USER"`
	Pass string `env:"PASS"`
}

type tokenConfig struct {
	Secret string        `env:"SECRET"`
	Iss    string        `env:"ISS" envDefault:"nubhostel"`
	Aud    string        `env:"AUD" envDefault:"nubhostel"`
	Exp    time.Duration `env:"EXP" envDefault:"72h"`
}

type mediaConfig struct {
	CloudinaryURL string `env:"CLOUDINARY_URL"`
}

// siteConfig is the visual variation of the front end. It is served as is by
// GET /v1/site.
type siteConfig struct {
	Name        string `env:"NAME" envDefault:"Hostel Meals" json:"name"`
	Tagline     string `env:"TAGLINE" envDefault:"Fresh, affordable meals for every resident." json:"tagline"`
	AccentColor string `env:"ACCENT_COLOR" envDefault:"#ec4899" json:"accent_color"`
	LogoURL     string `env:"LOGO_URL" json:"logo_url,omitempty"`
}

func loadConfig() (config, error) {
	return parseConfig(env.Options{})
}

func parseConfig(opts env.Options) (config, error) {
	var cfg config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return config{}, err
	}
	return cfg, nil
}

func (c config) validate() error {
	if c.Auth.Token.Secret == "" {
		return errors.New("AUTH_TOKEN_SECRET is required")
	}
	if c.RateLimiter.Enabled && c.RateLimiter.RequestsPerTimeFrame <= 0 {
		return errors.New("RATELIMITER_REQUESTS_COUNT must be positive when the limiter is enabled")
	}
	return nil
}
