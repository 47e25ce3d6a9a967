package ratelimiter

import "time"

// Config is read from RATELIMITER_* variables.
type Config struct {
	RequestsPerTimeFrame int           `env:"REQUESTS_COUNT" envDefault:"200"`
	TimeFrame            time.Duration `env:"TIME_FRAME" envDefault:"5s"`
	Enabled              bool          `env:"ENABLED" envDefault:"false"`
}

type Limiter interface {
	Allow(key string) (bool, time.Duration)
}
