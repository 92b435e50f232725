package config

import (
	"strconv"
	"time"
)

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

type Idempotency struct {
	Header string        `envconfig:"HEADER" default:"Idempotency-Key"`
	TTL    time.Duration `envconfig:"TTL" default:"10m"`
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"json"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[ledger]"`
}

type Server struct {
	Scheme string `envconfig:"SCHEME" default:"http"`
	Host   string `envconfig:"HOST" default:"localhost"`
	Port   int    `envconfig:"PORT" default:"3000"`
}

// Ledger holds settings of the ledger core itself.
type Ledger struct {
	// Seed loads the embedded demo accounts at startup.
	Seed bool `envconfig:"SEED" default:"false"`
}

type App struct {
	Env         string       `envconfig:"APP_ENV" default:"development"`
	Server      *Server      `envconfig:"SERVER"`
	Log         *Log         `envconfig:"LOG"`
	RateLimit   *RateLimit   `envconfig:"RATE_LIMIT"`
	Idempotency *Idempotency `envconfig:"IDEMPOTENCY"`
	Ledger      *Ledger      `envconfig:"LEDGER"`
}

// Addr returns the host:port the HTTP server listens on.
func (s *Server) Addr() string {
	return s.Host + ":" + strconv.Itoa(s.Port)
}
