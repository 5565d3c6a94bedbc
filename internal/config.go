package internal

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Config carries every deployment tuning knob of the gateway. Worker pool
// sizing, queue bounds and TTLs are deliberately configuration, not contract.
type Config struct {
	Host     string `env:"HOST,default=0.0.0.0"`
	Port     int    `env:"PORT,default=8090" validate:"min=1,max=65535"`
	LogLevel string `env:"LOG_LEVEL,default=INFO"`

	BadgerFilepath string `env:"BADGER_FILEPATH,required=true" validate:"required"`

	LoginCodeTTL       time.Duration `env:"LOGIN_CODE_TTL,default=1h" validate:"min=1m"`
	LoginSweepInterval time.Duration `env:"LOGIN_SWEEP_INTERVAL,default=1m" validate:"min=1s"`
	LoginURLBase       string        `env:"LOGIN_URL_BASE,required=true" validate:"required,url"`

	DispatcherWorkers   int `env:"DISPATCHER_WORKERS,default=8" validate:"min=1"`
	DispatcherQueueSize int `env:"DISPATCHER_QUEUE_SIZE,default=256" validate:"min=1"`
	SendBufferSize      int `env:"SEND_BUFFER_SIZE,default=256" validate:"min=1"`
	PresenceQueueSize   int `env:"PRESENCE_QUEUE_SIZE,default=1024" validate:"min=1"`

	AuthSecret         string        `env:"AUTH_SECRET,required=true" validate:"required,min=32"`
	AuthTokenDuration  time.Duration `env:"AUTH_TOKEN_DURATION,default=24h" validate:"min=1m"`
	AuthRenewThreshold time.Duration `env:"AUTH_RENEW_THRESHOLD,default=1h" validate:"min=1m"`

	RestartInterval time.Duration `env:"RESTART_INTERVAL,default=200ms" validate:"min=10ms"`
	MetricInterval  time.Duration `env:"METRIC_INTERVAL,default=30s" validate:"min=1s"`
}

// Validate checks structural constraints after env unmarshalling.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.AuthRenewThreshold >= c.AuthTokenDuration {
		return fmt.Errorf("AUTH_RENEW_THRESHOLD must be below AUTH_TOKEN_DURATION")
	}
	return nil
}

// Addr renders the listen address of the websocket server.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
