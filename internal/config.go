package internal

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Config is the gateway configuration, loaded from the environment.
// SessionVerbose and StorageVerbose are independent: the first controls
// per-session simulation logging, the second the registry lifecycle logs.
type Config struct {
	Host           string        `env:"HOST,default=localhost" validate:"required"`
	Port           int           `env:"PORT,default=50051" validate:"gt=0,lte=65535"`
	SessionTTL     time.Duration `env:"SESSION_TTL,default=4m" validate:"gt=0"`
	PurgeInterval  time.Duration `env:"PURGE_INTERVAL,default=1m" validate:"gt=0"`
	StatsInterval  time.Duration `env:"STATS_INTERVAL,default=30s" validate:"gt=0"`
	SessionVerbose int           `env:"SESSION_VERBOSE,default=1" validate:"gte=0,lte=2"`
	StorageVerbose int           `env:"STORAGE_VERBOSE,default=1" validate:"gte=0,lte=2"`
	LogLevel       string        `env:"LOG_LEVEL,default=INFO"`
	// DebugPort exposes the JSON stats endpoint; 0 disables it.
	DebugPort int `env:"DEBUG_PORT,default=0" validate:"gte=0,lte=65535"`
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
