// Package console is the client for the stall's service console, the small
// HTTP API that starts and stops the camera stream and the master console,
// and reports which ports the sub-services listen on.
package console

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the console client configuration. The defaults match a
// console running on the same machine.
type Config struct {
	URL          string        `env:"CONSOLE_URL" envDefault:"http://localhost:5000"`
	StreamPort   int           `env:"CAMERA_PORT" envDefault:"5001"`
	MasterPort   int           `env:"MASTER_PORT" envDefault:"5050"`
	PredictPort  int           `env:"PREDICT_PORT" envDefault:"5100"`
	PollInterval time.Duration `env:"CONSOLE_POLL_INTERVAL" envDefault:"5s"`
}

// ParseEnv loads the configuration from environment variables.
func ParseEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
