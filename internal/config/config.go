package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel        string        `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort        string        `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	ShutdownTimeout time.Duration `yaml:"shutdown-timeout" env:"SHUTDOWN_TIMEOUT" env-default:"5s"`
	WebSocket       WebSocket     `yaml:"websocket"`
	Game            Game          `yaml:"game"`
}

type WebSocket struct {
	ReadLimit      int64    `yaml:"read-limit" env:"WS_READ_LIMIT" env-default:"4096"`
	AllowedOrigins []string `yaml:"allowed-origins" env:"WS_ALLOWED_ORIGINS" env-separator:","`
}

type Game struct {
	// Descending - initial order of the move list, newest move first.
	Descending bool `yaml:"descending" env:"GAME_DESCENDING"`
}

// Load - reads the config file at path, environment variables take precedence.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

// LoadEnv - config from environment variables and defaults only.
func LoadEnv() (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to read environment: %w", err)
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Config) GetHTTPAddr() string {
	return ":" + that.HTTPPort
}
