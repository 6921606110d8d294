package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pkg/errors"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort string `yaml:"http-port" env:"HTTP_PORT" env-default:"5000"`
	Search   Search `yaml:"search"`
	Redis    Redis  `yaml:"redis"`
	Bot      Bot    `yaml:"bot"`
}

type Search struct {
	Horizon int           `yaml:"horizon" env:"SEARCH_HORIZON" env-default:"6"`
	Timeout time.Duration `yaml:"timeout" env:"SEARCH_TIMEOUT" env-default:"30s"`
}

type Redis struct {
	Enabled bool   `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	Channel string `yaml:"channel" env:"REDIS_CHANNEL" env-default:"connect4:events"`
}

// Bot seats an in-process search player in the session when enabled.
type Bot struct {
	Enabled      bool          `yaml:"enabled" env:"BOT_ENABLED" env-default:"false"`
	PlayerID     string        `yaml:"player-id" env:"BOT_PLAYER_ID" env-default:"bot"`
	PollInterval time.Duration `yaml:"poll-interval" env:"BOT_POLL_INTERVAL" env-default:"500ms"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	if err := config.Validate(); err != nil {
		panic(err)
	}

	return config
}

func (that *Config) Validate() error {
	if that.Search.Horizon < 1 || that.Search.Horizon > 10 {
		return errors.WithMessagef(ErrInvalidConfig, "search.horizon must be within 1..10, got %d", that.Search.Horizon)
	}

	if that.Search.Timeout <= 0 {
		return errors.WithMessage(ErrInvalidConfig, "search.timeout must be positive")
	}

	if that.Bot.Enabled && that.Bot.PollInterval <= 0 {
		return errors.WithMessage(ErrInvalidConfig, "bot.poll-interval must be positive")
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
