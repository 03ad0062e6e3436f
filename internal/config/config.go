package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

var (
	ErrInvalidMatchPoint = errors.New("match point must be at least 1")
	ErrInvalidDuration   = errors.New("duration must not be negative")
	ErrInvalidTimeout    = errors.New("journal timeout must be positive")
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile  string  `yaml:"log-file" env:"LOG_FILE" env-default:"tictactoe.log"`
	Game     Game    `yaml:"game"`
	UI       UI      `yaml:"ui"`
	Journal  Journal `yaml:"journal"`
}

type Game struct {
	MatchPoint int `yaml:"match-point" env:"MATCH_POINT" env-default:"3"`
	// Seed 0 means seed from the clock.
	Seed int64 `yaml:"seed" env:"GAME_SEED" env-default:"0"`
}

type UI struct {
	ThinkDelay    time.Duration `yaml:"think-delay" env:"UI_THINK_DELAY" env-default:"300ms"`
	ClickDebounce time.Duration `yaml:"click-debounce" env:"UI_CLICK_DEBOUNCE" env-default:"200ms"`
	NoMouse       bool          `yaml:"no-mouse" env:"UI_NO_MOUSE" env-default:"false"`
	NoColor       bool          `yaml:"no-color" env:"UI_NO_COLOR" env-default:"false"`
}

type Journal struct {
	Enabled    bool          `yaml:"enabled" env:"JOURNAL_ENABLED" env-default:"false"`
	Redis      Redis         `yaml:"redis"`
	ListKey    string        `yaml:"list-key" env:"JOURNAL_LIST_KEY" env-default:"rounds"`
	Channel    string        `yaml:"channel" env:"JOURNAL_CHANNEL" env-default:"rounds:finished"`
	MaxEntries int64         `yaml:"max-entries" env:"JOURNAL_MAX_ENTRIES" env-default:"100"`
	TTL        time.Duration `yaml:"ttl" env:"JOURNAL_TTL" env-default:"24h"`
	Timeout    time.Duration `yaml:"timeout" env:"JOURNAL_TIMEOUT" env-default:"500ms"`
	QueueSize  int           `yaml:"queue-size" env:"JOURNAL_QUEUE_SIZE" env-default:"16"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// MustLoad - load all configurations from the yml file, or from the environment when the file is missing.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); err == nil {
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
	} else {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	if that.Game.MatchPoint < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidMatchPoint, that.Game.MatchPoint)
	}

	if that.UI.ThinkDelay < 0 || that.UI.ClickDebounce < 0 || that.Journal.TTL < 0 {
		return ErrInvalidDuration
	}

	if that.Journal.Enabled && that.Journal.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
