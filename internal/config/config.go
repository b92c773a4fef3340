package config

import (
	"errors"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	FrontendGUI = "gui"
	FrontendTUI = "tui"
)

// minWindowSize keeps cells at least ten pixels wide.
const minWindowSize = 90

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile  string `yaml:"log-file" env:"LOG_FILE"`
	Frontend string `yaml:"frontend" env:"FRONTEND" env-default:"gui"`
	Window   Window `yaml:"window"`
	Assets   Assets `yaml:"assets"`
	Redis    Redis  `yaml:"redis"`
}

type Window struct {
	Size int `yaml:"size" env-default:"900"`
	TPS  int `yaml:"tps" env-default:"60"`
}

type Assets struct {
	Board   string `yaml:"board" env-default:"resources/board.png"`
	MarkerO string `yaml:"marker-o" env-default:"resources/o.png"`
	MarkerX string `yaml:"marker-x" env-default:"resources/x.png"`
}

type Redis struct {
	Enabled bool   `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) validate() error {
	if that.Frontend != FrontendGUI && that.Frontend != FrontendTUI {
		return fmt.Errorf("%w: unknown frontend %q", ErrInvalidConfig, that.Frontend)
	}

	if that.Window.Size < minWindowSize {
		return fmt.Errorf("%w: window size %d is below %d", ErrInvalidConfig, that.Window.Size, minWindowSize)
	}

	if that.Window.TPS <= 0 {
		return fmt.Errorf("%w: tps must be positive", ErrInvalidConfig)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
