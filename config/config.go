package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

// Config is the root application configuration.
type Config struct {
	App          App          `json:"app" yaml:"app"`
	Server       Server       `json:"server" yaml:"server"`
	Database     Database     `json:"database" yaml:"database"`
	Redis        Redis        `json:"redis" yaml:"redis"`
	Jwt          Jwt          `json:"jwt" yaml:"jwt"`
	Media        Media        `json:"media" yaml:"media"`
	ShortLink    ShortLink    `json:"short_link" yaml:"short_link"`
	ShoppingList ShoppingList `json:"shopping_list" yaml:"shopping_list"`
	Limits       Limits       `json:"limits" yaml:"limits"`
}

type Server struct {
	Http int `json:"http" yaml:"http" env:"SERVER_HTTP"`
}

// New loads the config file and panics on failure.
func New(filename string) *Config {
	conf, err := Load(filename)
	if err != nil {
		panic(err)
	}
	return conf
}

// Load decodes the YAML file, applies environment overrides and fills defaults.
func Load(filename string) (*Config, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", filename, err)
	}

	conf := Default()
	if err := yaml.Unmarshal(content, conf); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", filename, err)
	}
	if err := cleanenv.ReadEnv(conf); err != nil {
		return nil, fmt.Errorf("read env overrides: %w", err)
	}
	conf.fill()

	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

// Default returns a configuration that runs a local sqlite instance.
func Default() *Config {
	conf := &Config{Limits: DefaultLimits()}
	conf.fill()
	return conf
}

func (c *Config) fill() {
	if c.App.Env == "" {
		c.App.Env = "dev"
	}
	if c.Server.Http == 0 {
		c.Server.Http = 8080
	}
	c.Database.fill()
	c.Jwt.fill()
	c.Media.fill()
	c.ShortLink.fill()
	c.ShoppingList.fill()
	c.Limits = c.Limits.withDefaults()
}

// Validate checks the values that have no sensible fallback.
func (c *Config) Validate() error {
	if c.Jwt.Secret == "" {
		return fmt.Errorf("jwt.secret must not be empty")
	}
	switch c.Database.Driver {
	case DriverMySQL, DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.Database.Dsn == "" {
		return fmt.Errorf("database.dsn must not be empty")
	}
	return c.Limits.Validate()
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}

// RedisEnabled reports whether a redis section was configured.
func (c *Config) RedisEnabled() bool {
	return c.Redis.Address != ""
}
