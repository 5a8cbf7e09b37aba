package config

type App struct {
	Env      string `json:"env" yaml:"env" env:"APP_ENV"`
	Debug    bool   `json:"debug" yaml:"debug" env:"APP_DEBUG"`
	LogLevel string `json:"log_level" yaml:"log_level" env:"LOG_LEVEL"`
}
