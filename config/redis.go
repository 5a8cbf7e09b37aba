package config

// Redis Redis配置信息
type Redis struct {
	Address  string `json:"address" yaml:"address" env:"REDIS_ADDRESS"`
	Port     int    `json:"port" yaml:"port" env:"REDIS_PORT"`
	Username string `json:"username" yaml:"username" env:"REDIS_USERNAME"`
	Password string `json:"password" yaml:"password" env:"REDIS_PASSWORD"`
	Database int    `json:"database" yaml:"database" env:"REDIS_DATABASE"`
}
