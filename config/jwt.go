package config

import "time"

type Jwt struct {
	Secret    string        `json:"secret" yaml:"secret" env:"JWT_SECRET"`
	AccessTTL time.Duration `json:"access_ttl" yaml:"access_ttl"`
}

func (j *Jwt) fill() {
	if j.AccessTTL <= 0 {
		j.AccessTTL = 24 * time.Hour
	}
}
