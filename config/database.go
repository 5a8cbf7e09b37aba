package config

import "time"

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Database struct {
	Driver          string        `json:"driver" yaml:"driver" env:"DATABASE_DRIVER"`
	Dsn             string        `json:"dsn" yaml:"dsn" env:"DATABASE_DSN"`
	MaxIdleConns    int           `json:"max_idle_conns" yaml:"max_idle_conns"`
	MaxOpenConns    int           `json:"max_open_conns" yaml:"max_open_conns"`
	ConnMaxLifetime time.Duration `json:"conn_max_lifetime" yaml:"conn_max_lifetime"`
	Debug           bool          `json:"debug" yaml:"debug"`
}

func (d *Database) fill() {
	if d.Driver == "" {
		d.Driver = DriverSQLite
	}
	if d.Dsn == "" && d.Driver == DriverSQLite {
		d.Dsn = "foodgram.db"
	}
}
