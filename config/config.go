package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-pg/pg/v10"
)

const (
	defaultPort            = 3000
	defaultPublishInterval = time.Minute
)

type Config struct {
	Database  pg.Options
	App       App
	Publisher Publisher
	CORS      CORS
}

type App struct {
	Host string
	Port int
	// LogQueries logs every SQL statement at debug level.
	LogQueries bool
	// Migrate applies the embedded migrations on start.
	Migrate bool
}

type Publisher struct {
	// Interval of the in-process publisher, zero disables it.
	Interval time.Duration
	// Token is the bearer token of the publish function, empty allows
	// anonymous calls.
	Token string
}

type CORS struct {
	AllowOrigins []string
}

// Load reads the TOML file at path over the defaults.
func Load(path string) (Config, error) {
	cfg := Config{
		App:       App{Port: defaultPort},
		Publisher: Publisher{Interval: defaultPublishInterval},
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config %s: %w", path, err)
	}

	return cfg, nil
}

// SetDatabaseURL replaces the connection settings with the ones in url,
// keeping the pool settings of the file.
func (c *Config) SetDatabaseURL(url string) error {
	opt, err := pg.ParseURL(url)
	if err != nil {
		return fmt.Errorf("failed to parse database URL: %w", err)
	}

	opt.PoolSize = c.Database.PoolSize
	opt.MaxRetries = c.Database.MaxRetries
	opt.MaxConnAge = c.Database.MaxConnAge
	c.Database = *opt

	return nil
}
