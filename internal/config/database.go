package config

import (
	"fmt"
	"strings"
)

type DBConfig struct {
	// URL takes precedence over the individual connection fields.
	URL      string `env:"DATABASE_URL"`
	Host     string `env:"DB_HOST"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_NAME"`
	SSLMode  string `env:"DB_SSLMODE" envDefault:"require"`
}

// DSN builds the postgres connection string. SSLMode is only applied when the
// URL does not already carry an sslmode.
func (d DBConfig) DSN() string {
	if d.URL == "" {
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode)
	}
	if strings.Contains(strings.ToLower(d.URL), "sslmode=") {
		return d.URL
	}
	if !strings.Contains(d.URL, "://") {
		return d.URL + " sslmode=" + d.SSLMode
	}
	sep := "?"
	if strings.Contains(d.URL, "?") {
		sep = "&"
	}
	return d.URL + sep + "sslmode=" + d.SSLMode
}
