package config

import "time"

const Production = "production"

type AppConfig struct {
	Name        string `env:"APP_NAME" envDefault:"assessment-board"`
	Env         string `env:"APP_ENV" envDefault:"development"`
	Port        string `env:"APP_PORT" envDefault:":8000"`
	RoutePrefix string `env:"ROUTE_PREFIX"`
	// Set by the Vercel runtime; requests arrive behind an /api rewrite.
	Vercel string `env:"VERCEL"`
}

// Prefix is the path every API route is mounted under.
func (a AppConfig) Prefix() string {
	if a.RoutePrefix != "" {
		return a.RoutePrefix
	}
	if a.Vercel != "" {
		return "/api"
	}
	return ""
}

func (a AppConfig) IsProduction() bool {
	return a.Env == Production
}

type CORSConfig struct {
	AllowOrigins     string `env:"CORS_ALLOW_ORIGINS" envDefault:"*"`
	AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"`
}

type RateLimitConfig struct {
	Max    int           `env:"RATE_LIMIT_MAX" envDefault:"50"`
	Window time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1m"`
}

type LogConfig struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}
