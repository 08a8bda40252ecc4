package config

import (
	"context"
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// App holds core runtime configuration. It is loaded once at startup and
// passed explicitly; nothing reads the environment after that.
type App struct {
	Name                    string        `env:"APP_NAME" envDefault:"trivia-api"`
	Env                     string        `env:"APP_ENV" envDefault:"development"`
	HTTPAddr                string        `env:"HTTP_ADDR" envDefault:"0.0.0.0:8080"`
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_SECONDS" envDefault:"20s"`

	Store    Store
	Postgres Postgres
	CORS     CORS
}

// Store selects the persistence backend.
type Store struct {
	Driver     string `env:"STORE_DRIVER" envDefault:"postgres"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"trivia.db"`
}

// Postgres captures connection info for the SQL database. Only consulted
// when STORE_DRIVER=postgres.
type Postgres struct {
	Host     string `env:"PG_HOST" envDefault:"localhost"`
	Port     int    `env:"PG_PORT" envDefault:"5432"`
	User     string `env:"PG_USER" envDefault:"postgres"`
	Password string `env:"PG_PASSWORD" envDefault:""`
	Database string `env:"PG_DATABASE" envDefault:"trivia"`
	SSLMode  string `env:"PG_SSL_MODE" envDefault:"disable"`
}

// CORS holds Cross-Origin Resource Sharing configuration. The defaults
// admit any origin with the headers and methods the trivia frontend uses.
type CORS struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	AllowedMethods []string `env:"CORS_ALLOWED_METHODS" envSeparator:"," envDefault:"GET,PATCH,POST,DELETE,OPTIONS"`
	AllowedHeaders []string `env:"CORS_ALLOWED_HEADERS" envSeparator:"," envDefault:"Content-Type,Authorization"`
	MaxAge         int      `env:"CORS_MAX_AGE" envDefault:"3600"`
}

// Load parses environment variables into App config.
func Load(ctx context.Context) (*App, error) {
	cfg := &App{}
	if err := env.ParseWithOptions(cfg, env.Options{RequiredIfNoDef: true}); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Store.Driver != "postgres" && cfg.Store.Driver != "sqlite" {
		return nil, fmt.Errorf("unknown STORE_DRIVER %q (want postgres or sqlite)", cfg.Store.Driver)
	}
	return cfg, nil
}

// ConnString builds the pgx connection string for the configured database.
func (p Postgres) ConnString() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s pool_max_conns=10",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode)
}
