package postgres

import (
	"context"
	"fmt"
	"io/fs"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
)

type Config struct {
	Host     string `yaml:"host" envconfig:"PG_HOST" default:"localhost"`
	Port     string `yaml:"port" envconfig:"PG_PORT" default:"5432"`
	User     string `yaml:"user" envconfig:"PG_USER" default:"postgres"`
	Password string `yaml:"password" envconfig:"PG_PASSWORD"`
	DBName   string `yaml:"dbname" envconfig:"PG_DATABASE" default:"circulation"`
	SSLMode  string `yaml:"sslmode" envconfig:"PG_SSLMODE" default:"disable"`

	MaxOpenConns int           `envconfig:"PG_MAX_OPEN_CONNS" default:"10"`
	ConnTimeout  time.Duration `envconfig:"PG_CONN_TIMEOUT" default:"5s"`
}

func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// NewPostgresDB opens a pgx-backed sqlx handle and applies embedded goose migrations.
func NewPostgresDB(ctx context.Context, cfg *Config, migrations fs.FS) (*sqlx.DB, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnTimeout)
	defer cancel()

	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.DSN())
	if err != nil {
		return nil, errors.Wrap(err, "connect postgres")
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return nil, errors.Wrap(err, "goose dialect")
	}
	if err := goose.Up(db.DB, "."); err != nil {
		return nil, errors.Wrap(err, "goose up")
	}

	return db, nil
}
