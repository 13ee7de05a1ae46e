package config

import (
	"log"
	"sync"
	"time"

	"github.com/campuslib/circulation-service/pkg/kafka"
	"github.com/campuslib/circulation-service/pkg/logger"
	"github.com/campuslib/circulation-service/pkg/postgres"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"CIRCULATION_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"CIRCULATION_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"5s"`
	WriteTimeout time.Duration
}

type Circulation struct {
	BorrowLimit       int           `yaml:"borrowLimit" envconfig:"BORROW_LIMIT" default:"5"`
	ReconcileInterval time.Duration `yaml:"reconcileInterval" envconfig:"RECONCILE_INTERVAL" default:"1h"`
}

type Config struct {
	Server      HTTPServer      `yaml:"server"`
	Database    postgres.Config `yaml:"db"`
	Kafka       kafka.Config    `yaml:"kafka"`
	Circulation Circulation     `yaml:"circulation"`
	Log         logger.Log      `yaml:"log"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = &config
	})

	return cfg
}

type Option func(*Config)

func WithLogLevel(level zapcore.Level) Option {
	return func(c *Config) {
		c.Log.LogLevel = level
	}
}

func WithWriteTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.Server.WriteTimeout = d
	}
}
