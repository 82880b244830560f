package config

import (
	stdLog "log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/booklendiverse/booklend-service/internal/server"
	"github.com/booklendiverse/booklend-service/internal/service/gateway"
	"github.com/booklendiverse/booklend-service/pkg/kafka"
	"github.com/booklendiverse/booklend-service/pkg/logger"
	"github.com/booklendiverse/booklend-service/pkg/postgres"
)

type Config struct {
	Server   server.Config  `yaml:"server"`
	Database postgres.DB    `yaml:"database"`
	Kafka    kafka.Config   `yaml:"kafka"`
	Gateway  gateway.Config `yaml:"gateway"`
	JWT      JWT            `yaml:"jwt"`
	CORS     CORS           `yaml:"cors"`
	Log      logger.Log     `yaml:"log"`
}

type JWT struct {
	Secret   string        `yaml:"secret" envconfig:"JWT_SECRET" default:"insecure-dev-secret"`
	TokenTTL time.Duration `yaml:"token_ttl" envconfig:"JWT_TOKEN_TTL" default:"24h"`
}

type CORS struct {
	AllowOrigin string `yaml:"allow_origin" envconfig:"CORS_ALLOW_ORIGIN" default:"*"`
}

var (
	config *Config
	once   sync.Once
)

func NewConfig(opts ...Option) *Config {
	once.Do(func() {
		config = &Config{}
		if err := envconfig.Process("", config); err != nil {
			stdLog.Fatalf("read config from envs: %v", err)
		}
		for _, opt := range opts {
			opt(config)
		}
	})
	return config
}
