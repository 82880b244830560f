package main

import (
	stdLog "log"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/booklendiverse/booklend-service/app"
	"github.com/booklendiverse/booklend-service/config"
)

// @title        BookLendiverse API
// @version      1.0
// @description  Peer-to-peer book rental and sale marketplace.

// @securityDefinitions.apikey ApiKeyAuth
// @in   header
// @name Authorization

func main() {
	if err := godotenv.Load(); err != nil {
		stdLog.Fatal("load envs from .env ", zap.Error(err))
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.DebugLevel),
		config.WithWriteTimeout(time.Minute),
	)

	app.Run(cfg)
}
