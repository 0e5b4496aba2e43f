package main

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"bufferstock/internal/api"
)

func main() {
	v := viper.New()
	v.SetEnvPrefix("BUFFERSTOCK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", "8080")
	v.SetDefault("env", "development")
	v.SetDefault("preset_dir", "examples/models")
	v.SetDefault("allowed_origins", "http://localhost:5173,http://localhost:3000")
	v.SetDefault("cache_ttl", "1h")

	var logger *zap.Logger
	var err error
	if v.GetString("env") == "production" {
		gin.SetMode(gin.ReleaseMode)
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ttl, err := time.ParseDuration(v.GetString("cache_ttl"))
	if err != nil {
		logger.Fatal("invalid cache TTL", zap.String("cache_ttl", v.GetString("cache_ttl")), zap.Error(err))
	}

	router := api.NewRouter(api.Options{
		PresetDir:      v.GetString("preset_dir"),
		AllowedOrigins: strings.Split(v.GetString("allowed_origins"), ","),
		CacheTTL:       ttl,
		Logger:         logger,
	})

	addr := fmt.Sprintf(":%s", v.GetString("port"))
	logger.Info("starting API server",
		zap.String("addr", addr),
		zap.String("preset_dir", v.GetString("preset_dir")))
	if err := router.Run(addr); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
