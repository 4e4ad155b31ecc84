package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/fakhrymubarak/weather-fetcher/internal/cache"
	"github.com/fakhrymubarak/weather-fetcher/internal/client"
	"github.com/fakhrymubarak/weather-fetcher/internal/config"
	"github.com/fakhrymubarak/weather-fetcher/internal/service"
	"github.com/fakhrymubarak/weather-fetcher/internal/ui"
	"github.com/fakhrymubarak/weather-fetcher/internal/worker"
)

func main() {
	logger := config.GetLogger()
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var store cache.Cache
	switch backend := config.GetCacheBackend(); backend {
	case "redis":
		redisCache := cache.NewRedis(config.GetRedisAddr(), config.GetCacheExpiration())
		defer func() { _ = redisCache.Close() }()
		store = redisCache
	default:
		store = cache.NewMemory(config.GetCacheCapacity(), config.GetCacheExpiration())
	}

	weatherService := service.NewWeatherService(store, client.NewWeatherClient())

	periodic := worker.NewPeriodicWorker(
		weatherService,
		config.GetPeriodicCity(),
		config.GetPeriodicInterval(),
		os.Stdout,
	)
	done := make(chan struct{})
	go func() {
		defer close(done)
		periodic.Run(ctx)
	}()
	logger.Infow("periodic fetcher started",
		"city", config.GetPeriodicCity(),
		"interval", config.GetPeriodicInterval(),
	)

	shell := ui.NewShell(os.Stdin, os.Stdout, worker.NewForegroundWorker(weatherService))
	if err := shell.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Errorw("shell exited", "error", err)
	}

	// Cancel the root context and wait for the periodic loop to finish.
	stop()
	<-done
}
