package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/pathewatch/pathewatch/internal/config"
	"github.com/pathewatch/pathewatch/internal/httpclient"
	"github.com/pathewatch/pathewatch/internal/logger"
	"github.com/pathewatch/pathewatch/internal/monitor"
	"github.com/pathewatch/pathewatch/internal/notifier"
	"github.com/pathewatch/pathewatch/internal/pathe"
	"github.com/pathewatch/pathewatch/internal/rslimiter"
)

func main() {
	fmt.Println("pathewatch starting...")

	// .env is optional; a missing file means the environment is provided
	// some other way.
	_ = godotenv.Load()

	flags := ParseFlags()

	gCfg, err := config.LoadGlobalConfig(flags.ConfigFile)
	if err != nil {
		log.Fatalf("[FATAL] Could not load configuration: %v", err)
	}

	// Environment overrides come before validation so a bad TIMEZONE or a
	// missing webhook URL fails startup the same way a bad config file does.
	if err := config.ApplyEnvOverrides(gCfg); err != nil {
		log.Fatalf("[FATAL] %v", err)
	}
	if flags.LogLevel != "" {
		gCfg.LogConfig.LogLevel = strings.ToLower(flags.LogLevel)
	}

	if err := config.ValidateConfig(gCfg); err != nil {
		log.Fatalf("[FATAL] %v", err)
	}

	location := gCfg.MonitorConfig.Location()

	zLogger, err := logger.NewWithLocation(gCfg.LogConfig, location)
	if err != nil {
		log.Fatalf("[FATAL] Could not initialize logger: %v", err)
	}
	zLogger.Info().Str("timezone", location.String()).Msg("Configuration loaded and validated")

	requests, err := gCfg.MonitorRequests()
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Invalid monitor requests")
	}
	for _, req := range requests {
		zLogger.Info().Stringer("request", req).Msg("Watching for tickets")
	}

	httpClient, err := httpclient.NewHTTPClientBuilder(zLogger).
		WithTimeout(gCfg.HTTPClientConfig.Timeout()).
		WithUserAgent(gCfg.HTTPClientConfig.UserAgent).
		WithMaxContentSize(gCfg.MonitorConfig.MaxContentSize).
		WithConnectionPooling(gCfg.HTTPClientConfig.MaxIdleConns, gCfg.HTTPClientConfig.MaxIdleConnsPerHost, 0).
		WithHTTP2(gCfg.HTTPClientConfig.EnableHTTP2).
		WithInsecureSkipVerify(gCfg.HTTPClientConfig.InsecureSkipVerify).
		Build()
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Failed to build HTTP client")
	}

	discordNotifier, err := notifier.NewDiscordNotifier(gCfg.NotificationConfig, httpClient, zLogger)
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Failed to initialize Discord notifier")
	}
	notificationHelper := notifier.NewNotificationHelper(discordNotifier, gCfg.NotificationConfig, location, zLogger)

	fetcher := pathe.NewFetcher(httpClient, gCfg.MonitorConfig, zLogger)
	tracker := monitor.NewTracker(requests, zLogger)
	watchService := monitor.NewWatchService(fetcher, tracker, notificationHelper, requests, zLogger)
	watchScheduler := monitor.NewScheduler(gCfg.MonitorConfig, watchService, zLogger)

	// Setup signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		zLogger.Info().Str("signal", sig.String()).Msg("Received interrupt signal, initiating graceful shutdown...")
		cancel()
	}()

	if gCfg.ResourceLimiterConfig.Enabled {
		resourceLimiter := rslimiter.NewResourceLimiter(gCfg.ResourceLimiterConfig, zLogger)
		resourceLimiter.SetShutdownCallback(cancel)
		resourceLimiter.Start()
		defer resourceLimiter.Stop()
	}

	if err := watchScheduler.Start(ctx); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			zLogger.Info().Msg("Watch scheduler stopped due to context cancellation (interrupt).")
		} else {
			zLogger.Error().Err(err).Msg("Watch scheduler stopped with error")
		}
	}

	zLogger.Info().Msg("pathewatch finished.")
}
