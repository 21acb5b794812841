package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smart-planner/config"
	_ "smart-planner/docs" // Swagger docs
	"smart-planner/internal/httpserver"
	"smart-planner/internal/orchestrator"
	"smart-planner/internal/recognizer"
	"smart-planner/pkg/datemath"
	"smart-planner/pkg/gcalendar"
	"smart-planner/pkg/llmprovider"
	"smart-planner/pkg/log"
)

// @title       Smart Planner API
// @description Conversational planner with intent recognition, slot-filling workflows, and Google Calendar export.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Smart Planner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Timezone: %s", cfg.Planner.Timezone)

	// 3. LLM provider chain (optional; local recognition covers its absence)
	var llm recognizer.ContentGenerator
	if providers, provErr := llmprovider.InitializeProviders(&cfg.LLM); provErr != nil {
		logger.Warnf(ctx, "LLM providers not available, running local-only: %v", provErr)
	} else {
		retryDelay, _ := time.ParseDuration(cfg.LLM.RetryDelay)
		maxTotal, _ := time.ParseDuration(cfg.LLM.MaxTotalTimeout)
		llm = llmprovider.NewManager(providers, &llmprovider.Config{
			FallbackEnabled: cfg.LLM.FallbackEnabled,
			RetryAttempts:   cfg.LLM.RetryAttempts,
			RetryDelay:      retryDelay,
			MaxTotalTimeout: maxTotal,
		}, logger)
		logger.Infof(ctx, "LLM provider chain initialized with %d provider(s)", len(providers))
	}

	// 4. DateMath parser
	dateMathParser, dtErr := datemath.NewParser(cfg.Planner.Timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Planner.Timezone, dtErr)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 5. Orchestrator with bounded session store
	sessionTTL, _ := time.ParseDuration(cfg.Session.TTL)
	orch := orchestrator.New(orchestrator.Config{
		MaxSessions: cfg.Session.MaxSessions,
		TTL:         sessionTTL,
	}, llm, dateMathParser, logger)

	// 6. Google Calendar client (optional)
	var calendarClient gcalendar.ICalendar
	if cfg.GoogleCalendar.Enabled && cfg.GoogleCalendar.CredentialsPath != "" {
		client, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			calendarClient = client
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:       logger,
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		Orchestrator: orch,
		RateLimit:    cfg.RateLimit,
		Calendar:     calendarClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
