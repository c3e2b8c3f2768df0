package main

import (
	"net/http"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Jco131169Jco/alexa-gemini-skill/internal/config"
	"github.com/Jco131169Jco/alexa-gemini-skill/internal/gemini"
	"github.com/Jco131169Jco/alexa-gemini-skill/internal/logger"
	"github.com/Jco131169Jco/alexa-gemini-skill/internal/skill"
	"github.com/Jco131169Jco/alexa-gemini-skill/internal/timezone"
)

func main() {
	parseFlags()
	if err := run(); err != nil {
		panic(err)
	}
}

func run() error {
	// .env нужен только для локального запуска
	_ = godotenv.Load()

	cfg, err := config.Load(config.Flags{RunAddr: flagRunAddr, LogLevel: flagLogLevel})
	if err != nil {
		return err
	}

	if err := logger.Initialize(cfg.LogLevel); err != nil {
		return err
	}
	defer func() { _ = logger.Log.Sync() }()

	if cfg.GeminiAPIKey == "" {
		logger.Log.Warn("GEMINI_API_KEY is not set, answers are disabled")
	}

	router := skill.NewRouter(
		timezone.NewResolver(cfg.DefaultTimezone, cfg.SettingsTimeout),
		gemini.NewClient(gemini.Config{
			APIKey:  cfg.GeminiAPIKey,
			Model:   cfg.GeminiModel,
			BaseURL: cfg.GeminiBaseURL,
			Timeout: cfg.GeminiTimeout,
		}),
	)

	logger.Log.Info("Running server",
		zap.String("address", cfg.RunAddr),
		zap.String("model", cfg.GeminiModel),
	)

	return http.ListenAndServe(cfg.RunAddr, logger.RequestLogger(newMux(newApp(router))))
}

func newMux(a *app) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", gzipMiddleware(a.webhook))
	return mux
}
