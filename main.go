package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	env, err := loadEnv()
	if err != nil {
		logger.Error("Error loading environment", "error", err)
		os.Exit(1)
	}

	if err := validator.New().Struct(env); err != nil {
		logger.Error("Invalid environment", "error", err)
		os.Exit(1)
	}

	err = sentry.Init(sentry.ClientOptions{
		Dsn:              env.SentryDSN,
		EnableTracing:    true,
		TracesSampleRate: 1.0,
	})
	if err != nil {
		logger.Error("Error initializing Sentry", "error", err)
		os.Exit(1)
	}
	defer sentry.Flush(2 * time.Second)

	cfg, err := NewConfig(env)
	if err != nil {
		logger.Error("Error parsing configuration", "error", err)
		os.Exit(1)
	}

	app := &App{
		cfg:    cfg,
		logger: logger,
	}

	if err := app.start(); err != nil {
		logger.Error("Application stopped with an error", "error", err)
		os.Exit(1)
	}
}

// loadEnv reads the environment variables into the Env structure.
// An optional .env file is honored for local development.
func loadEnv() (*Env, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // the .env file is optional

	v.AutomaticEnv()
	for _, key := range []string{
		"TELEGRAM_BOT_TOKEN",
		"TELEGRAM_DEFAULT_CHANNEL_ID",
		"TELEGRAM_ROUTES",
		"DATABASE_PATH",
		"POLL_INTERVAL_SECONDS",
		"PROXY_LIST",
		"USER_AGENT",
		"DEMO_MODE",
		"SENTRY_DSN",
	} {
		_ = v.BindEnv(key)
	}

	var env Env
	if err := v.Unmarshal(&env); err != nil {
		return nil, err
	}
	return &env, nil
}
