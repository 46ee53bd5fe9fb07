package main

import (
	"fmt"
	"strings"
	"time"
)

// Env is a structure that holds all the environment variables that are used in the app.
type Env struct {
	TelegramBotToken         string `mapstructure:"TELEGRAM_BOT_TOKEN" validate:"required"`
	TelegramDefaultChannelID string `mapstructure:"TELEGRAM_DEFAULT_CHANNEL_ID" validate:"required"`
	TelegramRoutes           string `mapstructure:"TELEGRAM_ROUTES"` // "binance=@binance_listings,bybit=@bybit_listings"
	DatabasePath             string `mapstructure:"DATABASE_PATH" validate:"required"`
	PollIntervalSeconds      int    `mapstructure:"POLL_INTERVAL_SECONDS"`
	ProxyList                string `mapstructure:"PROXY_LIST"` // comma-separated proxy URIs
	UserAgent                string `mapstructure:"USER_AGENT"`
	DemoMode                 bool   `mapstructure:"DEMO_MODE"`
	SentryDSN                string `mapstructure:"SENTRY_DSN"`
}

// Config holds the validated, parsed application configuration.
type Config struct {
	env          *Env
	pollInterval time.Duration     // how often the watch job runs
	proxies      []string          // outbound proxy URIs, empty means direct connection
	routes       map[string]string // exchange identifier -> telegram channel id
}

const defaultPollInterval = 60 * time.Second

// NewConfig creates a new Config object from the given Env.
func NewConfig(env *Env) (*Config, error) {
	routes, err := parseRoutes(env.TelegramRoutes)
	if err != nil {
		return nil, err
	}

	pollInterval := defaultPollInterval
	if env.PollIntervalSeconds > 0 {
		pollInterval = time.Duration(env.PollIntervalSeconds) * time.Second
	}

	return &Config{
		env:          env,
		pollInterval: pollInterval,
		proxies:      splitList(env.ProxyList),
		routes:       routes,
	}, nil
}

// parseRoutes parses the per-exchange destination mapping from its
// "exchange=channel" comma-separated form.
func parseRoutes(s string) (map[string]string, error) {
	routes := make(map[string]string)
	for _, pair := range splitList(s) {
		exchange, channel, found := strings.Cut(pair, "=")
		exchange = strings.TrimSpace(exchange)
		channel = strings.TrimSpace(channel)
		if !found || exchange == "" || channel == "" {
			return nil, fmt.Errorf("invalid telegram route %q, want exchange=channel", pair)
		}
		routes[strings.ToLower(exchange)] = channel
	}
	return routes, nil
}

// splitList splits a comma-separated list, dropping empty elements.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
