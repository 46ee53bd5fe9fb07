package main

import (
	"reflect"
	"testing"
	"time"
)

func Test_parseRoutes(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    map[string]string
		wantErr bool
	}{
		{
			name:  "two routes",
			input: "binance=@binance_listings,bybit=@bybit_listings",
			want:  map[string]string{"binance": "@binance_listings", "bybit": "@bybit_listings"},
		},
		{
			name:  "spaces and mixed case exchange",
			input: " Binance = @chan ",
			want:  map[string]string{"binance": "@chan"},
		},
		{
			name:  "empty input",
			input: "",
			want:  map[string]string{},
		},
		{
			name:    "missing channel",
			input:   "binance=",
			wantErr: true,
		},
		{
			name:    "missing separator",
			input:   "binance",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseRoutes(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("parseRoutes() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err == nil && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseRoutes() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewConfig(t *testing.T) {
	env := &Env{
		TelegramBotToken:         "token",
		TelegramDefaultChannelID: "@listings",
		TelegramRoutes:           "binance=@binance_listings",
		DatabasePath:             "/tmp/announcements.db",
		PollIntervalSeconds:      30,
		ProxyList:                "http://p1:8080, http://p2:8080",
	}

	cfg, err := NewConfig(env)
	if err != nil {
		t.Fatalf("NewConfig() error = %v", err)
	}

	if cfg.pollInterval != 30*time.Second {
		t.Errorf("pollInterval = %v, want 30s", cfg.pollInterval)
	}
	if want := []string{"http://p1:8080", "http://p2:8080"}; !reflect.DeepEqual(cfg.proxies, want) {
		t.Errorf("proxies = %v, want %v", cfg.proxies, want)
	}
	if cfg.routes["binance"] != "@binance_listings" {
		t.Errorf("routes = %v", cfg.routes)
	}
}

func TestNewConfig_defaults(t *testing.T) {
	cfg, err := NewConfig(&Env{})
	if err != nil {
		t.Fatalf("NewConfig() error = %v", err)
	}

	if cfg.pollInterval != defaultPollInterval {
		t.Errorf("pollInterval = %v, want default %v", cfg.pollInterval, defaultPollInterval)
	}
	if len(cfg.proxies) != 0 {
		t.Errorf("proxies = %v, want empty", cfg.proxies)
	}
}
