package publisher

import "testing"

func TestTelegramPublisher_ChannelFor(t *testing.T) {
	pub := &TelegramPublisher{
		Routes: map[string]string{
			"binance": "@binance_listings",
			"bybit":   "@bybit_listings",
		},
		DefaultChannelID: "@all_listings",
	}

	tests := []struct {
		name     string
		exchange string
		want     string
	}{
		{name: "mapped exchange", exchange: "binance", want: "@binance_listings"},
		{name: "another mapped exchange", exchange: "bybit", want: "@bybit_listings"},
		{name: "unmapped exchange falls back to default", exchange: "okx", want: "@all_listings"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pub.ChannelFor(tt.exchange); got != tt.want {
				t.Errorf("ChannelFor(%q) = %v, want %v", tt.exchange, got, tt.want)
			}
		})
	}
}

func TestTelegramPublisher_ChannelFor_noDefault(t *testing.T) {
	pub := &TelegramPublisher{Routes: map[string]string{"binance": "@binance_listings"}}

	if got := pub.ChannelFor("okx"); got != "" {
		t.Errorf("ChannelFor() = %v, want empty string without a default channel", got)
	}
}
