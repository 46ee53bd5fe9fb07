package trader

import (
	"testing"

	"github.com/samgozman/coin-thread/scout"
)

func TestEngine_OnAnnouncement(t *testing.T) {
	tests := []struct {
		name       string
		simulation bool
		ann        *scout.Announcement
		wantOrder  bool
	}{
		{
			name:       "spot listing with ticker triggers a simulated buy",
			simulation: true,
			ann: &scout.Announcement{
				Exchange:   "binance",
				MarketType: scout.MarketTypeSpot,
				Tickers:    []string{"OMNI"},
			},
			wantOrder: true,
		},
		{
			name:       "futures listing is ignored",
			simulation: true,
			ann: &scout.Announcement{
				Exchange:   "binance",
				MarketType: scout.MarketTypeFutures,
				Tickers:    []string{"OMNI"},
			},
			wantOrder: false,
		},
		{
			name:       "spot listing without tickers is ignored",
			simulation: true,
			ann: &scout.Announcement{
				Exchange:   "binance",
				MarketType: scout.MarketTypeSpot,
			},
			wantOrder: false,
		},
		{
			name:       "engine disabled",
			simulation: false,
			ann: &scout.Announcement{
				Exchange:   "binance",
				MarketType: scout.MarketTypeSpot,
				Tickers:    []string{"OMNI"},
			},
			wantOrder: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine(tt.simulation)
			got := e.OnAnnouncement(tt.ann)
			if (got != nil) != tt.wantOrder {
				t.Errorf("OnAnnouncement() = %v, wantOrder %v", got, tt.wantOrder)
			}
			if got != nil && got.Symbol != "OMNIUSDT" {
				t.Errorf("OnAnnouncement() symbol = %v, want OMNIUSDT", got.Symbol)
			}
		})
	}
}
