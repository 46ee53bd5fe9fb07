package scout

import (
	"strings"
	"time"
)

// MarketType is the market classification of a listing announcement.
type MarketType string

const (
	MarketTypeSpot    MarketType = "SPOT"
	MarketTypeFutures MarketType = "FUTURES"
	MarketTypeUnknown MarketType = "UNKNOWN"
)

// Announcement is a single exchange-listing event.
// The (Exchange, SourceID) pair is the identity of the announcement:
// it is the only key used for deduplication downstream.
type Announcement struct {
	Exchange    string     // Exchange identifier (e.g. "binance")
	SourceID    string     // Exchange-native unique ID of the listing
	Title       string     // Announcement title, HTML stripped
	URL         string     // Link to the original announcement
	PublishedAt time.Time  // Exchange-reported date, or fetch time if the exchange reported none
	MarketType  MarketType // Spot/futures classification derived from the announcement text
	Tickers     []string   // Tickers mentioned in the announcement (best effort)
}

// futuresKeywords are checked before spotKeywords: exchanges routinely write
// "perpetual contract" announcements that also mention spot pairs.
var futuresKeywords = []string{"futures", "perpetual", "perp"}

var spotKeywords = []string{"spot"}

// ClassifyMarket classifies announcement text (title, category name or both)
// as a spot or futures listing by keyword matching.
// Ambiguous text stays MarketTypeUnknown rather than guessing.
func ClassifyMarket(text string) MarketType {
	t := strings.ToLower(text)

	for _, k := range futuresKeywords {
		if strings.Contains(t, k) {
			return MarketTypeFutures
		}
	}
	for _, k := range spotKeywords {
		if strings.Contains(t, k) {
			return MarketTypeSpot
		}
	}

	return MarketTypeUnknown
}
