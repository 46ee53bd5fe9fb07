package jobs

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"github.com/samgozman/coin-thread/archivist/models"
	"github.com/samgozman/coin-thread/scout"
)

const maxShownTickers = 3

// formatAnnouncement renders the Telegram HTML message for an announcement.
func formatAnnouncement(a *models.Announcement) string {
	msg := fmt.Sprintf("<b>%s</b> [%s]", capitalize(a.Exchange), marketLabel(a.MarketType))

	if tickers := decodeTickers(a.Tickers); len(tickers) > 0 {
		shown := tickers
		if len(shown) > maxShownTickers {
			shown = shown[:maxShownTickers]
		}
		parts := make([]string, len(shown))
		for i, t := range shown {
			parts[i] = "$" + t
		}
		msg += " " + strings.Join(parts, ", ")
		if rest := len(tickers) - maxShownTickers; rest > 0 {
			msg += fmt.Sprintf(" +%d more", rest)
		}
	}

	msg += ": " + html.EscapeString(a.Title)

	return fmt.Sprintf("<a href='%s'>%s</a>", a.URL, msg)
}

func marketLabel(marketType string) string {
	switch scout.MarketType(marketType) {
	case scout.MarketTypeSpot:
		return "Spot Listing"
	case scout.MarketTypeFutures:
		return "Futures Listing"
	default:
		return "Announcement"
	}
}

func decodeTickers(raw []byte) []string {
	if len(raw) == 0 {
		return nil
	}
	var tickers []string
	if err := json.Unmarshal(raw, &tickers); err != nil {
		return nil
	}
	return tickers
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
