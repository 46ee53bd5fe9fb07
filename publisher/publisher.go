// Package publisher delivers announcement notifications to Telegram channels,
// routed by exchange identifier.
package publisher

import (
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
)

// TelegramPublisher routes each announcement to the channel configured for
// its exchange, falling back to the default channel for unmapped exchanges.
type TelegramPublisher struct {
	Routes           map[string]string // Exchange identifier -> Telegram channel id (e.g. "binance" -> "@binance_listings")
	DefaultChannelID string            // Channel for exchanges without a dedicated route
	BotAPI           *tgbotapi.BotAPI
}

func NewTelegramPublisher(token, defaultChannelID string, routes map[string]string) (*TelegramPublisher, error) {
	if defaultChannelID == "" && len(routes) == 0 {
		return nil, errNoDestinations
	}

	b, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	return &TelegramPublisher{
		Routes:           routes,
		DefaultChannelID: defaultChannelID,
		BotAPI:           b,
	}, nil
}

// Publish sends the message to the channel mapped to the exchange.
// Returns the Telegram message id of the publication.
func (t *TelegramPublisher) Publish(exchange, msg string) (pubID string, err error) {
	channelID := t.ChannelFor(exchange)
	if channelID == "" {
		return "", errNoDestinations
	}

	tgMsg := tgbotapi.NewMessageToChannel(channelID, msg)
	tgMsg.ParseMode = tgbotapi.ModeHTML
	tgMsg.DisableWebPagePreview = true

	s, err := t.BotAPI.Send(tgMsg)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(s.MessageID), nil
}

// ChannelFor resolves the destination channel for an exchange.
func (t *TelegramPublisher) ChannelFor(exchange string) string {
	if ch, ok := t.Routes[exchange]; ok && ch != "" {
		return ch
	}
	return t.DefaultChannelID
}
