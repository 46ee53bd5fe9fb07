// Package trader is a placeholder decision engine that reacts to new listing
// announcements. It only simulates orders: real execution is not implemented.
package trader

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/samgozman/coin-thread/scout"
)

type OrderSide string

const (
	SideBuy  OrderSide = "buy"
	SideSell OrderSide = "sell"
)

// OrderResult describes the outcome of a (simulated) order.
type OrderResult struct {
	OrderID  string
	Symbol   string
	Side     OrderSide
	Quantity float64
}

// Engine decides whether to act on an announcement.
type Engine struct {
	simulation bool
	logger     *slog.Logger
}

// NewEngine creates a decision engine. Only simulation mode is supported.
func NewEngine(simulation bool) *Engine {
	return &Engine{
		simulation: simulation,
		logger:     slog.Default(),
	}
}

// OnAnnouncement inspects a freshly discovered announcement and returns a
// simulated order for spot listings with a recognizable ticker.
// Returns nil when no action is taken.
func (e *Engine) OnAnnouncement(a *scout.Announcement) *OrderResult {
	if !e.simulation {
		return nil
	}

	if a.MarketType != scout.MarketTypeSpot || len(a.Tickers) == 0 {
		return nil
	}

	symbol := a.Tickers[0] + "USDT"
	e.logger.Info("trading opportunity",
		"exchange", a.Exchange,
		"symbol", symbol,
		"market_type", string(a.MarketType),
	)

	return &OrderResult{
		OrderID:  fmt.Sprintf("SIM_%s_%s_%d", symbol, SideBuy, time.Now().Unix()),
		Symbol:   symbol,
		Side:     SideBuy,
		Quantity: 0, // sizing is out of scope for the simulation
	}
}
