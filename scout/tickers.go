package scout

import (
	"regexp"
	"sort"
	"strings"
)

const maxTickers = 10

// tickerBlacklist filters out common announcement words that match the
// ticker patterns but are not tickers.
var tickerBlacklist = map[string]struct{}{
	"AND": {}, "OR": {}, "THE": {}, "ON": {}, "WILL": {}, "LAUNCH": {},
	"USDT": {}, "USD": {}, "USDC": {}, "MARGIN": {}, "MARGINED": {},
	"SPOT": {}, "FUTURES": {}, "PERPETUAL": {}, "PERP": {}, "CONTRACT": {},
	"TRADING": {}, "COIN": {}, "TOKEN": {}, "NEW": {}, "LISTING": {},
	"LIST": {}, "LISTS": {}, "ALPHA": {}, "BETA": {},
}

var (
	// (BTC), (ETH), (Q)
	reParenTicker = regexp.MustCompile(`\(([A-Z0-9]{1,15})\)`)
	// BTCUSDT, XRPUSDTM
	rePairTicker = regexp.MustCompile(`\b([A-Z0-9]{2,15})USDTM?\b`)
	// BTC/USDT, BTC/USD
	reSlashTicker = regexp.MustCompile(`\b([A-Z0-9]{2,15})/(?:USDT|USD)\b`)
)

// ExtractTickers pulls ticker symbols out of announcement text.
// Best effort only: unknown formats simply yield no tickers.
func ExtractTickers(text string) []string {
	found := make(map[string]struct{})

	for _, re := range []*regexp.Regexp{reParenTicker, rePairTicker, reSlashTicker} {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			ticker := strings.ToUpper(m[1])
			if _, banned := tickerBlacklist[ticker]; banned {
				continue
			}
			if strings.HasSuffix(ticker, "USDT") || strings.HasSuffix(ticker, "USD") {
				continue
			}
			found[ticker] = struct{}{}
		}
	}

	tickers := make([]string, 0, len(found))
	for t := range found {
		tickers = append(tickers, t)
	}
	sort.Strings(tickers)

	if len(tickers) > maxTickers {
		tickers = tickers[:maxTickers]
	}
	return tickers
}
