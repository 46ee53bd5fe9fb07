package scout

import "context"

// stubExchange satisfies the Exchange contract without doing any network I/O.
// It lets new exchanges be registered in the runner before their scraping
// logic is written.
type stubExchange struct {
	name string
}

func (s *stubExchange) Name() string {
	return s.name
}

func (s *stubExchange) Fetch(context.Context) ([]*Announcement, error) {
	return nil, nil
}

// NewBybit returns a Bybit source. Scraping is not implemented yet.
func NewBybit() Exchange { return &stubExchange{name: "bybit"} }

// NewOKX returns an OKX source. Scraping is not implemented yet.
func NewOKX() Exchange { return &stubExchange{name: "okx"} }

// NewKuCoin returns a KuCoin source. Scraping is not implemented yet.
func NewKuCoin() Exchange { return &stubExchange{name: "kucoin"} }

// NewMEXC returns a MEXC source. Scraping is not implemented yet.
func NewMEXC() Exchange { return &stubExchange{name: "mexc"} }

// NewUpbit returns an Upbit source. Scraping is not implemented yet.
func NewUpbit() Exchange { return &stubExchange{name: "upbit"} }
