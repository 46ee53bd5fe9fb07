package scout

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
)

const (
	binanceName       = "binance"
	binanceCatalogURL = "https://www.binance.com/bapi/composite/v1/public/cms/article/catalog/list/query?type=1&pageNo=1&pageSize=20"
	binanceBaseURL    = "https://www.binance.com"
)

// Binance fetches announcements from the public Binance CMS catalog endpoint.
type Binance struct {
	client     *Client
	catalogURL string
	sanitizer  *bluemonday.Policy
}

// NewBinance creates a Binance announcement source on the shared HTTP client.
func NewBinance(client *Client) *Binance {
	return &Binance{
		client:     client,
		catalogURL: binanceCatalogURL,
		sanitizer:  bluemonday.StrictPolicy(),
	}
}

func (b *Binance) Name() string {
	return binanceName
}

// binanceCatalogResponse mirrors the CMS payload: announcement articles are
// grouped into named catalogs ("New Cryptocurrency Listing", "Derivatives", ...).
type binanceCatalogResponse struct {
	Data struct {
		Catalogs []struct {
			CatalogName string `json:"catalogName"`
			Articles    []struct {
				ID          int64  `json:"id"`
				Code        string `json:"code"`
				Title       string `json:"title"`
				ReleaseDate int64  `json:"releaseDate"` // unix milliseconds
			} `json:"articles"`
		} `json:"catalogs"`
	} `json:"data"`
}

// Fetch returns the latest Binance announcements across all catalogs.
func (b *Binance) Fetch(ctx context.Context) ([]*Announcement, error) {
	var resp binanceCatalogResponse
	if err := b.client.GetJSON(ctx, b.catalogURL, &resp); err != nil {
		return nil, NewExchangeErr(binanceName, err.Error())
	}

	var announcements []*Announcement
	for _, catalog := range resp.Data.Catalogs {
		for _, article := range catalog.Articles {
			sourceID := article.Code
			if sourceID == "" {
				sourceID = strconv.FormatInt(article.ID, 10)
			}
			if sourceID == "" || sourceID == "0" {
				continue
			}

			title := b.cleanText(article.Title)

			published := time.Now().UTC()
			if article.ReleaseDate > 0 {
				published = time.UnixMilli(article.ReleaseDate).UTC()
			}

			announcements = append(announcements, &Announcement{
				Exchange:    binanceName,
				SourceID:    sourceID,
				Title:       title,
				URL:         b.articleURL(article.Code),
				PublishedAt: published,
				MarketType:  ClassifyMarket(catalog.CatalogName + " " + title),
				Tickers:     ExtractTickers(title),
			})
		}
	}

	return announcements, nil
}

func (b *Binance) articleURL(code string) string {
	if code == "" {
		return binanceBaseURL + "/en/support/announcement"
	}
	return fmt.Sprintf("%s/en/support/announcement/%s", binanceBaseURL, code)
}

// cleanText strips HTML tags the CMS occasionally leaves in titles
// and collapses the remaining whitespace.
func (b *Binance) cleanText(s string) string {
	return strings.Join(strings.Fields(b.sanitizer.Sanitize(s)), " ")
}
