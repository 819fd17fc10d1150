package domain

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PopularAssets maps CoinGecko ids to their tickers, in display order.
var PopularAssets = []struct {
	ID     string
	Ticker string
}{
	{"bitcoin", "btc"},
	{"ethereum", "eth"},
	{"binancecoin", "bnb"},
	{"solana", "sol"},
	{"cardano", "ada"},
	{"ripple", "xrp"},
	{"polkadot", "dot"},
	{"dogecoin", "doge"},
	{"tether", "usdt"},
	{"usd-coin", "usdc"},
}

// ResolveAssetID accepts an asset id or a known ticker and returns the asset id.
// Unknown input is returned lower-cased so the oracle can decide whether it exists.
func ResolveAssetID(input string) string {
	normalized := strings.ToLower(strings.TrimSpace(input))
	for _, asset := range PopularAssets {
		if normalized == asset.ID || normalized == asset.Ticker {
			return asset.ID
		}
	}
	return normalized
}

func PopularAssetIDs() []string {
	ids := make([]string, 0, len(PopularAssets))
	for _, asset := range PopularAssets {
		ids = append(ids, asset.ID)
	}
	return ids
}

type Quote struct {
	USD       decimal.Decimal
	EUR       *decimal.Decimal
	RUB       *decimal.Decimal
	Change24h *decimal.Decimal
}

// PriceOracle returns current quotes for the requested assets. Unknown assets are
// absent from the result; a failure of the whole call wraps ErrUnavailable.
type PriceOracle interface {
	FetchQuotes(ctx context.Context, assetIDs []string) (map[string]Quote, error)
}

// MarketAsset is one row of the market-cap ranking.
type MarketAsset struct {
	ID        string
	Symbol    string
	Name      string
	Price     decimal.Decimal
	MarketCap decimal.Decimal
	Change24h *decimal.Decimal
	Rank      int
}

type PricePoint struct {
	Time  time.Time
	Price decimal.Decimal
}

type GlobalStats struct {
	TotalMarketCapUSD decimal.Decimal
	TotalVolumeUSD    decimal.Decimal
	BTCDominance      decimal.Decimal
	ETHDominance      decimal.Decimal
	ActiveAssets      int
	Markets           int
}

// SearchResult is an asset matching a search query. Rank is zero when the asset
// is unranked.
type SearchResult struct {
	ID     string
	Symbol string
	Name   string
	Rank   int
}

// MarketData serves market-wide views beyond spot quotes. Failures wrap
// ErrUnavailable; an unknown asset wraps ErrAssetNotFound.
type MarketData interface {
	TopAssets(ctx context.Context, limit int) ([]MarketAsset, error)
	PriceHistory(ctx context.Context, assetID string, days int) ([]PricePoint, error)
	GlobalStats(ctx context.Context) (GlobalStats, error)
	Search(ctx context.Context, query string) ([]SearchResult, error)
}

// FearGreed is a reading of the crypto fear and greed index, 0 to 100.
type FearGreed struct {
	Value          int
	Classification string
	Timestamp      time.Time
	NextUpdate     time.Duration
}

type SentimentSource interface {
	FearGreed(ctx context.Context) (FearGreed, error)
}
