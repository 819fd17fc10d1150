package coingecko

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/NasaVasa/cryptobot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, time.Second, zaptest.NewLogger(t))
}

func TestTopAssets(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/coins/markets", r.URL.Path)
		assert.Equal(t, "usd", r.URL.Query().Get("vs_currency"))
		assert.Equal(t, "market_cap_desc", r.URL.Query().Get("order"))
		assert.Equal(t, "2", r.URL.Query().Get("per_page"))
		_, _ = w.Write([]byte(`[
			{"id": "bitcoin", "symbol": "btc", "name": "Bitcoin", "current_price": 50000, "market_cap": 980000000000, "market_cap_rank": 1, "price_change_percentage_24h": 2.5},
			{"id": "ethereum", "symbol": "eth", "name": "Ethereum", "current_price": 2500.5, "market_cap": 300000000000, "market_cap_rank": null, "price_change_percentage_24h": null}
		]`))
	})

	assets, err := client.TopAssets(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, assets, 2)

	assert.Equal(t, "BTC", assets[0].Symbol)
	assert.Equal(t, "50000", assets[0].Price.String())
	assert.Equal(t, "980000000000", assets[0].MarketCap.String())
	require.NotNil(t, assets[0].Change24h)
	assert.Equal(t, "2.5", assets[0].Change24h.String())
	assert.Equal(t, 1, assets[0].Rank)

	assert.Equal(t, "Ethereum", assets[1].Name)
	assert.Nil(t, assets[1].Change24h)
	assert.Equal(t, 2, assets[1].Rank)
}

func TestPriceHistory(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/coins/bitcoin/market_chart", r.URL.Path)
		assert.Equal(t, "30", r.URL.Query().Get("days"))
		_, _ = w.Write([]byte(`{"prices": [[1700000000000, 36000.5], [1700086400000, 37000], [1700172800000]]}`))
	})

	points, err := client.PriceHistory(context.Background(), "bitcoin", 30)
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, time.UnixMilli(1700000000000).UTC(), points[0].Time)
	assert.Equal(t, "36000.5", points[0].Price.String())
	assert.Equal(t, "37000", points[1].Price.String())
}

func TestPriceHistoryUnknownAsset(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error": "coin not found"}`))
	})

	_, err := client.PriceHistory(context.Background(), "notacoin", 7)
	assert.ErrorIs(t, err, domain.ErrAssetNotFound)
}

func TestGlobalStats(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/global", r.URL.Path)
		assert.Empty(t, r.URL.RawQuery)
		_, _ = w.Write([]byte(`{"data": {
			"active_cryptocurrencies": 12000,
			"markets": 950,
			"total_market_cap": {"usd": 1800000000000, "eur": 1650000000000},
			"total_volume": {"usd": 75000000000},
			"market_cap_percentage": {"btc": 52.31, "eth": 16.9}
		}}`))
	})

	stats, err := client.GlobalStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1800000000000", stats.TotalMarketCapUSD.String())
	assert.Equal(t, "75000000000", stats.TotalVolumeUSD.String())
	assert.Equal(t, "52.31", stats.BTCDominance.String())
	assert.Equal(t, "16.9", stats.ETHDominance.String())
	assert.Equal(t, 12000, stats.ActiveAssets)
	assert.Equal(t, 950, stats.Markets)
}

func TestSearch(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "shiba inu", r.URL.Query().Get("query"))
		_, _ = w.Write([]byte(`{"coins": [
			{"id": "shiba-inu", "name": "Shiba Inu", "symbol": "shib", "market_cap_rank": 14},
			{"id": "shiba-fork", "name": "Shiba Fork", "symbol": "sfork", "market_cap_rank": null}
		], "exchanges": []}`))
	})

	results, err := client.Search(context.Background(), " shiba inu ")
	require.NoError(t, err)
	assert.Equal(t, []domain.SearchResult{
		{ID: "shiba-inu", Name: "Shiba Inu", Symbol: "SHIB", Rank: 14},
		{ID: "shiba-fork", Name: "Shiba Fork", Symbol: "SFORK"},
	}, results)
}

func TestMarketEndpointsUnavailable(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})
	ctx := context.Background()

	_, err := client.TopAssets(ctx, 10)
	assert.ErrorIs(t, err, domain.ErrUnavailable)
	_, err = client.GlobalStats(ctx)
	assert.ErrorIs(t, err, domain.ErrUnavailable)
	_, err = client.Search(ctx, "btc")
	assert.ErrorIs(t, err, domain.ErrUnavailable)
}
