package coingecko

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/NasaVasa/cryptobot/internal/domain"
)

// TopAssets returns the limit largest assets by market cap.
func (c *Client) TopAssets(ctx context.Context, limit int) ([]domain.MarketAsset, error) {
	query := url.Values{}
	query.Set("vs_currency", "usd")
	query.Set("order", "market_cap_desc")
	query.Set("per_page", strconv.Itoa(limit))
	query.Set("page", "1")
	query.Set("sparkline", "false")

	var rows []marketRow
	if err := c.getJSON(ctx, "/coins/markets", query, &rows); err != nil {
		return nil, err
	}

	assets := make([]domain.MarketAsset, 0, len(rows))
	for i, row := range rows {
		assets = append(assets, row.toAsset(i+1))
	}
	return assets, nil
}

// PriceHistory returns USD prices of assetID over the last days, oldest first.
func (c *Client) PriceHistory(ctx context.Context, assetID string, days int) ([]domain.PricePoint, error) {
	query := url.Values{}
	query.Set("vs_currency", "usd")
	query.Set("days", strconv.Itoa(days))

	var chart marketChartResponse
	path := fmt.Sprintf("/coins/%s/market_chart", url.PathEscape(assetID))
	if err := c.getJSON(ctx, path, query, &chart); err != nil {
		return nil, err
	}

	points := make([]domain.PricePoint, 0, len(chart.Prices))
	for _, pair := range chart.Prices {
		if len(pair) < 2 {
			continue
		}
		points = append(points, domain.PricePoint{
			Time:  time.UnixMilli(pair[0].IntPart()).UTC(),
			Price: pair[1],
		})
	}
	return points, nil
}

func (c *Client) GlobalStats(ctx context.Context) (domain.GlobalStats, error) {
	var payload globalResponse
	if err := c.getJSON(ctx, "/global", nil, &payload); err != nil {
		return domain.GlobalStats{}, err
	}

	data := payload.Data
	return domain.GlobalStats{
		TotalMarketCapUSD: data.TotalMarketCap["usd"],
		TotalVolumeUSD:    data.TotalVolume["usd"],
		BTCDominance:      data.MarketCapPercentage["btc"],
		ETHDominance:      data.MarketCapPercentage["eth"],
		ActiveAssets:      data.ActiveCryptocurrencies,
		Markets:           data.Markets,
	}, nil
}

// Search looks assets up by name, ticker or id.
func (c *Client) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	values := url.Values{}
	values.Set("query", strings.TrimSpace(query))

	var payload searchResponse
	if err := c.getJSON(ctx, "/search", values, &payload); err != nil {
		return nil, err
	}

	results := make([]domain.SearchResult, 0, len(payload.Coins))
	for _, coin := range payload.Coins {
		result := domain.SearchResult{ID: coin.ID, Name: coin.Name, Symbol: strings.ToUpper(coin.Symbol)}
		if coin.Rank != nil {
			result.Rank = *coin.Rank
		}
		results = append(results, result)
	}
	return results, nil
}
