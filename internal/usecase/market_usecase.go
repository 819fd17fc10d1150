package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/NasaVasa/cryptobot/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	defaultTopLimit    = 10
	maxTopLimit        = 50
	defaultHistoryDays = 7
	maxSearchResults   = 10
)

// historyDays are the chart ranges offered to users.
var historyDays = []int{1, 7, 30, 90, 365}

type MarketUsecase struct {
	oracle    domain.PriceOracle
	market    domain.MarketData
	sentiment domain.SentimentSource
}

type Rate struct {
	AssetID string
	Ticker  string
	Quote   domain.Quote
}

type Exchange struct {
	From     string
	To       string
	Amount   decimal.Decimal
	Result   decimal.Decimal
	FromRate decimal.Decimal
	ToRate   decimal.Decimal
}

// PriceHistory summarizes the USD price of an asset over Days.
type PriceHistory struct {
	AssetID string
	Days    int
	Start   decimal.Decimal
	Current decimal.Decimal
	High    decimal.Decimal
	Low     decimal.Decimal
	Change  *decimal.Decimal
}

type Sentiment struct {
	domain.FearGreed
	Mood string
}

func NewMarketUsecase(oracle domain.PriceOracle, market domain.MarketData, sentiment domain.SentimentSource) *MarketUsecase {
	return &MarketUsecase{oracle: oracle, market: market, sentiment: sentiment}
}

func (u *MarketUsecase) Price(ctx context.Context, asset string) (string, domain.Quote, error) {
	return lookupAsset(ctx, u.oracle, asset)
}

// Rates quotes the popular assets in one request, in display order.
func (u *MarketUsecase) Rates(ctx context.Context) ([]Rate, error) {
	quotes, err := u.oracle.FetchQuotes(ctx, domain.PopularAssetIDs())
	if err != nil {
		return nil, err
	}
	rates := make([]Rate, 0, len(domain.PopularAssets))
	for _, asset := range domain.PopularAssets {
		quote, ok := quotes[asset.ID]
		if !ok {
			continue
		}
		rates = append(rates, Rate{AssetID: asset.ID, Ticker: strings.ToUpper(asset.Ticker), Quote: quote})
	}
	return rates, nil
}

// Exchange converts amount of from into to through their USD prices. An empty
// amount means 1.
func (u *MarketUsecase) Exchange(ctx context.Context, from, to, amount string) (Exchange, error) {
	value := decimal.NewFromInt(1)
	if strings.TrimSpace(amount) != "" {
		parsed, err := parsePositiveDecimal(amount)
		if err != nil {
			return Exchange{}, err
		}
		value = parsed
	}

	fromID, toID := domain.ResolveAssetID(from), domain.ResolveAssetID(to)
	quotes, err := u.oracle.FetchQuotes(ctx, []string{fromID, toID})
	if err != nil {
		return Exchange{}, err
	}
	fromQuote, ok := quotes[fromID]
	if !ok {
		return Exchange{}, fmt.Errorf("%w: %s", domain.ErrAssetNotFound, fromID)
	}
	toQuote, ok := quotes[toID]
	if !ok || toQuote.USD.IsZero() {
		return Exchange{}, fmt.Errorf("%w: %s", domain.ErrAssetNotFound, toID)
	}

	return Exchange{
		From:     fromID,
		To:       toID,
		Amount:   value,
		Result:   value.Mul(fromQuote.USD).DivRound(toQuote.USD, 8),
		FromRate: fromQuote.USD,
		ToRate:   toQuote.USD,
	}, nil
}

// Top returns the largest assets by market cap. A non-positive limit means the
// default, larger limits are capped.
func (u *MarketUsecase) Top(ctx context.Context, limit int) ([]domain.MarketAsset, error) {
	switch {
	case limit <= 0:
		limit = defaultTopLimit
	case limit > maxTopLimit:
		limit = maxTopLimit
	}
	assets, err := u.market.TopAssets(ctx, limit)
	if err != nil {
		return nil, err
	}
	if len(assets) > limit {
		assets = assets[:limit]
	}
	return assets, nil
}

// History summarizes the price of asset over days. Ranges other than the
// offered ones fall back to a week.
func (u *MarketUsecase) History(ctx context.Context, asset string, days int) (PriceHistory, error) {
	if !slices.Contains(historyDays, days) {
		days = defaultHistoryDays
	}
	assetID := domain.ResolveAssetID(asset)
	if assetID == "" {
		return PriceHistory{}, fmt.Errorf("%w: empty asset", domain.ErrAssetNotFound)
	}

	points, err := u.market.PriceHistory(ctx, assetID, days)
	if err != nil {
		return PriceHistory{}, err
	}
	if len(points) == 0 {
		return PriceHistory{}, fmt.Errorf("%w: no price history for %s", domain.ErrUnavailable, assetID)
	}

	history := PriceHistory{
		AssetID: assetID,
		Days:    days,
		Start:   points[0].Price,
		Current: points[len(points)-1].Price,
		High:    points[0].Price,
		Low:     points[0].Price,
	}
	for _, point := range points[1:] {
		history.High = decimal.Max(history.High, point.Price)
		history.Low = decimal.Min(history.Low, point.Price)
	}
	if !history.Start.IsZero() {
		change := history.Current.Sub(history.Start).Div(history.Start).Mul(decimal.NewFromInt(100)).Round(2)
		history.Change = &change
	}
	return history, nil
}

func (u *MarketUsecase) Global(ctx context.Context) (domain.GlobalStats, error) {
	return u.market.GlobalStats(ctx)
}

func (u *MarketUsecase) FearGreed(ctx context.Context) (Sentiment, error) {
	reading, err := u.sentiment.FearGreed(ctx)
	if err != nil {
		return Sentiment{}, err
	}
	return Sentiment{FearGreed: reading, Mood: Mood(reading.Value)}, nil
}

// Mood buckets a fear and greed value.
func Mood(value int) string {
	switch {
	case value <= 25:
		return "Extreme fear"
	case value <= 45:
		return "Fear"
	case value <= 55:
		return "Neutral"
	case value <= 75:
		return "Greed"
	default:
		return "Extreme greed"
	}
}

// Search returns at most ten assets matching query.
func (u *MarketUsecase) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: empty query", domain.ErrAssetNotFound)
	}
	results, err := u.market.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(results) > maxSearchResults {
		results = results[:maxSearchResults]
	}
	return results, nil
}
