package coingecko

import (
	"strings"

	"github.com/NasaVasa/cryptobot/internal/domain"
	"github.com/shopspring/decimal"
)

// simplePriceResponse is the body of /simple/price keyed by asset id.
type simplePriceResponse map[string]simplePrice

type simplePrice struct {
	USD          decimal.NullDecimal `json:"usd"`
	EUR          decimal.NullDecimal `json:"eur"`
	RUB          decimal.NullDecimal `json:"rub"`
	USDChange24h decimal.NullDecimal `json:"usd_24h_change"`
}

func (p simplePrice) toQuote() (domain.Quote, bool) {
	if !p.USD.Valid {
		return domain.Quote{}, false
	}
	return domain.Quote{
		USD:       p.USD.Decimal,
		EUR:       optional(p.EUR),
		RUB:       optional(p.RUB),
		Change24h: optional(p.USDChange24h),
	}, true
}

func optional(value decimal.NullDecimal) *decimal.Decimal {
	if !value.Valid {
		return nil
	}
	v := value.Decimal
	return &v
}

type marketRow struct {
	ID        string              `json:"id"`
	Symbol    string              `json:"symbol"`
	Name      string              `json:"name"`
	Price     decimal.NullDecimal `json:"current_price"`
	MarketCap decimal.NullDecimal `json:"market_cap"`
	Rank      *int                `json:"market_cap_rank"`
	Change24h decimal.NullDecimal `json:"price_change_percentage_24h"`
}

func (r marketRow) toAsset(position int) domain.MarketAsset {
	rank := position
	if r.Rank != nil {
		rank = *r.Rank
	}
	return domain.MarketAsset{
		ID:        r.ID,
		Symbol:    strings.ToUpper(r.Symbol),
		Name:      r.Name,
		Price:     r.Price.Decimal,
		MarketCap: r.MarketCap.Decimal,
		Change24h: optional(r.Change24h),
		Rank:      rank,
	}
}

// marketChartResponse holds [unix millis, price] pairs.
type marketChartResponse struct {
	Prices [][]decimal.Decimal `json:"prices"`
}

type globalResponse struct {
	Data struct {
		ActiveCryptocurrencies int                        `json:"active_cryptocurrencies"`
		Markets                int                        `json:"markets"`
		TotalMarketCap         map[string]decimal.Decimal `json:"total_market_cap"`
		TotalVolume            map[string]decimal.Decimal `json:"total_volume"`
		MarketCapPercentage    map[string]decimal.Decimal `json:"market_cap_percentage"`
	} `json:"data"`
}

type searchResponse struct {
	Coins []struct {
		ID     string `json:"id"`
		Name   string `json:"name"`
		Symbol string `json:"symbol"`
		Rank   *int   `json:"market_cap_rank"`
	} `json:"coins"`
}
