package telegram

import (
	"fmt"
	"strings"
	"time"

	"github.com/NasaVasa/cryptobot/internal/domain"
	"github.com/NasaVasa/cryptobot/internal/usecase"
	"github.com/shopspring/decimal"
)

const maxMessageLen = 3800

var one = decimal.NewFromInt(1)

// formatPrice shows sub-dollar prices with more precision.
func formatPrice(value decimal.Decimal) string {
	if value.Abs().LessThan(one) {
		return "$" + usecase.FormatAmount(value, 6)
	}
	return usecase.FormatUSD(value)
}

func formatChange(change *decimal.Decimal) string {
	if change == nil {
		return "N/A"
	}
	icon := "📈"
	sign := "+"
	if change.IsNegative() {
		icon, sign = "📉", ""
	}
	return fmt.Sprintf("%s %s%s%%", icon, sign, change.StringFixed(2))
}

func formatQuote(assetID string, quote domain.Quote) string {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("💰 %s\n\n", usecase.DisplayName(assetID)))
	builder.WriteString(fmt.Sprintf("USD: %s\n", formatPrice(quote.USD)))
	if quote.EUR != nil {
		builder.WriteString(fmt.Sprintf("EUR: €%s\n", usecase.FormatAmount(*quote.EUR, 2)))
	}
	if quote.RUB != nil {
		builder.WriteString(fmt.Sprintf("RUB: ₽%s\n", usecase.FormatAmount(*quote.RUB, 2)))
	}
	builder.WriteString(fmt.Sprintf("24h: %s", formatChange(quote.Change24h)))
	return builder.String()
}

func formatRates(rates []usecase.Rate) string {
	if len(rates) == 0 {
		return "No rates available right now."
	}
	var builder strings.Builder
	builder.WriteString("📊 Popular assets\n\n")
	for _, rate := range rates {
		builder.WriteString(fmt.Sprintf("%s: %s %s\n", rate.Ticker, formatPrice(rate.Quote.USD), formatChange(rate.Quote.Change24h)))
	}
	return builder.String()
}

func formatExchange(exchange usecase.Exchange) string {
	return fmt.Sprintf(
		"💱 %s %s = %s %s\n\n1 %s = %s\n1 %s = %s",
		exchange.Amount.String(), usecase.DisplayName(exchange.From),
		exchange.Result.String(), usecase.DisplayName(exchange.To),
		usecase.DisplayName(exchange.From), formatPrice(exchange.FromRate),
		usecase.DisplayName(exchange.To), formatPrice(exchange.ToRate),
	)
}

func formatTop(assets []domain.MarketAsset) string {
	if len(assets) == 0 {
		return "No market data available right now."
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("🏆 Top %d by market cap\n\n", len(assets)))
	for i, asset := range assets {
		entry := fmt.Sprintf(
			"%d. %s (%s)\n   %s %s\n   Market cap: $%s\n",
			asset.Rank, asset.Name, asset.Symbol,
			formatPrice(asset.Price), formatChange(asset.Change24h),
			usecase.FormatAmount(asset.MarketCap, 0),
		)
		if builder.Len()+len(entry) > maxMessageLen {
			builder.WriteString(fmt.Sprintf("...and %d more\n", len(assets)-i))
			break
		}
		builder.WriteString(entry)
	}
	return strings.TrimRight(builder.String(), "\n")
}

func formatPriceHistory(history usecase.PriceHistory) string {
	period := fmt.Sprintf("%d days", history.Days)
	if history.Days == 1 {
		period = "1 day"
	}
	return fmt.Sprintf(
		"📊 %s, last %s\n\nNow: %s\n%s ago: %s\nHigh: %s\nLow: %s\n\nChange: %s",
		usecase.DisplayName(history.AssetID), period,
		formatPrice(history.Current),
		period, formatPrice(history.Start),
		formatPrice(history.High),
		formatPrice(history.Low),
		formatChange(history.Change),
	)
}

func formatGlobalStats(stats domain.GlobalStats) string {
	return fmt.Sprintf(
		"🌍 Crypto market\n\nMarket cap: $%s\n24h volume: $%s\nActive assets: %s\nMarkets: %s\n\nDominance:\nBitcoin: %s%%\nEthereum: %s%%",
		usecase.FormatAmount(stats.TotalMarketCapUSD, 0),
		usecase.FormatAmount(stats.TotalVolumeUSD, 0),
		usecase.FormatAmount(decimal.NewFromInt(int64(stats.ActiveAssets)), 0),
		usecase.FormatAmount(decimal.NewFromInt(int64(stats.Markets)), 0),
		stats.BTCDominance.StringFixed(2),
		stats.ETHDominance.StringFixed(2),
	)
}

var moodIcons = map[string]string{
	"Extreme fear":  "😱",
	"Fear":          "😨",
	"Neutral":       "😐",
	"Greed":         "😊",
	"Extreme greed": "🤩",
}

func formatFearGreed(sentiment usecase.Sentiment) string {
	text := fmt.Sprintf(
		"%s Fear and greed index\n\nValue: %d/100\nClassification: %s\nMood: %s",
		moodIcons[sentiment.Mood], sentiment.Value, sentiment.Classification, sentiment.Mood,
	)
	if sentiment.NextUpdate > 0 {
		next := sentiment.NextUpdate.Truncate(time.Minute)
		text += fmt.Sprintf("\nNext update in %dh %02dm", int(next.Hours()), int(next.Minutes())%60)
	}
	return text
}

func formatSearch(query string, results []domain.SearchResult) string {
	if len(results) == 0 {
		return fmt.Sprintf("Nothing found for %q.", query)
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("🔍 Results for %q\n\n", query))
	for i, result := range results {
		builder.WriteString(fmt.Sprintf("%d. %s (%s)\n   id: %s", i+1, result.Name, result.Symbol, result.ID))
		if result.Rank > 0 {
			builder.WriteString(fmt.Sprintf(", rank #%d", result.Rank))
		}
		builder.WriteString("\n")
	}
	builder.WriteString("\nUse the id with /price or /history.")
	return builder.String()
}

func formatPortfolio(view usecase.PortfolioView) string {
	if len(view.Items) == 0 {
		return "Your portfolio is empty. Use /add <asset> <quantity> to add a holding."
	}

	var builder strings.Builder
	builder.WriteString("💼 Your portfolio\n\n")
	for i, item := range view.Items {
		line := fmt.Sprintf("%s: %s", usecase.DisplayName(item.Holding.AssetID), item.Holding.Quantity.String())
		if item.Value != nil {
			line += fmt.Sprintf(" × %s = %s", formatPrice(*item.Price), usecase.FormatUSD(*item.Value))
		} else {
			line += " (price N/A)"
		}
		if builder.Len()+len(line) > maxMessageLen {
			builder.WriteString(fmt.Sprintf("...and %d more holdings\n", len(view.Items)-i))
			break
		}
		builder.WriteString(line + "\n")
	}
	builder.WriteString(fmt.Sprintf("\nTotal: %s", usecase.FormatUSD(view.Total)))
	return builder.String()
}

func formatFavorites(views []usecase.FavoriteView) string {
	if len(views) == 0 {
		return "No favorites yet. Use /fav <asset> to add one."
	}
	var builder strings.Builder
	builder.WriteString("⭐ Your favorites\n\n")
	for _, view := range views {
		if view.Quote == nil {
			builder.WriteString(fmt.Sprintf("%s: N/A\n", usecase.DisplayName(view.AssetID)))
			continue
		}
		builder.WriteString(fmt.Sprintf(
			"%s: %s %s\n",
			usecase.DisplayName(view.AssetID), formatPrice(view.Quote.USD), formatChange(view.Quote.Change24h),
		))
	}
	return builder.String()
}

func formatAlertCondition(alert domain.Alert) string {
	return fmt.Sprintf("%s %s %s", usecase.DisplayName(alert.AssetID), alert.Direction, formatPrice(alert.TargetPrice))
}

func formatAlertCreated(view usecase.AlertView) string {
	text := "🔔 Alert created: " + formatAlertCondition(view.Alert)
	if view.CurrentPrice != nil {
		text += "\nCurrent price: " + formatPrice(*view.CurrentPrice)
	}
	return text
}

func formatAlerts(views []usecase.AlertView) string {
	if len(views) == 0 {
		return "No alerts yet. Use /alert <asset> <price> <above|below> to create one."
	}

	var builder strings.Builder
	builder.WriteString("🔔 Your alerts\n\n")
	for i, view := range views {
		current := "N/A"
		if view.CurrentPrice != nil {
			current = formatPrice(*view.CurrentPrice)
		}
		line := fmt.Sprintf("%d. %s (now %s)\n", i+1, formatAlertCondition(view.Alert), current)
		if builder.Len()+len(line) > maxMessageLen {
			builder.WriteString(fmt.Sprintf("...and %d more alerts\n", len(views)-i))
			break
		}
		builder.WriteString(line)
	}
	builder.WriteString("\nDelete one with /delalert <n>.")
	return builder.String()
}

func formatHistory(records []domain.PaymentRecord) string {
	if len(records) == 0 {
		return ""
	}
	const shown = 5
	if len(records) > shown {
		records = records[len(records)-shown:]
	}
	var builder strings.Builder
	builder.WriteString("\n\nRecent deposits:\n")
	for _, record := range records {
		builder.WriteString(fmt.Sprintf(
			"%s  +%s %s\n",
			record.CompletedAt.UTC().Format("2006-01-02 15:04"), usecase.FormatAmount(record.Amount, 2), record.Currency,
		))
	}
	return strings.TrimRight(builder.String(), "\n")
}
