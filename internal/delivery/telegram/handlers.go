package telegram

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/NasaVasa/cryptobot/internal/domain"
	"github.com/NasaVasa/cryptobot/internal/usecase"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type Handlers struct {
	api         BotAPI
	marketUC    *usecase.MarketUsecase
	alertUC     *usecase.AlertUsecase
	portfolioUC *usecase.PortfolioUsecase
	favoritesUC *usecase.FavoritesUsecase
	payments    *usecase.PaymentService
	sendTimeout time.Duration
	logger      *zap.Logger
}

func NewHandlers(
	api BotAPI,
	marketUC *usecase.MarketUsecase,
	alertUC *usecase.AlertUsecase,
	portfolioUC *usecase.PortfolioUsecase,
	favoritesUC *usecase.FavoritesUsecase,
	payments *usecase.PaymentService,
	sendTimeout time.Duration,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		api:         api,
		marketUC:    marketUC,
		alertUC:     alertUC,
		portfolioUC: portfolioUC,
		favoritesUC: favoritesUC,
		payments:    payments,
		sendTimeout: sendTimeout,
		logger:      logger,
	}
}

func (h *Handlers) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.PreCheckoutQuery != nil {
		h.handlePreCheckout(ctx, update.PreCheckoutQuery)
		return
	}
	if update.Message == nil || update.Message.From == nil || update.Message.Chat == nil {
		return
	}
	if update.Message.SuccessfulPayment != nil {
		h.handleSuccessfulPayment(ctx, update.Message)
		return
	}
	if update.Message.IsCommand() {
		h.handleCommand(ctx, update.Message)
	}
}

func (h *Handlers) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	command := msg.Command()
	args := msg.CommandArguments()
	chatID := msg.Chat.ID
	userID := msg.From.ID

	h.logger.Info(
		"telegram command received",
		zap.Int64("chat_id", chatID),
		zap.Int64("user_id", userID),
		zap.String("username", msg.From.UserName),
		zap.String("command", command),
		zap.String("args", args),
	)

	switch command {
	case "start":
		h.reply(ctx, chatID, "Welcome to CryptoBot 👋\nTrack prices, your portfolio and price alerts.\n\n"+HelpText)
	case "help":
		h.reply(ctx, chatID, HelpText)
	case "price":
		asset, err := ParseSingleArg(args)
		if err != nil {
			h.reply(ctx, chatID, "Usage: /price <asset>\nExample: /price bitcoin")
			return
		}
		assetID, quote, err := h.marketUC.Price(ctx, asset)
		if err != nil {
			h.fail(ctx, chatID, userID, command, err)
			return
		}
		h.reply(ctx, chatID, formatQuote(assetID, quote))
	case "rates":
		rates, err := h.marketUC.Rates(ctx)
		if err != nil {
			h.fail(ctx, chatID, userID, command, err)
			return
		}
		h.reply(ctx, chatID, formatRates(rates))
	case "exchange":
		parsed, err := ParseExchangeArgs(args)
		if err != nil {
			h.reply(ctx, chatID, "Usage: /exchange <from> <to> [amount]\nExample: /exchange btc eth 0.5")
			return
		}
		exchange, err := h.marketUC.Exchange(ctx, parsed.From, parsed.To, parsed.Amount)
		if err != nil {
			h.fail(ctx, chatID, userID, command, err)
			return
		}
		h.reply(ctx, chatID, formatExchange(exchange))
	case "top":
		limit, err := ParseCount(args)
		if err != nil {
			h.reply(ctx, chatID, "Usage: /top [n]\nExample: /top 20")
			return
		}
		assets, err := h.marketUC.Top(ctx, limit)
		if err != nil {
			h.fail(ctx, chatID, userID, command, err)
			return
		}
		h.reply(ctx, chatID, formatTop(assets))
	case "history":
		parsed, err := ParseHistoryArgs(args)
		if err != nil {
			h.reply(ctx, chatID, "Usage: /history <asset> [days]\nDays: 1, 7, 30, 90 or 365. Example: /history btc 30")
			return
		}
		history, err := h.marketUC.History(ctx, parsed.Asset, parsed.Days)
		if err != nil {
			h.fail(ctx, chatID, userID, command, err)
			return
		}
		h.reply(ctx, chatID, formatPriceHistory(history))
	case "market":
		stats, err := h.marketUC.Global(ctx)
		if err != nil {
			h.fail(ctx, chatID, userID, command, err)
			return
		}
		h.reply(ctx, chatID, formatGlobalStats(stats))
	case "feargreed":
		sentiment, err := h.marketUC.FearGreed(ctx)
		if err != nil {
			h.fail(ctx, chatID, userID, command, err)
			return
		}
		h.reply(ctx, chatID, formatFearGreed(sentiment))
	case "search":
		query, err := ParseQuery(args)
		if err != nil {
			h.reply(ctx, chatID, "Usage: /search <query>\nExample: /search shiba inu")
			return
		}
		results, err := h.marketUC.Search(ctx, query)
		if err != nil {
			h.fail(ctx, chatID, userID, command, err)
			return
		}
		h.reply(ctx, chatID, formatSearch(query, results))
	case "portfolio":
		h.reply(ctx, chatID, formatPortfolio(h.portfolioUC.Portfolio(ctx, userID)))
	case "add":
		parsed, err := ParseHoldingArgs(args)
		if err != nil {
			h.reply(ctx, chatID, "Usage: /add <asset> <quantity>\nExample: /add btc 0.5")
			return
		}
		assetID, total, err := h.portfolioUC.AddHolding(ctx, userID, parsed.Asset, parsed.Quantity)
		if err != nil {
			h.fail(ctx, chatID, userID, command, err)
			return
		}
		h.logger.Info("holding added", zap.Int64("user_id", userID), zap.String("asset_id", assetID), zap.String("total", total.String()))
		h.reply(ctx, chatID, fmt.Sprintf("✅ Added to portfolio. You now hold %s %s.", total.String(), usecase.DisplayName(assetID)))
	case "remove":
		asset, err := ParseSingleArg(args)
		if err != nil {
			h.reply(ctx, chatID, "Usage: /remove <asset>\nExample: /remove btc")
			return
		}
		assetID, err := h.portfolioUC.RemoveHolding(userID, asset)
		if err != nil {
			h.fail(ctx, chatID, userID, command, err)
			return
		}
		h.reply(ctx, chatID, fmt.Sprintf("🗑 %s removed from your portfolio.", usecase.DisplayName(assetID)))
	case "favorites":
		h.reply(ctx, chatID, formatFavorites(h.favoritesUC.ListFavorites(ctx, userID)))
	case "fav":
		asset, err := ParseSingleArg(args)
		if err != nil {
			h.reply(ctx, chatID, "Usage: /fav <asset>\nExample: /fav solana")
			return
		}
		assetID, result, err := h.favoritesUC.AddFavorite(ctx, userID, asset)
		if err != nil {
			h.fail(ctx, chatID, userID, command, err)
			return
		}
		if result == domain.FavoriteAlreadyPresent {
			h.reply(ctx, chatID, fmt.Sprintf("%s is already in your favorites.", usecase.DisplayName(assetID)))
			return
		}
		h.reply(ctx, chatID, fmt.Sprintf("⭐ %s added to favorites.", usecase.DisplayName(assetID)))
	case "unfav":
		asset, err := ParseSingleArg(args)
		if err != nil {
			h.reply(ctx, chatID, "Usage: /unfav <asset>\nExample: /unfav solana")
			return
		}
		assetID, err := h.favoritesUC.RemoveFavorite(userID, asset)
		if err != nil {
			h.fail(ctx, chatID, userID, command, err)
			return
		}
		h.reply(ctx, chatID, fmt.Sprintf("%s removed from favorites.", usecase.DisplayName(assetID)))
	case "alert":
		parsed, err := ParseAlertArgs(args)
		if err != nil {
			h.reply(ctx, chatID, "Usage: /alert <asset> <price> <above|below>\nExample: /alert btc 50000 above")
			return
		}
		view, err := h.alertUC.AddAlert(ctx, userID, parsed.Asset, parsed.Price, parsed.Direction)
		if err != nil {
			h.fail(ctx, chatID, userID, command, err)
			return
		}
		h.logger.Info(
			"alert created",
			zap.Int64("user_id", userID),
			zap.Uint64("alert_id", view.Alert.ID),
			zap.String("asset_id", view.Alert.AssetID),
		)
		h.reply(ctx, chatID, formatAlertCreated(view))
	case "alerts":
		h.reply(ctx, chatID, formatAlerts(h.alertUC.ListAlerts(ctx, userID)))
	case "delalert":
		position, err := ParsePosition(args)
		if err != nil {
			h.reply(ctx, chatID, "Usage: /delalert <n>\nUse the number shown in /alerts, e.g. /delalert 1")
			return
		}
		removed, err := h.alertUC.DeleteAlert(userID, position)
		if err != nil {
			h.fail(ctx, chatID, userID, command, err)
			return
		}
		h.reply(ctx, chatID, fmt.Sprintf("🗑 Alert #%d deleted: %s", position, formatAlertCondition(removed)))
	case "balance":
		h.reply(ctx, chatID, h.balanceText(ctx, userID))
	case "deposit":
		h.handleDeposit(ctx, chatID, userID, args)
	default:
		h.logger.Warn("unknown command", zap.Int64("user_id", userID), zap.String("command", command))
		h.reply(ctx, chatID, "Unknown command.\n\n"+HelpText)
	}
}

func (h *Handlers) handleDeposit(ctx context.Context, chatID int64, userID domain.UserID, args string) {
	minimum, maximum, currency := h.payments.Limits()
	if !h.payments.Enabled() {
		h.reply(ctx, chatID, "💳 Deposits are temporarily unavailable. Please try again later.")
		return
	}
	amount, err := ParseSingleArg(args)
	if err != nil {
		h.reply(ctx, chatID, fmt.Sprintf(
			"Usage: /deposit <amount>\nAmount must be between %s and %s %s.\nExample: /deposit %s",
			usecase.FormatAmount(minimum, 0), usecase.FormatAmount(maximum, 0), currency, minimum.String(),
		))
		return
	}

	invoice, err := h.payments.CreateDeposit(ctx, userID, chatID, amount)
	if errors.Is(err, domain.ErrInvalidAmount) {
		h.reply(ctx, chatID, fmt.Sprintf(
			"Invalid amount. Deposit must be between %s and %s %s.",
			usecase.FormatAmount(minimum, 0), usecase.FormatAmount(maximum, 0), currency,
		))
		return
	}
	if err != nil {
		h.fail(ctx, chatID, userID, "deposit", err)
		return
	}
	h.logger.Info("deposit invoice sent", zap.Int64("user_id", userID), zap.String("payload_id", invoice.PayloadID))
}

func (h *Handlers) handlePreCheckout(ctx context.Context, query *tgbotapi.PreCheckoutQuery) {
	var userID domain.UserID
	if query.From != nil {
		userID = query.From.ID
	}
	err := h.payments.PreCheckout(ctx, usecase.PreCheckout{
		QueryID:   query.ID,
		PayloadID: query.InvoicePayload,
		UserID:    userID,
	})
	if err != nil {
		h.logger.Warn("pre-checkout failed", zap.Int64("user_id", userID), zap.String("query_id", query.ID), zap.Error(err))
	}
}

func (h *Handlers) handleSuccessfulPayment(ctx context.Context, msg *tgbotapi.Message) {
	payment := msg.SuccessfulPayment
	userID := msg.From.ID

	completed, err := h.payments.CompletePayment(ctx, payment.InvoicePayload, userID, int64(payment.TotalAmount))
	switch {
	case errors.Is(err, domain.ErrDuplicatePayment):
		h.reply(ctx, msg.Chat.ID, "This payment has already been credited.")
		return
	case err != nil:
		h.logger.Error(
			"payment completion failed",
			zap.Int64("user_id", userID),
			zap.String("payload_id", payment.InvoicePayload),
			zap.String("charge_id", payment.TelegramPaymentChargeID),
			zap.Error(err),
		)
		h.reply(ctx, msg.Chat.ID, "We received your payment but could not credit it. Please contact support.")
		return
	}

	h.reply(ctx, msg.Chat.ID, fmt.Sprintf(
		"✅ Payment received!\n\nCredited: %s %s\nBalance: %s %s",
		usecase.FormatAmount(completed.Credited, 2), completed.Currency,
		usecase.FormatAmount(completed.Balance, 2), completed.Currency,
	))
}

func (h *Handlers) balanceText(ctx context.Context, userID domain.UserID) string {
	_, _, currency := h.payments.Limits()
	text := fmt.Sprintf("💰 Balance: %s %s", usecase.FormatAmount(h.payments.Balance(userID), 2), currency)

	history, err := h.payments.History(ctx, userID)
	if err != nil {
		h.logger.Warn("payment history unavailable", zap.Int64("user_id", userID), zap.Error(err))
		return text
	}
	return text + formatHistory(history)
}

// fail answers a failed command and logs it.
func (h *Handlers) fail(ctx context.Context, chatID int64, userID domain.UserID, command string, err error) {
	h.logger.Warn("command failed", zap.Int64("user_id", userID), zap.String("command", command), zap.Error(err))
	h.reply(ctx, chatID, h.errorMessage(err))
}

func (h *Handlers) errorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrAssetNotFound):
		return "Asset not found. Use a CoinGecko id like bitcoin or a ticker like BTC."
	case errors.Is(err, domain.ErrInvalidAmount):
		return "Invalid amount. Use a positive number like 0.5 or 50000."
	case errors.Is(err, domain.ErrInvalidDirection):
		return "Invalid direction. Use above or below, e.g. /alert btc 50000 above"
	case errors.Is(err, domain.ErrNotFound):
		return "Not found. Check /alerts, /portfolio or /favorites for what you have."
	case errors.Is(err, domain.ErrUnavailable):
		return "Market data is unavailable right now. Please try again in a minute."
	case errors.Is(err, domain.ErrPaymentsDisabled):
		return "💳 Deposits are temporarily unavailable. Please try again later."
	case errors.Is(err, domain.ErrGateway):
		return "Could not create the invoice. Please try again."
	}

	h.logger.Warn("unhandled error", zap.Error(err))
	return "Something went wrong. Please try again."
}

// reply sends text to chatID. A reply started before shutdown may still finish,
// but never runs past the send timeout.
func (h *Handlers) reply(ctx context.Context, chatID int64, text string) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), h.sendTimeout)
	defer cancel()

	err := callWithContext(ctx, func() error {
		_, err := h.api.Send(tgbotapi.NewMessage(chatID, text))
		return err
	})
	if err != nil {
		h.logger.Warn("failed to send message", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}
