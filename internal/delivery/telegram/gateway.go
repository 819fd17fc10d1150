package telegram

import (
	"context"
	"fmt"
	"time"

	"github.com/NasaVasa/cryptobot/internal/domain"
	"github.com/NasaVasa/cryptobot/internal/usecase"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Notifier sends alert messages to users. Private chats share the user's id, so
// the user id is used as the chat id.
type Notifier struct {
	api     BotAPI
	timeout time.Duration
	logger  *zap.Logger
}

func NewNotifier(api BotAPI, timeout time.Duration, logger *zap.Logger) *Notifier {
	return &Notifier{api: api, timeout: timeout, logger: logger}
}

func (n *Notifier) Notify(ctx context.Context, userID domain.UserID, text string) error {
	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	n.logger.Debug("telegram notify send", zap.Int64("user_id", userID))
	err := callWithContext(ctx, func() error {
		_, err := n.api.Send(tgbotapi.NewMessage(userID, text))
		return err
	})
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrDeliveryFailed, err)
	}
	return nil
}

// InvoiceGateway issues Telegram Payments invoices and answers pre-checkout
// queries.
type InvoiceGateway struct {
	api           BotAPI
	providerToken string
	logger        *zap.Logger
}

func NewInvoiceGateway(api BotAPI, providerToken string, logger *zap.Logger) *InvoiceGateway {
	return &InvoiceGateway{api: api, providerToken: providerToken, logger: logger}
}

func (g *InvoiceGateway) SendInvoice(ctx context.Context, invoice domain.Invoice) error {
	amount := usecase.FormatAmount(invoice.Amount, 2)
	config := tgbotapi.NewInvoice(
		invoice.ChatID,
		"Balance top-up",
		fmt.Sprintf("Deposit of %s %s to your CryptoBot balance", amount, invoice.Currency),
		invoice.PayloadID,
		g.providerToken,
		"deposit",
		invoice.Currency,
		[]tgbotapi.LabeledPrice{{Label: "Deposit", Amount: int(invoice.AmountMinorUnits)}},
	)
	// a nil slice is encoded as null, which Telegram rejects
	config.SuggestedTipAmounts = []int{}

	return callWithContext(ctx, func() error {
		_, err := g.api.Send(config)
		return err
	})
}

func (g *InvoiceGateway) AnswerPreCheckout(ctx context.Context, queryID string, accept bool, reason string) error {
	config := tgbotapi.PreCheckoutConfig{
		PreCheckoutQueryID: queryID,
		OK:                 accept,
		ErrorMessage:       reason,
	}
	return callWithContext(ctx, func() error {
		_, err := g.api.Request(config)
		return err
	})
}

// callWithContext runs call and gives up when ctx is done. The Telegram client
// takes no context, so an abandoned call finishes in the background.
func callWithContext(ctx context.Context, call func() error) error {
	done := make(chan error, 1)
	go func() {
		done <- call()
	}()
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
