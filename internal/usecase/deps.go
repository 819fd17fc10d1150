package usecase

import (
	"context"

	"github.com/NasaVasa/cryptobot/internal/domain"
)

//go:generate mockgen -source=deps.go -destination=mock_deps_test.go -package=usecase
//go:generate mockgen -destination=mock_domain_test.go -package=usecase github.com/NasaVasa/cryptobot/internal/domain PriceOracle,PaymentLedger,MarketData,SentimentSource

// Notifier delivers a text message to a user.
type Notifier interface {
	Notify(ctx context.Context, userID domain.UserID, text string) error
}

// PaymentGateway issues invoices and answers pre-checkout queries.
type PaymentGateway interface {
	SendInvoice(ctx context.Context, invoice domain.Invoice) error
	AnswerPreCheckout(ctx context.Context, queryID string, accept bool, reason string) error
}
