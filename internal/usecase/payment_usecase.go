package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/NasaVasa/cryptobot/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type PaymentConfig struct {
	Enabled             bool
	Currency            string
	MinDeposit          decimal.Decimal
	MaxDeposit          decimal.Decimal
	MinorUnitMultiplier int64
	GatewayTimeout      time.Duration
}

// PaymentService drives a deposit from invoice creation through pre-checkout to
// the balance credit. Only CompletePayment changes balances.
type PaymentService struct {
	balances domain.BalanceStore
	gateway  PaymentGateway
	ledger   domain.PaymentLedger
	cfg      PaymentConfig
	now      func() time.Time
	logger   *zap.Logger
}

type PreCheckout struct {
	QueryID   string
	PayloadID string
	UserID    domain.UserID
}

type CompletedPayment struct {
	PayloadID string
	UserID    domain.UserID
	Credited  decimal.Decimal
	Balance   decimal.Decimal
	Currency  string
}

// NewPaymentService builds the service. ledger may be nil, in which case
// duplicate confirmations are not detected.
func NewPaymentService(balances domain.BalanceStore, gateway PaymentGateway, ledger domain.PaymentLedger, cfg PaymentConfig, logger *zap.Logger) *PaymentService {
	return &PaymentService{
		balances: balances,
		gateway:  gateway,
		ledger:   ledger,
		cfg:      cfg,
		now:      time.Now,
		logger:   logger,
	}
}

func (s *PaymentService) Enabled() bool {
	return s.cfg.Enabled
}

func (s *PaymentService) Balance(userID domain.UserID) decimal.Decimal {
	return s.balances.GetBalance(userID)
}

func (s *PaymentService) Limits() (decimal.Decimal, decimal.Decimal, string) {
	return s.cfg.MinDeposit, s.cfg.MaxDeposit, s.cfg.Currency
}

// History returns the user's recorded deposits, oldest first. It is empty when
// no ledger is configured.
func (s *PaymentService) History(ctx context.Context, userID domain.UserID) ([]domain.PaymentRecord, error) {
	if s.ledger == nil {
		return nil, nil
	}
	ctx, cancel := context.WithTimeout(ctx, s.cfg.GatewayTimeout)
	defer cancel()
	return s.ledger.ListByUser(ctx, userID)
}

// CreateDeposit validates the amount and asks the gateway to issue an invoice.
// Fractions below one minor unit are truncated.
func (s *PaymentService) CreateDeposit(ctx context.Context, userID domain.UserID, chatID int64, amount string) (domain.Invoice, error) {
	if !s.cfg.Enabled {
		return domain.Invoice{}, domain.ErrPaymentsDisabled
	}
	value, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return domain.Invoice{}, fmt.Errorf("%w: %q is not a number", domain.ErrInvalidAmount, amount)
	}
	if value.LessThan(s.cfg.MinDeposit) || value.GreaterThan(s.cfg.MaxDeposit) {
		return domain.Invoice{}, fmt.Errorf("%w: deposit must be between %s and %s", domain.ErrInvalidAmount, s.cfg.MinDeposit, s.cfg.MaxDeposit)
	}

	createdAt := s.now()
	invoice := domain.Invoice{
		UserID:           userID,
		ChatID:           chatID,
		PayloadID:        domain.NewDepositPayload(userID, createdAt).String(),
		Amount:           value,
		AmountMinorUnits: s.toMinorUnits(value),
		Currency:         s.cfg.Currency,
		CreatedAt:        createdAt,
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.GatewayTimeout)
	defer cancel()
	if err := s.gateway.SendInvoice(ctx, invoice); err != nil {
		s.logger.Warn("invoice creation failed", zap.Int64("user_id", userID), zap.String("payload_id", invoice.PayloadID), zap.Error(err))
		return domain.Invoice{}, fmt.Errorf("%w: %v", domain.ErrGateway, err)
	}

	s.logger.Info(
		"payment state changed",
		zap.String("state", string(domain.PaymentCreated)),
		zap.Int64("user_id", userID),
		zap.String("payload_id", invoice.PayloadID),
		zap.String("amount", value.String()),
		zap.Int64("amount_minor", invoice.AmountMinorUnits),
		zap.String("currency", invoice.Currency),
	)
	return invoice, nil
}

// PreCheckout accepts any deposit payload and rejects everything else. No
// replay check happens at this step.
func (s *PaymentService) PreCheckout(ctx context.Context, query PreCheckout) error {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.GatewayTimeout)
	defer cancel()

	if !domain.IsDepositPayload(query.PayloadID) {
		s.logger.Warn("pre-checkout rejected", zap.Int64("user_id", query.UserID), zap.String("payload_id", query.PayloadID))
		if err := s.gateway.AnswerPreCheckout(ctx, query.QueryID, false, "Invalid payment type"); err != nil {
			s.logger.Warn("pre-checkout answer failed", zap.String("query_id", query.QueryID), zap.Error(err))
		}
		return fmt.Errorf("%w: unexpected payload %q", domain.ErrInvalidPayment, query.PayloadID)
	}

	if err := s.gateway.AnswerPreCheckout(ctx, query.QueryID, true, ""); err != nil {
		s.logger.Warn("pre-checkout answer failed", zap.String("query_id", query.QueryID), zap.Error(err))
		return fmt.Errorf("%w: %v", domain.ErrGateway, err)
	}

	s.logger.Info(
		"payment state changed",
		zap.String("state", string(domain.PaymentPreAuthorized)),
		zap.Int64("user_id", query.UserID),
		zap.String("payload_id", query.PayloadID),
	)
	return nil
}

// CompletePayment credits the settled total to the user's balance. Without a
// ledger every call credits, so duplicate confirmations credit twice.
func (s *PaymentService) CompletePayment(ctx context.Context, payloadID string, userID domain.UserID, totalMinorUnits int64) (CompletedPayment, error) {
	if !domain.IsDepositPayload(payloadID) {
		return CompletedPayment{}, fmt.Errorf("%w: unexpected payload %q", domain.ErrInvalidPayment, payloadID)
	}
	amount := s.fromMinorUnits(totalMinorUnits)
	if !amount.IsPositive() {
		return CompletedPayment{}, fmt.Errorf("%w: settled total %d", domain.ErrInvalidAmount, totalMinorUnits)
	}

	// The payer is credited even if the payload names someone else.
	if payload, err := domain.ParseDepositPayload(payloadID); err != nil {
		s.logger.Warn("unparseable deposit payload", zap.String("payload_id", payloadID), zap.Error(err))
	} else if payload.UserID != userID {
		s.logger.Warn(
			"deposit paid by another user",
			zap.Int64("user_id", userID),
			zap.Int64("invoice_user_id", payload.UserID),
			zap.String("payload_id", payloadID),
		)
	}

	if s.ledger != nil {
		record := domain.PaymentRecord{
			PayloadID:   payloadID,
			UserID:      userID,
			Amount:      amount,
			Currency:    s.cfg.Currency,
			CompletedAt: s.now(),
		}
		recordCtx, cancel := context.WithTimeout(ctx, s.cfg.GatewayTimeout)
		err := s.ledger.Record(recordCtx, record)
		cancel()
		if err != nil {
			if errors.Is(err, domain.ErrDuplicatePayment) {
				s.logger.Warn("duplicate payment confirmation ignored", zap.Int64("user_id", userID), zap.String("payload_id", payloadID))
				return CompletedPayment{}, err
			}
			s.logger.Error("failed to record payment, crediting anyway", zap.Int64("user_id", userID), zap.String("payload_id", payloadID), zap.Error(err))
		}
	}

	balance, err := s.balances.CreditBalance(userID, amount)
	if err != nil {
		return CompletedPayment{}, err
	}

	s.logger.Info(
		"payment state changed",
		zap.String("state", string(domain.PaymentCompleted)),
		zap.Int64("user_id", userID),
		zap.String("payload_id", payloadID),
		zap.String("credited", amount.String()),
		zap.String("balance", balance.String()),
	)
	return CompletedPayment{
		PayloadID: payloadID,
		UserID:    userID,
		Credited:  amount,
		Balance:   balance,
		Currency:  s.cfg.Currency,
	}, nil
}

func (s *PaymentService) toMinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(s.cfg.MinorUnitMultiplier)).Truncate(0).IntPart()
}

func (s *PaymentService) fromMinorUnits(total int64) decimal.Decimal {
	return decimal.NewFromInt(total).Div(decimal.NewFromInt(s.cfg.MinorUnitMultiplier))
}
