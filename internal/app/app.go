package app

import (
	"context"

	"github.com/NasaVasa/cryptobot/internal/config"
	"github.com/NasaVasa/cryptobot/internal/delivery/telegram"
	"github.com/NasaVasa/cryptobot/internal/domain"
	"github.com/NasaVasa/cryptobot/internal/infra/coingecko"
	"github.com/NasaVasa/cryptobot/internal/infra/db"
	"github.com/NasaVasa/cryptobot/internal/infra/feargreed"
	"github.com/NasaVasa/cryptobot/internal/infra/log"
	"github.com/NasaVasa/cryptobot/internal/infra/memstore"
	"github.com/NasaVasa/cryptobot/internal/usecase"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type botRunner interface {
	Start(ctx context.Context) error
}

type evaluatorRunner interface {
	Run(ctx context.Context) error
}

type App struct {
	bot       botRunner
	evaluator evaluatorRunner
	logger    *zap.Logger
	cleanupFn func() error
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	logger, err := log.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}

	ledger, cleanup, err := openLedger(cfg, logger)
	if err != nil {
		return nil, err
	}

	store := memstore.New()
	oracle := coingecko.NewClient(cfg.CoinGeckoBaseURL, cfg.CoinGeckoTimeout, logger)

	api, err := telegram.NewAPI(cfg.TelegramBotToken)
	if err != nil {
		if cleanup != nil {
			_ = cleanup()
		}
		return nil, err
	}

	notifier := telegram.NewNotifier(api, cfg.TelegramSendTimeout, logger)
	gateway := telegram.NewInvoiceGateway(api, cfg.PaymentProviderToken, logger)

	payments := usecase.NewPaymentService(store, gateway, ledger, paymentConfig(cfg), logger)
	evaluator := usecase.NewAlertEvaluator(store, oracle, notifier, usecase.EvaluatorConfig{
		Interval:          cfg.AlertInterval,
		InitialDelay:      cfg.AlertInitialDelay,
		NotifyConcurrency: cfg.AlertNotifyConcurrency,
	}, logger)

	handlers := telegram.NewHandlers(
		api,
		usecase.NewMarketUsecase(oracle, oracle, feargreed.NewClient(cfg.FearGreedBaseURL, cfg.FearGreedTimeout, logger)),
		usecase.NewAlertUsecase(store, oracle, logger),
		usecase.NewPortfolioUsecase(store, oracle, logger),
		usecase.NewFavoritesUsecase(store, oracle, logger),
		payments,
		cfg.TelegramSendTimeout,
		logger,
	)
	bot := telegram.NewBot(api, handlers, cfg.TelegramPollTimeout, logger)

	if !cfg.PaymentsEnabled() {
		logger.Warn("payment provider token not set, deposits disabled")
	}

	return &App{bot: bot, evaluator: evaluator, logger: logger, cleanupFn: cleanup}, nil
}

// openLedger opens the payment ledger when one is configured. A nil ledger
// means completed payments are only credited in memory.
func openLedger(cfg config.Config, logger *zap.Logger) (domain.PaymentLedger, func() error, error) {
	if cfg.LedgerDriver == config.LedgerDisabled {
		logger.Info("payment ledger disabled")
		return nil, nil, nil
	}

	dbConn, err := db.Open(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("payment ledger opened", zap.String("driver", cfg.LedgerDriver))

	cleanup := func() error {
		sqlDB, err := dbConn.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return db.NewPaymentRepository(dbConn), cleanup, nil
}

func paymentConfig(cfg config.Config) usecase.PaymentConfig {
	return usecase.PaymentConfig{
		Enabled:             cfg.PaymentsEnabled(),
		Currency:            cfg.PaymentCurrency,
		MinDeposit:          decimal.NewFromInt(cfg.DepositMin),
		MaxDeposit:          decimal.NewFromInt(cfg.DepositMax),
		MinorUnitMultiplier: cfg.MinorUnitMultiplier,
		GatewayTimeout:      cfg.PaymentTimeout,
	}
}

// Run serves Telegram updates and evaluates alerts until ctx is cancelled or
// either of them fails.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info("cryptobot service starting")

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return a.bot.Start(ctx)
	})
	g.Go(func() error {
		return a.evaluator.Run(ctx)
	})

	a.logger.Info("cryptobot service started")
	return g.Wait()
}

// Serve runs the app and shuts it down before returning, whatever the outcome.
func (a *App) Serve(ctx context.Context) error {
	defer a.Shutdown()
	return a.Run(ctx)
}

func (a *App) Shutdown() {
	a.logger.Info("cryptobot service shutting down")
	if a.cleanupFn != nil {
		if err := a.cleanupFn(); err != nil {
			a.logger.Warn("failed to close database", zap.Error(err))
		}
	}
	_ = a.logger.Sync()
}
