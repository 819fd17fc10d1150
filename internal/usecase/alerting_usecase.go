package usecase

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/NasaVasa/cryptobot/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type EvaluatorConfig struct {
	Interval          time.Duration
	InitialDelay      time.Duration
	NotifyConcurrency int
}

// AlertEvaluator periodically checks every stored alert against current prices,
// notifies the owner of each triggered alert and removes it once the
// notification was delivered.
type AlertEvaluator struct {
	alerts   domain.AlertStore
	oracle   domain.PriceOracle
	notifier Notifier
	cfg      EvaluatorConfig
	logger   *zap.Logger
}

// TickReport summarises one evaluation pass.
type TickReport struct {
	Users     int
	Alerts    int
	Triggered int
	Delivered int
	Failed    int
	Unpriced  int
}

func NewAlertEvaluator(alerts domain.AlertStore, oracle domain.PriceOracle, notifier Notifier, cfg EvaluatorConfig, logger *zap.Logger) *AlertEvaluator {
	if cfg.NotifyConcurrency <= 0 {
		cfg.NotifyConcurrency = 1
	}
	return &AlertEvaluator{
		alerts:   alerts,
		oracle:   oracle,
		notifier: notifier,
		cfg:      cfg,
		logger:   logger,
	}
}

// Run evaluates alerts after the initial delay and then on every interval until
// ctx is cancelled. A failed tick never stops the schedule.
func (e *AlertEvaluator) Run(ctx context.Context) error {
	e.logger.Info(
		"alert evaluator started",
		zap.Duration("interval", e.cfg.Interval),
		zap.Duration("initial_delay", e.cfg.InitialDelay),
	)
	defer e.logger.Info("alert evaluator stopped")

	delay := time.NewTimer(e.cfg.InitialDelay)
	defer delay.Stop()
	select {
	case <-ctx.Done():
		return nil
	case <-delay.C:
	}

	ticker := time.NewTicker(e.cfg.Interval)
	defer ticker.Stop()

	for {
		e.tick(ctx)
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (e *AlertEvaluator) tick(ctx context.Context) {
	start := time.Now()
	report, err := e.Evaluate(ctx)
	if err != nil {
		e.logger.Warn("alert tick skipped", zap.Error(err), zap.Duration("duration", time.Since(start)))
		return
	}
	if report.Alerts == 0 {
		e.logger.Debug("alert tick complete, no alerts")
		return
	}
	e.logger.Info(
		"alert tick complete",
		zap.Int("users", report.Users),
		zap.Int("alerts", report.Alerts),
		zap.Int("triggered", report.Triggered),
		zap.Int("delivered", report.Delivered),
		zap.Int("failed", report.Failed),
		zap.Int("unpriced", report.Unpriced),
		zap.Duration("duration", time.Since(start)),
	)
}

// Evaluate runs a single pass. It returns an error only when prices could not be
// fetched, in which case no alert is touched.
func (e *AlertEvaluator) Evaluate(ctx context.Context) (TickReport, error) {
	snapshot := e.alerts.SnapshotAlerts()
	report := TickReport{Users: len(snapshot)}
	if len(snapshot) == 0 {
		return report, nil
	}

	var assetIDs []string
	seen := make(map[string]struct{})
	for _, alerts := range snapshot {
		report.Alerts += len(alerts)
		for _, alert := range alerts {
			if _, ok := seen[alert.AssetID]; ok {
				continue
			}
			seen[alert.AssetID] = struct{}{}
			assetIDs = append(assetIDs, alert.AssetID)
		}
	}

	quotes, err := e.oracle.FetchQuotes(ctx, assetIDs)
	if err != nil {
		return report, fmt.Errorf("fetch quotes for %d assets: %w", len(assetIDs), err)
	}

	var triggered, delivered, failed, unpriced atomic.Int64
	var g errgroup.Group
	g.SetLimit(e.cfg.NotifyConcurrency)

	for userID, alerts := range snapshot {
		userID, alerts := userID, alerts
		g.Go(func() error {
			for _, alert := range alerts {
				if ctx.Err() != nil {
					return nil
				}
				quote, ok := quotes[alert.AssetID]
				if !ok {
					unpriced.Add(1)
					continue
				}
				if !alert.TriggeredBy(quote.USD) {
					continue
				}
				triggered.Add(1)
				if e.deliver(ctx, userID, alert, quote.USD) {
					delivered.Add(1)
				} else {
					failed.Add(1)
				}
			}
			return nil
		})
	}
	_ = g.Wait()

	report.Triggered = int(triggered.Load())
	report.Delivered = int(delivered.Load())
	report.Failed = int(failed.Load())
	report.Unpriced = int(unpriced.Load())
	return report, nil
}

// deliver sends the notification and removes the alert only if the send
// succeeded. A failed send leaves the alert for the next tick.
func (e *AlertEvaluator) deliver(ctx context.Context, userID domain.UserID, alert domain.Alert, price decimal.Decimal) bool {
	if err := e.notifier.Notify(ctx, userID, alertTriggeredText(alert, price)); err != nil {
		e.logger.Warn(
			"failed to deliver alert",
			zap.Int64("user_id", userID),
			zap.String("asset_id", alert.AssetID),
			zap.Uint64("alert_id", alert.ID),
			zap.Error(err),
		)
		return false
	}

	if !e.alerts.RemoveAlert(userID, alert.ID) {
		e.logger.Debug("alert already removed", zap.Int64("user_id", userID), zap.Uint64("alert_id", alert.ID))
	}
	e.logger.Info(
		"alert delivered",
		zap.Int64("user_id", userID),
		zap.String("asset_id", alert.AssetID),
		zap.String("direction", string(alert.Direction)),
		zap.String("target", alert.TargetPrice.String()),
		zap.String("price", price.String()),
	)
	return true
}

func alertTriggeredText(alert domain.Alert, price decimal.Decimal) string {
	verb := "reached"
	if alert.Direction == domain.DirectionBelow {
		verb = "dropped to"
	}
	return fmt.Sprintf(
		"🔔 Alert triggered!\n\n%s %s %s\n(Target: %s)",
		DisplayName(alert.AssetID),
		verb,
		FormatUSD(price),
		FormatUSD(alert.TargetPrice),
	)
}
