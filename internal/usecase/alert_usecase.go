package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/NasaVasa/cryptobot/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type AlertUsecase struct {
	alerts domain.AlertStore
	oracle domain.PriceOracle
	logger *zap.Logger
}

type AlertView struct {
	Alert        domain.Alert
	CurrentPrice *decimal.Decimal
}

func NewAlertUsecase(alerts domain.AlertStore, oracle domain.PriceOracle, logger *zap.Logger) *AlertUsecase {
	return &AlertUsecase{alerts: alerts, oracle: oracle, logger: logger}
}

// AddAlert validates the request, confirms the asset exists and stores the
// alert. The returned view carries the price at creation time.
func (u *AlertUsecase) AddAlert(ctx context.Context, userID domain.UserID, asset, targetPrice, direction string) (AlertView, error) {
	target, err := parsePositiveDecimal(targetPrice)
	if err != nil {
		return AlertView{}, err
	}
	dir, err := domain.ParseDirection(direction)
	if err != nil {
		return AlertView{}, err
	}

	assetID, quote, err := lookupAsset(ctx, u.oracle, asset)
	if err != nil {
		return AlertView{}, err
	}

	alert, err := domain.NewAlert(assetID, target, dir)
	if err != nil {
		return AlertView{}, err
	}
	stored, err := u.alerts.AddAlert(userID, alert)
	if err != nil {
		return AlertView{}, err
	}

	price := quote.USD
	return AlertView{Alert: stored, CurrentPrice: &price}, nil
}

// ListAlerts returns the user's alerts in order. Current prices are attached
// when the oracle answers; an oracle failure only drops the prices.
func (u *AlertUsecase) ListAlerts(ctx context.Context, userID domain.UserID) []AlertView {
	alerts := u.alerts.ListAlerts(userID)
	views := make([]AlertView, 0, len(alerts))
	if len(alerts) == 0 {
		return views
	}

	ids := uniqueAssetIDs(alerts, func(a domain.Alert) string { return a.AssetID })
	quotes, err := u.oracle.FetchQuotes(ctx, ids)
	if err != nil {
		u.logger.Warn("alert list prices unavailable", zap.Int64("user_id", userID), zap.Error(err))
	}

	for _, alert := range alerts {
		view := AlertView{Alert: alert}
		if quote, ok := quotes[alert.AssetID]; ok {
			price := quote.USD
			view.CurrentPrice = &price
		}
		views = append(views, view)
	}
	return views
}

// DeleteAlert removes the alert at the 1-based position shown by ListAlerts.
func (u *AlertUsecase) DeleteAlert(userID domain.UserID, position int) (domain.Alert, error) {
	return u.alerts.RemoveAlertAt(userID, position-1)
}

func parsePositiveDecimal(input string) (decimal.Decimal, error) {
	value, err := decimal.NewFromString(strings.TrimSpace(input))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", domain.ErrInvalidAmount, input)
	}
	if !value.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: %s must be positive", domain.ErrInvalidAmount, value)
	}
	return value, nil
}
