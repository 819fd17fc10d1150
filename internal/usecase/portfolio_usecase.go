package usecase

import (
	"context"

	"github.com/NasaVasa/cryptobot/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type PortfolioUsecase struct {
	holdings domain.PortfolioStore
	oracle   domain.PriceOracle
	logger   *zap.Logger
}

type PortfolioItem struct {
	Holding domain.Holding
	Price   *decimal.Decimal
	Value   *decimal.Decimal
}

type PortfolioView struct {
	Items []PortfolioItem
	Total decimal.Decimal
}

func NewPortfolioUsecase(holdings domain.PortfolioStore, oracle domain.PriceOracle, logger *zap.Logger) *PortfolioUsecase {
	return &PortfolioUsecase{holdings: holdings, oracle: oracle, logger: logger}
}

// AddHolding adds quantity of asset and returns the resolved asset id and the
// new total quantity.
func (u *PortfolioUsecase) AddHolding(ctx context.Context, userID domain.UserID, asset, quantity string) (string, decimal.Decimal, error) {
	amount, err := parsePositiveDecimal(quantity)
	if err != nil {
		return "", decimal.Zero, err
	}
	assetID, _, err := lookupAsset(ctx, u.oracle, asset)
	if err != nil {
		return assetID, decimal.Zero, err
	}
	total, err := u.holdings.AddHolding(userID, assetID, amount)
	if err != nil {
		return assetID, decimal.Zero, err
	}
	return assetID, total, nil
}

func (u *PortfolioUsecase) RemoveHolding(userID domain.UserID, asset string) (string, error) {
	assetID := domain.ResolveAssetID(asset)
	return assetID, u.holdings.RemoveHolding(userID, assetID)
}

// Portfolio values every holding at the current USD price. Holdings without a
// quote are listed without a value and excluded from the total.
func (u *PortfolioUsecase) Portfolio(ctx context.Context, userID domain.UserID) PortfolioView {
	holdings := u.holdings.GetPortfolio(userID)
	view := PortfolioView{Items: make([]PortfolioItem, 0, len(holdings)), Total: decimal.Zero}
	if len(holdings) == 0 {
		return view
	}

	ids := uniqueAssetIDs(holdings, func(h domain.Holding) string { return h.AssetID })
	quotes, err := u.oracle.FetchQuotes(ctx, ids)
	if err != nil {
		u.logger.Warn("portfolio prices unavailable", zap.Int64("user_id", userID), zap.Error(err))
	}

	for _, holding := range holdings {
		item := PortfolioItem{Holding: holding}
		if quote, ok := quotes[holding.AssetID]; ok {
			price := quote.USD
			value := holding.Quantity.Mul(price)
			item.Price = &price
			item.Value = &value
			view.Total = view.Total.Add(value)
		}
		view.Items = append(view.Items, item)
	}
	return view
}
