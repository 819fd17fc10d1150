package domain

import "github.com/shopspring/decimal"

type AlertStore interface {
	ListAlerts(userID UserID) []Alert
	AddAlert(userID UserID, alert Alert) (Alert, error)
	RemoveAlertAt(userID UserID, index int) (Alert, error)
	RemoveAlert(userID UserID, alertID uint64) bool
	SnapshotAlerts() map[UserID][]Alert
}

type PortfolioStore interface {
	GetPortfolio(userID UserID) []Holding
	AddHolding(userID UserID, assetID string, quantity decimal.Decimal) (decimal.Decimal, error)
	RemoveHolding(userID UserID, assetID string) error
}

type FavoriteStore interface {
	ListFavorites(userID UserID) []string
	AddFavorite(userID UserID, assetID string) FavoriteResult
	RemoveFavorite(userID UserID, assetID string) error
}

type BalanceStore interface {
	GetBalance(userID UserID) decimal.Decimal
	CreditBalance(userID UserID, amount decimal.Decimal) (decimal.Decimal, error)
}
