package domain

import "github.com/shopspring/decimal"

// UserID is the Telegram user id. Users are never stored on their own; the id
// keys every per-user collection.
type UserID = int64

type Holding struct {
	AssetID  string
	Quantity decimal.Decimal
}

type FavoriteResult int

const (
	FavoriteAdded FavoriteResult = iota
	FavoriteAlreadyPresent
)
