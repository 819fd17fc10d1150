package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type Direction string

const (
	DirectionAbove Direction = "above"
	DirectionBelow Direction = "below"
)

func ParseDirection(input string) (Direction, error) {
	switch Direction(strings.ToLower(strings.TrimSpace(input))) {
	case DirectionAbove:
		return DirectionAbove, nil
	case DirectionBelow:
		return DirectionBelow, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidDirection, input)
	}
}

// Alert is a standing request to notify a user once AssetID crosses TargetPrice.
// ID is assigned by the state store and is never shown to users; they address
// alerts by position.
type Alert struct {
	ID          uint64
	AssetID     string
	TargetPrice decimal.Decimal
	Direction   Direction
}

func NewAlert(assetID string, targetPrice decimal.Decimal, direction Direction) (Alert, error) {
	if !targetPrice.IsPositive() {
		return Alert{}, fmt.Errorf("%w: target price must be positive", ErrInvalidAmount)
	}
	if direction != DirectionAbove && direction != DirectionBelow {
		return Alert{}, ErrInvalidDirection
	}
	return Alert{AssetID: assetID, TargetPrice: targetPrice, Direction: direction}, nil
}

// TriggeredBy reports whether price satisfies the alert. Both bounds are inclusive.
func (a Alert) TriggeredBy(price decimal.Decimal) bool {
	cmp := price.Cmp(a.TargetPrice)
	switch a.Direction {
	case DirectionAbove:
		return cmp >= 0
	case DirectionBelow:
		return cmp <= 0
	default:
		return false
	}
}
