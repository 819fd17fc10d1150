package domain

import "errors"

var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrNotFound         = errors.New("not found")
	ErrUnavailable      = errors.New("price oracle unavailable")
	ErrDeliveryFailed   = errors.New("delivery failed")
	ErrInvalidPayment   = errors.New("invalid payment")
	ErrGateway          = errors.New("payment gateway error")
	ErrDuplicatePayment = errors.New("duplicate payment")
	ErrInvalidDirection = errors.New("invalid direction")
	ErrAssetNotFound    = errors.New("asset not found")
	ErrPaymentsDisabled = errors.New("payments disabled")
)
