package domain

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const DepositPayloadPrefix = "deposit_"

// DepositPayload identifies one deposit attempt. It is round-tripped by the
// payment gateway and never stored server-side.
type DepositPayload struct {
	UserID    UserID
	CreatedAt time.Time
}

func NewDepositPayload(userID UserID, createdAt time.Time) DepositPayload {
	return DepositPayload{UserID: userID, CreatedAt: createdAt.Truncate(time.Second)}
}

func (p DepositPayload) String() string {
	return fmt.Sprintf("%s%d_%d", DepositPayloadPrefix, p.UserID, p.CreatedAt.Unix())
}

func IsDepositPayload(payload string) bool {
	return strings.HasPrefix(payload, DepositPayloadPrefix)
}

func ParseDepositPayload(payload string) (DepositPayload, error) {
	if !IsDepositPayload(payload) {
		return DepositPayload{}, fmt.Errorf("%w: unexpected payload %q", ErrInvalidPayment, payload)
	}
	parts := strings.Split(strings.TrimPrefix(payload, DepositPayloadPrefix), "_")
	if len(parts) != 2 {
		return DepositPayload{}, fmt.Errorf("%w: malformed payload %q", ErrInvalidPayment, payload)
	}
	userID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return DepositPayload{}, fmt.Errorf("%w: malformed user id in %q", ErrInvalidPayment, payload)
	}
	unix, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return DepositPayload{}, fmt.Errorf("%w: malformed timestamp in %q", ErrInvalidPayment, payload)
	}
	return DepositPayload{UserID: userID, CreatedAt: time.Unix(unix, 0)}, nil
}

type Invoice struct {
	UserID           UserID
	ChatID           int64
	PayloadID        string
	Amount           decimal.Decimal
	AmountMinorUnits int64
	Currency         string
	CreatedAt        time.Time
}

type PaymentRecord struct {
	PayloadID   string
	UserID      UserID
	Amount      decimal.Decimal
	Currency    string
	CompletedAt time.Time
}

// PaymentLedger records completed payments. Record returns ErrDuplicatePayment
// when the payload id was already recorded.
type PaymentLedger interface {
	Record(ctx context.Context, record PaymentRecord) error
	ListByUser(ctx context.Context, userID UserID) ([]PaymentRecord, error)
}

// PaymentState is the lifecycle of one deposit attempt. A rejected
// pre-checkout is terminal and has no state of its own.
type PaymentState string

const (
	PaymentCreated       PaymentState = "created"
	PaymentPreAuthorized PaymentState = "pre_authorized"
	PaymentCompleted     PaymentState = "completed"
)
