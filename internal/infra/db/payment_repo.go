package db

import (
	"context"
	"fmt"

	"github.com/NasaVasa/cryptobot/internal/domain"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Record stores a completed payment. A second record for the same payload id is
// rejected with domain.ErrDuplicatePayment.
func (r *PaymentRepository) Record(ctx context.Context, record domain.PaymentRecord) error {
	model := mapPaymentToModel(record)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "payload_id"}}, DoNothing: true}).
		Create(&model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("payload %s: %w", record.PayloadID, domain.ErrDuplicatePayment)
	}
	return nil
}

func (r *PaymentRepository) ListByUser(ctx context.Context, userID domain.UserID) ([]domain.PaymentRecord, error) {
	var models []paymentModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&models).Error; err != nil {
		return nil, err
	}
	records := make([]domain.PaymentRecord, 0, len(models))
	for _, model := range models {
		record, err := mapPaymentToDomain(model)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func mapPaymentToModel(record domain.PaymentRecord) paymentModel {
	return paymentModel{
		PayloadID:   record.PayloadID,
		UserID:      record.UserID,
		Amount:      record.Amount.String(),
		Currency:    record.Currency,
		CompletedAt: record.CompletedAt.UTC(),
	}
}

func mapPaymentToDomain(model paymentModel) (domain.PaymentRecord, error) {
	amount, err := decimal.NewFromString(model.Amount)
	if err != nil {
		return domain.PaymentRecord{}, fmt.Errorf("payment %d: invalid amount %q: %w", model.ID, model.Amount, err)
	}
	return domain.PaymentRecord{
		PayloadID:   model.PayloadID,
		UserID:      model.UserID,
		Amount:      amount,
		Currency:    model.Currency,
		CompletedAt: model.CompletedAt,
	}, nil
}
