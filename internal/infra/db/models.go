package db

import "time"

type paymentModel struct {
	ID          uint   `gorm:"primaryKey"`
	PayloadID   string `gorm:"uniqueIndex;not null"`
	UserID      int64  `gorm:"index;not null"`
	Amount      string `gorm:"not null"`
	Currency    string `gorm:"not null"`
	CompletedAt time.Time
	CreatedAt   time.Time
}

func (paymentModel) TableName() string {
	return "payments"
}
