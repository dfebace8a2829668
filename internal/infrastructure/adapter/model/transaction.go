package model

import "github.com/shopspring/decimal"

// Transaction represents the database model for transactions
type Transaction struct {
	ID          uint64          `gorm:"primaryKey;autoIncrement"`
	Amount      decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Description string          `gorm:"type:text"`
	AccountID   uint64          `gorm:"not null;index"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
