package model

import "github.com/shopspring/decimal"

// Account represents the database model for accounts
type Account struct {
	ID          uint64          `gorm:"primaryKey;autoIncrement"`
	Balance     decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	AccountType string          `gorm:"not null;size:50"`
	OwnerID     uint64          `gorm:"not null;index"`
}

// TableName specifies the table name for Account
func (Account) TableName() string {
	return "accounts"
}
