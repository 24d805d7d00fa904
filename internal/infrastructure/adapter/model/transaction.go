package model

import (
	"time"
)

// Transaction represents the database model for transactions
type Transaction struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	Type        string    `gorm:"size:50;index"`
	Amount      float64   `gorm:"not null"`
	Description *string   `gorm:"type:text"`
	Date        time.Time `gorm:"not null;autoCreateTime"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
