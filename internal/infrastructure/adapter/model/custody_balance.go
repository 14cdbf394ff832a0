package model

import (
	"time"
)

// CustodyBalance represents the database model for per-account, per-asset
// balances held by the custody bank. The vault's own account lives in the same
// table under the reserved "@vault" identifier.
type CustodyBalance struct {
	AccountID string    `gorm:"primaryKey;size:128"`
	Asset     string    `gorm:"primaryKey;size:160"`
	Balance   int64     `gorm:"not null"` // Balance in base units
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for CustodyBalance
func (CustodyBalance) TableName() string {
	return "custody_balances"
}
