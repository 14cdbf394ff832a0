package model

import (
	"time"
)

// CustodyJournalEntry represents the database model for custody movements.
// Every transfer in or out of the vault appends exactly one entry, so the
// journal replays to the current custody balances.
type CustodyJournalEntry struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	EntryID   string    `gorm:"uniqueIndex;not null;size:64"`
	Direction string    `gorm:"not null;size:10"`
	AccountID string    `gorm:"not null;size:128;index"`
	Asset     string    `gorm:"not null;size:160"`
	Amount    int64     `gorm:"not null"` // Amount in base units
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for CustodyJournalEntry
func (CustodyJournalEntry) TableName() string {
	return "custody_journal_entries"
}
