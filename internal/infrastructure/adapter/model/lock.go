package model

import (
	"time"

	"gorm.io/gorm"
)

// Lock represents the database model for time-locked positions. Removal is a
// soft delete: the row keeps its primary key forever, which is what guarantees
// a lock identifier can never be issued twice.
type Lock struct {
	ID              string    `gorm:"primaryKey;size:64"`
	Owner           string    `gorm:"not null;size:128;index"`
	Asset           string    `gorm:"not null;size:160"`
	Amount          int64     `gorm:"not null"` // Amount in base units
	CreatedAt       time.Time `gorm:"not null"`
	DurationSeconds int64     `gorm:"not null"`
	MaturesAt       time.Time `gorm:"not null"`
	Status          string    `gorm:"not null;size:20"`
	WithdrawnAt     *time.Time
	UpdatedAt       time.Time      `gorm:"not null"`
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for Lock
func (Lock) TableName() string {
	return "locks"
}
