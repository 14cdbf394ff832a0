package dto

import "time"

// DepositRequest represents the API request for creating a time-locked deposit.
// The depositing account comes from the X-Account-ID header, not the body.
type DepositRequest struct {
	Asset           string `json:"asset" binding:"required"`
	Amount          string `json:"amount" binding:"required"`
	DurationSeconds int64  `json:"durationSeconds" binding:"min=0"`
}

// LockResponse represents a single lock in API responses. VestedValue is the
// claimable share at the instant the response was rendered.
type LockResponse struct {
	LockID          string    `json:"lockId"`
	Owner           string    `json:"owner"`
	Asset           string    `json:"asset"`
	Amount          string    `json:"amount"`
	VestedValue     string    `json:"vestedValue"`
	CreatedAt       time.Time `json:"createdAt"`
	DurationSeconds int64     `json:"durationSeconds"`
	MaturesAt       time.Time `json:"maturesAt"`
	Status          string    `json:"status"`
}

// WithdrawResponse represents the API response for a completed withdrawal
type WithdrawResponse struct {
	LockID      string    `json:"lockId"`
	Owner       string    `json:"owner"`
	Asset       string    `json:"asset"`
	Amount      string    `json:"amount"`
	WithdrawnAt time.Time `json:"withdrawnAt"`
}

// LockBalanceResponse reports the full locked amount of a lock
type LockBalanceResponse struct {
	LockID string `json:"lockId"`
	Amount string `json:"amount"`
}

// LockAssetResponse reports what asset a lock holds
type LockAssetResponse struct {
	LockID string `json:"lockId"`
	Asset  string `json:"asset"`
}

// LockMaturityResponse reports when a lock becomes withdrawable
type LockMaturityResponse struct {
	LockID    string    `json:"lockId"`
	MaturesAt time.Time `json:"maturesAt"`
}

// HolderValueResponse reports the vested value of a holder's stake in a lock
type HolderValueResponse struct {
	LockID string `json:"lockId"`
	Holder string `json:"holder"`
	Value  string `json:"value"`
}

// LockListResponse represents all active locks of one owner
type LockListResponse struct {
	Owner string         `json:"owner"`
	Count int            `json:"count"`
	Locks []LockResponse `json:"locks"`
}

// SolvencyResponse reports whether custodied funds cover the locked total
type SolvencyResponse struct {
	Asset     string    `json:"asset"`
	Locked    string    `json:"locked"`
	Custodied string    `json:"custodied"`
	Sound     bool      `json:"sound"`
	CheckedAt time.Time `json:"checkedAt"`
}

// HealthResponse reports service health
type HealthResponse struct {
	Status string `json:"status"`
}
