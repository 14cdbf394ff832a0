package handler

import (
	"net/http"
	"time"

	domainerr "github.com/amirhossein-jamali/timevault/internal/domain/error"
	coreport "github.com/amirhossein-jamali/timevault/internal/domain/port/core"
	"github.com/amirhossein-jamali/timevault/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/timevault/internal/infrastructure/adapter/api/dto"

	"github.com/amirhossein-jamali/timevault/internal/domain/entity"
	"github.com/gin-gonic/gin"
)

// AccountIDHeader carries the caller identity on every authenticated request
const AccountIDHeader = "X-Account-ID"

// LockHandler handles lock lifecycle and valuation HTTP requests
type LockHandler struct {
	ledger       usecase.LedgerUseCase
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewLockHandler creates a new lock handler instance
func NewLockHandler(
	ledger usecase.LedgerUseCase,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *LockHandler {
	return &LockHandler{
		ledger:       ledger,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// caller extracts the authenticated account from the request headers. An
// absent header aborts the request with a 400.
func (h *LockHandler) caller(c *gin.Context) (string, bool) {
	account := c.GetHeader(AccountIDHeader)
	if account == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidAccountID),
			Message: "Missing " + AccountIDHeader + " header",
		})
		return "", false
	}
	return account, true
}

// toLockResponse renders a lock with its vested value at the given instant
func toLockResponse(lock *entity.Lock, now time.Time) dto.LockResponse {
	return dto.LockResponse{
		LockID:          string(lock.ID),
		Owner:           lock.Owner,
		Asset:           lock.Asset.String(),
		Amount:          entity.FormatAmount(lock.Amount),
		VestedValue:     entity.FormatAmount(lock.VestedValueAt(now)),
		CreatedAt:       lock.CreatedAt,
		DurationSeconds: lock.DurationSeconds,
		MaturesAt:       lock.MaturesAt(),
		Status:          string(lock.Status),
	}
}

// Deposit handles the POST /locks endpoint
func (h *LockHandler) Deposit(c *gin.Context) {
	caller, ok := h.caller(c)
	if !ok {
		return
	}

	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request body: " + err.Error(),
		})
		return
	}

	asset, err := entity.ParseAsset(req.Asset)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	amount, err := entity.ParseAmount(req.Amount)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	lock, err := h.ledger.Deposit(c.Request.Context(), usecase.DepositRequest{
		Owner:           caller,
		Asset:           asset,
		Amount:          amount,
		DurationSeconds: req.DurationSeconds,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, toLockResponse(lock, h.timeProvider.Now()))
}

// Withdraw handles the POST /locks/{lockId}/withdraw endpoint
func (h *LockHandler) Withdraw(c *gin.Context) {
	caller, ok := h.caller(c)
	if !ok {
		return
	}

	id := entity.LockID(c.Param("lockId"))

	receipt, err := h.ledger.Withdraw(c.Request.Context(), caller, id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.WithdrawResponse{
		LockID:      string(receipt.LockID),
		Owner:       receipt.Owner,
		Asset:       receipt.Asset.String(),
		Amount:      entity.FormatAmount(receipt.Amount),
		WithdrawnAt: receipt.WithdrawnAt,
	})
}

// GetLock handles the GET /locks/{lockId} endpoint
func (h *LockHandler) GetLock(c *gin.Context) {
	id := entity.LockID(c.Param("lockId"))

	lock, err := h.ledger.GetLock(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, toLockResponse(lock, h.timeProvider.Now()))
}

// GetBalance handles the GET /locks/{lockId}/balance endpoint. The balance of
// a lock is its current vested value.
func (h *LockHandler) GetBalance(c *gin.Context) {
	id := entity.LockID(c.Param("lockId"))

	balance, err := h.ledger.GetBalance(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.LockBalanceResponse{
		LockID: string(id),
		Amount: entity.FormatAmount(balance),
	})
}

// GetAsset handles the GET /locks/{lockId}/asset endpoint
func (h *LockHandler) GetAsset(c *gin.Context) {
	id := entity.LockID(c.Param("lockId"))

	asset, err := h.ledger.GetAsset(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.LockAssetResponse{
		LockID: string(id),
		Asset:  asset.String(),
	})
}

// GetMaturity handles the GET /locks/{lockId}/maturity endpoint
func (h *LockHandler) GetMaturity(c *gin.Context) {
	id := entity.LockID(c.Param("lockId"))

	maturesAt, err := h.ledger.GetMaturity(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.LockMaturityResponse{
		LockID:    string(id),
		MaturesAt: maturesAt,
	})
}

// HolderValue handles the GET /locks/{lockId}/value endpoint. The holder
// defaults to the caller when the query parameter is absent.
func (h *LockHandler) HolderValue(c *gin.Context) {
	id := entity.LockID(c.Param("lockId"))

	holder := c.Query("holder")
	if holder == "" {
		holder = c.GetHeader(AccountIDHeader)
	}
	if holder == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidAccountID),
			Message: "Missing holder query parameter or " + AccountIDHeader + " header",
		})
		return
	}

	value, err := h.ledger.HolderValue(c.Request.Context(), id, holder)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.HolderValueResponse{
		LockID: string(id),
		Holder: holder,
		Value:  entity.FormatAmount(value),
	})
}

// ListByOwner handles the GET /accounts/{accountId}/locks endpoint
func (h *LockHandler) ListByOwner(c *gin.Context) {
	owner := c.Param("accountId")

	locks, err := h.ledger.ListByOwner(c.Request.Context(), owner)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	now := h.timeProvider.Now()
	responses := make([]dto.LockResponse, 0, len(locks))
	for _, lock := range locks {
		responses = append(responses, toLockResponse(lock, now))
	}

	c.JSON(http.StatusOK, dto.LockListResponse{
		Owner: owner,
		Count: len(responses),
		Locks: responses,
	})
}
