package handler

import (
	"net/http"

	domainerr "github.com/amirhossein-jamali/timevault/internal/domain/error"
	coreport "github.com/amirhossein-jamali/timevault/internal/domain/port/core"
	"github.com/amirhossein-jamali/timevault/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/timevault/internal/infrastructure/adapter/api/dto"

	"github.com/amirhossein-jamali/timevault/internal/domain/entity"
	"github.com/gin-gonic/gin"
)

// VaultHandler handles vault-wide HTTP requests: solvency and health
type VaultHandler struct {
	ledger usecase.LedgerUseCase
	logger coreport.Logger
}

// NewVaultHandler creates a new vault handler instance
func NewVaultHandler(ledger usecase.LedgerUseCase, logger coreport.Logger) *VaultHandler {
	return &VaultHandler{
		ledger: ledger,
		logger: logger,
	}
}

// Solvency handles the GET /solvency endpoint. The report says whether
// custodied funds cover the active locked total for the requested asset.
func (h *VaultHandler) Solvency(c *gin.Context) {
	assetParam := c.Query("asset")
	if assetParam == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidAsset),
			Message: "Missing asset query parameter",
		})
		return
	}

	asset, err := entity.ParseAsset(assetParam)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	report, err := h.ledger.Solvency(c.Request.Context(), asset)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.SolvencyResponse{
		Asset:     report.Asset.String(),
		Locked:    entity.FormatAmount(report.Locked),
		Custodied: entity.FormatAmount(report.Custodied),
		Sound:     report.Sound,
		CheckedAt: report.CheckedAt,
	})
}

// Health handles the GET /health endpoint
func (h *VaultHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}
