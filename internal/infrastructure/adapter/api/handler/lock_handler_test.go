package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/timevault/internal/domain/entity"
	"github.com/amirhossein-jamali/timevault/internal/domain/usecase/ledger"
	"github.com/amirhossein-jamali/timevault/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/timevault/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/timevault/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/timevault/internal/infrastructure/adapter/custody"
	"github.com/amirhossein-jamali/timevault/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/timevault/internal/infrastructure/adapter/metrics"
	"github.com/amirhossein-jamali/timevault/internal/infrastructure/adapter/repository"
	mockcore "github.com/amirhossein-jamali/timevault/mocks/port/core"
)

// testVault wires a full in-memory stack behind the real router so requests
// exercise exactly what production serves
type testVault struct {
	router *gin.Engine
	bank   *custody.MemoryBank
	now    time.Time
}

func newTestVault(t *testing.T) *testVault {
	t.Helper()
	gin.SetMode(gin.TestMode)

	vault := &testVault{
		now: time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	noop := logger.NewNoopLogger()

	timeProvider := new(mockcore.MockTimeProvider)
	timeProvider.On("Now").Return(func() time.Time { return vault.now })

	store := repository.NewMemoryLockRepository(noop)
	vault.bank = custody.NewMemoryBank(noop)

	service := ledger.NewLedgerService(
		store,
		ledger.NewSequentialDeriver(0),
		vault.bank,
		timeProvider,
		noop,
		ledger.WithCustodyAuditor(vault.bank),
	)

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	lockHandler := handler.NewLockHandler(service, timeProvider, noop)
	vaultHandler := handler.NewVaultHandler(service, noop)

	vault.router = gin.New()
	routes.SetupMiddlewares(vault.router, noop, m)
	routes.SetupRoutes(vault.router, lockHandler, vaultHandler, registry)

	return vault
}

func (v *testVault) request(t *testing.T, method, path, account string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if account != "" {
		req.Header.Set(handler.AccountIDHeader, account)
	}

	recorder := httptest.NewRecorder()
	v.router.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	t.Helper()
	var body T
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

func TestLockAPI_DepositAndVesting(t *testing.T) {
	vault := newTestVault(t)
	require.NoError(t, vault.bank.Credit(context.Background(), "alice", entity.NativeAsset(), 5000))

	deposit := dto.DepositRequest{Asset: "native", Amount: "1000", DurationSeconds: 1000}
	recorder := vault.request(t, http.MethodPost, "/locks", "alice", deposit)
	require.Equal(t, http.StatusCreated, recorder.Code)

	created := decodeBody[dto.LockResponse](t, recorder)
	assert.Equal(t, "0", created.LockID)
	assert.Equal(t, "alice", created.Owner)
	assert.Equal(t, "native", created.Asset)
	assert.Equal(t, "1000", created.Amount)
	assert.Equal(t, "0", created.VestedValue)
	assert.Equal(t, created.CreatedAt.Add(1000*time.Second), created.MaturesAt)

	t.Run("maturity endpoint matches creation plus duration", func(t *testing.T) {
		recorder := vault.request(t, http.MethodGet, "/locks/0/maturity", "", nil)
		require.Equal(t, http.StatusOK, recorder.Code)

		maturity := decodeBody[dto.LockMaturityResponse](t, recorder)
		assert.Equal(t, created.MaturesAt, maturity.MaturesAt)
	})

	t.Run("balance vests linearly", func(t *testing.T) {
		vault.now = created.CreatedAt.Add(250 * time.Second)

		recorder := vault.request(t, http.MethodGet, "/locks/0/balance", "", nil)
		require.Equal(t, http.StatusOK, recorder.Code)

		balance := decodeBody[dto.LockBalanceResponse](t, recorder)
		assert.Equal(t, "250", balance.Amount)
	})

	t.Run("balance caps at the full amount after maturity", func(t *testing.T) {
		vault.now = created.CreatedAt.Add(2000 * time.Second)

		recorder := vault.request(t, http.MethodGet, "/locks/0/balance", "", nil)
		require.Equal(t, http.StatusOK, recorder.Code)

		balance := decodeBody[dto.LockBalanceResponse](t, recorder)
		assert.Equal(t, "1000", balance.Amount)
	})

	t.Run("asset endpoint names the denominating asset", func(t *testing.T) {
		recorder := vault.request(t, http.MethodGet, "/locks/0/asset", "", nil)
		require.Equal(t, http.StatusOK, recorder.Code)

		asset := decodeBody[dto.LockAssetResponse](t, recorder)
		assert.Equal(t, "native", asset.Asset)
	})

	t.Run("owner listing includes the lock", func(t *testing.T) {
		recorder := vault.request(t, http.MethodGet, "/accounts/alice/locks", "", nil)
		require.Equal(t, http.StatusOK, recorder.Code)

		list := decodeBody[dto.LockListResponse](t, recorder)
		assert.Equal(t, 1, list.Count)
		assert.Equal(t, "0", list.Locks[0].LockID)
	})

	t.Run("solvency report is sound", func(t *testing.T) {
		recorder := vault.request(t, http.MethodGet, "/solvency?asset=native", "", nil)
		require.Equal(t, http.StatusOK, recorder.Code)

		report := decodeBody[dto.SolvencyResponse](t, recorder)
		assert.True(t, report.Sound)
		assert.Equal(t, "1000", report.Locked)
		assert.Equal(t, "1000", report.Custodied)
	})
}

func TestLockAPI_DepositValidation(t *testing.T) {
	vault := newTestVault(t)

	t.Run("missing account header", func(t *testing.T) {
		deposit := dto.DepositRequest{Asset: "native", Amount: "100", DurationSeconds: 60}
		recorder := vault.request(t, http.MethodPost, "/locks", "", deposit)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("zero amount", func(t *testing.T) {
		deposit := dto.DepositRequest{Asset: "native", Amount: "0", DurationSeconds: 60}
		recorder := vault.request(t, http.MethodPost, "/locks", "alice", deposit)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("malformed asset", func(t *testing.T) {
		deposit := dto.DepositRequest{Asset: "token:", Amount: "100", DurationSeconds: 60}
		recorder := vault.request(t, http.MethodPost, "/locks", "alice", deposit)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("unknown custody account", func(t *testing.T) {
		deposit := dto.DepositRequest{Asset: "native", Amount: "100", DurationSeconds: 60}
		recorder := vault.request(t, http.MethodPost, "/locks", "ghost", deposit)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("underfunded account cannot deposit", func(t *testing.T) {
		require.NoError(t, vault.bank.Credit(context.Background(), "poor", entity.NativeAsset(), 10))

		deposit := dto.DepositRequest{Asset: "native", Amount: "100", DurationSeconds: 60}
		recorder := vault.request(t, http.MethodPost, "/locks", "poor", deposit)
		assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	})
}

func TestLockAPI_Withdraw(t *testing.T) {
	vault := newTestVault(t)
	require.NoError(t, vault.bank.Credit(context.Background(), "alice", entity.NativeAsset(), 1000))

	deposit := dto.DepositRequest{Asset: "native", Amount: "1000", DurationSeconds: 1000}
	recorder := vault.request(t, http.MethodPost, "/locks", "alice", deposit)
	require.Equal(t, http.StatusCreated, recorder.Code)
	created := decodeBody[dto.LockResponse](t, recorder)

	t.Run("withdrawal one second early is rejected", func(t *testing.T) {
		vault.now = created.MaturesAt.Add(-time.Second)

		recorder := vault.request(t, http.MethodPost, "/locks/0/withdraw", "alice", nil)
		assert.Equal(t, http.StatusLocked, recorder.Code)
	})

	t.Run("non-owner cannot withdraw even after maturity", func(t *testing.T) {
		vault.now = created.MaturesAt

		recorder := vault.request(t, http.MethodPost, "/locks/0/withdraw", "mallory", nil)
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	t.Run("owner withdraws at maturity", func(t *testing.T) {
		vault.now = created.MaturesAt

		recorder := vault.request(t, http.MethodPost, "/locks/0/withdraw", "alice", nil)
		require.Equal(t, http.StatusOK, recorder.Code)

		receipt := decodeBody[dto.WithdrawResponse](t, recorder)
		assert.Equal(t, "1000", receipt.Amount)
		assert.Equal(t, int64(1000), vault.bank.BalanceOf("alice", entity.NativeAsset()))
	})

	t.Run("withdrawn lock is gone", func(t *testing.T) {
		for _, path := range []string{"/locks/0", "/locks/0/balance", "/locks/0/maturity"} {
			recorder := vault.request(t, http.MethodGet, path, "", nil)
			assert.Equal(t, http.StatusNotFound, recorder.Code, path)
		}

		recorder := vault.request(t, http.MethodPost, "/locks/0/withdraw", "alice", nil)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestLockAPI_HolderValue(t *testing.T) {
	vault := newTestVault(t)
	require.NoError(t, vault.bank.Credit(context.Background(), "alice", entity.NativeAsset(), 1000))

	deposit := dto.DepositRequest{Asset: "native", Amount: "1000", DurationSeconds: 1000}
	recorder := vault.request(t, http.MethodPost, "/locks", "alice", deposit)
	require.Equal(t, http.StatusCreated, recorder.Code)
	created := decodeBody[dto.LockResponse](t, recorder)

	vault.now = created.CreatedAt.Add(500 * time.Second)

	t.Run("owner holds the whole position", func(t *testing.T) {
		recorder := vault.request(t, http.MethodGet, "/locks/0/value?holder=alice", "", nil)
		require.Equal(t, http.StatusOK, recorder.Code)

		value := decodeBody[dto.HolderValueResponse](t, recorder)
		assert.Equal(t, "500", value.Value)
	})

	t.Run("strangers hold nothing", func(t *testing.T) {
		recorder := vault.request(t, http.MethodGet, "/locks/0/value?holder=bob", "", nil)
		require.Equal(t, http.StatusOK, recorder.Code)

		value := decodeBody[dto.HolderValueResponse](t, recorder)
		assert.Equal(t, "0", value.Value)
	})

	t.Run("holder falls back to the caller header", func(t *testing.T) {
		recorder := vault.request(t, http.MethodGet, "/locks/0/value", "alice", nil)
		require.Equal(t, http.StatusOK, recorder.Code)

		value := decodeBody[dto.HolderValueResponse](t, recorder)
		assert.Equal(t, "alice", value.Holder)
	})
}
