package ledger

import (
	"sync"

	coreport "github.com/amirhossein-jamali/timevault/internal/domain/port/core"
	custodyport "github.com/amirhossein-jamali/timevault/internal/domain/port/custody"
	"github.com/amirhossein-jamali/timevault/internal/domain/port/persistence"
)

// Service is the time-locked asset ledger. It owns the whole lifecycle of a
// lock: identifier derivation, the custody transfers on deposit and
// withdrawal, and the queries over active locks.
//
// One mutex serializes deposits, withdrawals and solvency checks so the lock
// store and the custody layer never observe a half-applied operation. Simple
// reads go straight to the store.
type Service struct {
	store        persistence.LockRepository
	deriver      IDDeriver
	transfer     custodyport.AssetTransfer
	registry     custodyport.OwnershipRegistry
	auditor      custodyport.CustodyAuditor
	timeProvider coreport.TimeProvider
	logger       coreport.Logger

	mu sync.Mutex
}

// Option configures optional collaborators of the ledger service
type Option func(*Service)

// WithOwnershipRegistry points withdrawals and holder valuations at an
// external ownership source instead of the recorded owner
func WithOwnershipRegistry(registry custodyport.OwnershipRegistry) Option {
	return func(s *Service) {
		s.registry = registry
	}
}

// WithCustodyAuditor enables solvency checks against the custody layer
func WithCustodyAuditor(auditor custodyport.CustodyAuditor) Option {
	return func(s *Service) {
		s.auditor = auditor
	}
}

// NewLedgerService creates a new ledger service
func NewLedgerService(
	store persistence.LockRepository,
	deriver IDDeriver,
	transfer custodyport.AssetTransfer,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	opts ...Option,
) *Service {
	s := &Service{
		store:        store,
		deriver:      deriver,
		transfer:     transfer,
		timeProvider: timeProvider,
		logger:       logger,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}
