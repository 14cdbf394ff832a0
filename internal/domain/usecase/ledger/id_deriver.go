package ledger

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"strconv"
	"sync"

	"github.com/amirhossein-jamali/timevault/internal/domain/entity"
)

// IDDeriver chooses identifiers for new locks. Derivation belongs to the
// ledger; callers never supply identifiers.
type IDDeriver interface {
	// Derive returns the identifier for a lock about to be created. The lock
	// has every field populated except ID.
	Derive(lock *entity.Lock) entity.LockID
}

// SequentialDeriver numbers locks in creation order starting from an origin
type SequentialDeriver struct {
	mu   sync.Mutex
	next uint64
}

// NewSequentialDeriver creates a sequential deriver starting at origin. Seed
// the origin with LockRepository.TotalCreated so identifiers keep advancing
// across restarts instead of colliding with historical ones.
func NewSequentialDeriver(origin uint64) *SequentialDeriver {
	return &SequentialDeriver{next: origin}
}

// Derive returns the next identifier in sequence
func (d *SequentialDeriver) Derive(_ *entity.Lock) entity.LockID {
	d.mu.Lock()
	defer d.mu.Unlock()

	id := d.next
	d.next++
	return entity.LockID(strconv.FormatUint(id, 10))
}

// ContentDeriver hashes a lock's content into its identifier. Two deposits
// that agree on owner, asset, amount, creation instant and maturity would hash
// identically, so a per-owner sequence number is folded into the digest to
// keep every identifier distinct.
type ContentDeriver struct {
	mu  sync.Mutex
	seq map[string]uint64
}

// NewContentDeriver creates a content-addressed deriver
func NewContentDeriver() *ContentDeriver {
	return &ContentDeriver{seq: make(map[string]uint64)}
}

// Derive hashes owner, asset, amount, creation time, maturity and the owner's
// sequence number into a hex identifier
func (d *ContentDeriver) Derive(lock *entity.Lock) entity.LockID {
	d.mu.Lock()
	nonce := d.seq[lock.Owner]
	d.seq[lock.Owner]++
	d.mu.Unlock()

	h := sha256.New()
	h.Write([]byte(lock.Owner))
	h.Write([]byte{0})
	h.Write([]byte(lock.Asset.String()))
	h.Write([]byte{0})

	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(lock.Amount))
	h.Write(buf[:])
	binary.BigEndian.PutUint64(buf[:], uint64(lock.CreatedAt.Unix()))
	h.Write(buf[:])
	binary.BigEndian.PutUint64(buf[:], uint64(lock.MaturesAt().Unix()))
	h.Write(buf[:])
	binary.BigEndian.PutUint64(buf[:], nonce)
	h.Write(buf[:])

	return entity.LockID(hex.EncodeToString(h.Sum(nil)))
}
