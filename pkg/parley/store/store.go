// Package store persists the history of exported summaries. Only the
// truncated summary document is kept, never the transcript text.
package store

import (
	"context"
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Store is the interface for persisting and querying analysis runs
type Store interface {
	Close() error

	// SaveRun inserts r or replaces the run with the same ID.
	SaveRun(ctx context.Context, r Run) error
	// GetRun returns internalerr.ErrNotFound for an unknown ID.
	GetRun(ctx context.Context, id string) (Run, error)
	// ListRuns returns up to limit runs, newest first.
	ListRuns(ctx context.Context, limit int) ([]Run, error)
}

// Run records one exported summary.
type Run struct {
	ID        string
	Source    string // input transcript path
	Output    string // exported summary path
	CreatedAt time.Time
	TopK      int
	NGramSize int
	Lines     int
	Summary   []byte // JSON document as exported
}

// DefaultListLimit applies when ListRuns gets a non-positive limit.
const DefaultListLimit = 20

var (
	idMu    sync.Mutex
	entropy = ulid.Monotonic(rand.Reader, 0)
)

// NewID returns a time-ordered run ID. IDs sort in creation order.
func NewID() string {
	idMu.Lock()
	defer idMu.Unlock()
	return ulid.MustNew(ulid.Now(), entropy).String()
}
