package persistence

import (
	"context"
)

// Table is a persistent ordered mapping from a 64-bit key to a record.
// Records must serialize within the backing store's size ceiling; exceeding
// it is a caller-side contract violation, not a recoverable condition.
type Table[R any] interface {
	// Get retrieves the record stored at id, or (nil, nil) when absent
	Get(ctx context.Context, id uint64) (*R, error)

	// Put stores the record at id with upsert semantics, overwriting any
	// existing record at that key
	Put(ctx context.Context, id uint64, record *R) error

	// Remove deletes the record at id and returns it, or (nil, nil) when
	// no record was stored at that key
	Remove(ctx context.Context, id uint64) (*R, error)

	// Scan visits records in ascending key order, restarting from the
	// first key on every call. Iteration stops early when fn returns
	// false or an error.
	Scan(ctx context.Context, fn func(id uint64, record *R) (bool, error)) error
}

// Sequence is a crash-persistent monotonic id source. Next atomically
// persists value+1 and returns it, so the first id ever produced is 1 and
// id 0 is never assigned. State survives restarts; a failed increment aborts
// the surrounding operation.
type Sequence interface {
	Next(ctx context.Context) (uint64, error)
}
