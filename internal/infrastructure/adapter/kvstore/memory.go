package kvstore

import (
	"context"
	"sort"
	"sync"

	"github.com/fitcore/workout-planner/internal/domain/entity"
	"github.com/fitcore/workout-planner/internal/domain/port/persistence"
)

// MemoryStore is an in-memory rendition of the persistent layout: two keyed
// record regions plus one counter per entity type. It backs unit tests and
// throwaway deployments behind the same ports as the database adapter.
// Writers are serialized by the unit-of-work mutex, mirroring the atomic
// read-modify-write guarantee the database adapter gets from transactions.
type MemoryStore struct {
	mu          sync.Mutex
	users       map[uint64][]byte
	plans       map[uint64][]byte
	userCounter uint64
	planCounter uint64
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users: make(map[uint64][]byte),
		plans: make(map[uint64][]byte),
	}
}

// memoryTable adapts one record region to the Table port. Records round-trip
// through the codec so the size ceiling and serialization behave exactly as
// in the database adapter.
type memoryTable[R any] struct {
	records map[uint64][]byte
}

// Get retrieves the record stored at id, or (nil, nil) when absent
func (t *memoryTable[R]) Get(_ context.Context, id uint64) (*R, error) {
	data, ok := t.records[id]
	if !ok {
		return nil, nil
	}
	return Decode[R](data)
}

// Put stores the record at id with upsert semantics
func (t *memoryTable[R]) Put(_ context.Context, id uint64, record *R) error {
	data, err := Encode(record)
	if err != nil {
		return err
	}
	t.records[id] = data
	return nil
}

// Remove deletes and returns the record at id, or (nil, nil) when absent
func (t *memoryTable[R]) Remove(_ context.Context, id uint64) (*R, error) {
	data, ok := t.records[id]
	if !ok {
		return nil, nil
	}
	delete(t.records, id)
	return Decode[R](data)
}

// Scan visits records in ascending key order
func (t *memoryTable[R]) Scan(_ context.Context, fn func(id uint64, record *R) (bool, error)) error {
	keys := make([]uint64, 0, len(t.records))
	for id := range t.records {
		keys = append(keys, id)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	for _, id := range keys {
		record, err := Decode[R](t.records[id])
		if err != nil {
			return err
		}
		keep, err := fn(id, record)
		if err != nil {
			return err
		}
		if !keep {
			return nil
		}
	}
	return nil
}

// memorySequence adapts a counter field to the Sequence port
type memorySequence struct {
	value *uint64
}

// Next persists value+1 and returns it
func (s *memorySequence) Next(_ context.Context) (uint64, error) {
	*s.value++
	return *s.value, nil
}

// snapshot captures the full store state for rollback
type snapshot struct {
	users       map[uint64][]byte
	plans       map[uint64][]byte
	userCounter uint64
	planCounter uint64
}

func cloneRegion(src map[uint64][]byte) map[uint64][]byte {
	dst := make(map[uint64][]byte, len(src))
	for id, data := range src {
		dst[id] = data
	}
	return dst
}

// memoryTxKey marks a context as carrying an open in-memory transaction
type memoryTxKey struct{}

// MemoryUnitOfWork implements the UnitOfWork port over a MemoryStore. Begin
// takes the store mutex and snapshots state; Rollback restores the snapshot;
// Commit discards it. Operations outside a transaction work on live state
// unguarded, which sequential tests are fine with.
type MemoryUnitOfWork struct {
	store   *MemoryStore
	pending *snapshot
}

// NewMemoryUnitOfWork creates a unit of work over the given store
func NewMemoryUnitOfWork(store *MemoryStore) *MemoryUnitOfWork {
	return &MemoryUnitOfWork{store: store}
}

// Begin locks the store and snapshots its state
func (u *MemoryUnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	u.store.mu.Lock()
	u.pending = &snapshot{
		users:       cloneRegion(u.store.users),
		plans:       cloneRegion(u.store.plans),
		userCounter: u.store.userCounter,
		planCounter: u.store.planCounter,
	}
	return context.WithValue(ctx, memoryTxKey{}, u), nil
}

// Commit discards the snapshot and releases the store
func (u *MemoryUnitOfWork) Commit(ctx context.Context) error {
	if ctx.Value(memoryTxKey{}) == nil || u.pending == nil {
		return nil
	}
	u.pending = nil
	u.store.mu.Unlock()
	return nil
}

// Rollback restores the snapshot and releases the store
func (u *MemoryUnitOfWork) Rollback(ctx context.Context) error {
	if ctx.Value(memoryTxKey{}) == nil || u.pending == nil {
		return nil
	}
	u.store.users = u.pending.users
	u.store.plans = u.pending.plans
	u.store.userCounter = u.pending.userCounter
	u.store.planCounter = u.pending.planCounter
	u.pending = nil
	u.store.mu.Unlock()
	return nil
}

// Users returns the user table
func (u *MemoryUnitOfWork) Users(context.Context) persistence.Table[entity.User] {
	return &memoryTable[entity.User]{records: u.store.users}
}

// WorkoutPlans returns the workout-plan table
func (u *MemoryUnitOfWork) WorkoutPlans(context.Context) persistence.Table[entity.WorkoutPlan] {
	return &memoryTable[entity.WorkoutPlan]{records: u.store.plans}
}

// UserIDs returns the user id sequence
func (u *MemoryUnitOfWork) UserIDs(context.Context) persistence.Sequence {
	return &memorySequence{value: &u.store.userCounter}
}

// WorkoutPlanIDs returns the plan id sequence
func (u *MemoryUnitOfWork) WorkoutPlanIDs(context.Context) persistence.Sequence {
	return &memorySequence{value: &u.store.planCounter}
}
