package repository

import (
	"context"
	"fmt"

	errs "github.com/fitcore/workout-planner/internal/domain/error"
	coreport "github.com/fitcore/workout-planner/internal/domain/port/core"
	"github.com/fitcore/workout-planner/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// Sequence implements the Sequence port over one row of the counters table.
// The UPDATE .. RETURNING makes the read-modify-write a single atomic
// statement; inside a transaction the row lock serializes concurrent
// allocations. The row is seeded by the migration, so a missing row means
// the schema bootstrap never ran.
type Sequence struct {
	db     *gorm.DB
	name   string
	logger coreport.Logger
}

// NewSequence creates a Sequence bound to the named counter row
func NewSequence(db *gorm.DB, name string, logger coreport.Logger) *Sequence {
	return &Sequence{
		db:     db,
		name:   name,
		logger: logger,
	}
}

// Next atomically persists value+1 and returns it
func (s *Sequence) Next(ctx context.Context) (uint64, error) {
	var value uint64
	result := s.db.WithContext(ctx).Raw(
		fmt.Sprintf("UPDATE %s SET value = value + 1 WHERE name = ? RETURNING value", model.CountersTable),
		s.name,
	).Scan(&value)
	if result.Error != nil {
		s.logger.Error("Counter increment failed", map[string]any{
			"counter": s.name,
			"error":   result.Error.Error(),
		})
		return 0, fmt.Errorf("%w: %s: %v", errs.ErrCounterUpdate, s.name, result.Error)
	}
	if result.RowsAffected == 0 {
		s.logger.Error("Counter row missing", map[string]any{
			"counter": s.name,
		})
		return 0, fmt.Errorf("%w: %s: counter row missing", errs.ErrCounterUpdate, s.name)
	}
	return value, nil
}
