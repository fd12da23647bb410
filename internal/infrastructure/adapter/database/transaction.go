package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/fitcore/workout-planner/internal/domain/entity"
	coreport "github.com/fitcore/workout-planner/internal/domain/port/core"
	"github.com/fitcore/workout-planner/internal/domain/port/persistence"
	"github.com/fitcore/workout-planner/internal/infrastructure/adapter/model"
	"github.com/fitcore/workout-planner/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const txKey contextKey = "tx"

// UnitOfWork implements the unit-of-work port over gorm transactions. The
// transaction travels in the context; tables and sequences fetched with a
// transactional context bind to it, everything else binds to the base
// handle.
type UnitOfWork struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewUnitOfWork creates a new UnitOfWork instance
func NewUnitOfWork(db *gorm.DB, logger coreport.Logger) persistence.UnitOfWork {
	return &UnitOfWork{
		db:     db,
		logger: logger,
	}
}

// Begin starts a new database transaction with SERIALIZABLE isolation so
// scan-then-insert checks cannot interleave
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.logger.Error("Failed to begin transaction", map[string]any{"error": tx.Error.Error()})
		return ctx, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	if err := tx.Exec("SET TRANSACTION ISOLATION LEVEL SERIALIZABLE").Error; err != nil {
		tx.Rollback()
		u.logger.Error("Failed to set transaction isolation level", map[string]any{"error": err.Error()})
		return ctx, fmt.Errorf("failed to set transaction isolation level: %w", err)
	}

	return context.WithValue(ctx, txKey, tx), nil
}

// Commit commits the transaction in the given context
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return fmt.Errorf("no transaction found in context")
	}

	if err := tx.Commit().Error; err != nil {
		u.logger.Error("Failed to commit transaction", map[string]any{"error": err.Error()})
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Rollback rolls back the transaction in the given context
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return fmt.Errorf("no transaction found in context")
	}

	err := tx.Rollback().Error
	if err != nil && strings.Contains(err.Error(), "already been committed or rolled back") {
		u.logger.Warn("Transaction has already been committed or rolled back", map[string]any{
			"error": err.Error(),
		})
		return nil
	}
	if err != nil {
		u.logger.Error("Failed to rollback transaction", map[string]any{"error": err.Error()})
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}
	return nil
}

// Users returns the user table bound to the transaction in ctx
func (u *UnitOfWork) Users(ctx context.Context) persistence.Table[entity.User] {
	return repository.NewTable[entity.User](u.dbFromContext(ctx), model.UserRecordsTable, u.logger)
}

// WorkoutPlans returns the workout-plan table bound to the transaction in ctx
func (u *UnitOfWork) WorkoutPlans(ctx context.Context) persistence.Table[entity.WorkoutPlan] {
	return repository.NewTable[entity.WorkoutPlan](u.dbFromContext(ctx), model.PlanRecordsTable, u.logger)
}

// UserIDs returns the user id sequence bound to the transaction in ctx
func (u *UnitOfWork) UserIDs(ctx context.Context) persistence.Sequence {
	return repository.NewSequence(u.dbFromContext(ctx), model.UserCounter, u.logger)
}

// WorkoutPlanIDs returns the plan id sequence bound to the transaction in ctx
func (u *UnitOfWork) WorkoutPlanIDs(ctx context.Context) persistence.Sequence {
	return repository.NewSequence(u.dbFromContext(ctx), model.PlanCounter, u.logger)
}

// dbFromContext retrieves the transactional handle from context, falling
// back to the base handle
func (u *UnitOfWork) dbFromContext(ctx context.Context) *gorm.DB {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if ok && tx != nil {
		return tx
	}
	return u.db.WithContext(ctx)
}
