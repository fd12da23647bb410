package repository

import (
	"context"
	"errors"
	"fmt"

	errs "github.com/fitcore/workout-planner/internal/domain/error"
	coreport "github.com/fitcore/workout-planner/internal/domain/port/core"
	"github.com/fitcore/workout-planner/internal/infrastructure/adapter/kvstore"
	"github.com/fitcore/workout-planner/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// Table implements the generic Table port over a two-column gorm table
// (id, data). Entities round-trip through the bounded kvstore codec; the
// database never sees their fields.
type Table[R any] struct {
	db         *gorm.DB
	table      string
	logger     coreport.Logger
	classifier *ErrorClassifier
}

// NewTable creates a Table bound to the named record region
func NewTable[R any](db *gorm.DB, table string, logger coreport.Logger) *Table[R] {
	return &Table[R]{
		db:         db,
		table:      table,
		logger:     logger,
		classifier: NewErrorClassifier(),
	}
}

// Get retrieves the record stored at id, or (nil, nil) when absent
func (t *Table[R]) Get(ctx context.Context, id uint64) (*R, error) {
	var row model.Record
	err := t.db.WithContext(ctx).Table(t.table).Where("id = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, t.wrapError("get", id, err)
	}
	return kvstore.Decode[R](row.Data)
}

// Put stores the record at id with upsert semantics
func (t *Table[R]) Put(ctx context.Context, id uint64, record *R) error {
	data, err := kvstore.Encode(record)
	if err != nil {
		return err
	}

	result := t.db.WithContext(ctx).Exec(
		fmt.Sprintf("INSERT INTO %s (id, data) VALUES (?, ?) ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data", t.table),
		id, data,
	)
	if result.Error != nil {
		return t.wrapError("put", id, result.Error)
	}
	return nil
}

// Remove deletes the record at id and returns it, or (nil, nil) when no
// record was stored at that key. Delete and read-back are one statement so
// the result reflects exactly what this call removed.
func (t *Table[R]) Remove(ctx context.Context, id uint64) (*R, error) {
	var row model.Record
	result := t.db.WithContext(ctx).Raw(
		fmt.Sprintf("DELETE FROM %s WHERE id = ? RETURNING id, data", t.table),
		id,
	).Scan(&row)
	if result.Error != nil {
		return nil, t.wrapError("remove", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return kvstore.Decode[R](row.Data)
}

// Scan visits records in ascending key order, restarting from the first key
// on every call
func (t *Table[R]) Scan(ctx context.Context, fn func(id uint64, record *R) (bool, error)) error {
	rows, err := t.db.WithContext(ctx).Table(t.table).Order("id ASC").Rows()
	if err != nil {
		return t.wrapError("scan", 0, err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var row model.Record
		if err := t.db.ScanRows(rows, &row); err != nil {
			return t.wrapError("scan", 0, err)
		}
		record, err := kvstore.Decode[R](row.Data)
		if err != nil {
			return err
		}
		keep, err := fn(row.ID, record)
		if err != nil {
			return err
		}
		if !keep {
			return nil
		}
	}
	if err := rows.Err(); err != nil {
		return t.wrapError("scan", 0, err)
	}
	return nil
}

// wrapError logs the database failure and folds it into the internal kind
func (t *Table[R]) wrapError(op string, id uint64, err error) error {
	t.logger.Error("Record table operation failed", map[string]any{
		"table":      t.table,
		"op":         op,
		"id":         id,
		"error":      err.Error(),
		"error_type": string(t.classifier.Classify(err)),
	})
	return fmt.Errorf("%w: %s %s: %v", errs.ErrInternalServer, op, t.table, err)
}
