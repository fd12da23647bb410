package kvstore

import (
	"encoding/json"
	"fmt"

	errs "github.com/fitcore/workout-planner/internal/domain/error"
)

// MaxRecordSize is the serialized size ceiling for a stored record. Current
// entities stay far below it; crossing it means a caller broke the bounded
// record contract.
const MaxRecordSize = 1024

// Encode serializes a record to its stored byte form, enforcing the size
// ceiling.
func Encode[R any](record *R) ([]byte, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInternalServer, err)
	}
	if len(data) > MaxRecordSize {
		return nil, fmt.Errorf("%w: %d bytes, limit %d", errs.ErrRecordTooLarge, len(data), MaxRecordSize)
	}
	return data, nil
}

// Decode deserializes a record from its stored byte form
func Decode[R any](data []byte) (*R, error) {
	var record R
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInternalServer, err)
	}
	return &record, nil
}
