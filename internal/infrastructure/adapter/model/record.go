package model

// Table names for the two record regions and the counter region
const (
	UserRecordsTable = "user_records"
	PlanRecordsTable = "workout_plan_records"
	CountersTable    = "counters"
)

// Counter names, one durable counter per entity type
const (
	UserCounter = "user_id"
	PlanCounter = "workout_plan_id"
)

// Record is the row shape of both record regions: a 64-bit key and the
// serialized record bytes. The schema stays entity-agnostic; entities live
// entirely in the serialized payload.
type Record struct {
	ID   uint64 `gorm:"primaryKey;autoIncrement:false"`
	Data []byte `gorm:"not null"`
}

// UserRecord maps Record onto the user region
type UserRecord struct {
	Record
}

// TableName specifies the table name for UserRecord
func (UserRecord) TableName() string {
	return UserRecordsTable
}

// WorkoutPlanRecord maps Record onto the workout-plan region
type WorkoutPlanRecord struct {
	Record
}

// TableName specifies the table name for WorkoutPlanRecord
func (WorkoutPlanRecord) TableName() string {
	return PlanRecordsTable
}

// Counter is the row shape of the durable counters, one row per entity type
type Counter struct {
	Name  string `gorm:"primaryKey;size:64"`
	Value uint64 `gorm:"not null"`
}

// TableName specifies the table name for Counter
func (Counter) TableName() string {
	return CountersTable
}
