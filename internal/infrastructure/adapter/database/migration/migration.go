package migration

import (
	"errors"

	coreport "github.com/fitcore/workout-planner/internal/domain/port/core"
	"github.com/fitcore/workout-planner/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// Manager bootstraps the persistent layout: the two record regions and the
// counters region. There is no schema versioning; the layout is fixed.
type Manager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewManager creates a new migration manager
func NewManager(db *gorm.DB, logger coreport.Logger) *Manager {
	return &Manager{
		db:     db,
		logger: logger,
	}
}

// MigrateAll creates the tables and seeds the counters
func (m *Manager) MigrateAll() error {
	m.logger.Info("Bootstrapping storage schema", nil)

	if err := m.db.AutoMigrate(
		&model.UserRecord{},
		&model.WorkoutPlanRecord{},
		&model.Counter{},
	); err != nil {
		m.logger.Error("Failed to migrate storage tables", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if err := m.seedCounters(); err != nil {
		m.logger.Error("Failed to seed counters", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	m.logger.Info("Storage schema ready", nil)
	return nil
}

// seedCounters inserts the zero-valued counter rows on first boot. Existing
// rows keep their value: counters are initialized once and never reset.
func (m *Manager) seedCounters() error {
	for _, name := range []string{model.UserCounter, model.PlanCounter} {
		var counter model.Counter
		err := m.db.Where("name = ?", name).Take(&counter).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := m.db.Create(&model.Counter{Name: name, Value: 0}).Error; err != nil {
				return err
			}
			m.logger.Info("Counter initialized", map[string]any{
				"counter": name,
			})
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}
