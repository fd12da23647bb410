package plan

import (
	"context"

	"github.com/fitcore/workout-planner/internal/domain/entity"
	"github.com/fitcore/workout-planner/internal/domain/port/persistence"
)

// derivationMemo wraps a Deriver for the duration of one generation call.
// Cache contract: check storage first and return the stored plan's values
// verbatim when one exists, otherwise derive at most once and hold the
// result for this call. Nothing is cached across calls; a memo is built
// fresh every time.
type derivationMemo struct {
	deriver Deriver
	plans   persistence.Table[entity.WorkoutPlan]
	cached  *entity.Intensity
}

// newDerivationMemo creates a memo bound to one generation call
func newDerivationMemo(deriver Deriver, plans persistence.Table[entity.WorkoutPlan]) *derivationMemo {
	return &derivationMemo{
		deriver: deriver,
		plans:   plans,
	}
}

// intensityFor resolves the intensity for the user: memoized value first,
// then stored plan, then a single derivation.
func (m *derivationMemo) intensityFor(ctx context.Context, user *entity.User) (entity.Intensity, error) {
	if m.cached != nil {
		return *m.cached, nil
	}

	existing, err := findByUser(ctx, m.plans, user.ID)
	if err != nil {
		return entity.Intensity{}, err
	}
	if existing != nil {
		intensity := existing.Intensity()
		m.cached = &intensity
		return intensity, nil
	}

	intensity := m.deriver.Derive(user.Attributes())
	m.cached = &intensity
	return intensity, nil
}
