package plan

import (
	"github.com/fitcore/workout-planner/internal/domain/entity"
)

// Deriver maps a user's physical attributes to a workout intensity. It must
// be pure: repeated derivation from the same attributes yields the identical
// triple.
type Deriver interface {
	Derive(attrs entity.Attributes) entity.Intensity
}

// Normalization denominators for each attribute; values scale onto 0-10 via
// integer division, and the summed score renormalizes over the combined
// range of 30.
const (
	ageDenominator    = 100
	heightDenominator = 7
	weightDenominator = 150
	scoreDenominator  = 30
)

// intensityTiers is the fixed lookup table; intensity descends as the
// composite score rises, so older or heavier users get easier plans.
var intensityTiers = [10]entity.Intensity{
	{PushUps: 30, SitUps: 40, RunningTime: 90},
	{PushUps: 25, SitUps: 35, RunningTime: 75},
	{PushUps: 20, SitUps: 30, RunningTime: 60},
	{PushUps: 16, SitUps: 25, RunningTime: 50},
	{PushUps: 12, SitUps: 20, RunningTime: 45},
	{PushUps: 10, SitUps: 15, RunningTime: 35},
	{PushUps: 7, SitUps: 10, RunningTime: 30},
	{PushUps: 5, SitUps: 10, RunningTime: 20},
	{PushUps: 4, SitUps: 8, RunningTime: 15},
	{PushUps: 3, SitUps: 5, RunningTime: 10},
}

// TierDeriver selects an intensity tier from a weighted composite of age,
// height and weight.
type TierDeriver struct{}

// NewTierDeriver creates the standard tier-based deriver
func NewTierDeriver() *TierDeriver {
	return &TierDeriver{}
}

// normalize scales a value onto 0-10 by integer division; results above 10
// are possible for out-of-range inputs and are handled by the final clamp.
func normalize(value, denominator uint64) uint64 {
	return value * 10 / denominator
}

// Derive computes the tier index as the renormalized sum of the three
// normalized attributes. Unvalidated attributes (age over 100, weight over
// 150) can push the index past the last tier; the index saturates at tier 9
// rather than failing the creation.
func (d *TierDeriver) Derive(attrs entity.Attributes) entity.Intensity {
	score := normalize(attrs.Age, ageDenominator) +
		normalize(attrs.Height, heightDenominator) +
		normalize(attrs.Weight, weightDenominator)

	index := normalize(score, scoreDenominator)
	if index >= uint64(len(intensityTiers)) {
		index = uint64(len(intensityTiers)) - 1
	}
	return intensityTiers[index]
}
