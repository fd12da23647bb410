package plan

import (
	"testing"

	"github.com/fitcore/workout-planner/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestTierDeriverDerive(t *testing.T) {
	deriver := NewTierDeriver()

	tests := []struct {
		name  string
		attrs entity.Attributes
		want  entity.Intensity
	}{
		{
			name:  "Zero attributes land on the hardest tier",
			attrs: entity.Attributes{Age: 0, Height: 0, Weight: 0},
			want:  entity.Intensity{PushUps: 30, SitUps: 40, RunningTime: 90},
		},
		{
			name:  "Middle-aged average build lands on tier six",
			attrs: entity.Attributes{Age: 60, Height: 6, Weight: 70},
			want:  entity.Intensity{PushUps: 7, SitUps: 10, RunningTime: 30},
		},
		{
			name:  "Maximum in-range attributes land on the easiest tier",
			attrs: entity.Attributes{Age: 100, Height: 7, Weight: 150},
			want:  entity.Intensity{PushUps: 3, SitUps: 5, RunningTime: 10},
		},
		{
			name:  "Out-of-range attributes saturate at the easiest tier",
			attrs: entity.Attributes{Age: 500, Height: 40, Weight: 900},
			want:  entity.Intensity{PushUps: 3, SitUps: 5, RunningTime: 10},
		},
		{
			name:  "Young light user lands near the hard end",
			attrs: entity.Attributes{Age: 20, Height: 6, Weight: 60},
			want:  entity.Intensity{PushUps: 12, SitUps: 20, RunningTime: 45},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, deriver.Derive(tt.attrs))
		})
	}
}

func TestTierDeriverIsDeterministic(t *testing.T) {
	deriver := NewTierDeriver()
	attrs := entity.Attributes{Age: 45, Height: 5, Weight: 80}

	first := deriver.Derive(attrs)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, deriver.Derive(attrs))
	}
}
