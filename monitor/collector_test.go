package monitor

import (
	"math"
	"testing"

	"github.com/tatsumon/go-sysmon/internal/assert"
)

func TestClampPercent(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected float64
	}{
		{"nan", math.NaN(), 0},
		{"positive infinity", math.Inf(1), 0},
		{"negative infinity", math.Inf(-1), 0},
		{"negative", -5, 0},
		{"above range", 150, 100},
		{"zero", 0, 0},
		{"in range", 42.5, 42.5},
		{"upper bound", 100, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, clampPercent(tt.value), tt.expected)
		})
	}
}

func TestUsagePercent(t *testing.T) {
	assert.Equal(t, usagePercent(0, 0), 0.0)
	assert.Equal(t, usagePercent(50, 200), 25.0)
	assert.Equal(t, usagePercent(200, 100), 100.0)
	assert.InDelta(t, usagePercent(1, 3), 33.333, 0.001)
}

func TestSaturatingSub(t *testing.T) {
	assert.Equal(t, saturatingSub(5, 3), uint64(2))
	assert.Equal(t, saturatingSub(3, 5), uint64(0))
	assert.Equal(t, saturatingSub(0, 0), uint64(0))
	assert.Equal(t, saturatingSub(math.MaxUint64, 1), uint64(math.MaxUint64-1))
}
