package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeSpecVariants(t *testing.T) {
	total := TotalSeconds(100)
	sec, ok := total.Total()
	assert.True(t, ok)
	assert.Equal(t, 100.0, sec)
	_, ok = total.Interval()
	assert.False(t, ok)
	assert.False(t, total.IsZero())

	interval := IntervalSeconds(60)
	sec, ok = interval.Interval()
	assert.True(t, ok)
	assert.Equal(t, 60.0, sec)
	_, ok = interval.Total()
	assert.False(t, ok)

	var zero TimeSpec
	assert.True(t, zero.IsZero())
}

func TestGenerationRequestValidate(t *testing.T) {
	valid := func() *GenerationRequest {
		return &GenerationRequest{
			NumPoints:  10,
			Time:       IntervalSeconds(86400),
			StartValue: 1.0,
			YearlyMean: 1.0,
		}
	}

	require.NoError(t, valid().Validate())

	cases := []struct {
		name   string
		mutate func(*GenerationRequest)
	}{
		{"zero points", func(r *GenerationRequest) { r.NumPoints = 0 }},
		{"no time parameter", func(r *GenerationRequest) { r.Time = TimeSpec{} }},
		{"non-positive total", func(r *GenerationRequest) { r.Time = TotalSeconds(-1) }},
		{"non-positive interval", func(r *GenerationRequest) { r.Time = IntervalSeconds(0) }},
		{"zero mean", func(r *GenerationRequest) { r.YearlyMean = 0 }},
		{"negative mean", func(r *GenerationRequest) { r.YearlyMean = -1.1 }},
		{"negative stddev", func(r *GenerationRequest) { r.YearlyStddev = -0.5 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := valid()
			tc.mutate(req)
			err := req.Validate()
			require.Error(t, err)
			assert.True(t, IsConfigError(err))
		})
	}
}

func TestResolvedGridTotalSeconds(t *testing.T) {
	grid := ResolvedGrid{IntervalSeconds: 86400, NumPoints: 180}
	assert.InDelta(t, 15552000.0, grid.TotalSeconds(), 1e-9)
}

func TestIsConfigErrorUnwraps(t *testing.T) {
	err := fmt.Errorf("loading scenario: %w", NewConfigError("num-points must be at least 1, got %d", 0))
	assert.True(t, IsConfigError(err))
	assert.False(t, IsConfigError(fmt.Errorf("plain failure")))
}

func TestLeverageConstructors(t *testing.T) {
	assert.Equal(t, Leverage{Mode: LeverageContinuous, Factor: 2}, ContinuousLeverage(2))
	assert.Equal(t, Leverage{Mode: LeveragePointwise, Factor: -1}, PointwiseLeverage(-1))
	assert.Equal(t, Leverage{Mode: LeverageInitial, Factor: 3}, InitialLeverage(3))
	assert.Equal(t, LeverageNone, Leverage{}.Mode)
}
