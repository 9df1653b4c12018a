package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retsim/genreturns/internal/domain"
)

func TestResolveGridFromTotal(t *testing.T) {
	// 180 daily points over half a year of seconds.
	grid, err := ResolveGrid(180, domain.TotalSeconds(15552000))
	require.NoError(t, err)
	assert.Equal(t, 180, grid.NumPoints)
	assert.InDelta(t, 86400.0, grid.IntervalSeconds, 1e-9)
	assert.InDelta(t, 15552000.0, grid.TotalSeconds(), 1e-9)
}

func TestResolveGridFromInterval(t *testing.T) {
	grid, err := ResolveGrid(42, domain.IntervalSeconds(3600))
	require.NoError(t, err)
	assert.Equal(t, 42, grid.NumPoints)
	assert.Equal(t, 3600.0, grid.IntervalSeconds)
	assert.InDelta(t, 151200.0, grid.TotalSeconds(), 1e-9)
}

func TestResolveGridConsistency(t *testing.T) {
	cases := []struct {
		numPoints int
		total     float64
	}{
		{1, 60},
		{7, 604800},
		{365, 31536000},
		{1000, 12345.678},
	}
	for _, tc := range cases {
		grid, err := ResolveGrid(tc.numPoints, domain.TotalSeconds(tc.total))
		require.NoError(t, err)
		// interval * num_points recovers the supplied total.
		assert.InEpsilon(t, tc.total, grid.IntervalSeconds*float64(tc.numPoints), 1e-12)
	}
}

func TestResolveGridErrors(t *testing.T) {
	cases := []struct {
		name      string
		numPoints int
		spec      domain.TimeSpec
	}{
		{"zero points", 0, domain.TotalSeconds(100)},
		{"negative points", -5, domain.IntervalSeconds(100)},
		{"neither duration", 10, domain.TimeSpec{}},
		{"zero total", 10, domain.TotalSeconds(0)},
		{"negative total", 10, domain.TotalSeconds(-1)},
		{"zero interval", 10, domain.IntervalSeconds(0)},
		{"negative interval", 10, domain.IntervalSeconds(-86400)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ResolveGrid(tc.numPoints, tc.spec)
			require.Error(t, err)
			assert.True(t, domain.IsConfigError(err), "expected a configuration error, got %v", err)
		})
	}
}
