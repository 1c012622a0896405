package loadtest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTrend(t *testing.T) {
	var tr Trend
	require.Zero(t, tr.Percentile(95))
	require.Zero(t, tr.Avg())

	for i := 1; i <= 100; i++ {
		tr.Add(time.Duration(i) * time.Millisecond)
	}
	require.Equal(t, 100, tr.Count())
	require.Equal(t, time.Millisecond, tr.Min())
	require.Equal(t, 100*time.Millisecond, tr.Max())
	require.Equal(t, 50500*time.Microsecond, tr.Avg())
	require.Equal(t, 50500*time.Microsecond, tr.Percentile(50))
	require.InDelta(t, float64(95050*time.Microsecond), float64(tr.Percentile(95)), float64(time.Microsecond))
	require.Equal(t, time.Millisecond, tr.Percentile(0))
	require.Equal(t, 100*time.Millisecond, tr.Percentile(100))
}

func TestRate(t *testing.T) {
	var r Rate
	require.Zero(t, r.Value())

	r.Add(false)
	r.Add(true)
	r.Add(false)
	r.Add(false)
	require.Equal(t, 1, r.Failed())
	require.InDelta(t, 0.25, r.Value(), 1e-9)
}
