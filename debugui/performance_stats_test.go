package debugui_test

import (
	"testing"
	"time"

	"github.com/plus3/backdrop/debugui"
	"github.com/stretchr/testify/assert"
)

func TestPerformanceStatsAverage(t *testing.T) {
	ps := debugui.NewPerformanceStats(4)
	assert.Zero(t, ps.Average())

	ps.Record(0.010)
	ps.Record(0.020)
	assert.InDelta(t, 15, ps.Average(), 1e-4)

	for range 4 {
		ps.Record(0.016)
	}
	assert.InDelta(t, 16, ps.Average(), 1e-4)
}

func TestFrameTimer(t *testing.T) {
	ft := debugui.NewFrameTimer()
	time.Sleep(5 * time.Millisecond)
	assert.GreaterOrEqual(t, ft.GetDeltaTime(), float32(0.005))
	assert.Less(t, ft.GetDeltaTime(), float32(0.005))
}
