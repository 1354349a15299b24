package perf_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/borkshop/spacetime/internal/ecs"
	"github.com/borkshop/spacetime/internal/perf"
)

func TestPerf(t *testing.T) {
	var (
		p    perf.Perf
		runs int
	)
	p.Init("test", ecs.ProcFunc(func() { runs++ }))
	assert.Equal(t, int64(0), int64(p.Last()))

	for i := 0; i < 100; i++ {
		p.Process()
	}
	assert.Equal(t, 100, runs)
	assert.Equal(t, 100, p.Rounds())
	assert.True(t, p.Last() >= 0)
	assert.True(t, p.Mean() >= 0)
	assert.NoError(t, p.Close())

	da := perf.Dash{Perf: &p}
	da.Note("ticks", "%d", 7)
	status := da.Status()
	assert.True(t, strings.HasPrefix(status, "○ t=100 "), status)
	assert.Contains(t, status, "ticks=7")
	assert.Contains(t, status, "heap=")
}
