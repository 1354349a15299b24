package space_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/borkshop/spacetime/internal/resource"
	"github.com/borkshop/spacetime/internal/space"
)

func run(seed int64, beats int) (resource.Pool, []space.Event) {
	pool := resource.DefaultPool()
	fd := space.NewFeed(seed, 1)
	var all []space.Event
	for i := 0; i < beats; i++ {
		all = append(all, fd.Step(&pool, 1)...)
	}
	return pool, all
}

func TestFeed_deterministic(t *testing.T) {
	p1, e1 := run(42, 300)
	p2, e2 := run(42, 300)
	assert.Equal(t, p1, p2)
	assert.Equal(t, e1, e2)
	require.NotEmpty(t, e1)
}

func TestFeed_poolAccounting(t *testing.T) {
	pool, events := run(7, 500)
	want := resource.DefaultPool()
	for _, ev := range events {
		want.Add(ev.Resource, ev.Amount)
	}
	assert.Equal(t, want, pool, "every change to the pool is reported")
	assert.True(t, pool.Get(resource.Health) >= 0)
	assert.True(t, pool.Get(resource.Ammo) >= 0)
	assert.True(t, pool.Get(resource.Rockets) >= 0)
}

func TestFeed_beats(t *testing.T) {
	pool := resource.DefaultPool()
	fd := space.NewFeed(1, 0.5)
	assert.Empty(t, fd.Step(&pool, 0))
	assert.Equal(t, 0, fd.Beats())
	fd.Step(&pool, 0.25)
	assert.Equal(t, 0, fd.Beats())
	fd.Step(&pool, 1.25)
	assert.Equal(t, 3, fd.Beats())
}

func TestFeed_noHealthLeft(t *testing.T) {
	var pool resource.Pool
	fd := space.NewFeed(3, 1)
	for i := 0; i < 500; i++ {
		for _, ev := range fd.Step(&pool, 1) {
			assert.NotEqual(t, space.Hit, ev.Kind, "nothing left to hit")
		}
	}
	assert.Equal(t, 0.0, pool.Get(resource.Health))
}
