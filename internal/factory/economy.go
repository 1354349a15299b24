package factory

import (
	"math"

	ecstime "github.com/borkshop/spacetime/internal/ecs/time"
	"github.com/borkshop/spacetime/internal/resource"
)

// Economy converts the Time resource into factory ticks: each frame spends
// up to the frame's duration of Time, and every completed Period of spent
// Time is one tick. Production stops dead when Time runs out.
type Economy struct {
	timer    ecstime.Timer
	scale    float64
	consumed ecstime.Duration
}

// Init sets the tick period and clears all progress.
func (e *Economy) Init(period ecstime.Duration) {
	e.timer = ecstime.Timer{Period: period}
	e.Reset()
}

// Reset clears progress towards the next tick.
func (e *Economy) Reset() {
	e.timer.Reset()
	e.scale = 1
	e.consumed = 0
}

// Period returns the Time spent per tick.
func (e *Economy) Period() ecstime.Duration { return e.timer.Period }

// Scale returns the current time scale: 1 while Time remains, 0 once spent.
func (e *Economy) Scale() float64 { return e.scale }

// Consumed returns how much Time the last Advance spent.
func (e *Economy) Consumed() ecstime.Duration { return e.consumed }

// Progress returns the fraction of the way to the next tick.
func (e *Economy) Progress() float64 {
	if e.timer.Period <= 0 {
		return 0
	}
	return float64(e.timer.Elapsed() / e.timer.Period)
}

// Advance spends Time from store for a frame of length dt, returning how many
// ticks completed.
func (e *Economy) Advance(store resource.Store, dt ecstime.Duration) int {
	balance := store.Get(resource.Time)
	if balance > 0 {
		e.scale = 1
	} else {
		e.scale = 0
	}
	e.consumed = 0
	consumed := math.Min(balance, float64(dt)*e.scale)
	if consumed <= 0 {
		return 0
	}
	store.Add(resource.Time, -consumed)
	e.consumed = ecstime.Duration(consumed)
	n := e.timer.Advance(e.consumed)
	if store.Get(resource.Time) <= 0 {
		e.scale = 0
	}
	return n
}

func (f *Factory) runEconomy() {
	if f.over {
		f.ticks = 0
		return
	}
	f.ticks = f.econ.Advance(&f.pool, f.dt)
}
