// Package space stands in for the space arena: a noise-driven feed of
// pickups and hazards that acts on the shared resource pool.
package space

import (
	"fmt"
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	ecstime "github.com/borkshop/spacetime/internal/ecs/time"
	"github.com/borkshop/spacetime/internal/resource"
)

// EventKind names something that happened out in space.
type EventKind uint8

// Event kinds.
const (
	Pickup EventKind = iota
	Hit
	Fire
	Launch
)

var eventNames = [...]string{"pickup", "hit", "fire", "launch"}

func (k EventKind) String() string {
	if int(k) < len(eventNames) {
		return eventNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", uint8(k))
}

// Event records one change that the feed made to the pool.
type Event struct {
	Kind     EventKind
	Resource resource.Kind
	Amount   float64
}

func (ev Event) String() string {
	return fmt.Sprintf("%v %v %+.0f", ev.Kind, ev.Resource, ev.Amount)
}

// channel is one noise-sampled stream of events.
type channel struct {
	row       float64
	threshold float64
}

var (
	mineralChannel = channel{row: 0, threshold: 0.53}
	gasChannel     = channel{row: 17, threshold: 0.6}
	timeChannel    = channel{row: 31, threshold: 0.68}
	threatChannel  = channel{row: 53, threshold: 0.62}
)

// HitDamage is dealt by an unanswered threat, GrazeDamage by one that was
// shot at; a time pickup is worth TimeBonus.
const (
	HitDamage   = 15
	GrazeDamage = 5
	TimeBonus   = 5
)

const (
	beatStride   = 0.37
	noiseOctaves = 2
)

// Feed produces a deterministic stream of space events, one beat per Period
// of frame time.
type Feed struct {
	timer ecstime.Timer
	noise opensimplex.Noise
	beat  int
	buf   []Event
}

// NewFeed creates a feed from a noise seed.
func NewFeed(seed int64, period ecstime.Duration) *Feed {
	return &Feed{
		timer: ecstime.Timer{Period: period},
		noise: opensimplex.NewNormalized(seed),
	}
}

// Beats returns how many beats have run.
func (fd *Feed) Beats() int { return fd.beat }

// Step advances the feed by dt, applying every completed beat to store. The
// returned events are only valid until the next call.
func (fd *Feed) Step(store resource.Store, dt ecstime.Duration) []Event {
	fd.buf = fd.buf[:0]
	for n := fd.timer.Advance(dt); n > 0; n-- {
		fd.runBeat(store)
	}
	return fd.buf
}

func (fd *Feed) sample(ch channel) float64 {
	x := float64(fd.beat) * beatStride
	total, amp, norm, freq := 0.0, 1.0, 0.0, 1.0
	for i := 0; i < noiseOctaves; i++ {
		total += fd.noise.Eval2(x*freq, ch.row*freq) * amp
		norm += amp
		amp *= 0.5
		freq *= 2
	}
	return total / norm
}

func (fd *Feed) runBeat(store resource.Store) {
	fd.beat++

	if v := fd.sample(mineralChannel); v > mineralChannel.threshold {
		fd.apply(store, Pickup, resource.Mineral, 1+math.Floor((v-mineralChannel.threshold)*20))
	}
	if v := fd.sample(gasChannel); v > gasChannel.threshold {
		fd.apply(store, Pickup, resource.Gas, 1)
	}
	if v := fd.sample(timeChannel); v > timeChannel.threshold {
		fd.apply(store, Pickup, resource.Time, TimeBonus)
	}
	if v := fd.sample(threatChannel); v > threatChannel.threshold {
		switch {
		case store.Get(resource.Rockets) >= 1:
			fd.apply(store, Launch, resource.Rockets, -1)
		case store.Get(resource.Ammo) >= 1:
			fd.apply(store, Fire, resource.Ammo, -1)
			fd.damage(store, GrazeDamage)
		default:
			fd.damage(store, HitDamage)
		}
	}
}

func (fd *Feed) damage(store resource.Store, amount float64) {
	if hp := store.Get(resource.Health); amount > hp {
		amount = hp
	}
	if amount > 0 {
		fd.apply(store, Hit, resource.Health, -amount)
	}
}

func (fd *Feed) apply(store resource.Store, kind EventKind, res resource.Kind, delta float64) {
	store.Add(res, delta)
	fd.buf = append(fd.buf, Event{Kind: kind, Resource: res, Amount: delta})
}
