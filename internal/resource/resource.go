// Package resource defines the shared resource kinds and the pool that the
// factory and the space feed both draw from.
package resource

import "fmt"

// Kind names a resource.
type Kind uint8

// Resource kinds.
const (
	Health Kind = iota
	Mineral
	Gas
	Time
	Ammo
	Rockets

	numKinds
)

// Kinds lists every resource kind in display order.
var Kinds = [...]Kind{Health, Mineral, Gas, Time, Ammo, Rockets}

var kindNames = [numKinds]string{"Health", "Mineral", "Gas", "Time", "Ammo", "Rockets"}

func (k Kind) String() string {
	if k < numKinds {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Transportable returns true for kinds that outlets ship off to the pool.
func (k Kind) Transportable() bool { return k == Ammo || k == Rockets }

// Store is the narrow view of a pool that collaborators need.
type Store interface {
	Get(k Kind) float64
	Add(k Kind, delta float64)
}

// Pool is the global resource record. The zero value is empty; use Reset or
// DefaultPool for a new-game pool.
type Pool struct {
	amounts [numKinds]float64
}

// DefaultPool returns a pool holding the new-game defaults.
func DefaultPool() Pool {
	var p Pool
	p.Reset()
	return p
}

// Reset restores the new-game defaults.
func (p *Pool) Reset() {
	p.amounts = [numKinds]float64{
		Health:  100,
		Mineral: 10,
		Gas:     0,
		Time:    30,
		Ammo:    20,
		Rockets: 0,
	}
}

// Get returns the amount held of k; unknown kinds hold nothing.
func (p *Pool) Get(k Kind) float64 {
	if k >= numKinds {
		return 0
	}
	return p.amounts[k]
}

// Add adjusts the amount held of k by delta; unknown kinds are ignored.
func (p *Pool) Add(k Kind, delta float64) {
	if k < numKinds {
		p.amounts[k] += delta
	}
}

// Set replaces the amount held of k.
func (p *Pool) Set(k Kind, v float64) {
	if k < numKinds {
		p.amounts[k] = v
	}
}

func (p Pool) String() string {
	return fmt.Sprintf("HP:%.0f Min:%.0f Gas:%.0f Time:%.1f Ammo:%.0f Rkt:%.0f",
		p.amounts[Health], p.amounts[Mineral], p.amounts[Gas],
		p.amounts[Time], p.amounts[Ammo], p.amounts[Rockets])
}
