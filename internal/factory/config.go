package factory

import (
	"fmt"
	"image"
	"log"

	ecstime "github.com/borkshop/spacetime/internal/ecs/time"
	"github.com/borkshop/spacetime/internal/resource"
)

// MachineKind names a kind of machine.
type MachineKind uint8

// Machine kinds.
const (
	InletMachine MachineKind = iota
	OutletMachine
	AmmoFactory
	RocketFactory
	HullFixer
	PipeSwitch

	numMachineKinds
)

var machineNames = [numMachineKinds]string{
	"Inlet", "Outlet", "Ammo Factory", "Rocket Factory", "Hull Fixer", "Pipe Switch",
}

func (k MachineKind) String() string {
	if k < numMachineKinds {
		return machineNames[k]
	}
	return fmt.Sprintf("MachineKind(%d)", uint8(k))
}

// ShopKinds lists the machines a player may place, in shop order.
var ShopKinds = [...]MachineKind{AmmoFactory, PipeSwitch, HullFixer, RocketFactory}

// Flow tags a port as consuming (Inlet) or producing (Outlet).
type Flow uint8

// Flows.
const (
	Inlet Flow = iota
	Outlet
)

func (fl Flow) String() string {
	if fl == Inlet {
		return "Inlet"
	}
	return "Outlet"
}

// PortSpec describes one port of a machine kind.
type PortSpec struct {
	Side Direction
	Flow Flow
}

// Cost is an amount of some resource drawn from an inlet network per
// production.
type Cost struct {
	Kind   resource.Kind
	Amount float64
}

// MachineSpec configures a machine kind.
//
// A producing machine fills its own buffer of Output up to Capacity, Yield
// units at a time, when every Cost is available from its inlet networks.
// ToPool machines deliver Yield into the pool instead, capping the pool's
// Output at Capacity, and have no buffer.
type MachineSpec struct {
	Ports    []PortSpec
	Output   resource.Kind
	Capacity float64
	Yield    float64
	Costs    []Cost
	ToPool   bool
	Fixed    bool // placed by the layout; not sold in the shop
}

// Fixture is a fixed machine placed by the layout. Side overrides the side of
// every port in the kind's spec; Resource overrides the buffer kind.
type Fixture struct {
	Kind     MachineKind
	Pos      image.Point
	Side     Direction
	Resource resource.Kind
}

// Config configures a Factory.
type Config struct {
	Size                int
	TickPeriod          ecstime.Duration
	ConnectionsPerFrame int
	Machines            map[MachineKind]MachineSpec
	Layout              []Fixture
	Logger              *log.Logger
}

// DefaultSize is the default grid side length.
const DefaultSize = 10

// MinLayoutSize is the smallest grid DefaultLayout fills.
const MinLayoutSize = 4

// DefaultConfig returns the configuration of a new game.
func DefaultConfig() Config {
	return Config{
		Size:                DefaultSize,
		TickPeriod:          ecstime.Second,
		ConnectionsPerFrame: 1,
		Machines:            DefaultMachines(),
		Layout:              DefaultLayout(DefaultSize),
	}
}

// DefaultMachines returns the stock machine table.
func DefaultMachines() map[MachineKind]MachineSpec {
	return map[MachineKind]MachineSpec{
		InletMachine: {
			Ports:    []PortSpec{{Right, Outlet}},
			Output:   resource.Mineral,
			Capacity: 10,
			Yield:    1,
			Fixed:    true,
		},
		OutletMachine: {
			Ports:    []PortSpec{{Left, Inlet}},
			Capacity: 10,
			Yield:    1,
			ToPool:   true,
			Fixed:    true,
		},
		AmmoFactory: {
			Ports:    []PortSpec{{Left, Inlet}, {Right, Outlet}},
			Output:   resource.Ammo,
			Capacity: 10,
			Yield:    3,
			Costs:    []Cost{{resource.Mineral, 1}},
		},
		RocketFactory: {
			Ports:    []PortSpec{{Right, Inlet}, {Down, Inlet}, {Left, Outlet}},
			Output:   resource.Rockets,
			Capacity: 5,
			Yield:    1,
			Costs:    []Cost{{resource.Mineral, 3}, {resource.Gas, 2}},
		},
		HullFixer: {
			Ports:    []PortSpec{{Up, Inlet}},
			Output:   resource.Health,
			Capacity: 100,
			Yield:    20,
			Costs:    []Cost{{resource.Mineral, 1}},
			ToPool:   true,
		},
		PipeSwitch: {
			Ports:    []PortSpec{{Left, Inlet}, {Right, Outlet}},
			Output:   resource.Mineral,
			Capacity: 5,
			Yield:    1,
			Costs:    []Cost{{resource.Mineral, 1}},
		},
	}
}

// DefaultLayout places the fixed machines around the border of an n-by-n
// grid: a mineral inlet on the left, a gas inlet on the top, and two outlets
// to the ship on the right.
func DefaultLayout(n int) []Fixture {
	if n < MinLayoutSize {
		return nil
	}
	return []Fixture{
		{Kind: InletMachine, Pos: image.Pt(0, 3), Side: Right, Resource: resource.Mineral},
		{Kind: InletMachine, Pos: image.Pt(n/2-1, n-1), Side: Down, Resource: resource.Gas},
		{Kind: OutletMachine, Pos: image.Pt(n-1, 3), Side: Left},
		{Kind: OutletMachine, Pos: image.Pt(n-1, n-4), Side: Left},
	}
}
