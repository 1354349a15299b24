package main

import (
	"fmt"
	"image"
	"log"

	"github.com/borkshop/spacetime/internal/ecs"
	ecstime "github.com/borkshop/spacetime/internal/ecs/time"
	"github.com/borkshop/spacetime/internal/factory"
	hudlogs "github.com/borkshop/spacetime/internal/hud"
	"github.com/borkshop/spacetime/internal/input"
	"github.com/borkshop/spacetime/internal/perf"
	"github.com/borkshop/spacetime/internal/resource"
	"github.com/borkshop/spacetime/internal/space"
)

const (
	logCap     = 200
	beatPeriod = 0.5
)

type gameT struct {
	*factory.Factory

	seed   int64
	feed   *space.Feed
	perf   perf.Perf
	dash   perf.Dash
	logs   hudlogs.Logs
	cursor image.Point
	dt     ecstime.Duration
	quit   func()
	over   bool
}

// gameConfig builds the factory config for the command line flags.
func gameConfig(size int, period float64) (factory.Config, error) {
	if size < factory.MinLayoutSize {
		return factory.Config{}, fmt.Errorf("size %d is too small, need at least %d", size, factory.MinLayoutSize)
	}
	cfg := factory.DefaultConfig()
	cfg.Size = size
	cfg.Layout = factory.DefaultLayout(size)
	cfg.TickPeriod = ecstime.Duration(period)
	return cfg, nil
}

func newGame(cfg factory.Config, seed int64, quit func()) *gameT {
	g := &gameT{seed: seed, quit: quit}
	g.logs.Init(logCap)
	cfg.Logger = log.New(&g.logs, "", 0)
	g.Factory = factory.New(cfg)
	g.Subscribe(g.signal)
	g.feed = space.NewFeed(seed, beatPeriod)
	g.perf.Init("spacetime", ecs.ProcFunc(g.frame))
	g.dash.Perf = &g.perf
	n := g.Grid().Size()
	g.cursor = image.Pt(n/2, n/2)
	return g
}

// step runs one frame of dt seconds under the perf timer.
func (g *gameT) step(dt ecstime.Duration) {
	g.dt = dt
	g.perf.Process()
}

func (g *gameT) frame() {
	g.Frame(g.dt)
	if g.Over() {
		return
	}
	for _, ev := range g.feed.Step(g.Pool(), g.dt) {
		g.logs.Log("%v", ev)
	}
}

func (g *gameT) signal(sig factory.Signal) {
	switch sig.Kind {
	case factory.PlaceSignal, factory.RemoveSignal, factory.ToggleSignal:
		g.logs.Log("%v", sig)
	case factory.GameOverSignal:
		if !g.over {
			g.over = true
			g.logs.Log("game over: out of %v, press R to restart", resource.Health)
		}
	}
}

func (g *gameT) moveCursor(d image.Point) {
	pt := g.cursor.Add(d)
	if box := g.Grid().Bounds(); pt.In(box) {
		g.cursor = pt
	}
}

func (g *gameT) act(act input.Action) {
	var err error
	switch act {
	case input.PlacePipe:
		_, err = g.PlacePipe(g.cursor)
	case input.Remove:
		err = g.Remove(g.cursor)
	case input.Toggle:
		err = g.ToggleSwitch(g.cursor)
	case input.Shop1, input.Shop2, input.Shop3, input.Shop4:
		slot, _ := act.ShopSlot()
		_, err = g.PlaceMachine(factory.ShopKinds[slot], g.cursor)
	case input.Restart:
		g.Restart()
		g.feed = space.NewFeed(g.seed, beatPeriod)
		g.over = false
	case input.Quit:
		if g.quit != nil {
			g.quit()
		}
	}
	if err != nil {
		g.logs.Log("%v at %v: %v", act, g.cursor, err)
	}
}
