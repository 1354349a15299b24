package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell"
	"github.com/gdamore/tcell/views"

	ecstime "github.com/borkshop/spacetime/internal/ecs/time"
	"github.com/borkshop/spacetime/internal/factory"
)

var (
	app  = &views.Application{}
	hud  = &hudT{}
	game *gameT
)

func help() {
	halp := views.NewTextArea()
	halp.SetLines([]string{
		`/ Cursor : vi-style keys ---------------------\`,
		`|   y k u  : h j k l -- usual directions      |`,
		`|    \|/   : y u b n -- for diagonals         |`,
		`|   h-+-l  : capitals move three tiles        |`,
		`|    /|\   :                                  |`,
		`|   b j n  :                                  |`,
		`|-- Build ------------------------------------|`,
		`|   p      : lay a pipe                       |`,
		`|   x      : remove a pipe or machine         |`,
		`|   1-4    : buy a machine from the shop      |`,
		`|   space  : turn a pipe switch               |`,
		`|-- Game -------------------------------------|`,
		`|   R      : restart    Q : quit              |`,
		`|   ^P     : toggle CPU profiling             |`,
		`\---------------------------------------------/`,
	})
	hud.showModal(halp)
}

func main() {
	size := flag.Int("size", factory.DefaultSize, "side length of the factory grid")
	period := flag.Float64("period", 1, "seconds of frame time per machine tick")
	seed := flag.Int64("seed", 0, "space feed seed; 0 picks one from the clock")
	fps := flag.Int("fps", 30, "frames per second")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	if *fps < 1 {
		*fps = 1
	}

	cfg, err := gameConfig(*size, *period)
	if err != nil {
		log.Fatalln(err)
	}
	game = newGame(cfg, *seed, app.Quit)
	hud.init(game)
	app.SetRootWidget(hud)

	if err := func() error {
		scr, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("failed to open terminal: %v", err)
		}
		app.SetScreen(scr)

		ticker := time.NewTicker(time.Second / time.Duration(*fps))
		done := make(chan struct{})
		defer ticker.Stop()
		defer close(done)
		go func() {
			last := time.Now()
			for {
				select {
				case <-done:
					return
				case now := <-ticker.C:
					dt := ecstime.Duration(now.Sub(last).Seconds())
					last = now
					app.PostFunc(func() {
						game.step(dt)
						hud.refresh()
					})
				}
			}
		}()

		return app.Run()
	}(); err != nil {
		log.Fatalln(err)
	}
	if err := game.perf.Close(); err != nil {
		log.Fatalln(fmt.Errorf("perf: %v", err))
	}
}
