package factory

import "image"

// Restart tears down every entity and starts a new game: a fresh grid and
// layout, a default pool, and an idle economy.
func (f *Factory) Restart() {
	f.Clear()
	f.nets.Clear()
	f.queue.reset()
	f.signals = nil
	f.inval = 0
	f.ticks = 0
	f.over = false
	f.clock.Reset()
	f.econ.Reset()
	f.pool.Reset()
	f.grid.Init(f.cfg.Size)
	f.spawnLayout()
	f.logf("restarted")
	f.invalidate(image.ZP)
}
